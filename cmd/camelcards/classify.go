package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/lox/camelcards/internal/evaluator"
)

// ClassifyCmd prints the category of each hand given on the command line.
type ClassifyCmd struct {
	Hands   []string `arg:"" name:"hand" help:"Hands to classify, e.g. KTJJT"`
	Variant string   `short:"m" help:"Rank mapping: standard or wildcard (overrides config)" env:"CAMELCARDS_VARIANT"`
}

func (cmd *ClassifyCmd) Run(g *Globals) error {
	e, err := g.environment()
	if err != nil {
		return err
	}
	return cmd.run(e)
}

func (cmd *ClassifyCmd) run(e *env) error {
	mapping, err := e.mapping(cmd.Variant)
	if err != nil {
		return err
	}

	hands := make([]evaluator.Hand, 0, len(cmd.Hands))
	for _, s := range cmd.Hands {
		h, err := evaluator.ParseHand(s, mapping)
		if err != nil {
			return err
		}
		hands = append(hands, h)
	}

	w := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	for _, h := range hands {
		fmt.Fprintf(w, "%s\t%s\n", h.Symbols(), h.Category())
	}
	return w.Flush()
}
