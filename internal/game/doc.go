// Package game ranks a session of Camel Cards hands and computes its winnings.
//
// The main type is Session, which holds every (hand, bid) pair being ranked
// together under one rank mapping.
//
// # Basic Usage
//
//	s := game.NewSession(deck.StandardMapping)
//	s.Add("32T3K", 765)
//	s.Add("KTJJT", 220)
//	total := s.TotalWinnings()
//
// Hands are keyed by their symbols, so adding the same hand twice keeps the
// later bid.
//
// # Standings
//
// Standings returns the ranked hands. Position 1 is the weakest hand and each
// hand wins its bid multiplied by its position:
//
//	for _, st := range s.Standings(game.Descending) {
//	    fmt.Println(st.Position, st.Hand.Symbols(), st.Winnings)
//	}
//
// The order argument only changes the order of the returned slice; positions
// always count up from the weakest hand.
package game
