package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lox/camelcards/internal/config"
	"github.com/lox/camelcards/internal/deck"
)

const example = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

type testEnv struct {
	*env
	out  *bytes.Buffer
	logs *bytes.Buffer
}

func newTestEnv(t *testing.T, stdin string) *testEnv {
	t.Helper()
	var out, logs bytes.Buffer
	return &testEnv{
		env: &env{
			cfg:    config.DefaultConfig(),
			logger: log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel}),
			clock:  quartz.NewMock(t),
			stdin:  strings.NewReader(stdin),
			stdout: &out,
		},
		out:  &out,
		logs: &logs,
	}
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScoreStdin(t *testing.T) {
	tests := []struct {
		variant  string
		expected string
	}{
		{"", "6440\n"},
		{"standard", "6440\n"},
		{"wildcard", "5905\n"},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			te := newTestEnv(t, example)
			cmd := &ScoreCmd{Variant: tt.variant}
			require.NoError(t, cmd.run(context.Background(), te.env))
			assert.Equal(t, tt.expected, te.out.String())
		})
	}
}

func TestScoreUsesConfigVariant(t *testing.T) {
	te := newTestEnv(t, example)
	te.cfg.Variant = "wildcard"

	require.NoError(t, (&ScoreCmd{}).run(context.Background(), te.env))
	assert.Equal(t, "5905\n", te.out.String())

	// An explicit flag still wins
	te = newTestEnv(t, example)
	te.cfg.Variant = "wildcard"
	require.NoError(t, (&ScoreCmd{Variant: "standard"}).run(context.Background(), te.env))
	assert.Equal(t, "6440\n", te.out.String())
}

func TestScoreMultipleFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := writeInput(t, "a.txt", example)
	b := writeInput(t, "b.txt", "AAAAA 3\n23456 1\n")

	te := newTestEnv(t, "")
	cmd := &ScoreCmd{Files: []string{a, b}}
	require.NoError(t, cmd.run(context.Background(), te.env))

	assert.Equal(t, a+": 6440\n"+b+": 7\n", te.out.String())
	assert.Contains(t, te.logs.String(), "Ranked session")
	assert.Contains(t, te.logs.String(), "elapsed=0s")
}

func TestScoreFailsFastOnBadInput(t *testing.T) {
	defer goleak.VerifyNone(t)

	good := writeInput(t, "good.txt", example)
	bad := writeInput(t, "bad.txt", "32T3K 765\nZZZZZ 1\n")

	te := newTestEnv(t, "")
	err := (&ScoreCmd{Files: []string{good, bad}}).run(context.Background(), te.env)
	require.Error(t, err)

	var symErr *deck.InvalidSymbolError
	assert.True(t, errors.As(err, &symErr))
	assert.Contains(t, err.Error(), bad+": line 2")
	assert.Empty(t, te.out.String(), "no partial results")
}

func TestScoreMissingFile(t *testing.T) {
	te := newTestEnv(t, "")
	err := (&ScoreCmd{Files: []string{filepath.Join(t.TempDir(), "missing.txt")}}).run(context.Background(), te.env)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScoreStrict(t *testing.T) {
	in := example + "garbage\n"

	te := newTestEnv(t, in)
	require.NoError(t, (&ScoreCmd{}).run(context.Background(), te.env))
	assert.Equal(t, "6440\n", te.out.String())

	te = newTestEnv(t, in)
	err := (&ScoreCmd{Strict: true}).run(context.Background(), te.env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 6")

	te = newTestEnv(t, in)
	te.cfg.Strict = true
	assert.Error(t, (&ScoreCmd{}).run(context.Background(), te.env))
}

func TestScoreTable(t *testing.T) {
	te := newTestEnv(t, example)
	cmd := &ScoreCmd{Table: true, Descending: true, NoColor: true, Variant: "wildcard"}
	require.NoError(t, cmd.run(context.Background(), te.env))

	out := te.out.String()
	assert.Contains(t, out, "Four of a Kind")
	assert.Contains(t, out, "Total winnings: 5905")
	assert.True(t, strings.HasSuffix(out, "\n5905\n"), "total is the last line: %q", out)
	assert.Less(t, strings.Index(out, "KTJJT"), strings.Index(out, "32T3K"))
}

func TestScoreOutputFile(t *testing.T) {
	te := newTestEnv(t, example)
	target := filepath.Join(t.TempDir(), "result.txt")

	require.NoError(t, (&ScoreCmd{Output: target}).run(context.Background(), te.env))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "6440\n", string(data))
	assert.Equal(t, "6440\n", te.out.String())
}

func TestScoreCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	te := newTestEnv(t, example)
	err := (&ScoreCmd{}).run(ctx, te.env)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScoreValidate(t *testing.T) {
	assert.NoError(t, (&ScoreCmd{Files: []string{"-", "a.txt"}}).Validate())
	assert.Error(t, (&ScoreCmd{Files: []string{"-", "-"}}).Validate())
}

func TestClassify(t *testing.T) {
	te := newTestEnv(t, "")
	cmd := &ClassifyCmd{Hands: []string{"KTJJT", "23456"}, Variant: "wildcard"}
	require.NoError(t, cmd.run(te.env))

	lines := strings.Split(strings.TrimSpace(te.out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "KTJJT  Four of a Kind", lines[0])
	assert.Equal(t, "23456  High Card", lines[1])
}

func TestClassifyInvalidHand(t *testing.T) {
	te := newTestEnv(t, "")
	err := (&ClassifyCmd{Hands: []string{"KTJJT", "KTJ"}}).run(te.env)
	require.Error(t, err)
	assert.Empty(t, te.out.String())
}

func TestCLIParsing(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("camelcards"),
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
		kong.Writers(io.Discard, io.Discard),
		kong.Vars{"version": "test", "config_file": config.DefaultFile},
	)
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"--log-level", "debug", "score", "-m", "wildcard", "--table", "a.txt", "b.txt"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ctx.Command(), "score"), ctx.Command())
	assert.Equal(t, "debug", cli.LogLevel)
	assert.Equal(t, config.DefaultFile, cli.Config)
	assert.Equal(t, "wildcard", cli.Score.Variant)
	assert.True(t, cli.Score.Table)
	assert.Equal(t, []string{"a.txt", "b.txt"}, cli.Score.Files)

	_, err = parser.Parse([]string{"score", "-", "-"})
	assert.Error(t, err)
}
