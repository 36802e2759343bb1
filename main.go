package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arpalm/ngramtrie/lm"
	"github.com/arpalm/ngramtrie/logmath"
)

var verbose bool

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}

func loadModel(path string) (*lm.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t := lm.New(nil, logmath.Default())
	t.SetLogger(newLogger())
	if err := t.ReadARPA(f); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return t, nil
}

func main() {
	root := &cobra.Command{
		Use:           "ngramtrie",
		Short:         "Query and convert ARPA format N-gram language models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log section and skip details")

	root.AddCommand(&cobra.Command{
		Use:   "info <model.arpa>",
		Short: "Print model order and per-order N-gram counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadModel(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("order: %d\n", t.Order())
			fmt.Printf("vocabulary: %s words\n", humanize.Comma(int64(t.Dict().Size())))
			for n := 1; n <= t.Order(); n++ {
				fmt.Printf("%d-grams: %s declared, %s loaded\n", n,
					humanize.Comma(int64(t.Count(n))),
					humanize.Comma(int64(t.CountNgrams(n))))
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "prob <model.arpa> <word> [history...]",
		Short: "Print the backoff log10 probability of a word given its history, most recent first",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadModel(args[0])
			if err != nil {
				return err
			}
			prob, used := t.Prob(args[1], args[2:]...)
			fmt.Printf("log10 p(%s | %s) = %.4f (%d words used)\n",
				args[1], strings.Join(args[2:], " "), t.LogMath().LogToLog10(prob), used)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "ppl <model.arpa> <corpus.txt>",
		Short: "Compute corpus perplexity under the model",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadModel(args[0])
			if err != nil {
				return err
			}
			corpus, err := lm.NewCorpus(args[1], "")
			if err != nil {
				return err
			}
			fmt.Printf("perplexity: %.3f\n", t.Perplexity(corpus))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "convert <in.arpa> <out.arpa>",
		Short: "Round-trip a model through the trie and write it back out",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadModel(args[0])
			if err != nil {
				return err
			}
			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			if err := t.WriteARPA(out); err != nil {
				out.Close()
				return fmt.Errorf("writing %s: %w", args[1], err)
			}
			return out.Close()
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
