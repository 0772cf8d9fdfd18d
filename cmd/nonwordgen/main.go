// Command nonwordgen generates pronounceable non-words, pseudo-sentences,
// and pseudo-paragraphs for any of the built-in or user-supplied languages.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taggedzi/nonwordgen/dictionary"
	"github.com/taggedzi/nonwordgen/generator"
	"github.com/taggedzi/nonwordgen/lang"
	"github.com/taggedzi/nonwordgen/textgen"
	"github.com/taggedzi/nonwordgen/wordfreq"
)

type rootOptions struct {
	minLength      int
	maxLength      int
	minSyllables   int
	maxSyllables   int
	strictness     string
	minZipf        float64
	allowRealWords bool
	seed           int64
	languageName   string
	languageFile   string
	banned         []string
	verbose        bool
}

func main() {
	defaults, err := loadEnvDefaults()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := newRootCmd(defaults).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(defaults envDefaults) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "nonwordgen",
		Short:         "Generate pronounceable non-words",
		Long:          "nonwordgen builds pronounceable, non-existent words by sampling syllables\nfrom per-language phonotactic profiles and rejecting real words.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	flags := cmd.PersistentFlags()
	flags.IntVar(&opts.minLength, "min-length", defaults.MinLength, "minimum length of generated words")
	flags.IntVar(&opts.maxLength, "max-length", defaults.MaxLength, "maximum length of generated words")
	flags.IntVar(&opts.minSyllables, "min-syllables", defaults.MinSyllables, "minimum syllable count")
	flags.IntVar(&opts.maxSyllables, "max-syllables", defaults.MaxSyllables, "maximum syllable count")
	flags.StringVar(&opts.strictness, "strictness", defaults.Strictness,
		fmt.Sprintf("real-word filtering strictness (%s)", strings.Join(lang.StrictnessNames(), ", ")))
	flags.Float64Var(&opts.minZipf, "min-zipf", defaults.MinZipf, "frequency threshold above which a word counts as real")
	flags.BoolVar(&opts.allowRealWords, "allow-real-words", false, "allow real words to pass filtering")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed (0 uses the clock)")
	flags.StringVar(&opts.languageName, "language", defaults.Language, "language plugin to use")
	flags.StringVar(&opts.languageFile, "language-file", "", "YAML language definition to use instead of a built-in")
	flags.StringSliceVar(&opts.banned, "ban", nil, "words to reject even if otherwise acceptable")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log degradation warnings and debug detail")

	cmd.AddCommand(
		newWordsCmd(opts),
		newSentencesCmd(opts),
		newParagraphsCmd(opts),
		newLanguagesCmd(),
	)
	return cmd
}

func newWordsCmd(opts *rootOptions) *cobra.Command {
	var count int
	var unique bool

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Generate non-words, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := newGenerator(opts)
			if err != nil {
				return err
			}
			words, err := gen.GenerateMany(count, unique)
			if err != nil {
				return err
			}
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of non-words to generate")
	cmd.Flags().BoolVar(&unique, "unique", true, "discard duplicates within the batch")
	return cmd
}

func newSentencesCmd(opts *rootOptions) *cobra.Command {
	var count, minWords, maxWords int

	cmd := &cobra.Command{
		Use:   "sentences",
		Short: "Generate pseudo-sentences, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			composer, err := newComposer(opts)
			if err != nil {
				return err
			}
			sentences, err := composer.Sentences(count, minWords, maxWords)
			if err != nil {
				return err
			}
			for _, s := range sentences {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "sentences", "n", 5, "number of sentences to generate")
	cmd.Flags().IntVar(&minWords, "min-words", 4, "minimum words per sentence")
	cmd.Flags().IntVar(&maxWords, "max-words", 9, "maximum words per sentence")
	return cmd
}

func newParagraphsCmd(opts *rootOptions) *cobra.Command {
	var count, minSentences, maxSentences, minWords, maxWords int

	cmd := &cobra.Command{
		Use:   "paragraphs",
		Short: "Generate pseudo-paragraphs separated by blank lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			composer, err := newComposer(opts)
			if err != nil {
				return err
			}
			paragraphs, err := composer.Paragraphs(count, minSentences, maxSentences, minWords, maxWords)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(paragraphs, "\n\n"))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "paragraphs", "p", 3, "number of paragraphs to generate")
	cmd.Flags().IntVar(&minSentences, "min-sentences", 2, "minimum sentences per paragraph")
	cmd.Flags().IntVar(&maxSentences, "max-sentences", 5, "maximum sentences per paragraph")
	cmd.Flags().IntVar(&minWords, "min-words", 4, "minimum words per sentence")
	cmd.Flags().IntVar(&maxWords, "max-words", 9, "maximum words per sentence")
	return cmd
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the built-in languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range lang.Default().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// resolvePlugin picks the language plugin: a YAML definition when
// --language-file is set, otherwise a built-in by name.
func resolvePlugin(opts *rootOptions) (lang.Plugin, error) {
	if opts.languageFile != "" {
		var lookup dictionary.Lookup
		if corpus, err := wordfreq.New(); err != nil {
			slog.Warn("frequency corpus failed to load; frequency filtering disabled", "error", err)
		} else {
			lookup = corpus
		}
		return lang.LoadPluginFile(opts.languageFile, lang.WithLookup(lookup))
	}
	return lang.Default().Get(opts.languageName)
}

func newGenerator(opts *rootOptions) (*generator.Generator, error) {
	strictness, err := lang.ParseStrictness(opts.strictness)
	if err != nil {
		return nil, err
	}
	plugin, err := resolvePlugin(opts)
	if err != nil {
		return nil, err
	}

	genOpts := []generator.Option{
		generator.WithLengthRange(opts.minLength, opts.maxLength),
		generator.WithSyllableRange(opts.minSyllables, opts.maxSyllables),
		generator.WithStrictness(strictness),
		generator.WithMinZipf(opts.minZipf),
	}
	if opts.allowRealWords {
		genOpts = append(genOpts, generator.AllowRealWords())
	}
	if len(opts.banned) > 0 {
		genOpts = append(genOpts, generator.WithBannedWords(opts.banned...))
	}
	if opts.seed != 0 {
		genOpts = append(genOpts, generator.WithSeed(opts.seed))
	}
	return generator.New(plugin, genOpts...)
}

func newComposer(opts *rootOptions) (*textgen.Composer, error) {
	gen, err := newGenerator(opts)
	if err != nil {
		return nil, err
	}
	return textgen.New(gen)
}
