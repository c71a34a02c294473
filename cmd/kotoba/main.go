package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/five82/kotoba/internal/app"
	"github.com/five82/kotoba/internal/ipadic"
)

var version = "0.1.0"

// Flags shared by the root and search commands
var (
	flagConfig string
	flagLog    string
)

// Flags for build
var (
	flagSource   string
	flagOut      string
	flagRevision string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// The search command has already printed why the pattern failed.
		if !errors.Is(err, app.ErrSearchFailed) {
			fmt.Fprintf(os.Stderr, "kotoba: %v\n", err)
		}
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "kotoba",
	Short: "Regex search over a Japanese word list",
	Long: `kotoba loads a compressed word list and filters it with a regular expression,
showing the first 200 matches and the exact total.

Examples:
  kotoba                                  # Start the interactive TUI
  kotoba search '^か.な$'                 # Print matches and exit
  kotoba build --source mecab-ipadic --out public`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cmd.Context(), app.Options{ConfigPath: flagConfig, LogPath: flagLog})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <pattern>",
	Short: "Load the word list, print matches for one pattern and exit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.Options{ConfigPath: flagConfig, LogPath: flagLog}
		return app.Query(cmd.Context(), opts, args[0], cmd.OutOrStdout())
	},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build words.txt.gz from a mecab-ipadic checkout",
	Long: `Build reads every *.csv file under --source (EUC-JP), converts each reading
to hiragana and writes the sorted, de-duplicated list to --out/words.txt.gz,
together with COPYING-ipadic.txt and NOTICE.txt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := ipadic.Build(cmd.Context(), ipadic.Options{
			SourceDir: flagSource,
			OutputDir: flagOut,
			Revision:  flagRevision,
		})
		if err != nil {
			return fmt.Errorf("build word list: %w", err)
		}
		p := message.NewPrinter(language.English)
		p.Fprintf(cmd.OutOrStdout(), "Saved %d entries to %s\n", n, filepath.Join(flagOut, ipadic.WordsFile))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "override config path (default ~/.config/kotoba/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "write logs to this file (overrides log_file)")

	buildCmd.Flags().StringVar(&flagSource, "source", "", "mecab-ipadic directory containing *.csv")
	buildCmd.Flags().StringVar(&flagOut, "out", "public", "output directory")
	buildCmd.Flags().StringVar(&flagRevision, "revision", "", "upstream revision recorded in NOTICE.txt")
	_ = buildCmd.MarkFlagRequired("source")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(buildCmd)
}
