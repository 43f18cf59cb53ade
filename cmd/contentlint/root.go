package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// errCheckFailed signals a completed run with at least one error finding.
var errCheckFailed = errors.New("check failed")

var (
	verbose            bool
	siteRoot           string
	contentDir         string
	languages          []string
	extensions         []string
	exclude            []string
	jsonOutput         bool
	noColor            bool
	allowDuplicateKeys bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "contentlint",
	Short: "Validate a multilingual static-site content tree",
	Long: `contentlint walks content/<lang>/ and reads each page's front matter.

needs-review      fails when a published page still carries a needs-review shortcode
translation-keys  fails when a published page has no translationKey or a key has
                  no counterpart in another language

Drafts are reported as warnings and never fail a run.
Exit status: 0 pass, 1 check failed, 2 usage or I/O error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errCheckFailed) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&siteRoot, "root", "", "Site root (default: nearest ancestor with a site config or .git, else the working directory)")
	flags.StringVar(&contentDir, "content", "content", "Content directory, relative to the site root")
	flags.StringSliceVar(&languages, "lang", []string{"en", "fr"}, "Language directories to compare")
	flags.StringSliceVar(&extensions, "ext", []string{".md"}, "Document file extensions")
	flags.StringArrayVar(&exclude, "exclude", nil, "Glob of paths to skip inside each language directory (repeatable)")
	flags.BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
}
