package main

import (
	"github.com/aretw0/contentlint/internal/platform"
	"github.com/spf13/cobra"
)

var needsReviewCmd = &cobra.Command{
	Use:   "needs-review",
	Short: "Fail when a published page still carries a needs-review shortcode",
	Long: `Scan every page for {{< needs-review >}} / {{% needs_review %}} (any case).
Published pages with the marker are errors; drafts with the marker are warnings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd.Context(), cmd.OutOrStdout(), currentConfig(), platform.CheckNeedsReview)
	},
}

var translationKeysCmd = &cobra.Command{
	Use:   "translation-keys",
	Short: "Fail when translation keys are missing or do not match across languages",
	Long: `Every published page must carry a translationKey, and every key must exist
in each configured language. Drafts are listed as warnings and skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd.Context(), cmd.OutOrStdout(), currentConfig(), platform.CheckTranslationKeys)
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every check; fail if any check fails",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecks(cmd.Context(), cmd.OutOrStdout(), currentConfig(), platform.Checks...)
	},
}

func init() {
	rootCmd.AddCommand(needsReviewCmd, translationKeysCmd, allCmd)

	for _, c := range []*cobra.Command{translationKeysCmd, allCmd} {
		c.Flags().BoolVar(&allowDuplicateKeys, "allow-duplicate-keys", false, "Report duplicate translation keys as warnings instead of errors")
	}
}
