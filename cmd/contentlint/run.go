package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/contentlint"
	"github.com/aretw0/contentlint/pkg/check"
	"github.com/aretw0/contentlint/pkg/report"
)

// runConfig is the flag state a check command runs with.
type runConfig struct {
	Root               string
	ContentDir         string
	Languages          []string
	Extensions         []string
	Exclude            []string
	JSON               bool
	Color              bool
	AllowDuplicateKeys bool
}

func currentConfig() runConfig {
	return runConfig{
		Root:               siteRoot,
		ContentDir:         contentDir,
		Languages:          languages,
		Extensions:         extensions,
		Exclude:            exclude,
		JSON:               jsonOutput,
		Color:              !noColor,
		AllowDuplicateKeys: allowDuplicateKeys,
	}
}

// runChecks runs the named checks, writes their reports to out and returns
// errCheckFailed when any of them failed.
func runChecks(ctx context.Context, out io.Writer, cfg runConfig, names ...string) error {
	root := cfg.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		root, err = contentlint.FindRoot(wd, cfg.ContentDir)
		if err != nil {
			return fmt.Errorf("failed to find site root: %w", err)
		}
	}

	linter, err := contentlint.New(root,
		contentlint.WithLogger(slog.Default()),
		contentlint.WithContentDir(cfg.ContentDir),
		contentlint.WithLanguages(cfg.Languages...),
		contentlint.WithExtensions(cfg.Extensions...),
		contentlint.WithExclude(cfg.Exclude...),
		contentlint.WithAllowDuplicateKeys(cfg.AllowDuplicateKeys),
	)
	if err != nil {
		return err
	}
	slog.Debug("linter configured", "state", linter.State())

	reports := make([]check.Report, 0, len(names))
	for _, name := range names {
		r, err := linter.Run(ctx, name)
		if err != nil {
			return err
		}
		reports = append(reports, r)
	}

	if err := write(out, cfg, reports); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	for _, r := range reports {
		if r.Failed() {
			return errCheckFailed
		}
	}
	return nil
}

func write(out io.Writer, cfg runConfig, reports []check.Report) error {
	if cfg.JSON {
		if len(reports) == 1 {
			return report.JSON(out, reports[0])
		}
		return report.JSONList(out, reports)
	}

	for _, r := range reports {
		if err := report.Text(out, r, report.Options{Color: cfg.Color}); err != nil {
			return err
		}
	}
	return nil
}
