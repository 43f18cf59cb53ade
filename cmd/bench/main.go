package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/contentlint"
)

func main() {
	count := flag.Int("count", 1000, "Number of pages to generate per language")
	keep := flag.Bool("keep", false, "Keep the generated site after running")
	flag.Parse()

	// 1. Setup a throwaway bilingual site
	site, err := os.MkdirTemp("", "contentlint_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(site)
		} else {
			fmt.Printf("Keeping bench site: %s\n", site)
		}
	}()

	fmt.Printf("Generating %d pages per language in %s...\n", *count, site)
	startGen := time.Now()
	for _, lang := range []string{"en", "fr"} {
		for i := 0; i < *count; i++ {
			// Every tenth page lands in a nested section.
			section := ""
			if i%10 == 0 {
				section = fmt.Sprintf("section_%d", i/10)
			}
			content := fmt.Sprintf("---\ntitle: Page %d\ndate: %s\ntranslationKey: page-%d\n---\n# Page %d\nBody text.\n", i, time.Now().Format("2006-01-02"), i, i)
			filename := filepath.Join(site, "content", lang, section, fmt.Sprintf("page_%d.md", i))
			if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
				panic(err)
			}
			if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
				panic(err)
			}
		}
	}
	fmt.Printf("Generation took: %v\n", time.Since(startGen))

	// 2. Run both checks; reports themselves are discarded
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	linter, err := contentlint.New(site, contentlint.WithLogger(logger))
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	results := make(map[string]time.Duration)
	for _, name := range []string{"needs-review", "translation-keys"} {
		start := time.Now()
		r, err := linter.Run(ctx, name)
		if err != nil {
			panic(err)
		}
		results[name] = time.Since(start)
		fmt.Printf("%s: %v (exit %d, errors %d)\n", name, results[name], r.ExitCode(), r.Errors())
	}

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d pages x 2 languages):\n", *count)
	fmt.Printf("  needs-review:     %v\n", results["needs-review"])
	fmt.Printf("  translation-keys: %v\n", results["translation-keys"])
	fmt.Printf("--------------------------------------------------\n")
}
