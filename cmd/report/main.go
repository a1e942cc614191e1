// Command report turns a tuning summary CSV into the ranked results report,
// written as markdown, LaTeX and CSV artifacts.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"tunereport/internal/reports"
	"tunereport/internal/services"
	"tunereport/internal/summary"
)

type artifact struct {
	name    string
	label   string
	content string
}

func main() {
	input := flag.String("input", "hyperparameter_summary.csv", "tuning summary CSV to read")
	outDir := flag.String("out", "results", "directory for the generated artifacts")
	strict := flag.Bool("strict", false, "fail on report consistency violations instead of warning")
	flag.Parse()

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("failed to open summary file: %v", err)
	}
	defer f.Close()

	runs, err := summary.Load(f)
	if err != nil {
		log.Fatalf("failed to load summary file: %v", err)
	}

	report := services.RankRuns(runs)

	if problems := reports.Validate(report); len(problems) > 0 {
		for _, p := range problems {
			log.Printf("consistency check: %v", p)
		}
		if *strict {
			log.Fatalf("report failed %d consistency checks", len(problems))
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	markdown := reports.RenderMarkdown(report)
	latex := reports.RenderLaTeX(report)
	csvOut, err := reports.RenderCSV(report)
	if err != nil {
		log.Fatalf("failed to render CSV: %v", err)
	}

	artifacts := []artifact{
		{"hyperparameter_tuning_table.csv", "CSV", csvOut},
		{"hyperparameter_tuning_table.tex", "LaTeX", latex},
		{"hyperparameter_tuning_table.md", "Markdown", markdown},
	}

	for _, a := range artifacts {
		path := filepath.Join(*outDir, a.name)
		if err := os.WriteFile(path, []byte(a.content), 0o644); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
	}

	fmt.Print(resultsOutput(markdown, *outDir, artifacts))
}

// resultsOutput is the console summary: the markdown table under a banner,
// then the artifact listing.
func resultsOutput(markdown, outDir string, artifacts []artifact) string {
	var b strings.Builder

	b.WriteString("HYPERPARAMETER TUNING RESULTS TABLE\n")
	b.WriteString(strings.Repeat("=", 80))
	b.WriteString("\n")
	b.WriteString(markdown)

	b.WriteString("\nFILES CREATED:\n")
	for _, a := range artifacts {
		fmt.Fprintf(&b, "   - %s (%s format)\n", filepath.Join(outDir, a.name), a.label)
	}

	return b.String()
}
