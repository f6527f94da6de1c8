package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tfsmatch/internal/batch"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const topTemplateCount = 10

var categoryTitle = cases.Title(language.Und)

// renderRunReport prints the human-readable summary of a finished run:
// headline counts, score range, the busiest templates, and a per-category
// breakdown.
func renderRunReport(w io.Writer, stats *batch.RunStats, opts batch.Options, colorize bool) {
	headline := fmt.Sprintf("Processed %d of %d capture files in %s",
		stats.Processed, stats.TotalFiles, stats.Elapsed.Round(10*time.Millisecond))
	if opts.DryRun {
		headline += " (dry run)"
	}
	fmt.Fprintln(w, colorLine(headline, ansiBlue, colorize))

	fmt.Fprintf(w, "  matched %d, below threshold %d, failed %d, skipped empty %d\n",
		stats.Matched, stats.BelowThreshold, stats.Failed, stats.SkippedEmpty)
	fmt.Fprintf(w, "  %d records extracted, threshold %s\n",
		stats.TotalRecords, formatScore(opts.MinScore))

	if min, max, avg, ok := stats.ScoreRange(); ok {
		line := fmt.Sprintf("  scores %s..%s, average %s",
			formatScore(min), formatScore(max), formatScore(avg))
		fmt.Fprintln(w, colorLine(line, ansiGreen, colorize))
	} else {
		fmt.Fprintln(w, colorLine("  no captures matched", ansiYellow, colorize))
	}

	if hits := stats.TopTemplates(topTemplateCount); len(hits) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Top templates")
		rows := make([][]string, len(hits))
		for i, hit := range hits {
			rows[i] = []string{hit.Template, strconv.Itoa(hit.Count)}
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Template", "Matches"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
	}

	if len(stats.Categories) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Categories")
		rows := make([][]string, 0, len(stats.Categories))
		for _, name := range stats.CategoryNames() {
			cs := stats.Categories[name]
			rows = append(rows, []string{
				displayCategory(name),
				strconv.Itoa(cs.Matched),
				strconv.Itoa(cs.Total),
				strconv.Itoa(cs.Records),
				formatScore(cs.AvgScore),
			})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Category", "Matched", "Total", "Records", "Avg Score"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
		))
	}
}

// displayCategory turns a folder name like "bgp-summary" into "Bgp Summary"
// for the report table.
func displayCategory(name string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return categoryTitle.String(cleaned)
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

func colorLine(line, color string, colorize bool) string {
	if !colorize {
		return line
	}
	return color + line + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
