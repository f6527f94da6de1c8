package main

import (
	"strings"
	"testing"

	"tfsmatch/internal/batch"
)

func TestDisplayCategory(t *testing.T) {
	cases := map[string]string{
		"arp":              "Arp",
		"bgp-table-detail": "Bgp Table Detail",
		"ntp_status":       "Ntp Status",
	}
	for in, want := range cases {
		if got := displayCategory(in); got != want {
			t.Fatalf("displayCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderRunReportNoMatches(t *testing.T) {
	stats := batch.NewRunStats()
	stats.TotalFiles = 3
	stats.Processed = 3
	stats.Failed = 3

	var buf strings.Builder
	renderRunReport(&buf, stats, batch.Options{MinScore: 10}, false)

	out := buf.String()
	requireContains(t, out, "Processed 3 of 3 capture files")
	requireContains(t, out, "no captures matched")
	if strings.Contains(out, ansiReset) {
		t.Fatalf("uncolorized report must not contain ANSI escapes:\n%s", out)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	var buf strings.Builder
	if shouldColorize(&buf) {
		t.Fatalf("non-file writer must not colorize")
	}
}
