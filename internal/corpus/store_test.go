package corpus_test

import (
	"context"
	"path/filepath"
	"testing"

	"tfsmatch/internal/corpus"
	"tfsmatch/internal/testsupport"
)

func seedStore(t *testing.T) *corpus.Store {
	t.Helper()
	path := testsupport.NewCorpusDB(t,
		testsupport.SeedTemplate{CLICommand: "show ip bgp_summary", Content: "tmpl-a"},
		testsupport.SeedTemplate{CLICommand: "show bgp_table detail", Content: "tmpl-b"},
		testsupport.SeedTemplate{CLICommand: "show version", Content: "tmpl-c"},
		testsupport.SeedTemplate{CLICommand: "show interface_status", Content: "tmpl-d"},
	)
	store, err := corpus.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTemplatesNoFilterReturnsAll(t *testing.T) {
	store := seedStore(t)
	templates, err := store.Templates(context.Background(), "")
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if len(templates) != 4 {
		t.Fatalf("expected 4 templates, got %d", len(templates))
	}
	if templates[0].ID == 0 {
		t.Fatalf("expected corpus ids to be populated")
	}
}

func TestTemplatesFilterTokensAreConjunctive(t *testing.T) {
	store := seedStore(t)

	templates, err := store.Templates(context.Background(), "bgp_table")
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if len(templates) != 1 || templates[0].CLICommand != "show bgp_table detail" {
		t.Fatalf("unexpected filter result: %+v", templates)
	}

	// Single surviving token matches both bgp templates.
	templates, err = store.Templates(context.Background(), "bgp")
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 bgp templates, got %d", len(templates))
	}
}

func TestTemplatesShortTokensBehaveAsNoFilter(t *testing.T) {
	store := seedStore(t)
	templates, err := store.Templates(context.Background(), "ip-v4")
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if len(templates) != 4 {
		t.Fatalf("short-token filter should return whole corpus, got %d", len(templates))
	}
}

func TestTemplatesZeroMatchesIsNotAnError(t *testing.T) {
	store := seedStore(t)
	templates, err := store.Templates(context.Background(), "spanning_tree")
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if len(templates) != 0 {
		t.Fatalf("expected no matches, got %d", len(templates))
	}
}

func TestTemplatesFilterIsCaseSensitive(t *testing.T) {
	store := seedStore(t)
	templates, err := store.Templates(context.Background(), "BGP")
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if len(templates) != 0 {
		t.Fatalf("uppercase token should not match lowercase labels, got %d", len(templates))
	}
}

func TestOpenMissingCorpus(t *testing.T) {
	if _, err := corpus.Open(filepath.Join(t.TempDir(), "absent.db")); err == nil {
		t.Fatalf("expected error for missing corpus")
	}
}

func TestCount(t *testing.T) {
	store := seedStore(t)
	count, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4, got %d", count)
	}
}
