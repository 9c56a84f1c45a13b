package filter

import (
	"reflect"
	"strings"
	"testing"
)

type region struct {
	ID   string
	Name string
}

func regionName(r region) string { return r.Name }

var sample = []region{
	{"10", "Alpha"},
	{"20", "Beta"},
	{"21", "Bravo"},
}

func TestPrefixFilter(t *testing.T) {
	c := New(sample, regionName)

	c.SetQuery("b")
	want := []region{{"20", "Beta"}, {"21", "Bravo"}}
	if got := c.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	c.SetQuery("BR")
	if got := c.Items(); !reflect.DeepEqual(got, []region{{"21", "Bravo"}}) {
		t.Fatalf("expected only Bravo, got %v", got)
	}
	if c.Query() != "br" {
		t.Fatalf("expected normalized query, got %q", c.Query())
	}
}

func TestPrefixWhenFoldingChangesLength(t *testing.T) {
	c := New([]region{{"34", "İstanbul"}, {"35", "İzmir"}, {"06", "Ankara"}}, regionName)

	c.SetQuery("İst")
	if got := c.Items(); !reflect.DeepEqual(got, []region{{"34", "İstanbul"}}) {
		t.Fatalf("expected only İstanbul, got %v", got)
	}

	c.SetQuery("İ")
	if c.Len() != 2 {
		t.Fatalf("expected both İ entries, got %v", c.Items())
	}
}

func TestPrefixNotSubstring(t *testing.T) {
	c := New(sample, regionName)
	c.SetQuery("eta")
	if c.Len() != 0 {
		t.Fatalf("expected no substring matches, got %v", c.Items())
	}
}

func TestQueryLongerThanKey(t *testing.T) {
	c := New(sample, regionName)
	c.SetQuery("alphabet")
	if c.Len() != 0 {
		t.Fatalf("expected no match for a query longer than every key, got %v", c.Items())
	}
}

func TestSetQueryIdempotent(t *testing.T) {
	rebuilds := 0
	c := New(sample, regionName, WithRebuildHook[region](func(string, int) { rebuilds++ }))

	if !c.SetQuery("b") {
		t.Fatalf("expected first query to rebuild")
	}
	first := c.Items()

	if c.SetQuery("b") {
		t.Fatalf("expected repeated query to be a no-op")
	}
	if c.SetQuery("B") {
		t.Fatalf("expected query differing only in case to be a no-op")
	}
	if rebuilds != 1 {
		t.Fatalf("expected 1 rebuild, got %d", rebuilds)
	}
	if !reflect.DeepEqual(first, c.Items()) {
		t.Fatalf("filtered contents changed: %v vs %v", first, c.Items())
	}
}

func TestEmptyQueryRestoresBase(t *testing.T) {
	queries := []string{"a", "b", "br", "zzz", "beta"}
	for _, q := range queries {
		rebuilds := 0
		c := New(sample, regionName, WithRebuildHook[region](func(string, int) { rebuilds++ }))
		c.SetQuery(q)
		if !c.SetQuery("") {
			t.Fatalf("%q: expected clearing the query to restore", q)
		}
		if !reflect.DeepEqual(c.Items(), sample) {
			t.Fatalf("%q: expected base order restored, got %v", q, c.Items())
		}
		if c.SetQuery("") {
			t.Fatalf("%q: expected second clear to be a no-op", q)
		}
		if rebuilds != 2 {
			t.Fatalf("%q: expected 2 rebuilds, got %d", q, rebuilds)
		}
	}
}

func TestEmptyQueryOnFreshCollection(t *testing.T) {
	c := New(sample, regionName)
	if c.SetQuery("") {
		t.Fatalf("expected no rebuild for an empty query on a fresh collection")
	}
	if c.Len() != len(sample) {
		t.Fatalf("expected full base, got %d", c.Len())
	}
}

func TestBaseIsNotMutated(t *testing.T) {
	base := []region{{"1", "Ärger"}, {"2", "ärmel"}, {"3", "Zebra"}}
	c := New(base, regionName)
	c.SetQuery("ÄR")
	if c.Len() != 2 {
		t.Fatalf("expected both umlaut entries, got %v", c.Items())
	}
	if base[0].Name != "Ärger" || c.Base()[0].Name != "Ärger" {
		t.Fatalf("display keys must not be case folded in place")
	}
}

func TestNormalizeQueryTruncates(t *testing.T) {
	long := strings.Repeat("X", MaxQueryLength+5)
	got := NormalizeQuery(long)
	if got != strings.Repeat("x", MaxQueryLength) {
		t.Fatalf("expected %d lowercase runes, got %q", MaxQueryLength, got)
	}
}

func TestIndex(t *testing.T) {
	c := New(sample, regionName)
	if i := c.Index(func(r region) bool { return r.ID == "21" }); i != 2 {
		t.Fatalf("expected index 2, got %d", i)
	}
	c.SetQuery("b")
	if i := c.Index(func(r region) bool { return r.ID == "21" }); i != 1 {
		t.Fatalf("expected index 1 in filtered view, got %d", i)
	}
	if i := c.Index(func(r region) bool { return r.ID == "10" }); i != -1 {
		t.Fatalf("expected -1 for filtered-out entry, got %d", i)
	}
}
