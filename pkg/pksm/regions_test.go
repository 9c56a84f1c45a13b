package pksm

import (
	"testing"
)

func TestLoadRegionsOrdersByID(t *testing.T) {
	table, err := LoadRegions()
	if err != nil {
		t.Fatalf("LoadRegions: %v", err)
	}

	us := table.Subregions("en", CountryUSA)
	if len(us) != 51 {
		t.Fatalf("expected 51 US sub-regions, got %d", len(us))
	}
	for i := 1; i < len(us); i++ {
		if us[i-1].ID >= us[i].ID {
			t.Fatalf("sub-regions not ordered by id at %d: %v, %v", i, us[i-1], us[i])
		}
	}
	if us[0] != (Region{ID: 2, Name: "Alabama"}) {
		t.Fatalf("expected Alabama first, got %v", us[0])
	}
}

func TestSubregionsLanguageFallback(t *testing.T) {
	table, err := ParseRegions([]byte(`
[en.110]
2 = "England"
3 = "Scotland"

[de.49]
6 = "Kalifornien"
`))
	if err != nil {
		t.Fatalf("ParseRegions: %v", err)
	}

	if got := table.Subregions("de", CountryUK); len(got) != 2 || got[0].Name != "England" {
		t.Fatalf("expected the English UK table as fallback, got %v", got)
	}
	if got := table.Subregions("de", CountryUSA); len(got) != 1 || got[0].Name != "Kalifornien" {
		t.Fatalf("expected the German US table, got %v", got)
	}
	if got := table.Subregions("en", CountryJapan); len(got) != 0 {
		t.Fatalf("expected no sub-regions for an unknown country, got %v", got)
	}
}

func TestSubregionsReturnsACopy(t *testing.T) {
	table, err := LoadRegions()
	if err != nil {
		t.Fatalf("LoadRegions: %v", err)
	}

	first := table.Subregions("en", CountryUK)
	first[0].Name = "changed"

	if again := table.Subregions("en", CountryUK); again[0].Name != "England" {
		t.Fatalf("caller modified the table: %v", again[0])
	}
}

func TestLookup(t *testing.T) {
	table, err := LoadRegions()
	if err != nil {
		t.Fatalf("LoadRegions: %v", err)
	}

	if reg, ok := table.Lookup("en", CountryGermany, 3); !ok || reg.Name != "Bavaria" {
		t.Fatalf("expected Bavaria, got %v %v", reg, ok)
	}
	if _, ok := table.Lookup("en", CountryGermany, 99); ok {
		t.Fatalf("expected unknown id to miss")
	}
}

func TestParseRegionsRejectsBadKeys(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"country", "[en.usa]\n2 = \"Alabama\"\n"},
		{"id", "[en.49]\ntwo = \"Alabama\"\n"},
		{"syntax", "[en.49\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRegions([]byte(tt.data))
			if !IsInfrastructureError(err) {
				t.Fatalf("expected an infrastructure error, got %v", err)
			}
		})
	}
}

func TestRegionString(t *testing.T) {
	if got := (Region{ID: 45, Name: "Texas"}).String(); got != "45 - Texas" {
		t.Fatalf("got %q", got)
	}
}
