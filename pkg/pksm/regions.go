package pksm

import (
	_ "embed"
	"fmt"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"
)

// 3DS country codes with sub-region data.
const (
	CountryJapan   = 1
	CountryUSA     = 49
	CountryGermany = 78
	CountryUK      = 110
)

//go:embed data/subregions.toml
var subregionData []byte

// Region is one sub-region of a country.
type Region struct {
	ID   int
	Name string
}

func (r Region) String() string {
	return strconv.Itoa(r.ID) + " - " + r.Name
}

// RegionTable holds sub-region names per language and country.
type RegionTable struct {
	byLang map[string]map[int][]Region
}

// LoadRegions parses the embedded sub-region table.
func LoadRegions() (*RegionTable, error) {
	return ParseRegions(subregionData)
}

// ParseRegions parses a table of the form
//
//	[en.49]
//	2 = "Alabama"
func ParseRegions(data []byte) (*RegionTable, error) {
	var raw map[string]map[string]map[string]string
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, NewInfrastructureError("load_regions", err)
	}

	t := &RegionTable{byLang: make(map[string]map[int][]Region, len(raw))}
	for lang, countries := range raw {
		t.byLang[lang] = make(map[int][]Region, len(countries))
		for rawCountry, names := range countries {
			country, err := strconv.Atoi(rawCountry)
			if err != nil {
				return nil, NewInfrastructureError("load_regions", fmt.Errorf("%s: country %q is not a number", lang, rawCountry))
			}

			regions := make([]Region, 0, len(names))
			for rawID, name := range names {
				id, err := strconv.Atoi(rawID)
				if err != nil {
					return nil, NewInfrastructureError("load_regions", fmt.Errorf("%s.%d: id %q is not a number", lang, country, rawID))
				}
				regions = append(regions, Region{ID: id, Name: name})
			}
			slices.SortFunc(regions, func(a, b Region) int { return a.ID - b.ID })
			t.byLang[lang][country] = regions
		}
	}
	return t, nil
}

// Subregions returns the sub-regions of country named in lang, ordered by
// id. A language without data for the country falls back to English; an
// unknown country has no sub-regions.
func (t *RegionTable) Subregions(lang string, country int) []Region {
	regions, ok := t.byLang[lang][country]
	if !ok {
		regions = t.byLang["en"][country]
	}
	return slices.Clone(regions)
}

// Lookup finds the sub-region with id.
func (t *RegionTable) Lookup(lang string, country, id int) (Region, bool) {
	regions := t.Subregions(lang, country)
	i, found := slices.BinarySearchFunc(regions, id, func(r Region, id int) int { return r.ID - id })
	if !found {
		return Region{}, false
	}
	return regions[i], true
}
