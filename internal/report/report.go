// Package report assembles the data behind the launch charts: per-year series
// with their legends and the scales charts must share to stay comparable.
// Rendering is left to callers.
package report

import (
	"fmt"

	"github.com/couchcryptid/launch-data-etl/internal/domain"
	"github.com/couchcryptid/launch-data-etl/internal/stats"
)

// TileCount is the number of country tiles in a report row.
const TileCount = 7

// Reference lines drawn over the launch charts.
const (
	HundredLaunches = 100
	ColdWarEnd      = 1991
)

// Series is one stacked layer of a chart.
type Series struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Total  int    `json:"total"`
	Values []int  `json:"values"`
}

// Chart is a stacked bar chart over the report years.
type Chart struct {
	Title  string   `json:"title"`
	Series []Series `json:"series"`
	Scale  int      `json:"scale"`
}

// Tile is a small chart of successes stacked under failures for one country
// or family.
type Tile struct {
	Key          string `json:"key"`
	Title        string `json:"title"`
	Successes    []int  `json:"successes"`
	Failures     []int  `json:"failures"`
	MaxSuccesses int    `json:"max_successes"`
}

// Marker is an annotated reference line.
type Marker struct {
	Axis  string `json:"axis"`
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Report holds every chart of one language.
type Report struct {
	Language          string   `json:"language"`
	Years             []int    `json:"years"`
	AllSuccesses      Chart    `json:"all_successes"`
	SuccessesFailures Chart    `json:"successes_failures"`
	CountryTiles      []Tile   `json:"country_tiles"`
	CountryTileScale  int      `json:"country_tile_scale"`
	Families          Chart    `json:"families"`
	FamilyTiles       []Tile   `json:"family_tiles"`
	FamilyTileScale   int      `json:"family_tile_scale"`
	Markers           []Marker `json:"markers"`
}

// Build computes the report of records over years, labelled by tr.
func Build(records []domain.LaunchRecord, years stats.YearRange, tr Translator) Report {
	ranked := stats.RankCountriesByTotalSuccesses(records)

	// Every full-size launch chart shares the busiest year as its scale.
	scale := stats.MaxYearlyCount(records, years, stats.All())

	rep := Report{
		Language: tr.Language().String(),
		Years:    years.Years(),
		AllSuccesses: Chart{
			Title: tr.T("All Successful Orbital Launches"),
			Scale: scale,
		},
		SuccessesFailures: Chart{
			Title: tr.T("Successes and Failures"),
			Series: []Series{
				newSeries(records, years, "success", tr.T("Successful Launches"), stats.Successful()),
				newSeries(records, years, "failure", tr.T("Total or Partial Failures"), stats.Failed()),
			},
			Scale: scale,
		},
		Families: Chart{
			Title: tr.T("Launches of Selected Rocket Families"),
			Scale: stats.MaxYearlyCount(records, years, stats.And(stats.Successful(), knownFamily)),
		},
		Markers: []Marker{
			{Axis: "y", Value: HundredLaunches, Label: tr.T("↓ This line marks a hundred launches per year.")},
			{Axis: "x", Value: ColdWarEnd, Label: tr.T("← This line marks the end of the Cold War.")},
		},
	}

	for _, c := range ranked {
		pred := stats.And(stats.Successful(), stats.CountryIs(c))
		rep.AllSuccesses.Series = append(rep.AllSuccesses.Series,
			newSeries(records, years, string(c), tr.T(string(c)), pred))
	}

	tileCountries := ranked[:min(TileCount, len(ranked))]
	for _, c := range tileCountries {
		rep.CountryTiles = append(rep.CountryTiles,
			newTile(records, years, string(c), tr.T(string(c)), stats.CountryIs(c)))
	}
	rep.CountryTileScale = tileScale(rep.CountryTiles)

	for _, f := range domain.Families() {
		rep.Families.Series = append(rep.Families.Series,
			newSeries(records, years, string(f), tr.T(string(f)), stats.And(stats.Successful(), stats.FamilyIs(f))))
		rep.FamilyTiles = append(rep.FamilyTiles,
			newTile(records, years, string(f), tr.T(string(f)), stats.FamilyIs(f)))
	}
	rep.FamilyTileScale = tileScale(rep.FamilyTiles)

	return rep
}

func knownFamily(r domain.LaunchRecord) bool {
	return r.Family.IsKnown()
}

func newSeries(records []domain.LaunchRecord, years stats.YearRange, key, name string, pred stats.Predicate) Series {
	values := stats.Series(records, years, pred)
	total := 0
	for _, v := range values {
		total += v
	}
	return Series{
		Key:    key,
		Label:  fmt.Sprintf("%s (%d)", name, total),
		Total:  total,
		Values: values,
	}
}

func newTile(records []domain.LaunchRecord, years stats.YearRange, key, title string, pred stats.Predicate) Tile {
	return Tile{
		Key:          key,
		Title:        title,
		Successes:    stats.Series(records, years, stats.And(stats.Successful(), pred)),
		Failures:     stats.Series(records, years, stats.And(stats.Failed(), pred)),
		MaxSuccesses: stats.MaxYearlyCount(records, years, stats.And(stats.Successful(), pred)),
	}
}

// tileScale is the height of the first tile, successes and failures stacked.
// A row of tiles shares it so the busiest subject sets the scale.
func tileScale(tiles []Tile) int {
	if len(tiles) == 0 {
		return 0
	}
	first := tiles[0]
	scale := 0
	for i := range first.Successes {
		scale = max(scale, first.Successes[i]+first.Failures[i])
	}
	return scale
}
