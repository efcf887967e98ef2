package main

import (
	"testing"

	"github.com/couchcryptid/launch-data-etl/internal/domain"
	"github.com/couchcryptid/launch-data-etl/internal/report"
	"github.com/couchcryptid/launch-data-etl/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeakYear(t *testing.T) {
	years := []int{1957, 1958, 1959}

	tests := []struct {
		name     string
		values   []int
		wantYear string
		wantPeak int
	}{
		{name: "single peak", values: []int{1, 3, 2}, wantYear: "1958", wantPeak: 3},
		{name: "tie keeps first", values: []int{2, 1, 2}, wantYear: "1957", wantPeak: 2},
		{name: "all zero", values: []int{0, 0, 0}, wantYear: "-", wantPeak: 0},
		{name: "empty", values: nil, wantYear: "-", wantPeak: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, peak := peakYear(years, tt.values)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantPeak, peak)
		})
	}
}

func TestRenderReport(t *testing.T) {
	records := []domain.LaunchRecord{
		{Year: 1957, Country: domain.CountryUSSRRussia, Family: domain.FamilyR7, Success: true},
		{Year: 1958, Country: domain.CountryUSA, Family: domain.FamilyAtlas, Success: false},
		{Year: 1958, Country: domain.CountryUSA, Family: domain.FamilyAtlas, Success: true},
	}
	tr, err := report.NewTranslator("pl")
	require.NoError(t, err)

	out := renderReport(report.Build(records, stats.YearRange{Min: 1957, Max: 1960}, tr))

	assert.Contains(t, out, "[pl] Wszystkie udane starty orbitalne")
	assert.Contains(t, out, "ZSRR/Rosja (1)")
	assert.Contains(t, out, "Całkowite i częściowe porażki (1)")
	assert.Contains(t, out, "Długi Marsz (0)")
	assert.Contains(t, out, "scale 2, 1957-1960")
	assert.Contains(t, out, "tile scale 1")
	assert.Contains(t, out, "1991")
}
