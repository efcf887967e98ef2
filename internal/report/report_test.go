package report_test

import (
	"testing"

	"github.com/couchcryptid/launch-data-etl/internal/domain"
	"github.com/couchcryptid/launch-data-etl/internal/report"
	"github.com/couchcryptid/launch-data-etl/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var years = stats.YearRange{Min: 1957, Max: 1960}

func rec(year int, country domain.Country, family domain.Family, success bool) domain.LaunchRecord {
	return domain.LaunchRecord{Year: year, Country: country, Family: family, Success: success}
}

func sampleRecords() []domain.LaunchRecord {
	return []domain.LaunchRecord{
		rec(1957, domain.CountryUSSRRussia, domain.FamilyR7, true),
		rec(1957, domain.CountryUSSRRussia, domain.FamilyR7, true),
		rec(1958, domain.CountryUSA, domain.FamilyUnknown, false),
		rec(1958, domain.CountryUSA, domain.FamilyAtlas, true),
		rec(1958, domain.CountryUSA, domain.FamilyAtlas, true),
		rec(1958, domain.CountryUSA, domain.FamilyAtlas, true),
		rec(1959, domain.CountryUSSRRussia, domain.FamilyR7, false),
		rec(1960, domain.CountryUnknown, domain.FamilyUnknown, true),
	}
}

func mustTranslator(t *testing.T, lang string) report.Translator {
	t.Helper()
	tr, err := report.NewTranslator(lang)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	tests := []struct {
		lang string
		want language.Tag
	}{
		{"en", language.English},
		{"en-GB", language.English},
		{"pl", language.Polish},
		{"pl-PL", language.Polish},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, mustTranslator(t, tt.lang).Language())
		})
	}
}

func TestNewTranslator_Unsupported(t *testing.T) {
	for _, lang := range []string{"de", "ja", "not a tag!"} {
		_, err := report.NewTranslator(lang)
		assert.ErrorIs(t, err, report.ErrUnsupportedLanguage, lang)
	}
}

func TestTranslator_T(t *testing.T) {
	pl := mustTranslator(t, "pl")
	assert.Equal(t, "ZSRR/Rosja", pl.T("USSR/Russia"))
	assert.Equal(t, "Długi Marsz", pl.T("Long March"))
	assert.Equal(t, "USA", pl.T("USA"), "untranslated labels pass through")

	en := mustTranslator(t, "en")
	assert.Equal(t, "USSR/Russia", en.T("USSR/Russia"))
}

func TestBuild_AllSuccesses(t *testing.T) {
	rep := report.Build(sampleRecords(), years, mustTranslator(t, "en"))

	assert.Equal(t, "en", rep.Language)
	assert.Equal(t, []int{1957, 1958, 1959, 1960}, rep.Years)
	assert.Equal(t, "All Successful Orbital Launches", rep.AllSuccesses.Title)
	assert.Equal(t, 4, rep.AllSuccesses.Scale, "busiest year of all launches")

	require.Len(t, rep.AllSuccesses.Series, 2)
	usa := rep.AllSuccesses.Series[0]
	assert.Equal(t, "USA", usa.Key)
	assert.Equal(t, "USA (3)", usa.Label)
	assert.Equal(t, []int{0, 3, 0, 0}, usa.Values)

	ussr := rep.AllSuccesses.Series[1]
	assert.Equal(t, "USSR/Russia (2)", ussr.Label)
	assert.Equal(t, []int{2, 0, 0, 0}, ussr.Values)
}

func TestBuild_SuccessesFailuresSharesScale(t *testing.T) {
	rep := report.Build(sampleRecords(), years, mustTranslator(t, "en"))

	assert.Equal(t, rep.AllSuccesses.Scale, rep.SuccessesFailures.Scale)
	require.Len(t, rep.SuccessesFailures.Series, 2)
	assert.Equal(t, "Successful Launches (6)", rep.SuccessesFailures.Series[0].Label)
	assert.Equal(t, []int{2, 3, 0, 1}, rep.SuccessesFailures.Series[0].Values)
	assert.Equal(t, "Total or Partial Failures (2)", rep.SuccessesFailures.Series[1].Label)
	assert.Equal(t, []int{0, 1, 1, 0}, rep.SuccessesFailures.Series[1].Values)
}

func TestBuild_Tiles(t *testing.T) {
	rep := report.Build(sampleRecords(), years, mustTranslator(t, "en"))

	require.Len(t, rep.CountryTiles, 2)
	first := rep.CountryTiles[0]
	assert.Equal(t, "USA", first.Key)
	assert.Equal(t, []int{0, 3, 0, 0}, first.Successes)
	assert.Equal(t, []int{0, 1, 0, 0}, first.Failures)
	assert.Equal(t, 3, first.MaxSuccesses)
	assert.Equal(t, 4, rep.CountryTileScale, "first tile's stacked height")

	require.Len(t, rep.FamilyTiles, len(domain.Families()))
	assert.Equal(t, "R-7", rep.FamilyTiles[0].Key)
	assert.Equal(t, []int{2, 0, 0, 0}, rep.FamilyTiles[0].Successes)
	assert.Equal(t, []int{0, 0, 1, 0}, rep.FamilyTiles[0].Failures)
	assert.Equal(t, 2, rep.FamilyTileScale)
}

func TestBuild_CountryTilesCapped(t *testing.T) {
	var records []domain.LaunchRecord
	for i, c := range domain.Countries() {
		for range len(domain.Countries()) - i {
			records = append(records, rec(1957, c, domain.FamilyUnknown, true))
		}
	}

	rep := report.Build(records, years, mustTranslator(t, "en"))
	assert.Len(t, rep.AllSuccesses.Series, len(domain.Countries()))
	require.Len(t, rep.CountryTiles, report.TileCount)
	assert.Equal(t, string(domain.CountryBrazil), rep.CountryTiles[0].Key)
}

func TestBuild_Families(t *testing.T) {
	rep := report.Build(sampleRecords(), years, mustTranslator(t, "pl"))

	assert.Equal(t, "pl", rep.Language)
	assert.Equal(t, "Starty wybranych rodzin rakiet", rep.Families.Title)
	require.Len(t, rep.Families.Series, len(domain.Families()))
	assert.Equal(t, "R-7 (2)", rep.Families.Series[0].Label)
	assert.Equal(t, "Długi Marsz (0)", rep.Families.Series[3].Label)
	assert.Equal(t, "Atlas (3)", rep.Families.Series[4].Label)
	assert.Equal(t, 3, rep.Families.Scale, "unknown families are not stacked")
}

func TestBuild_Markers(t *testing.T) {
	rep := report.Build(nil, years, mustTranslator(t, "pl"))

	require.Len(t, rep.Markers, 2)
	assert.Equal(t, report.Marker{Axis: "y", Value: 100, Label: "↓ Ta linia określa granicę stu startów rocznie."}, rep.Markers[0])
	assert.Equal(t, 1991, rep.Markers[1].Value)
}

func TestBuild_Empty(t *testing.T) {
	rep := report.Build(nil, years, mustTranslator(t, "en"))

	assert.Empty(t, rep.AllSuccesses.Series)
	assert.Zero(t, rep.AllSuccesses.Scale)
	assert.Empty(t, rep.CountryTiles)
	assert.Zero(t, rep.CountryTileScale)
	assert.Len(t, rep.FamilyTiles, len(domain.Families()))
	assert.Zero(t, rep.FamilyTileScale)
}

func TestLanguages(t *testing.T) {
	langs := report.Languages()
	langs[0] = language.German
	assert.Equal(t, language.English, report.Languages()[0])
}
