package stats

import (
	"sort"

	"github.com/couchcryptid/launch-data-etl/internal/domain"
)

// YearRange is an inclusive range of years.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DefaultYearRange spans from the first orbital launch to the last complete year.
func DefaultYearRange() YearRange {
	return YearRange{Min: domain.YearMinimum, Max: domain.YearMaximum()}
}

// Contains reports whether year lies in the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// Years lists the years of the range in ascending order.
func (r YearRange) Years() []int {
	if r.Max < r.Min {
		return nil
	}
	years := make([]int, 0, r.Max-r.Min+1)
	for y := r.Min; y <= r.Max; y++ {
		years = append(years, y)
	}
	return years
}

// CountByYear counts matching records per year. Every year of the range is
// present in the result, with 0 when nothing matched.
func CountByYear(records []domain.LaunchRecord, years YearRange, pred Predicate) map[int]int {
	pred = orAll(pred)
	counts := make(map[int]int, len(years.Years()))
	for _, y := range years.Years() {
		counts[y] = 0
	}
	for _, r := range records {
		if years.Contains(r.Year) && pred(r) {
			counts[r.Year]++
		}
	}
	return counts
}

// Series is CountByYear as a slice ordered by year.
func Series(records []domain.LaunchRecord, years YearRange, pred Predicate) []int {
	counts := CountByYear(records, years, pred)
	out := make([]int, 0, len(counts))
	for _, y := range years.Years() {
		out = append(out, counts[y])
	}
	return out
}

// MaxYearlyCount returns the highest per-year count for pred. Charts that
// must stay comparable share one value computed by this function.
func MaxYearlyCount(records []domain.LaunchRecord, years YearRange, pred Predicate) int {
	maxCount := 0
	for _, n := range CountByYear(records, years, pred) {
		if n > maxCount {
			maxCount = n
		}
	}
	return maxCount
}

// CountryTotal is a country with its number of successful launches.
type CountryTotal struct {
	Country   domain.Country `json:"country"`
	Successes int            `json:"successes"`
}

// RankCountries orders the countries present in records by descending number
// of successful launches. Ties keep first-seen order. Unknown countries are
// not ranked.
func RankCountries(records []domain.LaunchRecord) []CountryTotal {
	index := map[domain.Country]int{}
	var ranking []CountryTotal
	for _, r := range records {
		if r.Country == domain.CountryUnknown || r.Country == "" {
			continue
		}
		i, ok := index[r.Country]
		if !ok {
			i = len(ranking)
			index[r.Country] = i
			ranking = append(ranking, CountryTotal{Country: r.Country})
		}
		if r.Success {
			ranking[i].Successes++
		}
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Successes > ranking[b].Successes
	})
	return ranking
}

// RankCountriesByTotalSuccesses is RankCountries without the totals.
func RankCountriesByTotalSuccesses(records []domain.LaunchRecord) []domain.Country {
	ranking := RankCountries(records)
	out := make([]domain.Country, len(ranking))
	for i, ct := range ranking {
		out[i] = ct.Country
	}
	return out
}

// TotalsByCountry counts matching records per country, unknown included.
func TotalsByCountry(records []domain.LaunchRecord, pred Predicate) map[domain.Country]int {
	pred = orAll(pred)
	totals := map[domain.Country]int{}
	for _, r := range records {
		if pred(r) {
			totals[r.Country]++
		}
	}
	return totals
}

// TotalsByFamily counts matching records per family, unknown included.
func TotalsByFamily(records []domain.LaunchRecord, pred Predicate) map[domain.Family]int {
	pred = orAll(pred)
	totals := map[domain.Family]int{}
	for _, r := range records {
		if pred(r) {
			totals[r.Family]++
		}
	}
	return totals
}

// Total counts matching records within the year range.
func Total(records []domain.LaunchRecord, years YearRange, pred Predicate) int {
	pred = orAll(pred)
	n := 0
	for _, r := range records {
		if years.Contains(r.Year) && pred(r) {
			n++
		}
	}
	return n
}

// Outcome is the split of launches within a range by result.
type Outcome struct {
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

// CountByOutcome splits the matching records of the range into successes and
// failures.
func CountByOutcome(records []domain.LaunchRecord, years YearRange, pred Predicate) Outcome {
	pred = orAll(pred)
	var out Outcome
	for _, r := range records {
		if !years.Contains(r.Year) || !pred(r) {
			continue
		}
		if r.Success {
			out.Successes++
		} else {
			out.Failures++
		}
	}
	return out
}
