package http

import (
	"log/slog"
	"net/http"

	"github.com/couchcryptid/launch-data-etl/internal/domain"
	"github.com/couchcryptid/launch-data-etl/internal/stats"
)

// RecordSource provides the records the statistics are computed over.
type RecordSource interface {
	Snapshot() []domain.LaunchRecord
}

type statsHandler struct {
	source RecordSource
	logger *slog.Logger
}

type yearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type yearsResponse struct {
	Range  stats.YearRange `json:"range"`
	Counts []yearCount     `json:"counts"`
	Max    int             `json:"max"`
	Total  int             `json:"total"`
}

type familyOutcome struct {
	Family domain.Family `json:"family"`
	stats.Outcome
}

// handleYears serves per-year launch counts, optionally filtered by outcome,
// country and family.
func (h *statsHandler) handleYears(w http.ResponseWriter, r *http.Request) {
	pred, msg := predicateFromQuery(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	records := h.source.Snapshot()
	years := stats.DefaultYearRange()
	series := stats.Series(records, years, pred)

	resp := yearsResponse{
		Range:  years,
		Counts: make([]yearCount, len(series)),
		Max:    stats.MaxYearlyCount(records, years, pred),
		Total:  stats.Total(records, years, pred),
	}
	for i, y := range years.Years() {
		resp.Counts[i] = yearCount{Year: y, Count: series[i]}
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleCountries serves the countries ranked by successful launches.
func (h *statsHandler) handleCountries(w http.ResponseWriter, _ *http.Request) {
	ranking := stats.RankCountries(h.source.Snapshot())
	if ranking == nil {
		ranking = []stats.CountryTotal{}
	}
	writeJSON(w, http.StatusOK, ranking)
}

// handleFamilies serves success and failure totals per family in report
// order, followed by the unclassified launches.
func (h *statsHandler) handleFamilies(w http.ResponseWriter, _ *http.Request) {
	records := h.source.Snapshot()
	years := stats.DefaultYearRange()

	families := append(domain.Families(), domain.FamilyUnknown)
	out := make([]familyOutcome, 0, len(families))
	for _, f := range families {
		out = append(out, familyOutcome{
			Family:  f,
			Outcome: stats.CountByOutcome(records, years, stats.FamilyIs(f)),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// predicateFromQuery builds the filter of a stats request. It returns a
// client-facing message when a parameter is invalid.
func predicateFromQuery(r *http.Request) (stats.Predicate, string) {
	q := r.URL.Query()
	var preds []stats.Predicate

	switch q.Get("outcome") {
	case "":
	case "success":
		preds = append(preds, stats.Successful())
	case "failure":
		preds = append(preds, stats.Failed())
	default:
		return nil, "outcome must be success or failure"
	}

	if name := q.Get("country"); name != "" {
		c := domain.ParseCountry(name)
		if c == domain.CountryUnknown && name != string(domain.CountryUnknown) {
			return nil, "unknown country: " + name
		}
		preds = append(preds, stats.CountryIs(c))
	}

	if name := q.Get("family"); name != "" {
		f := domain.ParseFamily(name)
		if f == domain.FamilyUnknown && name != string(domain.FamilyUnknown) {
			return nil, "unknown family: " + name
		}
		preds = append(preds, stats.FamilyIs(f))
	}

	return stats.And(preds...), ""
}
