package domain

import "strings"

// falcon1Dev is the designation of the developmental Falcon 1 flights. The
// chronology does not flag their failures in the remarks.
const falcon1Dev = "Falcon-1 (dev)"

// siteCorrections repairs known irregular site spellings. Each is a literal
// replacement over the whole site string.
var siteCorrections = [][2]string{
	{"LC-1/5", "Ba LC-1/5"},
	{"SLC-", "SLC "},
	{"YS(", "YS ("},
}

// Normalizer turns raw chronology rows into launch records.
type Normalizer struct {
	fuzzy DateDecoder
}

// NewNormalizer creates a Normalizer. The fuzzy decoder is only consulted
// for fuzzy-mode dates; pass nil when only persisted rows are normalized.
func NewNormalizer(fuzzy DateDecoder) *Normalizer {
	return &Normalizer{fuzzy: fuzzy}
}

// Normalize trims, cleans and classifies one raw row. fuzzyDate selects the
// natural-language date path for freshly scraped rows; persisted rows use the
// exact year-prefix path. Only the date can fail: country and family degrade
// to their unknown values.
func (n *Normalizer) Normalize(raw RawLaunch, fuzzyDate bool) (LaunchRecord, error) {
	date := strings.TrimSpace(raw.Date)
	vehicle := strings.TrimSpace(raw.Vehicle)
	site := strings.TrimSpace(raw.Site)
	remarks := strings.TrimSpace(raw.Remarks)

	year, err := n.decodeYear(date, fuzzyDate)
	if err != nil {
		return LaunchRecord{}, err
	}

	vehicle = normalizeVehicle(vehicle)
	site = normalizeSite(site)
	remarks = strings.ToLower(remarks)

	return LaunchRecord{
		Year:    year,
		Site:    site,
		Country: resolveCountry(site),
		Vehicle: vehicle,
		Family:  inferFamily(vehicle),
		Remarks: remarks,
		Success: classifySuccess(vehicle, remarks),
	}, nil
}

func (n *Normalizer) decodeYear(date string, fuzzyDate bool) (int, error) {
	mode := DateModeExact
	decode := decodeExactYear
	if fuzzyDate {
		mode = DateModeFuzzy
		decode = func(d string) (int, error) { return decodeFuzzyYear(n.fuzzy, d) }
	}

	year, err := decode(date)
	if err != nil {
		return 0, err
	}
	if err := checkYear(date, mode, year); err != nil {
		return 0, err
	}
	return year, nil
}

// normalizeVehicle collapses whitespace runs, which the source tables
// sometimes carry inside designations.
func normalizeVehicle(vehicle string) string {
	return strings.Join(strings.Fields(vehicle), " ")
}

// normalizeSite drops commas and a leading "@" marker, then applies the
// literal corrections. Corrections run before the prefix is tokenized.
func normalizeSite(site string) string {
	site = strings.ReplaceAll(site, ",", " ")
	site = strings.TrimPrefix(site, "@")
	for _, c := range siteCorrections {
		site = strings.ReplaceAll(site, c[0], c[1])
	}
	return site
}

// resolveCountry looks up the first whitespace token of a cleaned site.
// Matching is exact and case-sensitive.
func resolveCountry(site string) Country {
	tokens := strings.Fields(site)
	if len(tokens) == 0 {
		return CountryUnknown
	}
	prefix := tokens[0]
	for _, cs := range countrySitePrefixes {
		for _, p := range cs.prefixes {
			if p == prefix {
				return cs.country
			}
		}
	}
	return CountryUnknown
}

// inferFamily returns the canonical family of the first pattern contained
// in the vehicle designation.
func inferFamily(vehicle string) Family {
	for _, fp := range familyPatterns {
		if strings.Contains(vehicle, fp.pattern) {
			return fp.canonical
		}
	}
	return FamilyUnknown
}

// classifySuccess reads the outcome from the lowercased remarks.
func classifySuccess(vehicle, remarks string) bool {
	// Falcon-1 (dev) launches failed, but the remarks do not say so.
	if strings.Contains(vehicle, falcon1Dev) {
		return false
	}
	return !strings.Contains(remarks, "failure") && !strings.Contains(remarks, "failed")
}
