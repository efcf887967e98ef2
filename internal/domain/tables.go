package domain

// Country is a launching state as resolved from the site prefix.
type Country string

const (
	CountryBrazil     Country = "Brazil"
	CountryChina      Country = "China"
	CountryEurope     Country = "Europe"
	CountryIndia      Country = "India"
	CountryIran       Country = "Iran"
	CountryIsrael     Country = "Israel"
	CountryJapan      Country = "Japan"
	CountryNorthKorea Country = "North Korea"
	CountrySouthKorea Country = "South Korea"
	CountryUSA        Country = "USA"
	CountryUSSRRussia Country = "USSR/Russia"

	CountryUnknown Country = "unknown"
)

// Family is a rocket lineage.
type Family string

const (
	FamilyR7        Family = "R-7"
	FamilyKosmos    Family = "Kosmos"
	FamilyProton    Family = "Proton"
	FamilyLongMarch Family = "Long March"
	FamilyAtlas     Family = "Atlas"
	FamilyFalcon    Family = "Falcon"
	FamilyAriane    Family = "Ariane"

	FamilyUnknown Family = "unknown"
)

type countrySites struct {
	country  Country
	prefixes []string
}

// countrySitePrefixes maps each country to the site prefixes of its ranges.
// A prefix belongs to exactly one country.
var countrySitePrefixes = []countrySites{
	{CountryBrazil, []string{"Al"}},
	{CountryChina, []string{"ECS", "Jq", "Xi", "TY", "We", "YS"}},
	{CountryEurope, []string{"Ha", "Ko", "Wo"}},
	{CountryIndia, []string{"Sr"}},
	{CountryIran, []string{"Sem", "Shr"}},
	{CountryIsrael, []string{"Pa"}},
	{CountryJapan, []string{"KA", "Ka", "Ta"}},
	{CountryNorthKorea, []string{"So", "To"}},
	{CountrySouthKorea, []string{"Na"}},
	{CountryUSA, []string{"BC", "CC", "CCK", "Ed", "Ga", "In", "Kau", "Kd", "Kw", "Mo", "Nq", "Om", "OnS", "SLC", "SM", "Va", "WI"}},
	{CountryUSSRRussia, []string{"Ba", "BaS", "Do", "KY", "Pl", "SL", "Sv", "Vo"}},
}

type familyPattern struct {
	pattern   string
	canonical Family
}

// familyPatterns is scanned in order and the first substring hit wins.
// The order is load-bearing: canonical names precede aliases.
var familyPatterns = []familyPattern{
	{"R-7", FamilyR7},
	{"Kosmos", FamilyKosmos},
	{"Proton", FamilyProton},
	{"Long March", FamilyLongMarch},
	{"Atlas", FamilyAtlas},
	{"Falcon", FamilyFalcon},
	{"Ariane", FamilyAriane},

	// R-7 derivatives.
	{"Molniya", FamilyR7},
	{"Soyuz", FamilyR7},
	{"Sputnik", FamilyR7},
	{"Voskhod", FamilyR7},
	{"Vostok", FamilyR7},

	// Chinese designation of the Long March.
	{"CZ", FamilyLongMarch},
}

// Countries returns the known countries in table order.
func Countries() []Country {
	out := make([]Country, 0, len(countrySitePrefixes))
	for _, cs := range countrySitePrefixes {
		out = append(out, cs.country)
	}
	return out
}

// Families returns the canonical families in report order.
func Families() []Family {
	return []Family{FamilyR7, FamilyKosmos, FamilyProton, FamilyLongMarch, FamilyAtlas, FamilyFalcon, FamilyAriane}
}

// IsKnown reports whether c is a member of the country table.
func (c Country) IsKnown() bool {
	for _, cs := range countrySitePrefixes {
		if cs.country == c {
			return true
		}
	}
	return false
}

// IsKnown reports whether f is a canonical family.
func (f Family) IsKnown() bool {
	for _, known := range Families() {
		if known == f {
			return true
		}
	}
	return false
}

// ParseCountry maps a persisted or user-supplied name back to a Country.
// Unrecognized names yield CountryUnknown.
func ParseCountry(s string) Country {
	c := Country(s)
	if c.IsKnown() {
		return c
	}
	return CountryUnknown
}

// ParseFamily maps a persisted or user-supplied name back to a Family.
// Unrecognized names yield FamilyUnknown.
func ParseFamily(s string) Family {
	f := Family(s)
	if f.IsKnown() {
		return f
	}
	return FamilyUnknown
}
