// Package domain models historical orbital launch records and the rules that
// turn raw chronology rows into classified launch records.
//
// # Data Source
//
// Launch rows originate from the yearly orbital launch chronologies published
// at https://space.skyrocket.de/. An upstream scraper extracts four cells per
// table row (date, vehicle, site, remarks) and hands them over either as a
// semicolon-delimited file or as flat JSON on the Kafka source topic. Neither
// path is cleaned: cells carry stray whitespace, irregular punctuation and
// inconsistent site spellings.
//
// # Chronology Conventions
//
// Date format:
//
//	Freshly scraped dates are irregular, usually day-first ("04.10.1957") but
//	sometimes prose ("4 October 1957"). They are decoded by a natural-language
//	date parser (fuzzy mode). Rows whose day is unknown carry an "x" in the
//	date (e.g. "xx.10.1962") and are not launch records at all; see [IsUndated].
//	Persisted dates are year-first and only the leading four digits are read
//	(exact mode).
//
// Site codes:
//
//	"<prefix> <pad>"  →  e.g. "Ba LC-1/5", "CC SLC 40", "Xi LC-2".
//	The prefix identifies the launch range and therefore the country. Known
//	irregular spellings are repaired before the prefix is read:
//	  "LC-1/5" alone      → "Ba LC-1/5"  (Baikonur pad without range prefix)
//	  "SLC-40"            → "SLC 40"     (complex suffix joined by a hyphen)
//	  "YS(...)"           → "YS (...)"   (parenthesis glued to the code)
//	A leading "@" and commas are also dropped.
//
// Vehicle designations:
//
//	Free text such as "Soyuz-2-1b Fregat-M" or "CZ-2C". The family is the
//	first entry of [familyPatterns] found as a substring; R-7 derivatives
//	(Sputnik, Vostok, Voskhod, Molniya, Soyuz) fold into "R-7" and the
//	Chinese "CZ" designation folds into "Long March".
//
// Outcome:
//
//	Remarks mention "failure" or "failed" for total or partial failures.
//	The developmental Falcon-1 flights are not marked in the remarks and are
//	classified as failed by vehicle designation instead.
//
// Unknown values:
//
//	Country and family are best-effort. Misses become [CountryUnknown] and
//	[FamilyUnknown] and never fail a record. Dates are not best-effort: a
//	date that cannot be decoded, or decodes to a year outside
//	[YearMinimum, YearMaximum()], is a [MalformedDateError].
//
// # ID Generation
//
// Launch IDs are deterministic SHA-256 hashes of the trimmed raw fields so the
// sink topic can be consumed idempotently. See [LaunchID].
package domain
