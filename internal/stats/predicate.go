package stats

import "github.com/couchcryptid/launch-data-etl/internal/domain"

// Predicate selects the records a query counts.
type Predicate func(domain.LaunchRecord) bool

// All matches every record.
func All() Predicate {
	return func(domain.LaunchRecord) bool { return true }
}

// Successful matches successful launches.
func Successful() Predicate {
	return func(r domain.LaunchRecord) bool { return r.Success }
}

// Failed matches total or partial failures.
func Failed() Predicate {
	return func(r domain.LaunchRecord) bool { return !r.Success }
}

// CountryIs matches launches attributed to c.
func CountryIs(c domain.Country) Predicate {
	return func(r domain.LaunchRecord) bool { return r.Country == c }
}

// FamilyIs matches launches of family f.
func FamilyIs(f domain.Family) Predicate {
	return func(r domain.LaunchRecord) bool { return r.Family == f }
}

// And matches records accepted by every predicate. With no predicates it
// matches everything.
func And(preds ...Predicate) Predicate {
	return func(r domain.LaunchRecord) bool {
		for _, p := range preds {
			if p != nil && !p(r) {
				return false
			}
		}
		return true
	}
}

func orAll(pred Predicate) Predicate {
	if pred == nil {
		return All()
	}
	return pred
}
