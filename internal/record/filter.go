package record

import "strings"

// Filter holds optional substring constraints on the core fields and a
// map of named additional-field substring constraints.
type Filter struct {
	Password          *string
	Domain            *string
	Username          *string
	AdditionalFilters map[string]string
}

// Test reports whether rec passes every set constraint: each present core
// field constraint must be a substring match, and every named
// additional-field constraint's key must exist in rec's map with a value
// containing the substring.
func (f Filter) Test(rec Record) bool {
	if f.Password != nil && !strings.Contains(rec.Password, *f.Password) {
		return false
	}
	if f.Domain != nil && !strings.Contains(rec.Domain, *f.Domain) {
		return false
	}
	if f.Username != nil && !strings.Contains(rec.Username, *f.Username) {
		return false
	}
	for key, substr := range f.AdditionalFilters {
		value, ok := rec.AdditionalFields[key]
		if !ok || !strings.Contains(value, substr) {
			return false
		}
	}
	return true
}

// IsRedundant reports whether no constraint is set, in which case callers
// may bypass filtering entirely.
func (f Filter) IsRedundant() bool {
	return f.Password == nil && f.Domain == nil && f.Username == nil && len(f.AdditionalFilters) == 0
}

// FilteredIterator re-checks an underlying Iterator's Next until a record
// passes filter or the sequence ends.
type FilteredIterator struct {
	it     *Iterator
	filter Filter
}

// FilterRecords wraps it so that Next only yields records passing filter.
func FilterRecords(it *Iterator, filter Filter) *FilteredIterator {
	return &FilteredIterator{it: it, filter: filter}
}

// Next returns the next passing record, or (nil, nil) at end of stream.
func (fi *FilteredIterator) Next() (*Record, error) {
	for {
		rec, err := fi.it.Next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, nil
		}
		if fi.filter.Test(*rec) {
			return rec, nil
		}
	}
}
