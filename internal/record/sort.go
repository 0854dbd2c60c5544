package record

// SortBy selects the field records are grouped by. It is a closed sum
// type: exactly one of Domain, Username, or a named additional field.
type SortBy struct {
	kind  sortKind
	field string
}

type sortKind int

const (
	sortDomain sortKind = iota
	sortUsername
	sortOther
)

// SortByDomain groups by the Domain field.
func SortByDomain() SortBy { return SortBy{kind: sortDomain} }

// SortByUsername groups by the Username field.
func SortByUsername() SortBy { return SortBy{kind: sortUsername} }

// SortByField groups by the named additional field.
func SortByField(field string) SortBy { return SortBy{kind: sortOther, field: field} }

// fieldValue returns the grouping key for rec under this SortBy, and
// whether rec has that field at all (Domain and Username are always
// present; a named additional field may be absent).
func (s SortBy) fieldValue(rec Record) (string, bool) {
	switch s.kind {
	case sortDomain:
		return rec.Domain, true
	case sortUsername:
		return rec.Username, true
	default:
		value, ok := rec.AdditionalFields[s.field]
		return value, ok
	}
}

// SortedRecords groups an iterator's output by a chosen field. Records
// whose chosen field is absent (only possible for a named additional
// field) go to NoField instead of a Buckets entry; Go has no native
// optional map key, so this stands in for the original's
// HashMap<Option<String>, Vec<Password>>.
type SortedRecords struct {
	SortBy  SortBy
	Buckets map[string][]Record
	NoField []Record
}

// Sort drains it, grouping every record by sortBy. Intra-bucket order
// follows iteration order; bucket iteration order is unspecified (Go map
// order).
func Sort(it recordSource, sortBy SortBy) (*SortedRecords, error) {
	result := &SortedRecords{
		SortBy:  sortBy,
		Buckets: make(map[string][]Record),
	}
	for {
		rec, err := it.Next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return result, nil
		}
		value, ok := sortBy.fieldValue(*rec)
		if !ok {
			result.NoField = append(result.NoField, *rec)
			continue
		}
		result.Buckets[value] = append(result.Buckets[value], *rec)
	}
}

// recordSource is satisfied by both *Iterator and *FilteredIterator, so
// Sort can consume either the raw or the filtered sequence.
type recordSource interface {
	Next() (*Record, error)
}
