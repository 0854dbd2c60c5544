package app

import (
	"testing"

	"github.com/hexlocker/pswm/internal/record"
)

// sliceSource is a recordSource backed by a plain slice, for exercising
// drain without a real container.
type sliceSource struct {
	recs []record.Record
	pos  int
}

func (s *sliceSource) Next() (*record.Record, error) {
	if s.pos >= len(s.recs) {
		return nil, nil
	}
	rec := s.recs[s.pos]
	s.pos++
	return &rec, nil
}

func TestDrainCollectsEverything(t *testing.T) {
	src := &sliceSource{recs: []record.Record{
		{Password: "a", Domain: "d1", Username: "u1"},
		{Password: "b", Domain: "d2", Username: "u2"},
	}}
	got, err := drain(src)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("drain() = %+v, want 2 records", got)
	}
}

func TestGroupedRecordsCombinesBucketsAndNoField(t *testing.T) {
	sorted := &record.SortedRecords{
		Buckets: map[string][]record.Record{
			"x.com": {{Password: "a", Domain: "x.com", Username: "u1"}},
			"y.com": {{Password: "b", Domain: "y.com", Username: "u2"}},
		},
		NoField: []record.Record{{Password: "c", Domain: "z.com", Username: "u3"}},
	}
	groups := groupedRecords(sorted)

	var total int
	var sawNoFieldGroup bool
	for _, g := range groups {
		total += len(g.Records)
		if g.Header == "" {
			sawNoFieldGroup = true
		}
	}
	if total != 3 {
		t.Errorf("groupedRecords() covers %d records, want 3", total)
	}
	if len(groups) != 3 {
		t.Errorf("groupedRecords() = %d groups, want 3 (2 buckets + NoField)", len(groups))
	}
	if !sawNoFieldGroup {
		t.Error("groupedRecords() should include an unlabeled group for NoField")
	}
}

func TestGroupedRecordsOmitsEmptyNoField(t *testing.T) {
	sorted := &record.SortedRecords{
		Buckets: map[string][]record.Record{
			"x.com": {{Password: "a", Domain: "x.com", Username: "u1"}},
		},
	}
	groups := groupedRecords(sorted)
	if len(groups) != 1 {
		t.Errorf("groupedRecords() = %d groups, want 1 (no empty NoField group)", len(groups))
	}
}
