package record

import "testing"

func TestSortByDomainGroups(t *testing.T) {
	recs := []Record{
		{Password: "a", Domain: "x.com", Username: "u1", AdditionalFields: map[string]string{}},
		{Password: "b", Domain: "y.com", Username: "u2", AdditionalFields: map[string]string{}},
		{Password: "c", Domain: "x.com", Username: "u3", AdditionalFields: map[string]string{}},
	}

	s := &fakeStream{}
	if err := WriteRecords(s, recs); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	result, err := Sort(NewIterator(s), SortByDomain())
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if len(result.Buckets["x.com"]) != 2 {
		t.Errorf("x.com bucket = %+v, want 2 records", result.Buckets["x.com"])
	}
	if len(result.Buckets["y.com"]) != 1 {
		t.Errorf("y.com bucket = %+v, want 1 record", result.Buckets["y.com"])
	}
	if len(result.NoField) != 0 {
		t.Errorf("NoField = %+v, want empty (Domain is always present)", result.NoField)
	}
}

func TestSortByFieldSeparatesAbsentField(t *testing.T) {
	recs := []Record{
		{Password: "a", Domain: "d1", Username: "u1", AdditionalFields: map[string]string{"Phone Number": "111"}},
		{Password: "b", Domain: "d2", Username: "u2", AdditionalFields: map[string]string{}},
	}

	s := &fakeStream{}
	if err := WriteRecords(s, recs); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	result, err := Sort(NewIterator(s), SortByField("Phone Number"))
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if len(result.Buckets["111"]) != 1 {
		t.Errorf("bucket[111] = %+v, want 1 record", result.Buckets["111"])
	}
	if len(result.NoField) != 1 || result.NoField[0].Username != "u2" {
		t.Errorf("NoField = %+v, want [u2]", result.NoField)
	}
}

func TestSortOverFilteredIterator(t *testing.T) {
	recs := []Record{
		{Password: "a", Domain: "keep.com", Username: "u1", AdditionalFields: map[string]string{}},
		{Password: "b", Domain: "skip.com", Username: "u2", AdditionalFields: map[string]string{}},
	}

	s := &fakeStream{}
	if err := WriteRecords(s, recs); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	filtered := FilterRecords(NewIterator(s), Filter{Domain: strPtr("keep")})
	result, err := Sort(filtered, SortByUsername())
	if err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if len(result.Buckets) != 1 || len(result.Buckets["u1"]) != 1 {
		t.Errorf("Buckets = %+v, want only u1", result.Buckets)
	}
}
