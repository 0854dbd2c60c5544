package record

import (
	"reflect"
	"testing"
)

// fakeStream is an in-memory reader+writer+eof capability for exercising
// the codec and iterator without a real container.
type fakeStream struct {
	buf []byte
	pos int
}

func (f *fakeStream) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

func (f *fakeStream) ReadExact(dst []byte) error {
	if f.pos+len(dst) > len(f.buf) {
		return errShort
	}
	copy(dst, f.buf[f.pos:f.pos+len(dst)])
	f.pos += len(dst)
	return nil
}

func (f *fakeStream) ReadUntil(terminator byte) []byte {
	start := f.pos
	for f.pos < len(f.buf) && f.buf[f.pos] != terminator {
		f.pos++
	}
	result := append([]byte(nil), f.buf[start:f.pos]...)
	f.pos++
	return result
}

func (f *fakeStream) Eof() bool {
	return f.pos >= len(f.buf)
}

var errShort = errShortSentinel{}

type errShortSentinel struct{}

func (errShortSentinel) Error() string { return "short read" }

func TestRecordRoundTrip(t *testing.T) {
	rec := Record{
		Password:         "hunter2",
		Domain:           "example.com",
		Username:         "alice",
		AdditionalFields: map[string]string{"Phone Number": "0502057422"},
	}

	s := &fakeStream{}
	if err := WriteRecord(s, rec); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}

	got, err := ReadRecord(s)
	if err != nil {
		t.Fatalf("ReadRecord: %v", err)
	}
	if !reflect.DeepEqual(*got, rec) {
		t.Errorf("round trip = %+v, want %+v", *got, rec)
	}
}

func TestRecordWithNoAdditionalFields(t *testing.T) {
	rec := Record{Password: "p", Domain: "d", Username: "u", AdditionalFields: map[string]string{}}

	s := &fakeStream{}
	if err := WriteRecord(s, rec); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}
	got, err := ReadRecord(s)
	if err != nil {
		t.Fatalf("ReadRecord: %v", err)
	}
	if len(got.AdditionalFields) != 0 {
		t.Errorf("AdditionalFields = %v, want empty", got.AdditionalFields)
	}
}

func TestIteratorEofTerminatesWithNoOuterCount(t *testing.T) {
	recs := []Record{
		{Password: "a", Domain: "d1", Username: "u1", AdditionalFields: map[string]string{}},
		{Password: "b", Domain: "d2", Username: "u2", AdditionalFields: map[string]string{}},
	}

	s := &fakeStream{}
	if err := WriteRecords(s, recs); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	it := NewIterator(s)
	got, err := Collect(it)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if !reflect.DeepEqual(got, recs) {
		t.Errorf("Collect() = %+v, want %+v", got, recs)
	}

	// the stream carries no leading count, so a stream with zero records
	// is immediately at Eof.
	empty := &fakeStream{}
	emptyIt := NewIterator(empty)
	rec, err := emptyIt.Next()
	if err != nil || rec != nil {
		t.Errorf("Next() on empty stream = (%v, %v), want (nil, nil)", rec, err)
	}
}
