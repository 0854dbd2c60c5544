package record

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/hexlocker/pswm/internal/pswmerr"
)

// countSize is the fixed width, in bytes, of every length/count field on
// the wire. The original implementation serialized the host's native
// usize; this is fixed to 8 bytes big-endian per spec's portability
// recommendation.
const countSize = 8

// reader is the read half of the encrypted-stream capability a Record is
// decoded from. *container.Container satisfies it.
type reader interface {
	ReadExact(dst []byte) error
	ReadUntil(terminator byte) []byte
}

// writer is the write half of the encrypted-stream capability a Record is
// encoded onto. *container.Writer and *container.Appender satisfy it.
type writer interface {
	Write(p []byte) (int, error)
}

func readCount(r reader) (uint64, error) {
	buf := make([]byte, countSize)
	if err := r.ReadExact(buf); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf), nil
}

func writeCount(w writer, n uint64) error {
	buf := make([]byte, countSize)
	binary.BigEndian.PutUint64(buf, n)
	_, err := w.Write(buf)
	return err
}

func readString(r reader) (string, error) {
	raw := r.ReadUntil(0x00)
	if !utf8.Valid(raw) {
		return "", pswmerr.New(pswmerr.EncodingError)
	}
	return string(raw), nil
}

func writeString(w writer, s string) error {
	if _, err := w.Write([]byte(s)); err != nil {
		return err
	}
	_, err := w.Write([]byte{0x00})
	return err
}

func readAdditionalFields(r reader) (map[string]string, error) {
	count, err := readCount(r)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]string, count)
	for i := uint64(0); i < count; i++ {
		key, err := readString(r)
		if err != nil {
			return nil, err
		}
		value, err := readString(r)
		if err != nil {
			return nil, err
		}
		fields[key] = value
	}
	return fields, nil
}

func writeAdditionalFields(w writer, fields map[string]string) error {
	if err := writeCount(w, uint64(len(fields))); err != nil {
		return err
	}
	for key, value := range fields {
		if err := writeString(w, key); err != nil {
			return err
		}
		if err := writeString(w, value); err != nil {
			return err
		}
	}
	return nil
}

// ReadRecord decodes one record from r: password, domain, username, then
// the additional-fields map.
func ReadRecord(r reader) (*Record, error) {
	password, err := readString(r)
	if err != nil {
		return nil, err
	}
	domain, err := readString(r)
	if err != nil {
		return nil, err
	}
	username, err := readString(r)
	if err != nil {
		return nil, err
	}
	fields, err := readAdditionalFields(r)
	if err != nil {
		return nil, err
	}
	return &Record{
		Password:         password,
		Domain:           domain,
		Username:         username,
		AdditionalFields: fields,
	}, nil
}

// WriteRecord encodes one record onto w, mirroring ReadRecord's field
// order.
func WriteRecord(w writer, rec Record) error {
	if err := writeString(w, rec.Password); err != nil {
		return err
	}
	if err := writeString(w, rec.Domain); err != nil {
		return err
	}
	if err := writeString(w, rec.Username); err != nil {
		return err
	}
	return writeAdditionalFields(w, rec.AdditionalFields)
}

// WriteRecords encodes each record in recs onto w in order.
func WriteRecords(w writer, recs []Record) error {
	for _, rec := range recs {
		if err := WriteRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}
