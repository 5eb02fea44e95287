package posting

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// The binary layout below reuses the teacher's length-prefixed string/value
// encoding idiom (a bytes.Buffer filled with binary.Write calls, strings
// written as a uint32 length followed by raw bytes) but drops the
// node-index-map tower reconstruction that used to accompany it: that
// machinery existed to rebuild an arbitrary skip-list pointer graph after a
// phrase search, and a tf-only, id-ascending list has no graph to rebuild —
// it is read back exactly as the two flat arrays it was built from.

func writeString(buf *bytes.Buffer, s string) error {
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := buf.WriteString(s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeIntKeyed serializes a term and its List[int] (the simple and SPIMI
// layouts, which key postings by the dense integer DocId).
func EncodeIntKeyed(buf *bytes.Buffer, term string, l *List[int]) error {
	if err := writeString(buf, term); err != nil {
		return fmt.Errorf("posting: encode term: %w", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(l.Len())); err != nil {
		return fmt.Errorf("posting: encode df: %w", err)
	}
	for i := 0; i < l.Len(); i++ {
		e := l.At(i)
		if err := binary.Write(buf, binary.LittleEndian, int32(e.ID)); err != nil {
			return fmt.Errorf("posting: encode docid: %w", err)
		}
		if err := binary.Write(buf, binary.LittleEndian, int32(e.TF)); err != nil {
			return fmt.Errorf("posting: encode tf: %w", err)
		}
	}
	return nil
}

// DecodeIntKeyed is the inverse of EncodeIntKeyed.
func DecodeIntKeyed(r io.Reader) (string, *List[int], error) {
	term, err := readString(r)
	if err != nil {
		return "", nil, fmt.Errorf("posting: decode term: %w", err)
	}
	var df uint32
	if err := binary.Read(r, binary.LittleEndian, &df); err != nil {
		return "", nil, fmt.Errorf("posting: decode df: %w", err)
	}
	ids := make([]int, df)
	tfs := make([]int, df)
	for i := range ids {
		var id, tf int32
		if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
			return "", nil, fmt.Errorf("posting: decode docid: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &tf); err != nil {
			return "", nil, fmt.Errorf("posting: decode tf: %w", err)
		}
		ids[i] = int(id)
		tfs[i] = int(tf)
	}
	return term, NewList(ids, tfs), nil
}

// EncodeStringKeyed serializes a term and its List[string] (the segment
// layout, which uses DocNo directly as the posting key).
func EncodeStringKeyed(buf *bytes.Buffer, term string, l *List[string]) error {
	if err := writeString(buf, term); err != nil {
		return fmt.Errorf("posting: encode term: %w", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(l.Len())); err != nil {
		return fmt.Errorf("posting: encode df: %w", err)
	}
	for i := 0; i < l.Len(); i++ {
		e := l.At(i)
		if err := writeString(buf, e.ID); err != nil {
			return fmt.Errorf("posting: encode docno: %w", err)
		}
		if err := binary.Write(buf, binary.LittleEndian, int32(e.TF)); err != nil {
			return fmt.Errorf("posting: encode tf: %w", err)
		}
	}
	return nil
}

// DecodeStringKeyed is the inverse of EncodeStringKeyed.
func DecodeStringKeyed(r io.Reader) (string, *List[string], error) {
	term, err := readString(r)
	if err != nil {
		return "", nil, fmt.Errorf("posting: decode term: %w", err)
	}
	var df uint32
	if err := binary.Read(r, binary.LittleEndian, &df); err != nil {
		return "", nil, fmt.Errorf("posting: decode df: %w", err)
	}
	ids := make([]string, df)
	tfs := make([]int, df)
	for i := range ids {
		docno, err := readString(r)
		if err != nil {
			return "", nil, fmt.Errorf("posting: decode docno: %w", err)
		}
		var tf int32
		if err := binary.Read(r, binary.LittleEndian, &tf); err != nil {
			return "", nil, fmt.Errorf("posting: decode tf: %w", err)
		}
		ids[i] = docno
		tfs[i] = int(tf)
	}
	return term, NewList(ids, tfs), nil
}
