package iso8211

import "os"

// Record is one data record's decoded field set: raw bytes per tag, ready
// for either hand-offset parsing (fixed S-57 record headers) or generic
// subfield decoding via File.Decode.
type Record struct {
	Fields map[string][]byte
}

// File is a fully parsed ISO/IEC 8211 container: the field definitions
// found in its Data Descriptive Record, plus every data record that
// follows it.
type File struct {
	defs    map[string]*fieldDefinition
	Records []*Record
}

// Decode generically decodes a data record's raw field bytes for tag using
// the format this file's DDR declared for that tag. Fields with no known
// format (or that are hand-parsed by fixed byte offsets elsewhere, like
// FRID/VRID headers) simply aren't looked up this way.
func (f *File) Decode(tag string, raw []byte) ([]map[string]Value, error) {
	return decodeGroup(f.defs[tag], raw)
}

// Open reads and parses path as a single ISO/IEC 8211 container.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses an in-memory ISO/IEC 8211 container: one DDR followed by
// zero or more data records, each self-describing its own length via its
// leader.
func Parse(data []byte) (*File, error) {
	file := &File{defs: make(map[string]*fieldDefinition)}

	offset := int64(0)
	sawDDR := false
	for offset < int64(len(data)) {
		if int(offset)+leaderSize > len(data) {
			return nil, &TruncatedRecordError{Offset: offset, Expected: leaderSize, Got: len(data) - int(offset)}
		}
		l, err := parseLeader(data[offset:], offset)
		if err != nil {
			return nil, err
		}
		if int(offset)+l.recordLength > len(data) {
			return nil, &TruncatedRecordError{Offset: offset, Expected: l.recordLength, Got: len(data) - int(offset)}
		}
		record := data[offset : offset+int64(l.recordLength)]

		dirStart := leaderSize
		dirEntries, err := parseDirectory(record[dirStart:l.baseAddress], l, offset)
		if err != nil {
			return nil, err
		}

		if l.id == leaderDDR {
			sawDDR = true
			for _, e := range dirEntries {
				if e.tag == "0000" {
					continue
				}
				raw := fieldBytes(record, l, e)
				def, err := parseFieldDefinition(e.tag, raw)
				if err != nil {
					return nil, err
				}
				file.defs[e.tag] = def
			}
		} else {
			if !sawDDR {
				return nil, &InvalidLeaderError{Offset: offset, Reason: "data record encountered before any DDR"}
			}
			rec := &Record{Fields: make(map[string][]byte, len(dirEntries))}
			for _, e := range dirEntries {
				rec.Fields[e.tag] = fieldBytes(record, l, e)
			}
			file.Records = append(file.Records, rec)
		}

		offset += int64(l.recordLength)
	}

	return file, nil
}

func fieldBytes(record []byte, l leader, e dirEntry) []byte {
	start := l.baseAddress + e.position
	end := start + e.length
	if start < 0 || end > len(record) {
		return nil
	}
	return record[start:end]
}
