package iso8211

import (
	"encoding/binary"
	"reflect"
)

// Value is a decoded subfield value: string, one of the uintN/intN kinds,
// or []byte for an arbitrary-width bit string.
type Value interface{}

// readSubfield consumes one subfield from buf starting at offset, per the
// terminator discipline in DESIGN NOTES "terminator sentinel pitfall":
// fixed-width descriptors (Size > 0, numeric kinds) are never scanned for
// 0x1e/0x1f, since that byte value can legally occur inside binary data.
// Only reflect.String subfields with Size == 0 are read up to the next
// subfield or field terminator.
func readSubfield(desc subfieldDescriptor, buf []byte, offset int) (Value, int, error) {
	switch desc.Kind {
	case reflect.String:
		if desc.Size > 0 {
			if offset+desc.Size > len(buf) {
				return nil, 0, &TruncatedRecordError{Expected: desc.Size, Got: len(buf) - offset}
			}
			return string(buf[offset : offset+desc.Size]), desc.Size, nil
		}
		end := offset
		for end < len(buf) && buf[end] != subfieldTerminator && buf[end] != fieldTerminator {
			end++
		}
		consumed := end - offset
		if end < len(buf) {
			consumed++ // swallow the terminator byte itself
		}
		return string(buf[offset:end]), consumed, nil
	case reflect.Slice:
		if offset+desc.Size > len(buf) {
			return nil, 0, &TruncatedRecordError{Expected: desc.Size, Got: len(buf) - offset}
		}
		out := make([]byte, desc.Size)
		copy(out, buf[offset:offset+desc.Size])
		return out, desc.Size, nil
	case reflect.Uint8:
		if offset+1 > len(buf) {
			return nil, 0, &TruncatedRecordError{Expected: 1, Got: len(buf) - offset}
		}
		return buf[offset], 1, nil
	case reflect.Uint16:
		if offset+2 > len(buf) {
			return nil, 0, &TruncatedRecordError{Expected: 2, Got: len(buf) - offset}
		}
		return binary.LittleEndian.Uint16(buf[offset : offset+2]), 2, nil
	case reflect.Uint32:
		if offset+4 > len(buf) {
			return nil, 0, &TruncatedRecordError{Expected: 4, Got: len(buf) - offset}
		}
		return binary.LittleEndian.Uint32(buf[offset : offset+4]), 4, nil
	case reflect.Int8:
		if offset+1 > len(buf) {
			return nil, 0, &TruncatedRecordError{Expected: 1, Got: len(buf) - offset}
		}
		return int8(buf[offset]), 1, nil
	case reflect.Int16:
		if offset+2 > len(buf) {
			return nil, 0, &TruncatedRecordError{Expected: 2, Got: len(buf) - offset}
		}
		return int16(binary.LittleEndian.Uint16(buf[offset : offset+2])), 2, nil
	case reflect.Int32:
		if offset+4 > len(buf) {
			return nil, 0, &TruncatedRecordError{Expected: 4, Got: len(buf) - offset}
		}
		return int32(binary.LittleEndian.Uint32(buf[offset : offset+4])), 4, nil
	default:
		return nil, 0, &UnknownFormatError{}
	}
}

// decodeGroup decodes raw bytes against a field's flattened subfield
// format, producing one map per repetition. Non-repeating fields produce
// exactly one map (or zero if raw is empty).
func decodeGroup(def *fieldDefinition, raw []byte) ([]map[string]Value, error) {
	if def == nil || len(def.subfields) == 0 {
		return nil, nil
	}

	raw = trimTrailingTerminators(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	cycle := def.subfields
	labels := def.labels
	if !def.repeated {
		row, _, err := decodeRow(cycle, labels, raw, 0)
		if err != nil {
			return nil, err
		}
		return []map[string]Value{row}, nil
	}

	var rows []map[string]Value
	offset := 0
	for offset < len(raw) {
		row, consumed, err := decodeRow(cycle, labels, raw, offset)
		if err != nil {
			return nil, err
		}
		if consumed == 0 {
			break
		}
		rows = append(rows, row)
		offset += consumed
	}
	return rows, nil
}

func decodeRow(subs []subfieldDescriptor, labels []string, raw []byte, offset int) (map[string]Value, int, error) {
	row := make(map[string]Value, len(subs))
	start := offset
	for i, desc := range subs {
		val, n, err := readSubfield(desc, raw, offset)
		if err != nil {
			return nil, 0, err
		}
		label := fieldLabel(labels, i)
		row[label] = val
		offset += n
	}
	return row, offset - start, nil
}

func fieldLabel(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}

func trimTrailingTerminators(raw []byte) []byte {
	end := len(raw)
	for end > 0 && (raw[end-1] == fieldTerminator || raw[end-1] == subfieldTerminator) {
		end--
	}
	return raw[:end]
}
