package s57rec

import (
	"encoding/binary"

	"github.com/encharts/s57decode/internal/catalog"
	"github.com/encharts/s57decode/internal/iso8211"
)

// SpatialRef is one FSPT entry: a pointer from a feature record to a
// spatial (vector) record, with the orientation/usage/mask needed to
// assemble geometry.
type SpatialRef struct {
	RCID        int64
	Orientation int // 1=forward, 2=reverse, 255=null
	Usage       int // 1=exterior, 2=interior, 3=exterior truncated
	Mask        int
}

// Feature is a parsed FRID/FOID/ATTF/FSPT group: one S-57 feature record
// before geometry assembly.
type Feature struct {
	RCID          int64
	AGEN          uint16
	FIDN          uint32
	FIDS          uint16
	ObjectClass   int
	ObjectName    string
	GeomPrim      int // 1=Point, 2=Line, 3=Area, 255=N/A
	Group         int
	RecordVersion int
	UpdateInstr   int
	Attributes    map[string]string
	SpatialRefs   []SpatialRef
}

// ParseFeature decodes one data record's FRID/FOID/ATTF/FSPT fields into a
// Feature. Returns (nil, nil) if the record has no FRID field (not a
// feature record at all, e.g. it's a DSID/DSPM or spatial-only record).
func ParseFeature(rec *iso8211.Record, file *iso8211.File) (*Feature, error) {
	fridData := rec.Fields["FRID"]
	if len(fridData) < 12 {
		return nil, nil
	}
	if fridData[0] != 100 {
		return nil, nil
	}

	f := &Feature{
		RCID:        int64(binary.LittleEndian.Uint32(fridData[1:5])),
		GeomPrim:    int(fridData[5]),
		Group:       int(fridData[6]),
		ObjectClass: int(binary.LittleEndian.Uint16(fridData[7:9])),
		RecordVersion: int(binary.LittleEndian.Uint16(fridData[9:11])),
		UpdateInstr: int(fridData[11]),
		Attributes:  make(map[string]string),
	}
	f.ObjectName, _ = catalog.ObjectClassName(f.ObjectClass)

	if foidData := rec.Fields["FOID"]; len(foidData) >= 8 {
		f.AGEN = binary.LittleEndian.Uint16(foidData[0:2])
		f.FIDN = binary.LittleEndian.Uint32(foidData[2:6])
		f.FIDS = binary.LittleEndian.Uint16(foidData[6:8])
	}

	if attfData := rec.Fields["ATTF"]; len(attfData) > 0 {
		attrs, err := decodeAttributes(file, "ATTF", attfData)
		if err != nil {
			return nil, err
		}
		for k, v := range attrs {
			f.Attributes[k] = v
		}
	}
	if natfData := rec.Fields["NATF"]; len(natfData) > 0 {
		attrs, err := decodeAttributes(file, "NATF", natfData)
		if err != nil {
			return nil, err
		}
		for k, v := range attrs {
			f.Attributes[k] = v
		}
	}

	if fsptData := rec.Fields["FSPT"]; len(fsptData) > 0 {
		f.SpatialRefs = parseFSPT(fsptData)
	}

	return f, nil
}

// decodeAttributes decodes an ATTF/NATF repeating (ATTL, ATVL) group via
// the format-aware iso8211 reader, converting each numeric ATTL code to
// its catalogue acronym. ATTF's DDR format is binary (b12, then
// variable-width text), so this is exactly where a naive terminator scan
// would misfire on an ATTL code whose binary bytes happen to include 0x1e.
func decodeAttributes(file *iso8211.File, tag string, raw []byte) (map[string]string, error) {
	rows, err := file.Decode(tag, raw)
	if err != nil || len(rows) == 0 {
		return fallbackDecodeAttributes(raw), nil
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		code, _ := row["ATTL"].(uint16)
		val, _ := row["ATVL"].(string)
		name, _ := catalog.AttributeName(int(code))
		out[name] = val
	}
	return out, nil
}

// fallbackDecodeAttributes is used if the cell's DDR never defined a
// format for ATTF/NATF (malformed producer output), or if the format-aware
// decode of the field fails. It degrades to a flat
// scan, which is unsafe against embedded 0x1e bytes but strictly better
// than dropping the attributes outright; this path should be rare to
// nonexistent on real NOAA/UKHO cells.
func fallbackDecodeAttributes(data []byte) map[string]string {
	out := make(map[string]string)
	offset := 0
	for offset+2 <= len(data) {
		code := binary.LittleEndian.Uint16(data[offset : offset+2])
		offset += 2
		end := offset
		for end < len(data) && data[end] != 0x1f {
			end++
		}
		name, _ := catalog.AttributeName(int(code))
		out[name] = string(data[offset:end])
		offset = end + 1
	}
	return out
}

// parseFSPT decodes the FSPT repeating group's fixed 8-byte binary entries
// (S-57 §7.6.8): NAME_RCNM(1) NAME_RCID(4) ORNT(1) USAG(1) MASK(1).
func parseFSPT(data []byte) []SpatialRef {
	var refs []SpatialRef
	for i := 0; i+7 < len(data); i += 8 {
		refs = append(refs, SpatialRef{
			RCID:        int64(binary.LittleEndian.Uint32(data[i+1 : i+5])),
			Orientation: int(data[i+5]),
			Usage:       int(data[i+6]),
			Mask:        int(data[i+7]),
		})
	}
	return refs
}
