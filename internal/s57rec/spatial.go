package s57rec

import (
	"encoding/binary"

	"github.com/encharts/s57decode/internal/iso8211"
)

// SpatialType is the RCNM value on a VRID record, identifying what kind of
// spatial primitive it describes.
type SpatialType int

const (
	SpatialIsolatedNode  SpatialType = 110
	SpatialConnectedNode SpatialType = 120
	SpatialEdge          SpatialType = 130
	SpatialFace          SpatialType = 140
)

// VectorPointer is one VRPT entry: a spatial record's pointer to another
// spatial record (an edge's endpoint nodes, primarily).
type VectorPointer struct {
	TargetRCNM  int
	TargetRCID  int64
	Orientation int
	Usage       int
	Topology    int // 1=begin, 2=end, 3=left, 4=right, 255=null
	Mask        int
}

// SpatialRecord is a parsed VRID group: a node or edge, with its
// coordinates and any pointers to other spatial records.
type SpatialRecord struct {
	RCID           int64
	RecordType     SpatialType
	RecordVersion  int
	UpdateInstr    int
	Coordinates    [][]float64 // [lon,lat] or [lon,lat,depth]
	VectorPointers []VectorPointer
}

// ParseSpatialRecord decodes one data record's VRID/SG2D/SG3D/VRPT fields.
// Returns (nil, nil) if the record has no VRID field.
func ParseSpatialRecord(rec *iso8211.Record, params DatasetParams) (*SpatialRecord, error) {
	vridData := rec.Fields["VRID"]
	if len(vridData) < 8 {
		return nil, nil
	}

	s := &SpatialRecord{
		RecordType:    SpatialType(vridData[0]),
		RCID:          int64(binary.LittleEndian.Uint32(vridData[1:5])),
		RecordVersion: int(binary.LittleEndian.Uint16(vridData[5:7])),
		UpdateInstr:   int(vridData[7]),
	}

	if sg2d := rec.Fields["SG2D"]; len(sg2d) > 0 {
		s.Coordinates = parseSG2D(sg2d, params.COMF)
	}
	if sg3d := rec.Fields["SG3D"]; len(sg3d) > 0 {
		s.Coordinates = parseSG3D(sg3d, params.COMF, params.SOMF)
	}
	if vrpt := rec.Fields["VRPT"]; len(vrpt) > 0 {
		s.VectorPointers = parseVRPT(vrpt)
	}

	return s, nil
}

// parseSG2D decodes repeating 2D coordinate pairs (S-57 §7.7.1.6). Real
// cells store each pair as [XCOO, YCOO] (lon, lat) despite the field name
// order in the standard text suggesting Y first.
func parseSG2D(data []byte, comf int32) [][]float64 {
	var coords [][]float64
	for offset := 0; offset+8 <= len(data); offset += 8 {
		x := int32(binary.LittleEndian.Uint32(data[offset : offset+4]))
		y := int32(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		coords = append(coords, []float64{ConvertCoordinate(x, comf), ConvertCoordinate(y, comf)})
	}
	return coords
}

// parseSG3D decodes repeating 3D coordinate triples (S-57 §7.7.1.7):
// soundings, where the third component is depth scaled by SOMF.
func parseSG3D(data []byte, comf, somf int32) [][]float64 {
	var coords [][]float64
	for offset := 0; offset+12 <= len(data); offset += 12 {
		x := int32(binary.LittleEndian.Uint32(data[offset : offset+4]))
		y := int32(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		z := int32(binary.LittleEndian.Uint32(data[offset+8 : offset+12]))
		coords = append(coords, []float64{
			ConvertCoordinate(x, comf),
			ConvertCoordinate(y, comf),
			ConvertCoordinate(z, somf),
		})
	}
	return coords
}

// parseVRPT decodes repeating 9-byte vector-record-pointer entries
// (S-57 §7.7.1.4): NAME_RCNM(1) NAME_RCID(4) ORNT(1) USAG(1) TOPI(1) MASK(1).
func parseVRPT(data []byte) []VectorPointer {
	var ptrs []VectorPointer
	for i := 0; i+8 < len(data); i += 9 {
		ptrs = append(ptrs, VectorPointer{
			TargetRCNM:  int(data[i]),
			TargetRCID:  int64(binary.LittleEndian.Uint32(data[i+1 : i+5])),
			Orientation: int(data[i+5]),
			Usage:       int(data[i+6]),
			Topology:    int(data[i+7]),
			Mask:        int(data[i+8]),
		})
	}
	return ptrs
}
