// Package s57rec decodes S-57 DSID/DSPM/FRID/VRID level records from a
// parsed ISO/IEC 8211 container into typed Go values.
package s57rec

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// DatasetParams holds the DSPM (Data Set Parameters) record: the scaling
// factors every coordinate in the cell must be divided by.
type DatasetParams struct {
	COMF int32 // Coordinate multiplication factor, typically 10^7
	SOMF int32 // Sounding (depth) multiplication factor, typically 10
	HDAT int
	VDAT int
	SDAT int
	CSCL int32 // Compilation scale
	COUN int   // Coordinate units: 1=lat/lon, 2=projected
}

// DefaultDatasetParams returns the zero-value params used only as a
// placeholder before the cell's DSPM record (if any) has been parsed.
// COMF/SOMF are left unset (0) rather than defaulted, since a cell that
// never supplies a usable COMF is a Fatal decode error (spec.md §7) — not
// a case to quietly paper over with the common 10,000,000 factor.
func DefaultDatasetParams() DatasetParams {
	return DatasetParams{}
}

// ParseDSPM decodes the DSPM field's fixed-offset binary layout
// (S-57 §7.3.2.1). Per spec.md §7/§4.4, a missing or non-positive COMF is
// Fatal: "cannot interpret any geometry" without it. SOMF is held to the
// same standard, since a corrupt sounding factor is equally unusable.
func ParseDSPM(data []byte) (DatasetParams, error) {
	var params DatasetParams
	if len(data) < 24 || data[0] != 20 {
		return params, fmt.Errorf("s57rec: DSPM record too short or wrong RCNM: %d bytes", len(data))
	}

	offset := 1 + 4 // RCNM, RCID
	params.HDAT = int(data[offset])
	offset++
	params.VDAT = int(data[offset])
	offset++
	params.SDAT = int(data[offset])
	offset++
	params.CSCL = int32(binary.LittleEndian.Uint32(data[offset : offset+4]))
	offset += 4
	offset += 3 // DUNI, HUNI, PUNI
	params.COUN = int(data[offset])
	offset++

	if offset+4 > len(data) {
		return params, fmt.Errorf("s57rec: DSPM record missing COMF subfield")
	}
	params.COMF = int32(binary.LittleEndian.Uint32(data[offset : offset+4]))
	offset += 4

	if offset+4 > len(data) {
		return params, fmt.Errorf("s57rec: DSPM record missing SOMF subfield")
	}
	params.SOMF = int32(binary.LittleEndian.Uint32(data[offset : offset+4]))

	if params.COMF <= 0 {
		return params, fmt.Errorf("s57rec: invalid COMF %d: must be positive", params.COMF)
	}
	if params.SOMF <= 0 {
		return params, fmt.Errorf("s57rec: invalid SOMF %d: must be positive", params.SOMF)
	}
	return params, nil
}

// ConvertCoordinate scales a raw S-57 integer coordinate by its
// multiplication factor (COMF for lon/lat, SOMF for depth). Callers are
// expected to have already validated factor > 0 via ParseDSPM.
func ConvertCoordinate(value int32, factor int32) float64 {
	return float64(value) / float64(factor)
}

// DatasetMetadata is the DSID (Data Set Identification) record.
type DatasetMetadata struct {
	RCNM  int
	RCID  int64
	EXPP  int
	INTU  int
	DSNM  string // chart id, e.g. "US5MA22M"
	EDTN  string
	UPDN  string
	UADT  string
	ISDT  string
	STED  string
	PRSP  int
	PSDN  string
	PRED  string
	PROF  int
	AGEN  int
	COMT  string
}

// ExchangePurpose renders EXPP as a human-readable label.
func (m DatasetMetadata) ExchangePurpose() string {
	switch m.EXPP {
	case 1:
		return "New"
	case 2:
		return "Revision"
	default:
		return "Unknown"
	}
}

// ParseDSID decodes the DSID field. Fixed-offset subfields (RCNM, RCID,
// EXPP, INTU) are hand-parsed; the remaining 0x1f-delimited text subfields
// (DSNM, EDTN, UPDN, ...) are split on the terminator bytes by
// splitTerminatedText and assigned in declaration order.
func ParseDSID(data []byte) (DatasetMetadata, error) {
	var m DatasetMetadata
	if len(data) < 6 {
		return m, fmt.Errorf("s57rec: DSID record too short: %d bytes", len(data))
	}
	if data[0] != 10 {
		return m, fmt.Errorf("s57rec: invalid RCNM for DSID: %d", data[0])
	}

	m.RCNM = int(data[0])
	m.RCID = int64(binary.LittleEndian.Uint32(data[1:5]))
	offset := 5
	m.EXPP = int(data[offset])
	offset++
	if offset < len(data) {
		m.INTU = int(data[offset])
		offset++
	}

	fields := splitTerminatedText(data[offset:])
	labels := []string{"DSNM", "EDTN", "UPDN", "UADT", "ISDT", "STED"}
	for i, label := range labels {
		if i >= len(fields) {
			break
		}
		switch label {
		case "DSNM":
			m.DSNM = fields[i]
		case "EDTN":
			m.EDTN = fields[i]
		case "UPDN":
			m.UPDN = fields[i]
		case "UADT":
			m.UADT = fields[i]
		case "ISDT":
			m.ISDT = fields[i]
		case "STED":
			m.STED = fields[i]
		}
	}

	// PRSP/PSDN/PRED/PROF/AGEN/COMT follow STED but vary in presence across
	// producers; parse what's there without failing the record if absent.
	if len(fields) > 6 {
		fmt.Sscanf(fields[6], "%d", &m.PRSP)
	}
	if len(fields) > 7 {
		m.PSDN = fields[7]
	}
	if len(fields) > 8 {
		m.PRED = fields[8]
	}
	if len(fields) > 9 {
		fmt.Sscanf(fields[9], "%d", &m.PROF)
	}
	if len(fields) > 10 {
		fmt.Sscanf(fields[10], "%d", &m.AGEN)
	}
	if len(fields) > 11 {
		m.COMT = fields[11]
	}

	return m, nil
}

// splitTerminatedText splits a run of 0x1f/0x1e-delimited text subfields.
// It is used only for DSID's trailing text block, which this decoder never
// mixes with binary subfields, so a plain split is terminator-safe here
// (unlike ATTF, which is handled by the iso8211 package's format-aware
// reader).
func splitTerminatedText(data []byte) []string {
	s := string(data)
	s = strings.TrimRight(s, "\x1e")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\x1f")
}
