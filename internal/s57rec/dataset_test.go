package s57rec

import "testing"

// buildDSPM assembles a minimal DSPM field payload: RCNM=20, RCID, HDAT,
// VDAT, SDAT, CSCL (4 bytes LE), DUNI/HUNI/PUNI, COUN, then COMF/SOMF (4
// bytes LE each) when present.
func buildDSPM(comf, somf int32, includeComf, includeSomf bool) []byte {
	data := make([]byte, 0, 24)
	data = append(data, 20)         // RCNM
	data = append(data, 0, 0, 0, 0) // RCID
	data = append(data, 2, 2, 2)    // HDAT, VDAT, SDAT
	data = append(data, 0, 0, 0, 0) // CSCL
	data = append(data, 1, 1, 1)    // DUNI, HUNI, PUNI
	data = append(data, 1)          // COUN
	if includeComf {
		data = append(data, le32(comf)...)
	}
	if includeSomf {
		data = append(data, le32(somf)...)
	}
	return data
}

func le32(v int32) []byte {
	u := uint32(v)
	return []byte{byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24)}
}

func TestParseDSPMAcceptsValidFactors(t *testing.T) {
	params, err := ParseDSPM(buildDSPM(10000000, 10, true, true))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if params.COMF != 10000000 || params.SOMF != 10 {
		t.Errorf("params = %+v", params)
	}
}

func TestParseDSPMRejectsMissingComfSubfield(t *testing.T) {
	if _, err := ParseDSPM(buildDSPM(0, 10, false, false)); err == nil {
		t.Fatal("expected an error when the COMF subfield is absent")
	}
}

func TestParseDSPMRejectsZeroComf(t *testing.T) {
	if _, err := ParseDSPM(buildDSPM(0, 10, true, true)); err == nil {
		t.Fatal("expected an error for COMF=0")
	}
}

func TestParseDSPMRejectsNegativeSomf(t *testing.T) {
	if _, err := ParseDSPM(buildDSPM(10000000, -1, true, true)); err == nil {
		t.Fatal("expected an error for a negative SOMF")
	}
}

func TestParseDSPMRejectsTruncatedRecord(t *testing.T) {
	if _, err := ParseDSPM([]byte{20, 0, 0}); err == nil {
		t.Fatal("expected an error for a truncated DSPM record")
	}
}
