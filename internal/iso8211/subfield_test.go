package iso8211

import (
	"reflect"
	"testing"
)

func TestReadSubfieldFixedWidthIgnoresTerminatorBytes(t *testing.T) {
	// 0x1e is a legal byte inside a 4-byte unsigned binary subfield; a
	// naive terminator scan would stop early and corrupt the value.
	buf := []byte{0x00, 0x1e, 0x00, 0x00, 0xff}
	desc := subfieldDescriptor{Kind: reflect.Uint32, Size: 4}

	val, n, err := readSubfield(desc, buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Fatalf("consumed = %d, want 4", n)
	}
	got, ok := val.(uint32)
	if !ok {
		t.Fatalf("value type = %T, want uint32", val)
	}
	want := uint32(0x00001e00)
	if got != want {
		t.Errorf("value = %#x, want %#x", got, want)
	}
}

func TestReadSubfieldVariableTextScansToTerminator(t *testing.T) {
	buf := []byte("OBJNAM")
	buf = append(buf, subfieldTerminator)
	buf = append(buf, []byte("trailer")...)
	desc := subfieldDescriptor{Kind: reflect.String, Size: 0}

	val, n, err := readSubfield(desc, buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := val.(string); got != "OBJNAM" {
		t.Errorf("value = %q, want %q", got, "OBJNAM")
	}
	if n != len("OBJNAM")+1 {
		t.Errorf("consumed = %d, want %d", n, len("OBJNAM")+1)
	}
}

func TestDecodeGroupRepeatingAttributePairs(t *testing.T) {
	def := &fieldDefinition{
		tag:      "ATTF",
		labels:   []string{"ATTL", "ATVL"},
		repeated: true,
		subfields: []subfieldDescriptor{
			{Kind: reflect.Uint16, Size: 2},
			{Kind: reflect.String, Size: 0},
		},
	}

	var raw []byte
	raw = append(raw, 0x4b, 0x00) // ATTL = 75 (LIGHTS' COLOUR-like code, arbitrary for the test)
	raw = append(raw, []byte("3")...)
	raw = append(raw, subfieldTerminator)
	raw = append(raw, 0x4c, 0x00)
	raw = append(raw, []byte("red")...)
	raw = append(raw, subfieldTerminator)

	rows, err := decodeGroup(def, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0]["ATTL"] != uint16(75) || rows[0]["ATVL"] != "3" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1]["ATTL"] != uint16(76) || rows[1]["ATVL"] != "red" {
		t.Errorf("row 1 = %v", rows[1])
	}
}
