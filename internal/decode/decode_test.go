package decode

import (
	"testing"

	"github.com/encharts/s57decode/internal/builder"
)

func TestDecodeRejectsEmptyInput(t *testing.T) {
	if _, err := Decode(nil); err == nil {
		t.Fatal("expected an error decoding empty input")
	}
}

func TestHasSafetyAreasMatchesResareObjl(t *testing.T) {
	cell := &Cell{
		Features: []builder.Feature{
			{OBJL: 71}, // LNDARE, not a safety area
			{OBJL: 112}, // RESARE
		},
	}
	if !cell.HasSafetyAreas() {
		t.Fatal("expected HasSafetyAreas to be true with a RESARE feature present")
	}
}

func TestChartIDFromPathStripsExtension(t *testing.T) {
	if got := chartIDFromPath("/data/charts/US4AK4PH.000"); got != "US4AK4PH" {
		t.Errorf("chartIDFromPath = %q, want US4AK4PH", got)
	}
}

func TestScaleNumFromChartIDParsesThirdCharacter(t *testing.T) {
	if got := scaleNumFromChartID("US4AK4PH"); got != 4 {
		t.Errorf("scaleNumFromChartID = %d, want 4", got)
	}
	if got := scaleNumFromChartID("XX"); got != 0 {
		t.Errorf("scaleNumFromChartID on short id = %d, want 0", got)
	}
}

func TestHasSafetyAreasFalseWithoutMatch(t *testing.T) {
	cell := &Cell{
		Features: []builder.Feature{
			{OBJL: 71},
			{OBJL: 129},
		},
	}
	if cell.HasSafetyAreas() {
		t.Fatal("expected HasSafetyAreas to be false without a regulated-area feature")
	}
}
