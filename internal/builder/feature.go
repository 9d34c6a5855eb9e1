package builder

import "github.com/encharts/s57decode/internal/s57rec"

// Feature is the normalized output entity (spec.md §3 "Normalized
// feature"). Attributes are string-keyed scalars; numeric attributes
// produced by post-processing (DEPTH, _ORIENT, normalized COLOUR) are
// stored as float64/int, the _scaleNum and _cscl stamps as int and int32,
// and everything else as string.
type Feature struct {
	OBJL       int
	OBJLName   string
	Geometry   Geometry
	Attributes map[string]interface{}
	ChartID    string
	ScaleNum   int
	CSCL       int32
}

// MaterializeAttributes merges ATTF/NATF values (already merged onto
// s57rec.Feature.Attributes) into the normalized attribute map, dropping
// empty strings (spec.md §8 boundary case) and stamping the chart
// identity fields every feature carries.
func MaterializeAttributes(f *s57rec.Feature, chartID string, scaleNum int, cscl int32) map[string]interface{} {
	attrs := make(map[string]interface{}, len(f.Attributes)+4)
	for k, v := range f.Attributes {
		if v == "" {
			continue
		}
		attrs[k] = v
	}
	attrs["CHART_ID"] = chartID
	attrs["_chartId"] = chartID
	attrs["_scaleNum"] = scaleNum
	attrs["_cscl"] = cscl
	return attrs
}

// NewFeature assembles geometry and materializes attributes for one
// decoded S-57 feature record.
func NewFeature(rec *s57rec.Feature, geom Geometry, chartID string, scaleNum int, cscl int32) Feature {
	return Feature{
		OBJL:       rec.ObjectClass,
		OBJLName:   rec.ObjectName,
		Geometry:   geom,
		Attributes: MaterializeAttributes(rec, chartID, scaleNum, cscl),
		ChartID:    chartID,
		ScaleNum:   scaleNum,
		CSCL:       cscl,
	}
}
