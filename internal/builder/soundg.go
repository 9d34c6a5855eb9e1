package builder

// soundgObjectClass is the S-57 OBJL code for depth soundings.
const soundgObjectClass = 129

// ExplodeSoundings is post-processing step 3: a SOUNDG feature built from
// an SG3D vector record materializes as one MultiPoint; replace it with
// one Point feature per coordinate, each carrying its own DEPTH attribute
// and the inherited SCAMIN/CHART_ID/_scaleNum. Must run before any
// identity-dependent attribute rewrite (DESIGN NOTES), since after this
// point every sounding is its own feature with its own attribute map.
//
// Features that are not SOUNDG, or whose geometry isn't a MultiPoint
// (e.g. a 2D sounding with no depth dimension), pass through unchanged.
func ExplodeSoundings(f Feature) []Feature {
	if f.OBJL != soundgObjectClass || f.Geometry.Kind != GeometryMultiPoint {
		return []Feature{f}
	}

	out := make([]Feature, 0, len(f.Geometry.Points))
	for _, p := range f.Geometry.Points {
		attrs := make(map[string]interface{}, len(f.Attributes)+1)
		for k, v := range f.Attributes {
			attrs[k] = v
		}
		if len(p) >= 3 {
			attrs["DEPTH"] = p[2]
		}
		out = append(out, Feature{
			OBJL:       f.OBJL,
			OBJLName:   f.OBJLName,
			Geometry:   Geometry{Kind: GeometryPoint, Points: [][]float64{{p[0], p[1]}}},
			Attributes: attrs,
			ChartID:    f.ChartID,
			ScaleNum:   f.ScaleNum,
			CSCL:       f.CSCL,
		})
	}
	return out
}
