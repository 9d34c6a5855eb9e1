package output

import (
	"testing"

	"github.com/paulmach/orb"

	"github.com/encharts/s57decode/internal/builder"
)

func TestToGeometryPolygonRings(t *testing.T) {
	g := builder.Geometry{
		Kind: builder.GeometryPolygon,
		Rings: [][][]float64{
			{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
		},
	}
	got := ToGeometry(g)
	poly, ok := got.(orb.Polygon)
	if !ok {
		t.Fatalf("got %T, want orb.Polygon", got)
	}
	if len(poly) != 1 || len(poly[0]) != 5 {
		t.Fatalf("poly = %v", poly)
	}
}

func TestToGeometryPoint(t *testing.T) {
	g := builder.Geometry{Kind: builder.GeometryPoint, Points: [][]float64{{-70.5, 42.3}}}
	got := ToGeometry(g)
	p, ok := got.(orb.Point)
	if !ok {
		t.Fatalf("got %T, want orb.Point", got)
	}
	if p[0] != -70.5 || p[1] != 42.3 {
		t.Errorf("point = %v", p)
	}
}

func TestFeatureCollectionCarriesObjlAndAttributes(t *testing.T) {
	features := []builder.Feature{
		{
			OBJL:       17,
			OBJLName:   "BOYLAT",
			Geometry:   builder.Geometry{Kind: builder.GeometryPoint, Points: [][]float64{{1, 2}}},
			Attributes: map[string]interface{}{"OBJNAM": "Test Buoy"},
		},
	}
	fc := FeatureCollection(features)
	if len(fc.Features) != 1 {
		t.Fatalf("len(fc.Features) = %d, want 1", len(fc.Features))
	}
	props := fc.Features[0].Properties
	if props["OBJL"] != 17 {
		t.Errorf("OBJL = %v", props["OBJL"])
	}
	if props["OBJL_NAME"] != "BOYLAT" {
		t.Errorf("OBJL_NAME = %v", props["OBJL_NAME"])
	}
	if props["OBJNAM"] != "Test Buoy" {
		t.Errorf("OBJNAM = %v", props["OBJNAM"])
	}
}

func TestFeatureCollectionEmitsNullGeometryForNoGeometryFeature(t *testing.T) {
	features := []builder.Feature{{OBJL: 300, Geometry: builder.Geometry{Kind: builder.GeometryNone}}}
	fc := FeatureCollection(features)
	if len(fc.Features) != 1 {
		t.Fatalf("expected a feature with geometry=null to still be written, got %d", len(fc.Features))
	}
	if fc.Features[0].Geometry != nil {
		t.Errorf("Geometry = %v, want nil", fc.Features[0].Geometry)
	}
	if fc.Features[0].Properties["OBJL"] != 300 {
		t.Errorf("OBJL = %v, want 300", fc.Features[0].Properties["OBJL"])
	}
}
