package s57

import (
	"testing"

	"github.com/encharts/s57decode/internal/builder"
	"github.com/encharts/s57decode/internal/decode"
)

func buildTestChart() *Chart {
	cell := &decode.Cell{
		ChartID:  "US5TEST0",
		ScaleNum: 5,
		CSCL:     22000,
		Features: []builder.Feature{
			{
				OBJL:     17,
				OBJLName: "BOYLAT",
				Geometry: builder.Geometry{Kind: builder.GeometryPoint, Points: [][]float64{{-71.05, 42.35}}},
				Attributes: map[string]interface{}{"OBJNAM": "Sea Buoy"},
			},
			{
				OBJL:     112,
				OBJLName: "RESARE",
				Geometry: builder.Geometry{Kind: builder.GeometryPolygon, Rings: [][][]float64{
					{{-71.2, 42.2}, {-71.1, 42.2}, {-71.1, 42.3}, {-71.2, 42.3}, {-71.2, 42.2}},
				}},
			},
		},
	}
	return convertCell(cell)
}

func TestChartBasics(t *testing.T) {
	c := buildTestChart()
	if c.DatasetName() != "US5TEST0" {
		t.Errorf("DatasetName() = %q", c.DatasetName())
	}
	if c.FeatureCount() != 2 {
		t.Errorf("FeatureCount() = %d, want 2", c.FeatureCount())
	}
	if c.CompilationScale() != 22000 {
		t.Errorf("CompilationScale() = %d, want 22000", c.CompilationScale())
	}
	if c.ScaleBand() != 5 {
		t.Errorf("ScaleBand() = %d, want 5", c.ScaleBand())
	}
}

func TestFeaturesInBoundsFindsIntersectingFeature(t *testing.T) {
	c := buildTestChart()
	viewport := Bounds{MinLon: -71.06, MaxLon: -71.04, MinLat: 42.34, MaxLat: 42.36}
	found := c.FeaturesInBounds(viewport)
	if len(found) != 1 || found[0].ObjectClass() != "BOYLAT" {
		t.Fatalf("FeaturesInBounds = %v", found)
	}
}

func TestFeaturesInBoundsEmptyOutsideChart(t *testing.T) {
	c := buildTestChart()
	viewport := Bounds{MinLon: 10, MaxLon: 11, MinLat: 10, MaxLat: 11}
	found := c.FeaturesInBounds(viewport)
	if len(found) != 0 {
		t.Fatalf("expected no features, got %d", len(found))
	}
}
