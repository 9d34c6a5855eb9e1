// Package s57 provides a clean public API over a decoded IHO S-57
// Electronic Navigational Chart cell: metadata, normalized features, and
// an R-tree-backed viewport query.
package s57

import (
	"github.com/dhconnelly/rtreego"

	"github.com/encharts/s57decode/internal/builder"
	"github.com/encharts/s57decode/internal/decode"
)

// Parser parses a single S-57 cell file into a Chart.
type Parser struct{}

// NewParser creates a new S-57 cell parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads filename (an S-57 base cell, e.g. "US5MA22M.000") and
// decodes it into a Chart.
func (p *Parser) Parse(filename string) (*Chart, error) {
	cell, err := decode.DecodeFile(filename)
	if err != nil {
		return nil, err
	}
	return convertCell(cell), nil
}

// Bounds is a geographic bounding box in WGS-84 decimal degrees.
type Bounds struct {
	MinLon float64
	MaxLon float64
	MinLat float64
	MaxLat float64
}

// Contains reports whether (lon, lat) falls within b.
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon && lat >= b.MinLat && lat <= b.MaxLat
}

// Intersects reports whether b and other overlap.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon ||
		other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat)
}

// GeometryType names a feature's geometry shape.
type GeometryType int

const (
	GeometryTypeNone GeometryType = iota
	GeometryTypePoint
	GeometryTypeLineString
	GeometryTypePolygon
	GeometryTypeMultiPoint
)

func (g GeometryType) String() string {
	switch g {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypePolygon:
		return "Polygon"
	case GeometryTypeMultiPoint:
		return "MultiPoint"
	default:
		return "None"
	}
}

// Geometry is a feature's spatial representation. Coordinates follow the
// GeoJSON convention: [longitude, latitude] pairs in WGS-84 decimal
// degrees. For Polygon, Coordinates holds only the exterior ring; interior
// rings are not exposed through this API.
type Geometry struct {
	Type        GeometryType
	Coordinates [][]float64
}

// Feature is a navigational object decoded from the chart: a depth
// contour, buoy, light, hazard, restricted area, or any other S-57
// object class.
type Feature struct {
	objl       int
	objectName string
	geometry   Geometry
	attributes map[string]interface{}
}

// OBJL returns the feature's numeric S-57 object class code.
func (f Feature) OBJL() int { return f.objl }

// ObjectClass returns the feature's S-57 object class acronym, e.g.
// "DEPCNT", "BOYLAT", "LIGHTS".
func (f Feature) ObjectClass() string { return f.objectName }

// Geometry returns the feature's spatial representation.
func (f Feature) Geometry() Geometry { return f.geometry }

// Attributes returns every attribute on the feature.
func (f Feature) Attributes() map[string]interface{} { return f.attributes }

// Attribute returns a single named attribute.
func (f Feature) Attribute(name string) (interface{}, bool) {
	v, ok := f.attributes[name]
	return v, ok
}

// Chart is a fully decoded S-57 cell.
type Chart struct {
	features     []Feature
	sectorLights []builder.SectorLight
	bounds       Bounds
	rtree        *rtreego.Rtree

	datasetName    string
	compScale      int32
	scaleBand      int
	hasSafetyAreas bool
}

// DatasetName returns the chart's cell identifier, e.g. "US5MA22M".
func (c *Chart) DatasetName() string { return c.datasetName }

// CompilationScale returns the chart's compilation scale denominator
// (CSCL from the DSPM record), e.g. 22000.
func (c *Chart) CompilationScale() int { return int(c.compScale) }

// ScaleBand returns the NOAA scale-band digit stamped as "_scaleNum" on
// every feature (spec.md §4.4/§9): the third character of the chart id,
// e.g. 4 for "US4AK4PH".
func (c *Chart) ScaleBand() int { return c.scaleBand }

// Features returns every decoded feature in the chart.
func (c *Chart) Features() []Feature { return c.features }

// FeatureCount returns the number of decoded features.
func (c *Chart) FeatureCount() int { return len(c.features) }

// Bounds returns the chart's geographic coverage, the bounding box of
// every feature's geometry.
func (c *Chart) Bounds() Bounds { return c.bounds }

// HasSafetyAreas reports whether the chart carries a regulated or
// restricted area feature (RESARE, CTNARE, MIPARE, ACHARE, ACHBRT,
// MARCUL).
func (c *Chart) HasSafetyAreas() bool { return c.hasSafetyAreas }

// SectorLightCount returns the number of sectored point lights found
// while decoding (spec.md §6 sector-light sidecar).
func (c *Chart) SectorLightCount() int { return len(c.sectorLights) }

// FeaturesInBounds returns every feature whose geometry intersects
// bounds, using the chart's R-tree index for O(log n) viewport queries.
func (c *Chart) FeaturesInBounds(bounds Bounds) []Feature {
	if c.rtree == nil {
		return c.featuresInBoundsLinear(bounds)
	}

	point := rtreego.Point{bounds.MinLon, bounds.MinLat}
	lengths := []float64{bounds.MaxLon - bounds.MinLon, bounds.MaxLat - bounds.MinLat}
	queryRect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		return c.featuresInBoundsLinear(bounds)
	}

	spatials := c.rtree.SearchIntersect(queryRect)
	result := make([]Feature, 0, len(spatials))
	for _, sp := range spatials {
		result = append(result, sp.(*indexedFeature).feature)
	}
	return result
}

func (c *Chart) featuresInBoundsLinear(bounds Bounds) []Feature {
	result := make([]Feature, 0, len(c.features)/10)
	for _, f := range c.features {
		if len(f.geometry.Coordinates) == 0 {
			continue
		}
		if bounds.Intersects(featureBounds(f)) {
			result = append(result, f)
		}
	}
	return result
}

// indexedFeature wraps a Feature for R-tree storage.
type indexedFeature struct {
	feature Feature
	bounds  Bounds
}

// Bounds implements rtreego.Spatial.
func (f *indexedFeature) Bounds() rtreego.Rect {
	const epsilon = 0.0001
	lonLength := f.bounds.MaxLon - f.bounds.MinLon
	latLength := f.bounds.MaxLat - f.bounds.MinLat
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}
	rect, _ := rtreego.NewRect(rtreego.Point{f.bounds.MinLon, f.bounds.MinLat}, []float64{lonLength, latLength})
	return rect
}

// featureBounds computes the bounding box of a feature's geometry.
func featureBounds(f Feature) Bounds {
	coords := f.geometry.Coordinates
	if len(coords) == 0 {
		return Bounds{}
	}
	b := Bounds{MinLon: coords[0][0], MaxLon: coords[0][0], MinLat: coords[0][1], MaxLat: coords[0][1]}
	for _, c := range coords {
		if c[0] < b.MinLon {
			b.MinLon = c[0]
		}
		if c[0] > b.MaxLon {
			b.MaxLon = c[0]
		}
		if c[1] < b.MinLat {
			b.MinLat = c[1]
		}
		if c[1] > b.MaxLat {
			b.MaxLat = c[1]
		}
	}
	return b
}

func geometryType(k builder.GeometryKind) GeometryType {
	switch k {
	case builder.GeometryPoint:
		return GeometryTypePoint
	case builder.GeometryLineString:
		return GeometryTypeLineString
	case builder.GeometryPolygon:
		return GeometryTypePolygon
	case builder.GeometryMultiPoint:
		return GeometryTypeMultiPoint
	default:
		return GeometryTypeNone
	}
}

// convertGeometry flattens a builder.Geometry into the public API's single
// coordinate list: Point/MultiPoint use Points, LineString uses Line,
// Polygon uses only its exterior ring (Rings[0]).
func convertGeometry(g builder.Geometry) Geometry {
	out := Geometry{Type: geometryType(g.Kind)}
	switch g.Kind {
	case builder.GeometryPoint, builder.GeometryMultiPoint:
		out.Coordinates = g.Points
	case builder.GeometryLineString:
		out.Coordinates = g.Line
	case builder.GeometryPolygon:
		if len(g.Rings) > 0 {
			out.Coordinates = g.Rings[0]
		}
	}
	return out
}

// convertCell converts a decoded cell into the public Chart type and
// builds its R-tree spatial index.
func convertCell(cell *decode.Cell) *Chart {
	features := make([]Feature, len(cell.Features))
	for i, f := range cell.Features {
		features[i] = Feature{
			objl:       f.OBJL,
			objectName: f.OBJLName,
			geometry:   convertGeometry(f.Geometry),
			attributes: f.Attributes,
		}
	}

	c := &Chart{
		features:       features,
		sectorLights:   cell.SectorLights,
		datasetName:    cell.ChartID,
		compScale:      cell.CSCL,
		scaleBand:      cell.ScaleNum,
		hasSafetyAreas: cell.HasSafetyAreas(),
	}
	c.buildSpatialIndex()
	return c
}

// buildSpatialIndex populates the R-tree and the chart's overall bounds
// from every feature's geometry.
func (c *Chart) buildSpatialIndex() {
	if len(c.features) == 0 {
		return
	}

	rtree := rtreego.NewTree(2, 25, 50)
	var chartBounds *Bounds

	for _, f := range c.features {
		if len(f.geometry.Coordinates) == 0 {
			continue
		}
		fb := featureBounds(f)
		rtree.Insert(&indexedFeature{feature: f, bounds: fb})

		if chartBounds == nil {
			chartBounds = &fb
			continue
		}
		if fb.MinLon < chartBounds.MinLon {
			chartBounds.MinLon = fb.MinLon
		}
		if fb.MaxLon > chartBounds.MaxLon {
			chartBounds.MaxLon = fb.MaxLon
		}
		if fb.MinLat < chartBounds.MinLat {
			chartBounds.MinLat = fb.MinLat
		}
		if fb.MaxLat > chartBounds.MaxLat {
			chartBounds.MaxLat = fb.MaxLat
		}
	}

	c.rtree = rtree
	if chartBounds != nil {
		c.bounds = *chartBounds
	}
}
