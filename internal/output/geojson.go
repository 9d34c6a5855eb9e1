// Package output serializes a decoded cell into the three artifacts the
// decoder produces: the GeoJSON feature collection, the sector-light
// sidecar file, and the one-line stdout metadata summary.
package output

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/encharts/s57decode/internal/builder"
)

// ToGeometry converts a builder.Geometry (post-processing's working
// representation, whose coordinates may still carry a third depth
// component on features other than exploded soundings) into an
// orb.Geometry ready for GeoJSON encoding. Only lon/lat are kept.
func ToGeometry(g builder.Geometry) orb.Geometry {
	switch g.Kind {
	case builder.GeometryPoint:
		if len(g.Points) == 0 {
			return nil
		}
		p := g.Points[0]
		return orb.Point{p[0], p[1]}
	case builder.GeometryMultiPoint:
		mp := make(orb.MultiPoint, len(g.Points))
		for i, p := range g.Points {
			mp[i] = orb.Point{p[0], p[1]}
		}
		return mp
	case builder.GeometryLineString:
		ls := make(orb.LineString, len(g.Line))
		for i, p := range g.Line {
			ls[i] = orb.Point{p[0], p[1]}
		}
		return ls
	case builder.GeometryPolygon:
		poly := make(orb.Polygon, len(g.Rings))
		for i, ring := range g.Rings {
			r := make(orb.Ring, len(ring))
			for j, p := range ring {
				r[j] = orb.Point{p[0], p[1]}
			}
			poly[i] = r
		}
		return poly
	default:
		return nil
	}
}

// FeatureCollection converts every decoded feature into an orb/geojson
// FeatureCollection, carrying the S-57 attribute acronyms (plus OBJL,
// OBJL_NAME, and the chart identity fields the builder already stamped)
// as GeoJSON properties. A feature with GeometryNone (FRID primitive=4,
// "no geometry") still gets an entry, with geometry = null (spec.md §8
// boundary case) — it is not dropped, since feature_count downstream must
// equal the number of GeoJSON entries written.
func FeatureCollection(features []builder.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		gf := geojson.NewFeature(ToGeometry(f.Geometry))
		gf.Properties["OBJL"] = f.OBJL
		gf.Properties["OBJL_NAME"] = f.OBJLName
		for k, v := range f.Attributes {
			gf.Properties[k] = v
		}
		fc.Append(gf)
	}
	return fc
}
