// Package decode orchestrates the full single-cell pipeline: ISO 8211
// container parsing, S-57 record assembly, spatial graph resolution,
// geometry construction, and the S-52-aware post-processing pipeline.
package decode

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"

	"github.com/encharts/s57decode/internal/builder"
	"github.com/encharts/s57decode/internal/catalog"
	"github.com/encharts/s57decode/internal/iso8211"
	"github.com/encharts/s57decode/internal/s57rec"
	"github.com/encharts/s57decode/internal/spatial"
)

// Stats counts the Recoverable skips encountered while decoding a cell, by
// cause (spec.md §7 "Recoverable").
type Stats struct {
	UnknownTag            int
	DanglingSpatialRef    int
	UnparseableAttribute  int
	NonClosingRing        int
	DiscontinuousLine     int
	InvalidCoordinate     int
	FeatureCount          int
	SectorLightCount      int
}

// Cell is the fully decoded, post-processed result of one ENC cell.
type Cell struct {
	ChartID      string
	ScaleNum     int   // third-character scale band digit (spec.md §4.4/§9), stamped as _scaleNum
	CSCL         int32 // DSPM compilation scale denominator, e.g. 22000
	Features     []builder.Feature
	SectorLights []builder.SectorLight
	Stats        Stats
}

// DecodeFile reads and decodes one S-57 cell file end to end. A non-nil
// error is always Fatal per the error taxonomy: a truncated container, an
// unreadable DDR, or a missing/invalid COMF — anything the cell cannot be
// decoded without.
func DecodeFile(path string) (*Cell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "decode: reading %s", path)
	}
	return decode(data, chartIDFromPath(path))
}

// Decode runs the pipeline over an in-memory ISO/IEC 8211 container. The
// chart id stamped onto every feature (CHART_ID/_chartId/_scaleNum) is
// derived from the dataset's own DSID.DSNM, since no file path is
// available to this entry point.
func Decode(data []byte) (*Cell, error) {
	return decode(data, "")
}

// chartIDFromPath derives the chart id from an S-57 cell file path: the
// base name with its extension stripped (spec.md §6, e.g.
// "US4AK4PH.000" -> "US4AK4PH").
func chartIDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// scaleNumFromChartID parses the third character of chartID as a decimal
// digit (spec.md §4.4/§9: "US4AK4PH" -> 4). Preserved as the NOAA-specific
// scheme per spec.md §9's open question; falls back to 0 when the chart id
// is too short or the third character isn't a digit.
func scaleNumFromChartID(chartID string) int {
	if len(chartID) < 3 {
		return 0
	}
	n, err := strconv.Atoi(string(chartID[2]))
	if err != nil {
		return 0
	}
	return n
}

func decode(data []byte, pathChartID string) (*Cell, error) {
	file, err := iso8211.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode: parsing ISO 8211 container")
	}

	params := s57rec.DefaultDatasetParams()
	var metadata s57rec.DatasetMetadata
	haveMetadata := false
	haveDSPM := false

	var featureRecs []*s57rec.Feature
	var spatialRecs []*s57rec.SpatialRecord

	for _, rec := range file.Records {
		if dspm := rec.Fields["DSPM"]; len(dspm) > 0 {
			p, err := s57rec.ParseDSPM(dspm)
			if err != nil {
				return nil, errors.Wrap(err, "decode: invalid coordinate multiplication factor")
			}
			params = p
			haveDSPM = true
		}
		if dsid := rec.Fields["DSID"]; len(dsid) > 0 {
			m, err := s57rec.ParseDSID(dsid)
			if err != nil {
				sigolo.Warnf("decode: skipping malformed DSID record: %s", err)
				continue
			}
			metadata = m
			haveMetadata = true
		}
	}

	if !haveMetadata {
		return nil, errors.New("decode: cell has no DSID record")
	}
	if !haveDSPM {
		return nil, errors.New("decode: cell has no DSPM record (missing coordinate multiplication factor)")
	}

	stats := Stats{}

	for _, rec := range file.Records {
		if f, err := s57rec.ParseFeature(rec, file); err != nil {
			sigolo.Warnf("decode: skipping unparseable feature record: %s", err)
			stats.UnparseableAttribute++
		} else if f != nil {
			featureRecs = append(featureRecs, f)
		}

		if s, err := s57rec.ParseSpatialRecord(rec, params); err != nil {
			sigolo.Warnf("decode: skipping unparseable spatial record: %s", err)
		} else if s != nil {
			spatialRecs = append(spatialRecs, s)
		}
	}

	graph := spatial.BuildGraph(spatialRecs)

	chartID := pathChartID
	if chartID == "" {
		chartID = metadata.DSNM
	}
	if chartID == "" {
		chartID = "UNKNOWN"
	}
	scaleNum := scaleNumFromChartID(chartID)

	var features []builder.Feature
	var sectorLights []builder.SectorLight

	for _, rec := range featureRecs {
		geom, errs := builder.BuildGeometry(rec, graph)
		dangling := false
		for _, e := range errs {
			sigolo.Warnf("decode: %s", e)
			switch e.(type) {
			case *spatial.MissingSpatialRecordError:
				stats.DanglingSpatialRef++
				dangling = true
			case *spatial.DiscontinuousLineError:
				stats.DiscontinuousLine++
			default:
				stats.NonClosingRing++
			}
		}
		if dangling {
			continue
		}

		if err := builder.ValidateGeometry(geom); err != nil {
			sigolo.Warnf("decode: skipping feature %d: %s", rec.RCID, err)
			stats.InvalidCoordinate++
			continue
		}

		f := builder.NewFeature(rec, geom, chartID, scaleNum, params.CSCL)

		// Post-processing pipeline, strict order: round coordinates, then
		// normalize COLOUR, then explode SOUNDG multipoints, then compute
		// LIGHTS sector orientation. Sounding explosion must run before any
		// identity-dependent rewrite since it fans one feature into many.
		f.Geometry = builder.RoundCoordinates(f.Geometry)
		builder.NormalizeColour(f.Attributes)

		for _, exploded := range builder.ExplodeSoundings(f) {
			e := exploded
			if light := builder.ApplyLightOrientation(&e); light != nil {
				sectorLights = append(sectorLights, *light)
			}
			features = append(features, e)
		}
	}

	stats.FeatureCount = len(features)
	stats.SectorLightCount = len(sectorLights)

	return &Cell{
		ChartID:      chartID,
		ScaleNum:     scaleNum,
		CSCL:         params.CSCL,
		Features:     features,
		SectorLights: sectorLights,
		Stats:        stats,
	}, nil
}

// HasSafetyAreas reports whether the decoded cell carries any feature whose
// object class is one of the regulated/restricted area classes (spec.md §6
// "has_safety_areas").
func (c *Cell) HasSafetyAreas() bool {
	for _, f := range c.Features {
		if catalog.IsSafetyArea(f.OBJL) {
			return true
		}
	}
	return false
}
