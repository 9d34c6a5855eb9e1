package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/encharts/s57decode/internal/decode"
)

// Metadata is the single-line JSON object the decoder prints to stdout on
// success (spec.md §6 "Output: stdout metadata").
type Metadata struct {
	GeoJSONPath       string  `json:"geojson_path"`
	HasSafetyAreas    bool    `json:"has_safety_areas"`
	FeatureCount      int     `json:"feature_count"`
	SectorLightsPath  *string `json:"sector_lights_path"`
	SectorLightsCount int     `json:"sector_lights_count"`
}

// WriteCell writes the GeoJSON feature collection, the sector-light
// sidecar (if any lights were found), and returns the metadata object the
// caller prints to stdout. All files are written under outputDir, named
// after the cell's chart id.
func WriteCell(cell *decode.Cell, outputDir string) (Metadata, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Metadata{}, errors.Wrapf(err, "output: creating %s", outputDir)
	}

	geojsonPath := filepath.Join(outputDir, cell.ChartID+".geojson")
	fc := FeatureCollection(cell.Features)
	if err := writeJSON(geojsonPath, fc); err != nil {
		return Metadata{}, errors.Wrap(err, "output: writing GeoJSON")
	}

	meta := Metadata{
		GeoJSONPath:       geojsonPath,
		HasSafetyAreas:    cell.HasSafetyAreas(),
		FeatureCount:      len(cell.Features),
		SectorLightsCount: len(cell.SectorLights),
	}

	if len(cell.SectorLights) > 0 {
		sidecarPath := filepath.Join(outputDir, cell.ChartID+".sectorlights.json")
		if err := writeJSON(sidecarPath, cell.SectorLights); err != nil {
			return Metadata{}, errors.Wrap(err, "output: writing sector-light sidecar")
		}
		meta.SectorLightsPath = &sidecarPath
	}

	return meta, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
