package spatial

import "fmt"

// MissingSpatialRecordError reports that a feature's FSPT (or an edge's
// VRPT, when resolving a line or ring) pointer names a spatial record RCID
// that never appeared in the cell. Per the error taxonomy this is Recoverable: the caller skips the
// feature and keeps decoding.
type MissingSpatialRecordError struct {
	FeatureID int64
	SpatialID int64
}

func (e *MissingSpatialRecordError) Error() string {
	return fmt.Sprintf("spatial: feature %d references missing spatial record %d", e.FeatureID, e.SpatialID)
}

// InvalidSpatialRecordError reports a spatial record that does not match
// the shape its RCNM promised (e.g. an edge with no coordinates at all).
type InvalidSpatialRecordError struct {
	SpatialID int64
	Reason    string
}

func (e *InvalidSpatialRecordError) Error() string {
	return fmt.Sprintf("spatial: invalid spatial record %d: %s", e.SpatialID, e.Reason)
}

// DiscontinuousLineError reports that two consecutive FSPT edge
// references didn't share an endpoint once assembled. This is an
// authoring defect, not a decode bug: per spec.md §8 scenario 3, the
// resolver must not attempt to repair the seam, only surface it.
type DiscontinuousLineError struct {
	FeatureID int64
}

func (e *DiscontinuousLineError) Error() string {
	return fmt.Sprintf("spatial: feature %d has a discontinuous line (non-adjacent edge seam)", e.FeatureID)
}
