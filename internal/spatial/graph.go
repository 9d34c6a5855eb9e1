// Package spatial resolves the three-level S-57 spatial indirection graph
// (feature → spatial record → edge → node) into ordered coordinate rings.
package spatial

import "github.com/encharts/s57decode/internal/s57rec"

// Node is a resolved isolated or connected node. Points holds every
// coordinate triple its SG2D/SG3D array carried: exactly one for an
// ordinary node, but an SG3D-backed isolated node (e.g. a SOUNDG sounding
// cluster) may carry many (lon, lat, depth) triples on a single VRID.
type Node struct {
	RCID   int64
	Points [][]float64 // each entry [lon, lat] or [lon, lat, depth]
}

// Point returns the node's first (and, for non-SOUNDG nodes, only)
// coordinate. Edge endpoints always resolve through this, since an edge's
// start/end node is always a single-coordinate connected node.
func (n *Node) Point() []float64 {
	if len(n.Points) == 0 {
		return nil
	}
	return n.Points[0]
}

// Edge is a resolved edge: its start/end node ids and its own interior
// shape points (S-57 §5.1.4.4: "the geometry of the connected node is not
// part of the edge").
type Edge struct {
	RCID        int64
	StartNodeID int64
	EndNodeID   int64
	Points      [][]float64
}

// Graph is the cell's spatial indirection graph, built once from every
// VRID record and handed read-only to the feature builder. Nodes and edges
// are kept in separate dense maps keyed by record id, per DESIGN NOTES
// "spatial graph representation" — a composite (RCNM, RCID) key is only
// needed while classifying a raw spatial record, not once it's filed into
// the right map.
type Graph struct {
	nodes map[int64]*Node
	edges map[int64]*Edge
}

// BuildGraph classifies every parsed spatial record into the node or edge
// map. Face records (RCNM 140) are accepted by the grammar but unused by
// any S-57 object class this decoder targets, so they're not indexed.
func BuildGraph(records []*s57rec.SpatialRecord) *Graph {
	g := &Graph{nodes: make(map[int64]*Node), edges: make(map[int64]*Edge)}

	for _, r := range records {
		switch r.RecordType {
		case s57rec.SpatialIsolatedNode, s57rec.SpatialConnectedNode:
			if len(r.Coordinates) == 0 {
				continue
			}
			g.nodes[r.RCID] = &Node{RCID: r.RCID, Points: r.Coordinates}
		case s57rec.SpatialEdge:
			e := &Edge{RCID: r.RCID}
			for _, ptr := range r.VectorPointers {
				if ptr.TargetRCNM != int(s57rec.SpatialIsolatedNode) && ptr.TargetRCNM != int(s57rec.SpatialConnectedNode) {
					continue
				}
				if e.StartNodeID == 0 {
					e.StartNodeID = ptr.TargetRCID
				} else if e.EndNodeID == 0 {
					e.EndNodeID = ptr.TargetRCID
				}
			}
			for _, coord := range r.Coordinates {
				e.Points = append(e.Points, coord)
			}
			g.edges[r.RCID] = e
		}
	}

	return g
}

// Node looks up a node by record id.
func (g *Graph) Node(rcid int64) (*Node, bool) {
	n, ok := g.nodes[rcid]
	return n, ok
}

// Edge looks up an edge by record id.
func (g *Graph) Edge(rcid int64) (*Edge, bool) {
	e, ok := g.edges[rcid]
	return e, ok
}
