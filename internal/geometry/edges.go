package geometry

// Edge is an undirected vertex pair, canonicalized so A < B.
type Edge struct {
	A, B int
}

// UniqueEdges walks every face's consecutive vertex pairs (including the
// wrap-around pair) and collects each edge once. Edges shared between
// adjacent faces collapse via the canonical (min,max) form. The result is in
// first-seen order, so iteration is stable from frame to frame.
func UniqueEdges(faces [][5]int) []Edge {
	seen := make(map[Edge]struct{}, EdgeCount)
	edges := make([]Edge, 0, EdgeCount)

	for _, face := range faces {
		for i := range face {
			a := face[i]
			b := face[(i+1)%len(face)]
			if a > b {
				a, b = b, a
			}
			e := Edge{A: a, B: b}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}
