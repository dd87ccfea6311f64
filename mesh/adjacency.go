package mesh

// Adjacency is a read-only edge → incident-face-count view over an
// IndexedMesh. Auxiliary segments carry no faces and do not contribute.
type Adjacency struct {
	counts map[Edge]int
	edges  []Edge // face edges in first-seen order
}

// Adjacency computes the face-incidence counts on demand. The result is
// independent of when it is called; the mesh never changes after Index.
func (im *IndexedMesh) Adjacency() Adjacency {
	adj := Adjacency{counts: make(map[Edge]int, len(im.Edges))}

	record := func(a, b int) {
		e := makeEdge(a, b)
		if _, ok := adj.counts[e]; !ok {
			adj.edges = append(adj.edges, e)
		}
		adj.counts[e]++
	}

	for _, q := range im.Quads {
		for i := 0; i < 4; i++ {
			record(q[i], q[(i+1)%4])
		}
	}
	for _, t := range im.Triangles {
		for i := 0; i < 3; i++ {
			record(t[i], t[(i+1)%3])
		}
	}

	return adj
}

// FaceCount returns the number of faces incident to the edge
func (a Adjacency) FaceCount(e Edge) int {
	return a.counts[makeEdge(e.A, e.B)]
}

// BoundaryEdges returns edges with exactly one incident face
func (a Adjacency) BoundaryEdges() []Edge {
	var out []Edge
	for _, e := range a.edges {
		if a.counts[e] == 1 {
			out = append(out, e)
		}
	}
	return out
}

// NonManifoldEdges returns edges with more than two incident faces.
// Any entry here indicates a meshing defect.
func (a Adjacency) NonManifoldEdges() []Edge {
	var out []Edge
	for _, e := range a.edges {
		if a.counts[e] > 2 {
			out = append(out, e)
		}
	}
	return out
}

// InteriorEdges returns edges shared by exactly two faces
func (a Adjacency) InteriorEdges() []Edge {
	var out []Edge
	for _, e := range a.edges {
		if a.counts[e] == 2 {
			out = append(out, e)
		}
	}
	return out
}

// IsManifold reports whether every face edge is shared by at most two faces
func (a Adjacency) IsManifold() bool {
	for _, c := range a.counts {
		if c > 2 {
			return false
		}
	}
	return true
}
