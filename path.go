package geonode

// PathEdges returns the edges of a polyline through n vertices.
// An open path has n-1 edges; a closed path adds the edge from the last
// vertex back to the first. Fewer than two vertices yield no edges, and
// two vertices yield a single edge whether closed or not.
func PathEdges(n int, closed bool) []Edge {
	if n < 2 {
		return []Edge{}
	}
	count := n - 1
	if closed && n > 2 {
		count = n
	}
	edges := make([]Edge, count)
	for i := range n - 1 {
		edges[i] = Edge{i, i + 1}
	}
	if count == n {
		edges[n-1] = Edge{n - 1, 0}
	}
	return edges
}

// IsPath reports whether edges form a sequential polyline over n vertices,
// open or closed.
func IsPath(edges []Edge, n int) bool {
	if len(edges) != n-1 && len(edges) != n {
		return false
	}
	for i, e := range edges {
		want := Edge{i, i + 1}
		if i == n-1 {
			want = Edge{n - 1, 0}
		}
		if e != want {
			return false
		}
	}
	return true
}
