// SPDX-License-Identifier: MIT

package floydwarshall

import "github.com/katalvlaran/disasteraid/shortest"

// distMatrix is a square row-major matrix of distances (offset = i*n + j).
type distMatrix struct {
	n    int
	data []shortest.Distance
}

// newDistMatrix returns an n×n matrix with 0 on the diagonal and Infinite elsewhere.
func newDistMatrix(n int) *distMatrix {
	m := &distMatrix{n: n, data: make([]shortest.Distance, n*n)} // zero value = Infinite
	for i := 0; i < n; i++ {
		m.data[i*n+i] = shortest.Finite(0)
	}

	return m
}

func (m *distMatrix) at(i, j int) shortest.Distance     { return m.data[i*m.n+j] }
func (m *distMatrix) set(i, j int, d shortest.Distance) { m.data[i*m.n+j] = d }

// row returns a copy of row i.
func (m *distMatrix) row(i int) []shortest.Distance {
	out := make([]shortest.Distance, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out
}

// hopMatrix is a square row-major matrix of next-hop vertex indices.
type hopMatrix struct {
	n    int
	data []int
}

// newHopMatrix returns an n×n matrix with i on the diagonal and None elsewhere.
func newHopMatrix(n int) *hopMatrix {
	m := &hopMatrix{n: n, data: make([]int, n*n)}
	for i := range m.data {
		m.data[i] = shortest.None
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = i
	}

	return m
}

func (m *hopMatrix) at(i, j int) int     { return m.data[i*m.n+j] }
func (m *hopMatrix) set(i, j int, v int) { m.data[i*m.n+j] = v }
