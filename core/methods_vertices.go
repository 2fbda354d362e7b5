// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex slots and the city-name catalog.
//
// Invariants:
//   - cityToIndex[name] == i  ⇔  indexToCity[i] == name (name != "").
//   - The number of slots never changes after NewGraph.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// AssignCity binds a city name to a vertex slot.
//
// Implementation:
//   - Stage 1: Validate name (ErrEmptyCityName) and index (ErrIndexOutOfRange).
//   - Stage 2: Drop the name previously bound to index, if any.
//   - Stage 3: If name is already bound to another slot, unbind that slot.
//   - Stage 4: Record the new binding in both directions.
//
// Behavior highlights:
//   - Rebinding an index overwrites its old name; the old name becomes unresolvable.
//   - Binding a name that another slot holds moves it, leaving that slot unnamed.
//   - Re-assigning the same (name, index) pair is a no-op.
//
// Errors:
//   - ErrEmptyCityName: if name == "".
//   - ErrIndexOutOfRange: if index is outside [0, VertexCount()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AssignCity(name string, index int) error {
	if name == "" {
		return ErrEmptyCityName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkIndexLocked(index); err != nil {
		return err
	}

	// Stage 2: forget whatever name this slot carried before.
	if old := g.indexToCity[index]; old != "" && old != name {
		delete(g.cityToIndex, old)
	}

	// Stage 3: keep the mapping bijective when the name moves between slots.
	if prev, ok := g.cityToIndex[name]; ok && prev != index {
		g.indexToCity[prev] = ""
	}

	g.cityToIndex[name] = index
	g.indexToCity[index] = name

	return nil
}

// Index resolves a city name to its vertex index.
//
// Errors:
//   - ErrUnknownCity: if name was never bound or has been rebound away.
//
// Complexity: O(1).
func (g *Graph) Index(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.indexLocked(name)
}

// Name returns the city bound to index.
//
// Errors:
//   - ErrIndexOutOfRange: if index is outside [0, VertexCount()).
//   - ErrUnnamedVertex: if no city is bound to the slot.
func (g *Graph) Name(index int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkIndexLocked(index); err != nil {
		return "", err
	}
	name := g.indexToCity[index]
	if name == "" {
		return "", fmt.Errorf("%w: index %d", ErrUnnamedVertex, index)
	}

	return name, nil
}

// HasCity reports whether name is currently bound to a vertex.
func (g *Graph) HasCity(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.cityToIndex[name]

	return ok
}

// Cities returns the city names indexed by vertex; unnamed slots are "".
// The returned slice is a copy.
func (g *Graph) Cities() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.indexToCity))
	copy(out, g.indexToCity)

	return out
}

// VertexCount returns the fixed number of vertex slots.
func (g *Graph) VertexCount() int {
	// vertexCount is immutable after NewGraph; no lock needed.
	return g.vertexCount
}

// ValidIndex returns nil when index addresses an existing slot and an error
// wrapping ErrIndexOutOfRange otherwise.
func (g *Graph) ValidIndex(index int) error {
	return g.checkIndexLocked(index)
}

// checkIndexLocked validates index against the immutable vertex count.
func (g *Graph) checkIndexLocked(index int) error {
	if index < 0 || index >= g.vertexCount {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, g.vertexCount)
	}

	return nil
}

// indexLocked resolves name; caller holds mu.
func (g *Graph) indexLocked(name string) (int, error) {
	idx, ok := g.cityToIndex[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCity, name)
	}

	return idx, nil
}
