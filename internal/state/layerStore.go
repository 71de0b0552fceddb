package state

import (
	"fmt"

	"LayerBoard/internal/raster"
)

// Layer is one named drawing surface. Raster holds the canvas pixels as they
// stood the last time this layer was active and a commit occurred, or the
// seed pixels from when the layer was created.
type Layer struct {
	ID      int
	Name    string
	Visible bool
	Raster  raster.Snapshot
}

// LayerStore is the ordered layer list plus active-layer bookkeeping.
// Ids come from a monotonic counter that is re-seeded past the highest
// existing id on every Add, so numbering observably matches the
// increment-of-max rule: {1,2} -> 3, {1,3} -> 4.
type LayerStore struct {
	layers   []*Layer
	activeID int
	nextID   int
}

// NewLayerStore creates the store with a single active "Layer 1" seeded from
// the given snapshot.
func NewLayerStore(seed raster.Snapshot) *LayerStore {
	ls := &LayerStore{nextID: 1}
	ls.Add(seed)
	return ls
}

// Add appends a new layer seeded with the currently displayed canvas, so a
// fresh layer starts as a duplicate of what is visible rather than
// transparent. The new layer becomes active.
func (ls *LayerStore) Add(seed raster.Snapshot) *Layer {
	if m := ls.maxID(); m >= ls.nextID {
		ls.nextID = m + 1
	}
	l := &Layer{
		ID:      ls.nextID,
		Name:    fmt.Sprintf("Layer %d", ls.nextID),
		Visible: true,
		Raster:  seed,
	}
	ls.nextID++
	ls.layers = append(ls.layers, l)
	ls.activeID = l.ID
	return l
}

func (ls *LayerStore) maxID() int {
	m := 0
	for _, l := range ls.layers {
		if l.ID > m {
			m = l.ID
		}
	}
	return m
}

// Get returns the layer with the given id, or nil.
func (ls *LayerStore) Get(id int) *Layer {
	for _, l := range ls.layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// Active returns the currently active layer. The store guarantees one exists.
func (ls *LayerStore) Active() *Layer {
	return ls.Get(ls.activeID)
}

func (ls *LayerStore) ActiveID() int {
	return ls.activeID
}

// SetActive switches the active layer; unknown ids are ignored.
func (ls *LayerStore) SetActive(id int) bool {
	if ls.Get(id) == nil {
		return false
	}
	ls.activeID = id
	return true
}

// ToggleVisible flips a layer's visibility flag. The flag only drives the
// layer-list indicator; display always shows the active layer's raster.
func (ls *LayerStore) ToggleVisible(id int) bool {
	l := ls.Get(id)
	if l == nil {
		return false
	}
	l.Visible = !l.Visible
	return true
}

// Layers returns the layers in display order as value copies.
func (ls *LayerStore) Layers() []Layer {
	out := make([]Layer, 0, len(ls.layers))
	for _, l := range ls.layers {
		out = append(out, *l)
	}
	return out
}

func (ls *LayerStore) Len() int {
	return len(ls.layers)
}
