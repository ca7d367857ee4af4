package engine

import "github.com/cellkit/cellkit/layout"

// LayoutCache owns every registered layout manager, indexed by dense ID.
// Dirty tracking lives in the managers themselves; the cache only walks
// them.
type LayoutCache struct {
	managers []layout.Manager
}

// NewLayoutCache returns an empty layout registry
func NewLayoutCache() *LayoutCache {
	return &LayoutCache{}
}

// Add registers a manager and returns its ID
func (lc *LayoutCache) Add(m layout.Manager) int {
	id := len(lc.managers)
	lc.managers = append(lc.managers, m)
	return id
}

// GetByID returns the manager registered under id. Unknown IDs are a
// caller bug; the indexed access panics.
func (lc *LayoutCache) GetByID(id int) layout.Manager {
	return lc.managers[id]
}

// Len returns the number of registered managers
func (lc *LayoutCache) Len() int {
	return len(lc.managers)
}

// NeedsLayout reports whether layout id has a pending pass
func (lc *LayoutCache) NeedsLayout(id int) bool {
	return lc.managers[id].NeedsLayout()
}

// DoLayouts runs every dirty manager against the widget registry
func (lc *LayoutCache) DoLayouts(a layout.WidgetAccess) {
	for _, m := range lc.managers {
		if m.NeedsLayout() {
			m.DoLayout(a)
		}
	}
}
