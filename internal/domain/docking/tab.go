package docking

import (
	"maps"
	"slices"

	"github.com/bnema/dynpanels/internal/domain/entity"
)

// Tab is one unit of content hosted by a panel. The content handle is
// opaque to the layout engine; tabs are persisted by id only.
type Tab struct {
	id      string
	content any
	label   string
	icon    string
	minSize entity.Vector2
	panel   *Panel
	manager *Manager
}

// TabOptions describes a tab to create.
type TabOptions struct {
	// ID must be unique within the manager. A random id is generated when empty.
	ID      string
	Label   string
	Icon    string
	MinSize entity.Vector2
}

func (t *Tab) ID() string        { return t.id }
func (t *Tab) Content() any      { return t.content }
func (t *Tab) Label() string     { return t.label }
func (t *Tab) Icon() string      { return t.icon }
func (t *Tab) Panel() *Panel     { return t.panel }
func (t *Tab) SetLabel(l string) { t.label = l }
func (t *Tab) SetIcon(i string)  { t.icon = i }

func (t *Tab) MinSize() entity.Vector2 { return t.minSize }

// SetMinSize changes the tab's minimum size and its panel's with it.
func (t *Tab) SetMinSize(size entity.Vector2) {
	if t.minSize == size {
		return
	}
	t.minSize = size
	if t.panel != nil {
		t.panel.recalculateMinSize()
	}
}

// SetID re-keys the tab in the registry.
func (t *Tab) SetID(id string) error {
	return t.manager.tabs.rename(t, id)
}

// Index returns the tab's position in its panel, or -1.
func (t *Tab) Index() int {
	if t.panel == nil {
		return -1
	}
	return t.panel.TabIndex(t)
}

// Detach moves the tab into a floating panel of its own and returns it.
func (t *Tab) Detach() (*Panel, error) {
	if t.panel == nil {
		return nil, ErrPanelDestroyed
	}
	return t.manager.DetachPanelTab(t.panel, t.Index())
}

// TabRegistry resolves tab ids to live tabs. It is owned by a Manager and
// shared by all of its canvases.
type TabRegistry struct {
	tabs map[string]*Tab
}

func newTabRegistry() *TabRegistry {
	return &TabRegistry{tabs: make(map[string]*Tab)}
}

// Lookup returns the tab registered under id.
func (r *TabRegistry) Lookup(id string) (*Tab, bool) {
	t, ok := r.tabs[id]
	return t, ok
}

// Len returns the number of registered tabs.
func (r *TabRegistry) Len() int { return len(r.tabs) }

// IDs returns the registered ids in sorted order.
func (r *TabRegistry) IDs() []string {
	return slices.Sorted(maps.Keys(r.tabs))
}

// Unregister forgets a tab whose content is gone. The tab is pruned from
// its panel on the next canvas update.
func (r *TabRegistry) Unregister(id string) {
	delete(r.tabs, id)
}

func (r *TabRegistry) register(t *Tab) error {
	if _, exists := r.tabs[t.id]; exists {
		return ErrDuplicateTabID
	}
	r.tabs[t.id] = t
	return nil
}

func (r *TabRegistry) rename(t *Tab, id string) error {
	if id == t.id {
		return nil
	}
	if _, exists := r.tabs[id]; exists {
		return ErrDuplicateTabID
	}
	if current, ok := r.tabs[t.id]; ok && current == t {
		delete(r.tabs, t.id)
	}
	t.id = id
	if id != "" {
		r.tabs[id] = t
	}
	return nil
}

// resolves reports whether t is still the tab registered under its id.
func (r *TabRegistry) resolves(t *Tab) bool {
	current, ok := r.tabs[t.id]
	return ok && current == t
}
