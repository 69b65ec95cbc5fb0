package docking

// EventKind identifies a layout notification.
type EventKind int

const (
	EventPanelCreated EventKind = iota
	EventPanelDestroyed
	EventPanelBecameActive
	EventPanelBecameInactive
	EventPanelClosed
	EventTabCreated
	EventTabDestroyed
	EventActiveTabChanged
	EventTabDragStarted
	EventTabDragStopped
)

var eventKindNames = [...]string{
	EventPanelCreated:        "panel_created",
	EventPanelDestroyed:      "panel_destroyed",
	EventPanelBecameActive:   "panel_became_active",
	EventPanelBecameInactive: "panel_became_inactive",
	EventPanelClosed:         "panel_closed",
	EventTabCreated:          "tab_created",
	EventTabDestroyed:        "tab_destroyed",
	EventActiveTabChanged:    "active_tab_changed",
	EventTabDragStarted:      "tab_drag_started",
	EventTabDragStopped:      "tab_drag_stopped",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// Event is queued when it happens and delivered to subscribers on the
// next Manager.Update. Panel or Tab may be nil depending on the kind.
type Event struct {
	Kind  EventKind
	Panel *Panel
	Tab   *Tab
}

// EventHandler receives drained events.
type EventHandler func(Event)
