package domain

type ItemType string

const (
	TypeEpic    ItemType = "epic"
	TypeFeature ItemType = "feature"
	TypeStory   ItemType = "story"
	TypeTask    ItemType = "task"
	TypeBug     ItemType = "bug"
)

// AggregateTypes hold derived estimate/actual sums; their values are never
// authored directly.
var AggregateTypes = map[ItemType]bool{
	TypeStory:   true,
	TypeFeature: true,
	TypeEpic:    true,
}

// LeafTypes carry user-authored estimates and actuals.
var LeafTypes = map[ItemType]bool{
	TypeTask: true,
	TypeBug:  true,
}

// AllowedParentTypes maps each item type to the parent types it may attach to.
// Epics are roots and have no entry.
var AllowedParentTypes = map[ItemType][]ItemType{
	TypeFeature: {TypeEpic},
	TypeStory:   {TypeFeature},
	TypeTask:    {TypeStory},
	TypeBug:     {TypeStory},
}

// AllItemTypes lists every item type from the top of the hierarchy down.
var AllItemTypes = []ItemType{TypeEpic, TypeFeature, TypeStory, TypeTask, TypeBug}

// ValidItemTypes is the canonical set of accepted item type strings.
var ValidItemTypes = map[string]bool{
	"epic": true, "feature": true, "story": true, "task": true, "bug": true,
}

func (t ItemType) IsAggregate() bool { return AggregateTypes[t] }

func (t ItemType) IsLeaf() bool { return LeafTypes[t] }

// CanParent reports whether an item of type t may be attached under a parent
// of type parent.
func (t ItemType) CanParent(parent ItemType) bool {
	for _, p := range AllowedParentTypes[t] {
		if p == parent {
			return true
		}
	}
	return false
}

type ItemStatus string

const (
	StatusTodo       ItemStatus = "todo"
	StatusInProgress ItemStatus = "in_progress"
	StatusOnHold     ItemStatus = "on_hold"
	StatusDone       ItemStatus = "done"
)

// AllItemStatuses lists every status in board column order.
var AllItemStatuses = []ItemStatus{StatusTodo, StatusInProgress, StatusOnHold, StatusDone}

// ValidItemStatuses is the canonical set of accepted status strings.
var ValidItemStatuses = map[string]bool{
	"todo": true, "in_progress": true, "on_hold": true, "done": true,
}

type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)
