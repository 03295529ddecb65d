// Package types defines the shared data structures for the TerminalRPG core.
// This package contains only type definitions and small predicates on them —
// no lookup logic, no state mutation.
package types

// LocationType is one level of the world geography hierarchy.
type LocationType string

// Hierarchy levels, outermost first. Depth in the tree determines the type.
const (
	LocationWorld     LocationType = "world"
	LocationContinent LocationType = "continent"
	LocationEmpire    LocationType = "empire"
	LocationKingdom   LocationType = "kingdom"
	LocationDomain    LocationType = "domain"
	LocationCity      LocationType = "city"
	LocationVillage   LocationType = "village"
	LocationLocal     LocationType = "local"
)

// LocationTypes lists all hierarchy levels in depth order.
var LocationTypes = []LocationType{
	LocationWorld,
	LocationContinent,
	LocationEmpire,
	LocationKingdom,
	LocationDomain,
	LocationCity,
	LocationVillage,
	LocationLocal,
}

// TreeNode is one node of the nested world geography tree as authored in
// content files. Depth in the tree determines the LocationType.
type TreeNode struct {
	ID          string
	Name        string
	Description string
	Children    []TreeNode
}

// LocationNode is an indexed location. ParentPath is the ordered list of
// ancestor ids from the root world down to the direct parent. The composite
// key ParentPath+ID is globally unique; bare ID is only unique within its
// type and lineage. Nodes are immutable once indexed.
type LocationNode struct {
	ID          string
	Type        LocationType
	Name        string
	Description string
	ParentPath  []string
}

// LocationPath is a sparse external-facing coordinate. Any prefix-truncated
// path is valid; a path with a gap in the ancestor chain will not resolve.
type LocationPath struct {
	WorldID     string `json:"worldId"`
	ContinentID string `json:"continentId"`
	EmpireID    string `json:"empireId,omitempty"`
	KingdomID   string `json:"kingdomId,omitempty"`
	DomainID    string `json:"domainId,omitempty"`
	CityID      string `json:"cityId,omitempty"`
	VillageID   string `json:"villageId,omitempty"`
	LocalID     string `json:"localId,omitempty"`
}

// IDs returns the present fields in hierarchy order. Absent fields are
// skipped, so a path with a hole produces a broken chain that resolves
// to nothing.
func (p LocationPath) IDs() []string {
	all := []string{
		p.WorldID, p.ContinentID, p.EmpireID, p.KingdomID,
		p.DomainID, p.CityID, p.VillageID, p.LocalID,
	}
	ids := make([]string, 0, len(all))
	for _, id := range all {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// MostSpecific returns the deepest settlement-level id the path names:
// local, else village, else city. Quest location gates compare against this.
func (p LocationPath) MostSpecific() string {
	switch {
	case p.LocalID != "":
		return p.LocalID
	case p.VillageID != "":
		return p.VillageID
	default:
		return p.CityID
	}
}

// Window is an hour-of-day interval, half-open [Start, End) on the 24-hour
// ring. Start >= End means the window wraps past midnight.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether the given hour falls inside the window.
// Both branches of the wraparound rule are spelled out: a window like
// {22, 5} is active at 23 and at 2, inactive at 10.
func (w Window) Contains(hour int) bool {
	if w.Start < w.End {
		return hour >= w.Start && hour < w.End
	}
	return hour >= w.Start || hour < w.End
}

// Schedule places an entity at a location for a window of hours.
type Schedule struct {
	Location string
	Window
}

// QuestType distinguishes main-line quests from side quests.
type QuestType string

const (
	QuestPrimary   QuestType = "primary"
	QuestSecondary QuestType = "secondary"
)

// QuestVisibility controls whether a quest must be unlocked before it is
// ever offered.
type QuestVisibility string

const (
	VisibilityNormal QuestVisibility = "normal"
	VisibilitySecret QuestVisibility = "secret"
)

// QuestStatus is the per-player lifecycle state of a quest. The zero value
// means the quest has never been accepted. Transitions only move forward:
// unset → accepted → completed.
type QuestStatus string

const (
	QuestUnset     QuestStatus = ""
	QuestAccepted  QuestStatus = "accepted"
	QuestCompleted QuestStatus = "completed"
)

// ObjectiveType is the kind of player action that progresses an objective.
type ObjectiveType string

const (
	ObjectiveTalk ObjectiveType = "talk"
	ObjectiveKill ObjectiveType = "kill"
)

// Objective is a single measurable quest requirement.
type Objective struct {
	Type        ObjectiveType
	Target      string
	Required    int
	Description string
}

// QuestConditions are player-state gates checked before a quest is offered.
// All set conditions must pass.
type QuestConditions struct {
	MinLevel  int
	Fame      int
	Relations map[string]int // npc id → minimum relationship
}

// QuestRewards are applied exactly once, on completion.
type QuestRewards struct {
	Gold  int
	Fame  int
	XP    int
	Items []string
}

// QuestDef is an immutable quest definition. Only the first objective is
// ever progressed by the engine; extra objectives are carried but inert.
type QuestDef struct {
	ID          string
	Name        string
	Type        QuestType
	Description string
	Location    string  // settlement id; empty = available anywhere
	Time        *Window // nil = no time gate
	Visibility  QuestVisibility
	Conditions  QuestConditions
	Objectives  []Objective
	Rewards     QuestRewards
}

// SkillType splits skills into actives (equip limit 4) and passives
// (equip limit 2).
type SkillType string

const (
	SkillActive  SkillType = "active"
	SkillPassive SkillType = "passive"
)

// SkillDef is an immutable skill definition.
type SkillDef struct {
	ID          string
	Name        string
	Type        SkillType
	Element     string
	Category    string
	Description string
}

// StoryChoice is one branch out of a story event.
type StoryChoice struct {
	Text string
	Next string
}

// StoryEvent is a node in the story graph. Events with choices branch;
// events without choices fall through to Next.
type StoryEvent struct {
	ID      string
	Text    string
	Choices []StoryChoice
	Next    string
}

// StoryEnd is the terminal story id.
const StoryEnd = "__end__"

// GameDef holds game metadata from content files. Start is a location
// descriptor (bare id or composite key) for new games.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Start   string
	Intro   string
}
