package core

import "slices"

// LocationKind identifies a Location variant.
type LocationKind int

// LocationKind constants, one per Location variant.
const (
	KindGoalOnly LocationKind = iota
	KindEverywhere
	KindAllHypotheses
	KindGoalAt
	KindHypothesesAt
	KindAt
)

var locationKindNames = map[LocationKind]string{
	KindGoalOnly:      "goal_only",
	KindEverywhere:    "everywhere",
	KindAllHypotheses: "all_hypotheses",
	KindGoalAt:        "goal_at",
	KindHypothesesAt:  "hypotheses_at",
	KindAt:            "at",
}

func (k LocationKind) String() string {
	if name, ok := locationKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Location is where a tactic acts. It is a closed set of variants:
// GoalOnly, Everywhere, AllHypotheses, GoalAt, HypothesesAt and At.
// Use a type switch to match on the variant.
type Location interface {
	// Kind returns the variant tag.
	Kind() LocationKind
	// IncludesGoal reports whether the tactic acts on the goal.
	IncludesGoal() bool
	// IsWildcard reports whether the tactic acts on every hypothesis in context.
	IsWildcard() bool
	// Targets returns a copy of the named hypotheses, in source order.
	// It is nil for variants that do not name hypotheses.
	Targets() []Target

	locationNode()
}

// Target is a named hypothesis restricted to a set of occurrences.
type Target struct {
	Name       string     `json:"name" yaml:"name"`
	Occurrence Occurrence `json:"occurrences" yaml:"occurrences"`
}

// Equal reports whether two targets have the same name and occurrences.
func (t Target) Equal(other Target) bool {
	return t.Name == other.Name && t.Occurrence.Equal(other.Occurrence)
}

// GoalOnly is the default location when no "at" clause is present.
type GoalOnly struct{}

// Everywhere is "at *" or "at * ⊢ *": the goal and all hypotheses.
type Everywhere struct{}

// AllHypotheses is "at * ⊢": every hypothesis, goal excluded.
type AllHypotheses struct{}

// GoalAt is "at {..}": the goal only, restricted to Occurrence.
type GoalAt struct {
	Occurrence Occurrence
}

// HypothesesAt is "at h {..}" or "at (h₁ {..}, h₂ {..})": named hypotheses
// only, goal excluded.
type HypothesesAt struct {
	targets []Target
}

// NewHypothesesAt returns a HypothesesAt owning a copy of targets.
func NewHypothesesAt(targets ...Target) HypothesesAt {
	return HypothesesAt{targets: slices.Clone(targets)}
}

// At is "at (h₁ {..}, h₂ {..}) ⊢ {..}": named hypotheses and the goal,
// each restricted independently.
type At struct {
	Goal    Occurrence
	targets []Target
}

// NewAt returns an At owning a copy of targets.
func NewAt(goal Occurrence, targets ...Target) At {
	return At{Goal: goal, targets: slices.Clone(targets)}
}

func (GoalOnly) locationNode()      {}
func (Everywhere) locationNode()    {}
func (AllHypotheses) locationNode() {}
func (GoalAt) locationNode()        {}
func (HypothesesAt) locationNode()  {}
func (At) locationNode()            {}

// Kind implements Location.
func (GoalOnly) Kind() LocationKind { return KindGoalOnly }

// Kind implements Location.
func (Everywhere) Kind() LocationKind { return KindEverywhere }

// Kind implements Location.
func (AllHypotheses) Kind() LocationKind { return KindAllHypotheses }

// Kind implements Location.
func (GoalAt) Kind() LocationKind { return KindGoalAt }

// Kind implements Location.
func (HypothesesAt) Kind() LocationKind { return KindHypothesesAt }

// Kind implements Location.
func (At) Kind() LocationKind { return KindAt }

// IncludesGoal implements Location.
func (GoalOnly) IncludesGoal() bool { return true }

// IncludesGoal implements Location.
func (Everywhere) IncludesGoal() bool { return true }

// IncludesGoal implements Location.
func (AllHypotheses) IncludesGoal() bool { return false }

// IncludesGoal implements Location.
func (GoalAt) IncludesGoal() bool { return true }

// IncludesGoal implements Location.
func (HypothesesAt) IncludesGoal() bool { return false }

// IncludesGoal implements Location.
func (At) IncludesGoal() bool { return true }

// IsWildcard implements Location.
func (GoalOnly) IsWildcard() bool { return false }

// IsWildcard implements Location.
func (Everywhere) IsWildcard() bool { return true }

// IsWildcard implements Location.
func (AllHypotheses) IsWildcard() bool { return true }

// IsWildcard implements Location.
func (GoalAt) IsWildcard() bool { return false }

// IsWildcard implements Location.
func (HypothesesAt) IsWildcard() bool { return false }

// IsWildcard implements Location.
func (At) IsWildcard() bool { return false }

// Targets implements Location.
func (GoalOnly) Targets() []Target { return nil }

// Targets implements Location.
func (Everywhere) Targets() []Target { return nil }

// Targets implements Location.
func (AllHypotheses) Targets() []Target { return nil }

// Targets implements Location.
func (GoalAt) Targets() []Target { return nil }

// Targets implements Location.
func (h HypothesesAt) Targets() []Target { return slices.Clone(h.targets) }

// Targets implements Location.
func (a At) Targets() []Target { return slices.Clone(a.targets) }

// GoalOccurrence returns the occurrences of the goal a location selects.
// ok is false when the goal is excluded.
func GoalOccurrence(loc Location) (occ Occurrence, ok bool) {
	switch l := loc.(type) {
	case GoalOnly, Everywhere:
		return AllOccurrences(), true
	case GoalAt:
		return l.Occurrence, true
	case At:
		return l.Goal, true
	}
	return Occurrence{}, false
}

// HypothesisNames returns the names of the hypotheses a location names
// explicitly, in source order. Wildcard locations name none.
func HypothesisNames(loc Location) []string {
	targets := loc.Targets()
	if len(targets) == 0 {
		return nil
	}
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name
	}
	return names
}

// Equal reports whether two locations are the same variant with equal contents.
func Equal(a, b Location) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	ga, okA := GoalOccurrence(a)
	gb, okB := GoalOccurrence(b)
	if okA != okB || !ga.Equal(gb) {
		return false
	}
	return slices.EqualFunc(a.Targets(), b.Targets(), Target.Equal)
}

// Document is the serialized shape of a Location, shared by the JSON and
// YAML encodings.
type Document struct {
	Kind         string      `json:"kind" yaml:"kind"`
	IncludesGoal bool        `json:"includes_goal" yaml:"includes_goal"`
	Goal         *Occurrence `json:"goal,omitempty" yaml:"goal,omitempty"`
	Targets      []Target    `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// Describe converts a location into its serializable Document.
func Describe(loc Location) Document {
	doc := Document{
		Kind:         loc.Kind().String(),
		IncludesGoal: loc.IncludesGoal(),
		Targets:      loc.Targets(),
	}
	if occ, ok := GoalOccurrence(loc); ok {
		doc.Goal = &occ
	}
	return doc
}
