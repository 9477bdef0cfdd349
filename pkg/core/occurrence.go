package core

import (
	"encoding/json"
	"slices"
)

// OccurrenceKind distinguishes the three occurrence specifiers.
type OccurrenceKind int

// OccurrenceKind constants.
const (
	OccurrencesAll      OccurrenceKind = iota // every occurrence
	OccurrencesPositive                       // only the listed indices
	OccurrencesNegative                       // every occurrence except the listed indices
)

func (k OccurrenceKind) String() string {
	switch k {
	case OccurrencesPositive:
		return "positive"
	case OccurrencesNegative:
		return "negative"
	default:
		return "all"
	}
}

// Occurrence selects 1-based occurrences of a term within the goal or a
// hypothesis. The zero value selects every occurrence.
type Occurrence struct {
	kind    OccurrenceKind
	indices []uint
}

// AllOccurrences returns the occurrence set containing every occurrence.
func AllOccurrences() Occurrence {
	return Occurrence{}
}

// PositiveOccurrences returns the set of exactly the given indices, in the
// order given. Duplicates are kept.
func PositiveOccurrences(indices ...uint) Occurrence {
	return Occurrence{kind: OccurrencesPositive, indices: slices.Clone(indices)}
}

// NegativeOccurrences returns the set of every occurrence except the given indices.
func NegativeOccurrences(indices ...uint) Occurrence {
	return Occurrence{kind: OccurrencesNegative, indices: slices.Clone(indices)}
}

// Kind returns which specifier this is.
func (o Occurrence) Kind() OccurrenceKind { return o.kind }

// Indices returns a copy of the listed indices. It is nil for All.
func (o Occurrence) Indices() []uint { return slices.Clone(o.indices) }

// IsAll reports whether every occurrence is selected without restriction.
func (o Occurrence) IsAll() bool { return o.kind == OccurrencesAll }

// Contains reports whether the 1-based occurrence idx is selected.
func (o Occurrence) Contains(idx uint) bool {
	switch o.kind {
	case OccurrencesPositive:
		return slices.Contains(o.indices, idx)
	case OccurrencesNegative:
		return !slices.Contains(o.indices, idx)
	default:
		return true
	}
}

// Equal reports whether two occurrence sets are written identically:
// same kind, same indices in the same order.
func (o Occurrence) Equal(other Occurrence) bool {
	return o.kind == other.kind && slices.Equal(o.indices, other.indices)
}

// occurrenceDoc is the serialized shape of an Occurrence.
type occurrenceDoc struct {
	Kind    string `json:"kind" yaml:"kind"`
	Indices []uint `json:"indices,omitempty" yaml:"indices,omitempty,flow"`
}

func (o Occurrence) doc() occurrenceDoc {
	return occurrenceDoc{Kind: o.kind.String(), Indices: o.Indices()}
}

// MarshalJSON implements json.Marshaler.
func (o Occurrence) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.doc())
}

// MarshalYAML implements yaml.Marshaler.
func (o Occurrence) MarshalYAML() (any, error) {
	return o.doc(), nil
}
