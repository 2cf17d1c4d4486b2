// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package invidx

// Kind tags the leaf variants an IndexResult can hold, plus the Aggregate
// case that owns a child list instead of a payload.
type Kind uint8

const (
	// KindTerm is a single-term match: doc id, frequency, field mask, and
	// (optionally) borrowed term-position data.
	KindTerm Kind = iota
	// KindNumeric is a numeric-predicate match: doc id plus a float64 value.
	KindNumeric
	// KindVirtual is a placeholder match carrying only a doc id and
	// frequency, used where a codec needs a result to populate but the
	// match itself has no payload.
	KindVirtual
	// KindMetric is a scored match: doc id plus a float64 score. Distinct
	// from KindNumeric in semantics only; the wire shape is identical.
	KindMetric
	// KindAggregate is an intersection/union node over borrowed children.
	KindAggregate
)

func (k Kind) String() string {
	switch k {
	case KindTerm:
		return "term"
	case KindNumeric:
		return "numeric"
	case KindVirtual:
		return "virtual"
	case KindMetric:
		return "metric"
	case KindAggregate:
		return "aggregate"
	default:
		return "unknown"
	}
}

// leafBit is the bit kind-masks use to tag a leaf kind's presence in an
// aggregate's TypeMask. KindAggregate has no bit of its own: an aggregate's
// type mask describes the leaf kinds reachable underneath it, and a nested
// aggregate child folds in its own already-accumulated mask rather than
// being tagged as a fifth kind.
func (k Kind) leafBit() uint8 {
	switch k {
	case KindTerm:
		return 1 << 0
	case KindNumeric:
		return 1 << 1
	case KindVirtual:
		return 1 << 2
	case KindMetric:
		return 1 << 3
	default:
		return 0
	}
}

// AggregateKind distinguishes an intersection node from a union node. It is
// meaningful only when Kind == KindAggregate.
type AggregateKind uint8

const (
	Intersection AggregateKind = iota
	Union
)

// IndexResult is a tagged record representing either a leaf match or an
// aggregate of child matches. Exactly one payload is valid per Kind; the
// aggregate case's child list is a borrowed-reference AggregateResult: the
// aggregate owns the list's backing array but never the children it points
// to (see AggregateResult).
type IndexResult struct {
	Kind Kind

	DocID     uint64
	Frequency uint32
	FieldMask FieldMask128 // Term: the term's field mask. Aggregate: OR of children's.
	Offsets   OffsetVector // Term only.

	Numeric float64 // KindNumeric only.
	Metric  float64 // KindMetric only.

	AggKind AggregateKind  // KindAggregate only.
	Agg     AggregateResult // KindAggregate only: child list + type mask.
}

// NewTerm builds a zero-value term result, ready for Decode to populate.
func NewTerm() IndexResult {
	return IndexResult{Kind: KindTerm}
}

// NewNumeric builds a numeric result with the given value.
func NewNumeric(value float64) IndexResult {
	return IndexResult{Kind: KindNumeric, Numeric: value}
}

// NewVirtual builds a placeholder result.
func NewVirtual() IndexResult {
	return IndexResult{Kind: KindVirtual}
}

// NewMetric builds a metric result with the given score.
func NewMetric(score float64) IndexResult {
	return IndexResult{Kind: KindMetric, Metric: score}
}

// NewAggregate builds an empty aggregate node of the given kind with room
// for capacity children before the first reallocation.
func NewAggregate(kind AggregateKind, capacity int) IndexResult {
	return IndexResult{
		Kind:    KindAggregate,
		AggKind: kind,
		Agg:     NewAggregateResult(capacity),
	}
}

// IsAggregate reports whether r holds a child list rather than a leaf
// payload.
func (r *IndexResult) IsAggregate() bool {
	return r.Kind == KindAggregate
}

// TypeMask returns the union of leaf kinds reachable under r. It is zero
// for any non-aggregate result.
func (r *IndexResult) TypeMask() uint8 {
	if r.Kind != KindAggregate {
		return 0
	}
	return r.Agg.typeMask
}

// Push appends child to r's child list if r is an aggregate; it is a
// silent no-op otherwise. Pushing:
//
//  1. appends child to the child list, growing capacity as needed;
//  2. overwrites r.DocID with child.DocID -- last write wins, even if doc
//     ids arrive out of order, since a decreasing id is still the most
//     recent one pushed;
//  3. OR-folds child.FieldMask into r.FieldMask;
//  4. folds child's leaf-kind bits (or, if child is itself an aggregate,
//     child's own already-accumulated TypeMask) into r's type mask.
func (r *IndexResult) Push(child *IndexResult) {
	if r.Kind != KindAggregate || child == nil {
		return
	}
	r.Agg.append(child)
	r.DocID = child.DocID
	r.FieldMask = r.FieldMask.Or(child.fieldMaskForFold())
	if child.Kind == KindAggregate {
		r.Agg.typeMask |= child.Agg.typeMask
	} else {
		r.Agg.typeMask |= child.Kind.leafBit()
	}
}

// fieldMaskForFold returns the field mask to OR into a parent aggregate:
// a term's own mask, or (recursively) an aggregate child's already-folded
// mask. Other leaf kinds carry no field mask.
func (r *IndexResult) fieldMaskForFold() FieldMask128 {
	switch r.Kind {
	case KindTerm, KindAggregate:
		return r.FieldMask
	default:
		return FieldMask128{}
	}
}
