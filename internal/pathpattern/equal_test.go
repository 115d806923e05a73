package pathpattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathq/pathq/internal/ir"
)

func TestEqual_IdenticalPatterns(t *testing.T) {
	build := func() Pattern {
		return Pattern{
			Binding: "p",
			Mode:    Trail,
			Elements: []Element{
				NodePattern{Binding: "a", Labels: []string{"Person"}},
				EdgePattern{Direction: Outgoing, Labels: []string{"KNOWS"}},
				NodePattern{Binding: "b"},
			},
		}
	}

	assert.True(t, Equal(build(), build()))
}

func TestEqual_BindingAndModeParticipate(t *testing.T) {
	base := Sequence(NodePattern{})

	assert.False(t, Equal(base, WithBinding(base, "p")))
	assert.False(t, Equal(base, WithMode(base, Trail)))
}

func TestEqual_ElementOrderMatters(t *testing.T) {
	a := Sequence(NodePattern{Binding: "x"}, NodePattern{Binding: "y"})
	b := Sequence(NodePattern{Binding: "y"}, NodePattern{Binding: "x"})

	assert.False(t, Equal(a, b))
}

func TestEqual_LabelsAreSets(t *testing.T) {
	a := Sequence(NodePattern{Labels: []string{"A", "B"}})
	b := Sequence(NodePattern{Labels: []string{"B", "A"}})
	c := Sequence(NodePattern{Labels: []string{"A"}})

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestEqual_DuplicateLabelsCollapse(t *testing.T) {
	a := Sequence(EdgePattern{Labels: []string{"KNOWS", "KNOWS"}})
	b := Sequence(EdgePattern{Labels: []string{"KNOWS"}})

	assert.True(t, Equal(a, b))
}

func TestEqual_DirectionMatters(t *testing.T) {
	a := Sequence(EdgePattern{Direction: Outgoing})
	b := Sequence(EdgePattern{Direction: Incoming})

	assert.False(t, Equal(a, b))
}

func TestEqual_NodeVsEdgeNeverEqual(t *testing.T) {
	a := Sequence(NodePattern{Binding: "x"})
	b := Sequence(EdgePattern{Binding: "x"})

	assert.False(t, Equal(a, b))
}

func TestEqual_QuantifierParticipates(t *testing.T) {
	inner := Sequence(EdgePattern{})

	a := Sequence(Quantified{Inner: inner, Quantifier: Exactly(2)})
	b := Sequence(Quantified{Inner: inner, Quantifier: Exactly(3)})
	c := Sequence(Quantified{Inner: inner, Quantifier: Between(2, 2)})

	assert.False(t, Equal(a, b))
	// exactly(2) and range(2,2) match the same traversals but are
	// structurally distinct.
	assert.False(t, Equal(a, c))
}

func TestEqual_RangeBoundPointers(t *testing.T) {
	inner := Sequence(EdgePattern{})

	a := Sequence(Quantified{Inner: inner, Quantifier: Between(1, 3)})
	b := Sequence(Quantified{Inner: inner, Quantifier: Between(1, 3)})
	c := Sequence(Quantified{Inner: inner, Quantifier: AtLeast(1)})

	// Bound comparison is by value, not pointer identity.
	assert.True(t, Equal(a, b))
	// An absent bound differs from any present bound.
	assert.False(t, Equal(a, c))
}

func TestEqual_PropertiesParticipate(t *testing.T) {
	a := Sequence(NodePattern{Properties: ir.Object{"age": ir.Int(30)}})
	b := Sequence(NodePattern{Properties: ir.Object{"age": ir.Int(30)}})
	c := Sequence(NodePattern{Properties: ir.Object{"age": ir.Int(31)}})

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestEqual_NilPropertiesEqualsEmpty(t *testing.T) {
	a := Sequence(NodePattern{})
	b := Sequence(NodePattern{Properties: ir.Object{}})

	assert.True(t, Equal(a, b))
}

func TestEqual_AlternationBranchOrderMatters(t *testing.T) {
	x := Sequence(NodePattern{Binding: "x"})
	y := Sequence(NodePattern{Binding: "y"})

	a := Sequence(Alternation{Branches: []Pattern{x, y}})
	b := Sequence(Alternation{Branches: []Pattern{y, x}})

	assert.False(t, Equal(a, b))
}
