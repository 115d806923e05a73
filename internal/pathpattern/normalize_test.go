package pathpattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalized_RemovesDuplicateBranches(t *testing.T) {
	x := Sequence(NodePattern{Binding: "x"}, EdgePattern{Direction: Outgoing})
	y := Sequence(NodePattern{Binding: "y"})

	p := Sequence(Alternation{Branches: []Pattern{x, y, x}})
	n := Normalized(p)

	alt, ok := n.Elements[0].(Alternation)
	require.True(t, ok)
	require.Len(t, alt.Branches, 2)
	// First-occurrence order is preserved.
	assert.True(t, Equal(x, alt.Branches[0]))
	assert.True(t, Equal(y, alt.Branches[1]))
}

func TestNormalized_SingleBranchSplicedInline(t *testing.T) {
	x := Sequence(NodePattern{Binding: "x"}, EdgePattern{Direction: Outgoing})

	p := Sequence(
		NodePattern{Binding: "head"},
		Alternation{Branches: []Pattern{x, x}},
		NodePattern{Binding: "tail"},
	)
	n := Normalized(p)

	// alternation([X, X]) collapses to X's elements, inlined in place.
	require.Len(t, n.Elements, 4)
	assert.Equal(t, NodePattern{Binding: "head"}, n.Elements[0])
	assert.Equal(t, NodePattern{Binding: "x"}, n.Elements[1])
	assert.Equal(t, EdgePattern{Direction: Outgoing}, n.Elements[2])
	assert.Equal(t, NodePattern{Binding: "tail"}, n.Elements[3])
}

func TestNormalized_DistinctBranchesUntouched(t *testing.T) {
	p := Sequence(Alternation{Branches: []Pattern{
		Sequence(NodePattern{Binding: "a"}),
		Sequence(NodePattern{Binding: "b"}),
	}})

	n := Normalized(p)
	assert.True(t, Equal(p, n))
}

func TestNormalized_DedupUsesDeepEquality(t *testing.T) {
	// Branches that differ only deep inside a quantified inner must NOT be
	// conflated.
	a := Sequence(Quantified{
		Inner:      Sequence(EdgePattern{Direction: Outgoing}),
		Quantifier: OneOrMore,
	})
	b := Sequence(Quantified{
		Inner:      Sequence(EdgePattern{Direction: Incoming}),
		Quantifier: OneOrMore,
	})

	p := Sequence(Alternation{Branches: []Pattern{a, b}})
	n := Normalized(p)

	alt, ok := n.Elements[0].(Alternation)
	require.True(t, ok)
	assert.Len(t, alt.Branches, 2)
}

func TestNormalized_BranchesNormalizedBeforeDedup(t *testing.T) {
	// Two branches that become identical after their own normalization
	// count as duplicates.
	x := Sequence(NodePattern{Binding: "x"})
	withNestedAlt := Sequence(Alternation{Branches: []Pattern{x, x}})

	p := Sequence(Alternation{Branches: []Pattern{x, withNestedAlt}})
	n := Normalized(p)

	// Both branches normalize to [node x], so the alternation collapses
	// and splices inline.
	require.Len(t, n.Elements, 1)
	assert.Equal(t, NodePattern{Binding: "x"}, n.Elements[0])
}

func TestNormalized_NestedQuantificationPreserved(t *testing.T) {
	// exactly(2) of exactly(3) is NOT flattened to exactly(6).
	p := Sequence(Quantified{
		Inner: Sequence(Quantified{
			Inner:      Sequence(EdgePattern{}),
			Quantifier: Exactly(3),
		}),
		Quantifier: Exactly(2),
	})

	n := Normalized(p)

	outer, ok := n.Elements[0].(Quantified)
	require.True(t, ok)
	assert.Equal(t, 2, outer.Quantifier.N)
	inner, ok := outer.Inner.Elements[0].(Quantified)
	require.True(t, ok)
	assert.Equal(t, 3, inner.Quantifier.N)
}

func TestNormalized_RecursesIntoQuantifiedInner(t *testing.T) {
	x := Sequence(NodePattern{Binding: "x"})
	p := Sequence(Quantified{
		Inner:      Sequence(Alternation{Branches: []Pattern{x, x}}),
		Quantifier: ZeroOrMore,
	})

	n := Normalized(p)

	q, ok := n.Elements[0].(Quantified)
	require.True(t, ok)
	require.Len(t, q.Inner.Elements, 1)
	assert.Equal(t, NodePattern{Binding: "x"}, q.Inner.Elements[0])
}

func TestNormalized_Idempotent(t *testing.T) {
	x := Sequence(NodePattern{Binding: "x"})
	y := Sequence(NodePattern{Binding: "y"})

	patterns := []Pattern{
		Sequence(Alternation{Branches: []Pattern{x, y, x}}),
		Sequence(Alternation{Branches: []Pattern{x, x}}),
		Sequence(Quantified{
			Inner:      Sequence(Alternation{Branches: []Pattern{y, y}}),
			Quantifier: OneOrMore,
		}),
	}

	for _, p := range patterns {
		once := Normalized(p)
		twice := Normalized(once)
		assert.True(t, Equal(once, twice))
	}
}

func TestNormalized_PreservesBindingAndMode(t *testing.T) {
	p := Pattern{
		Binding:  "route",
		Mode:     Acyclic,
		Elements: []Element{NodePattern{}},
	}

	n := Normalized(p)
	assert.Equal(t, "route", n.Binding)
	assert.Equal(t, Acyclic, n.Mode)
}

func TestNormalized_InputUntouched(t *testing.T) {
	x := Sequence(NodePattern{Binding: "x"})
	p := Sequence(Alternation{Branches: []Pattern{x, x}})

	_ = Normalized(p)

	alt, ok := p.Elements[0].(Alternation)
	require.True(t, ok)
	assert.Len(t, alt.Branches, 2)
}
