package pathpattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathq/pathq/internal/ir"
)

func TestFingerprint_StructurallyEqualPatternsAgree(t *testing.T) {
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

	fp1, err := Fingerprint(build())
	require.NoError(t, err)
	fp2, err := Fingerprint(build())
	require.NoError(t, err)

	assert.Equal(t, fp1, fp2)
	assert.Len(t, fp1, 64)
}

func TestFingerprint_LabelOrderIrrelevant(t *testing.T) {
	a := Sequence(NodePattern{Labels: []string{"A", "B"}})
	b := Sequence(NodePattern{Labels: []string{"B", "A"}})
	require.True(t, Equal(a, b))

	fpA, err := Fingerprint(a)
	require.NoError(t, err)
	fpB, err := Fingerprint(b)
	require.NoError(t, err)
	assert.Equal(t, fpA, fpB)
}

func TestFingerprint_DuplicateLabelsAgreeWithEqual(t *testing.T) {
	a := Sequence(NodePattern{Labels: []string{"X", "X"}})
	b := Sequence(NodePattern{Labels: []string{"X"}})
	require.True(t, Equal(a, b))

	fpA, err := Fingerprint(a)
	require.NoError(t, err)
	fpB, err := Fingerprint(b)
	require.NoError(t, err)
	assert.Equal(t, fpA, fpB)
}

func TestFingerprint_DistinctPatternsDiverge(t *testing.T) {
	base := Sequence(NodePattern{Binding: "a"}, EdgePattern{Direction: Outgoing})

	variants := []Pattern{
		Sequence(NodePattern{Binding: "b"}, EdgePattern{Direction: Outgoing}),
		Sequence(NodePattern{Binding: "a"}, EdgePattern{Direction: Incoming}),
		WithMode(base, Trail),
		WithBinding(base, "route"),
		Anonymous(base),
	}

	fpBase, err := Fingerprint(base)
	require.NoError(t, err)

	for _, v := range variants {
		fp, err := Fingerprint(v)
		require.NoError(t, err)
		assert.NotEqual(t, fpBase, fp)
	}
}

func TestFingerprint_QuantifierVariantsDiverge(t *testing.T) {
	inner := Sequence(EdgePattern{})

	exactly2, err := Fingerprint(Sequence(Quantified{Inner: inner, Quantifier: Exactly(2)}))
	require.NoError(t, err)
	range22, err := Fingerprint(Sequence(Quantified{Inner: inner, Quantifier: Between(2, 2)}))
	require.NoError(t, err)

	// Structurally distinct even though they match the same traversals.
	assert.NotEqual(t, exactly2, range22)
}

func TestFingerprint_EmptyBindingSameAsAbsent(t *testing.T) {
	// The encoding omits absent optionals, so an empty binding cannot be
	// confused with a present-but-empty field downstream.
	a := Sequence(NodePattern{Binding: ""})
	b := Sequence(NodePattern{})

	fpA, err := Fingerprint(a)
	require.NoError(t, err)
	fpB, err := Fingerprint(b)
	require.NoError(t, err)
	assert.Equal(t, fpA, fpB)
}

func TestFingerprint_NullPropertyRejected(t *testing.T) {
	p := Sequence(NodePattern{Properties: ir.Object{"k": ir.Null{}}})

	_, err := Fingerprint(p)
	require.Error(t, err)
}

func TestFingerprint_PropertiesParticipate(t *testing.T) {
	a := Sequence(NodePattern{Properties: ir.Object{"age": ir.Int(30)}})
	b := Sequence(NodePattern{Properties: ir.Object{"age": ir.Int(31)}})

	fpA, err := Fingerprint(a)
	require.NoError(t, err)
	fpB, err := Fingerprint(b)
	require.NoError(t, err)
	assert.NotEqual(t, fpA, fpB)
}

func TestFingerprint_NormalizedFormsAgree(t *testing.T) {
	x := Sequence(NodePattern{Binding: "x"})
	p := Sequence(Alternation{Branches: []Pattern{x, x}})

	n1 := Normalized(p)
	n2 := Normalized(Normalized(p))

	fp1, err := Fingerprint(n1)
	require.NoError(t, err)
	fp2, err := Fingerprint(n2)
	require.NoError(t, err)
	assert.Equal(t, fp1, fp2)
}
