package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdgraph/wdgraph/core"
)

// TestRegister_Idempotent verifies that registering the same label twice
// returns the same handle without changing NodeCount.
func TestRegister_Idempotent(t *testing.T) {
	g := core.New[string]()
	h1 := g.Register("u")
	h2 := g.Register("u")
	assert.Equal(t, h1, h2)
	assert.Equal(t, 1, g.NodeCount())
}

// TestRegister_DenseFirstSeenOrder verifies handles are dense ints
// assigned in first-seen order.
func TestRegister_DenseFirstSeenOrder(t *testing.T) {
	g := core.New[string]()
	assert.Equal(t, 0, g.Register("a"))
	assert.Equal(t, 1, g.Register("b"))
	assert.Equal(t, 2, g.Register("c"))
	// Re-registering never renumbers.
	assert.Equal(t, 1, g.Register("b"))
	assert.Equal(t, []string{"a", "b", "c"}, g.Labels())
}

// TestResolve_Unregistered ensures read-only resolution never
// auto-registers and fails with ErrUnregisteredNode.
func TestResolve_Unregistered(t *testing.T) {
	g := core.New[string]()
	_, err := g.Resolve("ghost")
	assert.ErrorIs(t, err, core.ErrUnregisteredNode)
	assert.Equal(t, 0, g.NodeCount())
}

// TestLabel_RoundTripAndInvalidHandle covers handle→label lookup and
// the out-of-range sentinel.
func TestLabel_RoundTripAndInvalidHandle(t *testing.T) {
	g := core.New[string]()
	h := g.Register("x")
	label, err := g.Label(h)
	require.NoError(t, err)
	assert.Equal(t, "x", label)

	_, err = g.Label(-1)
	assert.ErrorIs(t, err, core.ErrInvalidHandle)
	_, err = g.Label(99)
	assert.ErrorIs(t, err, core.ErrInvalidHandle)
}

// TestSetEdge_GetAndOverwrite verifies SetEdge auto-registers, Edge
// reads the weight back, and a second SetEdge overwrites in place
// without creating a duplicate (OutDegree unchanged).
func TestSetEdge_GetAndOverwrite(t *testing.T) {
	g := core.New[string]()
	g.SetEdge("u", "v", 3)

	w, err := g.Edge("u", "v")
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	g.SetEdge("u", "v", 7)
	w, err = g.Edge("u", "v")
	require.NoError(t, err)
	assert.Equal(t, 7.0, w)

	deg, err := g.OutDegree("u")
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestEdge_Missing covers both failure kinds: unregistered endpoints
// and a registered pair with no connecting edge.
func TestEdge_Missing(t *testing.T) {
	g := core.New[string]()
	g.SetEdge("u", "v", 1)

	_, err := g.Edge("u", "ghost")
	assert.ErrorIs(t, err, core.ErrUnregisteredNode)

	// v→u was never set; only u→v exists.
	_, err = g.Edge("v", "u")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestRemoveEdge verifies removal makes a subsequent Edge fail with
// ErrEdgeNotFound, and that removing twice fails the same way.
func TestRemoveEdge(t *testing.T) {
	g := core.New[string]()
	g.SetEdge("u", "v", 4)

	require.NoError(t, g.RemoveEdge("u", "v"))
	_, err := g.Edge("u", "v")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Equal(t, 0, g.EdgeCount())

	assert.ErrorIs(t, g.RemoveEdge("u", "v"), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.RemoveEdge("ghost", "v"), core.ErrUnregisteredNode)

	// Nodes survive edge removal.
	assert.Equal(t, 2, g.NodeCount())
}

// TestRemoveEdge_LeavesSiblingsIntact ensures removal deletes exactly
// one edge and preserves the others.
func TestRemoveEdge_LeavesSiblingsIntact(t *testing.T) {
	g := core.New[string]()
	g.SetEdge("u", "a", 1)
	g.SetEdge("u", "b", 2)
	g.SetEdge("u", "c", 3)

	require.NoError(t, g.RemoveEdge("u", "b"))

	ns, err := g.OutNeighbors("u")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor[string]{{Label: "a", Weight: 1}, {Label: "c", Weight: 3}}, ns)
}

// TestOutNeighbors_InsertionOrder verifies outgoing enumeration carries
// labels and weights in insertion order.
func TestOutNeighbors_InsertionOrder(t *testing.T) {
	g := core.New[string]()
	g.SetEdge("u", "b", 5)
	g.SetEdge("u", "a", 3)

	ns, err := g.OutNeighbors("u")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor[string]{{Label: "b", Weight: 5}, {Label: "a", Weight: 3}}, ns)

	_, err = g.OutNeighbors("ghost")
	assert.ErrorIs(t, err, core.ErrUnregisteredNode)
}

// TestInNeighbors_ExactSet verifies that after a→v(3) and
// b→v(5), InNeighbors(v) is exactly {(a,3),(b,5)} in any order.
func TestInNeighbors_ExactSet(t *testing.T) {
	g := core.New[string]()
	g.SetEdge("a", "v", 3)
	g.SetEdge("b", "v", 5)
	g.SetEdge("a", "w", 9) // unrelated edge must not appear

	in, err := g.InNeighbors("v")
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]core.Neighbor[string]{{Label: "a", Weight: 3}, {Label: "b", Weight: 5}},
		in,
	)
}

// TestInNeighbors_Empty verifies a node with no incoming edges yields
// an empty result, not an error.
func TestInNeighbors_Empty(t *testing.T) {
	g := core.New[string]()
	g.SetEdge("root", "leaf", 1)

	in, err := g.InNeighbors("root")
	require.NoError(t, err)
	assert.Empty(t, in)
}

// TestNodesWithoutIncoming verifies that edges only s→A and
// s→B leave {s} as the sole indegree-0 node.
func TestNodesWithoutIncoming(t *testing.T) {
	g := core.New[string]()
	g.SetEdge("s", "A", 2)
	g.SetEdge("s", "B", 5)

	assert.Equal(t, []string{"s"}, g.NodesWithoutIncoming())
}

// TestHasEdge checks membership for present, absent, and unregistered
// pairs.
func TestHasEdge(t *testing.T) {
	g := core.New[string]()
	g.SetEdge("u", "v", 1)

	assert.True(t, g.HasEdge("u", "v"))
	assert.False(t, g.HasEdge("v", "u"))
	assert.False(t, g.HasEdge("u", "ghost"))
	assert.False(t, g.HasEdge("ghost", "v"))
}

// TestAllEdges verifies the flattened handle-level enumeration.
func TestAllEdges(t *testing.T) {
	g := core.New[string]()
	assert.Empty(t, g.AllEdges())

	g.SetEdge("a", "b", 1) // handles: a=0, b=1
	g.SetEdge("b", "c", 2) // c=2
	g.SetEdge("a", "c", 3)

	assert.ElementsMatch(t,
		[]core.Arc{
			{From: 0, To: 1, Weight: 1},
			{From: 1, To: 2, Weight: 2},
			{From: 0, To: 2, Weight: 3},
		},
		g.AllEdges(),
	)
}

// TestClone_Independence verifies mutating the copy's edges never
// changes Edge results on the original, and vice versa.
func TestClone_Independence(t *testing.T) {
	g := core.New[string]()
	g.SetEdge("u", "v", 3)
	g.SetEdge("v", "w", 4)

	cp := g.Clone()
	require.NoError(t, cp.RemoveEdge("u", "v"))
	cp.SetEdge("v", "w", 99)
	cp.SetEdge("x", "y", 1) // new nodes on the copy only

	// Original untouched.
	w, err := g.Edge("u", "v")
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)
	w, err = g.Edge("v", "w")
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)
	assert.Equal(t, 3, g.NodeCount())

	// Copy reflects its own mutations.
	_, err = cp.Edge("u", "v")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Equal(t, 5, cp.NodeCount())

	// Mutating the original does not leak into the copy either.
	g.SetEdge("u", "v", 42)
	_, err = cp.Edge("u", "v")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestClone_PreservesHandles ensures the label↔handle bijection carries
// over exactly, so handles stay meaningful across the copy.
func TestClone_PreservesHandles(t *testing.T) {
	g := core.New[string]()
	g.SetEdge("a", "b", 1)
	g.SetEdge("b", "c", 2)

	cp := g.Clone()
	for _, label := range g.Labels() {
		want, err := g.Resolve(label)
		require.NoError(t, err)
		got, err := cp.Resolve(label)
		require.NoError(t, err)
		assert.Equal(t, want, got, "handle for %q", label)
	}
}

// TestNormalizeOutgoing rescales each nonempty row to sum to 1.
func TestNormalizeOutgoing(t *testing.T) {
	g := core.New[string]()
	g.SetEdge("u", "a", 1)
	g.SetEdge("u", "b", 3)
	g.SetEdge("b", "a", 2)

	require.NoError(t, g.NormalizeOutgoing())

	wa, err := g.Edge("u", "a")
	require.NoError(t, err)
	wb, err := g.Edge("u", "b")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, wa, 1e-9)
	assert.InDelta(t, 0.75, wb, 1e-9)

	wba, err := g.Edge("b", "a")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, wba, 1e-9)
}

// TestNormalizeOutgoing_ZeroSum verifies the guarded failure: a node
// whose outgoing weights sum to zero fails with ErrZeroWeightSum and
// leaves every weight in the graph unmodified.
func TestNormalizeOutgoing_ZeroSum(t *testing.T) {
	g := core.New[string]()
	g.SetEdge("u", "a", 2)
	g.SetEdge("z", "a", 1)
	g.SetEdge("z", "b", -1) // z's row sums to zero

	err := g.NormalizeOutgoing()
	assert.ErrorIs(t, err, core.ErrZeroWeightSum)
	assert.Contains(t, err.Error(), "z")

	// No partial rewrite: u's row kept its original weight.
	w, gerr := g.Edge("u", "a")
	require.NoError(t, gerr)
	assert.Equal(t, 2.0, w)
}

// TestIntLabels exercises a non-string comparable label type.
func TestIntLabels(t *testing.T) {
	g := core.New[int]()
	g.SetEdge(10, 20, 1.5)

	w, err := g.Edge(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 1.5, w)
	assert.Equal(t, []int{10}, g.NodesWithoutIncoming())
}
