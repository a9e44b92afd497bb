package inventory_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gearforge/internal/game/inventory"
	"github.com/cory-johannsen/gearforge/internal/game/ruleset"
)

func TestItem_Socket_AppendsInOrder(t *testing.T) {
	it := jerkin()
	a := newCore("c1", "brutal", "ember", ruleset.StatMap{"str": 1})
	b := newCore("c2", "nimble", "ember", ruleset.StatMap{"dex": 1})
	require.NoError(t, it.Socket(a))
	require.NoError(t, it.Socket(b))
	assert.Equal(t, []*inventory.Core{a, b}, it.Cores)
}

func TestItem_Socket_RejectsDuplicateKind(t *testing.T) {
	it := jerkin()
	require.NoError(t, it.Socket(newCore("c1", "brutal", "ember", nil)))

	err := it.Socket(newCore("c2", "brutal", "ember", nil))
	require.ErrorIs(t, err, inventory.ErrDuplicateCoreKind)
	assert.Len(t, it.Cores, 1)
}

func TestItem_Socket_SamePrefixDifferentSuffixAllowed(t *testing.T) {
	it := jerkin()
	require.NoError(t, it.Socket(newCore("c1", "brutal", "ember", nil)))
	require.NoError(t, it.Socket(newCore("c2", "brutal", "bastion", nil)))
	assert.Len(t, it.Cores, 2)
}

func TestItem_Socket_RejectsWhenFull(t *testing.T) {
	it := jerkin()
	for i := 0; i < inventory.MaxSockets; i++ {
		require.NoError(t, it.Socket(newCore(fmt.Sprintf("c%d", i), fmt.Sprintf("p%d", i), "s", nil)))
	}
	err := it.Socket(newCore("extra", "other", "s", nil))
	require.ErrorIs(t, err, inventory.ErrSocketsFull)
	assert.Len(t, it.Cores, inventory.MaxSockets)
}

func TestItem_Socket_NilCore(t *testing.T) {
	assert.Error(t, jerkin().Socket(nil))
}

func TestItem_Unsocket_PreservesOrder(t *testing.T) {
	it := jerkin()
	a := newCore("c1", "a", "s", nil)
	b := newCore("c2", "b", "s", nil)
	c := newCore("c3", "c", "s", nil)
	for _, core := range []*inventory.Core{a, b, c} {
		require.NoError(t, it.Socket(core))
	}

	got, err := it.Unsocket("c2")
	require.NoError(t, err)
	assert.Same(t, b, got)
	assert.Equal(t, []*inventory.Core{a, c}, it.Cores)
}

func TestItem_Unsocket_NotFound(t *testing.T) {
	it := jerkin()
	require.NoError(t, it.Socket(newCore("c1", "a", "s", nil)))
	_, err := it.Unsocket("missing")
	require.ErrorIs(t, err, inventory.ErrCoreNotFound)
	assert.Len(t, it.Cores, 1)
}

// TestProperty_Socket_RejectionLeavesItemUnchanged verifies that a refused
// socket attempt never alters the item's cores.
func TestProperty_Socket_RejectionLeavesItemUnchanged(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		it := jerkin()
		kinds := rapid.IntRange(1, 4).Draw(rt, "kinds")
		attempts := rapid.IntRange(0, 20).Draw(rt, "attempts")
		for i := 0; i < attempts; i++ {
			k := rapid.IntRange(0, kinds-1).Draw(rt, fmt.Sprintf("kind%d", i))
			c := newCore(fmt.Sprintf("c%d", i), fmt.Sprintf("p%d", k), "s", ruleset.StatMap{"str": 1})
			before := append([]*inventory.Core(nil), it.Cores...)
			if err := it.Socket(c); err != nil {
				if !assert.ObjectsAreEqual(before, it.Cores) {
					rt.Fatalf("cores changed after rejected socket: %v", err)
				}
			}
			if len(it.Cores) > inventory.MaxSockets {
				rt.Fatalf("socket count %d exceeds max", len(it.Cores))
			}
		}
		if len(it.Cores) > kinds {
			rt.Fatalf("held %d cores but only %d kinds exist", len(it.Cores), kinds)
		}
	})
}
