package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_ResolvesNamesAndAliases(t *testing.T) {
	r := DefaultRegistry()
	for _, cmd := range BuiltinCommands() {
		got, ok := r.Resolve(cmd.Name)
		require.True(t, ok, "command %q", cmd.Name)
		assert.Equal(t, cmd.Handler, got.Handler)
		for _, alias := range cmd.Aliases {
			got, ok := r.Resolve(alias)
			require.True(t, ok, "alias %q", alias)
			assert.Equal(t, cmd.Name, got.Name)
		}
	}
}

func TestRegistry_Resolve_Unknown(t *testing.T) {
	_, ok := DefaultRegistry().Resolve("dance")
	assert.False(t, ok)
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	_, err := NewRegistry([]Command{{Name: "equip"}, {Name: "equip"}})
	assert.Error(t, err)
}

func TestNewRegistry_AliasCollidesWithName(t *testing.T) {
	_, err := NewRegistry([]Command{{Name: "equip"}, {Name: "wear", Aliases: []string{"equip"}}})
	assert.Error(t, err)
}

func TestNewRegistry_DuplicateAlias(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "equip", Aliases: []string{"e"}},
		{Name: "equipment", Aliases: []string{"e"}},
	})
	assert.Error(t, err)
}

func TestRegistry_CommandsSortedByName(t *testing.T) {
	cmds := DefaultRegistry().Commands()
	require.NotEmpty(t, cmds)
	for i := 1; i < len(cmds); i++ {
		assert.Less(t, cmds[i-1].Name, cmds[i].Name)
	}
}

func TestRegistry_EveryCategoryInHelpOrder(t *testing.T) {
	for cat := range DefaultRegistry().CommandsByCategory() {
		assert.Contains(t, helpCategoryOrder, cat)
	}
}
