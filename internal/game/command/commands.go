// Package command provides the command registry, parser, and the text
// commands that drive a character session.
package command

// Categories for organizing commands.
const (
	CategoryGear      = "gear"
	CategoryCharacter = "character"
	CategoryLoot      = "loot"
	CategorySystem    = "system"
)

// Handler identifiers mapping commands to session handlers.
const (
	HandlerInventory = "inventory"
	HandlerEquipment = "equipment"
	HandlerEquip     = "equip"
	HandlerUnequip   = "unequip"
	HandlerSocket    = "socket"
	HandlerUnsocket  = "unsocket"
	HandlerDescribe  = "describe"
	HandlerSheet     = "sheet"
	HandlerBonuses   = "bonuses"
	HandlerLevelUp   = "levelup"
	HandlerLoot      = "loot"
	HandlerCraft     = "craft"
	HandlerHelp      = "help"
	HandlerQuit      = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command (gear, character, loot, system).
	Category string
	// Handler selects the session handler.
	Handler string
}

// BuiltinCommands returns all built-in commands.
func BuiltinCommands() []Command {
	return []Command{
		// Gear commands
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "Show backpack contents", Category: CategoryGear, Handler: HandlerInventory},
		{Name: "equipment", Aliases: []string{"gear"}, Help: "Show all equipment slots", Category: CategoryGear, Handler: HandlerEquipment},
		{Name: "equip", Aliases: []string{"eq", "wear"}, Help: "Equip an item from the backpack (equip <uid>)", Category: CategoryGear, Handler: HandlerEquip},
		{Name: "unequip", Aliases: []string{"ueq", "remove"}, Help: "Unequip an item from a slot (unequip <slot>)", Category: CategoryGear, Handler: HandlerUnequip},
		{Name: "socket", Aliases: []string{"sock"}, Help: "Socket a core into an item (socket <item_uid> <core_uid>)", Category: CategoryGear, Handler: HandlerSocket},
		{Name: "unsocket", Aliases: []string{"unsock"}, Help: "Remove a core from an item (unsocket <item_uid> <core_uid>)", Category: CategoryGear, Handler: HandlerUnsocket},
		{Name: "describe", Aliases: []string{"desc", "x"}, Help: "Show an item or core tooltip (describe <uid>)", Category: CategoryGear, Handler: HandlerDescribe},

		// Character commands
		{Name: "sheet", Aliases: []string{"stats", "st"}, Help: "Show the character stat sheet", Category: CategoryCharacter, Handler: HandlerSheet},
		{Name: "bonuses", Aliases: []string{"bon"}, Help: "Show aggregated gear and permanent bonuses", Category: CategoryCharacter, Handler: HandlerBonuses},
		{Name: "levelup", Aliases: []string{"lvl"}, Help: "Advance the character one level", Category: CategoryCharacter, Handler: HandlerLevelUp},

		// Loot commands
		{Name: "loot", Aliases: []string{"roll"}, Help: "Roll a random item into the backpack (loot [rarity])", Category: CategoryLoot, Handler: HandlerLoot},
		{Name: "craft", Aliases: []string{"core"}, Help: "Create a core (craft [<prefix> <suffix>])", Category: CategoryLoot, Handler: HandlerCraft},

		// System commands
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "End the session", Category: CategorySystem, Handler: HandlerQuit},
	}
}
