package command

import "fmt"

// Execute parses line, resolves it against reg and runs the matching handler.
//
// Precondition: reg and s must not be nil.
// Postcondition: Returns the text to show the player and whether the session should end.
func Execute(reg *Registry, s *Session, line string) (string, bool) {
	parsed := Parse(line)
	if parsed.Command == "" {
		return "", false
	}
	cmd, ok := reg.Resolve(parsed.Command)
	if !ok {
		return fmt.Sprintf("Unknown command %q. Type 'help' for a list of commands.", parsed.Command), false
	}

	switch cmd.Handler {
	case HandlerInventory:
		return HandleInventory(s), false
	case HandlerEquipment:
		return HandleEquipment(s), false
	case HandlerEquip:
		return HandleEquip(s, parsed.Args), false
	case HandlerUnequip:
		return HandleUnequip(s, parsed.Args), false
	case HandlerSocket:
		return HandleSocket(s, parsed.Args), false
	case HandlerUnsocket:
		return HandleUnsocket(s, parsed.Args), false
	case HandlerDescribe:
		return HandleDescribe(s, parsed.Args), false
	case HandlerSheet:
		return HandleSheet(s), false
	case HandlerBonuses:
		return HandleBonuses(s), false
	case HandlerLevelUp:
		return HandleLevelUp(s), false
	case HandlerLoot:
		return HandleLoot(s, parsed.Args), false
	case HandlerCraft:
		return HandleCraft(s, parsed.Args), false
	case HandlerHelp:
		return HandleHelp(reg), false
	case HandlerQuit:
		return "Farewell.", true
	default:
		return fmt.Sprintf("Command %q has no handler.", cmd.Name), false
	}
}
