package command

import (
	"fmt"
	"strings"
)

// helpCategoryOrder is the order categories appear in help output.
var helpCategoryOrder = []string{CategoryGear, CategoryCharacter, CategoryLoot, CategorySystem}

// HandleHelp lists every command grouped by category.
func HandleHelp(reg *Registry) string {
	byCat := reg.CommandsByCategory()
	var sb strings.Builder
	for _, cat := range helpCategoryOrder {
		cmds := byCat[cat]
		if len(cmds) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("=== %s ===\n", strings.ToUpper(cat[:1])+cat[1:]))
		for _, cmd := range cmds {
			line := fmt.Sprintf("  %-10s %s", cmd.Name, cmd.Help)
			if len(cmd.Aliases) > 0 {
				line += fmt.Sprintf(" (aliases: %s)", strings.Join(cmd.Aliases, ", "))
			}
			sb.WriteString(line + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
