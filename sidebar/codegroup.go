package sidebar

import (
	"fmt"
	"strings"
)

// Command is one tab of a code group.
type Command struct {
	Tool    string
	Command string
}

// installVerbs lists the package managers offered on hook pages, in tab order.
var installVerbs = []Command{
	{Tool: "npm", Command: "npm install"},
	{Tool: "pnpm", Command: "pnpm add"},
	{Tool: "yarn", Command: "yarn add"},
	{Tool: "bun", Command: "bun add"},
}

// InstallCommands returns one install command per package manager for packages.
// It returns nil when there is nothing to install.
func InstallCommands(packages []string) []Command {
	if len(packages) == 0 {
		return nil
	}

	args := strings.Join(packages, " ")
	commands := make([]Command, 0, len(installVerbs))
	for _, verb := range installVerbs {
		commands = append(commands, Command{Tool: verb.Tool, Command: verb.Command + " " + args})
	}
	return commands
}

// CodeGroup renders commands as a VitePress code-group block, or "" when empty.
func CodeGroup(commands []Command) string {
	if len(commands) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(commands))
	for _, c := range commands {
		blocks = append(blocks, fmt.Sprintf("```sh [%s]\n%s\n```", c.Tool, c.Command))
	}

	return "::: code-group\n\n" + strings.Join(blocks, "\n\n") + "\n\n:::"
}
