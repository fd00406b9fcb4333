package cli

// Command is one node in the command tree: a name, its aliases, the flags it
// declares, an optional action, and its subcommands. A command exclusively
// owns its flags and children; the tree is built once at startup and treated
// as immutable afterwards.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Usage       string
	Flags       []*Flag
	SubCommands []*Command
	Action      Action
}

// NewCommand creates a command descriptor with the given name.
func NewCommand(name string) *Command {
	return &Command{Name: name}
}

// Alias registers alternative names, normalizing comma-joined declarations
// the same way Flag.Alias does.
func (c *Command) Alias(aliases ...string) *Command {
	c.Aliases = append(c.Aliases, splitAliases(aliases)...)
	return c
}

// Describe sets the description shown in help output.
func (c *Command) Describe(description string) *Command {
	c.Description = description
	return c
}

// WithUsage sets the usage line shown in help output.
func (c *Command) WithUsage(usage string) *Command {
	c.Usage = usage
	return c
}

// WithFlag declares a flag on the command.
func (c *Command) WithFlag(flag *Flag) *Command {
	c.Flags = append(c.Flags, flag)
	return c
}

// WithCommand adds a subcommand.
func (c *Command) WithCommand(sub *Command) *Command {
	c.SubCommands = append(c.SubCommands, sub)
	return c
}

// WithAction sets the handler invoked when this command is the resolution
// result.
func (c *Command) WithAction(action Action) *Command {
	c.Action = action
	return c
}

// matches reports whether token is the command's name or one of its aliases.
func (c *Command) matches(token string) bool {
	if token == c.Name {
		return true
	}
	for _, alias := range c.Aliases {
		if token == alias {
			return true
		}
	}
	return false
}

// findChild returns the first declared child matching token, or nil. First
// declared wins; sibling uniqueness is enforced at finalization, so a double
// match is a configuration defect, not a runtime condition.
func (c *Command) findChild(token string) *Command {
	for _, child := range c.SubCommands {
		if child.matches(token) {
			return child
		}
	}
	return nil
}

// resolution is the outcome of walking the command tree: the deepest matched
// command, the root-to-command path (for flag scoping), and the positionals
// left over once matching stopped.
type resolution struct {
	command *Command
	path    []*Command
	rest    []string
}

// resolve walks the tree greedily: at each step the current positional either
// names a child (descend, advance) or matching stops and everything from the
// cursor on becomes the matched command's arguments. There is no backtracking
// and no failure; an unmatched token sequence degenerates to the deepest
// matched ancestor, ultimately the root itself.
func resolve(root *Command, positionals []string) resolution {
	current := root
	path := []*Command{root}
	cursor := 0

	for cursor < len(positionals) {
		child := current.findChild(positionals[cursor])
		if child == nil {
			break
		}
		current = child
		path = append(path, child)
		cursor++
	}

	return resolution{command: current, path: path, rest: positionals[cursor:]}
}
