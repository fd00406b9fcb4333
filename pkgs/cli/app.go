// Package cli resolves command-line invocations against a user-defined tree
// of commands: it classifies tokens, walks the tree to the most specific
// matching command, and hands the matched action a read-only Context with
// typed, validated flag access.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aledsdavies/tern/pkgs/argv"
	"github.com/aledsdavies/tern/pkgs/color"
)

// Action is the handler invoked for a matched command. The core never
// constrains what it does with the Context; its error is propagated out of
// Run unchanged.
type Action func(*Context) error

// Default help and version trigger keys. They apply only when the matched
// command does not itself declare the name; declared flags always win.
var (
	helpKeys    = []string{"help", "h"}
	versionKeys = []string{"version", "v"}
)

// App is the root of the command tree, carrying the program-level metadata
// plus the top-level flags, commands, and default action. Like Command it is
// built once, validated on first use, and immutable from then on; Run keeps
// no state between calls.
type App struct {
	Name        string
	DisplayName string
	Author      string
	Description string
	Usage       string
	Version     string
	Flags       []*Flag
	Commands    []*Command
	Action      Action

	// HelpWriter receives rendered help and version text. Defaults to
	// os.Stdout; color is only applied on the default.
	HelpWriter io.Writer
}

// NewApp creates an application descriptor with the given program name.
func NewApp(name string) *App {
	return &App{Name: name}
}

// WithDisplayName sets the name shown in help headings instead of Name.
func (a *App) WithDisplayName(displayName string) *App {
	a.DisplayName = displayName
	return a
}

// WithAuthor sets the author line shown in help output.
func (a *App) WithAuthor(author string) *App {
	a.Author = author
	return a
}

// Describe sets the description shown in help output.
func (a *App) Describe(description string) *App {
	a.Description = description
	return a
}

// WithUsage sets the top-level usage line.
func (a *App) WithUsage(usage string) *App {
	a.Usage = usage
	return a
}

// WithVersion sets the version reported by the version trigger and help.
func (a *App) WithVersion(version string) *App {
	a.Version = version
	return a
}

// WithFlag declares a top-level flag, visible to every command in the tree
// unless a descendant redeclares the same name.
func (a *App) WithFlag(flag *Flag) *App {
	a.Flags = append(a.Flags, flag)
	return a
}

// WithCommand adds a top-level command.
func (a *App) WithCommand(command *Command) *App {
	a.Commands = append(a.Commands, command)
	return a
}

// WithAction sets the default action, invoked when no command matches or the
// matched command has no action of its own.
func (a *App) WithAction(action Action) *App {
	a.Action = action
	return a
}

// root presents the App as the root node of the command tree for resolution.
func (a *App) root() *Command {
	return &Command{
		Name:        a.Name,
		Description: a.Description,
		Usage:       a.Usage,
		Flags:       a.Flags,
		SubCommands: a.Commands,
		Action:      a.Action,
	}
}

// Run dispatches one invocation: args is the full process argument vector
// and args[0], the program's own name, is discarded before tokenization.
// Resolution itself cannot fail; Run returns a ConfigError when the
// descriptor tree is invalid, otherwise whatever the invoked action returns.
// An invocation that matches no command and finds no default action is a
// no-op, not an error.
func (a *App) Run(args []string) error {
	if err := a.validate(); err != nil {
		return err
	}

	var tokens []string
	if len(args) > 1 {
		tokens = args[1:]
	}
	positionals, occurrences := argv.Extract(tokens)

	root := a.root()
	res := resolve(root, positionals)

	if res.command == root && a.triggered(res, occurrences, versionKeys, false) {
		fmt.Fprintf(a.writer(), "%s version %s\n", a.Name, a.Version)
		return nil
	}
	if a.triggered(res, occurrences, helpKeys, true) {
		a.renderHelp(helpTopic(res))
		return nil
	}

	help := func() { a.renderHelp(res) }
	ctx := newContext(res.rest, occurrences, res.path, help)

	action := res.command.Action
	if action == nil {
		action = a.Action
	}
	if action == nil {
		return nil
	}
	return action(ctx)
}

// triggered checks the reserved help/version convention: a matching leading
// positional (help only) or a flag occurrence whose key no flag in scope
// declares.
func (a *App) triggered(res resolution, occurrences []argv.Occurrence, keys []string, positional bool) bool {
	if positional && len(res.rest) > 0 && res.rest[0] == keys[0] {
		return true
	}
	for _, occ := range occurrences {
		for _, key := range keys {
			if occ.Key == key && !declaredInScope(res.path, key) {
				return true
			}
		}
	}
	return false
}

// helpTopic picks the command whose help gets rendered. "help add sub"
// descends past the trigger word so the named subcommand becomes the topic;
// anything it cannot match stays in rest and feeds the suggestion line.
func helpTopic(res resolution) resolution {
	if len(res.rest) == 0 || res.rest[0] != helpKeys[0] {
		return res
	}
	deeper := resolve(res.command, res.rest[1:])
	path := append(res.path[:len(res.path)-1:len(res.path)-1], deeper.path...)
	return resolution{command: deeper.command, path: path, rest: deeper.rest}
}

// declaredInScope reports whether any command on the resolution path declares
// key as a flag name or alias.
func declaredInScope(path []*Command, key string) bool {
	for _, command := range path {
		for _, flag := range command.Flags {
			if flag.matches(key) {
				return true
			}
		}
	}
	return false
}

func (a *App) writer() io.Writer {
	if a.HelpWriter != nil {
		return a.HelpWriter
	}
	return os.Stdout
}

func (a *App) renderHelp(res resolution) {
	// Only decorate when writing to a real terminal; injected writers
	// (tests, files) get plain text.
	useColor := a.HelpWriter == nil && color.Enabled(false)
	renderHelp(a.writer(), a, res, useColor)
}

// validate rejects configuration defects before any parsing happens:
// duplicate names or aliases among siblings, duplicate flag names or aliases
// at one command level, and empty names. Descriptors are treated as immutable
// afterwards, so a tree that validates once stays valid.
func (a *App) validate() error {
	if a.Name == "" {
		return newConfigError(ErrConfigEmptyName, "application name must not be empty")
	}
	return validateCommand(a.Name, a.root())
}

func validateCommand(path string, command *Command) error {
	if err := validateFlags(path, command.Flags); err != nil {
		return err
	}

	seen := make(map[string]string) // name/alias -> owning command name
	for _, child := range command.SubCommands {
		if child.Name == "" {
			return newConfigError(ErrConfigEmptyName, "command under %q has an empty name", path)
		}
		for _, name := range append([]string{child.Name}, child.Aliases...) {
			if owner, exists := seen[name]; exists {
				return newConfigError(ErrConfigDuplicateCommand,
					"%q declared by command %q under %q is already taken by %q", name, child.Name, path, owner)
			}
			seen[name] = child.Name
		}
		if err := validateCommand(path+" "+child.Name, child); err != nil {
			return err
		}
	}
	return nil
}

func validateFlags(path string, flags []*Flag) error {
	seen := make(map[string]string) // name/alias -> owning flag name
	for _, flag := range flags {
		if flag.Name == "" {
			return newConfigError(ErrConfigEmptyName, "flag on %q has an empty name", path)
		}
		for _, name := range flag.names() {
			if owner, exists := seen[name]; exists {
				return newConfigError(ErrConfigDuplicateFlag,
					"flag key %q on %q is already taken by flag %q", name, path, owner)
			}
			seen[name] = flag.Name
		}
	}
	return nil
}
