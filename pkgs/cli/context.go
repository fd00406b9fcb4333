package cli

import (
	"strconv"

	"github.com/aledsdavies/tern/pkgs/argv"
)

// Context is the read-only bundle handed to an action: the positional
// arguments left after resolution, plus typed access to every flag declared
// on the matched command or one of its ancestors. It is built once per
// dispatch and discarded when the action returns.
//
// Accessor errors form a closed set (see the FLAG_* codes in this package);
// distinguishing undeclared from declared-but-absent from unparseable is
// deliberate, so no accessor substitutes a default value on failure.
type Context struct {
	Args []string

	scope       []*Flag
	occurrences []argv.Occurrence
	help        func()
}

// newContext assembles the flag scope from the resolution path, deepest
// command first so that a descendant redeclaring a name shadows the
// ancestor's descriptor.
func newContext(args []string, occurrences []argv.Occurrence, path []*Command, help func()) *Context {
	var scope []*Flag
	for i := len(path) - 1; i >= 0; i-- {
		scope = append(scope, path[i].Flags...)
	}
	return &Context{Args: args, scope: scope, occurrences: occurrences, help: help}
}

// findFlag resolves name (or alias) to the nearest declared descriptor, or
// nil when the name is not declared anywhere in scope.
func (c *Context) findFlag(name string) *Flag {
	for _, flag := range c.scope {
		if flag.matches(name) {
			return flag
		}
	}
	return nil
}

// findOccurrence returns the last captured occurrence keyed by any of the
// flag's names. Last one wins; earlier occurrences are not accumulated.
func (c *Context) findOccurrence(flag *Flag) (argv.Occurrence, bool) {
	var found argv.Occurrence
	var ok bool
	for _, occ := range c.occurrences {
		if flag.matches(occ.Key) {
			found = occ
			ok = true
		}
	}
	return found, ok
}

// rawValue walks the accessor ladder shared by all value-carrying types:
// undeclared name, declared-type mismatch, no occurrence, occurrence without
// a value token. Parsing the value is left to the typed caller.
func (c *Context) rawValue(name string, want FlagType) (string, error) {
	flag := c.findFlag(name)
	if flag == nil {
		return "", newFlagError(ErrFlagUndefined, name)
	}
	if flag.Type != want {
		return "", newFlagError(ErrFlagType, name)
	}
	occ, ok := c.findOccurrence(flag)
	if !ok {
		return "", newFlagError(ErrFlagNotFound, name)
	}
	if !occ.HasValue {
		return "", newFlagError(ErrFlagArgument, name)
	}
	return occ.Value, nil
}

// BoolFlag reports whether the named Bool flag was present on the command
// line. Boolean flags are switches, not value carriers: presence is true,
// absence is false, and unlike the other accessors this one never returns an
// error. Any lookahead value the extractor consumed is ignored here.
func (c *Context) BoolFlag(name string) bool {
	flag := c.findFlag(name)
	if flag == nil || flag.Type != Bool {
		return false
	}
	_, ok := c.findOccurrence(flag)
	return ok
}

// StringFlag returns the value of the named String flag.
func (c *Context) StringFlag(name string) (string, error) {
	return c.rawValue(name, String)
}

// IntFlag returns the parsed value of the named Int flag.
func (c *Context) IntFlag(name string) (int, error) {
	raw, err := c.rawValue(name, Int)
	if err != nil {
		return 0, err
	}
	value, perr := strconv.ParseInt(raw, 10, strconv.IntSize)
	if perr != nil {
		return 0, newValueTypeError(name, perr)
	}
	return int(value), nil
}

// FloatFlag returns the parsed value of the named Float flag.
func (c *Context) FloatFlag(name string) (float64, error) {
	raw, err := c.rawValue(name, Float)
	if err != nil {
		return 0, err
	}
	value, perr := strconv.ParseFloat(raw, 64)
	if perr != nil {
		return 0, newValueTypeError(name, perr)
	}
	return value, nil
}

// Help renders the matched command's help text from inside an action.
func (c *Context) Help() {
	if c.help != nil {
		c.help()
	}
}
