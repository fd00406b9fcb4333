package cli

import (
	"fmt"
	"strings"
)

// FlagType determines how a flag's textual value is coerced and whether a
// value token is required at all. Bool flags never require one.
type FlagType int

const (
	Bool FlagType = iota
	String
	Int
	Float
)

var flagTypeNames = [...]string{
	Bool:   "BOOL",
	String: "STRING",
	Int:    "INT",
	Float:  "FLOAT",
}

func (t FlagType) String() string {
	if int(t) < len(flagTypeNames) && int(t) >= 0 {
		return flagTypeNames[t]
	}
	return fmt.Sprintf("FlagType(%d)", int(t))
}

// Flag declares one configurable option on a command. Construct it with
// NewFlag and the chained setters, or as a plain literal; either way it is
// treated as immutable once the owning App has been finalized.
type Flag struct {
	Name    string
	Aliases []string
	Usage   string
	Type    FlagType
}

// NewFlag creates a flag descriptor with the given name and value type.
func NewFlag(name string, flagType FlagType) *Flag {
	return &Flag{Name: name, Type: flagType}
}

// Alias registers alternative keys for the flag. A comma-joined descriptor
// ("a, al") is split and trimmed, so both declaration styles normalize to the
// same distinct entries.
func (f *Flag) Alias(aliases ...string) *Flag {
	f.Aliases = append(f.Aliases, splitAliases(aliases)...)
	return f
}

// WithUsage sets the one-line usage text shown in help output.
func (f *Flag) WithUsage(usage string) *Flag {
	f.Usage = usage
	return f
}

// matches reports whether key is the flag's name or one of its aliases.
// Comparison is case-sensitive and exact.
func (f *Flag) matches(key string) bool {
	if key == f.Name {
		return true
	}
	for _, alias := range f.Aliases {
		if key == alias {
			return true
		}
	}
	return false
}

// names returns the flag's name followed by its aliases, in declaration order.
func (f *Flag) names() []string {
	return append([]string{f.Name}, f.Aliases...)
}

func splitAliases(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
