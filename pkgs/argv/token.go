package argv

import "fmt"

// TokenKind classifies a single raw command-line token.
type TokenKind int

const (
	// Positional is any token that does not carry a flag prefix.
	Positional TokenKind = iota
	// ShortFlag is a token of the form -name or -name=value.
	ShortFlag
	// LongFlag is a token of the form --name or --name=value.
	LongFlag
)

// Pre-computed kind name lookup for fast debugging
var kindNames = [...]string{
	Positional: "POSITIONAL",
	ShortFlag:  "SHORT_FLAG",
	LongFlag:   "LONG_FLAG",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) && int(k) >= 0 {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Classify reports how a raw token is treated by Extract. Classification is
// purely lexical: it never consults any command's declared flags.
func Classify(token string) TokenKind {
	switch {
	case len(token) >= 2 && token[0] == '-' && token[1] == '-':
		return LongFlag
	case len(token) >= 1 && token[0] == '-':
		return ShortFlag
	default:
		return Positional
	}
}

// Occurrence is one flag mention lifted out of the token stream: the key as it
// was typed (alias or full name, dashes stripped) and the raw value, if any.
// Whether the value is type-correct is decided later, by the typed accessors.
type Occurrence struct {
	Key      string
	Value    string
	HasValue bool
}
