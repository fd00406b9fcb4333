// Package argv splits a raw command-line token list into positional arguments
// and flag occurrences. It is the first stage of dispatch and knows nothing
// about which flags a command declares: every token starting with '-' becomes
// an Occurrence, everything else stays a positional in its original order.
package argv

import "strings"

// Extract scans tokens once, left to right, and partitions every token into
// either positionals or flags. A flag token containing '=' is split on the
// first '=' into key and value; otherwise the next token is consumed as the
// value when it exists and does not itself start with '-'. The lookahead is
// type-agnostic: for Bool-typed flags the consumed value is simply ignored by
// the accessor stage.
//
// Edge cases: "--key=" yields an empty but present value; a trailing flag
// token with no '=' and no following token yields an occurrence with no value.
func Extract(tokens []string) (positionals []string, flags []Occurrence) {
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		var key string
		switch Classify(token) {
		case Positional:
			positionals = append(positionals, token)
			continue
		case LongFlag:
			key = token[2:]
		case ShortFlag:
			key = token[1:]
		}

		if eq := strings.IndexByte(key, '='); eq >= 0 {
			flags = append(flags, Occurrence{Key: key[:eq], Value: key[eq+1:], HasValue: true})
			continue
		}

		if i+1 < len(tokens) && Classify(tokens[i+1]) == Positional {
			flags = append(flags, Occurrence{Key: key, Value: tokens[i+1], HasValue: true})
			i++
			continue
		}

		flags = append(flags, Occurrence{Key: key})
	}
	return positionals, flags
}
