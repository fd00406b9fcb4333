// Package color decorates strings with ANSI escape codes. Every function is
// pure string-to-string; whether decoration should happen at all is the
// caller's decision, usually via Enabled.
package color

import "os"

const reset = "\x1b[0m"

func wrap(code, s string) string {
	return code + s + reset
}

// Black returns s with black foreground.
func Black(s string) string { return wrap("\x1b[30m", s) }

// Red returns s with red foreground.
func Red(s string) string { return wrap("\x1b[31m", s) }

// Green returns s with green foreground.
func Green(s string) string { return wrap("\x1b[32m", s) }

// Yellow returns s with yellow foreground.
func Yellow(s string) string { return wrap("\x1b[33m", s) }

// Blue returns s with blue foreground.
func Blue(s string) string { return wrap("\x1b[34m", s) }

// Magenta returns s with magenta foreground.
func Magenta(s string) string { return wrap("\x1b[35m", s) }

// Cyan returns s with cyan foreground.
func Cyan(s string) string { return wrap("\x1b[36m", s) }

// White returns s with white foreground.
func White(s string) string { return wrap("\x1b[37m", s) }

// BgBlack returns s on a black background.
func BgBlack(s string) string { return wrap("\x1b[40m", s) }

// BgRed returns s on a red background.
func BgRed(s string) string { return wrap("\x1b[41m", s) }

// BgGreen returns s on a green background.
func BgGreen(s string) string { return wrap("\x1b[42m", s) }

// BgYellow returns s on a yellow background.
func BgYellow(s string) string { return wrap("\x1b[43m", s) }

// BgBlue returns s on a blue background.
func BgBlue(s string) string { return wrap("\x1b[44m", s) }

// BgMagenta returns s on a magenta background.
func BgMagenta(s string) string { return wrap("\x1b[45m", s) }

// BgCyan returns s on a cyan background.
func BgCyan(s string) string { return wrap("\x1b[46m", s) }

// BgWhite returns s on a white background.
func BgWhite(s string) string { return wrap("\x1b[47m", s) }

// Bold returns s in bold.
func Bold(s string) string { return wrap("\x1b[1m", s) }

// Enabled determines if color output should be used.
// Respects an explicit no-color switch and the NO_COLOR environment variable,
// and requires stdout to be a terminal.
func Enabled(noColor bool) bool {
	if noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
