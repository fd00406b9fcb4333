package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"

	"github.com/aledsdavies/tern/pkgs/color"
)

// Width the wrapped right-hand help column may extend to, including the
// left-hand label column.
const helpWidth = 78

// renderHelp writes the human-readable listing for the resolved command:
// name, description, usage, subcommands, and flags with their types. The
// renderer is a formatting collaborator only; it never influences resolution
// or parsing.
func renderHelp(w io.Writer, a *App, res resolution, useColor bool) {
	heading := func(s string) string { return s }
	if useColor {
		heading = color.Yellow
	}

	command := res.command
	atRoot := len(res.path) == 1

	name := commandPath(a, res.path)
	fmt.Fprintf(w, "%s\n\t%s\n\n", heading("Name:"), name)

	if atRoot && a.Author != "" {
		fmt.Fprintf(w, "%s\n\t%s\n\n", heading("Author:"), a.Author)
	}
	if command.Description != "" {
		fmt.Fprintf(w, "%s\n\t%s\n\n", heading("Description:"), wrapIndented(command.Description))
	}
	if command.Usage != "" {
		fmt.Fprintf(w, "%s\n\t%s\n\n", heading("Usage:"), command.Usage)
	}
	if atRoot && a.Version != "" {
		fmt.Fprintf(w, "%s\n\t%s\n\n", heading("Version:"), a.Version)
	}

	if len(command.SubCommands) > 0 {
		fmt.Fprintf(w, "%s\n", heading("Commands:"))
		rows := make([][2]string, 0, len(command.SubCommands))
		for _, child := range command.SubCommands {
			label := strings.Join(append([]string{child.Name}, child.Aliases...), ", ")
			text := child.Description
			if text == "" {
				text = child.Usage
			}
			rows = append(rows, [2]string{label, text})
		}
		renderRows(w, rows)
		fmt.Fprintln(w)
	}

	if len(command.Flags) > 0 {
		fmt.Fprintf(w, "%s\n", heading("Options:"))
		rows := make([][2]string, 0, len(command.Flags))
		for _, flag := range command.Flags {
			rows = append(rows, [2]string{flagLabel(flag), flag.Usage})
		}
		renderRows(w, rows)
		fmt.Fprintln(w)
	}

	if suggestion := suggestCommand(suggestionTarget(res), command.SubCommands); suggestion != "" {
		fmt.Fprintf(w, "Did you mean %q?\n", suggestion)
	}
}

// commandPath is the heading for the resolved command: the display name at
// the root, the space-joined path of command names below it.
func commandPath(a *App, path []*Command) string {
	if len(path) == 1 {
		if a.DisplayName != "" {
			return a.DisplayName
		}
		return a.Name
	}
	names := make([]string, len(path))
	names[0] = a.Name
	for i, command := range path[1:] {
		names[i+1] = command.Name
	}
	return strings.Join(names, " ")
}

// flagLabel renders a flag with its keys and declared type, single-dash for
// one-character keys and double-dash otherwise: "--age, -a INT".
func flagLabel(flag *Flag) string {
	keys := make([]string, 0, 1+len(flag.Aliases))
	for _, name := range flag.names() {
		if len(name) == 1 {
			keys = append(keys, "-"+name)
		} else {
			keys = append(keys, "--"+name)
		}
	}
	return strings.Join(keys, ", ") + " " + flag.Type.String()
}

// renderRows aligns two-column rows on the widest label, wrapping the text
// column. Widths are measured in display cells, not bytes.
func renderRows(w io.Writer, rows [][2]string) {
	width := 0
	for _, row := range rows {
		if n := runewidth.StringWidth(row[0]); n > width {
			width = n
		}
	}

	textWidth := helpWidth - width
	if textWidth < 20 {
		textWidth = 20
	}

	for _, row := range rows {
		if row[1] == "" {
			fmt.Fprintf(w, "\t%s\n", row[0])
			continue
		}
		pad := strings.Repeat(" ", width-runewidth.StringWidth(row[0]))
		lines := strings.Split(wordwrap.WrapString(row[1], uint(textWidth)), "\n")
		fmt.Fprintf(w, "\t%s%s    %s\n", row[0], pad, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(w, "\t%s    %s\n", strings.Repeat(" ", width), line)
		}
	}
}

func wrapIndented(text string) string {
	wrapped := wordwrap.WrapString(text, helpWidth)
	return strings.ReplaceAll(wrapped, "\n", "\n\t")
}

// suggestionTarget picks the token worth suggesting for: the first positional
// the resolver could not match.
func suggestionTarget(res resolution) string {
	if len(res.rest) == 0 {
		return ""
	}
	return res.rest[0]
}

// suggestCommand finds the closest child name or alias to target using fuzzy
// ranking, or "" when nothing is close enough.
func suggestCommand(target string, children []*Command) string {
	if target == "" || len(children) == 0 {
		return ""
	}

	var candidates []string
	for _, child := range children {
		candidates = append(candidates, child.Name)
		candidates = append(candidates, child.Aliases...)
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		// Best match has the lowest distance
		best := ranks[0]
		for _, rank := range ranks[1:] {
			if rank.Distance < best.Distance {
				best = rank
			}
		}
		return best.Target
	}

	return ""
}
