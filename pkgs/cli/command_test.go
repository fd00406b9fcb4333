package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testTree() *Command {
	return NewCommand("root").
		WithCommand(NewCommand("add").Alias("a").
			WithCommand(NewCommand("sub"))).
		WithCommand(NewCommand("list").Alias("ls, l"))
}

// assertResolve checks the matched command name and remaining args
func assertResolve(t *testing.T, root *Command, positionals []string, wantName string, wantRest []string) {
	t.Helper()

	res := resolve(root, positionals)

	if res.command.Name != wantName {
		t.Errorf("resolved command = %q, want %q", res.command.Name, wantName)
	}
	if diff := cmp.Diff(wantRest, res.rest); diff != "" {
		t.Errorf("remaining args mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		positionals []string
		wantName    string
		wantRest    []string
	}{
		{
			name:        "no positionals resolves to root",
			positionals: nil,
			wantName:    "root",
		},
		{
			name:        "single level match",
			positionals: []string{"add", "1", "2"},
			wantName:    "add",
			wantRest:    []string{"1", "2"},
		},
		{
			name:        "prefix greedy descent",
			positionals: []string{"add", "sub", "1", "2"},
			wantName:    "sub",
			wantRest:    []string{"1", "2"},
		},
		{
			name:        "unmatched token degrades to root",
			positionals: []string{"mul", "1", "2"},
			wantName:    "root",
			wantRest:    []string{"mul", "1", "2"},
		},
		{
			name:        "alias matches like the name",
			positionals: []string{"a", "sub", "9"},
			wantName:    "sub",
			wantRest:    []string{"9"},
		},
		{
			name:        "comma joined alias declaration is normalized",
			positionals: []string{"ls"},
			wantName:    "list",
		},
		{
			name:        "descent stops at first unmatched token",
			positionals: []string{"add", "mul", "sub"},
			wantName:    "add",
			wantRest:    []string{"mul", "sub"},
		},
		{
			name:        "matching is case sensitive",
			positionals: []string{"ADD"},
			wantName:    "root",
			wantRest:    []string{"ADD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertResolve(t, testTree(), tt.positionals, tt.wantName, tt.wantRest)
		})
	}
}

func TestResolvePathTracksAncestors(t *testing.T) {
	root := testTree()

	res := resolve(root, []string{"add", "sub", "1"})

	var names []string
	for _, command := range res.path {
		names = append(names, command.Name)
	}
	if diff := cmp.Diff([]string{"root", "add", "sub"}, names); diff != "" {
		t.Errorf("resolution path mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveFirstDeclaredWins(t *testing.T) {
	// Two siblings answering to the same token is a configuration defect the
	// validator rejects, but the resolver itself stays deterministic.
	root := NewCommand("root").
		WithCommand(NewCommand("dup").Describe("first")).
		WithCommand(NewCommand("dup").Describe("second"))

	res := resolve(root, []string{"dup"})

	if res.command.Description != "first" {
		t.Errorf("resolved %q, want the first declared sibling", res.command.Description)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	root := testTree()
	positionals := []string{"add", "sub", "x", "y"}

	first := resolve(root, positionals)
	for i := 0; i < 3; i++ {
		res := resolve(root, positionals)
		if res.command != first.command {
			t.Fatal("resolution changed across runs")
		}
		if diff := cmp.Diff(first.rest, res.rest); diff != "" {
			t.Fatalf("remaining args changed across runs (-want +got):\n%s", diff)
		}
	}
}
