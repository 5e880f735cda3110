package fd

import (
	"bytes"
	"strings"
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name    string
		program string
		args    []string
		want    string
	}{
		{
			name:    "plain words",
			program: "/usr/bin/fd",
			args:    []string{"-i", "-H", "--exclude=.git"},
			want:    "+ /usr/bin/fd -i -H --exclude=.git\n",
		},
		{
			name:    "globs are quoted",
			program: "fd",
			args:    []string{"-g", "**/*foo*"},
			want:    "+ fd -g '**/*foo*'\n",
		},
		{
			name:    "spaces and quotes",
			program: "fd",
			args:    []string{"it's here", ""},
			want:    `+ fd 'it'"'"'s here' ''` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr := &bytes.Buffer{}
			NewOutput(stderr, false).Command(tt.program, tt.args)
			if got := stderr.String(); got != tt.want {
				t.Errorf("Command() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandColor(t *testing.T) {
	stderr := &bytes.Buffer{}
	NewOutput(stderr, true).Command("fd", []string{"-i"})

	got := stderr.String()
	if !strings.Contains(got, "+ fd -i") {
		t.Errorf("Command() wrote %q, want it to contain the command", got)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Command() wrote %q, want ANSI codes", got)
	}
}

func TestCommandQuoting(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"fd", "fd"},
		{"--max-results", "--max-results"},
		{"+1b", "+1b"},
		{"a/b.c", "a/b.c"},
		{"", "''"},
		{"*", "'*'"},
		{"a b", "'a b'"},
		{"$HOME", "'$HOME'"},
		{"it's", `'it'"'"'s'`},
		{"{}", "'{}'"},
	}

	for _, tt := range tests {
		stderr := &bytes.Buffer{}
		NewOutput(stderr, false).Command("fd", []string{tt.arg})
		if got, want := stderr.String(), "+ fd "+tt.want+"\n"; got != want {
			t.Errorf("Command(%q) wrote %q, want %q", tt.arg, got, want)
		}
	}
}
