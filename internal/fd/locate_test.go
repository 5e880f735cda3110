package fd

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func stubLookPath(t *testing.T, found map[string]string) {
	t.Helper()
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if path, ok := found[name]; ok {
			return path, nil
		}
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	t.Cleanup(func() { lookPath = orig })
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name    string
		program string
		found   map[string]string
		want    string
		wantErr string
	}{
		{
			name:  "fd on path",
			found: map[string]string{"fd": "/usr/bin/fd", "fdfind": "/usr/bin/fdfind"},
			want:  "/usr/bin/fd",
		},
		{
			name:  "fdfind fallback",
			found: map[string]string{"fdfind": "/usr/bin/fdfind"},
			want:  "/usr/bin/fdfind",
		},
		{
			name:    "nothing installed",
			found:   map[string]string{},
			wantErr: "set F_FD",
		},
		{
			name:    "configured name",
			program: "fd-nightly",
			found:   map[string]string{"fd": "/usr/bin/fd", "fd-nightly": "/opt/fd-nightly"},
			want:    "/opt/fd-nightly",
		},
		{
			name:    "configured program is not replaced by a default",
			program: "/nope/fd",
			found:   map[string]string{"fd": "/usr/bin/fd"},
			wantErr: `F_FD="/nope/fd" is not an executable`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubLookPath(t, tt.found)
			got, err := Config{Program: tt.program}.Locate()

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Locate() expected error, got %q", got)
				}
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("Locate() error = %v, want ErrNotFound", err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Locate() error = %q, want it to contain %q", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Locate() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Locate() = %q, want %q", got, tt.want)
			}
		})
	}
}
