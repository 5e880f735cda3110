package fd

import (
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{name: "empty", env: map[string]string{}, want: Config{}},
		{
			name: "program",
			env:  map[string]string{"F_FD": "/opt/bin/fd"},
			want: Config{Program: "/opt/bin/fd"},
		},
		{
			name: "program whitespace trimmed",
			env:  map[string]string{"F_FD": "  fdfind "},
			want: Config{Program: "fdfind"},
		},
		{name: "debug 1", env: map[string]string{"F_DEBUG": "1"}, want: Config{Debug: true}},
		{name: "debug yes", env: map[string]string{"F_DEBUG": "yes"}, want: Config{Debug: true}},
		{name: "debug 0", env: map[string]string{"F_DEBUG": "0"}, want: Config{}},
		{name: "debug false", env: map[string]string{"F_DEBUG": "FALSE"}, want: Config{}},
		{name: "debug off", env: map[string]string{"F_DEBUG": "off"}, want: Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConfigFromEnv(func(key string) string { return tt.env[key] })
			if got != tt.want {
				t.Errorf("ConfigFromEnv() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
