package chunking

import "testing"

func TestNormalizeDocument(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text unchanged", in: "plain text", want: "plain text"},
		{name: "smart quotes", in: "“Hi” it’s ‘fine’", want: `"Hi" it's 'fine'`},
		{name: "dashes", in: "a – b — c", want: "a - b - c"},
		{name: "composes combining marks", in: "e\u0301", want: "\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDocument(tt.in); got != tt.want {
				t.Errorf("NormalizeDocument(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
