package sanitize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "just a normal sentence",
			expected: "just a normal sentence",
		},
		{
			name:     "bold unwrapped",
			input:    "**hi**",
			expected: "hi",
		},
		{
			name:     "italic unwrapped",
			input:    "that was *really* something",
			expected: "that was really something",
		},
		{
			name:     "bold inside sentence",
			input:    "no, **this** is the point",
			expected: "no, this is the point",
		},
		{
			name:     "strikethrough unwrapped",
			input:    "~~wrong~~ right",
			expected: "wrong right",
		},
		{
			name:     "inline code unwrapped",
			input:    "use `go build` here",
			expected: "use go build here",
		},
		{
			name:     "superscript marker removed",
			input:    "x^2 plus y^2",
			expected: "x2 plus y2",
		},
		{
			name:     "escaped quote line removed",
			input:    "&gt; something they said\nmy reply",
			expected: "my reply",
		},
		{
			name:     "indented quote line removed",
			input:    "  &gt; quoted with indent\nstill here",
			expected: "still here",
		},
		{
			name:     "literal quote line removed",
			input:    "> literal quote\nkept",
			expected: "kept",
		},
		{
			name:     "http URL removed",
			input:    "see http://example.com/a_b now",
			expected: "see now",
		},
		{
			name:     "https URL with percent escape removed",
			input:    "source: https://ex.am/p%20q end",
			expected: "source: end",
		},
		{
			name:     "user mention removed",
			input:    "thanks u/someone for this",
			expected: "thanks for this",
		},
		{
			name:     "slash user mention removed",
			input:    "/u/someone said it first",
			expected: "said it first",
		},
		{
			name:     "subreddit mention removed",
			input:    "crossposted from r/golang today",
			expected: "crossposted from today",
		},
		{
			name:     "slash subreddit mention removed",
			input:    "/r/golang has this weekly",
			expected: "has this weekly",
		},
		{
			name:     "blank line runs collapsed",
			input:    "first\n\n\n\n\nsecond",
			expected: "first\n\nsecond",
		},
		{
			name:     "horizontal whitespace collapsed",
			input:    "too    many\tspaces",
			expected: "too many spaces",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  padded  ",
			expected: "padded",
		},
		{
			name:     "edit tail removed",
			input:    "good answer EDIT: fixed a typo",
			expected: "good answer",
		},
		{
			name:     "lowercase edit line removed",
			input:    "keep this\nedit: grammar",
			expected: "keep this",
		},
		{
			name:     "edit as entire input",
			input:    "Edit: never mind",
			expected: "",
		},
		{
			name:     "markup mention url and edit combined",
			input:    "**hi** u/bob http://x.co EDIT: nvm",
			expected: "hi",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Text(tt.input)
			if got != tt.expected {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"**bold** and *italic* and ~~strike~~ and `code`",
		"&gt; quote\nreply with u/name and r/sub",
		"multi\n\n\n\n\nline   with   spaces",
		"trailing EDIT: annotation",
		"unbalanced **markers and lone * star",
		"http://a.b/c?d=e&f=g plus ^super",
	}

	for _, input := range inputs {
		once := Text(input)
		twice := Text(once)
		if once != twice {
			t.Errorf("Text not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
