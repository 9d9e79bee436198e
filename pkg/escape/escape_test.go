package escape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello world", "hello world"},
		{"empty", "", ""},
		{"ampersand", "fish & chips", "fish &amp; chips"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"quotes", `say "hi"`, "say &quot;hi&quot;"},
		{"single quote", "it's", "it's"},
		{"tags untouched", "[url=a?b=1&c=2]x[/url]", "[url=a?b=1&amp;c=2]x[/url]"},
		{"entity is escaped again", "&amp;", "&amp;amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.input))
		})
	}
}
