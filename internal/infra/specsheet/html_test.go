package specsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "plain text untouched",
			in:   "100% Polyester",
			want: "100% Polyester",
		},
		{
			name: "line breaks become newlines",
			in:   "Width: 140cm<br>Weight: 410gsm<br />Origin: Italy",
			want: "Width: 140cm\nWeight: 410gsm\nOrigin: Italy",
		},
		{
			name: "paragraph boundaries become blank lines",
			in:   "<p>Hand wash only.</p><p>Do not tumble dry.</p>",
			want: "Hand wash only.\n\nDo not tumble dry.",
		},
		{
			name: "remaining tags are dropped",
			in:   `A <strong>very</strong> durable <a href="#">weave</a>.`,
			want: "A very durable weave.",
		},
		{
			name: "entities are decoded",
			in:   "Care&nbsp;&amp;&nbsp;Maintenance &gt; wipe clean",
			want: "Care & Maintenance > wipe clean",
		},
		{
			name: "literal escaped newlines from the store API",
			in:   `First line\r\nSecond line\nThird line`,
			want: "First line\nSecond line\nThird line",
		},
		{
			name: "blank runs collapse to one blank line",
			in:   "<p>One</p>\n\n\n\n<p>Two</p>",
			want: "One\n\nTwo",
		},
		{
			name: "runs of spaces collapse",
			in:   "Too    many     spaces",
			want: "Too many spaces",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "  <p>Trimmed</p>  ",
			want: "Trimmed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkup(tt.in))
		})
	}
}
