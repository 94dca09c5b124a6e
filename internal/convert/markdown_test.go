package convert

import (
	"strings"
	"testing"

	"github.com/dshills/keylink/internal/model"
)

func TestParseMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "inline link",
			in:   "see [docs](/docs).",
			want: `"see " "docs"{linkHref="/docs"} "."`,
		},
		{
			name: "bare url",
			in:   "visit https://example.com today",
			want: `"visit " "https://example.com"{linkHref="https://example.com"} " today"`,
		},
		{
			name: "emphasis",
			in:   "**bold** and *it*",
			want: `"bold"{bold=true} " and " "it"{italic=true}`,
		},
		{
			name: "paragraphs",
			in:   "a\n\nb\n",
			want: `"a\nb"`,
		},
		{
			name: "unsafe link",
			in:   "[x](javascript:void)",
			want: `"x"`,
		},
	}

	c := New(testRegistry(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := c.ParseMarkdownString(tt.in)
			if err != nil {
				t.Fatalf("ParseMarkdownString(%q) failed: %v", tt.in, err)
			}
			doc := model.NewDocument(runs)
			parts := make([]string, 0, doc.Len())
			for _, r := range doc.Runs() {
				parts = append(parts, r.String())
			}
			if got := strings.Join(parts, " "); got != tt.want {
				t.Errorf("parsed =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
