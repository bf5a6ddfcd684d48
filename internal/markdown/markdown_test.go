package markdown

import (
	"strings"
	"testing"
)

func TestRender_Markdown(t *testing.T) {
	out, err := New().Render("# Title\n\nSome **bold** text and a [link](https://example.com).")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{"<h1", "Title", "<strong>bold</strong>", `href="https://example.com"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}

func TestRender_StripsScripts(t *testing.T) {
	out, err := New().Render("hello <script>alert(1)</script> <img src=x onerror=alert(1)>")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(out, "<script") || strings.Contains(out, "onerror") {
		t.Fatalf("unsafe html survived: %q", out)
	}
}
