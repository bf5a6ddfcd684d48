package slug

import "testing"

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Hello World":              "hello-world",
		"  Héllo,   Wörld!  ":      "hello-world",
		"Go 1.25 -- release notes": "go-1-25-release-notes",
		"---":                      "",
		"Crème Brûlée":             "creme-brulee",
	}
	for in, want := range cases {
		if got := Make(in); got != want {
			t.Errorf("Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUnique(t *testing.T) {
	existing := map[string]bool{"post": true, "post-2": true}
	got := Unique("post", func(s string) bool { return existing[s] })
	if got != "post-3" {
		t.Fatalf("expected post-3, got %q", got)
	}
	if got := Unique("", func(string) bool { return false }); got != "untitled" {
		t.Fatalf("expected untitled fallback, got %q", got)
	}
}
