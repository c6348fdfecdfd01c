package icons

import (
	"testing"

	"navjot.dev/internal/content"
)

func TestLucideNameCoversContentIcons(t *testing.T) {
	p, err := content.Default()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}

	var ids []string
	for _, s := range p.Socials {
		ids = append(ids, s.Icon)
	}
	for _, c := range p.Skills {
		ids = append(ids, c.Icon)
	}
	for _, c := range p.Contact {
		ids = append(ids, c.Icon)
	}

	for _, id := range ids {
		if _, ok := LucideName(id); !ok {
			t.Fatalf("missing Lucide mapping for %q", id)
		}
	}
}

func TestLucideNameOrDefault(t *testing.T) {
	if got := LucideNameOrDefault("code"); got != "code-xml" {
		t.Fatalf("LucideNameOrDefault(code) = %q", got)
	}
	if got := LucideNameOrDefault("unknown"); got != "sparkle" {
		t.Fatalf("LucideNameOrDefault(unknown) = %q", got)
	}
}

func TestIDs(t *testing.T) {
	if len(IDs()) != len(lucideIconNames) {
		t.Fatalf("IDs() returned %d ids, want %d", len(IDs()), len(lucideIconNames))
	}
}
