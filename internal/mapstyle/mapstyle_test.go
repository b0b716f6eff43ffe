package mapstyle_test

import (
	"testing"

	"parkbike/internal/mapstyle"
)

func TestFor(t *testing.T) {
	if got := mapstyle.For(false); got == nil || len(got) != 0 {
		t.Fatalf("light theme should be an empty, non-nil list: %v", got)
	}
	rules := mapstyle.For(true)
	if len(rules) != 7 {
		t.Fatalf("expected 7 dark rules, got %d", len(rules))
	}
	if rules[0].ElementType != "geometry" || rules[0].Stylers[0].Color != "#1c1c1c" {
		t.Fatalf("unexpected first rule: %+v", rules[0])
	}
}
