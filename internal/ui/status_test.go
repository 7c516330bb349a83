package ui

import (
	"slices"
	"testing"
)

func TestStatusLines(t *testing.T) {
	got := Status{Generation: 12, Population: 5, Paused: true}.Lines()
	want := []string{"gen 12", "alive 5", "paused"}
	if !slices.Equal(got, want) {
		t.Fatalf("lines = %v, want %v", got, want)
	}
	if s := (Status{}).Lines(); s[2] != "running" {
		t.Fatalf("unpaused status shows %q", s[2])
	}
}
