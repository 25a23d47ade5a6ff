package ui

import "testing"

func TestStatusLine(t *testing.T) {
	if got := StatusLine(12, 40, false); got != "gen 12  pop 40" {
		t.Fatalf("running status %q", got)
	}
	if got := StatusLine(0, 3, true); got != "gen 0  pop 3  [paused]" {
		t.Fatalf("paused status %q", got)
	}
}
