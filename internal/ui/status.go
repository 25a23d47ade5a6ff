package ui

import "fmt"

// StatusLine summarises the simulation for an on-screen status bar.
func StatusLine(generation, population int, paused bool) string {
	s := fmt.Sprintf("gen %d  pop %d", generation, population)
	if paused {
		s += "  [paused]"
	}
	return s
}
