package ui

import (
	"fmt"
	"strings"

	"flood-ca/internal/core"
)

// StatusLine formats the sim name followed by its run progress.
func StatusLine(sim core.Sim, paused bool) string {
	parts := []string{sim.Name()}
	if provider, ok := sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for _, key := range []string{"step", "wet", "converged"} {
			if p, ok := snap.Lookup(key); ok {
				parts = append(parts, fmt.Sprintf("%s=%s", strings.ToLower(p.Label), p.Value))
			}
		}
	}
	if paused {
		parts = append(parts, "paused")
	}
	return strings.Join(parts, "  ")
}
