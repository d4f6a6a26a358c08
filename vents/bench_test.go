// SPDX-License-Identifier: MIT

package vents_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/submarine/vents"
)

// BenchmarkOverlapsAll measures a 500-segment map of long lines.
func BenchmarkOverlapsAll(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		switch i % 3 {
		case 0:
			fmt.Fprintf(&sb, "%d,0 -> %d,999\n", i, i)
		case 1:
			fmt.Fprintf(&sb, "0,%d -> 999,%d\n", i, i)
		default:
			fmt.Fprintf(&sb, "0,%d -> %d,0\n", i, i)
		}
	}
	m, err := vents.Parse(sb.String())
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.OverlapsAll()
	}
}
