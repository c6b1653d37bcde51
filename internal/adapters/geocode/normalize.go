package geocode

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeAddress produces the lookup key for an address: surrounding and
// repeated whitespace collapsed, case folded.
func NormalizeAddress(address string) string {
	// A Caser is stateful and must not be shared between goroutines.
	return cases.Fold().String(strings.Join(strings.Fields(address), " "))
}
