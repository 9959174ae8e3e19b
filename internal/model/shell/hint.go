package shell

import (
	"github.com/agnivade/levenshtein"
)

// similarCategory returns the recorded category closest to category when it is
// within maxDistance edits. Exact matches and a zero maxDistance yield "".
func similarCategory(category string, recorded []string, maxDistance int) string {
	if maxDistance <= 0 {
		return ""
	}

	best, bestDistance := "", maxDistance+1
	for _, cat := range recorded {
		if cat == category {
			return ""
		}
		d := levenshtein.ComputeDistance(category, cat)
		if d < bestDistance || (d == bestDistance && cat < best) {
			best, bestDistance = cat, d
		}
	}
	return best
}
