package pdfextract

import (
	"math"
	"sort"
	"strings"
)

// Token is one positioned text fragment on a page.
type Token struct {
	Text   string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// ClusterLines reconstructs reading-order lines from positioned tokens.
// Tokens are sorted top-to-bottom (PDF Y grows upward, so descending Y)
// and left-to-right within a line; two tokens share a line when their Y
// coordinates differ by less than tolerance. This is a pure fold: the
// line buffer and current Y live only inside the call.
func ClusterLines(tokens []Token, tolerance float64) []string {
	if len(tokens) == 0 {
		return nil
	}

	sorted := make([]Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if math.Abs(a.Y-b.Y) < tolerance {
			return a.X < b.X
		}
		return a.Y > b.Y
	})

	var lines []string
	var current []string
	currentY := math.NaN()

	for _, tok := range sorted {
		if math.IsNaN(currentY) || math.Abs(tok.Y-currentY) < tolerance {
			current = append(current, tok.Text)
			currentY = tok.Y
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
		current = []string{tok.Text}
		currentY = tok.Y
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	return lines
}
