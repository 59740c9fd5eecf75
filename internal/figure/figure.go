// internal/figure/figure.go
//
// Progressive gallows renderer.
// Responsibilities:
//   - Map a wrong-guess count to a fixed 8x10 grid of runes.
//   - Draw each body part once its threshold is exceeded.
//
// Notes:
//   - Geometry lives in the parts table below.
//   - Counts above MaxStage draw the full figure; negative counts draw nothing.
package figure

import "strings"

// Grid geometry.
const (
	Height     = 8
	Width      = 10
	BodyWidth  = 3
	PostOffset = 2

	// MaxStage is the count at which the figure is complete.
	MaxStage = 10
)

const (
	bodyCol  = Width - BodyWidth + BodyWidth/2
	leftCol  = Width - BodyWidth
	rightCol = Width - 1
	baseRow  = Height - 1
)

// base replaces the whole bottom row once the first wrong guess lands.
const base = "(---)"

// part is one piece of the figure covering rows [top,bottom] and columns [left,right].
// It is drawn when the wrong-guess count is greater than after.
type part struct {
	name        string
	top, bottom int
	left, right int
	after       int
	glyph       rune
}

var parts = []part{
	{name: "beam", top: 0, bottom: 0, left: PostOffset + 1, right: Width - BodyWidth/2 - 1, after: 2, glyph: '_'},
	{name: "post", top: 1, bottom: baseRow - 1, left: PostOffset, right: PostOffset, after: 1, glyph: '|'},
	{name: "rope", top: 1, bottom: 1, left: bodyCol, right: bodyCol, after: 3, glyph: '|'},
	{name: "head", top: 2, bottom: 2, left: bodyCol, right: bodyCol, after: 4, glyph: 'o'},
	{name: "torso", top: 3, bottom: 3, left: bodyCol, right: bodyCol, after: 5, glyph: '|'},
	{name: "left arm", top: 3, bottom: 3, left: leftCol, right: leftCol, after: 6, glyph: '/'},
	{name: "right arm", top: 3, bottom: 3, left: rightCol, right: rightCol, after: 7, glyph: '\\'},
	{name: "left leg", top: 4, bottom: 4, left: leftCol, right: leftCol, after: 8, glyph: '/'},
	{name: "right leg", top: 4, bottom: 4, left: rightCol, right: rightCol, after: 9, glyph: '\\'},
}

// Render returns Height rows of exactly Width runes depicting the figure
// after wrongGuesses wrong guesses.
func Render(wrongGuesses int) []string {
	n := clamp(wrongGuesses)

	var grid [Height][Width]rune
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}
	for _, p := range parts {
		if n <= p.after {
			continue
		}
		for r := p.top; r <= p.bottom; r++ {
			for c := p.left; c <= p.right; c++ {
				grid[r][c] = p.glyph
			}
		}
	}

	rows := make([]string, Height)
	for r := range grid {
		rows[r] = string(grid[r][:])
	}
	if n > 0 {
		rows[baseRow] = base + strings.Repeat(" ", Width-len(base))
	}
	return rows
}

func clamp(n int) int {
	switch {
	case n < 0:
		return 0
	case n > MaxStage:
		return MaxStage
	}
	return n
}
