package view

import (
	"bytes"
	"cavelife/src/universe"
	"github.com/logrusorgru/aurora"
)

//palette maps the two cell states to glyphs
type palette struct {
	filled string
	empty  string
}

//fieldRenderer turns a snapshot into the text of the field view
type fieldRenderer struct {
	palettes map[universe.AlgorithmKind]palette
	fallback palette
	//cursor decorates the glyph under the paint cursor
	cursor func(glyph string) string
	//agent is drawn on the focus point
	agent string
}

func newColorRenderer() fieldRenderer {
	life := palette{aurora.Green("█").BgBrightGreen().String(), "░"}
	return fieldRenderer{
		palettes: map[universe.AlgorithmKind]palette{
			universe.AlgorithmPaint:     {aurora.White("█").String(), "░"},
			universe.AlgorithmLife:      life,
			universe.AlgorithmDrunkWalk: {aurora.Yellow("·").String(), aurora.Gray(8, "█").String()},
		},
		fallback: life,
		cursor: func(glyph string) string {
			return aurora.Reverse(aurora.Cyan(glyph)).String()
		},
		agent: aurora.Red("@").Bold().String(),
	}
}

func newPlainRenderer() fieldRenderer {
	return fieldRenderer{
		fallback: palette{"#", "."},
		cursor:   func(string) string { return "+" },
		agent:    "@",
	}
}

func (r fieldRenderer) palette(k universe.AlgorithmKind) palette {
	if p, ok := r.palettes[k]; ok {
		return p
	}
	return r.fallback
}

//render writes the visible cells row by row
//a grid smaller than the view just yields shorter and fewer lines
func (r fieldRenderer) render(s universe.Snapshot) string {
	p := r.palette(s.Algorithm)
	showCursor := s.Algorithm == universe.AlgorithmPaint && !s.Finished
	var b bytes.Buffer
	for i, row := range s.Cells {
		//line feed char
		if i != 0 {
			b.WriteByte(10)
		}
		y := s.Origin.Y + i
		for j, c := range row {
			pt := universe.Point{X: s.Origin.X + j, Y: y}
			glyph := p.empty
			if c {
				glyph = p.filled
			}
			switch {
			case s.Focus != nil && *s.Focus == pt:
				glyph = r.agent
			case showCursor && s.Cursor == pt:
				glyph = r.cursor(glyph)
			}
			b.WriteString(glyph)
		}
	}
	return b.String()
}
