package pdfsplit

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

func openTextReader(data []byte) (r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic opening pdf: %v", rec)
		}
	}()
	return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
}

// pageText returns the text of page n, one output line per visual line, top
// to bottom. Pages without a text layer yield "".
// The pdf library panics on some malformed content streams, so panics become errors.
func pageText(r *pdf.Reader, n int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("panic reading page %d text: %v", n, rec)
		}
	}()
	if r == nil || n < 1 || n > r.NumPage() {
		return "", nil
	}
	page := r.Page(n)
	if page.V.IsNull() {
		return "", nil
	}
	return layoutLines(page.Content().Text), nil
}

// textLine is the glyphs sharing one baseline.
type textLine struct {
	y      float64
	size   float64
	glyphs []pdf.Text
}

// layoutLines rebuilds reading order from positioned glyphs. Glyphs whose
// baselines are within a fraction of the font size share a line; lines run
// top-down and glyphs left to right, keeping content-stream order for equal X
// (fonts without /Widths report every glyph of a run at the run's origin).
// Every line, including the last, ends in "\n".
func layoutLines(glyphs []pdf.Text) string {
	var lines []*textLine
	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		var line *textLine
		for _, l := range lines {
			if math.Abs(l.y-g.Y) <= baselineTolerance(l.size, g.FontSize) {
				line = l
				break
			}
		}
		if line == nil {
			line = &textLine{y: g.Y, size: g.FontSize}
			lines = append(lines, line)
		}
		line.glyphs = append(line.glyphs, g)
	}
	if len(lines) == 0 {
		return ""
	}

	sort.SliceStable(lines, func(i, j int) bool { return lines[i].y > lines[j].y })

	var b strings.Builder
	for _, l := range lines {
		sort.SliceStable(l.glyphs, func(i, j int) bool { return l.glyphs[i].X < l.glyphs[j].X })
		for i, g := range l.glyphs {
			if i > 0 && needsSpace(l.glyphs[i-1], g) {
				b.WriteByte(' ')
			}
			b.WriteString(g.S)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func baselineTolerance(a, b float64) float64 {
	return math.Max(1, 0.3*math.Max(a, b))
}

// needsSpace reports a visible gap between two glyphs of a line that the
// content stream did not fill with a space character.
func needsSpace(prev, next pdf.Text) bool {
	if strings.HasSuffix(prev.S, " ") || strings.HasPrefix(next.S, " ") {
		return false
	}
	gap := next.X - (prev.X + prev.W)
	return gap > 0.2*math.Max(prev.FontSize, 1)
}
