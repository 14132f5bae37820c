// Package pdftest builds small text-only PDFs for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// Run is a string drawn with its origin at (X, Y), in points from the
// bottom-left corner of a letter-size page.
type Run struct {
	X, Y float64
	Text string
}

// Lines lays lines out top-down from (72, 720), 16pt apart. Like real
// producers, line breaks come only from positioning, never from newline
// characters in the strings.
func Lines(lines ...string) []Run {
	runs := make([]Run, len(lines))
	for i, l := range lines {
		runs[i] = Run{X: 72, Y: 720 - 16*float64(i), Text: l}
	}
	return runs
}

// Build returns a PDF with one page per element of pages, each laid out with
// Lines. A page with no lines has no text layer.
func Build(pages ...[]string) []byte {
	runs := make([][]Run, len(pages))
	for i, lines := range pages {
		runs[i] = Lines(lines...)
	}
	return BuildRuns(runs...)
}

// BuildRuns returns a PDF with one page per element of pages. Runs are drawn
// in the given order, each placed absolutely with Tm, in 12pt Helvetica.
func BuildRuns(pages ...[]Run) []byte {
	var objs []string
	objs = append(objs, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objs = append(objs, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	objs = append(objs, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, runs := range pages {
		contentID := 5 + 2*i
		objs = append(objs, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentID,
		))
		stream := content(runs)
		objs = append(objs, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")
	offsets := make([]int, len(objs))
	for i, body := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

// Statement returns the lines of a typical pay statement page.
func Statement(name, chequeDate, netPay, company string) []string {
	return []string{
		"PAYROLL ADVICE 4300",
		name,
		"Cheque Date: " + chequeDate,
		"Net Pay: " + netPay,
		"Company: " + company,
	}
}

func content(runs []Run) string {
	if len(runs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("BT\n/F1 12 Tf\n")
	for _, r := range runs {
		fmt.Fprintf(&b, "1 0 0 1 %g %g Tm\n(%s) Tj\n", r.X, r.Y, escape(r.Text))
	}
	b.WriteString("ET")
	return b.String()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
