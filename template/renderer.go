// Package template renders the comparison report using html/template.
// The output is a single self-contained page: styles and the tab-switching
// script are inlined, nothing is loaded from the network.
package template

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/pagediff"
)

// commonLinkLimit caps the rendered common-links list; the remainder is
// summarized as a "... and N more" suffix.
const commonLinkLimit = 50

// timestampFormat is the generation timestamp layout in the report header.
const timestampFormat = "2006-01-02 15:04:05"

// Ensure Renderer implements pagediff.ReportRenderer at compile time.
var _ pagediff.ReportRenderer = (*Renderer)(nil)

// Renderer composes a comparison into the report page. Apart from the
// clock it is a pure function of its input: identical comparisons render
// byte-identical output under a fixed clock.
type Renderer struct {
	differ pagediff.Differ

	// Now supplies the generation timestamp. Defaults to time.Now;
	// tests inject a fixed clock.
	Now func() time.Time
}

// NewRenderer creates a new Renderer using the given differ.
func NewRenderer(differ pagediff.Differ) *Renderer {
	return &Renderer{differ: differ, Now: time.Now}
}

// reportData is the template's view model.
type reportData struct {
	File1     string
	File2     string
	Marker    string
	Generated string

	SimilarityPct string
	GaugeStyle    template.CSS

	TotalV1 int
	TotalV2 int
	Common  int
	Removed int
	Added   int

	DiffV1 template.HTML
	DiffV2 template.HTML

	RemovedLinks []pagediff.Link
	AddedLinks   []pagediff.Link
	CommonLinks  []pagediff.Link
	CommonMore   int

	MarkupGroups []markupGroup

	Text1 string
	Text2 string
}

// markupGroup is one run of line-diff rows; groups are separated by
// collapsed-context markers in the table.
type markupGroup struct {
	Rows []markupRow
}

// markupRow is one side-by-side row of the raw markup diff.
type markupRow struct {
	Class   string
	LeftNo  string
	RightNo string
	Left    string
	Right   string
}

// Render writes the report for cmp to w. Similarity is computed once; the
// character diff runs on truncated text, the line diff on the raw region
// markup.
func (r *Renderer) Render(w io.Writer, cmp *pagediff.Comparison) error {
	text1 := cmp.Region1.Text
	text2 := cmp.Region2.Text

	similarity := r.differ.Similarity(text1, text2)
	segments := r.differ.Segments(
		pagediff.TruncateForDiff(text1),
		pagediff.TruncateForDiff(text2),
	)
	diffV1, diffV2 := renderSegments(segments)
	groups := markupGroups(r.differ.Lines(cmp.Region1.HTML, cmp.Region2.HTML))

	common := cmp.LinkDiff.InBoth
	more := 0
	if len(common) > commonLinkLimit {
		more = len(common) - commonLinkLimit
		common = common[:commonLinkLimit]
	}

	data := reportData{
		File1:         cmp.File1,
		File2:         cmp.File2,
		Marker:        cmp.Marker,
		Generated:     r.Now().Format(timestampFormat),
		SimilarityPct: fmt.Sprintf("%.1f%%", similarity*100),
		GaugeStyle:    template.CSS(fmt.Sprintf("width: %.1f%%", similarity*100)),
		TotalV1:       cmp.LinkDiff.TotalV1,
		TotalV2:       cmp.LinkDiff.TotalV2,
		Common:        len(cmp.LinkDiff.InBoth),
		Removed:       len(cmp.LinkDiff.OnlyInV1),
		Added:         len(cmp.LinkDiff.OnlyInV2),
		DiffV1:        diffV1,
		DiffV2:        diffV2,
		RemovedLinks:  cmp.LinkDiff.OnlyInV1,
		AddedLinks:    cmp.LinkDiff.OnlyInV2,
		CommonLinks:   common,
		CommonMore:    more,
		MarkupGroups:  groups,
		Text1:         text1,
		Text2:         text2,
	}

	return reportTmpl.Execute(w, data)
}

// renderSegments walks the alignment in opcode order and emits the two
// marked-up sides. Equal runs appear on both sides unchanged; deletions
// only on side 1, insertions only on side 2, replacements on both. All
// literal text is escaped, so markup and content cannot be confused, and
// stripping the span tags reconstructs the inputs exactly.
func renderSegments(segments []pagediff.DiffSegment) (template.HTML, template.HTML) {
	var v1, v2 strings.Builder
	for _, seg := range segments {
		switch seg.Op {
		case pagediff.OpEqual:
			v1.WriteString(template.HTMLEscapeString(seg.TextA))
			v2.WriteString(template.HTMLEscapeString(seg.TextB))
		case pagediff.OpDelete:
			v1.WriteString(`<span class="diff-removed">`)
			v1.WriteString(template.HTMLEscapeString(seg.TextA))
			v1.WriteString(`</span>`)
		case pagediff.OpInsert:
			v2.WriteString(`<span class="diff-added">`)
			v2.WriteString(template.HTMLEscapeString(seg.TextB))
			v2.WriteString(`</span>`)
		case pagediff.OpReplace:
			v1.WriteString(`<span class="diff-changed">`)
			v1.WriteString(template.HTMLEscapeString(seg.TextA))
			v1.WriteString(`</span>`)
			v2.WriteString(`<span class="diff-changed">`)
			v2.WriteString(template.HTMLEscapeString(seg.TextB))
			v2.WriteString(`</span>`)
		}
	}
	return template.HTML(v1.String()), template.HTML(v2.String())
}

// markupGroups converts line-diff groups into table rows.
func markupGroups(groups [][]pagediff.LineDiff) []markupGroup {
	out := make([]markupGroup, 0, len(groups))
	for _, g := range groups {
		rows := make([]markupRow, 0, len(g))
		for _, ld := range g {
			rows = append(rows, markupRow{
				Class:   "line-" + string(ld.Op),
				LeftNo:  lineNo(ld.LeftNo),
				RightNo: lineNo(ld.RightNo),
				Left:    ld.Left,
				Right:   ld.Right,
			})
		}
		out = append(out, markupGroup{Rows: rows})
	}
	return out
}

// lineNo formats a 1-based line number; zero renders blank.
func lineNo(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
