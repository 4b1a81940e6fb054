package main

import (
	"fmt"
	"strings"

	t "github.com/darrenburns/terma"
)

// DiffViewState holds the render models for the currently selected
// node. Both layouts are kept so toggling views never re-parses.
type DiffViewState struct {
	rendered   *RenderedFile
	sideBySide *SideBySideRenderedFile
}

func NewDiffViewState(rendered *RenderedFile) *DiffViewState {
	state := &DiffViewState{}
	state.SetRendered(rendered)
	return state
}

// SetRendered installs a unified model and derives the split model
// from it. Used for summaries and messages, which have no real
// left/right structure.
func (s *DiffViewState) SetRendered(rendered *RenderedFile) {
	s.rendered = rendered
	s.sideBySide = nil
	if rendered != nil {
		s.sideBySide = buildSideBySideFromRendered(rendered)
	}
}

// SetRenderedPair installs both models for a parsed file.
func (s *DiffViewState) SetRenderedPair(rendered *RenderedFile, sideBySide *SideBySideRenderedFile) {
	s.rendered = rendered
	s.sideBySide = sideBySide
	if s.sideBySide == nil && rendered != nil {
		s.sideBySide = buildSideBySideFromRendered(rendered)
	}
}

func (s *DiffViewState) Rendered() *RenderedFile {
	return s.rendered
}

func (s *DiffViewState) SideBySide() *SideBySideRenderedFile {
	return s.sideBySide
}

// buildUnifiedDiffWidget renders the unified model as one text row per
// line: old and new line numbers, optional +/- sign, then content.
func buildUnifiedDiffWidget(rendered *RenderedFile, theme t.ThemeData, hideChangeSigns bool) t.Widget {
	if rendered == nil || len(rendered.Lines) == 0 {
		return t.Column{Style: t.Style{Width: t.Flex(1)}}
	}

	numWidth := unifiedNumWidth(rendered)
	rows := make([]t.Widget, 0, len(rendered.Lines))
	for _, line := range rendered.Lines {
		rows = append(rows, t.Text{
			Spans: unifiedLineSpans(line, numWidth, theme, hideChangeSigns),
			Style: t.Style{
				Width:           t.Flex(1),
				BackgroundColor: theme.Background,
			},
		})
	}

	return t.Column{
		Style: t.Style{
			Width:           t.Flex(1),
			BackgroundColor: theme.Background,
		},
		Children: rows,
	}
}

func unifiedLineSpans(line RenderedDiffLine, numWidth int, theme t.ThemeData, hideChangeSigns bool) []t.Span {
	switch line.Kind {
	case RenderedLineHunk:
		return []t.Span{t.ColorSpan(line.Content, theme.Accent)}
	case RenderedLineMeta:
		return []t.Span{t.ColorSpan(line.Content, theme.TextMuted)}
	}

	gutter := fmt.Sprintf("%s %s ", paddedLineNumber(line.OldLine, numWidth), paddedLineNumber(line.NewLine, numWidth))
	spans := []t.Span{t.ColorSpan(gutter, theme.TextMuted)}

	contentColor := theme.Text
	sign := " "
	switch line.Kind {
	case RenderedLineAdd:
		contentColor = theme.Success
		sign = "+"
	case RenderedLineRemove:
		contentColor = theme.Error
		sign = "-"
	}
	if !hideChangeSigns {
		spans = append(spans, t.ColorSpan(sign+" ", contentColor))
	}
	return append(spans, t.ColorSpan(line.Content, contentColor))
}

// buildSideBySideDiffWidget renders the split model as rows of two
// panes separated by a divider. Shared rows span the full width.
func buildSideBySideDiffWidget(sideBySide *SideBySideRenderedFile, theme t.ThemeData, hideChangeSigns bool) t.Widget {
	if sideBySide == nil || len(sideBySide.Rows) == 0 {
		return t.Column{Style: t.Style{Width: t.Flex(1)}}
	}

	rows := make([]t.Widget, 0, len(sideBySide.Rows))
	for _, row := range sideBySide.Rows {
		if row.Shared != nil {
			color := theme.TextMuted
			if row.Shared.Kind == RenderedLineHunk {
				color = theme.Accent
			}
			rows = append(rows, t.Text{
				Spans: []t.Span{t.ColorSpan(row.Shared.Content, color)},
				Style: t.Style{Width: t.Flex(1), BackgroundColor: theme.Background},
			})
			continue
		}

		rows = append(rows, t.Row{
			Style: t.Style{Width: t.Flex(1), BackgroundColor: theme.Background},
			Children: []t.Widget{
				sideCellWidget(row.Left, sideBySide.LeftNumWidth, theme, hideChangeSigns),
				t.Text{
					Content: "│",
					Style:   t.Style{ForegroundColor: theme.TextDisabled},
				},
				sideCellWidget(row.Right, sideBySide.RightNumWidth, theme, hideChangeSigns),
			},
		})
	}

	return t.Column{
		Style: t.Style{
			Width:           t.Flex(1),
			BackgroundColor: theme.Background,
		},
		Children: rows,
	}
}

func sideCellWidget(cell *RenderedSideCell, numWidth int, theme t.ThemeData, hideChangeSigns bool) t.Widget {
	style := t.Style{Width: t.Flex(1), BackgroundColor: theme.Background}
	if cell == nil {
		return t.Text{
			Content: strings.Repeat(" ", numWidth+1),
			Style:   style,
		}
	}

	contentColor := theme.Text
	switch cell.Kind {
	case RenderedLineAdd:
		contentColor = theme.Success
	case RenderedLineRemove:
		contentColor = theme.Error
	}

	spans := []t.Span{t.ColorSpan(paddedLineNumber(cell.LineNumber, numWidth)+" ", theme.TextMuted)}
	if !hideChangeSigns {
		spans = append(spans, t.ColorSpan(cell.Prefix+" ", contentColor))
	}
	spans = append(spans, t.ColorSpan(cell.Content, contentColor))
	return t.Text{Spans: spans, Style: style}
}

func paddedLineNumber(n int, width int) string {
	if n <= 0 {
		return strings.Repeat(" ", width)
	}
	return fmt.Sprintf("%*d", width, n)
}

func unifiedNumWidth(rendered *RenderedFile) int {
	maxNum := 0
	for _, line := range rendered.Lines {
		if line.OldLine > maxNum {
			maxNum = line.OldLine
		}
		if line.NewLine > maxNum {
			maxNum = line.NewLine
		}
	}
	return digitCount(maxNum)
}
