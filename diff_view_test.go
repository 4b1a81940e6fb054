package main

import (
	"strings"
	"testing"

	t "github.com/darrenburns/terma"
	"github.com/stretchr/testify/require"
)

func testThemeData(tt *testing.T) t.ThemeData {
	tt.Helper()
	theme, ok := t.GetTheme(t.CurrentThemeName())
	require.True(tt, ok)
	return theme
}

func TestPaddedLineNumber(t *testing.T) {
	require.Equal(t, "  7", paddedLineNumber(7, 3))
	require.Equal(t, "42", paddedLineNumber(42, 2))
	require.Equal(t, "   ", paddedLineNumber(0, 3))
	require.Equal(t, "  ", paddedLineNumber(-1, 2))
}

func TestUnifiedNumWidth(t *testing.T) {
	rendered := &RenderedFile{Lines: []RenderedDiffLine{
		{OldLine: 4, NewLine: 7},
		{OldLine: 98, NewLine: 102},
	}}
	require.Equal(t, 3, unifiedNumWidth(rendered))

	require.Equal(t, 1, unifiedNumWidth(&RenderedFile{}))
}

func TestUnifiedLineSpans_ContextLine(tt *testing.T) {
	theme := testThemeData(tt)
	line := RenderedDiffLine{Kind: RenderedLineContext, OldLine: 4, NewLine: 7, Content: "body"}

	spans := unifiedLineSpans(line, 3, theme, false)
	require.Len(tt, spans, 3)
	require.Equal(tt, "  4   7 ", spans[0].Text)
	require.Equal(tt, "  ", spans[1].Text)
	require.Equal(tt, "body", spans[2].Text)
}

func TestUnifiedLineSpans_AddAndRemoveSigns(tt *testing.T) {
	theme := testThemeData(tt)

	add := unifiedLineSpans(RenderedDiffLine{Kind: RenderedLineAdd, NewLine: 8, Content: "added"}, 2, theme, false)
	require.Equal(tt, "+ ", add[1].Text)
	require.Equal(tt, theme.Success, add[1].Style.Foreground)
	require.Equal(tt, theme.Success, add[2].Style.Foreground)

	remove := unifiedLineSpans(RenderedDiffLine{Kind: RenderedLineRemove, OldLine: 5, Content: "removed"}, 2, theme, false)
	require.Equal(tt, "- ", remove[1].Text)
	require.Equal(tt, theme.Error, remove[1].Style.Foreground)
}

func TestUnifiedLineSpans_HiddenSigns(tt *testing.T) {
	theme := testThemeData(tt)
	line := RenderedDiffLine{Kind: RenderedLineAdd, NewLine: 8, Content: "added"}

	spans := unifiedLineSpans(line, 2, theme, true)
	require.Len(tt, spans, 2)
	require.Equal(tt, "added", spans[1].Text)
}

func TestUnifiedLineSpans_HunkAndMetaLines(tt *testing.T) {
	theme := testThemeData(tt)

	hunk := unifiedLineSpans(RenderedDiffLine{Kind: RenderedLineHunk, Content: "@@ -1 +1 @@"}, 2, theme, false)
	require.Len(tt, hunk, 1)
	require.Equal(tt, theme.Accent, hunk[0].Style.Foreground)

	meta := unifiedLineSpans(RenderedDiffLine{Kind: RenderedLineMeta, Content: "index 111..222"}, 2, theme, false)
	require.Len(tt, meta, 1)
	require.Equal(tt, theme.TextMuted, meta[0].Style.Foreground)
}

func TestSideCellWidget_EmptyCellPadsGutter(tt *testing.T) {
	theme := testThemeData(tt)

	widget := sideCellWidget(nil, 3, theme, false)
	text, ok := widget.(t.Text)
	require.True(tt, ok)
	require.Equal(tt, strings.Repeat(" ", 4), text.Content)
}

func TestSideCellWidget_FilledCell(tt *testing.T) {
	theme := testThemeData(tt)
	cell := &RenderedSideCell{Kind: RenderedLineRemove, LineNumber: 12, Prefix: "-", Content: "gone"}

	widget := sideCellWidget(cell, 3, theme, false)
	text, ok := widget.(t.Text)
	require.True(tt, ok)
	require.Len(tt, text.Spans, 3)
	require.Equal(tt, " 12 ", text.Spans[0].Text)
	require.Equal(tt, "- ", text.Spans[1].Text)
	require.Equal(tt, "gone", text.Spans[2].Text)
	require.Equal(tt, theme.Error, text.Spans[2].Style.Foreground)
}

func TestBuildUnifiedDiffWidget_OneRowPerLine(tt *testing.T) {
	theme := testThemeData(tt)
	rendered := buildMetaRenderedFile("Title", []string{"one", "two"})

	widget := buildUnifiedDiffWidget(rendered, theme, false)
	column, ok := widget.(t.Column)
	require.True(tt, ok)
	require.Len(tt, column.Children, len(rendered.Lines))
}

func TestBuildSideBySideDiffWidget_SharedRowsSpanFullWidth(tt *testing.T) {
	theme := testThemeData(tt)
	doc := parseUnifiedDiff(diffForPaths("a.txt"))
	require.Len(tt, doc.Files, 1)
	sideBySide := buildSideBySideRenderedFile(doc.Files[0])

	widget := buildSideBySideDiffWidget(sideBySide, theme, false)
	column, ok := widget.(t.Column)
	require.True(tt, ok)
	require.Len(tt, column.Children, len(sideBySide.Rows))

	sharedSeen := false
	splitSeen := false
	for i, row := range sideBySide.Rows {
		if row.Shared != nil {
			_, isText := column.Children[i].(t.Text)
			require.True(tt, isText)
			sharedSeen = true
			continue
		}
		paneRow, isRow := column.Children[i].(t.Row)
		require.True(tt, isRow)
		require.Len(tt, paneRow.Children, 3)
		splitSeen = true
	}
	require.True(tt, sharedSeen)
	require.True(tt, splitSeen)
}

func TestDiffViewState_SetRenderedDerivesSideBySide(t *testing.T) {
	state := NewDiffViewState(buildMetaRenderedFile("Title", []string{"msg"}))
	require.NotNil(t, state.Rendered())
	require.NotNil(t, state.SideBySide())

	state.SetRendered(nil)
	require.Nil(t, state.Rendered())
	require.Nil(t, state.SideBySide())
}

func TestDiffViewState_SetRenderedPairKeepsBothModels(t *testing.T) {
	doc := parseUnifiedDiff(diffForPaths("a.txt"))
	file := doc.Files[0]
	rendered := buildRenderedFile(file)
	sideBySide := buildSideBySideRenderedFile(file)

	state := NewDiffViewState(nil)
	state.SetRenderedPair(rendered, sideBySide)
	require.Same(t, rendered, state.Rendered())
	require.Same(t, sideBySide, state.SideBySide())

	state.SetRenderedPair(rendered, nil)
	require.Same(t, rendered, state.Rendered())
	require.NotNil(t, state.SideBySide())
}
