package main

// RenderedSideCell is one pane's half of a side-by-side row.
type RenderedSideCell struct {
	Kind       RenderedLineKind
	LineNumber int
	Prefix     string
	Content    string
}

// SideBySideRenderedRow is a single aligned row of the split view.
// Hunk headers and file metadata span both panes via Shared; content
// rows populate Left and/or Right.
type SideBySideRenderedRow struct {
	Shared *RenderedDiffLine
	Left   *RenderedSideCell
	Right  *RenderedSideCell
}

// SideBySideRenderedFile is the split-view render model for one file.
type SideBySideRenderedFile struct {
	Title         string
	Rows          []SideBySideRenderedRow
	LeftNumWidth  int
	RightNumWidth int
}

// reconcileHunk aligns one hunk's lines into side-by-side rows. Context
// lines occupy both panes with independently tracked line numbers;
// deletions open left-only rows; additions fill the earliest unfilled
// deletion row of the current change block, or open a right-only row
// when the block has none left. "\ No newline" markers contribute no
// row and advance no counter.
func reconcileHunk(hunk *DiffHunk) []SideBySideRenderedRow {
	rows := make([]SideBySideRenderedRow, 0, len(hunk.Lines))
	oldLine := hunk.OldStart
	newLine := hunk.NewStart

	for _, line := range hunk.Lines {
		switch line.Kind {
		case DiffLineContext:
			content := diffLineBody(line.Content)
			rows = append(rows, SideBySideRenderedRow{
				Left:  &RenderedSideCell{Kind: RenderedLineContext, LineNumber: oldLine, Prefix: " ", Content: content},
				Right: &RenderedSideCell{Kind: RenderedLineContext, LineNumber: newLine, Prefix: " ", Content: content},
			})
			oldLine++
			newLine++

		case DiffLineDelete:
			rows = append(rows, SideBySideRenderedRow{
				Left: &RenderedSideCell{Kind: RenderedLineRemove, LineNumber: oldLine, Prefix: "-", Content: diffLineBody(line.Content)},
			})
			oldLine++

		case DiffLineAdd:
			cell := &RenderedSideCell{Kind: RenderedLineAdd, LineNumber: newLine, Prefix: "+", Content: diffLineBody(line.Content)}
			if idx := pendingDeleteRowIndex(rows); idx >= 0 {
				rows[idx].Right = cell
			} else {
				rows = append(rows, SideBySideRenderedRow{Right: cell})
			}
			newLine++
		}
	}

	return rows
}

// pendingDeleteRowIndex walks backward over the trailing change rows
// and returns the earliest one whose right side is still empty. The
// walk stops at the first context (or shared) row, so additions never
// pair with deletions from an earlier change block.
func pendingDeleteRowIndex(rows []SideBySideRenderedRow) int {
	found := -1
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		if row.Shared != nil {
			break
		}
		if row.Left != nil && row.Left.Kind == RenderedLineContext {
			break
		}
		if row.Left != nil && row.Left.Kind == RenderedLineRemove && row.Right == nil {
			found = i
		}
	}
	return found
}

// diffLineBody strips the one-character diff marker from a raw line.
func diffLineBody(raw string) string {
	if raw == "" {
		return ""
	}
	return raw[1:]
}

func buildSideBySideRenderedFile(file *DiffFile) *SideBySideRenderedFile {
	side := &SideBySideRenderedFile{Title: file.DisplayPath}

	for _, meta := range file.MetaLines {
		side.Rows = append(side.Rows, SideBySideRenderedRow{
			Shared: &RenderedDiffLine{Kind: RenderedLineMeta, Content: meta},
		})
	}
	for _, hunk := range file.Hunks {
		side.Rows = append(side.Rows, SideBySideRenderedRow{
			Shared: &RenderedDiffLine{Kind: RenderedLineHunk, Content: hunk.Header},
		})
		side.Rows = append(side.Rows, reconcileHunk(hunk)...)
	}

	side.LeftNumWidth, side.RightNumWidth = sideBySideNumWidths(side.Rows)
	return side
}

// buildSideBySideFromRendered adapts an already-rendered unified model
// (summaries, error messages) into the split-view shape so layout
// toggling always has something to show.
func buildSideBySideFromRendered(rendered *RenderedFile) *SideBySideRenderedFile {
	side := &SideBySideRenderedFile{Title: rendered.Title}

	for i := range rendered.Lines {
		line := rendered.Lines[i]
		switch line.Kind {
		case RenderedLineAdd:
			side.Rows = append(side.Rows, SideBySideRenderedRow{
				Right: &RenderedSideCell{Kind: line.Kind, LineNumber: line.NewLine, Prefix: "+", Content: line.Content},
			})
		case RenderedLineRemove:
			side.Rows = append(side.Rows, SideBySideRenderedRow{
				Left: &RenderedSideCell{Kind: line.Kind, LineNumber: line.OldLine, Prefix: "-", Content: line.Content},
			})
		case RenderedLineContext:
			side.Rows = append(side.Rows, SideBySideRenderedRow{
				Left:  &RenderedSideCell{Kind: line.Kind, LineNumber: line.OldLine, Prefix: " ", Content: line.Content},
				Right: &RenderedSideCell{Kind: line.Kind, LineNumber: line.NewLine, Prefix: " ", Content: line.Content},
			})
		default:
			side.Rows = append(side.Rows, SideBySideRenderedRow{Shared: &rendered.Lines[i]})
		}
	}

	side.LeftNumWidth, side.RightNumWidth = sideBySideNumWidths(side.Rows)
	return side
}

func sideBySideNumWidths(rows []SideBySideRenderedRow) (leftWidth int, rightWidth int) {
	maxLeft := 0
	maxRight := 0
	for _, row := range rows {
		if row.Left != nil && row.Left.LineNumber > maxLeft {
			maxLeft = row.Left.LineNumber
		}
		if row.Right != nil && row.Right.LineNumber > maxRight {
			maxRight = row.Right.LineNumber
		}
	}
	return digitCount(maxLeft), digitCount(maxRight)
}
