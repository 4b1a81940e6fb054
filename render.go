package main

// RenderedLineKind classifies a row of the unified render model.
type RenderedLineKind int

const (
	RenderedLineContext RenderedLineKind = iota
	RenderedLineAdd
	RenderedLineRemove
	RenderedLineHunk
	RenderedLineMeta
)

// RenderedDiffLine is one row of the unified view. OldLine and NewLine
// are 1-based; zero means the row has no position on that side (hunk
// headers, metadata, "\ No newline" markers).
type RenderedDiffLine struct {
	Kind    RenderedLineKind
	OldLine int
	NewLine int
	Content string
}

// RenderedFile is the unified render model for one file.
type RenderedFile struct {
	Title string
	Lines []RenderedDiffLine
}

// buildRenderedFile flattens a parsed file into unified rows with
// running line counters. Metadata rows come first, then each hunk's
// header followed by its content.
func buildRenderedFile(file *DiffFile) *RenderedFile {
	rendered := &RenderedFile{Title: file.DisplayPath}

	for _, meta := range file.MetaLines {
		rendered.Lines = append(rendered.Lines, RenderedDiffLine{Kind: RenderedLineMeta, Content: meta})
	}

	for _, hunk := range file.Hunks {
		rendered.Lines = append(rendered.Lines, RenderedDiffLine{Kind: RenderedLineHunk, Content: hunk.Header})

		oldLine := hunk.OldStart
		newLine := hunk.NewStart
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineContext:
				rendered.Lines = append(rendered.Lines, RenderedDiffLine{
					Kind:    RenderedLineContext,
					OldLine: oldLine,
					NewLine: newLine,
					Content: diffLineBody(line.Content),
				})
				oldLine++
				newLine++
			case DiffLineAdd:
				rendered.Lines = append(rendered.Lines, RenderedDiffLine{
					Kind:    RenderedLineAdd,
					NewLine: newLine,
					Content: diffLineBody(line.Content),
				})
				newLine++
			case DiffLineDelete:
				rendered.Lines = append(rendered.Lines, RenderedDiffLine{
					Kind:    RenderedLineRemove,
					OldLine: oldLine,
					Content: diffLineBody(line.Content),
				})
				oldLine++
			case DiffLineNoNewline:
				rendered.Lines = append(rendered.Lines, RenderedDiffLine{
					Kind:    RenderedLineMeta,
					Content: line.Content,
				})
			}
		}
	}

	return rendered
}

// buildMetaRenderedFile wraps plain text lines in the rendered model
// so the viewer pane can show status and summary text.
func buildMetaRenderedFile(title string, lines []string) *RenderedFile {
	rendered := &RenderedFile{Title: title}
	for _, line := range lines {
		rendered.Lines = append(rendered.Lines, RenderedDiffLine{Kind: RenderedLineMeta, Content: line})
	}
	return rendered
}

// renderedGutterWidth is the column width of the line-number gutter:
// both counters, a separator space between them, the sign column and a
// trailing space.
func renderedGutterWidth(rendered *RenderedFile) int {
	maxOld := 0
	maxNew := 0
	for _, line := range rendered.Lines {
		if line.OldLine > maxOld {
			maxOld = line.OldLine
		}
		if line.NewLine > maxNew {
			maxNew = line.NewLine
		}
	}
	return digitCount(maxOld) + 1 + digitCount(maxNew) + 1 + 2
}

func digitCount(n int) int {
	if n < 10 {
		return 1
	}
	count := 0
	for n > 0 {
		count++
		n /= 10
	}
	return count
}
