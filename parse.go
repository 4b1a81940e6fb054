package main

import (
	"regexp"
	"strconv"
	"strings"
)

// DiffLineKind classifies one content line inside a hunk.
type DiffLineKind int

const (
	DiffLineContext DiffLineKind = iota
	DiffLineAdd
	DiffLineDelete
	DiffLineNoNewline
)

// DiffLine is one raw line of hunk content, marker character included.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffHunk is one contiguous change block delimited by an @@ header.
type DiffHunk struct {
	Header   string
	OldStart int
	NewStart int
	Lines    []DiffLine
}

// DiffFile is one file's worth of diff: the diff --git header, any
// metadata lines that precede the first hunk, and the hunks themselves.
type DiffFile struct {
	Header    string
	OldPath   string
	NewPath   string
	MetaLines []string
	Hunks     []*DiffHunk

	// Derived at parse time; the tree, sidebar and viewer title all
	// consume these so they are computed once rather than per render.
	DisplayPath string
	Additions   int
	Deletions   int
}

// DiffDocument is the parsed form of one complete diff payload.
type DiffDocument struct {
	Files []*DiffFile
}

const (
	diffGitPrefix = "diff --git"
	oldPathPrefix = "--- a/"
	newPathPrefix = "+++ b/"
	hunkPrefix    = "@@ "
)

var hunkHeaderPattern = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// parseUnifiedDiff converts raw unified-diff text into a DiffDocument.
// It never fails: malformed input degrades to an empty or partial
// document. Content before the first "diff --git" header is discarded.
func parseUnifiedDiff(text string) *DiffDocument {
	doc := &DiffDocument{}
	if text == "" {
		return doc
	}

	var file *DiffFile
	var hunk *DiffHunk

	closeHunk := func() {
		if hunk != nil && file != nil {
			file.Hunks = append(file.Hunks, hunk)
		}
		hunk = nil
	}
	closeFile := func() {
		closeHunk()
		if file != nil {
			finalizeDiffFile(file)
			doc.Files = append(doc.Files, file)
		}
		file = nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		// A trailing newline terminates the final line, it does not
		// open an empty one.
		lines = lines[:len(lines)-1]
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, diffGitPrefix):
			closeFile()
			file = &DiffFile{Header: line}

		case strings.HasPrefix(line, oldPathPrefix):
			if file != nil && file.OldPath == "" {
				file.OldPath = line[len(oldPathPrefix):]
			}

		case strings.HasPrefix(line, newPathPrefix):
			if file != nil && file.NewPath == "" {
				file.NewPath = line[len(newPathPrefix):]
			}

		case strings.HasPrefix(line, hunkPrefix):
			if file == nil {
				continue
			}
			closeHunk()
			oldStart, newStart := parseHunkStarts(line)
			hunk = &DiffHunk{Header: line, OldStart: oldStart, NewStart: newStart}

		default:
			if hunk != nil {
				hunk.Lines = append(hunk.Lines, DiffLine{Kind: classifyDiffLine(line), Content: line})
			} else if file != nil {
				file.MetaLines = append(file.MetaLines, line)
			}
		}
	}
	closeFile()

	return doc
}

// parseHunkStarts extracts the old/new starting line numbers from an
// @@ header. Headers that don't match the expected shape yield 0/0
// rather than an error.
func parseHunkStarts(header string) (oldStart int, newStart int) {
	match := hunkHeaderPattern.FindStringSubmatch(header)
	if match == nil {
		return 0, 0
	}
	oldStart, _ = strconv.Atoi(match[1])
	newStart, _ = strconv.Atoi(match[2])
	return oldStart, newStart
}

func classifyDiffLine(line string) DiffLineKind {
	if line == "" {
		return DiffLineContext
	}
	switch line[0] {
	case '+':
		return DiffLineAdd
	case '-':
		return DiffLineDelete
	case '\\':
		return DiffLineNoNewline
	default:
		return DiffLineContext
	}
}

func finalizeDiffFile(file *DiffFile) {
	file.DisplayPath = diffFileDisplayPath(file)
	for _, hunk := range file.Hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				file.Additions++
			case DiffLineDelete:
				file.Deletions++
			}
		}
	}
}

func diffFileDisplayPath(file *DiffFile) string {
	if file.NewPath != "" {
		return file.NewPath
	}
	if file.OldPath != "" {
		return file.OldPath
	}
	return displayPathFromHeader(file.Header)
}

// displayPathFromHeader is the fallback for files whose ---/+++ lines
// never appeared (e.g. binary files, mode-only changes). It takes the
// b-side path from `diff --git a/<x> b/<y>`.
func displayPathFromHeader(header string) string {
	rest := strings.TrimPrefix(header, diffGitPrefix)
	idx := strings.Index(rest, " b/")
	if idx < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[idx+len(" b/"):])
}
