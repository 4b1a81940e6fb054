package main

import "fmt"

// DiffSection identifies which change space a sidebar node belongs to:
// the git working tree, the index, or a provider-defined flat file list
// (used when the diff arrives over stdin).
type DiffSection string

const (
	DiffSectionUnstaged DiffSection = "unstaged"
	DiffSectionStaged   DiffSection = "staged"
	DiffSectionFiles    DiffSection = "files"
)

func defaultDiffSections() []DiffSection {
	return []DiffSection{DiffSectionUnstaged, DiffSectionStaged}
}

// normalizeDiffSections drops unknown and duplicate sections, falling
// back to the defaults when nothing usable remains.
func normalizeDiffSections(sections []DiffSection) []DiffSection {
	seen := map[DiffSection]bool{}
	normalized := make([]DiffSection, 0, len(sections))
	for _, section := range sections {
		if !isKnownDiffSection(section) || seen[section] {
			continue
		}
		seen[section] = true
		normalized = append(normalized, section)
	}
	if len(normalized) == 0 {
		return defaultDiffSections()
	}
	return normalized
}

func isKnownDiffSection(section DiffSection) bool {
	switch section {
	case DiffSectionUnstaged, DiffSectionStaged, DiffSectionFiles:
		return true
	}
	return false
}

func (s DiffSection) Opposite() DiffSection {
	switch s {
	case DiffSectionStaged:
		return DiffSectionUnstaged
	case DiffSectionUnstaged:
		return DiffSectionStaged
	default:
		return s
	}
}

func (s DiffSection) DisplayName() string {
	switch s {
	case DiffSectionStaged:
		return "Staged"
	case DiffSectionFiles:
		return "Files"
	default:
		return "Unstaged"
	}
}

// Node keys embed the section so the same path can appear under both
// staged and unstaged without colliding in tree state.

func diffSectionRootNodeKey(section DiffSection) string {
	return fmt.Sprintf("%s::section", section)
}

func diffFileNodeKey(section DiffSection, path string) string {
	return fmt.Sprintf("%s::%s", section, path)
}

func diffDirectoryNodeKey(section DiffSection, path string) string {
	return fmt.Sprintf("%s::dir::%s", section, path)
}
