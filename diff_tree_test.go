package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parsedFilesForTree(t *testing.T, paths ...string) []*DiffFile {
	t.Helper()
	doc := parseUnifiedDiff(diffForPaths(paths...))
	require.Len(t, doc.Files, len(paths))
	return doc.Files
}

func TestBuildDiffTreeForSection_GroupsFilesByDirectory(t *testing.T) {
	files := parsedFilesForTree(t, "pkg/a.go", "pkg/sub/b.go", "README.md")

	roots, treePaths, ordered := buildDiffTreeForSection(DiffSectionUnstaged, files)

	require.Equal(t, []string{"pkg/a.go", "pkg/sub/b.go", "README.md"}, ordered)
	require.Len(t, roots, 2)

	pkg := roots[0]
	require.Equal(t, "pkg", pkg.Data.Name)
	require.True(t, pkg.Data.IsDir)
	require.Equal(t, DiffTreeNodeDirectory, pkg.Data.NodeKind)
	require.Equal(t, 2, pkg.Data.TouchedFiles)
	require.Len(t, pkg.Children, 2)
	require.Equal(t, "a.go", pkg.Children[0].Data.Name)
	require.Equal(t, "sub", pkg.Children[1].Data.Name)
	require.Equal(t, "b.go", pkg.Children[1].Children[0].Data.Name)

	readme := roots[1]
	require.Equal(t, "README.md", readme.Data.Name)
	require.False(t, readme.Data.IsDir)
	require.Equal(t, DiffTreeNodeFile, readme.Data.NodeKind)
	require.NotNil(t, readme.Data.File)

	require.Equal(t, []int{0, 0}, treePaths["pkg/a.go"])
	require.Equal(t, []int{0, 1, 0}, treePaths["pkg/sub/b.go"])
	require.Equal(t, []int{1}, treePaths["README.md"])
}

func TestBuildDiffTreeForSection_PreservesDiffOrder(t *testing.T) {
	files := parsedFilesForTree(t, "z.txt", "a.txt", "m/x.txt")

	roots, _, ordered := buildDiffTreeForSection(DiffSectionStaged, files)

	require.Equal(t, []string{"z.txt", "a.txt", "m/x.txt"}, ordered)
	require.Equal(t, "z.txt", roots[0].Data.Name)
	require.Equal(t, "a.txt", roots[1].Data.Name)
	require.Equal(t, "m", roots[2].Data.Name)
}

func TestBuildDiffTreeForSection_DirectoriesAggregateStats(t *testing.T) {
	doc := parseUnifiedDiff(
		diffForPathWithStats("pkg/a.go", 3, 0) + diffForPathWithStats("pkg/b.go", 0, 2),
	)
	require.Len(t, doc.Files, 2)

	roots, _, _ := buildDiffTreeForSection(DiffSectionUnstaged, doc.Files)
	require.Len(t, roots, 1)

	pkg := roots[0]
	require.Equal(t, 3, pkg.Data.Additions)
	require.Equal(t, 2, pkg.Data.Deletions)
	require.Equal(t, 2, pkg.Data.TouchedFiles)

	require.Equal(t, 3, pkg.Children[0].Data.Additions)
	require.Equal(t, 0, pkg.Children[0].Data.Deletions)
	require.Equal(t, 0, pkg.Children[1].Data.Additions)
	require.Equal(t, 2, pkg.Children[1].Data.Deletions)
}

func TestBuildDiffTreeForSection_NodeKeysEmbedSection(t *testing.T) {
	files := parsedFilesForTree(t, "pkg/a.go")

	unstagedRoots, _, _ := buildDiffTreeForSection(DiffSectionUnstaged, files)
	stagedRoots, _, _ := buildDiffTreeForSection(DiffSectionStaged, files)

	require.NotEqual(t, unstagedRoots[0].Data.NodeKey, stagedRoots[0].Data.NodeKey)
	require.NotEqual(t,
		unstagedRoots[0].Children[0].Data.NodeKey,
		stagedRoots[0].Children[0].Data.NodeKey,
	)
}

func TestBuildDiffTreeForSection_SkipsNilAndPathlessFiles(t *testing.T) {
	files := parsedFilesForTree(t, "a.txt")
	files = append(files, nil, &DiffFile{})

	roots, _, ordered := buildDiffTreeForSection(DiffSectionUnstaged, files)
	require.Len(t, roots, 1)
	require.Equal(t, []string{"a.txt"}, ordered)
}

func TestBuildDiffTreeForSection_RepeatedPathCountsOnce(t *testing.T) {
	doc := parseUnifiedDiff(
		diffForPathWithStats("pkg/a.go", 3, 0) + diffForPathWithStats("pkg/a.go", 3, 0),
	)
	require.Len(t, doc.Files, 2)

	roots, treePaths, ordered := buildDiffTreeForSection(DiffSectionUnstaged, doc.Files)
	require.Equal(t, []string{"pkg/a.go"}, ordered)
	require.Len(t, roots, 1)

	pkg := roots[0]
	require.Len(t, pkg.Children, 1)
	require.Equal(t, 3, pkg.Data.Additions)
	require.Equal(t, 0, pkg.Data.Deletions)
	require.Equal(t, 1, pkg.Data.TouchedFiles)
	require.Equal(t, []int{0, 0}, treePaths["pkg/a.go"])
}

func TestNormalizeDiffSections(t *testing.T) {
	require.Equal(t, defaultDiffSections(), normalizeDiffSections(nil))
	require.Equal(t, defaultDiffSections(), normalizeDiffSections([]DiffSection{"bogus"}))
	require.Equal(t,
		[]DiffSection{DiffSectionFiles},
		normalizeDiffSections([]DiffSection{DiffSectionFiles, DiffSectionFiles, "bogus"}),
	)
	require.Equal(t,
		[]DiffSection{DiffSectionStaged, DiffSectionUnstaged},
		normalizeDiffSections([]DiffSection{DiffSectionStaged, DiffSectionUnstaged}),
	)
}

func TestDiffSectionDisplayNameAndOpposite(t *testing.T) {
	require.Equal(t, "Unstaged", DiffSectionUnstaged.DisplayName())
	require.Equal(t, "Staged", DiffSectionStaged.DisplayName())
	require.Equal(t, "Files", DiffSectionFiles.DisplayName())

	require.Equal(t, DiffSectionStaged, DiffSectionUnstaged.Opposite())
	require.Equal(t, DiffSectionUnstaged, DiffSectionStaged.Opposite())
	require.Equal(t, DiffSectionFiles, DiffSectionFiles.Opposite())
}
