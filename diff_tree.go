package main

import (
	"strings"

	t "github.com/darrenburns/terma"
)

type DiffTreeNodeKind int

const (
	DiffTreeNodeUnknown DiffTreeNodeKind = iota
	DiffTreeNodeSection
	DiffTreeNodeDirectory
	DiffTreeNodeFile
)

// DiffTreeNodeData is the payload of one sidebar tree node. Section
// nodes aggregate a whole change space, directory nodes aggregate
// their subtree, file nodes point at the parsed file.
type DiffTreeNodeData struct {
	Name         string
	Path         string
	IsDir        bool
	Additions    int
	Deletions    int
	TouchedFiles int
	Section      DiffSection
	NodeKind     DiffTreeNodeKind
	NodeKey      string
	File         *DiffFile
}

type diffTreeBuilderNode struct {
	data     DiffTreeNodeData
	children []*diffTreeBuilderNode
	byName   map[string]*diffTreeBuilderNode
}

// buildDiffTreeForSection groups a section's files into a directory
// tree, preserving diff order for siblings. It returns the tree roots,
// a map from file path to that file's tree path relative to the
// section node, and the file paths in diff order.
func buildDiffTreeForSection(section DiffSection, files []*DiffFile) ([]t.TreeNode[DiffTreeNodeData], map[string][]int, []string) {
	root := &diffTreeBuilderNode{byName: map[string]*diffTreeBuilderNode{}}
	orderedFilePaths := make([]string, 0, len(files))
	seenPaths := map[string]bool{}

	for _, file := range files {
		if file == nil || file.DisplayPath == "" {
			continue
		}
		// A path repeated in the payload gets one node; counting it
		// again would inflate every ancestor's stats.
		if seenPaths[file.DisplayPath] {
			continue
		}
		seenPaths[file.DisplayPath] = true
		orderedFilePaths = append(orderedFilePaths, file.DisplayPath)

		segments := strings.Split(file.DisplayPath, "/")
		node := root
		for i, segment := range segments {
			isLeaf := i == len(segments)-1
			joined := strings.Join(segments[:i+1], "/")

			child, ok := node.byName[segment]
			if !ok {
				child = &diffTreeBuilderNode{byName: map[string]*diffTreeBuilderNode{}}
				if isLeaf {
					child.data = DiffTreeNodeData{
						Name:     segment,
						Path:     file.DisplayPath,
						Section:  section,
						NodeKind: DiffTreeNodeFile,
						NodeKey:  diffFileNodeKey(section, file.DisplayPath),
						File:     file,
					}
				} else {
					child.data = DiffTreeNodeData{
						Name:     segment,
						Path:     joined,
						IsDir:    true,
						Section:  section,
						NodeKind: DiffTreeNodeDirectory,
						NodeKey:  diffDirectoryNodeKey(section, joined),
					}
				}
				node.byName[segment] = child
				node.children = append(node.children, child)
			}

			child.data.Additions += file.Additions
			child.data.Deletions += file.Deletions
			if child.data.IsDir {
				child.data.TouchedFiles++
			}
			node = child
		}
	}

	roots := make([]t.TreeNode[DiffTreeNodeData], 0, len(root.children))
	filePathToTreePath := map[string][]int{}
	for idx, child := range root.children {
		roots = append(roots, finishDiffTreeNode(child, []int{idx}, filePathToTreePath))
	}
	return roots, filePathToTreePath, orderedFilePaths
}

func finishDiffTreeNode(node *diffTreeBuilderNode, treePath []int, filePathToTreePath map[string][]int) t.TreeNode[DiffTreeNodeData] {
	if node.data.NodeKind == DiffTreeNodeFile {
		filePathToTreePath[node.data.Path] = clonePath(treePath)
	}

	children := make([]t.TreeNode[DiffTreeNodeData], 0, len(node.children))
	for idx, child := range node.children {
		children = append(children, finishDiffTreeNode(child, append(clonePath(treePath), idx), filePathToTreePath))
	}
	return t.TreeNode[DiffTreeNodeData]{Data: node.data, Children: children}
}

func clonePath(path []int) []int {
	cloned := make([]int, len(path))
	copy(cloned, path)
	return cloned
}
