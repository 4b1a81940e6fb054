package main

import (
	"fmt"
	"path/filepath"
	"strings"

	t "github.com/darrenburns/terma"
)

const (
	diffFilesTreeID      = "gdv-files-tree"
	diffFilesScrollID    = "gdv-files-scroll"
	diffFilesFilterID    = "gdv-files-filter"
	diffViewerScrollID   = "gdv-viewer-scroll"
	diffSplitPaneID      = "gdv-split"
	diffCommandPaletteID = "gdv-command-palette"
	diffThemesPalette    = "Themes"
)

type DiffLayoutMode int

const (
	DiffLayoutUnified DiffLayoutMode = iota
	DiffLayoutSideBySide
)

type ViewerInitialState struct {
	LayoutMode      DiffLayoutMode
	SidebarVisible  bool
	ThemeName       string
	ShowChangeSigns bool
}

func DefaultViewerInitialState() ViewerInitialState {
	return ViewerInitialState{
		LayoutMode:      DiffLayoutUnified,
		SidebarVisible:  true,
		ThemeName:       t.ThemeNameCatppuccin,
		ShowChangeSigns: false,
	}
}

func normalizeViewerInitialState(initial ViewerInitialState) ViewerInitialState {
	defaults := DefaultViewerInitialState()

	switch initial.LayoutMode {
	case DiffLayoutUnified, DiffLayoutSideBySide:
	default:
		initial.LayoutMode = defaults.LayoutMode
	}

	parsedThemeName, err := parseThemeName(initial.ThemeName)
	if err != nil {
		initial.ThemeName = defaults.ThemeName
	} else {
		initial.ThemeName = parsedThemeName
	}

	return initial
}

type diffSectionState struct {
	files              []*DiffFile
	roots              []t.TreeNode[DiffTreeNodeData]
	renderedByPath     map[string]*RenderedFile
	sideRenderedByPath map[string]*SideBySideRenderedFile
	fileByPath         map[string]*DiffFile
	filePathToTreePath map[string][]int
	orderedFilePaths   []string
	lastSelectedPath   string
	additions          int
	deletions          int
}

// Viewer is a read-only terminal viewer for unified git diffs.
type Viewer struct {
	provider DiffProvider

	repoRoot string
	branch   string
	loadErr  string

	activePath  string
	activeIsDir bool
	activeKind  DiffTreeNodeKind

	sectionOrder   []DiffSection
	activeSection  DiffSection
	initialSection DiffSection
	sections       map[DiffSection]*diffSectionState

	treeState       *t.TreeState[DiffTreeNodeData]
	treeScrollState *t.ScrollState
	treeFilterState *t.FilterState
	treeFilterInput *t.TextInputState
	diffScrollState *t.ScrollState
	diffViewState   *DiffViewState
	splitState      *t.SplitPaneState
	commandPalette  *t.CommandPaletteState

	treeFilterVisible    bool
	treeFilterNoMatches  bool
	diffLayoutMode       DiffLayoutMode
	diffHideChangeSigns  bool
	manualRefreshEnabled bool
	focusedWidgetID      string
	sidebarVisible       bool
}

func NewViewer(provider DiffProvider, staged bool, initialState ViewerInitialState) *Viewer {
	initialState = normalizeViewerInitialState(initialState)
	t.SetTheme(initialState.ThemeName)

	sectionOrder := defaultDiffSections()
	if customSectionProvider, ok := provider.(DiffSectionsProvider); ok {
		sectionOrder = normalizeDiffSections(customSectionProvider.Sections())
	}

	initialSection := sectionOrder[0]
	if staged && containsSection(sectionOrder, DiffSectionStaged) {
		initialSection = DiffSectionStaged
	}

	manualRefreshEnabled := true
	if manualRefreshProvider, ok := provider.(ManualRefreshCapable); ok {
		manualRefreshEnabled = manualRefreshProvider.ManualRefreshEnabled()
	}

	app := &Viewer{
		provider:             provider,
		sectionOrder:         sectionOrder,
		activeSection:        initialSection,
		initialSection:       initialSection,
		sections:             newDiffSectionStateMap(sectionOrder),
		treeState:            t.NewTreeState([]t.TreeNode[DiffTreeNodeData]{}),
		treeScrollState:      t.NewScrollState(),
		treeFilterState:      t.NewFilterState(),
		treeFilterInput:      t.NewTextInputState(""),
		diffScrollState:      t.NewScrollState(),
		diffViewState:        NewDiffViewState(buildMetaRenderedFile("Diff", []string{"Loading diff..."})),
		splitState:           t.NewSplitPaneState(0.30),
		sidebarVisible:       initialState.SidebarVisible,
		diffLayoutMode:       initialState.LayoutMode,
		diffHideChangeSigns:  !initialState.ShowChangeSigns,
		manualRefreshEnabled: manualRefreshEnabled,
	}
	app.commandPalette = app.newCommandPalette()
	app.refreshDiff()
	t.RequestFocus(diffViewerScrollID)
	return app
}

func newDiffSectionState() *diffSectionState {
	return &diffSectionState{
		roots:              []t.TreeNode[DiffTreeNodeData]{},
		renderedByPath:     map[string]*RenderedFile{},
		sideRenderedByPath: map[string]*SideBySideRenderedFile{},
		fileByPath:         map[string]*DiffFile{},
		filePathToTreePath: map[string][]int{},
		orderedFilePaths:   []string{},
	}
}

func newDiffSectionStateMap(sectionOrder []DiffSection) map[DiffSection]*diffSectionState {
	states := map[DiffSection]*diffSectionState{}
	for _, section := range sectionOrder {
		states[section] = newDiffSectionState()
	}
	return states
}

func containsSection(sections []DiffSection, target DiffSection) bool {
	for _, section := range sections {
		if section == target {
			return true
		}
	}
	return false
}

func (a *Viewer) hasSection(section DiffSection) bool {
	return containsSection(a.sectionOrder, section)
}

func (a *Viewer) canSwitchSections() bool {
	return len(a.sectionOrder) > 1
}

func (a *Viewer) sectionIndex(section DiffSection) int {
	for idx, value := range a.sectionOrder {
		if value == section {
			return idx
		}
	}
	return -1
}

func (a *Viewer) orderedSectionsFrom(start DiffSection) []DiffSection {
	if len(a.sectionOrder) == 0 {
		return nil
	}
	startIdx := a.sectionIndex(start)
	if startIdx < 0 {
		startIdx = 0
	}

	ordered := make([]DiffSection, 0, len(a.sectionOrder))
	for i := 0; i < len(a.sectionOrder); i++ {
		ordered = append(ordered, a.sectionOrder[(startIdx+i)%len(a.sectionOrder)])
	}
	return ordered
}

func (a *Viewer) orderedSectionsAfter(start DiffSection) []DiffSection {
	ordered := a.orderedSectionsFrom(start)
	if len(ordered) <= 1 {
		return nil
	}
	return ordered[1:]
}

func (a *Viewer) findSectionWithFiles(start DiffSection) (DiffSection, bool) {
	for _, section := range a.orderedSectionsFrom(start) {
		if a.sectionHasFiles(section) {
			return section, true
		}
	}
	return "", false
}

func (a *Viewer) sectionState(section DiffSection) *diffSectionState {
	if a.sections == nil {
		return nil
	}
	return a.sections[section]
}

func (a *Viewer) activeState() *diffSectionState {
	return a.sectionState(a.activeSection)
}

func (a *Viewer) setActiveSection(section DiffSection) {
	if section == "" || !a.hasSection(section) {
		section = a.initialSection
	}
	a.activeSection = section
}

func (a *Viewer) sectionHasFiles(section DiffSection) bool {
	state := a.sectionState(section)
	return state != nil && len(state.orderedFilePaths) > 0
}

func (a *Viewer) sectionFileCount(section DiffSection) int {
	state := a.sectionState(section)
	if state == nil {
		return 0
	}
	return len(state.orderedFilePaths)
}

func (a *Viewer) totalFileCount() int {
	total := 0
	for _, section := range a.sectionOrder {
		total += a.sectionFileCount(section)
	}
	return total
}

func (a *Viewer) filteredFilePathsForSection(section DiffSection, query string, options t.FilterOptions) []string {
	state := a.sectionState(section)
	if state == nil || len(state.orderedFilePaths) == 0 {
		return nil
	}
	if query == "" {
		return state.orderedFilePaths
	}
	return collectFilteredTreeFilePaths(state.roots, query, options)
}

func (a *Viewer) switchToFirstSelectableFile(section DiffSection) bool {
	state := a.sectionState(section)
	if state == nil || len(state.orderedFilePaths) == 0 {
		return false
	}
	a.setActiveSection(section)
	return a.selectFilePath(state.orderedFilePaths[0])
}

func (a *Viewer) setActiveSectionSummary(section DiffSection) {
	a.setActiveSection(section)
	state := a.sectionState(section)
	a.activePath = section.DisplayName() + " changes"
	a.activeIsDir = false
	a.activeKind = DiffTreeNodeSection
	if state == nil {
		return
	}
	a.diffViewState.SetRendered(buildSectionSummaryRenderedFile(section, state))
	a.diffScrollState.SetOffset(0)
}

func (a *Viewer) setLoadError(message string) {
	a.loadErr = message
	a.sections = newDiffSectionStateMap(a.sectionOrder)
	a.setActiveSection(a.initialSection)
	a.activePath = ""
	a.activeIsDir = false
	a.activeKind = DiffTreeNodeUnknown
	roots := make([]t.TreeNode[DiffTreeNodeData], 0, len(a.sectionOrder))
	for _, section := range a.sectionOrder {
		roots = append(roots, t.TreeNode[DiffTreeNodeData]{
			Data: DiffTreeNodeData{
				Name:     section.DisplayName(),
				Path:     string(section),
				IsDir:    true,
				Section:  section,
				NodeKind: DiffTreeNodeSection,
				NodeKey:  diffSectionRootNodeKey(section),
			},
			Children: []t.TreeNode[DiffTreeNodeData]{},
		})
	}
	a.treeState.Nodes.Set(roots)
	a.treeState.CursorPath.Set(nil)
	a.treeState.Collapsed.Set(map[string]bool{})
	a.treeFilterNoMatches = false
	a.diffViewState.SetRendered(messageToRendered("Error", a.errorMessage()))
	a.diffScrollState.SetOffset(0)
}

func (a *Viewer) Keybinds() []t.Keybind {
	showFilterFiles := a.focusedWidgetID == diffFilesTreeID || a.focusedWidgetID == diffViewerScrollID
	return []t.Keybind{
		{Key: "n", Name: "Next file", Action: func() { a.moveFileCursor(1) }},
		{Key: "]", Name: "Next file", Action: func() { a.moveFileCursor(1) }},
		{Key: "p", Name: "Prev file", Action: func() { a.moveFileCursor(-1) }},
		{Key: "[", Name: "Prev file", Action: func() { a.moveFileCursor(-1) }},
		{Key: "/", Name: "Filter files", Action: a.openTreeFilter, Hidden: !showFilterFiles},
		{Key: "b", Name: "Toggle sidebar", Action: a.toggleSidebar, Hidden: true},
		{Key: "escape", Name: "Clear filter", Action: a.handleEscape, Hidden: true},
		{Key: "r", Name: "Refresh", Action: a.manualRefresh, Hidden: true},
		{Key: "s", Name: "Switch section", Action: a.switchSectionFocus, Hidden: true},
		{Key: "v", Name: "Toggle side-by-side", Action: a.toggleDiffLayoutMode, Hidden: true},
		{Key: "ctrl+p", Name: "Command palette", Action: a.togglePalette},
		{Key: "t", Name: "Theme menu", Action: a.openThemePalette, Hidden: true},
		{Key: "q", Name: "Quit", Action: t.Quit},
	}
}

func (a *Viewer) Build(ctx t.BuildContext) t.Widget {
	a.syncFocusState(ctx)
	theme := ctx.Theme()
	body := a.buildRightPane(theme)
	if a.sidebarVisible {
		body = t.SplitPane{
			ID:                diffSplitPaneID,
			State:             a.splitState,
			Orientation:       t.SplitHorizontal,
			DividerSize:       1,
			MinPaneSize:       20,
			DividerBackground: theme.Background,
			DividerForeground: t.NewGradient(theme.Background, theme.TextDisabled, theme.Background).WithAngle(0),
			Style: t.Style{
				Width:           t.Flex(1),
				Height:          t.Flex(1),
				BackgroundColor: theme.Background,
			},
			First:  a.buildLeftPane(ctx, theme),
			Second: a.buildRightPane(theme),
		}
	}

	return t.Stack{
		Style: t.Style{
			Width:           t.Flex(1),
			Height:          t.Flex(1),
			BackgroundColor: theme.Background,
		},
		Children: []t.Widget{
			t.Dock{
				Style: t.Style{
					BackgroundColor: theme.Background,
				},
				Top: []t.Widget{a.buildHeader(theme)},
				Bottom: []t.Widget{
					t.Row{
						Style: t.Style{
							Width:           t.Flex(1),
							BackgroundColor: theme.Background,
						},
						Children: []t.Widget{
							t.Spacer{Width: t.Flex(1)},
							t.KeybindBar{
								Style: t.Style{
									Width:           t.Auto,
									BackgroundColor: theme.Background,
									Padding:         t.EdgeInsetsXY(1, 0),
								},
							},
							t.Spacer{Width: t.Flex(1)},
						},
					},
				},
				Body: body,
			},
			t.CommandPalette{
				ID:            diffCommandPaletteID,
				State:         a.commandPalette,
				Position:      t.FloatPositionTopCenter,
				Offset:        t.Offset{Y: 1},
				BackdropColor: t.Black.WithAlpha(0.05),
			},
		},
	}
}

func (a *Viewer) buildHeader(theme t.ThemeData) t.Widget {
	repoName := "(unknown repo)"
	if a.repoRoot != "" {
		repoName = filepath.Base(a.repoRoot)
	}

	children := []t.Widget{
		t.Label(repoName, t.LabelPrimary, theme),
	}
	if a.branch != "" {
		children = append(children,
			t.Spacer{Width: t.Cells(1)},
			t.Text{
				Content: a.branch,
				Style: t.Style{
					ForegroundColor: theme.Accent,
				},
			},
		)
	}
	if a.loadErr != "" {
		children = append(children,
			t.Spacer{Width: t.Cells(1)},
			t.Label("Error", t.LabelError, theme),
		)
	}
	children = append(children,
		t.Spacer{Width: t.Flex(1)},
		a.buildHeaderModeIndicator(theme),
		t.Spacer{Width: t.Cells(1)},
		t.Text{
			Content: themeDisplayName(t.CurrentThemeName()) + " [t]",
			Style: t.Style{
				Padding:         t.EdgeInsetsXY(1, 0),
				ForegroundColor: theme.SecondaryText,
			},
		},
	)

	return t.Row{
		Style: t.Style{
			Width:   t.Flex(1),
			Padding: t.EdgeInsets{Left: 1},
			BackgroundColor: t.NewGradient(
				theme.Surface,
				theme.Background,
				theme.Background,
				theme.SecondaryBg,
			).WithAngle(90),
		},
		Children: children,
	}
}

func (a *Viewer) buildHeaderModeIndicator(theme t.ThemeData) t.Widget {
	return t.Text{
		Spans: []t.Span{
			t.StyledSpan(a.diffLayoutModeLabel(), t.SpanStyle{Foreground: theme.Text}),
			t.PlainSpan(" "),
			t.StyledSpan("[v]", t.SpanStyle{Foreground: theme.Text}),
		},
	}
}

func (a *Viewer) diffLayoutModeLabel() string {
	if a.diffLayoutMode == DiffLayoutSideBySide {
		return "side-by-side"
	}
	return "unified"
}

func (a *Viewer) buildLeftPane(ctx t.BuildContext, theme t.ThemeData) t.Widget {
	treeWidget := t.Tree[DiffTreeNodeData]{
		ID:                diffFilesTreeID,
		State:             a.treeState,
		Filter:            a.treeFilterState,
		ScrollState:       a.treeScrollState,
		Style:             t.Style{Width: t.Flex(1), Padding: t.EdgeInsets{Left: 1}},
		ExpandIndicator:   "▼ ",
		CollapseIndicator: "▶ ",
		LeafIndicator:     " ",
		NodeID: func(node DiffTreeNodeData) string {
			if node.NodeKey != "" {
				return node.NodeKey
			}
			return node.Path
		},
		HasChildren: func(node DiffTreeNodeData) bool {
			return node.IsDir
		},
		MatchNode: func(node DiffTreeNodeData, query string, options t.FilterOptions) t.MatchResult {
			return t.MatchString(node.Name, query, options)
		},
		OnCursorChange: a.onTreeCursorChange,
	}

	sidebarFocused := ctx.IsFocused(treeWidget)
	treeWidget.RenderNodeWithMatch = a.renderTreeNode(theme, sidebarFocused)

	children := []t.Widget{
		t.Row{
			Style: t.Style{
				Width:           t.Flex(1),
				Padding:         t.EdgeInsetsXY(1, 0),
				BackgroundColor: theme.Background,
			},
			Children: []t.Widget{
				t.Text{Spans: a.sidebarHeadingSpans(theme)},
				t.Spacer{Width: t.Flex(1)},
				t.Text{Spans: a.sidebarTotalsSpans(theme)},
			},
		},
	}

	if a.shouldShowTreeFilterInput() {
		children = append(children, t.TextInput{
			ID:          diffFilesFilterID,
			State:       a.treeFilterInput,
			Placeholder: "Filter files...",
			Width:       t.Flex(1),
			Style: t.Style{
				Padding:         t.EdgeInsetsXY(1, 0),
				BackgroundColor: theme.Background,
				ForegroundColor: theme.Text,
			},
			OnChange:      a.onTreeFilterChange,
			ExtraKeybinds: a.treeFilterInputKeybinds(),
		})
	}

	treeContent := t.Widget(treeWidget)
	if a.treeFilterNoMatches {
		treeContent = a.buildTreeFilterEmptyState(theme)
	}

	children = append(children, t.Scrollable{
		ID:    diffFilesScrollID,
		State: a.treeScrollState,
		Style: t.Style{
			Width:           t.Flex(1),
			Height:          t.Flex(1),
			BackgroundColor: theme.Background,
		},
		Child: treeContent,
	})

	return t.Column{
		Height: t.Flex(1),
		Style: t.Style{
			BackgroundColor: theme.Background,
		},
		Children: children,
	}
}

func (a *Viewer) renderTreeNode(theme t.ThemeData, widgetFocused bool) func(node DiffTreeNodeData, nodeCtx t.TreeNodeContext, match t.MatchResult) t.Widget {
	highlightStyle := t.MatchHighlightStyle(theme)
	return func(node DiffTreeNodeData, nodeCtx t.TreeNodeContext, match t.MatchResult) t.Widget {
		rowStyle := t.Style{
			Width:   t.Flex(1),
			Padding: t.EdgeInsets{Right: 1},
		}
		labelStyle := t.Style{ForegroundColor: theme.Text}
		addStyle := t.Style{ForegroundColor: theme.Success}
		delStyle := t.Style{ForegroundColor: theme.Error}

		if node.NodeKind == DiffTreeNodeSection {
			labelStyle.Bold = true
			labelStyle.ForegroundColor = sectionColor(theme, node.Section)
		}

		if nodeCtx.FilteredAncestor && node.NodeKind != DiffTreeNodeSection {
			labelStyle.ForegroundColor = theme.TextMuted
		}

		if nodeCtx.Active {
			if widgetFocused {
				rowStyle.BackgroundColor = theme.ActiveCursor
				labelStyle.ForegroundColor = theme.SelectionText
				addStyle.ForegroundColor = theme.SelectionText
				delStyle.ForegroundColor = theme.SelectionText
			} else {
				rowStyle.BackgroundColor = unfocusedTreeCursorColor(theme)
			}
		}

		label := node.Name
		labelSuffix := ""
		switch node.NodeKind {
		case DiffTreeNodeSection:
			labelSuffix = fmt.Sprintf(" (%d)", node.TouchedFiles)
		case DiffTreeNodeDirectory:
			labelSuffix = "/"
		}
		label += labelSuffix

		labelWidget := t.Text{Content: label, Style: labelStyle}
		if node.NodeKind != DiffTreeNodeSection && match.Matched && len(match.Ranges) > 0 {
			spans := t.HighlightSpans(node.Name, match.Ranges, highlightStyle)
			if labelSuffix != "" {
				spans = append(spans, t.Span{Text: labelSuffix})
			}
			labelWidget = t.Text{
				Spans: spans,
				Style: labelStyle,
			}
		}

		children := []t.Widget{
			labelWidget,
			t.Spacer{Width: t.Flex(1)},
		}
		if addText, delText := nonZeroChangeTexts(node.Additions, node.Deletions); addText != "" || delText != "" {
			if addText != "" {
				children = append(children, t.Text{Content: addText, Style: addStyle})
			}
			if delText != "" {
				if addText != "" {
					children = append(children, t.Text{Content: " "})
				}
				children = append(children, t.Text{Content: delText, Style: delStyle})
			}
		}

		return t.Row{
			Style:    rowStyle,
			Children: children,
		}
	}
}

func (a *Viewer) buildRightPane(theme t.ThemeData) t.Widget {
	var viewerContent t.Widget
	if a.diffLayoutMode == DiffLayoutSideBySide {
		viewerContent = buildSideBySideDiffWidget(a.diffViewState.SideBySide(), theme, a.diffHideChangeSigns)
	} else {
		viewerContent = buildUnifiedDiffWidget(a.diffViewState.Rendered(), theme, a.diffHideChangeSigns)
	}
	if a.shouldShowDiffEmptyState() {
		viewerContent = a.buildDiffEmptyState(theme)
	}

	return t.Column{
		Height: t.Flex(1),
		Style: t.Style{
			BackgroundColor: theme.Background,
		},
		Children: []t.Widget{
			a.buildViewerTitle(theme),
			t.Scrollable{
				ID:        diffViewerScrollID,
				State:     a.diffScrollState,
				Focusable: true,
				Style: t.Style{
					Width:           t.Flex(1),
					Height:          t.Flex(1),
					BackgroundColor: theme.Background,
				},
				Child: viewerContent,
			},
		},
	}
}

func (a *Viewer) shouldShowDiffEmptyState() bool {
	return a.loadErr == "" &&
		!a.treeFilterNoMatches &&
		a.activeKind == DiffTreeNodeUnknown &&
		a.totalFileCount() == 0
}

func (a *Viewer) buildDiffEmptyState(theme t.ThemeData) t.Widget {
	heading, details := a.emptyMessageParts()
	return t.Column{
		Style: t.Style{
			Width:           t.Flex(1),
			Height:          t.Auto,
			Padding:         t.EdgeInsets{Top: 1, Left: 2, Right: 2},
			BackgroundColor: theme.Background,
		},
		Children: []t.Widget{
			t.Text{
				Content: heading,
				Wrap:    t.WrapSoft,
				Style: t.Style{
					ForegroundColor: theme.TextMuted,
					Bold:            true,
				},
			},
			t.Spacer{Height: t.Cells(1)},
			t.Text{
				Content: details,
				Wrap:    t.WrapSoft,
				Style: t.Style{
					ForegroundColor: theme.TextMuted,
				},
			},
		},
	}
}

func (a *Viewer) buildViewerTitle(theme t.ThemeData) t.Widget {
	style := t.Style{
		Padding:         t.EdgeInsetsXY(1, 0),
		BackgroundColor: theme.Background,
		ForegroundColor: theme.Text,
		Bold:            true,
	}

	title := a.viewerTitle()
	if a.activeKind != DiffTreeNodeFile {
		return t.Text{
			Content: title,
			Style:   style,
		}
	}

	var file *DiffFile
	if state := a.activeState(); state != nil {
		file = state.fileByPath[a.activePath]
	}
	if file == nil {
		return t.Text{
			Content: title,
			Style:   style,
		}
	}

	spans := []t.Span{t.BoldSpan(title)}
	if statSpans := nonZeroChangeStatSpans(file.Additions, file.Deletions, theme, true); len(statSpans) > 0 {
		spans = append(spans, t.BoldSpan(" "))
		spans = append(spans, statSpans...)
	}

	current, total, hasPosition := a.viewerFilePosition()
	if !hasPosition {
		return t.Text{Spans: spans, Style: style}
	}

	return t.Row{
		Style: t.Style{
			Padding:         style.Padding,
			BackgroundColor: style.BackgroundColor,
			ForegroundColor: style.ForegroundColor,
		},
		Children: []t.Widget{
			t.Text{
				Spans: spans,
				Style: t.Style{
					ForegroundColor: theme.Text,
					Bold:            true,
				},
			},
			t.Spacer{Width: t.Flex(1)},
			t.Text{
				Content: fmt.Sprintf("%d/%d", current, total),
				Style: t.Style{
					ForegroundColor: theme.TextMuted,
				},
			},
		},
	}
}

func (a *Viewer) viewerFilePosition() (current int, total int, ok bool) {
	if a.activeKind != DiffTreeNodeFile || a.activePath == "" {
		return 0, 0, false
	}

	state := a.activeState()
	if state == nil || len(state.orderedFilePaths) == 0 {
		return 0, 0, false
	}

	index := indexOfPath(state.orderedFilePaths, a.activePath)
	if index < 0 {
		return 0, 0, false
	}

	return index + 1, len(state.orderedFilePaths), true
}

func (a *Viewer) manualRefresh() {
	if !a.manualRefreshEnabled {
		return
	}
	a.refreshDiff()
}

func (a *Viewer) refreshDiff() {
	if repoRoot, err := a.provider.RepoRoot(); err == nil {
		a.repoRoot = repoRoot
	}
	if branch, err := a.provider.CurrentBranch(); err == nil {
		a.branch = branch
	}

	previousSelections := map[DiffSection]string{}
	for _, section := range a.sectionOrder {
		state := a.sectionState(section)
		if state == nil {
			continue
		}
		if state.lastSelectedPath != "" {
			previousSelections[section] = state.lastSelectedPath
		}
	}
	if a.activeKind == DiffTreeNodeFile && a.activePath != "" {
		previousSelections[a.activeSection] = a.activePath
	}
	previousActiveSection := a.activeSection
	if previousActiveSection == "" || !a.hasSection(previousActiveSection) {
		previousActiveSection = a.initialSection
	}

	nextSections := newDiffSectionStateMap(a.sectionOrder)

	for idx, section := range a.sectionOrder {
		raw, err := a.provider.LoadDiff(section == DiffSectionStaged)
		if err != nil {
			a.setLoadError(fmt.Sprintf("%s diff: %v", strings.ToLower(section.DisplayName()), err))
			return
		}

		doc := parseUnifiedDiff(raw)

		state := nextSections[section]
		state.files = doc.Files
		for _, file := range state.files {
			if file == nil {
				continue
			}
			state.fileByPath[file.DisplayPath] = file
			state.renderedByPath[file.DisplayPath] = buildRenderedFile(file)
			state.sideRenderedByPath[file.DisplayPath] = buildSideBySideRenderedFile(file)
			state.additions += file.Additions
			state.deletions += file.Deletions
		}

		roots, localTreePaths, orderedFilePaths := buildDiffTreeForSection(section, state.files)
		state.roots = roots
		state.orderedFilePaths = orderedFilePaths
		state.filePathToTreePath = make(map[string][]int, len(localTreePaths))
		for filePath, localPath := range localTreePaths {
			globalPath := make([]int, 0, len(localPath)+1)
			globalPath = append(globalPath, idx)
			globalPath = append(globalPath, localPath...)
			state.filePathToTreePath[filePath] = globalPath
		}

		if previous, ok := previousSelections[section]; ok {
			if _, exists := state.fileByPath[previous]; exists {
				state.lastSelectedPath = previous
			}
		}
		if state.lastSelectedPath == "" && len(state.orderedFilePaths) > 0 {
			state.lastSelectedPath = state.orderedFilePaths[0]
		}
	}

	a.loadErr = ""
	a.sections = nextSections

	roots := make([]t.TreeNode[DiffTreeNodeData], 0, len(a.sectionOrder))
	for _, section := range a.sectionOrder {
		state := a.sectionState(section)
		roots = append(roots, t.TreeNode[DiffTreeNodeData]{
			Data: DiffTreeNodeData{
				Name:         section.DisplayName(),
				Path:         string(section),
				IsDir:        true,
				Additions:    state.additions,
				Deletions:    state.deletions,
				TouchedFiles: len(state.orderedFilePaths),
				Section:      section,
				NodeKind:     DiffTreeNodeSection,
				NodeKey:      diffSectionRootNodeKey(section),
			},
			Children: state.roots,
		})
	}
	a.treeState.Nodes.Set(roots)
	a.treeState.Collapsed.Set(map[string]bool{})

	if a.totalFileCount() == 0 {
		a.activeSection = a.initialSection
		a.activePath = ""
		a.activeIsDir = false
		a.activeKind = DiffTreeNodeUnknown
		a.treeState.CursorPath.Set(nil)
		a.treeFilterNoMatches = false
		a.diffViewState.SetRendered(messageToRendered("Diff", a.emptyMessage()))
		a.diffScrollState.SetOffset(0)
		return
	}

	targetSection := previousActiveSection
	if !a.sectionHasFiles(targetSection) {
		if sectionWithFiles, ok := a.findSectionWithFiles(previousActiveSection); ok {
			targetSection = sectionWithFiles
		} else {
			targetSection = a.initialSection
		}
	}
	a.setActiveSection(targetSection)

	targetPath := ""
	state := a.sectionState(targetSection)
	if state != nil {
		targetPath = state.lastSelectedPath
		if targetPath == "" && len(state.orderedFilePaths) > 0 {
			targetPath = state.orderedFilePaths[0]
		}
	}
	if targetPath != "" {
		a.selectFilePath(targetPath)
	}
	a.syncTreeFilterSelection()
}

func (a *Viewer) moveFileCursor(delta int) {
	filePaths := a.filePathsForNavigation()
	if len(filePaths) == 0 {
		return
	}

	currentIdx := -1
	if a.activeKind == DiffTreeNodeFile && !a.activeIsDir {
		currentIdx = indexOfPath(filePaths, a.activePath)
	}

	nextIdx := 0
	if currentIdx < 0 {
		if delta < 0 {
			nextIdx = len(filePaths) - 1
		}
	} else {
		nextIdx = currentIdx + delta
		for nextIdx < 0 {
			nextIdx += len(filePaths)
		}
		nextIdx = nextIdx % len(filePaths)
	}

	a.selectFilePath(filePaths[nextIdx])
}

func (a *Viewer) treeFilterInputKeybinds() []t.Keybind {
	return []t.Keybind{
		{Key: "up", Action: func() { a.moveFileCursor(-1) }, Hidden: true},
		{Key: "down", Action: func() { a.moveFileCursor(1) }, Hidden: true},
	}
}

func (a *Viewer) selectFilePath(filePath string) bool {
	if filePath == "" {
		return false
	}
	state := a.activeState()
	if state == nil {
		return false
	}
	treePath, ok := state.filePathToTreePath[filePath]
	if !ok {
		return false
	}
	a.treeState.CursorPath.Set(clonePath(treePath))
	node, ok := a.treeState.NodeAtPath(treePath)
	if !ok {
		return false
	}
	a.onTreeCursorChange(node.Data)
	return true
}

func (a *Viewer) onTreeCursorChange(node DiffTreeNodeData) {
	if node.Section != "" {
		a.setActiveSection(node.Section)
	}
	switch node.NodeKind {
	case DiffTreeNodeSection:
		a.setActiveSectionSummary(node.Section)
	case DiffTreeNodeDirectory:
		a.setActiveDirectory(node)
	case DiffTreeNodeFile:
		a.setActiveFile(node.File)
	}
}

func (a *Viewer) setActiveFile(file *DiffFile) {
	if file == nil {
		return
	}
	a.activePath = file.DisplayPath
	a.activeIsDir = false
	a.activeKind = DiffTreeNodeFile

	state := a.activeState()
	if state == nil {
		return
	}
	state.lastSelectedPath = file.DisplayPath

	rendered, ok := state.renderedByPath[file.DisplayPath]
	if !ok {
		rendered = buildRenderedFile(file)
		state.renderedByPath[file.DisplayPath] = rendered
	}
	sideRendered, ok := state.sideRenderedByPath[file.DisplayPath]
	if !ok {
		sideRendered = buildSideBySideRenderedFile(file)
		state.sideRenderedByPath[file.DisplayPath] = sideRendered
	}
	a.diffViewState.SetRenderedPair(rendered, sideRendered)
	a.diffScrollState.SetOffset(0)
}

func (a *Viewer) setActiveDirectory(node DiffTreeNodeData) {
	if node.Section != "" {
		a.setActiveSection(node.Section)
	}
	a.activePath = node.Path
	a.activeIsDir = true
	a.activeKind = DiffTreeNodeDirectory
	a.diffViewState.SetRendered(buildDirectorySummaryRenderedFile(node))
	a.diffScrollState.SetOffset(0)
}

func (a *Viewer) switchSectionFocus() {
	if !a.canSwitchSections() {
		return
	}

	var targetSection DiffSection
	targetPath := ""
	query := a.treeFilterState.PeekQuery()
	options := a.treeFilterState.PeekOptions()

	for _, candidateSection := range a.orderedSectionsAfter(a.activeSection) {
		if query != "" {
			filtered := a.filteredFilePathsForSection(candidateSection, query, options)
			if len(filtered) == 0 {
				continue
			}
			targetSection = candidateSection
			targetPath = filtered[0]
			if state := a.sectionState(candidateSection); state != nil && state.lastSelectedPath != "" {
				if indexOfPath(filtered, state.lastSelectedPath) >= 0 {
					targetPath = state.lastSelectedPath
				}
			}
			break
		}

		if !a.sectionHasFiles(candidateSection) {
			continue
		}
		targetSection = candidateSection
		if state := a.sectionState(candidateSection); state != nil {
			targetPath = state.lastSelectedPath
			if targetPath == "" && len(state.orderedFilePaths) > 0 {
				targetPath = state.orderedFilePaths[0]
			}
		}
		if targetPath != "" {
			break
		}
	}

	if targetSection == "" || targetPath == "" {
		return
	}

	a.setActiveSection(targetSection)
	a.selectFilePath(targetPath)
	t.RequestFocus(diffFilesTreeID)
}

func (a *Viewer) toggleDiffLayoutMode() {
	if a.diffLayoutMode == DiffLayoutSideBySide {
		a.diffLayoutMode = DiffLayoutUnified
	} else {
		a.diffLayoutMode = DiffLayoutSideBySide
	}
	a.refreshCommandPaletteItems()
}

func (a *Viewer) toggleDiffChangeSigns() {
	a.diffHideChangeSigns = !a.diffHideChangeSigns
}

func (a *Viewer) toggleSidebar() {
	a.sidebarVisible = !a.sidebarVisible
	if a.sidebarVisible {
		return
	}

	switch a.focusedWidgetID {
	case diffSplitPaneID, diffFilesTreeID, diffFilesFilterID, diffFilesScrollID:
		t.RequestFocus(diffViewerScrollID)
	}
}

func (a *Viewer) openTreeFilter() {
	if !a.sidebarVisible {
		a.sidebarVisible = true
	}
	a.treeFilterVisible = true
	a.treeFilterInput.ClearSelection()
	a.treeFilterInput.CursorEnd()
	t.RequestFocus(diffFilesFilterID)
}

func (a *Viewer) handleEscape() {
	if a.clearTreeFilter() {
		return
	}
	if a.focusedWidgetID == diffFilesFilterID && a.treeFilterVisible {
		a.treeFilterVisible = false
		t.RequestFocus(diffFilesTreeID)
	}
}

func (a *Viewer) onTreeFilterChange(text string) {
	a.treeFilterVisible = true
	a.treeFilterState.Query.Set(text)
	a.syncTreeFilterSelection()
}

func (a *Viewer) clearTreeFilter() bool {
	if a.treeFilterState.PeekQuery() == "" {
		return false
	}
	a.treeFilterInput.SetText("")
	a.treeFilterState.Query.Set("")
	a.treeFilterVisible = false
	a.syncTreeFilterSelection()
	t.RequestFocus(diffFilesTreeID)
	return true
}

func (a *Viewer) shouldShowTreeFilterInput() bool {
	if a.treeFilterVisible {
		return true
	}
	if a.focusedWidgetID == diffFilesFilterID {
		return true
	}
	return a.treeFilterState.PeekQuery() != ""
}

func (a *Viewer) syncTreeFilterSelection() {
	query := a.treeFilterState.PeekQuery()
	options := a.treeFilterState.PeekOptions()
	if query == "" {
		a.treeFilterNoMatches = false
		if a.activeKind != DiffTreeNodeFile {
			if !a.switchToFirstSelectableFile(a.activeSection) {
				for _, section := range a.orderedSectionsAfter(a.activeSection) {
					if a.switchToFirstSelectableFile(section) {
						break
					}
				}
			}
		}
		return
	}

	for _, section := range a.orderedSectionsFrom(a.activeSection) {
		filtered := a.filteredFilePathsForSection(section, query, options)
		if len(filtered) == 0 {
			continue
		}
		a.treeFilterNoMatches = false
		a.setActiveSection(section)
		a.selectFilePath(filtered[0])
		return
	}
	a.setTreeFilterNoMatches(query)
}

func (a *Viewer) setTreeFilterNoMatches(query string) {
	a.treeFilterNoMatches = true
	a.treeState.CursorPath.Set(nil)
	a.activePath = ""
	a.activeIsDir = false
	a.activeKind = DiffTreeNodeUnknown
	a.diffViewState.SetRendered(messageToRendered("No matches", a.noFilterMatchesMessage(query)))
	a.diffScrollState.SetOffset(0)
}

func (a *Viewer) noFilterMatchesMessage(query string) string {
	if query == "" {
		return "No files match the current filter.\n\nPress escape to clear the filter."
	}
	return fmt.Sprintf("No files match %q.\n\nPress escape to clear the filter.", query)
}

func (a *Viewer) buildTreeFilterEmptyState(theme t.ThemeData) t.Widget {
	message := "No files match the current filter."
	if query := a.treeFilterState.PeekQuery(); query != "" {
		message = fmt.Sprintf("No files match %q.", query)
	}

	return t.Column{
		Style: t.Style{
			Width:           t.Flex(1),
			Padding:         t.EdgeInsets{Top: 1, Left: 1, Right: 1},
			BackgroundColor: theme.Background,
		},
		Children: []t.Widget{
			t.Text{
				Content: message,
				Wrap:    t.WrapSoft,
				Style: t.Style{
					ForegroundColor: theme.TextMuted,
					Bold:            true,
				},
			},
			t.Text{
				Content: "Press escape to clear the filter.",
				Wrap:    t.WrapSoft,
				Style: t.Style{
					ForegroundColor: theme.TextMuted,
				},
			},
		},
	}
}

func (a *Viewer) togglePalette() {
	if a.commandPalette.Visible.Peek() {
		a.commandPalette.Close(false)
		return
	}
	a.commandPalette.Open()
}

func (a *Viewer) openThemePalette() {
	a.commandPalette.Close(false)
	a.commandPalette.Open()
	a.commandPalette.PushLevel(diffThemesPalette, a.themeItems())
}

func (a *Viewer) syncFocusState(ctx t.BuildContext) {
	a.focusedWidgetID = focusedWidgetID(ctx)
}

func unfocusedTreeCursorColor(theme t.ThemeData) t.Color {
	alpha := theme.ActiveCursor.Alpha()
	if alpha <= 0 {
		alpha = 1.0
	}
	alpha = alpha * 0.35
	if alpha < 0.12 {
		alpha = 0.12
	}
	if alpha > 0.35 {
		alpha = 0.35
	}
	return theme.ActiveCursor.WithAlpha(alpha)
}

func sectionColor(theme t.ThemeData, section DiffSection) t.Color {
	switch section {
	case DiffSectionStaged:
		return theme.Success
	case DiffSectionFiles:
		return theme.Accent
	default:
		return theme.Error
	}
}

func focusedWidgetID(ctx t.BuildContext) string {
	focused := ctx.Focused()
	if focused == nil {
		return ""
	}
	if identifiable, ok := focused.(t.Identifiable); ok {
		return identifiable.WidgetID()
	}
	return ""
}

func (a *Viewer) newCommandPalette() *t.CommandPaletteState {
	return t.NewCommandPaletteState("Commands", a.commandPaletteItems())
}

func (a *Viewer) commandPaletteItems() []t.CommandPaletteItem {
	items := []t.CommandPaletteItem{}
	if a.canSwitchSections() {
		items = append(items, t.CommandPaletteItem{
			Label:      "Switch section",
			FilterText: "Switch section staged unstaged files",
			Hint:       "[s]",
			Action:     a.paletteAction(a.switchSectionFocus),
		})
	}
	items = append(items,
		t.CommandPaletteItem{
			Label:      "Refresh",
			FilterText: "Refresh reload diff",
			Hint:       "[r]",
			Action:     a.paletteAction(a.manualRefresh),
		},
		t.CommandPaletteItem{Divider: "Layout"},
		t.CommandPaletteItem{
			Label:      "Toggle sidebar",
			FilterText: "Toggle sidebar layout panel",
			Hint:       "[b]",
			Action:     a.paletteAction(a.toggleSidebar),
		},
		t.CommandPaletteItem{
			Label:      "Toggle side-by-side mode",
			FilterText: "Toggle side by side mode split unified layout view",
			Hint:       "[v]",
			Action:     a.paletteAction(a.toggleDiffLayoutMode),
		},
		t.CommandPaletteItem{Divider: "Appearance"},
		t.CommandPaletteItem{
			Label:      "Toggle +/- symbols",
			FilterText: "Toggle plus minus symbols signs prefixes add remove",
			Action:     a.paletteAction(a.toggleDiffChangeSigns),
		},
		t.CommandPaletteItem{
			Label:         "Theme",
			Hint:          "[t]",
			ChildrenTitle: diffThemesPalette,
			Children:      a.themeItems,
		},
	)
	return items
}

func (a *Viewer) refreshCommandPaletteItems() {
	level := a.commandPalette.CurrentLevel()
	if level == nil || level.Title != "Commands" {
		return
	}
	a.commandPalette.SetItems(a.commandPaletteItems())
}

func (a *Viewer) themeItems() []t.CommandPaletteItem {
	items := make([]t.CommandPaletteItem, 0, len(t.ThemeNames())+2)
	addGroup := func(title string, names []string) {
		if len(names) == 0 {
			return
		}
		items = append(items, t.CommandPaletteItem{Divider: title})
		for _, name := range names {
			label := themeDisplayName(name)
			hint := ""
			if name == t.CurrentThemeName() {
				hint = "current"
			}
			themeName := name
			items = append(items, t.CommandPaletteItem{
				Label:      label,
				FilterText: label + " " + themeName,
				Hint:       hint,
				Data:       themeName,
				Action:     a.setThemeAction(themeName),
			})
		}
	}

	addGroup("Dark themes", t.DarkThemeNames())
	addGroup("Light themes", t.LightThemeNames())

	return items
}

func (a *Viewer) setThemeAction(themeName string) func() {
	return func() {
		t.SetTheme(themeName)
		a.commandPalette.Close(false)
	}
}

func (a *Viewer) paletteAction(action func()) func() {
	return func() {
		if action != nil {
			action()
		}
		a.commandPalette.Close(false)
	}
}

func themeDisplayName(name string) string {
	parts := strings.Split(name, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func (a *Viewer) sidebarSummaryLabel() string {
	parts := make([]string, 0, len(a.sectionOrder))
	for _, section := range a.sectionOrder {
		parts = append(parts, fmt.Sprintf("%s: %d", section.DisplayName(), a.sectionFileCount(section)))
	}
	return strings.Join(parts, " ")
}

func (a *Viewer) sidebarHeadingSpans(theme t.ThemeData) []t.Span {
	spans := make([]t.Span, 0, len(a.sectionOrder)*3+2)
	for idx, section := range a.sectionOrder {
		if idx > 0 {
			spans = append(spans, t.StyledSpan("  ", t.SpanStyle{}))
		}
		spans = append(spans,
			t.StyledSpan(section.DisplayName()+": ", t.SpanStyle{
				Foreground: theme.TextMuted,
			}),
			t.StyledSpan(fmt.Sprintf("%d", a.sectionFileCount(section)), t.SpanStyle{
				Foreground: sectionColor(theme, section),
				Bold:       true,
			}),
		)
	}
	if a.canSwitchSections() {
		spans = append(spans,
			t.BoldSpan(" ", theme.TextMuted),
			t.StyledSpan("[s]", t.SpanStyle{
				Foreground: theme.TextMuted,
				Faint:      true,
			}),
		)
	}
	return spans
}

func (a *Viewer) sidebarTotals() (additions int, deletions int) {
	for _, section := range a.sectionOrder {
		state := a.sectionState(section)
		if state == nil {
			continue
		}
		additions += state.additions
		deletions += state.deletions
	}
	return additions, deletions
}

func (a *Viewer) sidebarTotalsSpans(theme t.ThemeData) []t.Span {
	additions, deletions := a.sidebarTotals()
	return nonZeroChangeStatSpans(additions, deletions, theme, true)
}

func (a *Viewer) viewerTitle() string {
	switch a.activeKind {
	case DiffTreeNodeSection:
		return a.activeSection.DisplayName() + " changes"
	case DiffTreeNodeDirectory:
		return a.activePath + " (directory)"
	case DiffTreeNodeFile:
		return a.activePath
	}
	if a.activePath == "" {
		if a.loadErr != "" {
			return "Error"
		}
		if a.treeFilterNoMatches {
			return "No matches"
		}
		return "Diff"
	}
	return a.activePath
}

func (a *Viewer) emptyMessage() string {
	heading, details := a.emptyMessageParts()
	return heading + "\n\n" + details
}

func (a *Viewer) isPipedDiffMode() bool {
	return len(a.sectionOrder) == 1 && a.sectionOrder[0] == DiffSectionFiles
}

func (a *Viewer) emptyMessageParts() (heading string, details string) {
	if a.isPipedDiffMode() {
		return "No files in piped diff.", "Run your diff command again and pipe it back in."
	}
	return "No staged or unstaged changes.", "Make edits or stage files, then press r to refresh."
}

func (a *Viewer) errorMessage() string {
	msg := strings.TrimSpace(a.loadErr)
	if msg == "" {
		msg = "Unknown error"
	}
	if !a.manualRefreshEnabled {
		return "Failed to load git diff:\n\n" + msg + "\n\nRun the command again to retry."
	}
	return "Failed to load git diff:\n\n" + msg + "\n\nPress r to retry."
}

func (a *Viewer) filePathsForNavigation() []string {
	state := a.activeState()
	if state == nil || len(state.orderedFilePaths) == 0 {
		return nil
	}
	query := a.treeFilterState.PeekQuery()
	if query == "" {
		return state.orderedFilePaths
	}
	return a.filteredFilePathsForSection(a.activeSection, query, a.treeFilterState.PeekOptions())
}

func indexOfPath(paths []string, path string) int {
	if path == "" {
		return -1
	}
	for idx, value := range paths {
		if value == path {
			return idx
		}
	}
	return -1
}

func messageToRendered(title string, text string) *RenderedFile {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	return buildMetaRenderedFile(title, strings.Split(normalized, "\n"))
}

func emptySectionSummaryMessage(section DiffSection) string {
	if section == DiffSectionFiles {
		return "No files in this diff."
	}
	return fmt.Sprintf("No %s files in this diff.", strings.ToLower(section.DisplayName()))
}

func buildSectionSummaryRenderedFile(section DiffSection, state *diffSectionState) *RenderedFile {
	fileCount := 0
	additions := 0
	deletions := 0
	if state != nil {
		fileCount = len(state.orderedFilePaths)
		additions = state.additions
		deletions = state.deletions
	}
	title := section.DisplayName() + " changes"
	lines := []string{
		fmt.Sprintf("Section: %s", section.DisplayName()),
		fmt.Sprintf("Touched files: %d", fileCount),
		fmt.Sprintf("Additions: +%d", additions),
		fmt.Sprintf("Deletions: -%d", deletions),
		"",
		"Use n/p to jump between files in this section.",
	}
	if fileCount == 0 {
		lines = append(lines,
			"",
			emptySectionSummaryMessage(section),
		)
	}
	return buildMetaRenderedFile(title, lines)
}

func buildDirectorySummaryRenderedFile(node DiffTreeNodeData) *RenderedFile {
	path := node.Path
	if path == "" {
		path = node.Name
	}
	if path == "" {
		path = "(root)"
	}
	return buildMetaRenderedFile(path, []string{
		fmt.Sprintf("Section: %s", node.Section.DisplayName()),
		fmt.Sprintf("Directory: %s", path),
		fmt.Sprintf("Touched files: %d", node.TouchedFiles),
		fmt.Sprintf("Additions: +%d", node.Additions),
		fmt.Sprintf("Deletions: -%d", node.Deletions),
		"",
		"Use n/p to jump between changed files.",
	})
}

func collectFilteredTreeFilePaths(nodes []t.TreeNode[DiffTreeNodeData], query string, options t.FilterOptions) []string {
	paths := make([]string, 0)
	appendFilteredTreeFilePaths(nodes, query, options, &paths)
	return paths
}

func appendFilteredTreeFilePaths(nodes []t.TreeNode[DiffTreeNodeData], query string, options t.FilterOptions, paths *[]string) bool {
	hasMatch := false
	for _, node := range nodes {
		childHasMatch := appendFilteredTreeFilePaths(node.Children, query, options, paths)
		matched := t.MatchString(node.Data.Name, query, options).Matched
		if matched || childHasMatch {
			if !node.Data.IsDir && node.Data.Path != "" {
				*paths = append(*paths, node.Data.Path)
			}
			hasMatch = true
		}
	}
	return hasMatch
}

func nonZeroChangeTexts(additions int, deletions int) (addText string, delText string) {
	if additions > 0 {
		addText = fmt.Sprintf("+%d", additions)
	}
	if deletions > 0 {
		delText = fmt.Sprintf("-%d", deletions)
	}
	return addText, delText
}

func nonZeroChangeStatSpans(additions int, deletions int, theme t.ThemeData, bold bool) []t.Span {
	addText, delText := nonZeroChangeTexts(additions, deletions)
	if addText == "" && delText == "" {
		return nil
	}

	spans := make([]t.Span, 0, 3)
	if addText != "" {
		if bold {
			spans = append(spans, t.BoldSpan(addText, theme.Success))
		} else {
			spans = append(spans, t.ColorSpan(addText, theme.Success))
		}
	}
	if delText != "" {
		if len(spans) > 0 {
			spans = append(spans, t.PlainSpan(" "))
		}
		if bold {
			spans = append(spans, t.BoldSpan(delText, theme.Error))
		} else {
			spans = append(spans, t.ColorSpan(delText, theme.Error))
		}
	}
	return spans
}
