package main

// StdinDiffProvider serves one piped diff payload. The payload is
// captured exactly once at startup, so there is nothing to re-query:
// manual refresh is disabled and the sidebar collapses to a single
// Files section. Repository context still comes from git so the
// header can name the repo and branch when the pipe runs inside a
// work tree.
type StdinDiffProvider struct {
	WorkDir string
	Diff    string
}

func (p StdinDiffProvider) LoadDiff(staged bool) (string, error) {
	// A piped payload carries no staged/unstaged distinction; only
	// the Files section ever asks for it.
	if staged {
		return "", nil
	}
	return p.Diff, nil
}

func (p StdinDiffProvider) RepoRoot() (string, error) {
	return p.git().RepoRoot()
}

func (p StdinDiffProvider) CurrentBranch() (string, error) {
	return p.git().CurrentBranch()
}

func (p StdinDiffProvider) Sections() []DiffSection {
	return []DiffSection{DiffSectionFiles}
}

func (p StdinDiffProvider) ManualRefreshEnabled() bool {
	return false
}

func (p StdinDiffProvider) git() GitDiffProvider {
	return GitDiffProvider{WorkDir: p.WorkDir}
}
