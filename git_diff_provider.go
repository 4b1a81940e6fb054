package main

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// DiffProvider supplies raw unified diff text plus repository context
// for the header.
type DiffProvider interface {
	LoadDiff(staged bool) (string, error)
	RepoRoot() (string, error)
	CurrentBranch() (string, error)
}

// DiffSectionsProvider lets a provider narrow which sidebar sections it
// can populate. Providers without it get the default section set.
type DiffSectionsProvider interface {
	Sections() []DiffSection
}

// ManualRefreshCapable reports whether the refresh keybind should
// re-query the provider.
type ManualRefreshCapable interface {
	ManualRefreshEnabled() bool
}

// GitDiffProvider shells out to git in WorkDir.
type GitDiffProvider struct {
	WorkDir string
}

func (p GitDiffProvider) LoadDiff(staged bool) (string, error) {
	args := []string{"diff", "--no-color", "--no-ext-diff"}
	if staged {
		args = append(args, "--cached")
	}
	return p.runGit(args...)
}

func (p GitDiffProvider) RepoRoot() (string, error) {
	root, err := p.runGit("rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(root), nil
}

func (p GitDiffProvider) CurrentBranch() (string, error) {
	branch, err := p.runGit("branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(branch), nil
}

func (p GitDiffProvider) ManualRefreshEnabled() bool {
	return true
}

func (p GitDiffProvider) runGit(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = p.WorkDir
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("git %s: %w: %s", args[0], err, detail)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return stdout.String(), nil
}
