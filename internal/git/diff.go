// Package git lists proposal files that changed in a git working tree.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dotcommander/archcritic/internal/discovery"
)

// GetStagedFiles returns absolute paths of staged proposal files under rootPath.
// Returns an empty slice if rootPath is not in a git repository.
func GetStagedFiles(ctx context.Context, rootPath string) ([]string, error) {
	if !IsGitRepo(ctx, rootPath) {
		return []string{}, nil
	}

	output, err := run(ctx, rootPath, "diff", "--name-only", "--relative", "--staged")
	if err != nil {
		return nil, err
	}
	return filterProposalFiles(output, rootPath), nil
}

// GetChangedFiles returns absolute paths of proposal files with uncommitted
// changes (staged and unstaged) under rootPath. In a repository without commits
// every tracked proposal counts as changed.
func GetChangedFiles(ctx context.Context, rootPath string) ([]string, error) {
	if !IsGitRepo(ctx, rootPath) {
		return []string{}, nil
	}

	if _, err := run(ctx, rootPath, "rev-parse", "HEAD"); err != nil {
		output, err := run(ctx, rootPath, "ls-files")
		if err != nil {
			return nil, err
		}
		return filterProposalFiles(output, rootPath), nil
	}

	output, err := run(ctx, rootPath, "diff", "--name-only", "--relative", "HEAD")
	if err != nil {
		return nil, err
	}
	return filterProposalFiles(output, rootPath), nil
}

// IsGitRepo checks if the given directory is within a git repository.
func IsGitRepo(ctx context.Context, rootPath string) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--git-dir")
	cmd.Dir = rootPath
	return cmd.Run() == nil
}

func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return string(output), nil
}

// filterProposalFiles keeps existing files in a format the critic reads.
// Deleted files still appear in git output and are dropped.
func filterProposalFiles(gitOutput, rootPath string) []string {
	var files []string
	for _, line := range strings.Split(strings.TrimSpace(gitOutput), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, err := discovery.DetectFormat(line); err != nil {
			continue
		}

		absPath := filepath.Join(rootPath, filepath.FromSlash(line))
		if _, err := os.Stat(absPath); err != nil {
			continue
		}
		files = append(files, absPath)
	}
	return files
}
