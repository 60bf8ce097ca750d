package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dotcommander/archcritic/internal/config"
	"github.com/dotcommander/archcritic/internal/discovery"
	"github.com/dotcommander/archcritic/internal/frontend"
	"github.com/dotcommander/archcritic/internal/git"
	"github.com/spf13/cobra"
)

// stdinArg names standard input on the command line.
const stdinArg = "-"

// collectProposals resolves the command's input: literal text, then explicit
// arguments (files, directories or "-"), then files changed in git when --changed
// or --staged is set, then discovery under the configured root.
func collectProposals(cmd *cobra.Command, cfg *config.Config, args []string, text string) ([]frontend.Proposal, error) {
	if cmd.Flags().Changed("text") {
		return []frontend.Proposal{{Text: text}}, nil
	}

	staged, _ := cmd.Flags().GetBool("staged")
	changed, _ := cmd.Flags().GetBool("changed")
	if len(args) == 0 && (staged || changed) {
		return gitProposals(cmd.Context(), cfg.Root, staged)
	}

	if len(args) == 0 {
		proposals, err := discoverProposals(cfg.Root, cfg)
		if err != nil {
			return nil, err
		}
		if len(proposals) == 0 {
			return nil, fmt.Errorf("no proposals found under %s; pass files, --text, or - for stdin", cfg.Root)
		}
		return proposals, nil
	}

	var proposals []frontend.Proposal
	for _, arg := range args {
		found, err := resolveArg(cmd.InOrStdin(), cfg, arg)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, found...)
	}
	return proposals, nil
}

func resolveArg(stdin io.Reader, cfg *config.Config, arg string) ([]frontend.Proposal, error) {
	if arg == stdinArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return []frontend.Proposal{{Title: "stdin", Text: string(data)}}, nil
	}

	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		return discoverProposals(arg, cfg)
	}

	absPath, err := discovery.ValidateFilePath(arg)
	if err != nil {
		return nil, err
	}
	p, err := frontend.LoadProposal(absPath)
	if err != nil {
		return nil, err
	}
	p.Path = arg
	return []frontend.Proposal{p}, nil
}

func discoverProposals(root string, cfg *config.Config) ([]frontend.Proposal, error) {
	files, err := discovery.NewFileDiscovery(root, cfg.Include, cfg.Exclude).DiscoverFiles()
	if err != nil {
		return nil, fmt.Errorf("error discovering proposals: %w", err)
	}

	proposals := make([]frontend.Proposal, 0, len(files))
	for _, f := range files {
		p, err := frontend.LoadProposal(f.Path)
		if err != nil {
			return nil, err
		}
		p.Path = f.RelPath
		proposals = append(proposals, p)
	}
	return proposals, nil
}

func gitProposals(ctx context.Context, root string, staged bool) ([]frontend.Proposal, error) {
	getFiles, which := git.GetChangedFiles, "changed"
	if staged {
		getFiles, which = git.GetStagedFiles, "staged"
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid root %q: %w", root, err)
	}

	paths, err := getFiles(ctx, absRoot)
	if err != nil {
		return nil, fmt.Errorf("error listing %s files: %w", which, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no %s proposals under %s", which, root)
	}

	proposals := make([]frontend.Proposal, 0, len(paths))
	for _, path := range paths {
		p, err := frontend.LoadProposal(path)
		if err != nil {
			return nil, err
		}
		if rel, err := filepath.Rel(absRoot, path); err == nil {
			p.Path = filepath.ToSlash(rel)
		}
		proposals = append(proposals, p)
	}
	return proposals, nil
}
