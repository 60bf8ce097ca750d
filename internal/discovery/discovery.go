package discovery

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude are the patterns searched when none are configured.
var DefaultInclude = []string{"**/*.md", "**/*.markdown", "**/*.txt"}

// DefaultExclude skips dependency and VCS directories.
var DefaultExclude = []string{"**/node_modules/**", "**/.git/**", "**/vendor/**"}

// FormatPattern maps a glob pattern to a Format. Patterns are matched against the
// lower-cased base name in order; first match wins.
type FormatPattern struct {
	Pattern string
	Format  Format
}

var formatPatterns = []FormatPattern{
	{"*.md", FormatMarkdown},
	{"*.markdown", FormatMarkdown},
	{"*.txt", FormatText},
	{"*.text", FormatText},
}

// Format is the markup of a proposal file
type Format int

const (
	FormatUnknown Format = iota
	FormatText
	FormatMarkdown
)

// String returns the human-readable name of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// DetectFormat determines the format of a proposal from its file name.
func DetectFormat(path string) (Format, error) {
	base := strings.ToLower(filepath.Base(path))
	for _, fp := range formatPatterns {
		if ok, _ := doublestar.Match(fp.Pattern, base); ok {
			return fp.Format, nil
		}
	}

	ext := filepath.Ext(base)
	if ext == "" {
		return FormatUnknown, fmt.Errorf("unsupported file: %s has no extension. archcritic reads .md and .txt files only", filepath.Base(path))
	}
	return FormatUnknown, fmt.Errorf("unsupported file type: %s. archcritic reads .md and .txt files only", ext)
}

// ValidateFilePath checks that path names a readable, non-empty text file and
// returns its absolute path.
func ValidateFilePath(path string) (absPath string, err error) {
	absPath, err = filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", absPath)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("permission denied: %s", absPath)
		}
		return "", fmt.Errorf("cannot access file: %s: %w", absPath, err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", absPath)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("file is empty: %s", absPath)
	}

	f, err := os.Open(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	if bytes.Contains(buf[:n], []byte{0}) {
		return "", fmt.Errorf("file appears to be binary, not text: %s", absPath)
	}

	return absPath, nil
}

// File represents a discovered proposal file
type File struct {
	Path    string
	RelPath string
	Size    int64
	Format  Format
}

// FileDiscovery finds proposal files under a root directory
type FileDiscovery struct {
	rootPath string
	include  []string
	exclude  []string
}

// NewFileDiscovery creates a FileDiscovery. Empty include falls back to
// DefaultInclude; DefaultExclude always applies in addition to exclude.
func NewFileDiscovery(rootPath string, include, exclude []string) *FileDiscovery {
	if len(include) == 0 {
		include = DefaultInclude
	}
	return &FileDiscovery{
		rootPath: rootPath,
		include:  include,
		exclude:  append(append([]string{}, DefaultExclude...), exclude...),
	}
}

// DiscoverFiles returns every matching file once, sorted by relative path.
func (fd *FileDiscovery) DiscoverFiles() ([]File, error) {
	for _, pattern := range fd.exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %s", pattern)
		}
	}

	seen := make(map[string]bool)
	var files []File

	for _, pattern := range fd.include {
		matches, err := doublestar.Glob(os.DirFS(fd.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] || fd.excluded(match) {
				continue
			}
			f, ok := fd.processMatch(match)
			if !ok {
				continue
			}
			seen[match] = true
			files = append(files, f)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

func (fd *FileDiscovery) excluded(relPath string) bool {
	for _, pattern := range fd.exclude {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}

// processMatch converts a glob match into a File, returning false if the match should be skipped.
func (fd *FileDiscovery) processMatch(match string) (File, bool) {
	fullPath := filepath.Join(fd.rootPath, filepath.FromSlash(match))

	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return File{}, false
	}

	format, err := DetectFormat(match)
	if err != nil {
		return File{}, false
	}

	return File{
		Path:    fullPath,
		RelPath: match,
		Size:    info.Size(),
		Format:  format,
	}, true
}
