// Package resolve maps request targets onto files under a root directory.
package resolve

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/indigo-web/fileserve/http/target"
)

var (
	ErrNotFound   = errors.New("no such file")
	ErrPathEscape = errors.New("path escapes the root directory")
)

// Resolver is immutable once constructed and safe for concurrent use.
type Resolver struct {
	root  string
	index []string
}

// New returns a resolver of the root directory. The index names are tried in order when
// a directory is requested.
func New(root string, index ...string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	return &Resolver{
		root:  filepath.Clean(abs),
		index: index,
	}, nil
}

// Root returns the absolute root directory.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve returns the filesystem path the target addresses. The asterisk addresses no file
// at all. The returned path is either a regular file, a directory without any index file,
// or a path that may not exist at all; it is never outside the root.
func (r *Resolver) Resolve(t target.Target) (string, error) {
	switch t := t.(type) {
	case target.Asterisk:
		return "", ErrNotFound
	case target.URI:
		return r.ResolvePath(t.Path())
	default:
		return "", fmt.Errorf("unexpected target %T: %w", t, ErrNotFound)
	}
}

// ResolvePath does the same as Resolve, but for an already decoded URI path.
func (r *Resolver) ResolvePath(path string) (string, error) {
	path = strings.TrimPrefix(path, "/")
	full := r.root
	if len(path) > 0 {
		full = filepath.Join(r.root, filepath.FromSlash(path))
	}

	if !r.contains(full) {
		return "", fmt.Errorf("%s: %w", path, ErrPathEscape)
	}

	info, err := os.Stat(full)
	if err != nil || !info.IsDir() {
		return full, nil
	}

	for _, name := range r.index {
		candidate := filepath.Join(full, name)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}

	return full, nil
}

func (r *Resolver) contains(path string) bool {
	if path == r.root {
		return true
	}

	prefix := r.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	return strings.HasPrefix(path, prefix)
}
