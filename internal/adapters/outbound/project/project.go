package project

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/abdidvp/pushkraft/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"bin":          true,
	"testdata":     true,
}

// Opener implements domain.ProjectOpener for local directories.
type Opener struct{}

func New() *Opener {
	return &Opener{}
}

// Open returns a Project rooted at projectPath. excludePaths name extra
// directories the walk skips, on top of the built-in vendor/VCS dirs.
func (o *Opener) Open(projectPath string, excludePaths ...string) (domain.Project, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", absPath)
	}
	return newFSProject(filepath.Base(absPath), absPath, osfs.New(absPath), excludePaths), nil
}

// FSProject implements domain.Project over a billy filesystem.
type FSProject struct {
	name    string
	baseDir string
	fs      billy.Filesystem
	skip    map[string]bool
}

func newFSProject(name, baseDir string, fs billy.Filesystem, excludePaths []string) *FSProject {
	skip := make(map[string]bool, len(skipDirs)+len(excludePaths))
	for d := range skipDirs {
		skip[d] = true
	}
	for _, p := range excludePaths {
		skip[strings.TrimSuffix(p, "/")] = true
	}
	return &FSProject{name: name, baseDir: baseDir, fs: fs, skip: skip}
}

// InMemory builds a Project held entirely in memory, keyed by
// slash-separated path. It has no base directory on disk.
func InMemory(name string, files map[string]string) (*FSProject, error) {
	fs := memfs.New()
	for p, content := range files {
		if err := util.WriteFile(fs, p, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", p, err)
		}
	}
	return newFSProject(name, "", fs, nil), nil
}

func (p *FSProject) Name() string    { return p.name }
func (p *FSProject) BaseDir() string { return p.baseDir }

func (p *FSProject) HasFile(name string) (bool, error) {
	info, err := p.fs.Stat(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (p *FSProject) ReadFile(name string) ([]byte, error) {
	return util.ReadFile(p.fs, name)
}

func (p *FSProject) WriteFile(name string, data []byte) error {
	if dir := path.Dir(name); dir != "." {
		if err := p.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return util.WriteFile(p.fs, name, data, 0o644)
}

// Walk visits every regular file in lexical order, skipping vendored,
// VCS and excluded directories at any depth.
func (p *FSProject) Walk(fn func(name string) error) error {
	return p.walk("", fn)
}

func (p *FSProject) walk(dir string, fn func(name string) error) error {
	entries, err := p.fs.ReadDir(dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, e := range entries {
		rel := path.Join(dir, e.Name())
		if e.IsDir() {
			if p.skip[e.Name()] {
				continue
			}
			if err := p.walk(rel, fn); err != nil {
				return err
			}
			continue
		}
		if !e.Mode().IsRegular() {
			continue
		}
		if err := fn(rel); err != nil {
			return err
		}
	}
	return nil
}
