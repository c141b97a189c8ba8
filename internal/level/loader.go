package level

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the optional level list inside a levels directory.
const ManifestFile = "levels.yaml"

// Entry describes one level in the manifest: either a file in the levels
// directory or an inline grid.
type Entry struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
	Grid string `yaml:"grid"`
}

type manifestFile struct {
	Levels []Entry `yaml:"levels"`
}

// Loader resolves level numbers (1-based) to grids.
type Loader struct {
	Dir     string
	entries []Entry // nil when there is no manifest

	// Fallback, when set, is asked for levels that have no file.
	Fallback func(n int) (*Grid, error)
}

// NewLoader reads the manifest in dir if there is one.
func NewLoader(dir string) (*Loader, error) {
	l := &Loader{Dir: dir}
	raw, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read level manifest: %w", err)
	}
	var file manifestFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse level manifest: %w", err)
	}
	for i, e := range file.Levels {
		if (e.File == "") == (e.Grid == "") {
			return nil, fmt.Errorf("level manifest entry %d: exactly one of file or grid is required", i+1)
		}
	}
	l.entries = file.Levels
	if l.entries == nil {
		l.entries = []Entry{}
	}
	return l, nil
}

// FileName is the default file for level n when there is no manifest.
func FileName(n int) string { return fmt.Sprintf("level%02d.txt", n) }

// Load returns the grid for level n. Missing levels wrap ErrNotFound,
// malformed ones ErrBadFormat.
func (l *Loader) Load(n int) (*Grid, error) {
	g, err := l.load(n)
	if errors.Is(err, ErrNotFound) && l.Fallback != nil {
		return l.Fallback(n)
	}
	return g, err
}

func (l *Loader) load(n int) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("level %d: %w", n, ErrNotFound)
	}
	if l.entries == nil {
		g, err := l.loadFile(FileName(n))
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", n, err)
		}
		g.Name = fmt.Sprintf("Level %d", n)
		return g, nil
	}
	if n > len(l.entries) {
		return nil, fmt.Errorf("level %d: %w", n, ErrNotFound)
	}
	e := l.entries[n-1]
	var (
		g   *Grid
		err error
	)
	if e.File != "" {
		g, err = l.loadFile(e.File)
	} else {
		g, err = ParseLines(strings.Split(e.Grid, "\n"))
	}
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", n, err)
	}
	g.Name = e.Name
	if g.Name == "" {
		g.Name = fmt.Sprintf("Level %d", n)
	}
	return g, nil
}

func (l *Loader) loadFile(name string) (*Grid, error) {
	path := filepath.Join(l.Dir, name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
