package pksm

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
)

// DirEntry is one row of the file chooser.
type DirEntry struct {
	Name   string
	Folder bool
}

// ListDir lists dir within fsys: folders first, then files, each group
// ordered by name. "." and ".." are never listed. A directory that does
// not exist yields ErrFolderNotFound.
func ListDir(fsys fs.FS, dir string) ([]DirEntry, error) {
	entries, err := fs.ReadDir(fsys, cleanDir(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, dir)
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	out := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if name == "." || name == ".." {
			continue
		}
		out = append(out, DirEntry{Name: name, Folder: e.IsDir()})
	}

	slices.SortFunc(out, func(a, b DirEntry) int {
		if a.Folder != b.Folder {
			if a.Folder {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out, nil
}

// cleanDir turns a chooser path ("/", "/scripts/") into an fs.FS path
// ("." or "scripts").
func cleanDir(dir string) string {
	p := path.Clean("/" + dir)
	if p == "/" {
		return "."
	}
	return p[1:]
}

// parentDir returns the chooser path one level up. "/" is its own parent.
func parentDir(dir string) string {
	p := path.Clean("/" + dir)
	if p == "/" {
		return "/"
	}
	parent := path.Dir(p)
	if parent == "/" {
		return "/"
	}
	return parent + "/"
}
