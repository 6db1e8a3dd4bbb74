package pathfs_test

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/Jumpaku/go-pathfs"
)

// memFS is an in-memory pathfs.FS keyed by unix paths. Directory keys end with "/".
type memFS struct {
	wd       string
	entries  map[string]fs.FileMode
	readOnly map[string]bool
	failOn   map[string]error
}

var _ pathfs.FS = (*memFS)(nil)

func newMemFS(wd string, paths ...string) *memFS {
	m := &memFS{wd: wd, entries: map[string]fs.FileMode{"/": fs.ModeDir | 0755}, readOnly: map[string]bool{}, failOn: map[string]error{}}
	for _, p := range paths {
		m.add(p)
	}
	return m
}

func (m *memFS) add(p string) {
	parts := strings.Split(strings.Trim(p, "/"), "/")
	cur := "/"
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == len(parts)-1 && !strings.HasSuffix(p, "/") {
			m.entries[cur+part] = 0644
			return
		}
		cur += part + "/"
		m.entries[cur] = fs.ModeDir | 0755
	}
}

func (m *memFS) key(p string) string {
	if _, ok := m.entries[p]; ok {
		return p
	}
	if !strings.HasSuffix(p, "/") {
		if _, ok := m.entries[p+"/"]; ok {
			return p + "/"
		}
	}
	return p
}

func (m *memFS) Exists(p string) (bool, error) {
	if err := m.failOn[p]; err != nil {
		return false, err
	}
	_, ok := m.entries[m.key(p)]
	return ok, nil
}

func (m *memFS) ListEntries(p string) ([]string, error) {
	k := m.key(p)
	if m.entries[k]&fs.ModeDir == 0 {
		return nil, fs.ErrNotExist
	}
	var names []string
	for e := range m.entries {
		if e == k || !strings.HasPrefix(e, k) {
			continue
		}
		rest := strings.TrimSuffix(strings.TrimPrefix(e, k), "/")
		if !strings.Contains(rest, "/") {
			names = append(names, rest)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *memFS) IsDirectory(p string) (bool, error) {
	mode, ok := m.entries[m.key(p)]
	return ok && mode&fs.ModeDir != 0, nil
}

func (m *memFS) Getwd() (string, error) {
	return m.wd, nil
}

func (m *memFS) Mkdir(p string, mode fs.FileMode) error {
	if err := m.failOn[p]; err != nil {
		return err
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	m.entries[p] = fs.ModeDir | mode
	return nil
}

func (m *memFS) Remove(p string) error {
	k := m.key(p)
	if _, ok := m.entries[k]; !ok {
		return fs.ErrNotExist
	}
	if m.readOnly[k] {
		return fs.ErrPermission
	}
	delete(m.entries, k)
	return nil
}

func (m *memFS) Stat(p string) (pathfs.Times, error) {
	if _, ok := m.entries[m.key(p)]; !ok {
		return pathfs.Times{}, fs.ErrNotExist
	}
	return pathfs.Times{}, nil
}
