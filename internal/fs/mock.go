package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// MockTempDir is the directory MockFS.MkdirTemp uses when dir is empty.
const MockTempDir = "/tmp"

// MockFileInfo implements os.FileInfo for mock files.
type MockFileInfo struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
	isDir   bool
}

func (m *MockFileInfo) Name() string       { return m.name }
func (m *MockFileInfo) Size() int64        { return m.size }
func (m *MockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *MockFileInfo) ModTime() time.Time { return m.modTime }
func (m *MockFileInfo) IsDir() bool        { return m.isDir }
func (m *MockFileInfo) Sys() interface{}   { return nil }

// MockFS implements FS using an in-memory file system for testing.
type MockFS struct {
	mu         sync.RWMutex
	files      map[string][]byte
	perms      map[string]os.FileMode
	dirs       map[string]bool
	renameErrs map[string]error
	tempID     int
}

// NewMockFS creates a new MockFS with empty storage.
func NewMockFS() *MockFS {
	return &MockFS{
		files:      make(map[string][]byte),
		perms:      make(map[string]os.FileMode),
		dirs:       make(map[string]bool),
		renameErrs: make(map[string]error),
	}
}

// ReadFile reads the file at path from memory.
func (m *MockFS) ReadFile(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cleanPath := filepath.Clean(path)
	data, ok := m.files[cleanPath]
	if !ok {
		return nil, &os.PathError{Op: "read", Path: path, Err: os.ErrNotExist}
	}
	// Return a copy to prevent external modification
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// WriteFile writes data to the file at path in memory.
// Parent directories are created implicitly.
func (m *MockFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cleanPath := filepath.Clean(path)
	if m.dirs[cleanPath] {
		return &os.PathError{Op: "write", Path: path, Err: iofs.ErrInvalid}
	}
	m.addParentsLocked(cleanPath)

	m.files[cleanPath] = make([]byte, len(data))
	copy(m.files[cleanPath], data)
	m.perms[cleanPath] = perm

	return nil
}

// MkdirAll creates all directories in the path.
func (m *MockFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cleanPath := filepath.Clean(path)
	if _, ok := m.files[cleanPath]; ok {
		return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrExist}
	}
	m.dirs[cleanPath] = true
	m.addParentsLocked(cleanPath)
	return nil
}

// MkdirTemp creates a uniquely named directory. The last "*" in pattern is
// replaced by a counter, otherwise the counter is appended.
func (m *MockFS) MkdirTemp(dir, pattern string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if dir == "" {
		dir = MockTempDir
	}
	if strings.Contains(pattern, string(filepath.Separator)) {
		return "", &os.PathError{Op: "mkdirtemp", Path: pattern, Err: iofs.ErrInvalid}
	}

	for {
		m.tempID++
		id := strconv.Itoa(m.tempID)
		var name string
		if i := strings.LastIndex(pattern, "*"); i >= 0 {
			name = pattern[:i] + id + pattern[i+1:]
		} else {
			name = pattern + id
		}
		path := filepath.Join(filepath.Clean(dir), name)
		if _, isFile := m.files[path]; isFile || m.dirs[path] {
			continue
		}
		m.dirs[path] = true
		m.addParentsLocked(path)
		return path, nil
	}
}

// ReadDir lists the immediate children of path sorted by name.
func (m *MockFS) ReadDir(path string) ([]os.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cleanPath := filepath.Clean(path)
	if !m.dirs[cleanPath] {
		if _, ok := m.files[cleanPath]; ok {
			return nil, &os.PathError{Op: "readdir", Path: path, Err: iofs.ErrInvalid}
		}
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	var entries []os.DirEntry
	for p, data := range m.files {
		if filepath.Dir(p) == cleanPath {
			entries = append(entries, iofs.FileInfoToDirEntry(m.fileInfoLocked(p, data)))
		}
	}
	for p := range m.dirs {
		if p != cleanPath && filepath.Dir(p) == cleanPath {
			entries = append(entries, iofs.FileInfoToDirEntry(dirInfo(p)))
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// Stat returns file info for the given path.
func (m *MockFS) Stat(path string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cleanPath := filepath.Clean(path)

	if data, ok := m.files[cleanPath]; ok {
		return m.fileInfoLocked(cleanPath, data), nil
	}

	if m.dirs[cleanPath] || cleanPath == "." {
		return dirInfo(cleanPath), nil
	}

	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

// Remove removes the file or empty directory at path.
func (m *MockFS) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cleanPath := filepath.Clean(path)
	if _, ok := m.files[cleanPath]; ok {
		delete(m.files, cleanPath)
		delete(m.perms, cleanPath)
		return nil
	}
	if m.dirs[cleanPath] {
		if m.hasChildrenLocked(cleanPath) {
			return &os.PathError{Op: "remove", Path: path, Err: iofs.ErrInvalid}
		}
		delete(m.dirs, cleanPath)
		return nil
	}
	return &os.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
}

// RemoveAll removes path and all of its children. A missing path is not an error.
func (m *MockFS) RemoveAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cleanPath := filepath.Clean(path)
	prefix := cleanPath + string(filepath.Separator)
	for p := range m.files {
		if p == cleanPath || strings.HasPrefix(p, prefix) {
			delete(m.files, p)
			delete(m.perms, p)
		}
	}
	for p := range m.dirs {
		if p == cleanPath || strings.HasPrefix(p, prefix) {
			delete(m.dirs, p)
		}
	}
	return nil
}

// Rename renames oldpath to newpath, replacing any existing file at newpath.
func (m *MockFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cleanOld := filepath.Clean(oldpath)
	cleanNew := filepath.Clean(newpath)

	for _, p := range []string{cleanOld, cleanNew} {
		if err, ok := m.renameErrs[p]; ok {
			return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
		}
	}

	data, ok := m.files[cleanOld]
	if !ok {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: os.ErrNotExist}
	}
	if m.dirs[cleanNew] {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: os.ErrExist}
	}

	perm := m.perms[cleanOld]
	delete(m.files, cleanOld)
	delete(m.perms, cleanOld)
	m.files[cleanNew] = data
	m.perms[cleanNew] = perm

	return nil
}

// FailRename makes every subsequent Rename from or to path fail with err.
func (m *MockFS) FailRename(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renameErrs[filepath.Clean(path)] = err
}

// AddFile adds a file with content to the mock FS for testing.
func (m *MockFS) AddFile(path string, content []byte, perm os.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cleanPath := filepath.Clean(path)
	m.addParentsLocked(cleanPath)
	m.files[cleanPath] = make([]byte, len(content))
	copy(m.files[cleanPath], content)
	m.perms[cleanPath] = perm
}

// AddDir adds a directory to the mock FS for testing.
func (m *MockFS) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cleanPath := filepath.Clean(path)
	m.dirs[cleanPath] = true
	m.addParentsLocked(cleanPath)
}

// FileExists checks if a file exists in the mock FS.
func (m *MockFS) FileExists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

// DirExists checks if a directory exists in the mock FS.
func (m *MockFS) DirExists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirs[filepath.Clean(path)]
}

// Reset clears all files and directories from the mock FS.
func (m *MockFS) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files = make(map[string][]byte)
	m.perms = make(map[string]os.FileMode)
	m.dirs = make(map[string]bool)
	m.renameErrs = make(map[string]error)
	m.tempID = 0
}

func (m *MockFS) addParentsLocked(cleanPath string) {
	dir := filepath.Dir(cleanPath)
	for dir != "." && dir != cleanPath {
		m.dirs[dir] = true
		next := filepath.Dir(dir)
		if next == dir {
			break
		}
		dir = next
	}
}

func (m *MockFS) hasChildrenLocked(dir string) bool {
	for p := range m.files {
		if filepath.Dir(p) == dir {
			return true
		}
	}
	for p := range m.dirs {
		if p != dir && filepath.Dir(p) == dir {
			return true
		}
	}
	return false
}

func (m *MockFS) fileInfoLocked(path string, data []byte) *MockFileInfo {
	perm := m.perms[path]
	if perm == 0 {
		perm = 0644
	}
	return &MockFileInfo{
		name:    filepath.Base(path),
		size:    int64(len(data)),
		mode:    perm,
		modTime: time.Now(),
	}
}

func dirInfo(path string) *MockFileInfo {
	return &MockFileInfo{
		name:    filepath.Base(path),
		mode:    0755 | os.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}
}
