package loader

import (
	"io/fs"
)

// MemFS is an in-memory FileSystem. It is useful for tests and for hosts
// that keep configuration somewhere other than the local disk.
type MemFS struct {
	files map[string][]byte

	// FailWrites makes WriteFile and Remove return this error when set.
	FailWrites error
}

// NewMemFS creates an empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

// AddFile stores content at path.
func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

// ReadFile reads the entire file at name.
func (m *MemFS) ReadFile(name string) ([]byte, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile replaces the file at name.
func (m *MemFS) WriteFile(name string, data []byte) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.files[name] = buf
	return nil
}

// Remove deletes the file at name.
func (m *MemFS) Remove(name string) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	if _, ok := m.files[name]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, name)
	return nil
}

// Exists reports whether a file is stored at name.
func (m *MemFS) Exists(name string) bool {
	_, ok := m.files[name]
	return ok
}
