// Package loader provides configuration file persistence for edconf.
//
// The loader package reads and writes configuration documents: ordered
// mappings of section name to option name to string value. Documents are
// encoded with a Codec chosen by file extension (INI for the classic
// .def/.cfg files, TOML, or YAML) and stored through a FileSystem so that
// shipped defaults can live in an embedded, read-only file system while user
// overrides live on disk.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrReadOnly is returned when writing to a read-only file system.
var ErrReadOnly = errors.New("file system is read-only")

// ErrUnknownFormat is returned when no codec matches a file extension.
var ErrUnknownFormat = errors.New("unknown configuration format")

// ErrUnencodable is returned when a document holds a name or value the
// format cannot store so that it reads back unchanged.
var ErrUnencodable = errors.New("cannot be stored in this format")

// Codec converts between raw file contents and a Document.
type Codec interface {
	// Name identifies the format (e.g. "ini").
	Name() string
	// Decode parses data into a Document.
	Decode(data []byte) (*Document, error)
	// Encode serializes a Document. Output must be deterministic.
	Encode(doc *Document) ([]byte, error)
}

// FileSystem is an abstraction for the file operations the loader needs.
// This allows defaults to be served from an embedded file system and
// makes tests independent of the real disk.
type FileSystem interface {
	// ReadFile reads the entire file at name.
	ReadFile(name string) ([]byte, error)
	// WriteFile replaces the file at name with data.
	WriteFile(name string, data []byte) error
	// Remove deletes the file at name.
	Remove(name string) error
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at name.
func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // path comes from the registry's configured directories
}

// WriteFile writes data atomically: a temp file in the same directory is
// renamed over the destination. Parent directories are created as needed.
func (OSFS) WriteFile(name string, data []byte) error {
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, "."+filepath.Base(name)+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, name); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Remove deletes the file at name.
func (OSFS) Remove(name string) error {
	return os.Remove(name)
}

// ReadOnlyFS adapts an fs.FS (such as an embed.FS) to FileSystem.
// Writes fail with ErrReadOnly.
type ReadOnlyFS struct {
	FS fs.FS
}

// NewReadOnlyFS wraps fsys.
func NewReadOnlyFS(fsys fs.FS) ReadOnlyFS {
	return ReadOnlyFS{FS: fsys}
}

// ReadFile reads the entire file at name.
func (r ReadOnlyFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(r.FS, filepath.ToSlash(name))
}

// WriteFile always fails.
func (ReadOnlyFS) WriteFile(name string, _ []byte) error {
	return fmt.Errorf("writing %s: %w", name, ErrReadOnly)
}

// Remove always fails.
func (ReadOnlyFS) Remove(name string) error {
	return fmt.Errorf("removing %s: %w", name, ErrReadOnly)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// CodecFor returns the codec registered for the extension of path.
func CodecFor(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".def", ".cfg", ".ini":
		return INICodec{}, nil
	case ".toml":
		return TOMLCodec{}, nil
	case ".yaml", ".yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// CodecByName returns the codec for a format name ("ini", "toml", "yaml").
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "ini":
		return INICodec{}, nil
	case "toml":
		return TOMLCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Read loads the document stored at path.
// A missing file is not an error: an empty document is returned.
func Read(fsys FileSystem, codec Codec, path string) (*Document, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	doc, err := codec.Decode(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return nil, pe
		}
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return doc, nil
}

// Write encodes doc and stores it at path.
func Write(fsys FileSystem, codec Codec, path string, doc *Document) error {
	data, err := codec.Encode(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := fsys.WriteFile(path, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Delete removes the file at path. A missing file is not an error.
func Delete(fsys FileSystem, path string) error {
	if err := fsys.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
