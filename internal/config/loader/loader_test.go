package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestCodecFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"config-main.def", "ini"},
		{"/home/u/.idlerc/config-keys.cfg", "ini"},
		{"settings.INI", "ini"},
		{"keys.toml", "toml"},
		{"theme.yml", "yaml"},
		{"theme.yaml", "yaml"},
	}
	for _, tt := range tests {
		c, err := CodecFor(tt.path)
		if err != nil {
			t.Errorf("CodecFor(%q) error: %v", tt.path, err)
			continue
		}
		if c.Name() != tt.want {
			t.Errorf("CodecFor(%q) = %s, want %s", tt.path, c.Name(), tt.want)
		}
	}

	if _, err := CodecFor("config.json"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("CodecFor(json) err = %v, want ErrUnknownFormat", err)
	}
	if _, err := CodecByName("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("CodecByName(xml) err = %v, want ErrUnknownFormat", err)
	}
}

func TestRead_MissingFileIsEmpty(t *testing.T) {
	doc, err := Read(NewMemFS(), INICodec{}, "/nope.cfg")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if doc.Len() != 0 {
		t.Errorf("Len = %d, want 0", doc.Len())
	}
}

func TestRead_MalformedSetsPath(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.cfg", "[broken\n")

	_, err := Read(memfs, INICodec{}, "/bad.cfg")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if pe.Path != "/bad.cfg" {
		t.Errorf("Path = %q, want /bad.cfg", pe.Path)
	}
}

func TestWriteAndDelete_OSFS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config-main.cfg")

	doc := NewDocument()
	doc.Set("Theme", "name", "Mine")
	if err := Write(OSFS{}, INICodec{}, path, doc); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	back, err := Read(OSFS{}, INICodec{}, path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got, _ := back.Get("Theme", "name"); got != "Mine" {
		t.Errorf("name = %q, want Mine", got)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the config file, found %d entries", len(entries))
	}

	if err := Delete(OSFS{}, path); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := Delete(OSFS{}, path); err != nil {
		t.Errorf("Delete of missing file failed: %v", err)
	}
}

func TestReadOnlyFS(t *testing.T) {
	fsys := NewReadOnlyFS(fstest.MapFS{
		"config-main.def": {Data: []byte("[Theme]\nname = IDLE Classic\n")},
	})

	doc, err := Read(fsys, INICodec{}, "config-main.def")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got, _ := doc.Get("Theme", "name"); got != "IDLE Classic" {
		t.Errorf("name = %q", got)
	}

	if err := fsys.WriteFile("config-main.def", nil); !errors.Is(err, ErrReadOnly) {
		t.Errorf("WriteFile err = %v, want ErrReadOnly", err)
	}
	if err := fsys.Remove("config-main.def"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Remove err = %v, want ErrReadOnly", err)
	}
}
