package loader

import (
	"errors"
	"reflect"
	"testing"
)

func TestTOMLCodec_Decode(t *testing.T) {
	data := `
[Theme]
name = "IDLE Classic"
default = true

[EditorWindow]
width = 80

["IDLE Classic Unix"]
copy = ["<Alt-Key-w>", "<Meta-Key-w>"]
`
	doc, err := TOMLCodec{}.Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	tests := []struct {
		section, option, want string
	}{
		{"Theme", "name", "IDLE Classic"},
		{"Theme", "default", "true"},
		{"EditorWindow", "width", "80"},
		{"IDLE Classic Unix", "copy", "<Alt-Key-w> <Meta-Key-w>"},
	}
	for _, tt := range tests {
		got, ok := doc.Get(tt.section, tt.option)
		if !ok || got != tt.want {
			t.Errorf("Get(%q, %q) = %q, %v; want %q", tt.section, tt.option, got, ok, tt.want)
		}
	}

	// Tables come back sorted.
	want := []string{"EditorWindow", "IDLE Classic Unix", "Theme"}
	if got := doc.SectionNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("SectionNames = %v, want %v", got, want)
	}
}

func TestTOMLCodec_DecodeRejectsTopLevelScalars(t *testing.T) {
	_, err := TOMLCodec{}.Decode([]byte(`name = "x"`))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
}

func TestTOMLCodec_DecodeSyntaxError(t *testing.T) {
	_, err := TOMLCodec{}.Decode([]byte("[Theme\nname = 1"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
}

func TestTOMLCodec_RoundTrip(t *testing.T) {
	doc := NewDocument()
	doc.Set("Keys", "name", "Custom Keys")
	doc.Set("Custom Keys", "copy", "<Control-Key-c>")

	data, err := TOMLCodec{}.Encode(doc)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	back, err := TOMLCodec{}.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v\n%s", err, data)
	}
	if !reflect.DeepEqual(back.Map(), doc.Map()) {
		t.Errorf("round trip = %v, want %v", back.Map(), doc.Map())
	}
}
