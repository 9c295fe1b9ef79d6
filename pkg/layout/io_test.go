package layout

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestMarshalRoundTrip(t *testing.T) {
	l := square()
	data, err := Marshal(l)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.HasPrefix(string(data), `{"coords":[[1,0,0]`) {
		t.Errorf("unexpected encoding: %s", data)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for i := range l.Coords {
		if back.Coords[i] != l.Coords[i] {
			t.Errorf("coord %d = %v, want %v", i, back.Coords[i], l.Coords[i])
		}
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"coords":[`},
		{"wrong type", `{"coords":[["a",2,3]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := WriteFile(square(), path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	l, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if err := l.Validate(4); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
