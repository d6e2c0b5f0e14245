package scene

import (
	"testing"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"diffuse scene", "diffuse", false},
		{"fuzz grid scene", "fuzz-grid", false},
		{"case insensitive", "  Default ", false},
		{"unknown scene", "cornell", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Create(tt.sceneType, 40, 20)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Error("Scene should contain shapes")
			}
			if s.Camera.AspectRatio() != 2.0 {
				t.Errorf("Expected aspect ratio 2.0, got %f", s.Camera.AspectRatio())
			}
		})
	}
}

func TestCreate_InvalidResolution(t *testing.T) {
	if _, err := Create("default", 0, 100); err == nil {
		t.Error("Expected error for zero width")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	expected := []string{"default", "diffuse", "fuzz-grid"}

	if len(names) != len(expected) {
		t.Fatalf("Expected %d scenes, got %v", len(expected), names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected scene %d to be %q, got %q", i, expected[i], names[i])
		}
	}

	for _, info := range ListScenes() {
		if info.Description == "" {
			t.Errorf("Scene %q has no description", info.Name)
		}
	}
}
