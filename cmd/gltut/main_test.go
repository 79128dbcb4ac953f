package main

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		want    gputypes.Color
		wantErr bool
	}{
		{"black", gputypes.Color{A: 1}, false},
		{"White", gputypes.Color{R: 1, G: 1, B: 1, A: 1}, false},
		{"red", gputypes.Color{R: 1, A: 1}, false},
		{"notacolor", gputypes.Color{}, true},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseColor(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseColor(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestMissingExtensions(t *testing.T) {
	available := []string{"VK_KHR_surface", "VK_KHR_xlib_surface"}
	tests := []struct {
		name     string
		required []string
		want     []string
	}{
		{"none required", nil, nil},
		{"all present", []string{"VK_KHR_surface", "VK_KHR_xlib_surface"}, nil},
		{"one missing", []string{"VK_KHR_surface", "VK_KHR_wayland_surface"}, []string{"VK_KHR_wayland_surface"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := missingExtensions(tt.required, available)
			if len(got) != len(tt.want) {
				t.Fatalf("missingExtensions() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("missingExtensions()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
