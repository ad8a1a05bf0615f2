package model

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	b, _ := FromRows([][]int{
		{1, 0},
		{0, 1},
	})

	tests := []struct {
		name    string
		palette Palette
		want    string
	}{
		{"plain", Palette{}, "* - \n- * \n"},
		{"colour", ColorPalette(), ansiGreen + "*" + ansiReset + " - \n- " + ansiGreen + "*" + ansiReset + " \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			NewTerminalRenderer(&out, tt.palette).Display(b)
			if out.String() != tt.want {
				t.Fatalf("display = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestTerminalRendererStatusAndClear(t *testing.T) {
	b, _ := NewBoard(2, 2)
	var out bytes.Buffer
	r := NewTerminalRenderer(&out, Palette{})

	r.Clear()
	r.Status(Frame{Generation: 3, Population: 1, Births: 1, Deaths: 2}, b)

	got := out.String()
	if !strings.HasPrefix(got, ansiClear) {
		t.Fatalf("expected clear sequence first, got %q", got)
	}
	if !strings.Contains(got, "Gen: 3 | Living: 1 | Born: 1 | Died: 2 | Density: 25.0%") {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestDetectPalette(t *testing.T) {
	if DetectPalette(false, os.Stdout) != (Palette{}) {
		t.Fatal("disabled colour should give a plain palette")
	}
	if DetectPalette(true, nil) != (Palette{}) {
		t.Fatal("nil file should give a plain palette")
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer f.Close()
	if DetectPalette(true, f) != (Palette{}) {
		t.Fatal("regular file is not a terminal")
	}
}
