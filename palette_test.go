package namedcolor

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func names(points []Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Name
	}
	return out
}

func TestReadYAMLKeepsOrder(t *testing.T) {
	doc := `
Zinnwaldite: "ebc2af"
Aspid grey: "#2F4F4F"
Lawn green: "7cfc00"
`
	points, err := ReadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadYAML failed: %v", err)
	}
	expected := []string{"Zinnwaldite", "Aspid grey", "Lawn green"}
	if got := names(points); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if points[1] != NewPoint("Aspid grey", 47, 79, 79) {
		t.Errorf("Unexpected point %v", points[1])
	}
}

func TestReadYAMLUnwrapsHeader(t *testing.T) {
	doc := "de:\n  Rot: \"ff0000\"\n  Blau: \"0000ff\"\n"
	points, err := ReadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadYAML failed: %v", err)
	}
	if got := names(points); !reflect.DeepEqual(got, []string{"Rot", "Blau"}) {
		t.Errorf("Expected [Rot Blau], got %v", got)
	}
}

func TestReadYAMLUnquotedCodes(t *testing.T) {
	doc := "ru:\n  Чёрный: 000000\n  Тёмно-синий: 000080\n  Аспидно-серый: 2f4f4f\n  X: 123e45\n  Y: 00FF00\n"
	points, err := ReadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadYAML failed: %v", err)
	}
	expected := []struct {
		name string
		hex  string
	}{
		{"Чёрный", "000000"},
		{"Тёмно-синий", "000080"},
		{"Аспидно-серый", "2f4f4f"},
		{"X", "123e45"},
		{"Y", "00ff00"},
	}
	if len(points) != len(expected) {
		t.Fatalf("Expected %d colors, got %d: %v", len(expected), len(points), points)
	}
	for i, want := range expected {
		if points[i].Name != want.name || points[i].Hex() != want.hex {
			t.Errorf("Position %d: expected %s #%s, got %s #%s",
				i, want.name, want.hex, points[i].Name, points[i].Hex())
		}
	}

	flat, err := ReadYAML(strings.NewReader("Black: 000000\nNavy: \"#000080\"\n"))
	if err != nil {
		t.Fatalf("ReadYAML failed: %v", err)
	}
	if len(flat) != 2 || flat[0] != NewPoint("Black", 0, 0, 0) || flat[1] != NewPoint("Navy", 0, 0, 128) {
		t.Errorf("Unexpected palette %v", flat)
	}
}

func TestReadYAMLErrors(t *testing.T) {
	testCases := map[string]string{
		"short code":   "Red: \"ff00\"\n",
		"not hex":      "Black: 000000\nRed: redred\n",
		"empty value":  "Red:\n",
		"nested empty": "en:\n  Red:\n",
	}
	for name, doc := range testCases {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadYAML(strings.NewReader(doc)); !errors.Is(err, ErrMalformedHex) {
				t.Errorf("Expected ErrMalformedHex, got %v", err)
			}
		})
	}

	if _, err := ReadYAML(strings.NewReader("Red: [255, 0, 0]\nBlue: 0000ff\n")); err == nil {
		t.Error("Expected an error for a sequence value")
	}

	points, err := ReadYAML(strings.NewReader(""))
	if err != nil || len(points) != 0 {
		t.Errorf("Expected an empty document to give no points, got %v (%v)", points, err)
	}
}

func TestReadJSON(t *testing.T) {
	points, err := ReadJSON(strings.NewReader(`{"White": "ffffff", "Black": "#000000"}`))
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if got := names(points); !reflect.DeepEqual(got, []string{"Black", "White"}) {
		t.Errorf("Expected sorted names, got %v", got)
	}
	if _, err := ReadJSON(strings.NewReader(`{"Red": "nothex"}`)); !errors.Is(err, ErrMalformedHex) {
		t.Errorf("Expected ErrMalformedHex, got %v", err)
	}
}

func TestLoadPalette(t *testing.T) {
	svg, err := LoadPalette(SVGPaletteName)
	if err != nil {
		t.Fatalf("LoadPalette(svg) failed: %v", err)
	}
	if len(svg) != 147 {
		t.Errorf("Expected 147 SVG colors, got %d", len(svg))
	}

	en, err := LoadPalette("en")
	if err != nil || len(en) == 0 {
		t.Fatalf("LoadPalette(en) failed: %v", err)
	}

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "custom.json")
	if err := os.WriteFile(jsonPath, []byte(`{"Teal": "008080"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	custom, err := LoadPalette(jsonPath)
	if err != nil {
		t.Fatalf("LoadPalette(json) failed: %v", err)
	}
	if len(custom) != 1 || custom[0] != NewPoint("Teal", 0, 128, 128) {
		t.Errorf("Unexpected palette %v", custom)
	}

	yamlPath := filepath.Join(dir, "custom.yml")
	if err := os.WriteFile(yamlPath, []byte("Navy: 000080\nGreen: 008000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if custom, err = LoadPalette(yamlPath); err != nil || custom[0].Name != "Navy" {
		t.Errorf("LoadPalette(yaml) returned %v (%v)", custom, err)
	}

	if _, err := LoadPalette(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoadLocale(t *testing.T) {
	for _, tag := range []string{"ru", "ru-RU", "RU"} {
		points, err := LoadLocale(tag)
		if err != nil {
			t.Fatalf("LoadLocale(%q) failed: %v", tag, err)
		}
		if points[0].Name != "Чёрный" {
			t.Errorf("%s: expected the Russian palette, got %s first", tag, points[0].Name)
		}
	}
	for _, tag := range []string{"xx", "de", "not a tag"} {
		if _, err := LoadLocale(tag); !errors.Is(err, ErrUnknownLocale) {
			t.Errorf("LoadLocale(%q): expected ErrUnknownLocale, got %v", tag, err)
		}
	}
	if got := Locales(); !reflect.DeepEqual(got, []string{"en", "ru"}) {
		t.Errorf("Expected locales [en ru], got %v", got)
	}
}

func TestRussianPaletteLookup(t *testing.T) {
	points, err := LoadLocale("ru")
	if err != nil {
		t.Fatalf("LoadLocale failed: %v", err)
	}
	table, err := New(points)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	testCases := []struct {
		query    string
		expected string
	}{
		{"ABAB09", "Яблочно-зеленый"},
		{"8db600", "Яблочно-зеленый"},
		{"ff0000", "Красный"},
	}
	for _, tc := range testCases {
		name, err := table.NameOfHex(tc.query)
		if err != nil {
			t.Fatalf("NameOfHex(%s) failed: %v", tc.query, err)
		}
		if name != tc.expected {
			t.Errorf("%s: expected %s, got %s", tc.query, tc.expected, name)
		}
	}
}
