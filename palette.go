package namedcolor

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

//go:embed colordata/*.yml
var f embed.FS

// SVGPaletteName selects the SVG 1.1 named colors shipped with
// golang.org/x/image.
const SVGPaletteName = "svg"

// ReadYAML reads a palette written as an ordered YAML mapping of color
// names to hex codes:
//
//	Aspid grey: 2f4f4f
//	Lawn green: "#7cfc00"
//
// Entries keep their file order. A document holding a single mapping
// nested under one key, such as a locale header, is unwrapped. Codes may
// be quoted or not; unquoted ones such as 000000 keep their literal text.
func ReadYAML(r io.Reader) ([]Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading YAML palette: %w", err)
	}
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding YAML palette: %w", err)
	}
	table := &hexTable{}
	if err := yaml.Unmarshal(data, table); err != nil {
		return nil, fmt.Errorf("error decoding YAML palette: %w", err)
	}
	for len(doc) == 1 {
		inner, ok := doc[0].Value.(yaml.MapSlice)
		if !ok {
			break
		}
		table = table.nested[doc[0].Key]
		if table == nil {
			return nil, fmt.Errorf("error decoding YAML palette: section %v is not a palette", doc[0].Key)
		}
		doc = inner
	}

	points := make([]Point, 0, len(doc))
	for _, item := range doc {
		name := strings.TrimSpace(fmt.Sprint(item.Key))
		code, ok := table.codes[item.Key]
		if !ok {
			return nil, fmt.Errorf("color %q: %w: value %v is not a scalar",
				name, ErrMalformedHex, item.Value)
		}
		p, err := ParseHex(code)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		points = append(points, p.Named(name))
	}
	return points, nil
}

// hexTable holds the literal text of palette values. Keys decode the same
// way yaml.MapSlice keys do, so both can be indexed with one MapItem.Key.
type hexTable struct {
	codes  map[interface{}]string
	nested map[interface{}]*hexTable
}

func (h *hexTable) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var codes map[interface{}]string
	if err := unmarshal(&codes); err == nil {
		h.codes = codes
		return nil
	}
	return unmarshal(&h.nested)
}

// ReadJSON reads a palette written as a JSON object of color names to
// hex codes. JSON objects carry no order, so the result is sorted by
// name.
func ReadJSON(r io.Reader) ([]Point, error) {
	var colorMap map[string]string
	if err := json.NewDecoder(r).Decode(&colorMap); err != nil {
		return nil, fmt.Errorf("error decoding JSON palette: %w", err)
	}
	names := make([]string, 0, len(colorMap))
	for name := range colorMap {
		names = append(names, name)
	}
	sort.Strings(names)

	points := make([]Point, 0, len(names))
	for _, name := range names {
		p, err := ParseHex(colorMap[name])
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		points = append(points, p.Named(name))
	}
	return points, nil
}

// SVGPalette returns the SVG 1.1 named colors in alphabetical order.
func SVGPalette() []Point {
	points := make([]Point, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		points = append(points, NewPoint(name, int(c.R), int(c.G), int(c.B)))
	}
	return points
}

// LoadPalette loads a palette by name. The built-in SVG palette and the
// embedded locale palettes are tried first; otherwise name is read from
// the filesystem, as JSON when it ends in .json and as YAML otherwise.
func LoadPalette(name string) ([]Point, error) {
	if name == SVGPaletteName {
		return SVGPalette(), nil
	}
	if data, err := f.ReadFile(fmt.Sprintf("colordata/%s.yml", name)); err == nil {
		return ReadYAML(strings.NewReader(string(data)))
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("error reading palette: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return ReadJSON(file)
	default:
		return ReadYAML(file)
	}
}

// LoadLocale loads the embedded palette for a BCP 47 language tag. Only
// the base language is used, so "ru-RU" and "ru" select the same file.
func LoadLocale(tag string) ([]Point, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownLocale, tag, err)
	}
	base, _ := t.Base()
	data, err := f.ReadFile(fmt.Sprintf("colordata/%s.yml", base.String()))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
	}
	return ReadYAML(strings.NewReader(string(data)))
}

// Locales lists the languages that have an embedded palette.
func Locales() []string {
	entries, err := f.ReadDir("colordata")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".yml"))
	}
	return out
}
