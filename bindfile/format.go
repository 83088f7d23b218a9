package bindfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for file extensions without a codec.
var ErrUnsupportedFormat = errors.New("unsupported bindings format")

// Format selects the codec of a bindings file.
type Format int

const (
	YAML Format = iota
	TOML
	JSON
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts a format name or a file extension, with or without
// the leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "json":
		return JSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath picks the format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// entryDecoder decodes one list element of a bindings file into v.
type entryDecoder func(v any) error

// document is a bindings file split into independently decodable entries,
// so one malformed entry cannot take the rest of the file down with it.
type document struct {
	game    string
	buttons []entryDecoder
	analogs []entryDecoder
	lights  []entryDecoder
}

func parse(data []byte, f Format) (*document, error) {
	switch f {
	case YAML:
		return parseYAML(data)
	case TOML:
		return parseTOML(data)
	case JSON:
		return parseJSON(data)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
}

func parseYAML(data []byte) (*document, error) {
	var raw struct {
		Game    string      `yaml:"game"`
		Buttons []yaml.Node `yaml:"buttons"`
		Analogs []yaml.Node `yaml:"analogs"`
		Lights  []yaml.Node `yaml:"lights"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode bindings yaml: %w", err)
	}
	nodes := func(list []yaml.Node) []entryDecoder {
		out := make([]entryDecoder, len(list))
		for i := range list {
			n := &list[i]
			out[i] = n.Decode
		}
		return out
	}
	return &document{
		game:    raw.Game,
		buttons: nodes(raw.Buttons),
		analogs: nodes(raw.Analogs),
		lights:  nodes(raw.Lights),
	}, nil
}

func parseJSON(data []byte) (*document, error) {
	var raw struct {
		Game    string            `json:"game"`
		Buttons []json.RawMessage `json:"buttons"`
		Analogs []json.RawMessage `json:"analogs"`
		Lights  []json.RawMessage `json:"lights"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode bindings json: %w", err)
	}
	messages := func(list []json.RawMessage) []entryDecoder {
		out := make([]entryDecoder, len(list))
		for i, msg := range list {
			out[i] = func(v any) error { return json.Unmarshal(msg, v) }
		}
		return out
	}
	return &document{
		game:    raw.Game,
		buttons: messages(raw.Buttons),
		analogs: messages(raw.Analogs),
		lights:  messages(raw.Lights),
	}, nil
}

func parseTOML(data []byte) (*document, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode bindings toml: %w", err)
	}
	doc := &document{}
	if game, ok := tree.Get("game").(string); ok {
		doc.game = game
	}
	tables := func(key string) ([]entryDecoder, error) {
		v := tree.Get(key)
		if v == nil {
			return nil, nil
		}
		list, ok := v.([]*toml.Tree)
		if !ok {
			return nil, fmt.Errorf("decode bindings toml: %s must be an array of tables", key)
		}
		out := make([]entryDecoder, len(list))
		for i, t := range list {
			out[i] = t.Unmarshal
		}
		return out, nil
	}
	if doc.buttons, err = tables("buttons"); err != nil {
		return nil, err
	}
	if doc.analogs, err = tables("analogs"); err != nil {
		return nil, err
	}
	if doc.lights, err = tables("lights"); err != nil {
		return nil, err
	}
	return doc, nil
}

func encode(file *File, f Format) ([]byte, error) {
	switch f {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return nil, fmt.Errorf("encode bindings yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode bindings yaml: %w", err)
		}
		return buf.Bytes(), nil
	case TOML:
		out, err := toml.Marshal(file)
		if err != nil {
			return nil, fmt.Errorf("encode bindings toml: %w", err)
		}
		return out, nil
	case JSON:
		out, err := json.MarshalIndent(file, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode bindings json: %w", err)
		}
		return append(out, '\n'), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
}
