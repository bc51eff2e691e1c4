package layout

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a layout document. The format is chosen by
// file extension: .yml, .yaml, .toml or .star.
func Load(path string) (lay *Layout, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Parse(path, data)
}

// Parse decodes and validates a layout document. The name selects the
// format by its extension.
func Parse(name string, data []byte) (lay *Layout, err error) {
	lay = &Layout{}

	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".yml", ".yaml":
		err = parseYAML(data, lay)
	case ".toml":
		err = parseTOML(data, lay)
	case ".star":
		err = parseStarlark(name, data, lay)
	default:
		err = ErrFormat(ext)
	}
	if err != nil {
		lay = nil
		return
	}

	err = lay.Validate()
	if err != nil {
		lay = nil
		return
	}

	return
}

func parseYAML(data []byte, lay *Layout) (err error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err = dec.Decode(lay)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return
}

func parseTOML(data []byte, lay *Layout) (err error) {
	md, err := toml.Decode(string(data), lay)
	if err != nil {
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		key := undecoded[0]
		err = &ErrAttributeUnknown{Section: key[0], Attribute: strings.Join(key[1:], ".")}
		return
	}

	return
}

// parseStarlark runs a Starlark layout script. The script defines its
// sections as global dicts; a location is either {"row": r, "col": c} or
// a (row, col) pair.
func parseStarlark(name string, data []byte, lay *Layout) (err error) {
	thread := starlark.Thread{Name: "layout"}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &thread, name, data, nil)
	if err != nil {
		return
	}

	for _, sec := range []struct {
		name string
		dst  *Section
	}{
		{RegisterBlock, &lay.RegisterBlock},
		{Register, &lay.Register},
		{BitField, &lay.BitField},
	} {
		value, ok := globals[sec.name]
		if !ok {
			continue
		}
		dict, ok := value.(*starlark.Dict)
		if !ok {
			err = &ErrAttributeUnknown{Section: sec.name, Attribute: value.Type()}
			return
		}
		*sec.dst, err = starlarkSection(sec.name, dict)
		if err != nil {
			return
		}
	}

	return
}

func starlarkSection(name string, dict *starlark.Dict) (sec Section, err error) {
	sec = Section{}
	for _, item := range dict.Items() {
		key, ok := item[0].(starlark.String)
		if !ok {
			err = &ErrAttributeUnknown{Section: name, Attribute: item[0].String()}
			return
		}
		attr := string(key)
		loc, ok := starlarkLocation(item[1])
		if !ok {
			err = &ErrLocation{Section: name, Attribute: attr, Location: Location{Row: -1, Col: -1}}
			return
		}
		sec[attr] = loc
	}
	return
}

// starlarkLocation converts a location value; ok is false if it is not one.
func starlarkLocation(value starlark.Value) (loc Location, ok bool) {
	var row, col starlark.Value

	switch v := value.(type) {
	case *starlark.Dict:
		var found bool
		row, found, _ = v.Get(starlark.String("row"))
		if !found {
			return
		}
		col, found, _ = v.Get(starlark.String("col"))
		if !found {
			return
		}
	case starlark.Indexable:
		if v.Len() != 2 {
			return
		}
		row, col = v.Index(0), v.Index(1)
	default:
		return
	}

	r, err := starlark.AsInt32(row)
	if err != nil {
		return
	}
	c, err := starlark.AsInt32(col)
	if err != nil {
		return
	}

	loc = Location{Row: r, Col: c}
	ok = true
	return
}
