package cascade

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/cascade/pkg/datamap"
	"github.com/arthur-debert/cascade/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// formatForPath picks the data format from a file's extension; anything
// unrecognized is parsed as JSON
func formatForPath(path string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

// parseData strictly parses text in the given format. Mappings come back as
// map[string]interface{} regardless of format.
func parseData(text []byte, format string) (interface{}, error) {
	switch format {
	case "yaml":
		var v interface{}
		if err := yaml.Unmarshal(text, &v); err != nil {
			return nil, err
		}
		if v == nil {
			return types.DataMap{}, nil
		}
		return datamap.Copy(v), nil
	case "toml":
		var v map[string]interface{}
		if err := toml.Unmarshal(text, &v); err != nil {
			return nil, err
		}
		if v == nil {
			return types.DataMap{}, nil
		}
		return v, nil
	default:
		var v interface{}
		if err := json.Unmarshal(text, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
