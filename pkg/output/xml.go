package output

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/beevik/etree"
)

const (
	xmlRoot  = "data"
	xmlEntry = "entry"
	xmlItem  = "item"
)

// encodeXML writes v under a <data> root. Mapping keys that are valid XML
// names become elements; other keys become <entry key="..."> elements. Array
// elements are <item> elements. Every element carries a type attribute so
// scalars round-trip.
func encodeXML(v interface{}) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(xmlRoot)
	fillElement(root, v)
	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, err
	}
	return out, nil
}

func fillElement(el *etree.Element, v interface{}) {
	switch val := v.(type) {
	case map[string]interface{}:
		el.CreateAttr("type", "object")
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			var child *etree.Element
			if isXMLName(k) {
				child = el.CreateElement(k)
			} else {
				child = el.CreateElement(xmlEntry)
				child.CreateAttr("key", k)
			}
			fillElement(child, val[k])
		}
	case []interface{}:
		el.CreateAttr("type", "array")
		for _, item := range val {
			fillElement(el.CreateElement(xmlItem), item)
		}
	case []string:
		el.CreateAttr("type", "array")
		for _, item := range val {
			fillElement(el.CreateElement(xmlItem), item)
		}
	case nil:
		el.CreateAttr("type", "null")
	case string:
		el.CreateAttr("type", "string")
		el.SetText(val)
	case bool:
		el.CreateAttr("type", "boolean")
		el.SetText(strconv.FormatBool(val))
	case float64:
		el.CreateAttr("type", "number")
		el.SetText(formatFloat(val))
	case int, int64, uint64:
		el.CreateAttr("type", "number")
		el.SetText(fmt.Sprint(val))
	default:
		el.CreateAttr("type", "string")
		el.SetText(fmt.Sprint(val))
	}
}

// isXMLName reports whether s can be used as an element name. Names starting
// with "xml" are reserved.
func isXMLName(s string) bool {
	if s == "" || len(s) >= 3 && (s[0]|0x20) == 'x' && (s[1]|0x20) == 'm' && (s[2]|0x20) == 'l' {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case i > 0 && (c == '-' || c == '.' || c >= '0' && c <= '9'):
		default:
			return false
		}
	}
	return true
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
