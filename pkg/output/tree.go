package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
)

// encodeTree draws v as a pterm tree. Mapping keys are sorted; array
// elements are labelled by index.
func (r *Renderer) encodeTree(v interface{}) (string, error) {
	root := pterm.TreeNode{Text: r.styles.Muted.Render(".")}
	root.Children = r.treeChildren(v)
	if len(root.Children) == 0 {
		root.Children = []pterm.TreeNode{{Text: r.styles.Muted.Render(emptyLabel(v))}}
	}

	printer := pterm.DefaultTree.WithRoot(root)
	if r.noColor {
		printer = printer.WithTreeStyle(pterm.NewStyle()).WithTextStyle(pterm.NewStyle())
	}
	return printer.Srender()
}

func (r *Renderer) treeChildren(v interface{}) []pterm.TreeNode {
	switch val := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		nodes := make([]pterm.TreeNode, 0, len(keys))
		for _, k := range keys {
			nodes = append(nodes, r.treeNode(k, val[k]))
		}
		return nodes
	case []interface{}:
		nodes := make([]pterm.TreeNode, 0, len(val))
		for i, item := range val {
			nodes = append(nodes, r.treeNode(fmt.Sprintf("[%d]", i), item))
		}
		return nodes
	case []string:
		nodes := make([]pterm.TreeNode, 0, len(val))
		for _, item := range val {
			nodes = append(nodes, pterm.TreeNode{Text: r.styles.Value.Render(item)})
		}
		return nodes
	default:
		if v == nil {
			return nil
		}
		return []pterm.TreeNode{{Text: r.styles.Value.Render(scalarText(v))}}
	}
}

func (r *Renderer) treeNode(label string, v interface{}) pterm.TreeNode {
	key := r.styles.Key.Render(label)
	switch val := v.(type) {
	case map[string]interface{}, []interface{}:
		children := r.treeChildren(val)
		if len(children) == 0 {
			return pterm.TreeNode{Text: key + ": " + r.styles.Muted.Render(emptyLabel(val))}
		}
		return pterm.TreeNode{Text: key, Children: children}
	default:
		return pterm.TreeNode{Text: key + ": " + r.styles.Value.Render(scalarText(v))}
	}
}

func emptyLabel(v interface{}) string {
	switch v.(type) {
	case []interface{}, []string:
		return "[]"
	case nil:
		return "null"
	default:
		return "{}"
	}
}

func scalarText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		if val == "" || strings.TrimSpace(val) != val {
			return fmt.Sprintf("%q", val)
		}
		return val
	case float64:
		return formatFloat(val)
	default:
		return fmt.Sprint(val)
	}
}
