package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/arthur-debert/cascade/pkg/types"
)

// GoTemplateName selects the text/template engine
const GoTemplateName = "gotmpl"

// GoTemplate renders data files with text/template. Besides the builtins it
// offers "json" to emit any value as JSON, which keeps generated data files
// well formed when interpolating strings.
type GoTemplate struct {
	funcs template.FuncMap
}

// NewGoTemplate creates the text/template engine
func NewGoTemplate() *GoTemplate {
	return &GoTemplate{
		funcs: template.FuncMap{
			"json":  toJSON,
			"lower": strings.ToLower,
			"upper": strings.ToUpper,
		},
	}
}

// Name returns GoTemplateName
func (g *GoTemplate) Name() string {
	return GoTemplateName
}

// Compile parses raw as a text/template
func (g *GoTemplate) Compile(raw string) (RenderFunc, error) {
	tmpl, err := template.New("data").Funcs(g.funcs).Parse(raw)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, data types.DataMap) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", err
		}
		return buf.String(), nil
	}, nil
}

func toJSON(v interface{}) (string, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
