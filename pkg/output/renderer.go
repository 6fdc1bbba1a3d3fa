package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/logging"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Renderer writes values in one output format
type Renderer struct {
	writer  io.Writer
	format  Format
	noColor bool
	styles  Styles
}

// NewRenderer creates a Renderer writing to w. FormatAuto is resolved
// against w when it is a file, and falls back to JSON otherwise.
func NewRenderer(w io.Writer, format Format, noColor bool) *Renderer {
	if format == FormatAuto {
		format = FormatJSON
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		}
	}
	if f, ok := w.(*os.File); ok {
		noColor = ColorDisabled(noColor, f)
	}

	logger := logging.GetLogger("output")
	logger.Debug().
		Str("format", format.String()).
		Bool("noColor", noColor).
		Msg("Creating renderer")

	return &Renderer{
		writer:  w,
		format:  format,
		noColor: noColor,
		styles:  NewStyles(w, noColor),
	}
}

// Format returns the resolved output format
func (r *Renderer) Format() Format {
	return r.format
}

// Render encodes v and writes it
func (r *Renderer) Render(v interface{}) error {
	out, err := r.encode(v)
	if err != nil {
		return err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	_, err = r.writer.Write(out)
	return err
}

func (r *Renderer) encode(v interface{}) ([]byte, error) {
	switch r.format {
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		return out, wrapEncode(err, r.format)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, wrapEncode(err, r.format)
		}
		if err := enc.Close(); err != nil {
			return nil, wrapEncode(err, r.format)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		if _, ok := v.(map[string]interface{}); !ok {
			return nil, errors.Newf(errors.ErrOutputFormat, "toml output needs a mapping, got %T", v).
				WithDetail("format", r.format.String())
		}
		out, err := toml.Marshal(v)
		return out, wrapEncode(err, r.format)
	case FormatXML:
		out, err := encodeXML(v)
		return out, wrapEncode(err, r.format)
	case FormatTree:
		out, err := r.encodeTree(v)
		return []byte(out), wrapEncode(err, r.format)
	default:
		return nil, errors.Newf(errors.ErrOutputFormat, "unsupported output format: %s", r.format)
	}
}

func wrapEncode(err error, format Format) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, errors.ErrOutputFormat, "failed to encode %s output", format).
		WithDetail("format", format.String())
}

// RenderError writes err with its code, styled when colour is enabled
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	var coded *errors.Error
	if errors.As(err, &coded) {
		msg = coded.Message
		if coded.Wrapped != nil {
			msg += ": " + coded.Wrapped.Error()
		}
		msg = fmt.Sprintf("%s %s", r.styles.Code.Render("["+string(coded.Code)+"]"), msg)
	}
	_, writeErr := fmt.Fprintf(r.writer, "%s %s\n", r.styles.Error.Render("Error:"), msg)
	return writeErr
}
