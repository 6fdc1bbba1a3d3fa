package cascade

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/cascade/pkg/engine"
	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/types"
)

// Reader reads and parses data files, optionally preprocessing them with a
// template engine first
type Reader struct {
	fs     types.FS
	engine engine.Engine
}

// NewReader creates a Reader. A nil engine disables template preprocessing.
func NewReader(fsys types.FS, eng engine.Engine) *Reader {
	return &Reader{fs: fsys, engine: eng}
}

// Read returns the parsed contents of path. A missing or empty file yields
// an empty mapping. Unless skipTemplate is set and an engine is configured,
// the raw text is rendered with imports as the only data before parsing.
// Cancellation is returned as ctx.Err(), unwrapped.
func (r *Reader) Read(ctx context.Context, path string, imports types.DataMap, skipTemplate bool) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := r.readRaw(path)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return types.DataMap{}, nil
	}

	text := raw
	if !skipTemplate && r.engine != nil {
		render, err := r.engine.Compile(string(raw))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTemplateCompile, "failed to compile data file %s", path).
				WithDetail("path", path).
				WithDetail("engine", r.engine.Name())
		}
		out, err := render(ctx, imports)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, errors.Wrapf(err, errors.ErrTemplateExecute, "failed to render data file %s", path).
				WithDetail("path", path).
				WithDetail("engine", r.engine.Name())
		}
		text = []byte(out)
	}

	format := formatForPath(path)
	value, err := parseData(text, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDataParse, "failed to parse data file %s", path).
			WithDetail("path", path).
			WithDetail("format", format)
	}
	return value, nil
}

// ReadMap is Read for files whose top level must be a mapping
func (r *Reader) ReadMap(ctx context.Context, path string, imports types.DataMap, skipTemplate bool) (types.DataMap, error) {
	value, err := r.Read(ctx, path, imports, skipTemplate)
	if err != nil {
		return nil, err
	}
	m, ok := value.(map[string]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrDataParse, "data file %s must contain a mapping, got %s", path, describe(value)).
			WithDetail("path", path)
	}
	return m, nil
}

func (r *Reader) readRaw(path string) ([]byte, error) {
	raw, err := r.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrDataRead, "failed to read data file %s", path).
			WithDetail("path", path)
	}
	return raw, nil
}

func describe(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case []interface{}:
		return "an array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
