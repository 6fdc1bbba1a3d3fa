package engine

import (
	"context"
	"testing"

	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEngine struct {
	name string
}

func (s *stubEngine) Name() string { return s.name }
func (s *stubEngine) Compile(raw string) (RenderFunc, error) {
	return func(ctx context.Context, data types.DataMap) (string, error) {
		return raw, nil
	}, nil
}

func TestRegistry(t *testing.T) {
	t.Run("default_has_gotmpl", func(t *testing.T) {
		r := DefaultRegistry()
		assert.True(t, r.Has(GoTemplateName))
		assert.Equal(t, []string{GoTemplateName}, r.List())
	})

	t.Run("register_and_get", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(&stubEngine{name: "stub"}))

		e, err := r.Get("stub")
		require.NoError(t, err)
		assert.Equal(t, "stub", e.Name())
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		r := NewRegistry()
		err := r.Register(&stubEngine{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.True(t, errors.IsErrorCode(r.Register(nil), errors.ErrInvalidInput))
	})

	t.Run("duplicate_rejected", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(&stubEngine{name: "stub"}))
		err := r.Register(&stubEngine{name: "stub"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	})

	t.Run("unknown_engine", func(t *testing.T) {
		r := DefaultRegistry()
		_, err := r.Get("liquid")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEngineNotFound))
		assert.Equal(t, []string{GoTemplateName}, errors.GetErrorDetails(err)["available"])
	})

	t.Run("must_register_panics_on_duplicate", func(t *testing.T) {
		r := DefaultRegistry()
		assert.Panics(t, func() { MustRegister(r, NewGoTemplate()) })
	})
}

func TestGoTemplate(t *testing.T) {
	ctx := context.Background()
	data := types.DataMap{
		"pkg": map[string]interface{}{"name": "my-site", "version": "1.2.0"},
	}

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"plain_text_passes_through", `{"a":1}`, `{"a":1}`},
		{"field_access", `{"version":"{{ .pkg.version }}"}`, `{"version":"1.2.0"}`},
		{"json_func", `{"name":{{ json .pkg.name }}}`, `{"name":"my-site"}`},
		{"upper_func", `{{ upper .pkg.name }}`, `MY-SITE`},
	}

	g := NewGoTemplate()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			render, err := g.Compile(tt.raw)
			require.NoError(t, err)

			out, err := render(ctx, data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	t.Run("compile_error", func(t *testing.T) {
		_, err := g.Compile(`{{ .pkg.name `)
		assert.Error(t, err)
	})

	t.Run("execute_error", func(t *testing.T) {
		render, err := g.Compile(`{{ template "missing" }}`)
		require.NoError(t, err)
		_, err = render(ctx, data)
		assert.Error(t, err)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		render, err := g.Compile(`x`)
		require.NoError(t, err)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err = render(cctx, data)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
