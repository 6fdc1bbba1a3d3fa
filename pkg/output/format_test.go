package output_test

import (
	"testing"

	"github.com/arthur-debert/cascade/pkg/errors"
	"github.com/arthur-debert/cascade/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   output.Format
		expected string
	}{
		{output.FormatAuto, "auto"},
		{output.FormatTree, "tree"},
		{output.FormatJSON, "json"},
		{output.FormatYAML, "yaml"},
		{output.FormatTOML, "toml"},
		{output.FormatXML, "xml"},
		{output.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected output.Format
	}{
		{"", output.FormatAuto},
		{"auto", output.FormatAuto},
		{"tree", output.FormatTree},
		{"JSON", output.FormatJSON},
		{"yml", output.FormatYAML},
		{"yaml", output.FormatYAML},
		{"toml", output.FormatTOML},
		{" xml ", output.FormatXML},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := output.ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := output.ParseFormat("csv")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrOutputFormat))
		assert.Equal(t, output.FormatNames, errors.GetErrorDetails(err)["available"])
	})
}

func TestNames_AllParse(t *testing.T) {
	for _, name := range output.FormatNames {
		got, err := output.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, got.String())
	}
}
