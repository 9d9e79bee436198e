package ui_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/ui"
)

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", ui.FormatAuto.String())
	assert.Equal(t, "term", ui.FormatTerminal.String())
	assert.Equal(t, "text", ui.FormatText.String())
	assert.Equal(t, "json", ui.FormatJSON.String())
	assert.Equal(t, "unknown", ui.Format(999).String())
	assert.Equal(t, "unknown", ui.Format(-1).String())
}

func TestParseFormat(t *testing.T) {
	tests := map[string]ui.Format{
		"":         ui.FormatAuto,
		"auto":     ui.FormatAuto,
		"term":     ui.FormatTerminal,
		"TERMINAL": ui.FormatTerminal,
		"text":     ui.FormatText,
		"plain":    ui.FormatText,
		"Json":     ui.FormatJSON,
		" json ":   ui.FormatJSON,
	}
	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			got, err := ui.ParseFormat(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	// every format parses back from its name
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		got, err := ui.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ui.ParseFormat("yaml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "unknown format")
}

func TestDetectFormat(t *testing.T) {
	t.Run("NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
	})

	t.Run("pipe", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		defer func() { _ = r.Close() }()
		defer func() { _ = w.Close() }()

		assert.Equal(t, ui.FormatText, ui.DetectFormat(w))
	})
}
