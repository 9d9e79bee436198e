package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/htmlify/pkg/errors"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.HtmlifyError
		want string
	}{
		{
			name: "unterminated placeholder",
			err:  errors.New(errors.ErrMalformedTemplate, "placeholder never closed"),
			want: "[MALFORMED_TEMPLATE] placeholder never closed",
		},
		{
			name: "formatted tag name",
			err:  errors.Newf(errors.ErrMissingAttribute, "tag %q requires an attribute", "color"),
			want: `[MISSING_ATTRIBUTE] tag "color" requires an attribute`,
		},
		{
			name: "wrapped encoder failure",
			err: errors.Wrap(stderrors.New("rune not supported"),
				errors.ErrCharsetConversion, "cannot encode output"),
			want: "[CHARSET_CONVERSION] cannot encode output: rune not supported",
		},
		{
			name: "formatted wrap",
			err: errors.Wrapf(fs.ErrPermission, errors.ErrFileWrite,
				"cannot write %s", "out.html"),
			want: "[FILE_WRITE] cannot write out.html: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.NotNil(t, tt.err.Details)
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrCharsetConversion, "cannot encode output"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrFileAccess, "cannot read %s", "in.txt"))
}

func TestDetails(t *testing.T) {
	err := errors.Newf(errors.ErrMissingAttribute, "tag %q requires an attribute", "url").
		WithDetail("tag", "url").
		WithDetails(map[string]interface{}{"offset": 12, "line": 3})

	assert.Equal(t, map[string]interface{}{"tag": "url", "offset": 12, "line": 3},
		errors.GetErrorDetails(err))

	wrapped := errors.Wrap(err, errors.ErrXHTMLInvalid, "output rejected")
	assert.Empty(t, errors.GetErrorDetails(wrapped), "details belong to the outer error")
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIsComparesCodes(t *testing.T) {
	first := errors.New(errors.ErrMalformedTemplate, "empty placeholder name")
	second := errors.New(errors.ErrMalformedTemplate, "placeholder never closed")
	other := errors.New(errors.ErrMissingPlaceholder, "no inner placeholder")

	assert.True(t, stderrors.Is(first, second))
	assert.False(t, stderrors.Is(first, other))
	assert.False(t, first.Is(stderrors.New("plain")))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code errors.ErrorCode
		want bool
	}{
		{"matching code", errors.New(errors.ErrMissingAttribute, "no value"), errors.ErrMissingAttribute, true},
		{"different code", errors.New(errors.ErrMissingAttribute, "no value"), errors.ErrMalformedTemplate, false},
		{"wrapped cause", errors.Wrap(stderrors.New("bad byte"), errors.ErrCharsetConversion, "encode"), errors.ErrCharsetConversion, true},
		{"plain error", stderrors.New("plain"), errors.ErrCharsetConversion, false},
		{"nil error", nil, errors.ErrMalformedTemplate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrMalformedTemplate,
		errors.GetErrorCode(errors.New(errors.ErrMalformedTemplate, "placeholder never closed")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChain(t *testing.T) {
	cause := stderrors.New("rune U+20AC not in charset")
	encodeErr := errors.Wrap(cause, errors.ErrCharsetConversion, "cannot encode page.txt")
	writeErr := errors.Wrap(encodeErr, errors.ErrFileWrite, "page.html not written")

	assert.True(t, errors.IsErrorCode(writeErr, errors.ErrFileWrite))
	assert.True(t, stderrors.Is(writeErr, cause))

	var inner *errors.HtmlifyError
	require.True(t, stderrors.As(writeErr.Unwrap(), &inner))
	assert.Equal(t, errors.ErrCharsetConversion, inner.Code)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"no error", nil, 0},
		{"bad flag", errors.New(errors.ErrInvalidInput, "bad flag"), 1},
		{"invalid config", errors.New(errors.ErrConfigValid, "validate needs xhtml"), 1},
		{"malformed template", errors.New(errors.ErrMalformedTemplate, "placeholder never closed"), 1},
		{"missing attribute", errors.New(errors.ErrMissingAttribute, "no value"), 1},
		{"invalid xhtml", errors.New(errors.ErrXHTMLInvalid, "unbalanced element"), 1},
		{"file not found", errors.New(errors.ErrFileNotFound, "missing.txt"), 2},
		{"file too large", errors.New(errors.ErrFileTooLarge, "too big"), 2},
		{"write failed", errors.Wrap(stderrors.New("disk full"), errors.ErrFileWrite, "write failed"), 2},
		{"charset conversion", errors.New(errors.ErrCharsetConversion, "euro sign"), 3},
		{"charset conversion wrapped by plain error", wrapPlain(errors.New(errors.ErrCharsetConversion, "euro sign")), 3},
		{"plain error", stderrors.New("plain"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.ExitCode(tt.err))
		})
	}
}

type plainWrapper struct{ err error }

func (w plainWrapper) Error() string { return "convert: " + w.err.Error() }
func (w plainWrapper) Unwrap() error { return w.err }

func wrapPlain(err error) error { return plainWrapper{err} }
