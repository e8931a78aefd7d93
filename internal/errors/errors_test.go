package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkedErrorMatchesSentinel(t *testing.T) {
	err := Mark(Newf("unsupported framework: %q", "vue"), ErrUnsupportedFramework)

	assert.True(t, Is(err, ErrUnsupportedFramework))
	assert.False(t, Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "vue")
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(ErrTreeTooDeep, "generate")
	assert.True(t, Is(err, ErrTreeTooDeep))
	assert.Equal(t, "generate: element tree too deep", err.Error())
}

func TestHints(t *testing.T) {
	assert.Nil(t, Hints(nil))

	err := WithHint(Wrap(ErrNotConfigured, "gemini"), "set GEMINI_API_KEY")
	assert.Equal(t, []string{"set GEMINI_API_KEY"}, Hints(err))
}
