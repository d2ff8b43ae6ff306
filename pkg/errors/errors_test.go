package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	err := New(ErrCodeOutOfRange, "vertex %d outside [1, %d]", 9, 4)
	assert.Equal(t, "OUT_OF_RANGE: vertex 9 outside [1, 4]", err.Error())
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("unexpected token %q", "x")
	err := Wrap(ErrCodeParse, cause, "failed to read edges")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "PARSE_ERROR")
	assert.Contains(t, err.Error(), `unexpected token "x"`)
}

func TestIs_MatchesCodeThroughChain(t *testing.T) {
	inner := New(ErrCodeNotFound, "report missing")
	outer := fmt.Errorf("lookup: %w", inner)

	assert.True(t, Is(outer, ErrCodeNotFound))
	assert.False(t, Is(outer, ErrCodeParse))
	assert.False(t, Is(stderrors.New("plain"), ErrCodeNotFound))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, GetCode(New(ErrCodeInternal, "boom")))
	assert.Equal(t, Code(""), GetCode(stderrors.New("plain")))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "report missing", UserMessage(New(ErrCodeNotFound, "report missing")))
	assert.Equal(t, "plain", UserMessage(stderrors.New("plain")))
}
