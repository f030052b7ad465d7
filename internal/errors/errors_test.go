package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())
	assert.Equal(t, origErr, Unwrap(wrappedErr))

	assert.Nil(t, Wrap(nil, "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestInputError(t *testing.T) {
	cause := fmt.Errorf("bad file descriptor")
	inputErr := NewInputError("poll", InputPollFailed, cause)

	assert.Equal(t, "input source failed: op=poll: bad file descriptor", inputErr.Error())
	assert.Equal(t, "poll", inputErr.Op())
	assert.Equal(t, InputPollFailed, inputErr.Kind())
	assert.Equal(t, cause, Unwrap(inputErr))

	assert.True(t, IsInputFailure(inputErr))
	assert.True(t, IsInputFailure(fmt.Errorf("driver: %w", inputErr)))
	assert.False(t, IsInputFailure(cause))

	noCause := NewInputError("read", InputReadFailed, nil)
	assert.Equal(t, "input source failed: op=read", noCause.Error())
}

func TestSourceClosed(t *testing.T) {
	assert.True(t, IsSourceClosed(ErrSourceClosed))
	assert.True(t, IsSourceClosed(fmt.Errorf("next: %w", ErrSourceClosed)))
	assert.True(t, Is(fmt.Errorf("next: %w", ErrSourceClosed), ErrSourceClosed))
	assert.False(t, IsSourceClosed(New("other")))
	assert.False(t, IsSourceClosed(nil))
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("invalid value", "tick_rate", InvalidConfig, nil)
	assert.Equal(t, "invalid value: tick_rate", configErr.Error())
	assert.Equal(t, "tick_rate", configErr.Param())
	assert.True(t, IsInvalidConfig(configErr))

	origErr := errors.New("must be positive")
	configErr = NewConfigError("invalid value", "tick_rate", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: tick_rate: must be positive", configErr.Error())
	assert.Equal(t, origErr, Unwrap(configErr))

	notFound := NewConfigError("config file not found", "/nope.yaml", ConfigNotFound, nil)
	assert.False(t, IsInvalidConfig(notFound))
	assert.True(t, IsConfigNotFound(fmt.Errorf("load: %w", notFound)))
	assert.False(t, IsConfigNotFound(configErr))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, Unknown},
		{"plain", errors.New("plain"), Unknown},
		{"application", New("app"), Unknown},
		{"input", NewInputError("read", InputReadFailed, nil), InputReadFailed},
		{"config", NewConfigError("bad", "theme", InvalidConfig, nil), InvalidConfig},
		{"terminal", NewTerminalError("raw mode", errors.New("ENOTTY")), TerminalSetupFailed},
		{"wrapped closed", fmt.Errorf("x: %w", ErrSourceClosed), SourceClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "input_poll_failed", InputPollFailed.String())
	assert.Equal(t, "source_closed", SourceClosed.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}
