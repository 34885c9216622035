package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	cases := map[string]State{
		"ALL":      StateAll,
		"all":      StateAll,
		"Current":  StateCurrent,
		"waiting":  StateWaiting,
		"REJECTED": StateRejected,
		"past":     StatePast,
		"fUtUrE":   StateFuture,
	}
	for input, want := range cases {
		got, err := ParseState(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseStateRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "SOMETIMES", "APPROVED", "ALL "} {
		_, err := ParseState(input)
		assert.ErrorIs(t, err, ErrInvalidRequest, "input %q", input)
	}
}
