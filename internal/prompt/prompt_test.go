package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "confirmed", Confirmed.String())
	assert.Equal(t, "declined", Declined.String())
	assert.Equal(t, "timed out", TimedOut.String())
}

func TestHuhImplementsPrompter(t *testing.T) {
	var p Prompter = &Huh{}

	assert.NotNil(t, p)
}
