package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_RequiresTwoArguments(t *testing.T) {
	err := newApp().Run([]string{"filingest"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ticker doctype")
}

func TestRun_RejectsUnknownDocType(t *testing.T) {
	err := newApp().Run([]string{"filingest", "AAPL", "S-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10-K, 10-Q, 8-K")
}

func TestRun_RejectsInvalidLogLevel(t *testing.T) {
	err := newApp().Run([]string{"filingest", "--log-level", "loud", "AAPL", "10-K"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
