package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunClearCancelled(t *testing.T) {
	var out bytes.Buffer
	clearCmd.SetIn(strings.NewReader("n\n"))
	clearCmd.SetOut(&out)
	clearCmd.SetErr(&out)

	// Declining the prompt must bail out before the database is touched.
	err := runClear(clearCmd, nil)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Are you sure")
	assert.Contains(t, out.String(), "Cancelled")
}

func TestRunClearEmptyAnswerCancels(t *testing.T) {
	var out bytes.Buffer
	clearCmd.SetIn(strings.NewReader("\n"))
	clearCmd.SetOut(&out)
	clearCmd.SetErr(&out)

	err := runClear(clearCmd, nil)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Cancelled")
}
