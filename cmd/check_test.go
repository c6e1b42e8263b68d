package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"check"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestCheckCmd_PrintsRanges(t *testing.T) {
	output, err := execCheck(t, "1,7,3-5")
	require.NoError(t, err)

	for _, want := range []string{"RANGE", "START", "END", "UNITS", "TOTAL", "5"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestCheckCmd_BadList(t *testing.T) {
	output, err := execCheck(t, "1-1")
	require.EqualError(t, err, "First number in range (1) must be lower than second number (1)")
	assert.Empty(t, output)
}

func TestCheckCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := execCheck(t)
	require.Error(t, err)
}
