package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}

	return path
}

func execRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd()

	var out, errBuf bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), errBuf.String(), err
}

func TestRootCmd_Fields(t *testing.T) {
	path := writeInput(t, "books.csv", "Author,Year,Title\nLemony Snicket,1999,The Bad Beginning\n")

	stdout, _, err := execRoot(t, "-d", ",", "-f", "1,3", path)
	require.NoError(t, err)

	assert.Equal(t, "Author,Title\nLemony Snicket,The Bad Beginning\n", stdout)
}

func TestRootCmd_FieldsDefaultTabDelimiter(t *testing.T) {
	path := writeInput(t, "data.tsv", "a\tb\tc\n")

	stdout, _, err := execRoot(t, "-f", "2", path)
	require.NoError(t, err)

	assert.Equal(t, "b\n", stdout)
}

func TestRootCmd_Chars(t *testing.T) {
	path := writeInput(t, "names.txt", "ábc\nxyz\n")

	stdout, _, err := execRoot(t, "-c", "1,3", path)
	require.NoError(t, err)

	assert.Equal(t, "ác\nxz\n", stdout)
}

func TestRootCmd_BytesLossyDecode(t *testing.T) {
	path := writeInput(t, "glyphs.txt", "ábc\n")

	stdout, _, err := execRoot(t, "-b", "1", path)
	require.NoError(t, err)

	assert.Equal(t, "�\n", stdout)
}

func TestRootCmd_SelectionOrderPreserved(t *testing.T) {
	path := writeInput(t, "row.csv", "f1,f2,f3,f4,f5,f6,f7\n")

	stdout, _, err := execRoot(t, "-d", ",", "-f", "1,7,3-5", path)
	require.NoError(t, err)

	assert.Equal(t, "f1,f7,f3,f4,f5\n", stdout)
}

func TestRootCmd_MissingMode(t *testing.T) {
	_, _, err := execRoot(t, "whatever.txt")
	require.EqualError(t, err, "must have --fields, --bytes, or --chars")
}

func TestRootCmd_MutuallyExclusiveModes(t *testing.T) {
	_, _, err := execRoot(t, "-f", "1", "-c", "1", "in.txt")
	require.Error(t, err)
}

func TestRootCmd_MultiByteDelimiter(t *testing.T) {
	_, _, err := execRoot(t, "-d", ",,", "-f", "1", "in.txt")
	require.EqualError(t, err, `--delim ",," must be a single byte`)
}

func TestRootCmd_BadSelectionList(t *testing.T) {
	tests := []struct {
		list    string
		wantErr string
	}{
		{list: "a", wantErr: `illegal list value: "a"`},
		{list: "0", wantErr: `illegal list value: "0"`},
		{list: "2-1", wantErr: "First number in range (2) must be lower than second number (1)"},
		{list: "", wantErr: "empty string"},
	}

	for _, tt := range tests {
		t.Run(tt.list, func(t *testing.T) {
			stdout, _, err := execRoot(t, "-f", tt.list, "in.txt")
			require.EqualError(t, err, tt.wantErr)
			assert.Empty(t, stdout, "no partial output on configuration errors")
		})
	}
}

func TestRootCmd_PerFileIsolation(t *testing.T) {
	good := writeInput(t, "good.txt", "hello\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	stdout, stderr, err := execRoot(t, "-c", "1-5", missing, good)
	require.NoError(t, err, "an unreadable file must not abort the run")

	assert.Equal(t, "hello\n", stdout)
	assert.Contains(t, stderr, "missing.txt")
}

func TestRootCmd_Summary(t *testing.T) {
	path := writeInput(t, "in.txt", "one\ntwo\n")

	stdout, stderr, err := execRoot(t, "-c", "1", "--summary", path)
	require.NoError(t, err)

	assert.Equal(t, "o\nt\n", stdout)
	assert.Contains(t, stderr, "in.txt")
	assert.Contains(t, stderr, "TOTAL FILES 1")
}

func TestRootCmd_ConfigFileFillsDelimiter(t *testing.T) {
	cfg := writeInput(t, "carve.yaml", "delimiter: \",\"\n")
	data := writeInput(t, "data.csv", "a,b,c\n")

	stdout, _, err := execRoot(t, "--config", cfg, "-f", "2", data)
	require.NoError(t, err)

	assert.Equal(t, "b\n", stdout)
}

func TestRootCmd_FlagBeatsConfigFile(t *testing.T) {
	cfg := writeInput(t, "carve.yaml", "delimiter: \",\"\n")
	data := writeInput(t, "data.txt", "a;b;c\n")

	stdout, _, err := execRoot(t, "--config", cfg, "-d", ";", "-f", "3", data)
	require.NoError(t, err)

	assert.Equal(t, "c\n", stdout)
}

func TestRootCmd_ConfigFileViaEnvVar(t *testing.T) {
	cfg := writeInput(t, "carve.yaml", "delimiter: \",\"\n")
	data := writeInput(t, "data.csv", "x,y\n")

	t.Setenv("CARVE_CONFIG", cfg)

	stdout, _, err := execRoot(t, "-f", "2", data)
	require.NoError(t, err)

	assert.Equal(t, "y\n", stdout)
}

func TestRootCmd_InputEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xE9, 't', 0xE9, '\n'}, 0o644))

	stdout, _, err := execRoot(t, "--input-encoding", "ISO-8859-1", "-c", "1-3", path)
	require.NoError(t, err)

	assert.Equal(t, "été\n", stdout)
}

func TestRootCmd_UnknownInputEncoding(t *testing.T) {
	_, _, err := execRoot(t, "--input-encoding", "no-such-charset", "-c", "1", "in.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-charset")
}

func TestRootCmd_Stdin(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	originalStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = originalStdin }()

	_, writeErr := w.WriteString("stdin line\n")
	require.NoError(t, writeErr)
	require.NoError(t, w.Close())

	stdout, _, err := execRoot(t, "-c", "1-5")
	require.NoError(t, err)

	assert.Equal(t, "stdin\n", stdout)
}

func TestRootCmd_HasVersion(t *testing.T) {
	cmd := newRootCmd()
	assert.NotEmpty(t, cmd.Version)
}

func TestRootCmd_SilencesCobraNoise(t *testing.T) {
	cmd := newRootCmd()
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
}
