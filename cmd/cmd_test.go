package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleFile = `"root"
{
	"a"	"1"
	"b"
	{
		"c"	"2"
	}
}
`

// run executes kvq with args against a fresh command tree and an empty
// home directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestJsonCmd(t *testing.T) {
	in := writeFile(t, "root.txt", exampleFile)

	out, err := run(t, "json", "-i", in)
	require.NoError(t, err)
	assert.Equal(t, "{\n\"a\" : \"1\",\n\"b\" : {\n\"c\" : \"2\"\n}\n}\n", out)
}

func TestJsonCmd_OutputFile(t *testing.T) {
	in := writeFile(t, "root.txt", exampleFile)
	target := filepath.Join(t.TempDir(), "out", "root.json")

	out, err := run(t, "json", "-i", in, "-o", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "{\n\"a\" : \"1\",\n\"b\" : {\n\"c\" : \"2\"\n}\n}", string(data))
}

func TestJsonCmd_MissingInput(t *testing.T) {
	_, err := run(t, "json", "-i", filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorContains(t, err, "input file not exist")

	_, err = run(t, "json")
	assert.ErrorContains(t, err, "no input file path")
}

func TestYamlCmd(t *testing.T) {
	in := writeFile(t, "root.txt", exampleFile)

	out, err := run(t, "yaml", "-i", in, "--check")
	require.NoError(t, err)
	assert.Equal(t, "a: \"1\"\nb:\n  c: \"2\"\n", out)

	out, err = run(t, "yaml", "-i", in, "--indent", "4")
	require.NoError(t, err)
	assert.Equal(t, "a: \"1\"\nb:\n    c: \"2\"\n", out)
}

func TestYamlCmd_ConfigIndent(t *testing.T) {
	in := writeFile(t, "root.txt", exampleFile)
	cfg := writeFile(t, "kvq.yaml", "indent: 3\n")

	out, err := run(t, "--config", cfg, "yaml", "-i", in)
	require.NoError(t, err)
	assert.Equal(t, "a: \"1\"\nb:\n   c: \"2\"\n", out)
}

func TestGetCmd(t *testing.T) {
	in := writeFile(t, "root.txt", exampleFile)

	out, err := run(t, "get", "-i", in, "-f", "b.c")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = run(t, "get", "-i", in, "-f", "b")
	require.NoError(t, err)
	assert.Equal(t, "{\n\"c\" : \"2\"\n}\n", out)

	_, err = run(t, "get", "-i", in, "-f", "x.y")
	assert.ErrorContains(t, err, `path "x.y" not found`)
}

func TestListCmd(t *testing.T) {
	in := writeFile(t, "root.txt", exampleFile)

	out, err := run(t, "list", "-i", in)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "| Path   | Key | Value |", lines[0])
	assert.Equal(t, strings.Repeat("_", len(lines[0])), lines[1])
	assert.Equal(t, "| root   | a   | 1     |", lines[2])
	assert.Equal(t, "| root.b | c   | 2     |", lines[3])

	out, err = run(t, "list", "-i", in, "--path", "root.b")
	require.NoError(t, err)
	assert.NotContains(t, out, "| a ")
	assert.Contains(t, out, "root.b")

	out, err = run(t, "list", "-i", in, "--depth", "0")
	require.NoError(t, err)
	assert.NotContains(t, out, "root.b")
}

func TestPathsCmd(t *testing.T) {
	in := writeFile(t, "root.txt", exampleFile)

	out, err := run(t, "paths", "-i", in)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nb.c\n", out)

	out, err = run(t, "paths", "-i", in, "--depth", "0")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	out, err = run(t, "paths", "-i", in, "--prefix", "b.")
	require.NoError(t, err)
	assert.Equal(t, "b.c\n", out)
}

func TestMergeCmd(t *testing.T) {
	first := writeFile(t, "first.txt", exampleFile)
	second := writeFile(t, "second.txt", "\"root\"\n{\n\"a\" \"9\"\n\"b\"\n{\n\"d\" \"4\"\n}\n}\n")

	out, err := run(t, "merge", "-i", first, "-i", second)
	require.NoError(t, err)
	assert.Equal(t, "{\n\"a\" : \"9\",\n\"b\" : {\n\"c\" : \"2\",\n\"d\" : \"4\"\n}\n}\n", out)

	out, err = run(t, "merge", first, second, "--to", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "a: \"9\"\nb:\n  c: \"2\"\n  d: \"4\"\n", out)

	_, err = run(t, "merge", first, "--to", "xml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = run(t, "merge")
	assert.ErrorContains(t, err, "no input file path")
}

func TestDiffCmd(t *testing.T) {
	first := writeFile(t, "first.txt", exampleFile)
	second := writeFile(t, "second.txt", strings.Replace(exampleFile, `"c"	"2"`, `"c"	"3"`, 1))

	out, err := run(t, "diff", first, second)
	require.NoError(t, err)
	assert.Contains(t, out, "- \"c\" : \"2\"\n")
	assert.Contains(t, out, "+ \"c\" : \"3\"\n")
	assert.Contains(t, out, "  \"a\" : \"1\",\n")

	_, err = run(t, "diff", first)
	assert.Error(t, err)
}

func TestCharsetFlag(t *testing.T) {
	raw := []byte{0xff, 0xfe}
	for _, r := range exampleFile {
		raw = append(raw, byte(r), 0)
	}
	in := filepath.Join(t.TempDir(), "utf16.txt")
	require.NoError(t, os.WriteFile(in, raw, 0o644))

	out, err := run(t, "--charset", "utf-16", "get", "-i", in, "-f", "a")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = run(t, "--log-level", "shout", "version")
	assert.ErrorContains(t, err, "unknown log level")
}
