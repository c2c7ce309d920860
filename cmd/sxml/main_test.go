package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--color", "off"}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestTokenizePretty(t *testing.T) {
	path := writeFile(t, "note.xml", []byte(`<?xml version="1.0"?><!--c--><note to="Tove"><b/>hi</note>`))
	out, err := execute(t, "", "tokenize", path)
	require.NoError(t, err)

	expected := path + "\n" +
		"Instruction xml\n" +
		"  version = \"1.0\"\n" +
		"Comment     \"c\"\n" +
		"StartTag    note\n" +
		"  to = \"Tove\"\n" +
		"  StartTag    b\n" +
		"  EndTag      b\n" +
		"  CharData    \"hi\"\n" +
		"EndTag      note\n"
	require.Equal(t, expected, out)
}

func TestTokenizeJSON(t *testing.T) {
	out, err := execute(t, `<a x='1'>text</a>`, "tokenize", "--format", "json")
	require.NoError(t, err)

	var files []fileRecord
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	require.Len(t, files, 1)
	require.Equal(t, stdinName, files[0].File)
	require.Equal(t, []tokenRecord{
		{Type: "StartTag", Start: 1, End: 2, Size: 1, Text: "a"},
		{Type: "CharData", Start: 3, End: 4, Text: "x"},
		{Type: "AttrVal", Start: 6, End: 7, Text: "1"},
		{Type: "CharData", Start: 9, End: 13, Text: "text"},
		{Type: "EndTag", Start: 15, End: 16, Text: "a"},
	}, files[0].Tokens)
}

func TestTokenizeFormats(t *testing.T) {
	in := `<root><item id="1">one</item><item id="2"/></root>`
	out, err := execute(t, in, "tokenize", "-f", "json")
	require.NoError(t, err)
	var expected []fileRecord
	require.NoError(t, json.Unmarshal([]byte(out), &expected))

	out, err = execute(t, in, "tokenize", "-f", "yaml")
	require.NoError(t, err)
	var files []fileRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &files))
	require.Equal(t, expected, files)

	out, err = execute(t, in, "tokenize", "-f", "msgpack")
	require.NoError(t, err)
	files = nil
	require.NoError(t, msgpack.Unmarshal([]byte(out), &files))
	require.Equal(t, expected, files)
}

func TestTokenizeChunked(t *testing.T) {
	in := "<?xml version='1.0'?>\n<!DOCTYPE r [<!ELEMENT r ANY>]>\n<r a='1' b=\"2\"><![CDATA[x<y]]><!-- c --><s/></r>"
	whole, err := execute(t, in, "tokenize", "-f", "json")
	require.NoError(t, err)

	for _, chunk := range []string{"1", "2", "7"} {
		out, err := execute(t, in, "tokenize", "-f", "json", "--chunk", chunk, "--tokens", "1")
		require.NoError(t, err, "chunk", chunk)
		require.Equal(t, whole, out, "chunk", chunk)
	}
}

func TestTokenizeByteOrderMark(t *testing.T) {
	expected, err := execute(t, "<a>hi</a>", "tokenize", "-f", "json")
	require.NoError(t, err)

	out, err := execute(t, "\xEF\xBB\xBF<a>hi</a>", "tokenize", "-f", "json")
	require.NoError(t, err)
	require.Equal(t, expected, out)

	utf16 := []byte{0xFF, 0xFE}
	for _, c := range []byte("<a>hi</a>") {
		utf16 = append(utf16, c, 0x00)
	}
	out, err = execute(t, string(utf16), "tokenize", "-f", "json")
	require.NoError(t, err)
	require.Equal(t, expected, out)
}

func TestTokenizeErrors(t *testing.T) {
	_, err := execute(t, "<a>\n<b x=1/></a>", "tokenize")
	require.ErrorContains(t, err, "expected quoted attribute value on line 2 and column 6")

	_, err = execute(t, "<a><b>", "tokenize")
	require.ErrorContains(t, err, "unexpected EOF")

	_, err = execute(t, "<a></a>", "tokenize", "-f", "xml")
	require.ErrorContains(t, err, "invalid config")

	_, err = execute(t, "", "tokenize", filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)

	_, err = execute(t, "<a><b></a></b>", "tokenize")
	require.NoError(t, err)
	_, err = execute(t, "<a><b></a></b>", "tokenize", "--match-end-tags")
	require.ErrorContains(t, err, "end tag does not match start tag")
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.xml", []byte(`<a><b/></a>`))
	bad := writeFile(t, "bad.xml", []byte(`<a><b></a`))
	out, err := execute(t, "", "check", "-j", "2", good, bad)
	require.ErrorContains(t, err, "1 of 2 documents are invalid")
	require.Contains(t, out, "OK   "+good+": 4 tokens\n")
	require.Contains(t, out, "FAIL "+bad+": unexpected EOF\n")

	out, err = execute(t, "", "check", good)
	require.NoError(t, err)
	require.Equal(t, "OK   "+good+": 4 tokens\n", out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "sxml "+version+" ("), out)
}

func TestTokenizeTruncate(t *testing.T) {
	out, err := execute(t, "<a>"+strings.Repeat("x", 100)+"</a>", "tokenize")
	require.NoError(t, err)
	require.Contains(t, out, "  CharData    \""+strings.Repeat("x", 69)+"...\"\n")

	out, err = execute(t, "<a>"+strings.Repeat("x", 100)+"</a>", "tokenize", "-f", "json")
	require.NoError(t, err)
	require.Contains(t, out, strings.Repeat("x", 100))
}
