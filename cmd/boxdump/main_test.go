package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/boxtree"
)

func record(tag string, body ...byte) []byte {
	out := binary.BigEndian.AppendUint32(nil, uint32(8+len(body)))
	out = append(out, tag...)
	return append(out, body...)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func runCLI(args ...string) (int, string, string) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run(args, stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func sample() []byte {
	return record("moov", record("mvhd", 1, 2, 3, 4)...)
}

func TestRun_Text(t *testing.T) {
	path := writeFile(t, "a.mp4", sample())

	code, out, _ := runCLI(path)

	assert.Equal(t, 0, code)
	assert.Equal(t, "root, size: 0\n\tmoov, size: 0\n\t\tmvhd, size: 4\n", out)
}

func TestRun_FlagsOverride(t *testing.T) {
	path := writeFile(t, "a.mp4", sample())

	code, out, _ := runCLI("--indent", "  ", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "root, size: 0\n  moov, size: 0\n    mvhd, size: 4\n", out)

	code, out, _ = runCLI("-f", "yaml", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "tag: mvhd")
}

func TestRun_ConfigFile(t *testing.T) {
	path := writeFile(t, "a.mp4", sample())
	cfg := writeFile(t, "boxdump.toml", []byte("format = \"yaml\"\nheuristic = \"bmff\"\n"))

	code, out, _ := runCLI("--config", cfg, path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "tag: moov")
	// mvhd is a known box, so bmff still decomposes moov.
	assert.Contains(t, out, "tag: mvhd")

	// Flags win over the file.
	code, out, _ = runCLI("--config", cfg, "--format", "text", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "\tmoov, size: 0")
}

func TestRun_MultipleFiles(t *testing.T) {
	a := writeFile(t, "a.mp4", sample())
	b := writeFile(t, "b.mp4", record("free"))

	code, out, _ := runCLI(a, b)

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "==> "+a+" <==\nroot, size: 0\n\tmoov")
	assert.Contains(t, out, "==> "+b+" <==\nroot, size: 8\n")
}

func TestRun_Malformed(t *testing.T) {
	bad := append(record("moov"), 0, 0, 0, 5, 't', 'r', 'a', 'k', 1)
	// Fix up moov's length to cover the truncated child.
	binary.BigEndian.PutUint32(bad, uint32(len(bad)))
	path := writeFile(t, "bad.mp4", bad)

	code, out, errOut := runCLI(path)

	assert.Equal(t, 1, code)
	assert.Empty(t, out, "no partial output on failure")
	assert.Contains(t, errOut, "parse failed")
	assert.Contains(t, errOut, "malformed field")
}

func TestRun_MissingFile(t *testing.T) {
	code, out, errOut := runCLI(filepath.Join(t.TempDir(), "missing.mp4"))

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "load failed")
}

func TestRun_Usage(t *testing.T) {
	code, _, errOut := runCLI()
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "syntax: boxdump")

	code, _, _ = runCLI("--help")
	assert.Equal(t, 0, code)

	code, _, _ = runCLI("--no-such-flag")
	assert.Equal(t, 2, code)
}

func TestRun_BadSettings(t *testing.T) {
	path := writeFile(t, "a.mp4", sample())

	tests := [][]string{
		{"--format", "xml", path},
		{"--heuristic", "strict", path},
		{"--max-depth", "-3", path},
		{"--log-level", "loud", path},
		{"--config", filepath.Join(t.TempDir(), "none.toml"), path},
	}
	for _, args := range tests {
		code, out, errOut := runCLI(args...)
		assert.Equal(t, 2, code, "%v", args)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "boxdump:", "%v", args)
	}
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runCLI("--version")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, boxtree.Version)
}

func TestRun_DebugLogging(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	path := writeFile(t, "a.mp4", sample())

	code, _, errOut := runCLI("--log-level", "trace", path)

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "app=boxdump")
	assert.Contains(t, errOut, "tag=mvhd")
}
