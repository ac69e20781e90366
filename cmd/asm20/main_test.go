package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const source = "add 2 12 -2\n\nmul 1 2 3\nload 1 2 3\n"

func writeSource(t *testing.T) (dir, path string) {
	t.Helper()

	dir = t.TempDir()
	path = filepath.Join(dir, "prog.asm")
	err := os.WriteFile(path, []byte(source), 0o644)
	assert.NoError(t, err)

	return
}

func TestRunHex(t *testing.T) {
	assert := assert.New(t)

	dir, src := writeSource(t)
	dst := filepath.Join(dir, "prog.hex")

	var stderr bytes.Buffer
	assert.Equal(0, run("asm20", []string{src, dst}, &stderr))

	data, err := os.ReadFile(dst)
	assert.NoError(err)
	assert.Equal("4099e\n08443\n", string(data))
}

func TestRunCode(t *testing.T) {
	assert := assert.New(t)

	dir, src := writeSource(t)
	dst := filepath.Join(dir, "prog.vhd")

	var stderr bytes.Buffer
	assert.Equal(0, run("asm20", []string{"-no-comment", src, dst, "4"}, &stderr))

	data, err := os.ReadFile(dst)
	assert.NoError(err)
	assert.Equal(
		"                var_insn_mem(4) := X\"4099e\";\n"+
			"                var_insn_mem(5) := X\"08443\";\n",
		string(data))
}

func TestRunFailures(t *testing.T) {
	assert := assert.New(t)

	dir, src := writeSource(t)
	dst := filepath.Join(dir, "out.hex")

	table := []struct {
		name string
		args []string
	}{
		{"no arguments", []string{}},
		{"no destination", []string{src}},
		{"bad start index", []string{src, dst, "ten"}},
		{"extra arguments", []string{src, dst, "0", "more"}},
		{"missing source", []string{filepath.Join(dir, "missing.asm"), dst}},
		{"bad destination", []string{src, filepath.Join(dir, "missing", "out.hex")}},
		{"unknown flag", []string{"-x", src, dst}},
	}

	for _, entry := range table {
		var stderr bytes.Buffer
		assert.Equal(1, run("asm20", entry.args, &stderr), entry.name)
		assert.NotEmpty(stderr.String(), entry.name)
	}

	_, err := os.Stat(dst)
	assert.True(os.IsNotExist(err))
}
