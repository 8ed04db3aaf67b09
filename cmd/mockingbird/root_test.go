package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/mockingbird/internal/cli"
)

// run executes a fresh command tree in an isolated directory.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	t.Chdir(dir)
	cfgFile, verbose, quiet = "", 0, false

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCompile_Stdin(t *testing.T) {
	out, err := run(t, "select:\n  columns: [id]\n  from: users\n  limit: 3\n", "compile")
	require.NoError(t, err)
	assert.Equal(t, "sql: SELECT id FROM users LIMIT ?\nvalues:\n- 3\n", out)
}

func TestCompile_DialectFlag(t *testing.T) {
	out, err := run(t, "select:\n  from: users\n  where:\n    eq: [id, 1]\n", "compile", "-d", "mssql", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"sql": "SELECT * FROM users WHERE (id = @p1)"`)
	assert.Contains(t, out, `"p1": 1`)
}

func TestCompile_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "queries.yaml")
	require.NoError(t, os.WriteFile(file, []byte("select:\n  from: users\n---\nselect:\n  from: posts\n"), 0o644))

	out, err := run(t, "", "compile", file, "--dialect", "postgres")
	require.NoError(t, err)
	assert.Equal(t, "sql: SELECT * FROM users\nvalues: []\n---\nsql: SELECT * FROM posts\nvalues: []\n", out)
}

func TestCompile_Errors(t *testing.T) {
	_, err := run(t, "select: {from: users, bogus: 1}\n", "compile")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitDefinition, exitErr.Code)

	_, err = run(t, "select: {from: users}\n", "compile", "-d", "db2")
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitConfig, exitErr.Code)

	_, err = run(t, "select: {from: users, limit: 2}\n", "compile", "-d", "mssql")
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitCompile, exitErr.Code)
}

func TestDialects(t *testing.T) {
	out, err := run(t, "", "dialects")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"  mssql    named placeholders, offset-fetch pagination, pagination needs ORDER BY, AS aliases\n"+
		"* mysql    positional placeholders, limit-offset pagination, AS aliases, no FULL JOIN\n"+
		"  oracle   named placeholders, rownum pagination, bare aliases\n"+
		"  postgres positional placeholders, limit-offset pagination, AS aliases\n"+
		"  sqlite   positional placeholders, limit-offset pagination, AS aliases\n", out)
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "", "config", "show", "--source")
	require.NoError(t, err)
	assert.Equal(t, "Config file: (none, using defaults)\n\ndialect: mysql\noutput: yaml\n", out)
}

func TestConfigShow_ExplicitFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "mockingbird.yaml")
	require.NoError(t, os.WriteFile(file, []byte("dialect: sqlite\n"), 0o644))

	out, err := run(t, "", "--config", file, "config", "show")
	require.NoError(t, err)
	assert.Equal(t, "dialect: sqlite\noutput: yaml\n", out)
}
