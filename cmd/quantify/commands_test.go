package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/quantify"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { quantify.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCatalogCommand(t *testing.T) {
	out, _, err := run(t, "catalog", "--group", "temperature")
	require.NoError(t, err)

	assert.Contains(t, out, "GROUP")
	assert.Contains(t, out, "kelvin")
	assert.Contains(t, out, "degree Celsius")
	assert.Contains(t, out, "273.15")
	assert.NotContains(t, out, "meter")
}

func TestCatalogCommandAllGroups(t *testing.T) {
	out, _, err := run(t, "catalog")
	require.NoError(t, err)

	for _, name := range []string{"meter", "kilogram", "second", "ampere", "candela", "newton", "pascal"} {
		assert.Contains(t, out, name)
	}
}

func TestCatalogCommandUnknownGroup(t *testing.T) {
	_, _, err := run(t, "catalog", "--group", "colour")
	assert.EqualError(t, err, `unknown group "colour"`)
}

func TestTableCommand(t *testing.T) {
	out, _, err := run(t, "table", "--group", "temperature", "--value", "273.15")
	require.NoError(t, err)

	assert.Contains(t, out, "273.15 K")
	assert.Contains(t, out, "0 °C")
	assert.Contains(t, out, "(degree Fahrenheit)")
}

func TestTableCommandSkipsIncompatible(t *testing.T) {
	out, stderr, err := run(t, "--verbose", "table", "--group", "energy")
	require.NoError(t, err)

	assert.Contains(t, out, "(kilojoule)")
	assert.NotContains(t, out, "(watt)")
	assert.Contains(t, stderr, "skipping incompatible unit")
}

func TestTableCommandRequiresGroup(t *testing.T) {
	_, _, err := run(t, "table")
	assert.Error(t, err)
}

func TestVerifyCommand(t *testing.T) {
	out, stderr, err := run(t, "verify")
	require.NoError(t, err)

	assert.Contains(t, out, "ok:")
	assert.Contains(t, out, "units verified")
	assert.Contains(t, stderr, "catalog verified")
}
