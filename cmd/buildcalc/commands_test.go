package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ersonp/buildcalc/internal/domain/entities"
	"github.com/ersonp/buildcalc/internal/domain/services"
	"github.com/ersonp/buildcalc/internal/infrastructure/config"
)

// execute runs the CLI against configDir and returns stdout.
func execute(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config-dir", configDir}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestConvertCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"explicit units", []string{"convert", "12", "in", "ft"}, "1 ft\n"},
		{"describe", []string{"convert", "12", "in", "ft", "--describe"}, "12 inches = 1 foot\n"},
		{"explicit kind", []string{"convert", "1", "ac", "ft²", "--kind", "area"}, "43,560 ft²\n"},
		{"configured target", []string{"convert", "3", "m"}, "9.8425 ft\n"},
		{"max digits", []string{"convert", "1234567.891", "mm", "mm", "--max-digits", "2"}, "1,234,567.89 mm\n"},
		{"invalid number", []string{"convert", "abc", "m", "ft"}, "no value\n"},
		{"empty number", []string{"convert", "", "m", "ft"}, "no value\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, t.TempDir(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestConvertCmd_UnknownUnit(t *testing.T) {
	_, err := execute(t, t.TempDir(), "convert", "1", "m", "kg")
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrUnknownUnit)
}

func TestConvertCmd_UsesConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Units["length"] = "m"
	cfg.Format.MaxFractionDigits = 2
	require.NoError(t, config.Write(dir, cfg))

	out, err := execute(t, dir, "convert", "3", "ft")
	require.NoError(t, err)
	assert.Equal(t, "0.91 m\n", out)

	out, err = execute(t, dir, "convert", "3", "ft", "--max-digits", "4")
	require.NoError(t, err)
	assert.Equal(t, "0.9144 m\n", out)
}

func TestFormatCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"grouped", []string{"format", "1234.5"}, "1,234.5\n"},
		{"min digits", []string{"format", "0.5", "--min-digits", "2"}, "0.50\n"},
		{"negative zero", []string{"format", "--", "-0.00001"}, "0\n"},
		{"no value", []string{"format", "twelve"}, "no value\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, t.TempDir(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestCompositeCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"to", []string{"composite", "to", "66", "in"}, "5 ft 6 in\n"},
		{"to metric", []string{"composite", "to", "2", "m", "--scheme", "m-cm"}, "2 m 0 cm\n"},
		{"from", []string{"composite", "from", "5", "6", "in"}, "66 in\n"},
		{"between", []string{"composite", "between", "6", "0", "ft-in", "m-cm"}, "1 m 82.88 cm\n"},
		{"no value", []string{"composite", "to", "", "in"}, "no value\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, t.TempDir(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestCompositeCmd_ConfiguredScheme(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Composite = string(entities.CompositeMetersCentimeters)
	require.NoError(t, config.Write(dir, cfg))

	out, err := execute(t, dir, "composite", "to", "150", "cm")
	require.NoError(t, err)
	assert.Equal(t, "1 m 50 cm\n", out)
}

func TestPitchCmd(t *testing.T) {
	out, err := execute(t, t.TempDir(), "pitch", "--rise", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "26.5651°")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "6:12")
}

func TestPitchCmd_Errors(t *testing.T) {
	_, err := execute(t, t.TempDir(), "pitch", "--degrees", "90")
	assert.ErrorIs(t, err, entities.ErrPitchOutOfRange)

	_, err = execute(t, t.TempDir(), "pitch", "--degrees", "10", "--rise", "2")
	assert.Error(t, err)

	_, err = execute(t, t.TempDir(), "pitch")
	assert.Error(t, err)
}

func TestUnitsAndKindsCmd(t *testing.T) {
	out, err := execute(t, t.TempDir(), "units", "length")
	require.NoError(t, err)
	assert.Contains(t, out, "SYMBOL")
	assert.Contains(t, out, "foot")
	assert.NotContains(t, out, "acre")

	_, err = execute(t, t.TempDir(), "units", "time")
	assert.ErrorIs(t, err, entities.ErrUnknownKind)

	out, err = execute(t, t.TempDir(), "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "density")
	assert.Contains(t, out, "kg/m³")
}

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")
	assert.True(t, config.Exists(dir))

	_, err = execute(t, dir, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestBatchCmd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "site.csv")
	require.NoError(t, os.WriteFile(input, []byte("id,kind,value,from,to,composite\nr1,length,66,in,ft,ft-in\nr2,length,,m,cm,\n"), 0644))

	t.Run("csv to stdout", func(t *testing.T) {
		out, err := execute(t, dir, "batch", input, "--format", "csv")
		require.NoError(t, err)
		assert.Contains(t, out, "r1,"+input+",2,length,66,in,ft,5.5,5.5,ft-in,5,6")
		assert.NotContains(t, out, "r2")
	})

	t.Run("msgpack requires output", func(t *testing.T) {
		_, err := execute(t, dir, "batch", input, "--format", "msgpack")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires --output")
	})

	t.Run("msgpack to file", func(t *testing.T) {
		output := filepath.Join(dir, "out.msgpack")
		out, err := execute(t, dir, "batch", input, "--format", "msgpack", "--output", output)
		require.NoError(t, err)
		assert.Contains(t, out, "Converted 1 requests from 1 files")
		assert.Contains(t, out, "1 skipped")

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		var decoded services.BatchResult
		require.NoError(t, msgpack.Unmarshal(data, &decoded))
		assert.NotEmpty(t, decoded.RunID)
		require.Len(t, decoded.Rows, 1)
		assert.Equal(t, "r1", decoded.Rows[0].ID)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := execute(t, dir, "batch", input, "--format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})
}
