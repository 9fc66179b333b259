package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/lexfang/internal/toolconfig"
	"github.com/Sumatoshi-tech/lexfang/pkg/charset"
	"github.com/Sumatoshi-tech/lexfang/pkg/classes"
)

func TestMain(m *testing.M) {
	color.NoColor = true //nolint:reassign // deterministic test output

	os.Exit(m.Run())
}

func plainConfig() *toolconfig.Config {
	return &toolconfig.Config{
		Output: toolconfig.OutputConfig{Format: toolconfig.FormatPlain},
	}
}

func TestRunEvalUnion(t *testing.T) {
	var out bytes.Buffer

	err := RunEval(&out, plainConfig(), "union", "a-f", "d-z")
	require.NoError(t, err)

	assert.Equal(t, "[a-z]\n", out.String())
}

func TestRunEvalIntersectClasses(t *testing.T) {
	var out bytes.Buffer

	err := RunEval(&out, plainConfig(), "intersect", "digit", "xdigit")
	require.NoError(t, err)

	assert.Equal(t, "[0-9]\n", out.String())
}

func TestRunEvalDifference(t *testing.T) {
	var out bytes.Buffer

	err := RunEval(&out, plainConfig(), "difference", "a-f", "d-z")
	require.NoError(t, err)

	assert.Equal(t, "[a-c]\n", out.String())
}

func TestRunEvalTableFormat(t *testing.T) {
	var out bytes.Buffer

	cfg := plainConfig()
	cfg.Output.Format = toolconfig.FormatTable

	err := RunEval(&out, cfg, "union", "lower", "digit")
	require.NoError(t, err)

	rendered := out.String()
	assert.Contains(t, rendered, "lower union digit = [0-9a-z]")
	assert.Contains(t, rendered, "2 intervals")
	assert.Contains(t, rendered, "36")
}

func TestRunEvalUnknownOperation(t *testing.T) {
	var out bytes.Buffer

	err := RunEval(&out, plainConfig(), "xor", "lower", "digit")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestRunEvalBadOperand(t *testing.T) {
	var out bytes.Buffer

	err := RunEval(&out, plainConfig(), "union", "z-a", "digit")
	require.Error(t, err)
	assert.ErrorIs(t, err, classes.ErrBadRange)
}

func TestResolveOperand(t *testing.T) {
	t.Parallel()

	registry := classes.Builtin()

	byName, err := resolveOperand(registry, "digit")
	require.NoError(t, err)
	assert.True(t, byName.Equal(charset.FromRange('0', '9')))

	byRange, err := resolveOperand(registry, "a-c")
	require.NoError(t, err)
	assert.True(t, byRange.Equal(charset.FromString("abc")))

	single, err := resolveOperand(registry, "x")
	require.NoError(t, err)
	assert.True(t, single.Equal(charset.FromChar('x')))

	literal, err := resolveOperand(registry, "xyz")
	require.NoError(t, err)
	assert.True(t, literal.Equal(charset.FromString("xyz")))

	_, err = resolveOperand(registry, "")
	assert.ErrorIs(t, err, ErrEmptyOperand)
}

func TestRunEvalWithDefinitionsFile(t *testing.T) {
	defsContent := `
classes:
  - name: vowel
    chars: "aeiou"
`

	tmpDir := t.TempDir()
	defsPath := filepath.Join(tmpDir, "defs.yaml")
	require.NoError(t, os.WriteFile(defsPath, []byte(defsContent), 0o600))

	cfg := plainConfig()
	cfg.Classes.File = defsPath

	var out bytes.Buffer

	err := RunEval(&out, cfg, "intersect", "vowel", "a-e")
	require.NoError(t, err)

	assert.Equal(t, "[ae]\n", out.String())
}
