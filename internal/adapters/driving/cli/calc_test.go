package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drills/internal/core/domain"
)

func TestCalcCmd_Args(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"addition", []string{"6", "+", "3"}, "The result is: 6 + 3 = 9\n"},
		{"subtraction", []string{"6", "-", "9"}, "The result is: 6 - 9 = -3\n"},
		{"multiplication", []string{"6", "*", "3"}, "The result is: 6 * 3 = 18\n"},
		{"integer division truncates", []string{"7", "/", "2"}, "The result is: 7 / 2 = 3\n"},
		{"negative division truncates toward zero", []string{"--", "-7", "/", "2"}, "The result is: -7 / 2 = -3\n"},
		{"float division", []string{"--float", "7", "/", "2"}, "The result is: 7 / 2 = 3.5\n"},
		{"division by zero", []string{"6", "/", "0"}, "Error: Division by zero is not allowed.\n"},
		{"float division by zero", []string{"--float", "1", "/", "0.0"}, "Error: Division by zero is not allowed.\n"},
		{"invalid operation", []string{"5", "%", "2"}, "Invalid operation\n"},
		{"overflow fails by default", []string{"9223372036854775807", "+", "1"}, "Error: Integer overflow.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t)

			out, err := execute(t, "", append([]string{"calc"}, tt.args...)...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCalcCmd_OverflowPolicyFromSettings(t *testing.T) {
	env := setupTestServices(t)
	require.NoError(t, env.settings.SetOverflowPolicy(domain.OverflowSaturate))

	out, err := execute(t, "", "calc", "9223372036854775807", "+", "1")

	require.NoError(t, err)
	assert.Equal(t, "The result is: 9223372036854775807 + 1 = 9223372036854775807\n", out)
}

func TestCalcCmd_MalformedNumber(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "calc", "six", "+", "3")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidNumber)
	assert.Empty(t, out)
}

func TestCalcCmd_FloatOperandRejectedByInt(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "calc", "--int", "1.5", "+", "1")

	assert.ErrorIs(t, err, domain.ErrInvalidNumber)
}

func TestCalcCmd_ConfiguredVariant(t *testing.T) {
	env := setupTestServices(t)
	require.NoError(t, env.settings.SetVariant(domain.VariantFloat))

	out, err := execute(t, "", "calc", "7", "/", "2")
	require.NoError(t, err)
	assert.Equal(t, "The result is: 7 / 2 = 3.5\n", out)

	// --int overrides the configured variant
	out, err = execute(t, "", "calc", "--int", "7", "/", "2")
	require.NoError(t, err)
	assert.Equal(t, "The result is: 7 / 2 = 3\n", out)
}

func TestCalcCmd_FlagsMutuallyExclusive(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "calc", "--int", "--float", "1", "+", "1")

	assert.Error(t, err)
}

func TestCalcCmd_WrongArgCount(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "calc", "1", "+")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 0 or 3 arg(s)")
}

func TestCalcCmd_Interactive(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "6\n+\n3\n", "calc")

	require.NoError(t, err)
	assert.Equal(t,
		firstNumberPrompt+"\n"+operationPrompt+"\n"+secondNumberPrompt+"\n"+"The result is: 6 + 3 = 9\n",
		out)
}

func TestCalcCmd_InteractiveTrimsInput(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, " 6 \r\n + \r\n 3\r\n", "calc")

	require.NoError(t, err)
	assert.Contains(t, out, "The result is: 6 + 3 = 9\n")
}

func TestCalcCmd_InteractiveBadFirstNumberAborts(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "x\n+\n3\n", "calc")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidNumber)
	assert.Contains(t, out, firstNumberPrompt)
	assert.NotContains(t, out, operationPrompt)
}

func TestCalcCmd_InteractiveBadSecondNumberAborts(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "1\n+\nfoo\n", "calc")

	assert.ErrorIs(t, err, domain.ErrInvalidNumber)
	assert.NotContains(t, out, "The result is")
}

func TestCalcCmd_InteractiveEOF(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "calc")

	// An empty first number is malformed
	assert.ErrorIs(t, err, domain.ErrInvalidNumber)
}

func TestCalcCmd_InteractiveFloat(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "7\n/\n2\n", "calc", "--float")

	require.NoError(t, err)
	assert.Contains(t, out, "The result is: 7 / 2 = 3.5\n")
}

func TestCalcCmd_RecordsHistory(t *testing.T) {
	env := setupTestServices(t)

	_, err := execute(t, "", "calc", "6", "/", "0")
	require.NoError(t, err)

	evaluations, err := env.history.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, evaluations, 1)
	assert.Equal(t, domain.OutcomeDivisionByZero, evaluations[0].Outcome)
}

func TestCalcCmd_MalformedNumberNotRecorded(t *testing.T) {
	env := setupTestServices(t)

	_, err := execute(t, "", "calc", "x", "+", "1")
	require.Error(t, err)

	evaluations, err := env.history.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, evaluations)
}

func TestSelectedVariant(t *testing.T) {
	t.Cleanup(func() { calcFloat, calcInt = false, false })

	calcFloat, calcInt = false, false
	assert.Equal(t, domain.Variant(""), selectedVariant())

	calcFloat = true
	assert.Equal(t, domain.VariantFloat, selectedVariant())

	calcFloat, calcInt = false, true
	assert.Equal(t, domain.VariantInt, selectedVariant())
}

func TestEffectiveVariant_NoSettings(t *testing.T) {
	useServices(&Services{})

	assert.Equal(t, domain.VariantInt, effectiveVariant(""))
	assert.Equal(t, domain.VariantFloat, effectiveVariant(domain.VariantFloat))
}
