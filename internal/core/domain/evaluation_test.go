package domain

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluation_Line_Success(t *testing.T) {
	e := &Evaluation{
		Variant:   VariantInt,
		Left:      "6",
		Operation: OperationAdd,
		Right:     "3",
		Result:    "9",
		Outcome:   OutcomeOK,
	}

	assert.True(t, e.Succeeded())
	assert.Equal(t, "The result is: 6 + 3 = 9", e.Line())
}

func TestEvaluation_Line_Failures(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeDivisionByZero, "Error: Division by zero is not allowed."},
		{OutcomeInvalidOperation, "Invalid operation"},
		{OutcomeOverflow, "Error: Integer overflow."},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			e := &Evaluation{Outcome: tt.outcome}
			assert.False(t, e.Succeeded())
			assert.Equal(t, tt.want, e.Line())
		})
	}
}

func TestOutcomeOf(t *testing.T) {
	o, ok := OutcomeOf(nil)
	assert.True(t, ok)
	assert.Equal(t, OutcomeOK, o)

	o, ok = OutcomeOf(fmt.Errorf("wrapped: %w", ErrDivisionByZero))
	assert.True(t, ok)
	assert.Equal(t, OutcomeDivisionByZero, o)

	o, ok = OutcomeOf(ErrInvalidOperation)
	assert.True(t, ok)
	assert.Equal(t, OutcomeInvalidOperation, o)

	o, ok = OutcomeOf(ErrOverflow)
	assert.True(t, ok)
	assert.Equal(t, OutcomeOverflow, o)

	_, ok = OutcomeOf(ErrInvalidNumber)
	assert.False(t, ok)
}

func TestOutcome_RoundTripsThroughErr(t *testing.T) {
	for _, o := range AllOutcomes() {
		assert.True(t, o.IsValid())
		got, ok := OutcomeOf(o.Err())
		require.True(t, ok)
		assert.Equal(t, o, got)
	}
	assert.False(t, Outcome("nope").IsValid())
}

func TestParseIntOperand(t *testing.T) {
	v, err := ParseIntOperand("  42\n")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = ParseIntOperand("+6")
	require.NoError(t, err)
	assert.Equal(t, int64(6), v)

	v, err = ParseIntOperand("-9223372036854775808")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), v)

	for _, bad := range []string{"", "abc", "3.5", "1e3", "9223372036854775808", "4 2"} {
		_, err := ParseIntOperand(bad)
		assert.ErrorIs(t, err, ErrInvalidNumber, bad)
	}
}

func TestParseFloatOperand(t *testing.T) {
	v, err := ParseFloatOperand("7.0\n")
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	v, err = ParseFloatOperand("-2.5e3")
	require.NoError(t, err)
	assert.Equal(t, -2500.0, v)

	for _, bad := range []string{"", "seven", "1,5", "1_0", "0x1p3", "-0X10", "+0x1p-2"} {
		_, err := ParseFloatOperand(bad)
		assert.ErrorIs(t, err, ErrInvalidNumber, bad)
	}
}

func TestFormatFloat(t *testing.T) {
	a, b := 0.1, 0.2

	tests := []struct {
		in   float64
		want string
	}{
		{9, "9"},
		{3.5, "3.5"},
		{-0.25, "-0.25"},
		{a + b, "0.30000000000000004"},
		{1e21, "1000000000000000000000"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.in))
		})
	}
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "-3", FormatInt(-3))
	assert.Equal(t, "9223372036854775807", FormatInt(math.MaxInt64))
}
