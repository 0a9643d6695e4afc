package contract

import (
	"testing"

	"github.com/minjaelee/talentscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:     DefaultResultLimit,
		Precision: DefaultPrecision,
		Output:    "text",
		Color:     "yes",
	}
}

// TestProcessAndValidate tests validation of the raw configuration.
func TestProcessAndValidate(t *testing.T) {
	t.Run("valid defaults", func(t *testing.T) {
		cfg := &Config{}
		err := ProcessAndValidate(cfg, validRawInput())
		require.NoError(t, err)
		assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.True(t, cfg.UseColors)
	})

	t.Run("input path accepted", func(t *testing.T) {
		cfg := &Config{}
		input := validRawInput()
		input.InputPathStr = "roster.xlsx"
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, "roster.xlsx", cfg.InputPath)
	})

	t.Run("limit out of range", func(t *testing.T) {
		input := validRawInput()
		input.Limit = 0
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.Limit = MaxResultLimit + 1
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("precision out of range", func(t *testing.T) {
		input := validRawInput()
		input.Precision = 5
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("invalid output mode", func(t *testing.T) {
		input := validRawInput()
		input.Output = "xml"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("output mode is case insensitive", func(t *testing.T) {
		cfg := &Config{}
		input := validRawInput()
		input.Output = " JSON "
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.JSONOut, cfg.Output)
	})

	t.Run("invalid color string", func(t *testing.T) {
		input := validRawInput()
		input.Color = "maybe"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("rejects non-xlsx input", func(t *testing.T) {
		input := validRawInput()
		input.InputPathStr = "roster.csv"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})
}

// TestValidateInputPath tests the accepted roster file extension.
func TestValidateInputPath(t *testing.T) {
	assert.NoError(t, ValidateInputPath("data/roster.xlsx"))
	assert.NoError(t, ValidateInputPath("UPPER.XLSX"))
	assert.Error(t, ValidateInputPath("roster.xls"))
	assert.Error(t, ValidateInputPath("roster"))
}

// TestParseBoolString tests boolean string parsing.
func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{input: "yes", expected: true},
		{input: "TRUE", expected: true},
		{input: "1", expected: true},
		{input: "no", expected: false},
		{input: "false", expected: false},
		{input: "0", expected: false},
		{input: "maybe", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestTruncateName tests display-name truncation.
func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", TruncateName("short", 10))
	assert.Equal(t, "longna...", TruncateName("longname-overflow", 9))
	// Width too small to truncate safely leaves the name alone.
	assert.Equal(t, "abc", TruncateName("abc", 3))
}

// TestClone verifies that Clone returns an independent copy.
func TestClone(t *testing.T) {
	cfg := &Config{InputPath: "a.xlsx", ResultLimit: 10}
	clone := cfg.Clone()
	clone.InputPath = "b.xlsx"
	assert.Equal(t, "a.xlsx", cfg.InputPath)
}
