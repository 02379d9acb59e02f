package phone

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "international number with plus",
			input:    "+255742892731",
			expected: "255742892731",
		},
		{
			name:     "international number without plus",
			input:    "255742892731",
			expected: "255742892731",
		},
		{
			name:     "local number with leading zero",
			input:    "0742892731",
			expected: "255742892731",
		},
		{
			name:     "number with spaces",
			input:    "0742 892 731",
			expected: "255742892731",
		},
		{
			name:     "number with dashes",
			input:    "0742-892-731",
			expected: "255742892731",
		},
		{
			name:     "number with parentheses",
			input:    "(0742)892731",
			expected: "255742892731",
		},
		{
			name:     "number with mixed formatting",
			input:    "+255 (742) 892-731",
			expected: "255742892731",
		},
		{
			name:     "kenyan international number",
			input:    "+254701234567",
			expected: "254701234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestValidateRejectsBadNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "only a plus", input: "+"},
		{name: "letters", input: "+2557abc92731"},
		{name: "plus in the middle", input: "255+742892731"},
		{name: "too short", input: "07421"},
		{name: "too long", input: "2557428927312557"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.input)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidNumber))
		})
	}
}

func TestValidateCustomCountryCode(t *testing.T) {
	v := New()
	v.DefaultCountryCode = "254"

	result, err := v.Validate("0701234567")
	assert.NoError(t, err)
	assert.Equal(t, "254701234567", result)
}

func TestValidateBatch(t *testing.T) {
	normalized, err := ValidateBatch([]string{"+255742892731", "0742892732"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"255742892731", "255742892732"}, normalized)
}

func TestValidateBatchAllOrNothing(t *testing.T) {
	normalized, err := ValidateBatch([]string{"+255742892731", "not-a-number", "0742892732"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidNumber))
	assert.Nil(t, normalized)
}
