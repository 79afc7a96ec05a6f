package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64,accountid"`
	Name      string `json:"name" validate:"max=32,excludesall=\x00\n\r\t"`
	Level     int    `json:"level" validate:"min=1,max=100"`
}

func TestValidator_AccountID(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name      string
		accountID string
		wantErr   bool
	}{
		{"simple", "player1", false},
		{"punctuation allowed", "guild:eu_west.player-7", false},
		{"boundary length", strings.Repeat("a", 64), false},
		{"too long", strings.Repeat("a", 65), true},
		{"empty", "", true},
		{"whitespace", "bad id", true},
		{"non-ascii letter", "pläyer", true},
		{"slash", "a/b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testRequest{AccountID: tt.accountID, Name: "Hero", Level: 1})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_LevelBounds(t *testing.T) {
	v := GetValidator()

	for level, wantErr := range map[int]bool{0: true, 1: false, 100: false, 101: true, -5: true} {
		err := v.ValidateStruct(testRequest{AccountID: "a", Level: level})
		assert.Equal(t, wantErr, err != nil, "level %d", level)
	}
}

func TestFormatValidationError_UsesJSONNames(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(testRequest{AccountID: "", Name: "tab\there", Level: 0})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["account_id"])
	assert.Equal(t, "Contains invalid characters", fields["name"])
	assert.Equal(t, "Must be at least 1", fields["level"])
	assert.NotContains(t, fields, "AccountID")
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
