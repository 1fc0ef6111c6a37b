package creator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "0day", "_lead", "sol_fan_01", "abcdefghijklmnopqrstuvwxyz012345"}
	for _, name := range valid {
		assert.True(t, IsValidUsername(name), name)
	}

	invalid := []string{"", "ab", "Alice", "has-dash", "has space", "abcdefghijklmnopqrstuvwxyz0123456"}
	for _, name := range invalid {
		assert.False(t, IsValidUsername(name), name)
	}
}
