package regram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Defaults(t *testing.T) {
	config := NewConfig()

	assert.True(t, config.GetBool("compile.terminal_full_input"))
	assert.Equal(t, 0, config.GetInt("repeat.max_matches"))
}

func TestConfig_SetAndGet(t *testing.T) {
	config := NewConfig()

	config.SetBool("compile.terminal_full_input", false)
	assert.False(t, config.GetBool("compile.terminal_full_input"))

	config.SetInt("repeat.max_matches", 10)
	assert.Equal(t, 10, config.GetInt("repeat.max_matches"))
}

func TestConfig_Debug(t *testing.T) {
	config := NewConfig()
	config.SetInt("repeat.max_matches", 5)

	assert.NotPanics(t, func() {
		config.Debug()
	})
}

func TestConfig_TypeMisuse(t *testing.T) {
	config := NewConfig()

	assert.Panics(t, func() {
		config.GetInt("compile.terminal_full_input")
	})

	assert.Panics(t, func() {
		config.GetBool("repeat.max_matches")
	})

	assert.Panics(t, func() {
		config.GetBool("no.such.setting")
	})
}
