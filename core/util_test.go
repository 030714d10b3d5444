package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanString(t *testing.T) {
	assert.Equal(t, "A b", CleanString("  A b\n"))
	assert.Equal(t, "a b", CleanString("  A b\n", true))
	assert.Equal(t, "", CleanString(" \t "))
}

func TestPtrValue(t *testing.T) {
	assert.Equal(t, 0, Value[int](nil))
	assert.Equal(t, "", Value[string](nil))
	assert.Equal(t, 7, Value(Ptr(7)))
	assert.Equal(t, " x ", Value(Ptr(" x ")))
}
