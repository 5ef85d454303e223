package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	assert.NoError(t, Initialize("info"))
	assert.NotNil(t, Log)
}

func TestInitializeInvalidLevel(t *testing.T) {
	assert.Error(t, Initialize("not-a-level"))
}
