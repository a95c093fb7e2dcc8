package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCapacity(t *testing.T) {
	assert.Equal(t, "0 KB", formatCapacity(0))
	assert.Equal(t, "512.0 KB", formatCapacity(512))
	assert.Equal(t, "1.0 MB", formatCapacity(1024))
	assert.Equal(t, "1.5 MB", formatCapacity(1536))
	assert.Equal(t, "1.0 GB", formatCapacity(1048576))
	assert.Equal(t, "1.0 TB", formatCapacity(1073741824))
	assert.Equal(t, "123.46 KB", formatCapacity(123.456))
	assert.Equal(t, "0.5 KB", formatCapacity(0.5))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, validEmail("a@b.com"))
	assert.False(t, validEmail("not-an-email"))
	assert.False(t, validEmail(""))
}
