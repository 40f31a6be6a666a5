package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeviceType(t *testing.T) {
	assert.Equal(t, "mobile", ParseDeviceType("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148"))
	assert.Equal(t, "mobile", ParseDeviceType("Mozilla/5.0 (Linux; Android 14; Pixel 8)"))
	assert.Equal(t, "tablet", ParseDeviceType("Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)"))
	assert.Equal(t, "desktop", ParseDeviceType("Mozilla/5.0 (Windows NT 10.0; Win64; x64)"))
	assert.Equal(t, "desktop", ParseDeviceType(""))
}
