package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "v1.2.3", Normalize("1.2.3"))
	assert.Equal(t, "v1.2.3", Normalize(" v1.2.3 "))
	assert.Equal(t, "", Normalize(""))
}

func TestString(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	tests := []struct {
		version string
		want    string
	}{
		{"1.2", "v1.2.0"},
		{"v2.0.1", "v2.0.1"},
		{"dev", "dev"},
		{"", "dev"},
	}
	for _, tt := range tests {
		Version = tt.version
		assert.Equal(t, tt.want, String(), tt.version)
	}
}
