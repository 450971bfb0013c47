package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"valid http", "http://example.com", "http://example.com", false},
		{"valid https", "https://example.com/path?q=1", "https://example.com/path?q=1", false},
		{"trims whitespace", "  https://example.com  ", "https://example.com", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"no scheme", "example.com", "", true},
		{"ftp scheme", "ftp://example.com/file", "", true},
		{"scheme only", "https://", "", true},
		{"unparsable", "http://exa mple.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
