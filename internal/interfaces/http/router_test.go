package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/uploads", "/uploads"},
		{"uploads/", "/uploads"},
		{"http://localhost:8080/media/files", "/media/files"},
		{"https://cdn.example.com", "/uploads"},
		{"", "/uploads"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, publicPath(tt.in), tt.in)
	}
}
