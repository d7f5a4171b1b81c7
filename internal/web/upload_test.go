package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"rex.jpg", "rex.jpg"},
		{"  rex.jpg  ", "rex.jpg"},
		{"foto de rex.png", "foto_de_rex.png"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\rex.jpg", "_.._rex.jpg"},
		{"mascota#1!.jpeg", "mascota_1_.jpeg"},
		{".hidden", "hidden"},
	}
	for _, c := range cases {
		got, err := SanitizeFilename(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestSanitizeFilename_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", ".", "..", "..."} {
		_, err := SanitizeFilename(in)
		assert.ErrorIs(t, err, ErrBadFilename, "input %q", in)
	}
}
