package web

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

var ErrBadFilename = errors.New("invalid upload filename")

// SanitizeFilename neutraliza path traversal: se queda con el nombre
// base y filtra todo lo que no sea [a-zA-Z0-9._-].
func SanitizeFilename(name string) (string, error) {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." {
		return "", ErrBadFilename
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "", ErrBadFilename
	}
	return out, nil
}

// saveUpload guarda el archivo subido bajo dir con nombre saneado y
// devuelve el nombre final.
func saveUpload(dir string, fh *multipart.FileHeader) (string, error) {
	name, err := SanitizeFilename(fh.Filename)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}
