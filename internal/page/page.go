// Package page serves the cart page and its static assets from an embedded
// public directory. Resources are returned verbatim; no templating is applied.
package page

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
)

const Index = "index.html"

var ErrNotFound = errors.New("resource not found")

//go:embed public
var embedded embed.FS

type Resources struct {
	fsys fs.FS
}

// Embedded returns resources rooted at the compiled-in public directory.
func Embedded() (*Resources, error) {
	sub, err := fs.Sub(embedded, "public")
	if err != nil {
		return nil, fmt.Errorf("fs.Sub: %w", err)
	}

	return New(sub), nil
}

func New(fsys fs.FS) *Resources {
	return &Resources{fsys: fsys}
}

// Load returns the raw bytes of name, or an error wrapping ErrNotFound.
func (r *Resources) Load(name string) ([]byte, error) {
	b, err := fs.ReadFile(r.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("fs.ReadFile[%s]: %w", name, err)
	}

	return b, nil
}

func (r *Resources) Static() http.FileSystem {
	return http.FS(r.fsys)
}
