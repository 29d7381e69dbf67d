// Package menu supplies the composition graph the service starts with: the
// embedded Holy Mole reference menu or an operator-supplied YAML file.
package menu

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/holymole/core/internal/models"
	"github.com/holymole/core/internal/parser"
)

//go:embed menu.yaml
var defaultMenu []byte

// Default returns the reference menu. It is parsed on every call so callers
// never share slices.
func Default() (*models.Menu, error) {
	m, err := parser.ParseMenu(defaultMenu)
	if err != nil {
		return nil, fmt.Errorf("embedded menu: %w", err)
	}
	return m, nil
}

// Load reads a menu from path, or returns the default when path is empty.
func Load(path string) (*models.Menu, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	m, err := parser.ParseMenu(data)
	if err != nil {
		return nil, fmt.Errorf("menu file %s: %w", path, err)
	}
	return m, nil
}
