// Package parser decodes menu definitions from YAML and validates them before
// they reach the blast-radius engine.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/holymole/core/internal/models"
)

var menuValidate = validator.New(validator.WithRequiredStructEnabled())

func ParseMenu(data []byte) (*models.Menu, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty menu data")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var menu models.Menu
	if err := dec.Decode(&menu); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal menu: %w", err)
	}

	if len(menu.MenuItems) == 0 {
		return nil, fmt.Errorf("invalid menu: no menu_items declared")
	}

	if err := menuValidate.Struct(menu); err != nil {
		return nil, fmt.Errorf("invalid menu: %s", describeValidation(err))
	}

	return &menu, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Menu.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
