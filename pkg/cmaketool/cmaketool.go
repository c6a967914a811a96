package cmaketool

import (
	"fmt"
	"log/slog"

	"github.com/macropower/sdkconf/internal/validation"
	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/settings"
)

const (
	IDKey           = "Id"
	DisplayNameKey  = "DisplayName"
	AutodetectedKey = "AutoDetected"
	BinaryKey       = "Binary"
)

var validate = validation.New()

// Request describes a CMake tool to add.
type Request struct {
	ID          string              `flag:"id"   validate:"required"`
	DisplayName string              `flag:"name" validate:"required"`
	Binary      string              `flag:"path" validate:"required"`
	Extra       []settings.KeyValue `flag:"-"`
}

// Validate checks the shape of the request.
func (r Request) Validate() error {
	return validation.Struct(validate, r)
}

// Initialize returns an empty CMake tool collection.
func Initialize() settings.Tree {
	return collection.Initialize(collection.CMakeTools)
}

// Exists reports whether a CMake tool with the given id is defined in t.
func Exists(t settings.Tree, id string) bool {
	return collection.Contains(t, collection.CMakeTools, id)
}

// Add returns a copy of t with the CMake tool described by req appended.
func Add(t settings.Tree, req Request) (settings.Tree, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cmake tool: %w", err)
	}

	out, err := collection.AddRecord(t, collection.CMakeTools, collection.NewRecord{
		ID: req.ID,
		Fields: []settings.KeyValue{
			settings.NewKeyValue(settings.String(req.DisplayName), DisplayNameKey),
			settings.NewKeyValue(settings.Bool(true), AutodetectedKey),
			settings.NewKeyValue(settings.String(req.Binary), BinaryKey),
		},
		Extra: req.Extra,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("added cmake tool",
		slog.String("id", req.ID),
		slog.String("binary", req.Binary),
	)

	return out, nil
}

// Remove returns a copy of t without the CMake tool with the given id.
func Remove(t settings.Tree, id string) (settings.Tree, error) {
	return collection.RemoveRecord(t, collection.CMakeTools, id)
}
