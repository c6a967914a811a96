package debugger

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
	EngineTypeKey   = "EngineType"
	ABIsKey         = "Abis"
)

// Engine identifies the debugger backend.
type Engine int

const (
	NoEngine   Engine = 0
	GDBEngine  Engine = 1
	CDBEngine  Engine = 4
	LLDBEngine Engine = 256
)

var validate = validation.New()

// Request describes a debugger to add.
type Request struct {
	ID          string              `flag:"id"     validate:"required"`
	DisplayName string              `flag:"name"   validate:"required"`
	Binary      string              `flag:"binary" validate:"required"`
	ABIs        []string            `flag:"abis"   validate:"dive,required"`
	Extra       []settings.KeyValue `flag:"-"`
	Engine      Engine              `flag:"engine" validate:"min=0"`
}

// Validate checks the shape of the request.
func (r Request) Validate() error {
	return validation.Struct(validate, r)
}

// Initialize returns an empty debugger collection.
func Initialize() settings.Tree {
	return collection.Initialize(collection.Debuggers)
}

// Exists reports whether a debugger with the given id is defined in t.
func Exists(t settings.Tree, id string) bool {
	return collection.Contains(t, collection.Debuggers, id)
}

// Add returns a copy of t with the debugger described by req appended.
func Add(t settings.Tree, req Request) (settings.Tree, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid debugger: %w", err)
	}

	fields := []settings.KeyValue{
		settings.NewKeyValue(settings.String(req.DisplayName), DisplayNameKey),
		settings.NewKeyValue(settings.Bool(true), AutodetectedKey),
		settings.NewKeyValue(settings.String(req.Binary), BinaryKey),
		settings.NewKeyValue(settings.Int(int(req.Engine)), EngineTypeKey),
	}
	if len(req.ABIs) > 0 {
		fields = append(fields, settings.NewKeyValue(settings.StringList(req.ABIs...), ABIsKey))
	}

	out, err := collection.AddRecord(t, collection.Debuggers, collection.NewRecord{
		ID:     req.ID,
		Fields: fields,
		Extra:  req.Extra,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("added debugger",
		slog.String("id", req.ID),
		slog.Int("engine", int(req.Engine)),
	)

	return out, nil
}

// Remove returns a copy of t without the debugger with the given id.
func Remove(t settings.Tree, id string) (settings.Tree, error) {
	return collection.RemoveRecord(t, collection.Debuggers, id)
}
