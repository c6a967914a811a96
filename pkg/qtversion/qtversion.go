package qtversion

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/macropower/sdkconf/internal/validation"
	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/settings"
)

const (
	IDKey                  = "Id"
	DisplayNameKey         = "Name"
	AutodetectedKey        = "isAutodetected"
	AutodetectionSourceKey = "autodetectionSource"
	QMakeKey               = "QMakePath"
	TypeKey                = "QtVersion.Type"
	ABIsKey                = "Abis"

	// SDKPrefix marks ids of Qt versions installed by an SDK.
	SDKPrefix = "SDK."

	// NoQt is the kit value selecting no Qt version.
	NoQt = "-1"
)

var validate = validation.New()

// Request describes a Qt version to add.
type Request struct {
	ID          string              `flag:"id"    validate:"required"`
	DisplayName string              `flag:"name"  validate:"required"`
	Type        string              `flag:"type"  validate:"required"`
	QMake       string              `flag:"qmake" validate:"required"`
	ABIs        []string            `flag:"abis"  validate:"dive,required"`
	Extra       []settings.KeyValue `flag:"-"`
}

// Validate checks the shape of the request.
func (r Request) Validate() error {
	return validation.Struct(validate, r)
}

// ExtendID returns id with the SDK namespace prefix. Ids that already carry
// the prefix, and the empty id, are returned unchanged.
func ExtendID(id string) string {
	if id == "" || strings.HasPrefix(id, SDKPrefix) {
		return id
	}

	return SDKPrefix + id
}

// Initialize returns an empty Qt version collection.
func Initialize() settings.Tree {
	return collection.Initialize(collection.QtVersions)
}

// Exists reports whether a Qt version with the given id is defined in t. The
// id is namespaced with [ExtendID] first.
func Exists(t settings.Tree, id string) bool {
	return collection.Contains(t, collection.QtVersions, ExtendID(id))
}

// Add returns a copy of t with the Qt version described by req appended.
func Add(t settings.Tree, req Request) (settings.Tree, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid qt version: %w", err)
	}

	id := ExtendID(req.ID)

	logger := slog.With(
		slog.String("cmd", "qt_add"),
		slog.String("id", id),
	)

	fields := []settings.KeyValue{
		settings.NewKeyValue(settings.Int(-1), IDKey),
		settings.NewKeyValue(settings.String(req.DisplayName), DisplayNameKey),
		settings.NewKeyValue(settings.Bool(true), AutodetectedKey),
		settings.NewKeyValue(settings.String(req.QMake), QMakeKey),
		settings.NewKeyValue(settings.String(req.Type), TypeKey),
	}
	if len(req.ABIs) > 0 {
		fields = append(fields, settings.NewKeyValue(settings.StringList(req.ABIs...), ABIsKey))
	}

	out, err := collection.AddRecord(t, collection.QtVersions, collection.NewRecord{
		ID:     id,
		Fields: fields,
		Extra:  req.Extra,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("added qt version", slog.String("qmake", req.QMake))

	return out, nil
}

// Remove returns a copy of t without the Qt version with the given id.
func Remove(t settings.Tree, id string) (settings.Tree, error) {
	return collection.RemoveRecord(t, collection.QtVersions, ExtendID(id))
}
