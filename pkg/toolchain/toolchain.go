package toolchain

import (
	"fmt"
	"log/slog"

	"github.com/macropower/sdkconf/internal/validation"
	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/settings"
)

const (
	IDKey            = "ProjectExplorer.ToolChain.Id"
	LanguageKey      = "ProjectExplorer.ToolChain.LanguageV2"
	DisplayNameKey   = "ProjectExplorer.ToolChain.DisplayName"
	AutodetectKey    = "ProjectExplorer.ToolChain.Autodetect"
	PathKey          = "ProjectExplorer.GccToolChain.Path"
	TargetABIKey     = "ProjectExplorer.GccToolChain.TargetAbi"
	SupportedABIsKey = "ProjectExplorer.GccToolChain.SupportedAbis"
)

var validate = validation.New()

// Request describes a toolchain to add.
type Request struct {
	ID            string              `flag:"id"            validate:"required"`
	Language      string              `flag:"language"      validate:"required"`
	DisplayName   string              `flag:"name"          validate:"required"`
	Path          string              `flag:"path"          validate:"required"`
	TargetABI     string              `flag:"abi"           validate:"required"`
	SupportedABIs []string            `flag:"supportedabis" validate:"dive,required"`
	Extra         []settings.KeyValue `flag:"-"`
}

// Validate checks the shape of the request.
func (r Request) Validate() error {
	return validation.Struct(validate, r)
}

// Initialize returns an empty toolchain collection.
func Initialize() settings.Tree {
	return collection.Initialize(collection.ToolChains)
}

// Exists reports whether a toolchain with the given id is defined in t.
func Exists(t settings.Tree, id string) bool {
	return collection.Contains(t, collection.ToolChains, id)
}

// Add returns a copy of t with the toolchain described by req appended.
func Add(t settings.Tree, req Request) (settings.Tree, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid toolchain: %w", err)
	}

	logger := slog.With(
		slog.String("cmd", "toolchain_add"),
		slog.String("id", req.ID),
	)

	if err := validation.Var(validate, "--abi", req.TargetABI, "abi"); err != nil {
		logger.Warn("target abi is not an abi descriptor", slog.String("abi", req.TargetABI))
	}

	abis := req.SupportedABIs
	if len(abis) == 0 {
		abis = []string{req.TargetABI}
	}

	out, err := collection.AddRecord(t, collection.ToolChains, collection.NewRecord{
		ID: req.ID,
		Fields: []settings.KeyValue{
			settings.NewKeyValue(settings.String(req.Language), LanguageKey),
			settings.NewKeyValue(settings.String(req.DisplayName), DisplayNameKey),
			settings.NewKeyValue(settings.String(req.Path), PathKey),
			settings.NewKeyValue(settings.String(req.TargetABI), TargetABIKey),
			settings.NewKeyValue(settings.StringList(abis...), SupportedABIsKey),
			settings.NewKeyValue(settings.Bool(true), AutodetectKey),
		},
		Extra: req.Extra,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("added toolchain", slog.String("language", req.Language))

	return out, nil
}

// Remove returns a copy of t without the toolchain with the given id.
func Remove(t settings.Tree, id string) (settings.Tree, error) {
	return collection.RemoveRecord(t, collection.ToolChains, id)
}
