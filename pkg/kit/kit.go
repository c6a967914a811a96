package kit

import (
	"fmt"
	"log/slog"

	"github.com/macropower/sdkconf/pkg/abi"
	"github.com/macropower/sdkconf/pkg/cmaketool"
	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/device"
	"github.com/macropower/sdkconf/pkg/qtversion"
	"github.com/macropower/sdkconf/pkg/sdkerrors"
	"github.com/macropower/sdkconf/pkg/settings"
	"github.com/macropower/sdkconf/pkg/toolchain"
)

// Record fields.
const (
	IDKey           = "PE.Profile.Id"
	DisplayNameKey  = "PE.Profile.Name"
	IconKey         = "PE.Profile.Icon"
	AutodetectedKey = "PE.Profile.AutoDetected"
	SDKKey          = "PE.Profile.SDK"
	DataKey         = "PE.Profile.Data"
)

// Fields below [DataKey].
const (
	EnvKey            = "PE.Profile.Environment"
	DebuggerKey       = "Debugger.Information"
	DebuggerEngineKey = "EngineType"
	DebuggerBinaryKey = "Binary"
	DeviceTypeKey     = "PE.Profile.DeviceType"
	DeviceKey         = "PE.Profile.Device"
	SysRootKey        = "PE.Profile.SysRoot"
	ToolChainsKey     = "PE.Profile.ToolChainsV3"
	MkspecKey         = "QtPM4.mkSpecInformation"
	QtKey             = "QtSupport.QtInformation"
	CMakeKey          = "CMakeProjectManager.CMakeKitInformation"
	CMakeGeneratorKey = "CMake.GeneratorKitInformation"
	CMakeConfigKey    = "CMake.ConfigurationKitInformation"
)

// References are the collections a kit may refer to.
type References struct {
	ToolChains settings.Tree
	QtVersions settings.Tree
	Devices    settings.Tree
	CMakeTools settings.Tree
}

// Initialize returns an empty kit collection.
func Initialize() settings.Tree {
	return collection.Initialize(collection.Kits)
}

// Exists reports whether a kit with the given id is defined in t.
func Exists(t settings.Tree, id string) bool {
	return collection.Contains(t, collection.Kits, id)
}

// Add returns a copy of target with the kit described by req appended.
//
// On rejection Add returns a nil tree and an error wrapping
// [sdkerrors.ErrRejected]; target is never modified.
func Add(target settings.Tree, refs References, req Request) (settings.Tree, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid kit: %w", err)
	}

	logger := slog.With(
		slog.String("cmd", "kit_add"),
		slog.String("id", req.ID),
	)

	if Exists(target, req.ID) {
		return nil, fmt.Errorf("%w: id %q is already defined as kit", sdkerrors.ErrDuplicateID, req.ID)
	}

	for _, lang := range req.Languages() {
		ref := req.ToolChains[lang]
		if toolchain.Exists(refs.ToolChains, ref) {
			continue
		}

		if !abi.IsDescriptor(ref) {
			return nil, fmt.Errorf("%w: toolchain %q for language %q does not exist", sdkerrors.ErrReference, ref, lang)
		}

		logger.Debug("toolchain reference is an abi descriptor",
			slog.String("language", lang),
			slog.String("abi", ref),
		)
	}

	var qtID *string
	if req.Qt != nil {
		id := qtversion.ExtendID(*req.Qt)
		if id != "" && !qtversion.Exists(refs.QtVersions, id) {
			return nil, fmt.Errorf("%w: qt %q does not exist", sdkerrors.ErrReference, id)
		}

		if id == "" {
			id = qtversion.NoQt
		}

		qtID = &id
	}

	if dev := deref(req.Device); dev != "" && !device.Exists(refs.Devices, dev) {
		return nil, fmt.Errorf("%w: device %q does not exist", sdkerrors.ErrReference, dev)
	}

	if cm := deref(req.CMakeTool); cm != "" && !cmaketool.Exists(refs.CMakeTools, cm) {
		return nil, fmt.Errorf("%w: cmake tool %q does not exist", sdkerrors.ErrReference, cm)
	}

	count, err := collection.Count(target, collection.Kits)
	if err != nil {
		return nil, err
	}

	out, err := collection.AddRecord(target, collection.Kits, collection.NewRecord{
		ID:     req.ID,
		Fields: fields(req, qtID),
		Extra:  req.Extra,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("added kit",
		slog.String("key", collection.Kits.RecordKey(count)),
		slog.String("default", collection.Default(out, collection.Kits)),
	)

	return out, nil
}

// Remove returns a copy of target without the kit with the given id.
func Remove(target settings.Tree, id string) (settings.Tree, error) {
	return collection.RemoveRecord(target, collection.Kits, id)
}

// fields returns the record fields of req, relative to the record key.
func fields(req Request, qtID *string) []settings.KeyValue {
	kvs := []settings.KeyValue{
		settings.NewKeyValue(settings.String(req.DisplayName), DisplayNameKey),
	}

	if req.Icon != nil {
		kvs = append(kvs, settings.NewKeyValue(settings.String(*req.Icon), IconKey))
	}

	kvs = append(kvs,
		settings.NewKeyValue(settings.Bool(true), AutodetectedKey),
		settings.NewKeyValue(settings.Bool(true), SDKKey),
	)

	data := func(v settings.Value, segments ...string) {
		kvs = append(kvs, settings.KeyValue{
			Path:  settings.Path{DataKey}.Join(segments...),
			Value: v,
		})
	}

	switch {
	case deref(req.DebuggerID) != "":
		data(settings.String(*req.DebuggerID), DebuggerKey)
	case deref(req.DebuggerBinary) != "":
		data(settings.Int(req.DebuggerEngine), DebuggerKey, DebuggerEngineKey)
		data(settings.String(*req.DebuggerBinary), DebuggerKey, DebuggerBinaryKey)
	}

	data(settings.String(req.DeviceType), DeviceTypeKey)

	if req.Device != nil {
		data(settings.String(*req.Device), DeviceKey)
	}

	if req.SysRoot != nil {
		data(settings.String(*req.SysRoot), SysRootKey)
	}

	for _, lang := range req.Languages() {
		data(settings.String(req.ToolChains[lang]), ToolChainsKey, lang)
	}

	if qtID != nil {
		data(settings.String(*qtID), QtKey)
	}

	if req.Mkspec != nil {
		data(settings.String(*req.Mkspec), MkspecKey)
	}

	if req.CMakeTool != nil {
		data(settings.String(*req.CMakeTool), CMakeKey)
	}

	if req.CMakeGenerator != nil {
		if g, ok := ParseGenerator(*req.CMakeGenerator); ok {
			data(settings.Map(g.Tree()), CMakeGeneratorKey)
		}
	}

	if len(req.CMakeConfig) > 0 {
		data(settings.StringList(req.CMakeConfig...), CMakeConfigKey)
	}

	if len(req.Env) > 0 {
		data(settings.StringList(req.Env...), EnvKey)
	}

	return kvs
}
