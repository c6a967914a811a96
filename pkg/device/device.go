package device

import (
	"fmt"
	"log/slog"

	"github.com/macropower/sdkconf/internal/validation"
	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/settings"
)

const (
	IDKey          = "InternalId"
	DisplayNameKey = "Name"
	OSTypeKey      = "OsType"
	TypeKey        = "Type"
	OriginKey      = "Origin"
	HostKey        = "Host"
	SSHPortKey     = "SshPort"
	UserKey        = "Uname"
	KeyFileKey     = "KeyFile"
	TimeoutKey     = "Timeout"
	FreePortsKey   = "FreePortsSpec"
	DebugServerKey = "DebugServerKey"
)

// Type distinguishes physical devices from emulators.
type Type int

const (
	Hardware Type = 0
	Emulator Type = 1
)

var validate = validation.New()

// Request describes a device to add. Optional fields left nil are omitted.
type Request struct {
	ID          string              `flag:"id"       validate:"required"`
	DisplayName string              `flag:"name"     validate:"required"`
	OSType      string              `flag:"ostype"   validate:"required"`
	Host        *string             `flag:"host"`
	User        *string             `flag:"user"`
	KeyFile     *string             `flag:"keyfile"`
	FreePorts   *string             `flag:"freeports"`
	DebugServer *string             `flag:"debugserver"`
	SSHPort     *int                `flag:"sshport"  validate:"omitempty,min=0,max=65535"`
	Timeout     *int                `flag:"timeout"  validate:"omitempty,min=0"`
	Extra       []settings.KeyValue `flag:"-"`
	Type        Type                `flag:"type"     validate:"oneof=0 1"`
	Origin      int                 `flag:"origin"   validate:"min=0"`
}

// Validate checks the shape of the request.
func (r Request) Validate() error {
	return validation.Struct(validate, r)
}

// Initialize returns an empty device collection.
func Initialize() settings.Tree {
	return collection.Initialize(collection.Devices)
}

// Exists reports whether a device with the given id is defined in t.
func Exists(t settings.Tree, id string) bool {
	return collection.Contains(t, collection.Devices, id)
}

// Add returns a copy of t with the device described by req appended.
func Add(t settings.Tree, req Request) (settings.Tree, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid device: %w", err)
	}

	logger := slog.With(
		slog.String("cmd", "device_add"),
		slog.String("id", req.ID),
	)

	fields := []settings.KeyValue{
		settings.NewKeyValue(settings.String(req.DisplayName), DisplayNameKey),
		settings.NewKeyValue(settings.String(req.OSType), OSTypeKey),
		settings.NewKeyValue(settings.Int(int(req.Type)), TypeKey),
		settings.NewKeyValue(settings.Int(req.Origin), OriginKey),
	}

	optional := []struct {
		value *string
		key   string
	}{
		{req.Host, HostKey},
		{req.User, UserKey},
		{req.KeyFile, KeyFileKey},
		{req.FreePorts, FreePortsKey},
		{req.DebugServer, DebugServerKey},
	}
	for _, o := range optional {
		if o.value != nil {
			fields = append(fields, settings.NewKeyValue(settings.String(*o.value), o.key))
		}
	}

	if req.SSHPort != nil {
		fields = append(fields, settings.NewKeyValue(settings.Int(*req.SSHPort), SSHPortKey))
	}

	if req.Timeout != nil {
		fields = append(fields, settings.NewKeyValue(settings.Int(*req.Timeout), TimeoutKey))
	}

	out, err := collection.AddRecord(t, collection.Devices, collection.NewRecord{
		ID:     req.ID,
		Fields: fields,
		Extra:  req.Extra,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("added device", slog.String("os_type", req.OSType))

	return out, nil
}

// Remove returns a copy of t without the device with the given id.
func Remove(t settings.Tree, id string) (settings.Tree, error) {
	return collection.RemoveRecord(t, collection.Devices, id)
}
