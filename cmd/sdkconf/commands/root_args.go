package commands

import (
	"fmt"

	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/store"
)

type RootArgs struct {
	logLevel  *string
	logFormat *string
	sdkPath   *string
	format    *string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:  new(string),
		logFormat: new(string),
		sdkPath:   new(string),
		format:    new(string),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetSDKPath() string {
	return *a.sdkPath
}

func (a *RootArgs) GetFormat() string {
	return *a.format
}

// Store returns the collection store selected by the flags.
func (a *RootArgs) Store() (*store.Store, error) {
	format, err := store.ParseFormat(a.GetFormat())
	if err != nil {
		return nil, fmt.Errorf("%w: %w: format: %w", ErrArgument, ErrInvalidArgument, err)
	}

	return store.New(a.GetSDKPath(), format), nil
}

// lookupKind resolves a collection name given on the command line.
func lookupKind(name string) (collection.Kind, error) {
	k, ok := collection.Lookup(name)
	if !ok {
		return collection.Kind{}, fmt.Errorf("%w: %w: unknown collection %q", ErrArgument, ErrInvalidArgument, name)
	}

	return k, nil
}
