package collection

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/macropower/sdkconf/pkg/sdkerrors"
	"github.com/macropower/sdkconf/pkg/settings"
)

// Check verifies that t is a well formed collection of kind k: a positive
// Version, a Count matching the sequentially keyed records, records carrying
// the kind's required fields, unique ids, and a Default that is empty or the
// id of a record. Every violation found is reported, each wrapping
// [sdkerrors.ErrInvariant].
func Check(t settings.Tree, k Kind) error {
	var merr *multierror.Error

	version, ok := t[VersionKey].AsInt()
	if !ok || version < 1 {
		merr = multierror.Append(merr, fmt.Errorf("%w: %s must be a positive int", sdkerrors.ErrInvariant, VersionKey))
	}

	count, err := Count(t, k)
	if err != nil {
		merr = multierror.Append(merr, fmt.Errorf("%w: %w", sdkerrors.ErrInvariant, err))
	}

	ids := map[string]bool{}

	for i := range count {
		key := k.RecordKey(i)

		data, ok := t[key].AsTree()
		if !ok {
			merr = multierror.Append(merr, fmt.Errorf("%w: record %s is missing", sdkerrors.ErrInvariant, key))

			continue
		}

		for _, req := range k.Required {
			if _, ok := settings.Get(data, settings.ParsePath(req)); !ok {
				merr = multierror.Append(merr, fmt.Errorf("%w: record %s has no %s", sdkerrors.ErrInvariant, key, req))
			}
		}

		id, ok := data[k.IDKey].AsString()
		if !ok || id == "" {
			continue
		}

		if ids[id] {
			merr = multierror.Append(merr, fmt.Errorf("%w: %q is used by more than one record", sdkerrors.ErrInvariant, id))
		}

		ids[id] = true
	}

	for id := range ids {
		n := 0

		for _, p := range settings.Find(t, settings.String(id)) {
			if len(p) > 1 && p.Last() == k.IDKey {
				n++
			}
		}

		if n > 1 {
			merr = multierror.Append(merr, fmt.Errorf("%w: %q appears %d times under %s", sdkerrors.ErrInvariant, id, n, k.IDKey))
		}
	}

	for _, key := range t.Keys() {
		if n, ok := k.recordIndex(key); ok && n >= count {
			merr = multierror.Append(merr, fmt.Errorf("%w: record %s is beyond %s", sdkerrors.ErrInvariant, key, k.CountKey()))
		}
	}

	if _, ok := t[k.DefaultKey()]; !ok {
		merr = multierror.Append(merr, fmt.Errorf("%w: %s is missing", sdkerrors.ErrInvariant, k.DefaultKey()))
	} else if def := Default(t, k); def != "" && !ids[def] {
		merr = multierror.Append(merr, fmt.Errorf("%w: %s %q is not a record", sdkerrors.ErrInvariant, k.DefaultKey(), def))
	}

	return merr.ErrorOrNil()
}
