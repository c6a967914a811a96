package collection

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/macropower/sdkconf/pkg/sdkerrors"
	"github.com/macropower/sdkconf/pkg/settings"
)

// Record is one entry of a collection.
type Record struct {
	Data  settings.Tree
	Key   string
	ID    string
	Name  string
	Index int
}

// NewRecord describes a record to append with [AddRecord].
type NewRecord struct {
	// ID is written to the kind's id field.
	ID string
	// Fields are written below the record key, in order.
	Fields []settings.KeyValue
	// Extra are arbitrary caller supplied pairs, written below the record
	// key after every other change.
	Extra []settings.KeyValue
}

// Contains reports whether id is stored anywhere in t under a key named
// after the id field of k. The whole tree is searched, not only the
// records, so an id written by an extra key/value pair is found as well.
func Contains(t settings.Tree, k Kind, id string) bool {
	for _, p := range settings.Find(t, settings.String(id)) {
		if len(p) > 1 && p.Last() == k.IDKey {
			return true
		}
	}

	return false
}

// Count returns the number of records in t.
func Count(t settings.Tree, k Kind) (int, error) {
	v, ok := t[k.CountKey()]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no %s", sdkerrors.ErrMalformedCount, k.Name, k.CountKey())
	}

	n, ok := v.AsInt()
	if !ok {
		s, isString := v.AsString()
		if !isString {
			return 0, fmt.Errorf("%w: %s is a %s", sdkerrors.ErrMalformedCount, k.CountKey(), v.Kind())
		}

		var err error

		n, err = strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", sdkerrors.ErrMalformedCount, k.CountKey(), err)
		}
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: %s is %d", sdkerrors.ErrMalformedCount, k.CountKey(), n)
	}

	return n, nil
}

// Default returns the id of the default record, or "" if there is none.
func Default(t settings.Tree, k Kind) string {
	s, _ := t[k.DefaultKey()].AsString()

	return s
}

// Records returns the records of t in index order. Indexes without a record
// are skipped; use [Check] to detect them.
func Records(t settings.Tree, k Kind) ([]Record, error) {
	count, err := Count(t, k)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, count)
	for i := range count {
		key := k.RecordKey(i)

		data, ok := t[key].AsTree()
		if !ok {
			continue
		}

		id, _ := data[k.IDKey].AsString()
		name, _ := data[k.NameKey].AsString()

		records = append(records, Record{
			Index: i,
			Key:   key,
			ID:    id,
			Name:  name,
			Data:  data,
		})
	}

	return records, nil
}

// Find returns the record of t whose id is id.
func Find(t settings.Tree, k Kind, id string) (Record, error) {
	records, err := Records(t, k)
	if err != nil {
		return Record{}, err
	}

	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}

	return Record{}, fmt.Errorf("%w: %s %q", sdkerrors.ErrNotFound, k.Name, id)
}

// AddRecord returns a copy of t with rec appended as the last record.
//
// The record is stored at index Count, Count is incremented, and if t has
// no default record the new record becomes the default. Fields and extras
// are written below the record key. The batch is built against a copy of t
// without its Count and Default keys and applied in one [settings.AddKeys]
// call, so either the whole record is written or t is returned unchanged
// together with an error.
func AddRecord(t settings.Tree, k Kind, rec NewRecord) (settings.Tree, error) {
	if rec.ID == "" {
		return nil, fmt.Errorf("%w: %s: empty id", sdkerrors.ErrRequestShape, k.Name)
	}

	for _, kv := range slices.Concat(rec.Fields, rec.Extra) {
		if len(kv.Path) == 0 {
			return nil, fmt.Errorf("%w: %s %q: empty field path", sdkerrors.ErrInvalidPath, k.Name, rec.ID)
		}
	}

	if Contains(t, k, rec.ID) {
		return nil, fmt.Errorf("%w: %q is already defined in %s", sdkerrors.ErrDuplicateID, rec.ID, k.Name)
	}

	count, err := Count(t, k)
	if err != nil {
		return nil, err
	}

	key := k.RecordKey(count)

	def := Default(t, k)
	if def == "" {
		def = rec.ID
	}

	cleaned := settings.RemoveKeys(t, []settings.Path{{k.CountKey()}, {k.DefaultKey()}})

	data := make([]settings.KeyValue, 0, len(rec.Fields)+len(rec.Extra)+3)
	data = append(data, settings.NewKeyValue(settings.String(rec.ID), key, k.IDKey))

	for _, f := range rec.Fields {
		data = append(data, settings.KeyValue{Path: settings.Path{key}.Join(f.Path...), Value: f.Value})
	}

	data = append(data,
		settings.NewKeyValue(settings.String(def), k.DefaultKey()),
		settings.NewKeyValue(settings.Int(count+1), k.CountKey()),
	)

	for _, e := range rec.Extra {
		data = append(data, settings.KeyValue{Path: settings.Path{key}.Join(e.Path...), Value: e.Value})
	}

	out, err := settings.AddKeys(cleaned, data)
	if err != nil {
		return nil, fmt.Errorf("add %s %q: %w", k.Name, rec.ID, err)
	}

	return out, nil
}

// RemoveRecord returns a copy of t without the record whose id is id.
//
// Later records move down by one index so keys stay sequential, Count is
// decremented, and if the removed record was the default, the first
// remaining record becomes the default.
func RemoveRecord(t settings.Tree, k Kind, id string) (settings.Tree, error) {
	rec, err := Find(t, k, id)
	if err != nil {
		return nil, err
	}

	count, err := Count(t, k)
	if err != nil {
		return nil, err
	}

	removed := []settings.Path{{k.CountKey()}, {k.DefaultKey()}}
	for i := rec.Index; i < count; i++ {
		removed = append(removed, settings.Path{k.RecordKey(i)})
	}

	cleaned := settings.RemoveKeys(t, removed)

	var data []settings.KeyValue

	for i := rec.Index + 1; i < count; i++ {
		moved, ok := t[k.RecordKey(i)]
		if !ok {
			continue
		}

		data = append(data, settings.NewKeyValue(moved, k.RecordKey(i-1)))
	}

	def := Default(t, k)
	if def == id {
		def = ""

		for i := range count {
			if i == rec.Index {
				continue
			}

			if first, ok := settings.Get(t, settings.Path{k.RecordKey(i), k.IDKey}); ok {
				def, _ = first.AsString()

				break
			}
		}
	}

	data = append(data,
		settings.NewKeyValue(settings.String(def), k.DefaultKey()),
		settings.NewKeyValue(settings.Int(count-1), k.CountKey()),
	)

	out, err := settings.AddKeys(cleaned, data)
	if err != nil {
		return nil, fmt.Errorf("remove %s %q: %w", k.Name, id, err)
	}

	return out, nil
}
