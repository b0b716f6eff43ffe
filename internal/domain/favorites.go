package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FavoriteSet holds favorited spot ids. Membership is what matters; the
// order is kept only because the stored encoding is a JSON array.
// Values are never modified in place, every mutation returns a new set.
type FavoriteSet []SpotID

func NewFavoriteSet(ids ...SpotID) FavoriteSet {
	out := make(FavoriteSet, 0, len(ids))
	seen := make(map[SpotID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (f FavoriteSet) Contains(id SpotID) bool {
	for _, v := range f {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle removes id when present and appends it otherwise.
func (f FavoriteSet) Toggle(id SpotID) FavoriteSet {
	if f.Contains(id) {
		out := make(FavoriteSet, 0, len(f)-1)
		for _, v := range f {
			if v != id {
				out = append(out, v)
			}
		}
		return out
	}
	out := make(FavoriteSet, len(f), len(f)+1)
	copy(out, f)
	return append(out, id)
}

// Equal compares membership only.
func (f FavoriteSet) Equal(o FavoriteSet) bool {
	a, b := NewFavoriteSet(f...), NewFavoriteSet(o...)
	if len(a) != len(b) {
		return false
	}
	for _, id := range a {
		if !b.Contains(id) {
			return false
		}
	}
	return true
}

func (f FavoriteSet) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]SpotID(f))
}

// UnmarshalJSON accepts ids as numbers or numeric strings and drops duplicates.
func (f *FavoriteSet) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("favorites: %w", err)
	}
	ids := make([]SpotID, 0, len(raw))
	for i, v := range raw {
		var (
			n   int64
			err error
		)
		switch t := v.(type) {
		case json.Number:
			n, err = t.Int64()
		case string:
			n, err = strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		default:
			err = fmt.Errorf("unexpected %T", v)
		}
		if err != nil {
			return fmt.Errorf("favorites: element %d: %w", i, err)
		}
		ids = append(ids, SpotID(n))
	}
	*f = NewFavoriteSet(ids...)
	return nil
}
