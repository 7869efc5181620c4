// Package settings captures the stored values of a menu table as a snapshot
// and writes snapshots back to storage.
package settings

import (
	"errors"
	"fmt"
	"time"

	"lcdmenu/config"
	"lcdmenu/internal/buildinfo"
	"lcdmenu/lcd"
	"lcdmenu/menu"
)

var (
	ErrUnknownLabel = errors.New("settings: unknown label")
	ErrKindMismatch = errors.New("settings: kind mismatch")
	ErrBadValue     = errors.New("settings: bad value")
)

// Entry is the value of one item. Exactly one of the value fields is set,
// matching Kind.
type Entry struct {
	Label  string      `cbor:"1,keyasint" yaml:"label"`
	Kind   config.Kind `cbor:"2,keyasint" yaml:"kind"`
	Int    *uint32     `cbor:"3,keyasint,omitempty" yaml:"int,omitempty"`
	Float  *float32    `cbor:"4,keyasint,omitempty" yaml:"float,omitempty"`
	Choice *string     `cbor:"5,keyasint,omitempty" yaml:"choice,omitempty"`
	Text   *string     `cbor:"6,keyasint,omitempty" yaml:"text,omitempty"`
}

// Snapshot holds every item of a table as the menu would display it.
type Snapshot struct {
	Build   string    `cbor:"1,keyasint" yaml:"build"`
	Taken   time.Time `cbor:"2,keyasint" yaml:"taken"`
	Entries []Entry   `cbor:"3,keyasint" yaml:"entries"`
}

// Capture reads every item of t from store. Values are normalized the same way
// the menu normalizes them on display: integers clamp to their digit count,
// unknown choices become the first choice and unknown characters the first
// allowed character.
func Capture(t config.Table, store menu.Storage) (Snapshot, error) {
	items, err := t.Build(lcd.NewGrid(menu.Rows, menu.Columns), store)
	if err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{
		Build:   buildinfo.Short(),
		Taken:   time.Now().UTC(),
		Entries: make([]Entry, 0, len(items)),
	}
	for i, it := range items {
		it.Show(false)
		e := Entry{Label: it.Label(), Kind: t.Items[i].Kind}
		switch it := it.(type) {
		case *menu.IntItem:
			v := it.Value()
			e.Int = &v
		case *menu.FloatItem:
			v := it.Value()
			e.Float = &v
		case *menu.ChoiceItem:
			v := it.Choice()
			e.Choice = &v
		case *menu.TextItem:
			v := it.Value()
			e.Text = &v
		}
		snap.Entries = append(snap.Entries, e)
	}
	return snap, nil
}

// Restore writes the entries of snap to store. Every entry is checked against
// t before anything is written, so a failed Restore leaves store untouched.
// Items of t missing from snap keep their stored values.
func Restore(snap Snapshot, t config.Table, store menu.Storage) error {
	items, err := t.Build(lcd.NewGrid(menu.Rows, menu.Columns), store)
	if err != nil {
		return err
	}
	byLabel := make(map[string]int, len(items))
	for i, it := range items {
		byLabel[it.Label()] = i
	}

	apply := make([]func(), 0, len(snap.Entries))
	for _, e := range snap.Entries {
		i, ok := byLabel[e.Label]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownLabel, e.Label)
		}
		spec := t.Items[i]
		if e.Kind != spec.Kind {
			return fmt.Errorf("%w: %q is %v, snapshot has %v", ErrKindMismatch, e.Label, spec.Kind, e.Kind)
		}
		fn, err := setter(items[i], spec, e)
		if err != nil {
			return err
		}
		apply = append(apply, fn)
	}
	for _, fn := range apply {
		fn()
	}
	return nil
}

func setter(it menu.Item, spec config.ItemSpec, e Entry) (func(), error) {
	switch it := it.(type) {
	case *menu.IntItem:
		if e.Int == nil {
			break
		}
		v := *e.Int
		return func() { it.SetValue(v) }, nil
	case *menu.FloatItem:
		if e.Float == nil {
			break
		}
		v := *e.Float
		return func() { it.SetValue(v) }, nil
	case *menu.ChoiceItem:
		if e.Choice == nil {
			break
		}
		for idx, c := range spec.Choices {
			if c == *e.Choice {
				return func() { it.SetValue(idx) }, nil
			}
		}
		return nil, fmt.Errorf("%w: %q has no choice %q", ErrBadValue, e.Label, *e.Choice)
	case *menu.TextItem:
		if e.Text == nil {
			break
		}
		if len(*e.Text) > spec.Length {
			return nil, fmt.Errorf("%w: %q longer than %d", ErrBadValue, e.Label, spec.Length)
		}
		v := *e.Text
		return func() { it.SetValue(v) }, nil
	}
	return nil, fmt.Errorf("%w: %q has no %v value", ErrBadValue, e.Label, spec.Kind)
}
