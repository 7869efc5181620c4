// Package config describes the menu table: which settings exist, how they are
// edited and where each one lives in storage.
package config

import (
	"errors"
	"fmt"
	"time"

	"lcdmenu/menu"
)

var ErrInvalid = errors.New("config: invalid item")

// Kind selects the editor used for an item.
type Kind uint8

const (
	KindInt Kind = iota + 1
	KindFloat
	KindChoice
	KindText
)

var kindNames = [...]string{
	KindInt:    "int",
	KindFloat:  "float",
	KindChoice: "choice",
	KindText:   "text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) || kindNames[k] == "" {
		return nil, fmt.Errorf("%w: kind %d", ErrInvalid, uint8(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name != "" && name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown kind %q", ErrInvalid, b)
}

// ItemSpec is one row of the menu table. Which of Digits, Choices, Allowed and
// Length apply depends on Kind.
type ItemSpec struct {
	Kind    Kind     `yaml:"kind"`
	Label   string   `yaml:"label"`
	Address int      `yaml:"address"`
	Digits  int      `yaml:"digits,omitempty"`
	Choices []string `yaml:"choices,omitempty"`
	Allowed string   `yaml:"allowed,omitempty"`
	Length  int      `yaml:"length,omitempty"`
}

// Size returns the number of storage bytes the item owns.
func (s ItemSpec) Size() int {
	switch s.Kind {
	case KindInt, KindFloat:
		return menu.NumberSize
	case KindChoice:
		return 1
	case KindText:
		return s.Length
	}
	return 0
}

func (s ItemSpec) Extent() menu.Extent { return menu.Extent{Addr: s.Address, Size: s.Size()} }

// Region is the slice of flash set aside for settings. Base and Size must be
// multiples of the flash erase block.
type Region struct {
	Base uint32 `yaml:"base"`
	Size uint32 `yaml:"size"`
}

type Table struct {
	Timeout time.Duration `yaml:"timeout"`
	Region  Region        `yaml:"region"`
	Items   []ItemSpec    `yaml:"items"`
}

// Default returns the built-in table used when no other is supplied.
func Default() Table {
	return Table{
		Timeout: menu.DefaultTimeout,
		Region:  Region{Base: 0, Size: 4096},
		Items: []ItemSpec{
			{Kind: KindInt, Label: "Setpoint", Address: 0, Digits: 4},
			{Kind: KindFloat, Label: "Gain", Address: 4, Digits: 4},
			{Kind: KindChoice, Label: "Mode", Address: 8, Choices: []string{"Off", "Heat", "Cool", "Auto"}},
			{Kind: KindText, Label: "Name", Address: 9, Allowed: " ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", Length: 8},
			{Kind: KindChoice, Label: "Backlight", Address: 17, Choices: []string{"On", "Off", "Dim"}},
		},
	}
}

// Validate checks every item against its editor's limits and the table as a
// whole for duplicate labels and overlapping or out-of-region storage.
func (t Table) Validate() error {
	if t.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %v", ErrInvalid, t.Timeout)
	}
	if t.Region.Size == 0 {
		return fmt.Errorf("%w: empty storage region", ErrInvalid)
	}
	if len(t.Items) == 0 {
		return menu.ErrNoItems
	}

	seen := make(map[string]bool, len(t.Items))
	for i, it := range t.Items {
		if err := it.validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if seen[it.Label] {
			return fmt.Errorf("%w: duplicate label %q", ErrInvalid, it.Label)
		}
		seen[it.Label] = true

		e := it.Extent()
		if e.Addr < 0 || e.End() > int(t.Region.Size) {
			return fmt.Errorf("%w: %q at [%d,%d), capacity %d", menu.ErrOutOfRange, it.Label, e.Addr, e.End(), t.Region.Size)
		}
		for _, prev := range t.Items[:i] {
			if p := prev.Extent(); e.Overlaps(p) {
				return fmt.Errorf("%w: %q [%d,%d) and %q [%d,%d)",
					menu.ErrOverlap, prev.Label, p.Addr, p.End(), it.Label, e.Addr, e.End())
			}
		}
	}
	return nil
}

func (s ItemSpec) validate() error {
	if s.Label == "" || len(s.Label) > menu.Columns {
		return fmt.Errorf("%w: label %q must be 1..%d characters", ErrInvalid, s.Label, menu.Columns)
	}
	switch s.Kind {
	case KindInt:
		if s.Digits < 1 || s.Digits > menu.MaxIntDigits {
			return fmt.Errorf("%w: %q: int digits %d not in 1..%d", ErrInvalid, s.Label, s.Digits, menu.MaxIntDigits)
		}
	case KindFloat:
		if s.Digits < 1 || s.Digits > menu.MaxFloatDigits {
			return fmt.Errorf("%w: %q: float digits %d not in 1..%d", ErrInvalid, s.Label, s.Digits, menu.MaxFloatDigits)
		}
	case KindChoice:
		if len(s.Choices) == 0 || len(s.Choices) > menu.MaxChoices {
			return fmt.Errorf("%w: %q: %d choices, want 1..%d", ErrInvalid, s.Label, len(s.Choices), menu.MaxChoices)
		}
		for _, c := range s.Choices {
			if c == "" || len(c) > menu.Columns {
				return fmt.Errorf("%w: %q: choice %q must be 1..%d characters", ErrInvalid, s.Label, c, menu.Columns)
			}
		}
	case KindText:
		if s.Length < 1 || s.Length > menu.Columns {
			return fmt.Errorf("%w: %q: text length %d not in 1..%d", ErrInvalid, s.Label, s.Length, menu.Columns)
		}
		if s.Allowed == "" {
			return fmt.Errorf("%w: %q: no allowed characters", ErrInvalid, s.Label)
		}
		var set [256]bool
		for i := 0; i < len(s.Allowed); i++ {
			c := s.Allowed[i]
			if c < 0x20 || c > 0x7E {
				return fmt.Errorf("%w: %q: allowed character %#x not printable", ErrInvalid, s.Label, c)
			}
			if set[c] {
				return fmt.Errorf("%w: %q: allowed character %q repeated", ErrInvalid, s.Label, c)
			}
			set[c] = true
		}
	default:
		return fmt.Errorf("%w: %q: %v", ErrInvalid, s.Label, s.Kind)
	}
	return nil
}

// Build validates the table and creates its items, all drawing on disp and
// persisting to store.
func (t Table) Build(disp menu.Display, store menu.Storage) ([]menu.Item, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	items := make([]menu.Item, 0, len(t.Items))
	for _, s := range t.Items {
		items = append(items, s.build(disp, store))
	}
	return items, nil
}

func (s ItemSpec) build(disp menu.Display, store menu.Storage) menu.Item {
	switch s.Kind {
	case KindInt:
		return menu.NewInt(disp, store, s.Label, s.Address, s.Digits)
	case KindFloat:
		return menu.NewFloat(disp, store, s.Label, s.Address, s.Digits)
	case KindChoice:
		return menu.NewChoice(disp, store, s.Label, s.Address, s.Choices)
	default:
		return menu.NewText(disp, store, s.Label, s.Address, s.Allowed, s.Length)
	}
}

// Options returns the menu options the table implies.
func (t Table) Options() []menu.Option {
	if t.Timeout > 0 {
		return []menu.Option{menu.WithTimeout(t.Timeout)}
	}
	return nil
}
