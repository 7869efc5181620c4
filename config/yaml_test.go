package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"lcdmenu/menu"
)

const sampleTable = `
timeout: 30s
region:
  base: 8192
  size: 4096
items:
  - kind: int
    label: Speed
    address: 0
    digits: 5
  - kind: choice
    label: Units
    address: 4
    choices: [mm, inch]
  - kind: text
    label: Tag
    address: 5
    allowed: "ABC"
    length: 3
`

func TestParse(t *testing.T) {
	tab, err := Parse([]byte(sampleTable))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tab.Timeout != 30*time.Second {
		t.Fatalf("Timeout = %v, want 30s", tab.Timeout)
	}
	if tab.Region != (Region{Base: 8192, Size: 4096}) {
		t.Fatalf("Region = %+v", tab.Region)
	}
	want := []ItemSpec{
		{Kind: KindInt, Label: "Speed", Address: 0, Digits: 5},
		{Kind: KindChoice, Label: "Units", Address: 4, Choices: []string{"mm", "inch"}},
		{Kind: KindText, Label: "Tag", Address: 5, Allowed: "ABC", Length: 3},
	}
	if !reflect.DeepEqual(tab.Items, want) {
		t.Fatalf("Items = %+v, want %+v", tab.Items, want)
	}
}

func TestParseDefaultsTimeoutAndRegion(t *testing.T) {
	tab, err := Parse([]byte("items:\n  - {kind: int, label: X, address: 0, digits: 2}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def := Default()
	if tab.Timeout != def.Timeout || tab.Region != def.Region {
		t.Fatalf("Parse() = %v %+v, want %v %+v", tab.Timeout, tab.Region, def.Timeout, def.Region)
	}
}

func TestParseRejects(t *testing.T) {
	if _, err := Parse([]byte("items:\n  - {kind: bool, label: X}\n")); err == nil {
		t.Fatal("Parse(unknown kind) = nil error")
	}
	if _, err := Parse([]byte("colour: red\nitems: []\n")); err == nil {
		t.Fatal("Parse(unknown field) = nil error")
	}
	_, err := Parse([]byte("items:\n  - {kind: int, label: A, address: 0, digits: 2}\n  - {kind: int, label: B, address: 2, digits: 2}\n"))
	if !errors.Is(err, menu.ErrOverlap) {
		t.Fatalf("Parse(overlap) = %v, want ErrOverlap", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	b, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	tab, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse(Marshal(Default())): %v\n%s", err, b)
	}
	if !reflect.DeepEqual(tab, Default()) {
		t.Fatalf("Parse(Marshal(Default())) = %+v, want %+v", tab, Default())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte(sampleTable), 0o644); err != nil {
		t.Fatal(err)
	}
	tab, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tab.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(tab.Items))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load(missing) = nil error")
	}
}
