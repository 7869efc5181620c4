package menu

import (
	"bytes"
	"fmt"
	"strings"
)

// TextItem edits a fixed-length text one character at a time.
// Every character is kept within the allowed set.
type TextItem struct {
	section
	store   Storage
	addr    int
	allowed string
	text    []byte
	shown   []byte
}

func NewText(disp Display, store Storage, label string, addr int, allowed string, length int) *TextItem {
	if allowed == "" {
		panic(fmt.Sprintf("menu: %q: empty character set", label))
	}
	if length < 1 || length > Columns {
		panic(fmt.Sprintf("menu: %q: length %d out of range", label, length))
	}
	it := &TextItem{
		section: section{disp: disp, label: label, sections: length},
		store:   store,
		addr:    addr,
		allowed: allowed,
		text:    make([]byte, length),
		shown:   make([]byte, length),
	}
	it.load()
	return it
}

func (it *TextItem) Extent() Extent { return Extent{Addr: it.addr, Size: len(it.text)} }

// Value returns a copy of the current text.
func (it *TextItem) Value() string { return string(it.text) }

// SetValue replaces the text, normalizes it and stores it immediately.
// Short values are padded with the first allowed character.
func (it *TextItem) SetValue(v string) {
	for i := range it.text {
		if i < len(v) {
			it.text[i] = v[i]
		} else {
			it.text[i] = it.allowed[0]
		}
	}
	it.normalize()
	it.save()
}

func (it *TextItem) load() {
	for i := range it.text {
		it.text[i] = it.store.ByteAt(it.addr + i)
	}
	it.normalize()
	copy(it.shown, it.text)
}

func (it *TextItem) save() {
	setBytes(it.store, it.addr, it.text)
	copy(it.shown, it.text)
}

// normalize replaces characters outside the allowed set with the first allowed one.
func (it *TextItem) normalize() {
	for i := range it.text {
		it.findIndex(i)
	}
}

// findIndex returns the position of text[i] in the allowed set,
// normalizing it to the first allowed character when absent.
func (it *TextItem) findIndex(i int) int {
	idx := strings.IndexByte(it.allowed, it.text[i])
	if idx < 0 {
		it.text[i] = it.allowed[0]
		return 0
	}
	return idx
}

func (it *TextItem) Show(endFirst bool) {
	it.load()
	it.start(endFirst)
	it.render()
}

func (it *TextItem) Hide() {
	if !bytes.Equal(it.text, it.shown) {
		it.save()
	}
}

func (it *TextItem) Next() bool {
	if !it.move(1) {
		return false
	}
	it.render()
	return true
}

func (it *TextItem) Previous() bool {
	if !it.move(-1) {
		return false
	}
	it.render()
	return true
}

func (it *TextItem) Increase() { it.add(1) }
func (it *TextItem) Decrease() { it.add(-1) }

func (it *TextItem) PlaceCursor() { it.disp.SetCursor(1, it.s) }

func (it *TextItem) add(n int) {
	l := len(it.allowed)
	idx := it.findIndex(it.s)
	it.text[it.s] = it.allowed[((idx+n)%l+l)%l]
	it.render()
}

func (it *TextItem) render() {
	writeLine(it.disp, 0, it.label)
	writeLine(it.disp, 1, string(it.text))
	it.PlaceCursor()
}
