package menu

import "fmt"

// MaxChoices is the longest list a single stored byte can index.
const MaxChoices = 256

// ChoiceItem cycles through a fixed list of labels and stores the selected index.
type ChoiceItem struct {
	section
	store    Storage
	addr     int
	choices  []string
	selected int
	shown    int
}

func NewChoice(disp Display, store Storage, label string, addr int, choices []string) *ChoiceItem {
	if len(choices) == 0 || len(choices) > MaxChoices {
		panic(fmt.Sprintf("menu: %q: %d choices out of range", label, len(choices)))
	}
	it := &ChoiceItem{
		section: section{disp: disp, label: label, sections: 1},
		store:   store,
		addr:    addr,
		choices: choices,
	}
	it.load()
	return it
}

func (it *ChoiceItem) Extent() Extent { return Extent{Addr: it.addr, Size: 1} }

// Value returns the selected index.
func (it *ChoiceItem) Value() int { return it.selected }

// Choice returns the selected label.
func (it *ChoiceItem) Choice() string { return it.choices[it.selected] }

// SetValue selects index v and stores it immediately. Out-of-range indexes select the first choice.
func (it *ChoiceItem) SetValue(v int) {
	if v < 0 || v >= len(it.choices) {
		v = 0
	}
	it.selected = v
	it.shown = v
	it.store.SetByte(it.addr, byte(v))
}

// load reads the stored index; indexes past the list select the first choice.
func (it *ChoiceItem) load() {
	v := int(it.store.ByteAt(it.addr))
	if v >= len(it.choices) {
		v = 0
	}
	it.selected = v
	it.shown = v
}

func (it *ChoiceItem) Show(endFirst bool) {
	it.load()
	it.start(endFirst)
	it.render()
}

func (it *ChoiceItem) Hide() {
	if it.selected != it.shown {
		it.store.SetByte(it.addr, byte(it.selected))
		it.shown = it.selected
	}
}

func (it *ChoiceItem) Next() bool     { return false }
func (it *ChoiceItem) Previous() bool { return false }

func (it *ChoiceItem) Increase() { it.add(1) }
func (it *ChoiceItem) Decrease() { it.add(-1) }

func (it *ChoiceItem) PlaceCursor() { it.disp.SetCursor(1, 0) }

func (it *ChoiceItem) add(n int) {
	l := len(it.choices)
	it.selected = ((it.selected+n)%l + l) % l
	it.render()
}

func (it *ChoiceItem) render() {
	writeLine(it.disp, 0, it.label)
	writeLine(it.disp, 1, it.choices[it.selected])
	it.PlaceCursor()
}
