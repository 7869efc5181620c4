package menu

import "strings"

type memStore struct {
	b      []byte
	writes int
}

func newMemStore(n int) *memStore {
	s := &memStore{b: make([]byte, n)}
	for i := range s.b {
		s.b[i] = 0xFF
	}
	return s
}

func (s *memStore) ByteAt(addr int) byte { return s.b[addr] }

func (s *memStore) SetByte(addr int, b byte) {
	s.b[addr] = b
	s.writes++
}

// blockStore records each batched write as one commit.
type blockStore struct {
	memStore
	commits [][]byte
}

func (s *blockStore) SetBytes(addr int, p []byte) {
	copy(s.b[addr:], p)
	s.commits = append(s.commits, append([]byte(nil), p...))
}

type screen struct {
	rows     [Rows][Columns]byte
	row, col int
}

func newScreen() *screen {
	s := &screen{}
	for r := range s.rows {
		for c := range s.rows[r] {
			s.rows[r][c] = ' '
		}
	}
	return s
}

func (s *screen) WriteAt(row, col int, text string) {
	for i := 0; i < len(text) && col+i < Columns; i++ {
		s.rows[row][col+i] = text[i]
	}
}

func (s *screen) SetCursor(row, col int) {
	s.row, s.col = row, col
}

func (s *screen) line(row int) string {
	return strings.TrimRight(string(s.rows[row][:]), " ")
}

type pressQueue struct {
	next map[Button]int
}

func (q *pressQueue) press(b Button) {
	if q.next == nil {
		q.next = make(map[Button]int)
	}
	q.next[b]++
}

func (q *pressQueue) WasPressed(b Button) bool {
	if q.next[b] == 0 {
		return false
	}
	q.next[b]--
	return true
}

type manualClock struct{ ms uint64 }

func (c *manualClock) Millis() uint64 { return c.ms }

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
