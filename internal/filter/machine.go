package filter

import "strings"

// eof is returned by read once the input is exhausted. It is outside
// the range of any byte value.
const eof = -1

// machine is the per-call cursor over the input and the output being
// built. It is never shared between calls.
type machine struct {
	input  string
	pos    int
	output strings.Builder
}

func newMachine(text string) *machine {
	m := &machine{input: text}
	m.output.Grow(len(text))
	return m
}

// read consumes the next character, or returns eof.
func (m *machine) read() int {
	if m.pos >= len(m.input) {
		return eof
	}
	c := m.input[m.pos]
	m.pos++
	return int(c)
}

// emit appends a character to the output. eof is ignored.
func (m *machine) emit(c int) {
	if c == eof {
		return
	}
	m.output.WriteByte(byte(c))
}
