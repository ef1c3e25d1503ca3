// Copyright 2026 The linesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package linelib

import (
	"strconv"

	"github.com/hwbits/linesim"
)

// ShiftIn returns a serial-to-parallel converter of the given width.
//
//	Inputs: in, en, rst
//	Outputs: out[bits], busy
//
// A pulse on en starts a frame: busy goes high and one bit is sampled from
// in on each of the next bits active edges, least significant bit first.
// When the frame is complete the assembled word appears on out, busy drops
// and the part waits for the next en pulse. out holds the last completed
// word in the meantime. rst aborts any frame and clears the word.
func ShiftIn(bits int) linesim.NewPartFn {
	bs := strconv.Itoa(bits)
	return (&linesim.PartSpec{
		Name:    "ShiftIn" + bs,
		Inputs:  linesim.IO("in, en, rst"),
		Outputs: linesim.IO("out[" + bs + "], busy"),
		Mount: func(s *linesim.Socket) []linesim.Component {
			in, en, rst := s.Pin("in"), s.Pin("en"), s.Pin("rst")
			out, busy := s.Bus("out", bits), s.Pin("busy")
			var word, done uint64
			var got int
			var run bool
			return []linesim.Component{
				func(c *linesim.Circuit) {
					if c.AtTock() {
						switch {
						case c.Get(rst):
							word, done, got, run = 0, 0, 0, false
						case run:
							if c.Get(in) {
								word |= 1 << uint(got)
							}
							got++
							if got == bits {
								done = word
								run = false
							}
						case c.Get(en):
							word, got, run = 0, 0, true
						}
					}
					c.SetBus(out, done)
					c.Set(busy, run)
				}}
		}}).NewPart
}

// ShiftOut returns a parallel-to-serial converter of the given width.
//
//	Inputs: in[bits], ld, rst
//	Outputs: out, busy
//
// A pulse on ld latches the input word and starts emission: busy goes high
// and one bit appears on out per cycle, least significant bit first, for
// bits cycles. ld is ignored while busy. rst aborts the frame.
func ShiftOut(bits int) linesim.NewPartFn {
	bs := strconv.Itoa(bits)
	return (&linesim.PartSpec{
		Name:    "ShiftOut" + bs,
		Inputs:  linesim.IO("in[" + bs + "], ld, rst"),
		Outputs: linesim.IO("out, busy"),
		Mount: func(s *linesim.Socket) []linesim.Component {
			in, ld, rst := s.Bus("in", bits), s.Pin("ld"), s.Pin("rst")
			out, busy := s.Pin("out"), s.Pin("busy")
			var reg uint64
			var n int
			return []linesim.Component{
				func(c *linesim.Circuit) {
					if c.AtTock() {
						switch {
						case c.Get(rst):
							reg, n = 0, 0
						case n > 0:
							reg >>= 1
							n--
						case c.Get(ld):
							reg = c.GetBus(in)
							n = bits
						}
					}
					c.Set(busy, n > 0)
					c.Set(out, n > 0 && reg&1 != 0)
				}}
		}}).NewPart
}
