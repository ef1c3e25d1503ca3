// Copyright 2026 The linesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package linelib

import (
	"strconv"

	"github.com/hwbits/linesim"
)

// Reg returns an n-bit register with load enable.
//
//	Inputs: in[bits], ld, rst
//	Outputs: out[bits]
//	Function: out(t) = in(t-1) if ld, else out(t-1); rst clears.
//
func Reg(bits int) linesim.NewPartFn {
	bs := strconv.Itoa(bits)
	return (&linesim.PartSpec{
		Name:    "Reg" + bs,
		Inputs:  linesim.IO("in[" + bs + "], ld, rst"),
		Outputs: linesim.IO("out[" + bs + "]"),
		Mount: func(s *linesim.Socket) []linesim.Component {
			in, ld, rst := s.Bus("in", bits), s.Pin("ld"), s.Pin("rst")
			out := s.Bus("out", bits)
			var cur uint64
			return []linesim.Component{
				func(c *linesim.Circuit) {
					if c.AtTock() {
						switch {
						case c.Get(rst):
							cur = 0
						case c.Get(ld):
							cur = c.GetBus(in)
						}
					}
					c.SetBus(out, cur)
				}}
		}}).NewPart
}
