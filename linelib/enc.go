// Copyright 2026 The linesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package linelib provides the clocked parts of a line-coding pipeline:
// the 8b/10b encoder and its two sub-encoders, plus the register and
// shift-register primitives used around them.
package linelib

import (
	"github.com/hwbits/linesim"
	"github.com/hwbits/linesim/coder"
)

// Enc5b6 returns the major (5b/6b) sub-encoder part.
//
//	Inputs: in[5], rst
//	Outputs: out[6]
//
// The output during a cycle is the code word for the symbol latched on the
// previous active edge, selected by the running disparity. While rst is
// high the balanced reset word is forced.
func Enc5b6(w string) linesim.Part { return enc5b6.NewPart(w) }

var enc5b6 = &linesim.PartSpec{
	Name:    "Enc5b6",
	Inputs:  linesim.IO("in[5], rst"),
	Outputs: linesim.IO("out[6]"),
	Mount: func(s *linesim.Socket) []linesim.Component {
		in, rst := s.Bus("in", 5), s.Pin("rst")
		out := s.Bus("out", 6)
		e := coder.NewEnc5b6()
		cur := e.Step(0, true)
		return []linesim.Component{
			func(c *linesim.Circuit) {
				if c.AtTock() {
					cur = e.Step(uint8(c.GetBus(in)), c.Get(rst))
				}
				c.SetBus(out, uint64(cur))
			}}
	},
}

// Enc3b4 returns the minor (3b/4b) sub-encoder part.
//
//	Inputs: in[3], rst
//	Outputs: out[4]
//
func Enc3b4(w string) linesim.Part { return enc3b4.NewPart(w) }

var enc3b4 = &linesim.PartSpec{
	Name:    "Enc3b4",
	Inputs:  linesim.IO("in[3], rst"),
	Outputs: linesim.IO("out[4]"),
	Mount: func(s *linesim.Socket) []linesim.Component {
		in, rst := s.Bus("in", 3), s.Pin("rst")
		out := s.Bus("out", 4)
		e := coder.NewEnc3b4()
		cur := e.Step(0, true)
		return []linesim.Component{
			func(c *linesim.Circuit) {
				if c.AtTock() {
					cur = e.Step(uint8(c.GetBus(in)), c.Get(rst))
				}
				c.SetBus(out, uint64(cur))
			}}
	},
}

// Enc8b10 returns the composite 8b/10b encoder part.
//
//	Inputs: in[8], rst
//	Outputs: out[10]
//
// Bits 0-4 of the input feed the major encoder, bits 5-7 the minor one.
// The major code word occupies out[4..9], the minor one out[0..3]. Both
// halves share clock and reset but keep independent running disparities;
// there is no joint disparity across the two halves.
func Enc8b10(w string) linesim.Part { return enc8b10.NewPart(w) }

var enc8b10 = &linesim.PartSpec{
	Name:    "Enc8b10",
	Inputs:  linesim.IO("in[8], rst"),
	Outputs: linesim.IO("out[10]"),
	Mount: func(s *linesim.Socket) []linesim.Component {
		cs := s.Mount(Enc5b6("in=in[0..4], rst=rst, out=out[4..9]"))
		return append(cs, s.Mount(Enc3b4("in=in[5..7], rst=rst, out=out[0..3]"))...)
	},
}
