// Copyright 2026 The linesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package coder

import (
	"math/bits"

	"github.com/pkg/errors"
)

// state is the per-sub-encoder register file: the symbol captured on the
// previous active edge and the running disparity (rdNeg is true while the
// cumulative balance of emitted words is negative). Both are long lived and
// mutated exactly once per Step.
type state struct {
	latched uint8
	rdNeg   bool
}

// encoder is the shared sub-encoder shape: a code table plus register
// state. The 3b/4b and 5b/6b paths differ only in their parameters.
type encoder struct {
	tab      []codePair
	inMax    uint8
	outWidth int
	rstSym   uint8
	st       state
}

// output is the combinational half of a cycle: select a code word for the
// previously latched symbol using the current running disparity. While rst
// is asserted the negative half of the reset row is forced, regardless of
// the running disparity.
func (e *encoder) output(rst bool) uint8 {
	if rst {
		return e.tab[e.rstSym].neg
	}
	p := e.tab[e.st.latched]
	if e.st.rdNeg {
		return p.neg
	}
	return p.pos
}

// step runs one full cycle: compute the output from the old state, then
// advance the registers. The two phases are kept strictly apart so the
// lookup never observes the new latch value.
func (e *encoder) step(in uint8, rst bool) uint8 {
	if in > e.inMax {
		panic(errors.Errorf("coder: symbol %d exceeds %d-bit input range", in, bits.Len8(e.inMax)))
	}
	out := e.output(rst)
	if rst {
		e.st = state{latched: e.rstSym, rdNeg: true}
		return out
	}
	next := state{latched: in, rdNeg: e.st.rdNeg}
	if disparity(out, e.outWidth) != 0 {
		next.rdNeg = !next.rdNeg
	}
	e.st = next
	return out
}

// disparity returns ones minus zeros for a code word of the given width.
// Valid table entries always yield -2, 0 or +2.
func disparity(word uint8, width int) int {
	return 2*bits.OnesCount8(word) - width
}

// rd collapses the running disparity to its sign, -1 or +1.
func (e *encoder) rd() int {
	if e.st.rdNeg {
		return -1
	}
	return 1
}

// Enc5b6 encodes 5-bit major symbols to 6-bit code words.
type Enc5b6 struct {
	e encoder
}

// NewEnc5b6 returns an encoder in its reset state: running disparity
// negative, latched symbol pinned to the balanced reset row.
func NewEnc5b6() *Enc5b6 {
	return &Enc5b6{e: encoder{
		tab:      tab5b6[:],
		inMax:    31,
		outWidth: 6,
		rstSym:   rstSym5,
		st:       state{latched: rstSym5, rdNeg: true},
	}}
}

// Step runs one coding cycle: it returns the 6-bit code word for the symbol
// latched on the previous call, then latches in and updates the running
// disparity from the word just produced. While rst is asserted the output
// is the balanced reset word and the state stays pinned. Step panics if in
// does not fit in 5 bits; inputs are fixed width by contract and a wider
// value is a programming error.
func (x *Enc5b6) Step(in uint8, rst bool) uint8 {
	return x.e.step(in, rst)
}

// RD returns the sign of the running disparity, -1 or +1.
func (x *Enc5b6) RD() int { return x.e.rd() }

// Enc3b4 encodes 3-bit minor symbols to 4-bit code words.
type Enc3b4 struct {
	e encoder
}

// NewEnc3b4 returns an encoder in its reset state.
func NewEnc3b4() *Enc3b4 {
	return &Enc3b4{e: encoder{
		tab:      tab3b4[:],
		inMax:    7,
		outWidth: 4,
		rstSym:   rstSym3,
		st:       state{latched: rstSym3, rdNeg: true},
	}}
}

// Step runs one coding cycle, returning the 4-bit code word for the symbol
// latched on the previous call. See Enc5b6.Step for the exact semantics.
func (x *Enc3b4) Step(in uint8, rst bool) uint8 {
	return x.e.step(in, rst)
}

// RD returns the sign of the running disparity, -1 or +1.
func (x *Enc3b4) RD() int { return x.e.rd() }

// Enc8b10 encodes bytes to 10-bit code words by driving a major (5b/6b) and
// a minor (3b/4b) sub-encoder in parallel. The sub-encoders share clocking
// and reset but keep fully independent running disparities.
type Enc8b10 struct {
	major Enc5b6
	minor Enc3b4
}

// NewEnc8b10 returns a composite encoder with both halves in reset state.
func NewEnc8b10() *Enc8b10 {
	return &Enc8b10{major: *NewEnc5b6(), minor: *NewEnc3b4()}
}

// Step runs one coding cycle on both halves. Bits 0-4 of in feed the major
// encoder, bits 5-7 the minor encoder; the result concatenates the major
// 6-bit word (high) with the minor 4-bit word (low).
func (x *Enc8b10) Step(in uint8, rst bool) uint16 {
	mj := x.major.Step(in&0x1f, rst)
	mn := x.minor.Step(in>>5, rst)
	return uint16(mj)<<4 | uint16(mn)
}

// MajorRD returns the running disparity sign of the 5b/6b half.
func (x *Enc8b10) MajorRD() int { return x.major.RD() }

// MinorRD returns the running disparity sign of the 3b/4b half.
func (x *Enc8b10) MinorRD() int { return x.minor.RD() }
