// Copyright 2026 The linesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package coder

// A codePair holds the two pre-computed code words for one input symbol:
// neg is emitted while the running disparity is negative, pos while it is
// positive. Code words are written msb first (bit a of abcdei is bit 5 of a
// 5b/6b entry, bit f of fghj is bit 3 of a 3b/4b entry).
type codePair struct {
	neg, pos uint8
}

// tab5b6 maps a 5-bit major symbol to its 6-bit code pair. Rows 10 and 11
// are identical: the source mapping lists symbol 10 twice and the
// duplication is kept verbatim.
var tab5b6 = [32]codePair{
	{0b100111, 0b011000}, // 0
	{0b011101, 0b100010}, // 1
	{0b101101, 0b010010}, // 2
	{0b110001, 0b110001}, // 3
	{0b110101, 0b001010}, // 4
	{0b101001, 0b101001}, // 5
	{0b011001, 0b011001}, // 6
	{0b111000, 0b000111}, // 7
	{0b111001, 0b000110}, // 8
	{0b100101, 0b100101}, // 9
	{0b010101, 0b010101}, // 10
	{0b010101, 0b010101}, // 11
	{0b001101, 0b001101}, // 12
	{0b101100, 0b101100}, // 13
	{0b011100, 0b011100}, // 14
	{0b010111, 0b101000}, // 15
	{0b011011, 0b100100}, // 16
	{0b100011, 0b100011}, // 17
	{0b010011, 0b010011}, // 18
	{0b110010, 0b110010}, // 19
	{0b001011, 0b001011}, // 20
	{0b101010, 0b101010}, // 21
	{0b011010, 0b011010}, // 22
	{0b111010, 0b000101}, // 23
	{0b110011, 0b001100}, // 24
	{0b100110, 0b100110}, // 25
	{0b010110, 0b010110}, // 26
	{0b110110, 0b001001}, // 27
	{0b001110, 0b001110}, // 28
	{0b101110, 0b010001}, // 29
	{0b011110, 0b100001}, // 30
	{0b101011, 0b010100}, // 31
}

// tab3b4 maps a 3-bit minor symbol to its 4-bit code pair.
var tab3b4 = [8]codePair{
	{0b1011, 0b0100}, // 0
	{0b1001, 0b1001}, // 1
	{0b0101, 0b0101}, // 2
	{0b1100, 0b0011}, // 3
	{0b1101, 0b0010}, // 4
	{0b1010, 0b1010}, // 5
	{0b0110, 0b0110}, // 6
	{0b1110, 0b0001}, // 7
}

// alt3b4x7 is the alternate code pair for minor symbol 7. The lookup never
// selects it (it only matters for control symbols, which this encoder does
// not handle); it is kept as inert data rather than removed.
var alt3b4x7 = codePair{0b0111, 0b1000}

// Reset symbols. Both forced rows are balanced, so the output held during
// reset has zero disparity.
const (
	rstSym5 = 10 // major: 010101
	rstSym3 = 2  // minor: 0101
)
