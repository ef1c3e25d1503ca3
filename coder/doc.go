/*
Package coder implements an 8b/10b line encoder as pure, clockless state
machines.

A byte is split into a 5-bit major symbol (bits 0-4) and a 3-bit minor
symbol (bits 5-7). Each symbol is substituted by table lookup with a 6-bit
or 4-bit code word chosen by that sub-encoder's running disparity, the one
bit of memory recording whether the words emitted so far carried more ones
or more zeros. A word with nonzero disparity (always +/-2 here) flips the
running disparity; a balanced word leaves it unchanged. The concatenated
10-bit output is transition rich and DC balanced per half.

The sub-encoders are synchronous: Step returns the code word for the symbol
latched on the previous call and only then latches its argument, exactly
like a register file read before the clock edge. While reset is asserted the
latched symbol and the running disparity are pinned to fixed, balanced
values, so the output during and right after reset is deterministic.

The two halves keep fully independent running disparities. A full 8b/10b
codec couples them into a single serial disparity; this implementation
deliberately does not, each half being balanced by its own construction.
*/
package coder
