/*
Package linesim provides the necessary tools to assemble and run clocked
line-coding pipelines using Go as a hardware description language.

This includes a naive synchronous simulator and an API to compose word-level
parts (encoders, registers, shift registers) into larger designs. The API
relies heavily on closures: a part is mounted into a circuit by a MountFn
that resolves pin names to pin numbers and returns update closures over them.

The simulator keeps two state frames and swaps them after every step, so that
within a step every part reads the previous frame and writes the next one.
Clocked parts sample their inputs and advance their state on the falling edge
of the clock (AtTock); their outputs are held stable for the rest of the
cycle. This reproduces standard synchronous-register semantics: a cycle's
output is computed from state latched on the previous active edge, and the
new state only becomes visible on the next cycle.
*/
package linesim
