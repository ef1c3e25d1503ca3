// Copyright 2026 The linesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package linesim

import "strconv"

// Input returns a 1 bit input driven by the given function.
//
//	Outputs: out
//
func Input(f func() bool) NewPartFn {
	return (&PartSpec{
		Name:    "Input",
		Outputs: IO("out"),
		Mount: func(s *Socket) []Component {
			out := s.Pin("out")
			return []Component{
				func(c *Circuit) { c.Set(out, f()) },
			}
		}}).NewPart
}

// Output returns a 1 bit output or probe. The given function is called with
// the wire state on every simulation step.
//
//	Inputs: in
//
func Output(f func(value bool)) NewPartFn {
	return (&PartSpec{
		Name:   "Output",
		Inputs: IO("in"),
		Mount: func(s *Socket) []Component {
			in := s.Pin("in")
			return []Component{
				func(c *Circuit) { f(c.Get(in)) },
			}
		}}).NewPart
}

// InputN returns an input bus of the given bit size driven by the given
// function, bit 0 being the least significant.
//
//	Outputs: out[bits]
//
func InputN(bits int, f func() uint64) NewPartFn {
	bs := strconv.Itoa(bits)
	return (&PartSpec{
		Name:    "Input" + bs,
		Outputs: IO("out[" + bs + "]"),
		Mount: func(s *Socket) []Component {
			pins := s.Bus("out", bits)
			return []Component{
				func(c *Circuit) { c.SetBus(pins, f()) },
			}
		}}).NewPart
}

// OutputN returns an output bus of the given bit size. The given function
// is called with the bus value on every simulation step.
//
//	Inputs: in[bits]
//
func OutputN(bits int, f func(uint64)) NewPartFn {
	bs := strconv.Itoa(bits)
	return (&PartSpec{
		Name:   "Output" + bs,
		Inputs: IO("in[" + bs + "]"),
		Mount: func(s *Socket) []Component {
			pins := s.Bus("in", bits)
			return []Component{
				func(c *Circuit) { f(c.GetBus(pins)) },
			}
		}}).NewPart
}
