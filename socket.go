// Copyright 2026 The linesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package linesim

import "github.com/pkg/errors"

// A Socket maps a part's pin names to pin numbers in a circuit.
//
type Socket struct {
	m map[string]int
	c *Circuit
}

func newSocket(c *Circuit) *Socket {
	return &Socket{
		m: map[string]int{False: cstFalse, True: cstTrue, Clk: cstClk},
		c: c,
	}
}

// Pin returns the pin number allocated to the given pin name.
// It panics if the pin does not exist.
//
func (s *Socket) Pin(name string) int {
	n, ok := s.m[name]
	if !ok {
		panic(errors.Errorf("pin %s does not exist", name))
	}
	return n
}

// PinOrNew returns the pin number allocated to the given pin name.
// If no such pin exists a new one is allocated.
//
func (s *Socket) PinOrNew(name string) int {
	n, ok := s.m[name]
	if !ok {
		n = s.c.allocPin()
		s.m[name] = n
	}
	return n
}

// Bus returns the pin numbers allocated to the given bus name, index 0
// first. It panics if any bus pin is missing.
//
func (s *Socket) Bus(name string, bits int) []int {
	out := make([]int, bits)
	for i := range out {
		out[i] = s.Pin(busPinName(name, i))
	}
	return out
}

// Mount mounts the given sub-part and allocates new pins as necessary.
// The sub-part's connections are resolved against this socket's namespace,
// so composite parts can wire their children to their own pins. Declared
// pins left unconnected fall to the constant false wire (inputs) or to a
// fresh floating wire (outputs).
//
func (s *Socket) Mount(p Part) []Component {
	sub := newSocket(s.c)
	for _, cn := range p.Conns {
		sub.m[cn.PP] = s.PinOrNew(cn.CP)
	}
	for _, n := range p.Inputs {
		if _, ok := sub.m[n]; !ok {
			sub.m[n] = cstFalse
		}
	}
	for _, n := range p.Outputs {
		if _, ok := sub.m[n]; !ok {
			sub.m[n] = s.c.allocPin()
		}
	}
	return p.Mount(sub)
}
