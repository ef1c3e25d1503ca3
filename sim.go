// Copyright 2026 The linesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package linesim

import (
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// A Component is a component in a circuit that can Get and Set wire states.
//
type Component func(c *Circuit)

// Constant wire names. These are always available in connection strings:
// "false" and "true" hold their literal values, "clk" carries the clock
// signal (high during the first half of a cycle).
//
var (
	False = "false"
	True  = "true"
	Clk   = "clk"
)

const (
	cstFalse = iota
	cstTrue
	cstClk
	cstCount
)

// Circuit is a runnable circuit simulation.
//
type Circuit struct {
	s0    []bool // wire states frame #0
	s1    []bool // wire states frame #1
	comps []Component
	count int  // wire count
	tpc   uint // steps per clock cycle
	tick  uint
}

// NewCircuit builds a new circuit based on the given parts.
//
// stepsPerCycle indicates how many simulation steps to run per clock cycle.
// It is rounded up to a power of two and must be at least 4 so that values
// written by input parts settle before the active edge. Zero selects the
// default of 4.
//
// All wiring problems are collected and reported in a single error: a wire
// consumed by some part input must be driven by exactly one part output (or
// be one of the constant wires).
//
func NewCircuit(stepsPerCycle uint, parts ...Part) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}

	if stepsPerCycle < 4 {
		stepsPerCycle = 4
	}
	stepsPerCycle--
	stepsPerCycle |= stepsPerCycle >> 1
	stepsPerCycle |= stepsPerCycle >> 2
	stepsPerCycle |= stepsPerCycle >> 4
	stepsPerCycle |= stepsPerCycle >> 8
	stepsPerCycle |= stepsPerCycle >> 16
	stepsPerCycle |= stepsPerCycle >> 32
	stepsPerCycle++

	if err := checkWires(parts); err != nil {
		return nil, errors.Wrap(err, "invalid circuit wiring")
	}

	c := &Circuit{count: cstCount, tpc: stepsPerCycle}
	root := newSocket(c)
	for _, p := range parts {
		c.comps = append(c.comps, root.Mount(p)...)
	}
	c.s0 = make([]bool, c.count)
	c.s1 = make([]bool, c.count)
	c.s0[cstTrue] = true
	c.s1[cstTrue] = true
	c.s0[cstClk] = true

	return c, nil
}

// checkWires verifies that every consumed wire has exactly one driver.
// Unlike construction errors in NewPart, wiring errors are aggregated so
// that a single run reports every faulty wire.
//
func checkWires(parts []Part) error {
	drivers := make(map[string]int)
	consumers := make(map[string]string) // wire -> first consuming pin
	for _, p := range parts {
		for _, cn := range p.Conns {
			if p.isInput(cn.PP) {
				if _, ok := consumers[cn.CP]; !ok {
					consumers[cn.CP] = p.Name + "." + cn.PP
				}
			} else {
				drivers[cn.CP]++
			}
		}
	}

	var res *multierror.Error

	wires := make([]string, 0, len(drivers))
	for w := range drivers {
		wires = append(wires, w)
	}
	sort.Strings(wires)
	for _, w := range wires {
		switch {
		case w == False || w == True || w == Clk:
			res = multierror.Append(res, errors.Errorf("output pin connected to constant wire %q", w))
		case drivers[w] > 1:
			res = multierror.Append(res, errors.Errorf("wire %q driven by more than one output", w))
		}
	}

	wires = wires[:0]
	for w := range consumers {
		wires = append(wires, w)
	}
	sort.Strings(wires)
	for _, w := range wires {
		if w == False || w == True || w == Clk {
			continue
		}
		if drivers[w] == 0 {
			res = multierror.Append(res, errors.Errorf("pin %s (wire %q) not connected to any output", consumers[w], w))
		}
	}
	return res.ErrorOrNil()
}

// allocPin allocates a wire and returns its number.
//
func (c *Circuit) allocPin() int {
	cnt := c.count
	c.count++
	return cnt
}

// Steps returns the value of the step counter.
//
func (c *Circuit) Steps() uint { return c.tick }

// SPC returns the stepsPerCycle value.
//
func (c *Circuit) SPC() uint { return c.tpc }

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.comps) }

// AtTick returns true if the current step is at the beginning of a clock
// cycle (rising edge of clk).
//
func (c *Circuit) AtTick() bool {
	return c.tick%c.tpc == 0
}

// AtTock returns true if the current step is at the beginning of the second
// half of a clock cycle (falling edge of clk). This is the active edge:
// clocked parts sample their inputs and advance their state here.
//
func (c *Circuit) AtTock() bool {
	return c.tick%c.tpc == c.tpc/2
}

// Get returns the state of pin n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
//
func (c *Circuit) Get(n int) bool {
	return c.s0[n]
}

// Set sets the state s of pin n in the next frame.
//
func (c *Circuit) Set(n int, s bool) {
	c.s1[n] = s
}

// Toggle toggles the state of pin n.
//
func (c *Circuit) Toggle(n int) {
	c.s1[n] = !c.s0[n]
}

// GetBus returns the value carried by the given pins, pins[0] being the
// least significant bit.
//
func (c *Circuit) GetBus(pins []int) uint64 {
	var v uint64
	for i, n := range pins {
		if c.s0[n] {
			v |= 1 << uint(i)
		}
	}
	return v
}

// SetBus sets the given pins to the value v, pins[0] being the least
// significant bit.
//
func (c *Circuit) SetBus(pins []int, v uint64) {
	for i, n := range pins {
		c.s1[n] = v&(1<<uint(i)) != 0
	}
}

// Step advances the simulation by one step.
//
func (c *Circuit) Step() {
	for _, f := range c.comps {
		f(c)
	}
	c.tick++
	c.s1[cstFalse] = false
	c.s1[cstTrue] = true
	c.s1[cstClk] = c.tick%c.tpc < c.tpc/2
	c.s0, c.s1 = c.s1, c.s0
}

// Tick runs the simulation until the falling edge of the clock.
//
func (c *Circuit) Tick() {
	for c.Get(cstClk) {
		c.Step()
	}
}

// Tock runs the simulation until the beginning of the next clock cycle.
// Once Tock returns, the outputs of clocked parts have stabilized.
//
func (c *Circuit) Tock() {
	for !c.Get(cstClk) {
		c.Step()
	}
}

// TickTock runs the simulation for a whole clock cycle.
//
func (c *Circuit) TickTock() {
	c.Tick()
	c.Tock()
}
