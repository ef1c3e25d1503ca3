// Copyright 2026 The linesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package linesim

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// A MountFn mounts a part into socket s. MountFn's should query the socket
// for assigned pin numbers and return closures around these pin numbers.
//
// For example, an inverter can be defined like this:
//
//	not := &PartSpec{
//		Name:    "Not",
//		Inputs:  IO("in"),
//		Outputs: IO("out"),
//		Mount: func(s *Socket) []Component {
//			in, out := s.Pin("in"), s.Pin("out")
//			return []Component{
//				func(c *Circuit) { c.Set(out, !c.Get(in)) },
//			}
//		}}
//
type MountFn func(s *Socket) []Component

// A PartSpec wraps a part specification (its blueprint).
//
// Custom parts are implemented by creating a PartSpec and using its NewPart
// method as a NewPartFn:
//
//	var reg8 = regSpec(8)
//
//	func Reg8(c string) Part { return reg8.NewPart(c) }
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Use IO() to expand a description like "in[8], rst"
	// to []string{"in[0]", ..., "in[7]", "rst"}.
	Inputs []string
	// Output pin names. Same syntax as Inputs.
	Outputs []string

	// Mount function (see MountFn).
	Mount MountFn
}

// A Connection binds a part's pin PP to the circuit wire CP.
//
type Connection struct {
	PP, CP string
}

// A NewPartFn is a function that takes a connection configuration and
// returns a new Part.
//
type NewPartFn func(connections string) Part

// A Part wraps a part specification together with its connections within a
// circuit.
//
type Part struct {
	*PartSpec
	Conns []Connection
}

// NewPart wraps p with the given connections into a Part. The connection
// string is a comma separated list of pin=wire bindings where both sides may
// be single pins ("rst"), indexed bus pins ("in[2]") or bus ranges
// ("in[0..4]"). A bare bus name expands to the full bus; when the right hand
// side is a bare name bound to a multi-pin left hand side, it is indexed
// automatically:
//
//	Enc8b10("in=byte, rst=rst, out=code[0..9]")
//
// NewPart panics if the connection string is malformed or names unknown
// pins. Configuration of a part is considered a construction time activity
// and misuse is a programming error, not a runtime condition.
//
func (p *PartSpec) NewPart(connections string) Part {
	conns, err := p.parseConnections(connections)
	if err != nil {
		panic(err)
	}
	return Part{p, conns}
}

func (p *PartSpec) parseConnections(connections string) ([]Connection, error) {
	var res *multierror.Error
	var conns []Connection

	seen := make(map[string]bool)
	for _, tok := range strings.Split(connections, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		eq := strings.IndexRune(tok, '=')
		if eq < 0 {
			res = multierror.Append(res, errors.Errorf("%s: missing '=' in connection %q", p.Name, tok))
			continue
		}
		l, r := strings.TrimSpace(tok[:eq]), strings.TrimSpace(tok[eq+1:])
		ls, err := p.expandPin(l)
		if err != nil {
			res = multierror.Append(res, errors.Wrap(err, p.Name))
			continue
		}
		rs, err := expandWire(r, len(ls))
		if err != nil {
			res = multierror.Append(res, errors.Wrapf(err, "%s: connection %q", p.Name, tok))
			continue
		}
		if len(ls) != len(rs) {
			res = multierror.Append(res, errors.Errorf("%s: pin count mismatch in connection %q", p.Name, tok))
			continue
		}
		for i := range ls {
			if seen[ls[i]] {
				res = multierror.Append(res, errors.Errorf("%s: pin %s connected twice", p.Name, ls[i]))
				continue
			}
			seen[ls[i]] = true
			conns = append(conns, Connection{PP: ls[i], CP: rs[i]})
		}
	}
	return conns, res.ErrorOrNil()
}

// expandPin expands the left hand side of a connection against the part's
// declared pins.
//
func (p *PartSpec) expandPin(name string) ([]string, error) {
	if strings.IndexRune(name, '[') >= 0 {
		pins, err := expandRange(name)
		if err != nil {
			return nil, err
		}
		for _, n := range pins {
			if !p.hasPin(n) {
				return nil, errors.Errorf("invalid pin name %s", n)
			}
		}
		return pins, nil
	}
	if p.hasPin(name) {
		return []string{name}, nil
	}
	// bare bus name
	var pins []string
	for i := 0; ; i++ {
		n := busPinName(name, i)
		if !p.hasPin(n) {
			break
		}
		pins = append(pins, n)
	}
	if len(pins) == 0 {
		return nil, errors.Errorf("invalid pin name %s", name)
	}
	return pins, nil
}

// expandWire expands the right hand side of a connection to n wire names.
//
func expandWire(name string, n int) ([]string, error) {
	if strings.IndexRune(name, '[') >= 0 {
		return expandRange(name)
	}
	if name == "" {
		return nil, errors.New("empty wire name")
	}
	if n == 1 {
		return []string{name}, nil
	}
	ws := make([]string, n)
	for i := range ws {
		ws[i] = busPinName(name, i)
	}
	return ws, nil
}

// expandRange expands a bus range like "in[0..4]" to individual pin names.
// Indexed names like "in[2]" expand to themselves.
//
func expandRange(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	bus := name[:i]
	if bus == "" {
		return nil, errors.New("empty bus name")
	}
	n := name[i+1:]
	j := strings.Index(n, "..")
	if j < 0 {
		if len(n) == 0 || n[len(n)-1] != ']' {
			return nil, errors.Errorf("no terminating ] in %q", name)
		}
		if _, err := strconv.Atoi(n[:len(n)-1]); err != nil {
			return nil, errors.Errorf("bad bus index in %q", name)
		}
		return []string{name}, nil
	}
	start, err := strconv.Atoi(n[:j])
	if err != nil {
		return nil, errors.Errorf("bad bus range start in %q", name)
	}
	n = n[j+2:]
	j = strings.IndexRune(n, ']')
	if j < 0 {
		return nil, errors.Errorf("no terminating ] in %q", name)
	}
	end, err := strconv.Atoi(n[:j])
	if err != nil || end < start {
		return nil, errors.Errorf("bad bus range end in %q", name)
	}
	r := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		r = append(r, busPinName(bus, i))
	}
	return r, nil
}

func (p *PartSpec) hasPin(name string) bool {
	for _, n := range p.Inputs {
		if n == name {
			return true
		}
	}
	for _, n := range p.Outputs {
		if n == name {
			return true
		}
	}
	return false
}

func (p *PartSpec) isInput(name string) bool {
	for _, n := range p.Inputs {
		if n == name {
			return true
		}
	}
	return false
}

// IO expands a pin description string to individual pin names:
//
//	IO("in[3], rst") // []string{"in[0]", "in[1]", "in[2]", "rst"}
//
// IO panics on a malformed description; pin lists are built at package
// initialization time and a bad one is a programming error.
//
func IO(spec string) []string {
	var out []string
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		i := strings.IndexRune(tok, '[')
		if i < 0 {
			out = append(out, tok)
			continue
		}
		name := tok[:i]
		n := tok[i+1:]
		if name == "" || len(n) == 0 || n[len(n)-1] != ']' {
			panic(errors.Errorf("invalid pin description %q", tok))
		}
		size, err := strconv.Atoi(n[:len(n)-1])
		if err != nil || size <= 0 {
			panic(errors.Errorf("invalid bus size in %q", tok))
		}
		for b := 0; b < size; b++ {
			out = append(out, busPinName(name, b))
		}
	}
	return out
}

func busPinName(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}
