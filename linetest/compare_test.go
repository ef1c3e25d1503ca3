package linetest_test

import (
	"testing"

	"github.com/hwbits/linesim"
	"github.com/hwbits/linesim/linetest"
)

// latch2 is a minimal clocked part: its output follows the input with the
// usual one-edge latency and reset clears it.
var latch2 = &linesim.PartSpec{
	Name:    "Latch2",
	Inputs:  linesim.IO("in[2], rst"),
	Outputs: linesim.IO("out[2]"),
	Mount: func(s *linesim.Socket) []linesim.Component {
		in, rst := s.Bus("in", 2), s.Pin("rst")
		out := s.Bus("out", 2)
		var cur uint64
		return []linesim.Component{
			func(c *linesim.Circuit) {
				if c.AtTock() {
					if c.Get(rst) {
						cur = 0
					} else {
						cur = c.GetBus(in)
					}
				}
				c.SetBus(out, cur)
			}}
	},
}

func TestCompareEncoder(t *testing.T) {
	linetest.CompareEncoder(t, latch2.NewPart, 2, 2,
		func(in uint64, rst bool) uint64 {
			if rst {
				return 0
			}
			return in
		})
}
