package linelib_test

import (
	"math/rand"
	"testing"

	"github.com/hwbits/linesim"
	"github.com/hwbits/linesim/linelib"
	"github.com/retroenv/retrogolib/assert"
)

func TestReg(t *testing.T) {
	const bits = 8

	var in uint64
	var ld, rst bool
	var out uint64

	c, err := linesim.NewCircuit(0,
		linesim.InputN(bits, func() uint64 { return in })("out=in"),
		linesim.Input(func() bool { return ld })("out=ld"),
		linesim.Input(func() bool { return rst })("out=rst"),
		linelib.Reg(bits)("in=in, ld=ld, rst=rst, out=out"),
		linesim.OutputN(bits, func(v uint64) { out = v })("in=out"),
	)
	assert.NoError(t, err)

	rnd := rand.New(rand.NewSource(4))
	var want uint64
	for i := 0; i < 1000; i++ {
		in = uint64(rnd.Intn(256))
		ld = rnd.Intn(2) == 0
		rst = rnd.Intn(16) == 0
		c.TickTock()
		switch {
		case rst:
			want = 0
		case ld:
			want = in
		}
		if out != want {
			t.Fatalf("cycle %d: got %#x, want %#x", i, out, want)
		}
	}
}
