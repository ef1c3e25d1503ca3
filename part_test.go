package linesim

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestIO(t *testing.T) {
	td := []struct {
		spec string
		want []string
	}{
		{"", nil},
		{"rst", []string{"rst"}},
		{"in[3], rst", []string{"in[0]", "in[1]", "in[2]", "rst"}},
		{"a, b", []string{"a", "b"}},
		{"out[2]", []string{"out[0]", "out[1]"}},
	}
	for _, d := range td {
		got := IO(d.spec)
		assert.Equal(t, len(d.want), len(got))
		for i := range d.want {
			assert.Equal(t, d.want[i], got[i])
		}
	}
}

func TestIOPanics(t *testing.T) {
	for _, spec := range []string{"in[", "in[0]", "in[x]", "[3]"} {
		func() {
			defer func() {
				assert.True(t, recover() != nil)
			}()
			IO(spec)
			t.Errorf("IO(%q) did not panic", spec)
		}()
	}
}

var testSpec = &PartSpec{
	Name:    "T",
	Inputs:  IO("in[3], rst"),
	Outputs: IO("out[2]"),
	Mount:   func(s *Socket) []Component { return nil },
}

func TestNewPartExpansion(t *testing.T) {
	td := []struct {
		conns string
		want  []Connection
	}{
		{"rst=r", []Connection{{"rst", "r"}}},
		{"in=sym", []Connection{{"in[0]", "sym[0]"}, {"in[1]", "sym[1]"}, {"in[2]", "sym[2]"}}},
		{"in[0..1]=w[4..5]", []Connection{{"in[0]", "w[4]"}, {"in[1]", "w[5]"}}},
		{"in[2]=hi, rst=false", []Connection{{"in[2]", "hi"}, {"rst", "false"}}},
		{"out=o[0..1]", []Connection{{"out[0]", "o[0]"}, {"out[1]", "o[1]"}}},
	}
	for _, d := range td {
		p := testSpec.NewPart(d.conns)
		assert.Equal(t, len(d.want), len(p.Conns))
		for i := range d.want {
			assert.Equal(t, d.want[i].PP, p.Conns[i].PP)
			assert.Equal(t, d.want[i].CP, p.Conns[i].CP)
		}
	}
}

func TestNewPartPanics(t *testing.T) {
	for _, conns := range []string{
		"bogus=x",          // unknown pin
		"in[0..4]=w[0..4]", // in[3] does not exist
		"in=w[0..1]",       // pin count mismatch
		"rst",              // missing '='
		"rst=r, rst=q",     // pin connected twice
	} {
		func() {
			defer func() {
				assert.True(t, recover() != nil)
			}()
			testSpec.NewPart(conns)
			t.Errorf("NewPart(%q) did not panic", conns)
		}()
	}
}

func TestExpandRange(t *testing.T) {
	got, err := expandRange("bus[2..5]")
	assert.NoError(t, err)
	want := []string{"bus[2]", "bus[3]", "bus[4]", "bus[5]"}
	assert.Equal(t, len(want), len(got))
	for i := range want {
		assert.Equal(t, want[i], got[i])
	}

	got, err = expandRange("single")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "single", got[0])

	for _, bad := range []string{"[0..1]", "b[0..", "b[1..0]", "b[x..2]"} {
		if _, err := expandRange(bad); err == nil {
			t.Errorf("expandRange(%q): expected error", bad)
		}
	}
}
