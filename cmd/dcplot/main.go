// Copyright 2026 The linesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Command dcplot encodes a byte stream with the 8b/10b encoder and plots
// the running digital sum (cumulative ones minus zeros) of the emitted
// bits. A DC balanced code keeps the sum within a narrow band around zero.
//
//	dcplot -text "hello, world" -o rds.png
//	dcplot somefile.bin
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hwbits/linesim/coder"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	out := flag.String("o", "rds.png", "output image file")
	text := flag.String("text", "", "encode this string instead of a file")
	flag.Parse()

	var data []byte
	switch {
	case *text != "":
		data = []byte(*text)
	case flag.NArg() == 1:
		var err error
		data, err = os.ReadFile(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal("usage: dcplot [-o file.png] [-text string | file]")
	}
	if len(data) == 0 {
		log.Fatal("nothing to encode")
	}

	enc := coder.NewEnc8b10()
	enc.Step(0, true)
	enc.Step(0, true)

	// one cycle of latency: the word for the last byte appears on the
	// flush step, and the first step only yields the reset filler.
	words := make([]uint16, 0, len(data))
	for _, b := range data {
		words = append(words, enc.Step(b, false))
	}
	words = append(words[1:], enc.Step(0, false))

	rds := 0
	pts := make(plotter.XYs, 0, len(words)*10)
	for i, w := range words {
		for b := 0; b < 10; b++ {
			if w>>uint(b)&1 != 0 {
				rds++
			} else {
				rds--
			}
			pts = append(pts, plotter.XY{X: float64(i*10 + b), Y: float64(rds)})
		}
	}

	p := plot.New()
	p.Title.Text = "Running digital sum"
	p.X.Label.Text = "bit"
	p.Y.Label.Text = "ones - zeros"
	line, err := plotter.NewLine(pts)
	if err != nil {
		log.Fatal(err)
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(10*vg.Inch, 4*vg.Inch, *out); err != nil {
		log.Fatal(err)
	}
	log.Printf("encoded %d bytes, final sum %d, wrote %s", len(data), rds, *out)
}
