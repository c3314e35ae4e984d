package parse

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"io"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// tracker wraps a reader and counts lines/columns of bytes as they pass
// through it. encoding/xml's Decoder exposes only a byte offset
// (InputOffset), not line/column, so this stands in for the line/column
// counters expat exposes natively and the dispatcher's diagnostics need.
type tracker struct {
	r    io.Reader
	line int
	col  int
}

// ////////////////////////////////////////////////////////////////////////////////// //

func newTracker(r io.Reader) *tracker {
	return &tracker{r: r, line: 1, col: 0}
}

// Read implements io.Reader
func (t *tracker) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)

	for i := 0; i < n; i++ {
		if p[i] == '\n' {
			t.line++
			t.col = 0
		} else {
			t.col++
		}
	}

	return n, err
}

// position returns the line/column of the most recently read byte. Since
// the decoder buffers ahead of the token boundary it currently reports,
// this trails the true token start by up to one read chunk.
func (t *tracker) position() (int, int) {
	return t.line, t.col
}
