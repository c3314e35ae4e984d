// Package comps implements a streaming, diagnostics-producing parser for
// the comps XML dialect used to describe RPM-family package groups,
// categories, environments, and related metadata.
package comps

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"bufio"
	"compress/gzip"
	_ "embed"
	"io"
	"os"

	"github.com/essentialkaos/comps/dtd"
	"github.com/essentialkaos/comps/log"
	"github.com/essentialkaos/comps/model"
	"github.com/essentialkaos/comps/parse"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// GoMod holds the module's own go.mod contents, embedded for the CLI's
// verbose-version dependency listing
//
//go:embed go.mod
var GoMod []byte

// ////////////////////////////////////////////////////////////////////////////////// //

// Status mirrors the parser's tri-state outcome (clean / diagnostics / fatal)
type Status = parse.Status

const (
	OK                         = parse.OK
	COMPLETED_WITH_DIAGNOSTICS = parse.COMPLETED_WITH_DIAGNOSTICS
	FATAL                      = parse.FATAL
)

// ////////////////////////////////////////////////////////////////////////////////// //

// Context drives a single, non-reentrant parse and accumulates its result
// document plus diagnostics log. Create one per parse (or Reinit an
// existing one); a Context is not safe for concurrent use, but distinct
// Contexts never share state and may run on separate goroutines.
type Context = parse.Context

// NewContext creates a parse context for the given encoding tag. When
// logToStdout is true, every diagnostic is also printed as it's emitted.
func NewContext(encoding string, logToStdout bool) *Context {
	return parse.NewContext(encoding, logToStdout)
}

// ////////////////////////////////////////////////////////////////////////////////// //

// Read reads and parses a comps.xml file
func Read(file string) (*model.Document, *log.Log, Status, error) {
	return readFile(file, false)
}

// ReadGz reads, uncompresses, and parses a comps.xml.gz file
func ReadGz(file string) (*model.Document, *log.Log, Status, error) {
	return readFile(file, true)
}

// ParseStream parses r into ctx, driving it token by token. Returns the
// final tri-state status; the resulting document and log are available
// via ctx.Document() and ctx.Log().
func ParseStream(ctx *Context, r io.Reader) Status {
	return parse.ParseStream(ctx, r)
}

// ParseBuffer parses data held entirely in memory into ctx
func ParseBuffer(ctx *Context, data []byte) Status {
	return parse.ParseBuffer(ctx, data)
}

// ValidateAgainstDTD validates the document at xmlPath against the given
// DTD file, shelling out to the xmllint utility
func ValidateAgainstDTD(xmlPath, dtdPath string) error {
	return dtd.Validate(xmlPath, dtdPath)
}

// ////////////////////////////////////////////////////////////////////////////////// //

func readFile(file string, compressed bool) (*model.Document, *log.Log, Status, error) {
	fd, err := os.OpenFile(file, os.O_RDONLY, 0)

	if err != nil {
		return nil, nil, FATAL, err
	}

	defer fd.Close()

	var rr io.Reader

	r := bufio.NewReader(fd)

	if compressed {
		rr, err = gzip.NewReader(r)

		if err != nil {
			return nil, nil, FATAL, err
		}
	} else {
		rr = r
	}

	ctx := NewContext("UTF-8", false)
	status := ParseStream(ctx, rr)

	return ctx.Document(), ctx.Log(), status, nil
}
