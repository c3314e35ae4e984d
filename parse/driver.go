package parse

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"

	"github.com/essentialkaos/comps/log"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// Status is the tri-state result of a parse, mirroring the original
// driver's 0/1/-1 return convention.
type Status int8

const (
	// OK means the document parsed clean, with no diagnostics at all.
	OK Status = 0

	// COMPLETED_WITH_DIAGNOSTICS means parsing ran to completion but the
	// log holds one or more warning/error records.
	COMPLETED_WITH_DIAGNOSTICS Status = 1

	// FATAL means parsing aborted before reaching the end of the
	// document, due to malformed XML.
	FATAL Status = -1
)

// ////////////////////////////////////////////////////////////////////////////////// //

// ParseStream feeds r through ctx using encoding/xml.Decoder.Token as the
// tokenizer, dispatching each token to the context's OnStart/OnText/OnEnd
// handlers. ctx should be freshly created or Reinit'd before calling.
func ParseStream(ctx *Context, r io.Reader) Status {
	tr := newTracker(r)
	dec := xml.NewDecoder(tr)

	for {
		tok, err := dec.Token()

		if err == io.EOF {
			break
		}

		if err != nil {
			line, col := tr.position()
			var syntaxErr *xml.SyntaxError

			if errors.As(err, &syntaxErr) {
				ctx.log.Error(err.Error(), log.PARSER, line, col)
				ctx.fatal = true
				return FATAL
			}

			// a non-syntax error (the underlying io.Reader failing)
			// is recorded but does not set the fatal flag, per the
			// read-vs-parse propagation split
			ctx.log.Error(err.Error(), log.READ_FD, line, col)
			return finalStatus(ctx)
		}

		line, col := tr.position()

		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make(map[string]string, len(t.Attr))

			for _, a := range t.Attr {
				if a.Name.Space == xmlLangNS {
					attrs["xml:"+a.Name.Local] = a.Value
				} else {
					attrs[a.Name.Local] = a.Value
				}
			}

			ctx.OnStart(t.Name.Local, attrs, line, col)

		case xml.CharData:
			ctx.OnText(string(t), line, col)

		case xml.EndElement:
			ctx.OnEnd(t.Name.Local, line, col)
		}

		if ctx.fatal {
			return FATAL
		}
	}

	return finalStatus(ctx)
}

// ParseBuffer parses data held entirely in memory
func ParseBuffer(ctx *Context, data []byte) Status {
	return ParseStream(ctx, bytes.NewReader(data))
}

// ////////////////////////////////////////////////////////////////////////////////// //

func finalStatus(ctx *Context) Status {
	if ctx.fatal {
		return FATAL
	}

	if ctx.log.IsEmpty() {
		return OK
	}

	return COMPLETED_WITH_DIAGNOSTICS
}
