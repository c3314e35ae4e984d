package parse

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"strings"

	"github.com/essentialkaos/comps/elem"
	"github.com/essentialkaos/comps/log"
	"github.com/essentialkaos/comps/model"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// openElement is one frame of the open-element stack
type openElement struct {
	Tag   string
	Kind  elem.Kind
	Attrs map[string]string
}

// Context holds all state of a single, non-reentrant comps parse. A
// Context is not safe for concurrent use, but independent Contexts may be
// driven from separate goroutines without interference.
type Context struct {
	encoding    string
	logToStdout bool

	document *model.Document
	log      *log.Log
	fatal    bool

	elemStack     []openElement
	textBuffer    []string
	textBufferLen int
	textWanted    bool
	tmpBuffer     string

	// "current entity" trackers, mirroring the function-local statics of
	// the original parser but scoped to this Context so concurrent
	// parsers never share them.
	curGroup    *model.Group
	curCategory *model.Category
	curEnv      *model.Environment

	// transient per-element targets, valid only between the matching
	// OnStart/OnEnd pair
	curPackageRef  *model.PackageRef
	pendingGroupId *model.GroupId

	line, col int
}

// ////////////////////////////////////////////////////////////////////////////////// //

// NewContext creates a parse context for the given encoding tag. When
// logToStdout is true every diagnostic is also printed as it is emitted.
func NewContext(encoding string, logToStdout bool) *Context {
	ctx := &Context{encoding: encoding, logToStdout: logToStdout}
	ctx.Reinit()
	return ctx
}

// ////////////////////////////////////////////////////////////////////////////////// //

// Document returns the document built so far. Only meaningful once a
// parse has completed (or partially run); a caller that stops feeding
// bytes mid-parse still owns whatever was built.
func (ctx *Context) Document() *model.Document {
	return ctx.document
}

// Log returns the diagnostics log accumulated so far
func (ctx *Context) Log() *log.Log {
	return ctx.log
}

// Fatal reports whether a fatal (Parser-class, malformed XML) error has occurred
func (ctx *Context) Fatal() bool {
	return ctx.fatal
}

// Encoding returns the encoding tag the context was created with
func (ctx *Context) Encoding() string {
	return ctx.encoding
}

// ////////////////////////////////////////////////////////////////////////////////// //

// Reinit resets the context to start a new parse: the element stack, text
// accumulator, log, fatal flag, and in-progress document are discarded;
// Document returns nil until the next parse opens a <comps> element. The
// context's encoding and stdout-logging preference are preserved.
func (ctx *Context) Reinit() {
	ctx.fatal = false
	ctx.elemStack = ctx.elemStack[:0]
	ctx.textBuffer = nil
	ctx.textBufferLen = 0
	ctx.textWanted = false
	ctx.tmpBuffer = ""
	ctx.curGroup = nil
	ctx.curCategory = nil
	ctx.curEnv = nil
	ctx.curPackageRef = nil
	ctx.pendingGroupId = nil
	ctx.line, ctx.col = 0, 0
	ctx.log = log.New(ctx.logToStdout)
	ctx.document = nil
}

// ////////////////////////////////////////////////////////////////////////////////// //

// top returns the current top-of-stack frame, or nil if the stack is empty
func (ctx *Context) top() *openElement {
	if len(ctx.elemStack) == 0 {
		return nil
	}

	return &ctx.elemStack[len(ctx.elemStack)-1]
}

// parentKind returns the Kind of the element one below the stack top (the
// "current" element's parent), or elem.NONE if there is none
func (ctx *Context) parentKind() elem.Kind {
	if len(ctx.elemStack) < 2 {
		return elem.NONE
	}

	return ctx.elemStack[len(ctx.elemStack)-2].Kind
}

// grandparentKind returns the Kind two below the stack top, or elem.NONE
func (ctx *Context) grandparentKind() elem.Kind {
	if len(ctx.elemStack) < 3 {
		return elem.NONE
	}

	return ctx.elemStack[len(ctx.elemStack)-3].Kind
}

// isWhitespaceOnly reports whether s consists entirely of ASCII whitespace
func isWhitespaceOnly(s string) bool {
	return strings.TrimFunc(s, isASCIISpace) == ""
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
