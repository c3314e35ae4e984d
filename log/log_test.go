package log

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"testing"

	. "github.com/essentialkaos/check"
)

// ////////////////////////////////////////////////////////////////////////////////// //

func Test(t *testing.T) { TestingT(t) }

type LogSuite struct{}

// ////////////////////////////////////////////////////////////////////////////////// //

var _ = Suite(&LogSuite{})

// ////////////////////////////////////////////////////////////////////////////////// //

func (s *LogSuite) TestEmpty(c *C) {
	l := New(false)

	c.Assert(l.IsEmpty(), Equals, true)
	c.Assert(l.HasErrors(), Equals, false)
	c.Assert(l.Records(), HasLen, 0)
}

func (s *LogSuite) TestWarningAndError(c *C) {
	l := New(false)

	l.Warning("group", ELEM_ALREADY_SET, 3, 5)
	l.Error("id", ELEM_REQUIRED, 10, 1)

	c.Assert(l.IsEmpty(), Equals, false)
	c.Assert(l.HasErrors(), Equals, true)
	c.Assert(l.Records(), HasLen, 2)

	recs := l.Records()

	c.Assert(recs[0].Severity, Equals, WARNING)
	c.Assert(recs[0].Subject, Equals, "group")
	c.Assert(recs[0].Code, Equals, ELEM_ALREADY_SET)
	c.Assert(recs[1].Severity, Equals, ERROR)
}

func (s *LogSuite) TestReset(c *C) {
	l := New(false)
	l.Error("x", PARSER, 1, 1)

	c.Assert(l.IsEmpty(), Equals, false)

	l.Reset()

	c.Assert(l.IsEmpty(), Equals, true)
}

func (s *LogSuite) TestNilSafety(c *C) {
	var l *Log

	c.Assert(l.IsEmpty(), Equals, true)
	c.Assert(l.Records(), IsNil)

	l.Reset()
	l.Emit(ERROR, "x", PARSER, 1, 1)
}

func (s *LogSuite) TestStringers(c *C) {
	c.Assert(ELEM_REQUIRED.String(), Equals, "ElemRequired")
	c.Assert(Code(255).String(), Equals, "Unknown")
	c.Assert(WARNING.String(), Equals, "warning")
	c.Assert(ERROR.String(), Equals, "error")

	r := Record{ERROR, "id", NO_CONTENT, 4, 2}
	c.Assert(r.String(), Equals, "id:4:2: NoContent [error]")

	r2 := Record{WARNING, "", NO_PARENT, 1, 1}
	c.Assert(r2.String(), Equals, "-:1:1: NoParent [warning]")
}
