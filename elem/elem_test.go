package elem

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

type ElemSuite struct{}

// ////////////////////////////////////////////////////////////////////////////////// //

var _ = Suite(&ElemSuite{})

// ////////////////////////////////////////////////////////////////////////////////// //

func (s *ElemSuite) TestClassify(c *C) {
	c.Assert(Classify("comps"), Equals, DOC)
	c.Assert(Classify("group"), Equals, GROUP)
	c.Assert(Classify("category"), Equals, CATEGORY)
	c.Assert(Classify("environment"), Equals, ENV)
	c.Assert(Classify("groupid"), Equals, GROUP_ID)
	c.Assert(Classify("packagereq"), Equals, PACKAGE_REQ)
	c.Assert(Classify("whatever"), Equals, UNKNOWN)
}

func (s *ElemSuite) TestClassifyPackage(c *C) {
	c.Assert(ClassifyPackage("mandatory"), Equals, PKG_MANDATORY)
	c.Assert(ClassifyPackage("Default"), Equals, PKG_DEFAULT)
	c.Assert(ClassifyPackage(""), Equals, PKG_UNKNOWN)
	c.Assert(ClassifyPackage("bogus"), Equals, PKG_UNKNOWN)
}

func (s *ElemSuite) TestName(c *C) {
	c.Assert(GROUP.Name(), Equals, "group")
	c.Assert(NONE.Name(), Equals, "")
	c.Assert(UNKNOWN.Name(), Equals, "")
}
