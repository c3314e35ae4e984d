package dtd

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

type DTDSuite struct{}

// ////////////////////////////////////////////////////////////////////////////////// //

var _ = Suite(&DTDSuite{})

// ////////////////////////////////////////////////////////////////////////////////// //

func (s *DTDSuite) TestValidateWithoutXmllint(c *C) {
	if IsXmllintInstalled() {
		c.Skip("xmllint is installed, can't exercise the not-installed path")
	}

	err := Validate("comps.xml", "comps.dtd")

	c.Assert(err, NotNil)
}
