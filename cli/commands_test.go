package cli

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"os"
	"testing"

	. "github.com/essentialkaos/check"
)

// ////////////////////////////////////////////////////////////////////////////////// //

func Test(t *testing.T) { TestingT(t) }

type CommandsSuite struct {
	TmpDir string
}

// ////////////////////////////////////////////////////////////////////////////////// //

var _ = Suite(&CommandsSuite{})

// ////////////////////////////////////////////////////////////////////////////////// //

func (s *CommandsSuite) SetUpSuite(c *C) {
	s.TmpDir = c.MkDir()
}

func (s *CommandsSuite) TestCheckFileOK(c *C) {
	file := s.TmpDir + "/ok.xml"
	doc := `<comps><group><id>a</id><name>A</name><description>d</description>` +
		`<packagelist><packagereq type="default">p</packagereq></packagelist></group></comps>`

	c.Assert(os.WriteFile(file, []byte(doc), 0600), IsNil)
	c.Assert(checkFile(file, "", true), Equals, true)
}

func (s *CommandsSuite) TestCheckFileErrors(c *C) {
	file := s.TmpDir + "/bad.xml"
	c.Assert(os.WriteFile(file, []byte(`<comps><group/></comps>`), 0600), IsNil)
	c.Assert(checkFile(file, "", true), Equals, false)
}

func (s *CommandsSuite) TestCheckFileMissing(c *C) {
	c.Assert(checkFile(s.TmpDir+"/nope.xml", "", true), Equals, false)
}

// Non-quiet mode walks the printSummary path (doc.SortByID over multiple
// groups), not just printReport
func (s *CommandsSuite) TestCheckFileVerboseSummary(c *C) {
	file := s.TmpDir + "/multi.xml"
	doc := `<comps>` +
		`<group><id>z</id><name>Z</name><description>d</description>` +
		`<packagelist><packagereq type="default">p</packagereq></packagelist></group>` +
		`<group><id>a</id><name>A</name><description>d</description>` +
		`<packagelist><packagereq type="default">p</packagereq></packagelist></group>` +
		`</comps>`

	c.Assert(os.WriteFile(file, []byte(doc), 0600), IsNil)
	c.Assert(checkFile(file, "", false), Equals, true)
}

func (s *CommandsSuite) TestReadDocumentPopulatesDocument(c *C) {
	file := s.TmpDir + "/single.xml"
	doc := `<comps><group><id>a</id><name>A</name><description>d</description>` +
		`<packagelist><packagereq type="default">p</packagereq></packagelist></group></comps>`

	c.Assert(os.WriteFile(file, []byte(doc), 0600), IsNil)

	res, err := readDocument(file)

	c.Assert(err, IsNil)
	c.Assert(res.document, NotNil)
	c.Assert(res.document.Groups, HasLen, 1)
}
