package model

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

type ModelSuite struct{}

// ////////////////////////////////////////////////////////////////////////////////// //

var _ = Suite(&ModelSuite{})

// ////////////////////////////////////////////////////////////////////////////////// //

func (s *ModelSuite) TestNewDocument(c *C) {
	d := NewDocument("UTF-8")

	c.Assert(d, NotNil)
	c.Assert(d.Encoding, Equals, "UTF-8")
	c.Assert(d.Groups, HasLen, 0)
}

func (s *ModelSuite) TestTranslations(c *C) {
	g := &Group{}
	g.NameByLang = map[string]string{"fr": "Bureau"}
	g.DescByLang = map[string]string{"fr": "Un bureau"}

	c.Assert(g.NameIn("fr"), Equals, "Bureau")
	c.Assert(g.DescIn("fr"), Equals, "Un bureau")
	c.Assert(g.NameIn("de"), Equals, "")

	cat := &Category{NameByLang: map[string]string{"es": "Base"}}
	c.Assert(cat.NameIn("es"), Equals, "Base")

	env := &Environment{DescByLang: map[string]string{"it": "Ambiente"}}
	c.Assert(env.DescIn("it"), Equals, "Ambiente")
}

func (s *ModelSuite) TestSortByID(c *C) {
	d := NewDocument("UTF-8")

	d.Groups = []*Group{
		{CommonProps: CommonProps{ID: "group-10"}},
		{CommonProps: CommonProps{ID: "group-2"}},
	}

	d.SortByID()

	c.Assert(d.Groups[0].ID, Equals, "group-2")
	c.Assert(d.Groups[1].ID, Equals, "group-10")
}
