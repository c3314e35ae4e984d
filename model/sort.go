package model

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"sort"

	"github.com/essentialkaos/ek/v13/sortutil"
)

// ////////////////////////////////////////////////////////////////////////////////// //

type groupSlice []*Group

func (s groupSlice) Len() int           { return len(s) }
func (s groupSlice) Less(i, j int) bool { return sortutil.NaturalLess(s[i].ID, s[j].ID) }
func (s groupSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

type categorySlice []*Category

func (s categorySlice) Len() int           { return len(s) }
func (s categorySlice) Less(i, j int) bool { return sortutil.NaturalLess(s[i].ID, s[j].ID) }
func (s categorySlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

type envSlice []*Environment

func (s envSlice) Len() int           { return len(s) }
func (s envSlice) Less(i, j int) bool { return sortutil.NaturalLess(s[i].ID, s[j].ID) }
func (s envSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

type langpackSlice []*Langpack

func (s langpackSlice) Len() int           { return len(s) }
func (s langpackSlice) Less(i, j int) bool { return sortutil.NaturalLess(s[i].Name, s[j].Name) }
func (s langpackSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// ////////////////////////////////////////////////////////////////////////////////// //

// SortByID sorts the document's groups, categories, and environments by
// their id property in natural order, and langpacks by name. Used for
// deterministic report ordering (see cli/commands.go's printSummary), not
// during parsing.
func (d *Document) SortByID() {
	sort.Sort(groupSlice(d.Groups))
	sort.Sort(categorySlice(d.Categories))
	sort.Sort(envSlice(d.Environments))
	sort.Sort(langpackSlice(d.Langpacks))
}
