package model

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"github.com/essentialkaos/comps/elem"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// Document is the root of a parsed comps document
type Document struct {
	Encoding     string
	Groups       []*Group
	Categories   []*Category
	Environments []*Environment
	Langpacks    []*Langpack
	Blacklist    []*BlacklistEntry
	Whiteout     []*WhiteoutEntry
}

// CommonProps holds the id/name/desc/display_order properties shared by
// Group, Category, and Environment. Each *Set flag records whether the
// property has already been assigned once, so the dispatcher can emit
// ElemAlreadySet on a second assignment without storing a sentinel value.
type CommonProps struct {
	ID    string
	IDSet bool

	Name    string
	NameSet bool

	Desc    string
	DescSet bool

	DisplayOrder    int
	DisplayOrderSet bool
}

// Group is a named, selectable collection of packages
type Group struct {
	CommonProps

	Default    bool
	DefaultSet bool

	UserVisible    bool
	UserVisibleSet bool

	LangOnly    string
	LangOnlySet bool

	NameByLang map[string]string
	DescByLang map[string]string

	Packages []*PackageRef

	// PackageListSeen records whether a <packagelist> element was opened,
	// independent of whether it ended up with any children.
	PackageListSeen bool
}

// Category is a named collection of group references
type Category struct {
	CommonProps

	NameByLang map[string]string
	DescByLang map[string]string

	GroupIDs []*GroupId

	GroupListSeen bool
}

// Environment is a named collection of mandatory and optional group references
type Environment struct {
	CommonProps

	NameByLang map[string]string
	DescByLang map[string]string

	GroupList  []*GroupId
	OptionList []*GroupId

	GroupListSeen  bool
	OptionListSeen bool
}

// PackageRef is an entry in a group's package list
type PackageRef struct {
	Name         string
	Kind         elem.PackageKind
	Requires     string
	Arch         []string
	BaseArchOnly bool
}

// GroupId is a reference from a Category or Environment into the groups collection
type GroupId struct {
	Name    string
	Default bool
}

// Langpack is a mapping from a language tag to an install template
type Langpack struct {
	Name    string
	Install string
}

// BlacklistEntry is a document-scope package exclusion directive
type BlacklistEntry struct {
	Name string
	Arch string
}

// WhiteoutEntry is a document-scope dependency-override directive
type WhiteoutEntry struct {
	Requires string
	Package  string
}

// ////////////////////////////////////////////////////////////////////////////////// //

// NewDocument creates an empty document with the given encoding tag
func NewDocument(encoding string) *Document {
	return &Document{Encoding: encoding}
}

// NameIn returns the name translated into the given language, or the
// empty string if no translation is recorded for that language
func (g *Group) NameIn(lang string) string { return g.NameByLang[lang] }

// DescIn returns the description translated into the given language
func (g *Group) DescIn(lang string) string { return g.DescByLang[lang] }

// NameIn returns the name translated into the given language
func (c *Category) NameIn(lang string) string { return c.NameByLang[lang] }

// DescIn returns the description translated into the given language
func (c *Category) DescIn(lang string) string { return c.DescByLang[lang] }

// NameIn returns the name translated into the given language
func (e *Environment) NameIn(lang string) string { return e.NameByLang[lang] }

// DescIn returns the description translated into the given language
func (e *Environment) DescIn(lang string) string { return e.DescByLang[lang] }
