package elem

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"strings"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// Kind is the classification of a comps XML element
type Kind uint8

const (
	NONE Kind = iota
	UNKNOWN
	DOC
	GROUP
	CATEGORY
	ENV
	ID
	NAME
	DESC
	DEFAULT
	USERVISIBLE
	DISPLAY_ORDER
	LANG_ONLY
	PACKAGE_LIST
	PACKAGE_REQ
	GROUP_LIST
	OPT_LIST
	GROUP_ID
	LANG_PACKS
	MATCH
	BLACKLIST
	WHITEOUT
	IGNORE_DEP
	PACKAGE
)

// PackageKind is the classification of a packagereq's type attribute
type PackageKind uint8

const (
	PKG_UNKNOWN PackageKind = iota
	PKG_DEFAULT
	PKG_OPTIONAL
	PKG_MANDATORY
	PKG_CONDITIONAL
)

// ////////////////////////////////////////////////////////////////////////////////// //

// tagKinds maps lowercase ASCII tag names to their Kind
var tagKinds = map[string]Kind{
	"comps":        DOC,
	"group":        GROUP,
	"category":     CATEGORY,
	"environment":  ENV,
	"id":           ID,
	"name":         NAME,
	"description":  DESC,
	"default":      DEFAULT,
	"uservisible":  USERVISIBLE,
	"display_order": DISPLAY_ORDER,
	"langonly":     LANG_ONLY,
	"packagelist":  PACKAGE_LIST,
	"packagereq":   PACKAGE_REQ,
	"grouplist":    GROUP_LIST,
	"optionlist":   OPT_LIST,
	"groupid":      GROUP_ID,
	"langpacks":    LANG_PACKS,
	"match":        MATCH,
	"blacklist":    BLACKLIST,
	"whiteout":     WHITEOUT,
	"ignoredep":    IGNORE_DEP,
	"package":      PACKAGE,
}

// kindNames maps Kind back to its canonical tag name, used for
// diagnostics subjects when the original tag text isn't at hand
var kindNames = map[Kind]string{
	DOC: "comps", GROUP: "group", CATEGORY: "category", ENV: "environment",
	ID: "id", NAME: "name", DESC: "description", DEFAULT: "default",
	USERVISIBLE: "uservisible", DISPLAY_ORDER: "display_order",
	LANG_ONLY: "langonly", PACKAGE_LIST: "packagelist",
	PACKAGE_REQ: "packagereq", GROUP_LIST: "grouplist", OPT_LIST: "optionlist",
	GROUP_ID: "groupid", LANG_PACKS: "langpacks", MATCH: "match",
	BLACKLIST: "blacklist", WHITEOUT: "whiteout", IGNORE_DEP: "ignoredep",
	PACKAGE: "package",
}

// ////////////////////////////////////////////////////////////////////////////////// //

// Classify maps an element tag name to its Kind. Unrecognized tags
// classify as UNKNOWN.
func Classify(tag string) Kind {
	if k, ok := tagKinds[tag]; ok {
		return k
	}

	return UNKNOWN
}

// ClassifyPackage maps a packagereq "type" attribute value to a
// PackageKind. An absent or unrecognized value classifies as PKG_UNKNOWN.
func ClassifyPackage(attr string) PackageKind {
	switch strings.ToLower(attr) {
	case "default":
		return PKG_DEFAULT
	case "optional":
		return PKG_OPTIONAL
	case "mandatory":
		return PKG_MANDATORY
	case "conditional":
		return PKG_CONDITIONAL
	default:
		return PKG_UNKNOWN
	}
}

// Name returns the canonical tag name for a Kind, or "" if the kind has
// no single canonical tag (NONE/UNKNOWN).
func (k Kind) Name() string {
	return kindNames[k]
}
