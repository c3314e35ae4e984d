package parse

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"strconv"
	"strings"

	"github.com/essentialkaos/comps/elem"
	"github.com/essentialkaos/comps/log"
	"github.com/essentialkaos/comps/model"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// xmlLangNS is the namespace Go's encoding/xml resolves the xml: prefix to
const xmlLangNS = "http://www.w3.org/XML/1998/namespace"

// ////////////////////////////////////////////////////////////////////////////////// //

// OnStart handles a start-element event
func (ctx *Context) OnStart(tag string, attrs map[string]string, line, col int) {
	ctx.line, ctx.col = line, col

	if ctx.textBufferLen > 0 || len(ctx.textBuffer) > 0 {
		ctx.log.Error(ctx.textBuffer[0], log.TEXT_BETWEEN, line, col)
		ctx.textBuffer = nil
		ctx.textBufferLen = 0
	}

	k := elem.Classify(tag)

	ctx.elemStack = append(ctx.elemStack, openElement{Tag: tag, Kind: k, Attrs: attrs})
	ctx.textWanted = false
	ctx.tmpBuffer = ""
	ctx.curPackageRef = nil
	ctx.pendingGroupId = nil

	ctx.preprocess(k, attrs, line, col)
}

// OnText handles a character-data event
func (ctx *Context) OnText(chunk string, line, col int) {
	ctx.line, ctx.col = line, col

	if isWhitespaceOnly(chunk) {
		return
	}

	ctx.textBuffer = append(ctx.textBuffer, chunk)
	ctx.textBufferLen += len(chunk)
}

// OnEnd handles an end-element event
func (ctx *Context) OnEnd(tag string, line, col int) {
	ctx.line, ctx.col = line, col

	if ctx.textWanted {
		joined := strings.Join(ctx.textBuffer, "")
		ctx.tmpBuffer = joined

		if ctx.textBufferLen == 0 {
			ctx.log.Error(tag, log.NO_CONTENT, line, col)
		}
	} else if len(ctx.textBuffer) > 0 {
		ctx.log.Error(ctx.textBuffer[0], log.TEXT_BETWEEN, line, col)
	}

	ctx.textBuffer = nil
	ctx.textBufferLen = 0

	top := ctx.top()

	if top != nil && elem.Classify(tag) == top.Kind {
		ctx.postprocess(top.Kind, tag, line, col)
		ctx.elemStack = ctx.elemStack[:len(ctx.elemStack)-1]
	}

	ctx.textWanted = false
	ctx.tmpBuffer = ""
}

// ////////////////////////////////////////////////////////////////////////////////// //

// preprocess validates the parent context of a newly opened element and
// creates/installs the model objects it introduces
func (ctx *Context) preprocess(k elem.Kind, attrs map[string]string, line, col int) {
	subject := k.Name()

	if subject == "" {
		if top := ctx.top(); top != nil {
			subject = top.Tag
		}
	}

	if k != elem.DOC && ctx.parentKind() == elem.NONE {
		ctx.log.Error(subject, log.NO_PARENT, line, col)
		return
	}

	if (k == elem.GROUP_ID || k == elem.PACKAGE_REQ) && ctx.grandparentKind() == elem.NONE {
		ctx.log.Error(subject, log.NO_PARENT, line, col)
		return
	}

	switch k {
	case elem.DOC:
		ctx.document = model.NewDocument(ctx.encoding)

	case elem.GROUP:
		if ctx.parentKind() != elem.DOC {
			ctx.log.Error(subject, log.NO_PARENT, line, col)
			return
		}

		g := &model.Group{}
		ctx.document.Groups = append(ctx.document.Groups, g)
		ctx.curGroup, ctx.curCategory, ctx.curEnv = g, nil, nil

	case elem.CATEGORY:
		if ctx.parentKind() != elem.DOC {
			ctx.log.Error(subject, log.NO_PARENT, line, col)
			return
		}

		c := &model.Category{}
		ctx.document.Categories = append(ctx.document.Categories, c)
		ctx.curCategory, ctx.curGroup, ctx.curEnv = c, nil, nil

	case elem.ENV:
		if ctx.parentKind() != elem.DOC {
			ctx.log.Error(subject, log.NO_PARENT, line, col)
			return
		}

		e := &model.Environment{}
		ctx.document.Environments = append(ctx.document.Environments, e)
		ctx.curEnv, ctx.curGroup, ctx.curCategory = e, nil, nil

	case elem.GROUP_LIST:
		switch ctx.parentKind() {
		case elem.CATEGORY:
			if ctx.curCategory != nil {
				ctx.curCategory.GroupListSeen = true
			}
		case elem.ENV:
			if ctx.curEnv != nil {
				ctx.curEnv.GroupListSeen = true
			}
		default:
			ctx.log.Error(subject, log.NO_PARENT, line, col)
		}

	case elem.OPT_LIST:
		if ctx.parentKind() != elem.ENV {
			ctx.log.Error(subject, log.NO_PARENT, line, col)
			return
		}

		if ctx.curEnv != nil {
			ctx.curEnv.OptionListSeen = true
		}

	case elem.PACKAGE_LIST:
		if ctx.parentKind() != elem.GROUP {
			ctx.log.Error(subject, log.NO_PARENT, line, col)
			return
		}

		if ctx.curGroup != nil {
			ctx.curGroup.PackageListSeen = true
		}

	case elem.ID, elem.NAME, elem.DESC:
		ctx.textWanted = true

		switch ctx.parentKind() {
		case elem.GROUP, elem.CATEGORY, elem.ENV:
		default:
			ctx.log.Error(subject, log.NO_PARENT, line, col)
		}

	case elem.DEFAULT, elem.USERVISIBLE, elem.LANG_ONLY:
		ctx.textWanted = true

		if ctx.parentKind() != elem.GROUP {
			ctx.log.Error(subject, log.NO_PARENT, line, col)
		}

	case elem.DISPLAY_ORDER:
		ctx.textWanted = true

		switch ctx.parentKind() {
		case elem.GROUP, elem.CATEGORY, elem.ENV:
		default:
			ctx.log.Error(subject, log.NO_PARENT, line, col)
		}

	case elem.PACKAGE_REQ:
		ctx.textWanted = true

		if ctx.parentKind() != elem.PACKAGE_LIST || ctx.grandparentKind() != elem.GROUP {
			ctx.log.Error(subject, log.NO_PARENT, line, col)
			return
		}

		if ctx.curGroup != nil {
			typeAttr := attrs["type"]
			kind := elem.ClassifyPackage(typeAttr)

			ref := &model.PackageRef{Kind: kind, Requires: attrs["requires"]}

			if arch := attrs["arch"]; arch != "" {
				ref.Arch = strings.Split(arch, ",")
			}

			if attrs["basearchonly"] == "true" {
				ref.BaseArchOnly = true
			}

			ctx.curGroup.Packages = append(ctx.curGroup.Packages, ref)
			ctx.curPackageRef = ref

			if kind == elem.PKG_UNKNOWN && typeAttr != "" {
				ctx.log.Warning(typeAttr, log.PACKAGE_UNKNOWN, line, col)
			}
		}

	case elem.GROUP_ID:
		ctx.textWanted = true

		parent := ctx.parentKind()
		grand := ctx.grandparentKind()
		valid := false

		switch parent {
		case elem.GROUP_LIST:
			valid = grand == elem.CATEGORY || grand == elem.ENV
		case elem.OPT_LIST:
			valid = grand == elem.ENV
		}

		if !valid {
			ctx.log.Error(subject, log.NO_PARENT, line, col)
			return
		}

		ctx.pendingGroupId = &model.GroupId{Default: attrs["default"] == "true"}

	case elem.MATCH:
		if ctx.parentKind() != elem.LANG_PACKS {
			ctx.log.Error(subject, log.NO_PARENT, line, col)
			return
		}

		if ctx.document != nil {
			ctx.document.Langpacks = append(ctx.document.Langpacks,
				&model.Langpack{Name: attrs["name"], Install: attrs["install"]})
		}

	case elem.PACKAGE:
		if ctx.parentKind() != elem.BLACKLIST {
			ctx.log.Error(subject, log.NO_PARENT, line, col)
			return
		}

		if ctx.document != nil {
			ctx.document.Blacklist = append(ctx.document.Blacklist,
				&model.BlacklistEntry{Name: attrs["name"], Arch: attrs["arch"]})
		}

	case elem.IGNORE_DEP:
		if ctx.parentKind() != elem.WHITEOUT {
			ctx.log.Error(subject, log.NO_PARENT, line, col)
			return
		}

		if ctx.document != nil {
			ctx.document.Whiteout = append(ctx.document.Whiteout,
				&model.WhiteoutEntry{Requires: attrs["requires"], Package: attrs["package"]})
		}

	case elem.UNKNOWN:
		ctx.log.Warning(subject, log.ELEM_UNKNOWN, line, col)

	case elem.BLACKLIST, elem.WHITEOUT, elem.LANG_PACKS, elem.NONE:
		// containers with no properties of their own; nothing to create
	}
}

// ////////////////////////////////////////////////////////////////////////////////// //

// postprocess commits the accumulated text/attributes of a closing element
// into the document model
func (ctx *Context) postprocess(k elem.Kind, tag string, line, col int) {
	parent := ctx.parentKind()
	grandparent := ctx.grandparentKind()
	tmp := ctx.tmpBuffer

	switch k {
	case elem.GROUP:
		ctx.postprocessGroup(line, col)

	case elem.CATEGORY:
		ctx.postprocessCategory(line, col)

	case elem.ENV:
		ctx.postprocessEnv(line, col)

	case elem.ID:
		cp := ctx.commonPropsFor(parent)

		if cp == nil {
			return
		}

		if cp.IDSet {
			ctx.log.Warning(tag, log.ELEM_ALREADY_SET, line, col)
		}

		cp.ID = tmp
		cp.IDSet = true

	case elem.NAME:
		lang := ctx.top().Attrs[xmlLangAttrKey]
		ctx.commitTranslated(parent, true, lang, tmp, tag, line, col)

	case elem.DESC:
		lang := ctx.top().Attrs[xmlLangAttrKey]
		ctx.commitTranslated(parent, false, lang, tmp, tag, line, col)

	case elem.DEFAULT:
		if ctx.curGroup == nil || parent != elem.GROUP {
			return
		}

		if ctx.curGroup.DefaultSet {
			ctx.log.Warning(tag, log.ELEM_ALREADY_SET, line, col)
		} else {
			ctx.curGroup.DefaultSet = true
		}

		switch tmp {
		case "true":
			ctx.curGroup.Default = true
		case "false":
			ctx.curGroup.Default = false
		default:
			ctx.log.Warning(tmp, log.DEFAULT_PARAM, line, col)
		}

	case elem.USERVISIBLE:
		if ctx.curGroup == nil || parent != elem.GROUP {
			return
		}

		if ctx.curGroup.UserVisibleSet {
			ctx.log.Warning(tag, log.ELEM_ALREADY_SET, line, col)
		} else {
			ctx.curGroup.UserVisibleSet = true
		}

		switch tmp {
		case "true":
			ctx.curGroup.UserVisible = true
		case "false":
			ctx.curGroup.UserVisible = false
		default:
			ctx.log.Warning(tmp, log.USERVISIBLE_PARAM, line, col)
		}

	case elem.LANG_ONLY:
		if ctx.curGroup == nil || parent != elem.GROUP {
			return
		}

		if ctx.curGroup.LangOnlySet {
			ctx.log.Warning(tag, log.ELEM_ALREADY_SET, line, col)
		}

		ctx.curGroup.LangOnly = tmp
		ctx.curGroup.LangOnlySet = true

	case elem.DISPLAY_ORDER:
		cp := ctx.commonPropsFor(parent)

		if cp == nil {
			return
		}

		if cp.DisplayOrderSet {
			ctx.log.Warning(tag, log.ELEM_ALREADY_SET, line, col)
		} else {
			cp.DisplayOrderSet = true
		}

		if n, err := strconv.Atoi(strings.TrimSpace(tmp)); err == nil {
			cp.DisplayOrder = n
		}

	case elem.PACKAGE_REQ:
		if ctx.curPackageRef != nil {
			ctx.curPackageRef.Name = tmp
		}

	case elem.GROUP_ID:
		ctx.postprocessGroupId(parent, grandparent, tmp, line, col)

	case elem.PACKAGE_LIST:
		if parent == elem.GROUP && ctx.curGroup != nil && len(ctx.curGroup.Packages) == 0 {
			ctx.log.Error("packagelist", log.LIST_EMPTY, line, col)
		}

	case elem.GROUP_LIST:
		switch parent {
		case elem.CATEGORY:
			if ctx.curCategory != nil && len(ctx.curCategory.GroupIDs) == 0 {
				ctx.log.Error("grouplist", log.LIST_EMPTY, line, col)
			}
		case elem.ENV:
			if ctx.curEnv != nil && len(ctx.curEnv.GroupList) == 0 {
				ctx.log.Error("grouplist", log.LIST_EMPTY, line, col)
			}
		}

	case elem.OPT_LIST:
		if parent == elem.ENV && ctx.curEnv != nil && len(ctx.curEnv.OptionList) == 0 {
			ctx.log.Error("optionlist", log.LIST_EMPTY, line, col)
		}

	case elem.MATCH, elem.PACKAGE, elem.IGNORE_DEP,
		elem.BLACKLIST, elem.WHITEOUT, elem.LANG_PACKS,
		elem.DOC, elem.NONE, elem.UNKNOWN:
		// no commit
	}
}

// ////////////////////////////////////////////////////////////////////////////////// //

// xmlLangAttrKey is the key OnStart stores the xml:lang attribute under
const xmlLangAttrKey = "xml:lang"

// commonPropsFor returns the shared id/name/desc/display_order property
// block of the current entity matching parent, or nil if parent isn't one
// of Group/Category/Env or that entity isn't currently open
func (ctx *Context) commonPropsFor(parent elem.Kind) *model.CommonProps {
	switch parent {
	case elem.GROUP:
		if ctx.curGroup != nil {
			return &ctx.curGroup.CommonProps
		}
	case elem.CATEGORY:
		if ctx.curCategory != nil {
			return &ctx.curCategory.CommonProps
		}
	case elem.ENV:
		if ctx.curEnv != nil {
			return &ctx.curEnv.CommonProps
		}
	}

	return nil
}

// commitTranslated commits a <name> or <description> value, routing
// lang-qualified values into the *_by_lang map and unqualified values into
// the primary property (warning and overwriting on a second occurrence)
func (ctx *Context) commitTranslated(parent elem.Kind, isName bool, lang, value, tag string, line, col int) {
	var cp *model.CommonProps
	var byLang *map[string]string

	switch parent {
	case elem.GROUP:
		if ctx.curGroup == nil {
			return
		}

		cp = &ctx.curGroup.CommonProps

		if isName {
			byLang = &ctx.curGroup.NameByLang
		} else {
			byLang = &ctx.curGroup.DescByLang
		}

	case elem.CATEGORY:
		if ctx.curCategory == nil {
			return
		}

		cp = &ctx.curCategory.CommonProps

		if isName {
			byLang = &ctx.curCategory.NameByLang
		} else {
			byLang = &ctx.curCategory.DescByLang
		}

	case elem.ENV:
		if ctx.curEnv == nil {
			return
		}

		cp = &ctx.curEnv.CommonProps

		if isName {
			byLang = &ctx.curEnv.NameByLang
		} else {
			byLang = &ctx.curEnv.DescByLang
		}

	default:
		return
	}

	if lang != "" {
		if *byLang == nil {
			*byLang = make(map[string]string)
		}

		(*byLang)[lang] = value

		return
	}

	if isName {
		if cp.NameSet {
			ctx.log.Warning(tag, log.ELEM_ALREADY_SET, line, col)
		}

		cp.Name = value
		cp.NameSet = true
	} else {
		if cp.DescSet {
			ctx.log.Warning(tag, log.ELEM_ALREADY_SET, line, col)
		}

		cp.Desc = value
		cp.DescSet = true
	}
}

// postprocessGroup verifies a closing <group>'s required children
func (ctx *Context) postprocessGroup(line, col int) {
	g := ctx.curGroup

	if g == nil {
		return
	}

	if !g.IDSet {
		ctx.log.Error("id", log.ELEM_REQUIRED, line, col)
	}

	if !g.NameSet {
		ctx.log.Error("name", log.ELEM_REQUIRED, line, col)
	}

	if !g.DescSet {
		ctx.log.Error("description", log.ELEM_REQUIRED, line, col)
	}

	if !g.PackageListSeen {
		ctx.log.Error("packagelist", log.ELEM_REQUIRED, line, col)
	}
}

// postprocessCategory verifies a closing <category>'s required children
func (ctx *Context) postprocessCategory(line, col int) {
	c := ctx.curCategory

	if c == nil {
		return
	}

	if !c.IDSet {
		ctx.log.Error("id", log.ELEM_REQUIRED, line, col)
	}

	if !c.NameSet {
		ctx.log.Error("name", log.ELEM_REQUIRED, line, col)
	}

	if !c.DescSet {
		ctx.log.Error("description", log.ELEM_REQUIRED, line, col)
	}

	if !c.GroupListSeen {
		ctx.log.Error("grouplist", log.ELEM_REQUIRED, line, col)
	}
}

// postprocessEnv verifies a closing <environment>'s required children
func (ctx *Context) postprocessEnv(line, col int) {
	e := ctx.curEnv

	if e == nil {
		return
	}

	if !e.IDSet {
		ctx.log.Error("id", log.ELEM_REQUIRED, line, col)
	}

	if !e.NameSet {
		ctx.log.Error("name", log.ELEM_REQUIRED, line, col)
	}

	if !e.DescSet {
		ctx.log.Error("description", log.ELEM_REQUIRED, line, col)
	}

	if !e.GroupListSeen {
		ctx.log.Error("grouplist", log.ELEM_REQUIRED, line, col)
	}

	if !e.OptionListSeen {
		ctx.log.Error("optionlist", log.ELEM_REQUIRED, line, col)
	}
}

// postprocessGroupId commits a closing <groupid> into the container its
// parent/grandparent combination designates, warning when the expected
// container entity isn't actually open (reachable when the entity that
// should own the list failed its own parent check, e.g. a <category>
// nested somewhere other than directly under <comps>)
func (ctx *Context) postprocessGroupId(parent, grandparent elem.Kind, name string, line, col int) {
	gid := ctx.pendingGroupId

	if gid == nil {
		return
	}

	gid.Name = name
	ctx.pendingGroupId = nil

	switch parent {
	case elem.GROUP_LIST:
		switch grandparent {
		case elem.CATEGORY:
			if ctx.curCategory != nil {
				ctx.curCategory.GroupIDs = append(ctx.curCategory.GroupIDs, gid)
			} else {
				ctx.log.Warning(name, log.GROUPLIST_NOT_SET, line, col)
			}
		case elem.ENV:
			if ctx.curEnv != nil {
				ctx.curEnv.GroupList = append(ctx.curEnv.GroupList, gid)
			} else {
				ctx.log.Warning(name, log.GROUPLIST_NOT_SET, line, col)
			}
		}

	case elem.OPT_LIST:
		if grandparent == elem.ENV {
			if ctx.curEnv != nil {
				ctx.curEnv.OptionList = append(ctx.curEnv.OptionList, gid)
			} else {
				ctx.log.Warning(name, log.OPTIONLIST_NOT_SET, line, col)
			}
		}
	}
}
