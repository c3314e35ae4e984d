package cli

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"fmt"
	"os"

	"github.com/essentialkaos/ek/v13/fmtc"
	"github.com/essentialkaos/ek/v13/fmtutil"
	"github.com/essentialkaos/ek/v13/options"
	"github.com/essentialkaos/ek/v13/terminal"
	"github.com/essentialkaos/ek/v13/usage"
	"github.com/essentialkaos/ek/v13/usage/completion/bash"
	"github.com/essentialkaos/ek/v13/usage/completion/fish"
	"github.com/essentialkaos/ek/v13/usage/completion/zsh"
	"github.com/essentialkaos/ek/v13/usage/man"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// App info
const (
	APP  = "comps-lint"
	VER  = "1.0.0"
	DESC = "Comps XML validation and inspection utility"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// Options
const (
	OPT_DTD      = "d:dtd"
	OPT_QUIET    = "q:quiet"
	OPT_NO_COLOR = "nc:no-color"
	OPT_HELP     = "h:help"
	OPT_VER      = "v:version"
	OPT_VERB_VER = "vv:verbose-version"

	OPT_COMPLETION   = "completion"
	OPT_GENERATE_MAN = "generate-man"
)

// ////////////////////////////////////////////////////////////////////////////////// //

var optMap = options.Map{
	OPT_DTD:      {},
	OPT_QUIET:    {Type: options.BOOL},
	OPT_NO_COLOR: {Type: options.BOOL},
	OPT_HELP:     {Type: options.BOOL, Alias: "u:usage"},
	OPT_VER:      {Type: options.BOOL, Alias: "ver"},
	OPT_VERB_VER: {Type: options.BOOL},

	OPT_COMPLETION:   {},
	OPT_GENERATE_MAN: {Type: options.BOOL},
}

// ////////////////////////////////////////////////////////////////////////////////// //

// Init is the entry point of the CLI app
func Init(gitRev string, gomod []byte) {
	args, errs := options.Parse(optMap)

	if len(errs) != 0 {
		terminal.PrintErrorMessage("Can't parse options:")

		for _, err := range errs {
			terminal.PrintErrorMessage("  %v", err)
		}

		os.Exit(1)
	}

	configureUI()

	switch {
	case options.Has(OPT_COMPLETION):
		os.Exit(genCompletion())
	case options.Has(OPT_GENERATE_MAN):
		os.Exit(genMan())
	case options.GetB(OPT_VER):
		genAbout(gitRev).Render()
		return
	case options.GetB(OPT_VERB_VER):
		showVerboseAbout(gitRev, gomod)
		return
	case options.GetB(OPT_HELP) || len(args) == 0:
		genUsage().Render()
		return
	}

	os.Exit(process(args))
}

// ////////////////////////////////////////////////////////////////////////////////// //

func configureUI() {
	fmtc.DisableColors = options.GetB(OPT_NO_COLOR)
	fmtutil.SizeSeparator = " "
	fmtutil.SeparatorSymbol = "–"
	fmtutil.SeparatorColorTag = "{s}"
	fmtutil.SeparatorTitleColorTag = "{*}"
}

func genCompletion() int {
	info := genUsage()

	switch options.GetS(OPT_COMPLETION) {
	case "bash":
		fmt.Print(bash.Generate(info, APP))
	case "fish":
		fmt.Print(fish.Generate(info, APP))
	case "zsh":
		fmt.Print(zsh.Generate(info, optMap, APP))
	default:
		return 1
	}

	return 0
}

func genMan() int {
	fmt.Println(man.Generate(genUsage(), genAbout("")))
	return 0
}

func genUsage() *usage.Info {
	info := usage.NewInfo("", "file…")

	info.AddSpoiler(
		"Validates one or more comps XML documents and prints every\n" +
			"diagnostic the parser collected while reading them.",
	)

	info.AddOption(OPT_DTD, "Validate documents against a DTD file using xmllint", "file")
	info.AddOption(OPT_QUIET, "Suppress per-document output, only report exit status")
	info.AddOption(OPT_NO_COLOR, "Disable colors in output")
	info.AddOption(OPT_HELP, "Show this help message")
	info.AddOption(OPT_VER, "Show version")
	info.AddOption(OPT_VERB_VER, "Show verbose version info")

	info.AddExample("comps.xml", "Check a single document")
	info.AddExample("comps.xml.gz", "Check a gzip-compressed document")
	info.AddExample("-d comps.dtd comps.xml", "Check a document and validate it against a DTD")

	return info
}

func genAbout(gitRev string) *usage.About {
	about := &usage.About{
		App:     APP,
		Version: VER,
		Desc:    DESC,
		Year:    2026,
		Owner:   "ESSENTIAL KAOS",
		License: "Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>",
	}

	if gitRev != "" {
		about.Build = "git:" + gitRev
	}

	if fmtc.Is256ColorsSupported() {
		about.AppNameColorTag = "{*}{#33}"
		about.VersionColorTag = "{#33}"
	}

	return about
}
