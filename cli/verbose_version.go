package cli

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"os"
	"runtime"
	"strings"

	"github.com/essentialkaos/ek/v13/fmtc"
	"github.com/essentialkaos/ek/v13/fmtutil"
	"github.com/essentialkaos/ek/v13/fsutil"
	"github.com/essentialkaos/ek/v13/hash"
	"github.com/essentialkaos/ek/v13/strutil"
	"github.com/essentialkaos/ek/v13/system"

	"github.com/essentialkaos/depsy"

	"github.com/essentialkaos/comps/dtd"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// showVerboseAbout prints verbose info about app
func showVerboseAbout(gitRev string, gomod []byte) {
	showApplicationInfo(gitRev)
	showOSInfo()
	showEnvironmentInfo()
	showDepsInfo(gomod)
	fmtutil.Separator(false)
}

// showApplicationInfo shows verbose information about application
func showApplicationInfo(gitRev string) {
	fmtutil.Separator(false, "APPLICATION INFO")

	fmtc.Printf("  {*}%-12s{!} %s\n", "Name:", APP)
	fmtc.Printf("  {*}%-12s{!} %s\n", "Version:", VER)

	fmtc.Printf(
		"  {*}%-12s{!} %s {s}(%s/%s){!}\n", "Go:",
		strings.TrimLeft(runtime.Version(), "go"),
		runtime.GOOS, runtime.GOARCH,
	)

	if gitRev != "" {
		fmtc.Printf("  {*}%-12s{!} %s\n", "Git SHA:", gitRev)
	}

	bin, _ := os.Executable()
	binSHA := hash.FileHash(bin)

	if binSHA != "" {
		fmtc.Printf("  {*}%-12s{!} %s\n", "Bin SHA:", strutil.Head(binSHA, 7))
	}
}

// showOSInfo shows verbose information about system
func showOSInfo() {
	fmtInfo := func(s string) string {
		if s == "" {
			return fmtc.Sprintf("{s}unknown{!}")
		}

		return s
	}

	osInfo, err := system.GetOSInfo()

	if err == nil {
		fmtutil.Separator(false, "OS INFO")
		fmtc.Printf("  {*}%-16s{!} %s\n", "Name:", fmtInfo(osInfo.Name))
		fmtc.Printf("  {*}%-16s{!} %s\n", "Pretty Name:", fmtInfo(osInfo.PrettyName))
		fmtc.Printf("  {*}%-16s{!} %s\n", "ID:", fmtInfo(osInfo.ID))
		fmtc.Printf("  {*}%-16s{!} %s\n", "Version ID:", fmtInfo(osInfo.VersionID))
	}

	systemInfo, err := system.GetSystemInfo()

	if err != nil {
		return
	}

	fmtc.Printf("  {*}%-16s{!} %s\n", "Arch:", fmtInfo(systemInfo.Arch))
	fmtc.Printf("  {*}%-16s{!} %s\n", "Kernel:", fmtInfo(systemInfo.Kernel))

	containerEngine := "No"

	switch {
	case fsutil.IsExist("/.dockerenv"):
		containerEngine = "Yes (Docker)"
	case fsutil.IsExist("/run/.containerenv"):
		containerEngine = "Yes (Podman)"
	}

	fmtc.NewLine()
	fmtc.Printf("  {*}%-16s{!} %s\n", "Container:", containerEngine)
}

// showEnvironmentInfo shows info about environment
func showEnvironmentInfo() {
	fmtutil.Separator(false, "ENVIRONMENT")

	if dtd.IsXmllintInstalled() {
		fmtc.Printf("  {*}%-16s{!} installed\n", "xmllint:")
	} else {
		fmtc.Printf("  {*}%-16s{!} {s}not installed{!}\n", "xmllint:")
	}
}

// showDepsInfo shows information about all dependencies
func showDepsInfo(gomod []byte) {
	deps := depsy.Extract(gomod, false)

	if len(deps) == 0 {
		return
	}

	fmtutil.Separator(false, "DEPENDENCIES")

	for _, dep := range deps {
		if dep.Extra == "" {
			fmtc.Printf(" {s}%8s{!}  %s\n", dep.Version, dep.Path)
		} else {
			fmtc.Printf(" {s}%8s{!}  %s {s-}(%s){!}\n", dep.Version, dep.Path, dep.Extra)
		}
	}
}
