package main

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"github.com/essentialkaos/comps"
	CLI "github.com/essentialkaos/comps/cli"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// gitrev is git short revision
var gitrev string

// ////////////////////////////////////////////////////////////////////////////////// //

func main() {
	CLI.Init(gitrev, comps.GoMod)
}
