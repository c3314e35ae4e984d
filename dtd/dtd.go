package dtd

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// IsXmllintInstalled returns true if the xmllint utility is installed on
// the system
func IsXmllintInstalled() bool {
	_, err := exec.LookPath("xmllint")
	return err == nil
}

// Validate runs the given document against a DTD using the xmllint
// utility. This is a pass-through to an external tool, not a Go-native
// validator: no DTD parser exists in the ecosystem this module draws on,
// and xmllint is the closest analogue to the validation entry point the
// original parser exposes.
func Validate(xmlPath, dtdPath string) error {
	if !IsXmllintInstalled() {
		return fmt.Errorf("Can't validate document: xmllint not installed")
	}

	var stdErrBuf bytes.Buffer

	cmd := exec.Command("xmllint", "--noout", "--dtdvalid", dtdPath, xmlPath)
	cmd.Stderr = &stdErrBuf

	if err := cmd.Run(); err != nil {
		msg := strings.TrimRight(stdErrBuf.String(), "\r\n")
		return fmt.Errorf("Document failed DTD validation: %s", msg)
	}

	return nil
}
