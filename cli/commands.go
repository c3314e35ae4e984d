package cli

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"strings"

	"github.com/essentialkaos/ek/v13/fmtc"
	"github.com/essentialkaos/ek/v13/fsutil"
	"github.com/essentialkaos/ek/v13/options"

	"github.com/essentialkaos/comps"
	"github.com/essentialkaos/comps/log"
	"github.com/essentialkaos/comps/model"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// process validates every file argument, prints its diagnostics, and
// returns the process exit code: 0 if every document parsed clean or with
// only warnings (and passed DTD validation, when requested), 1 if any
// document is missing, produced an error-level diagnostic, failed to parse
// at all, or failed DTD validation
func process(args options.Arguments) int {
	exitCode := 0
	quiet := options.GetB(OPT_QUIET)
	dtdFile := options.GetS(OPT_DTD)

	for _, arg := range args {
		file := arg.String()

		if !fsutil.IsExist(file) {
			fmtc.Printf("{r}%s: no such file{!}\n", file)
			exitCode = 1
			continue
		}

		if !checkFile(file, dtdFile, quiet) {
			exitCode = 1
		}
	}

	return exitCode
}

// checkFile validates a single document and reports its outcome. Returns
// false if the document has any error-level diagnostic, couldn't be
// parsed, or failed DTD validation.
func checkFile(file, dtdFile string, quiet bool) bool {
	var doc, err = readDocument(file)

	if err != nil {
		fmtc.Printf("{r}%s: %v{!}\n", file, err)
		return false
	}

	status, records := doc.status, doc.records

	if !quiet {
		printReport(file, status, records)

		if doc.document != nil {
			printSummary(doc.document)
		}
	}

	ok := status != comps.FATAL && !hasErrors(records)

	if ok && dtdFile != "" {
		if err := comps.ValidateAgainstDTD(file, dtdFile); err != nil {
			if !quiet {
				fmtc.Printf("{r}%s: %v{!}\n", file, err)
			}

			ok = false
		}
	}

	return ok
}

// ////////////////////////////////////////////////////////////////////////////////// //

// checkResult bundles a parsed document's outcome for reporting
type checkResult struct {
	status   comps.Status
	records  []log.Record
	document *model.Document
}

func readDocument(file string) (*checkResult, error) {
	if strings.HasSuffix(file, ".gz") {
		doc, l, status, err := comps.ReadGz(file)

		if err != nil {
			return nil, err
		}

		return &checkResult{status, l.Records(), doc}, nil
	}

	doc, l, status, err := comps.Read(file)

	if err != nil {
		return nil, err
	}

	return &checkResult{status, l.Records(), doc}, nil
}

// ////////////////////////////////////////////////////////////////////////////////// //

func hasErrors(records []log.Record) bool {
	for _, r := range records {
		if r.Severity == log.ERROR {
			return true
		}
	}

	return false
}

// printReport prints every diagnostic collected while parsing file
func printReport(file string, status comps.Status, records []log.Record) {
	switch status {
	case comps.OK:
		fmtc.Printf("{g}%s: OK{!}\n", file)
		return
	case comps.FATAL:
		fmtc.Printf("{r}%s: fatal parse error{!}\n", file)
	default:
		fmtc.Printf("{y}%s: %d diagnostic(s){!}\n", file, len(records))
	}

	for _, r := range records {
		color := "{y}"

		if r.Severity == log.ERROR {
			color = "{r}"
		}

		fmtc.Printf(
			"  "+color+"%s:%d:%d: %s{!} {s}(%s){!}\n",
			subjectOrDash(r.Subject), r.Line, r.Column, r.Code, r.Severity,
		)
	}
}

func subjectOrDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

// printSummary lists the document's groups, categories, and environments in
// natural id order, so output is stable across runs regardless of the order
// they appeared in the source file
func printSummary(doc *model.Document) {
	doc.SortByID()

	fmtc.Printf(
		"  {s}groups: %d, categories: %d, environments: %d, langpacks: %d{!}\n",
		len(doc.Groups), len(doc.Categories), len(doc.Environments), len(doc.Langpacks),
	)

	for _, g := range doc.Groups {
		fmtc.Printf("    {s}group{!} %s\n", g.ID)
	}

	for _, c := range doc.Categories {
		fmtc.Printf("    {s}category{!} %s\n", c.ID)
	}

	for _, e := range doc.Environments {
		fmtc.Printf("    {s}environment{!} %s\n", e.ID)
	}
}
