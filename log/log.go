package log

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2026 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"fmt"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// Severity is the severity of a diagnostic record
type Severity uint8

const (
	WARNING Severity = 0
	ERROR   Severity = 1
)

// Code is a stable diagnostic code (spec error taxonomy)
type Code uint8

const (
	MALLOC             Code = iota // allocation failure (fatal)
	READ_FD                        // read failure from input source
	PARSER                         // XML tokenization error (fatal)
	TEXT_BETWEEN                   // non-whitespace text outside any text-expecting element
	NO_CONTENT                     // element required text but had none
	ELEM_REQUIRED                  // required child/property missing at end-of-parent
	ELEM_ALREADY_SET               // duplicate element/property, last value wins
	ELEM_UNKNOWN                   // unrecognized element tag
	NO_PARENT                      // element under a disallowed parent, skipped
	LIST_EMPTY                     // list-container closed with no valid children
	PACKAGE_UNKNOWN                // packagereq type attribute unrecognized
	DEFAULT_PARAM                  // <default> literal neither "true" nor "false"
	USERVISIBLE_PARAM              // <uservisible> literal neither "true" nor "false"
	GROUPLIST_NOT_SET              // groupid's grouplist has no open category/environment to append into
	OPTIONLIST_NOT_SET             // groupid's optionlist has no open environment to append into
)

// ////////////////////////////////////////////////////////////////////////////////// //

// codeNames maps codes to their stable string name, used in Record.String
var codeNames = map[Code]string{
	MALLOC:              "Malloc",
	READ_FD:             "ReadFd",
	PARSER:              "Parser",
	TEXT_BETWEEN:        "TextBetween",
	NO_CONTENT:          "NoContent",
	ELEM_REQUIRED:       "ElemRequired",
	ELEM_ALREADY_SET:    "ElemAlreadySet",
	ELEM_UNKNOWN:        "ElemUnknown",
	NO_PARENT:           "NoParent",
	LIST_EMPTY:          "ListEmpty",
	PACKAGE_UNKNOWN:     "PackageUnknown",
	DEFAULT_PARAM:       "DefaultParam",
	USERVISIBLE_PARAM:   "UserVisibleParam",
	GROUPLIST_NOT_SET:   "GroupListNotSet",
	OPTIONLIST_NOT_SET:  "OptionListNotSet",
}

// ////////////////////////////////////////////////////////////////////////////////// //

// Record is a single diagnostics log entry
type Record struct {
	Severity Severity
	Subject  string
	Code     Code
	Line     int
	Column   int
}

// Log is an append-only ordered sequence of diagnostic records
type Log struct {
	records   []Record
	toStdout  bool
}

// ////////////////////////////////////////////////////////////////////////////////// //

// New creates an empty diagnostics log
func New(logToStdout bool) *Log {
	return &Log{toStdout: logToStdout}
}

// ////////////////////////////////////////////////////////////////////////////////// //

// Emit appends a record with the given severity
func (l *Log) Emit(sev Severity, subject string, code Code, line, col int) {
	if l == nil {
		return
	}

	r := Record{sev, subject, code, line, col}
	l.records = append(l.records, r)

	if l.toStdout {
		fmt.Println(r.String())
	}
}

// Warning appends a warning-severity record
func (l *Log) Warning(subject string, code Code, line, col int) {
	l.Emit(WARNING, subject, code, line, col)
}

// Error appends an error-severity record
func (l *Log) Error(subject string, code Code, line, col int) {
	l.Emit(ERROR, subject, code, line, col)
}

// ////////////////////////////////////////////////////////////////////////////////// //

// Records returns all collected records in emission order
func (l *Log) Records() []Record {
	if l == nil {
		return nil
	}

	return l.records
}

// IsEmpty returns true if no records were collected
func (l *Log) IsEmpty() bool {
	return l == nil || len(l.records) == 0
}

// HasErrors returns true if at least one error-severity record was collected
func (l *Log) HasErrors() bool {
	for _, r := range l.Records() {
		if r.Severity == ERROR {
			return true
		}
	}

	return false
}

// Reset clears all collected records
func (l *Log) Reset() {
	if l == nil {
		return
	}

	l.records = nil
}

// ////////////////////////////////////////////////////////////////////////////////// //

// String returns the stable name of a diagnostic code
func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}

	return "Unknown"
}

// String returns "warning" or "error"
func (s Severity) String() string {
	if s == ERROR {
		return "error"
	}

	return "warning"
}

// String returns a human-readable representation of the record
func (r Record) String() string {
	subj := r.Subject

	if subj == "" {
		subj = "-"
	}

	return fmt.Sprintf("%s:%d:%d: %s [%s]", subj, r.Line, r.Column, r.Code, r.Severity)
}
