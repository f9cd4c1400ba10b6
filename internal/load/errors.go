//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package load

import (
	"fmt"
)

// FormatError - a sheet that lacks a required column or a row that lacks a required field
type FormatError struct {
	Source string
	Line   int // 1-based line in the sheet; 0 if the problem is not tied to a line
	Msg    string
}

func (e *FormatError) Error() string {
	where := e.Source
	if where == "" {
		where = "input"
	}
	if e.Line > 0 {
		return fmt.Sprintf("format error in %s (line %d): %s", where, e.Line, e.Msg)
	}
	return fmt.Sprintf("format error in %s: %s", where, e.Msg)
}

// UnsupportedFileTypeError - only .csv and .tsv are understood
type UnsupportedFileTypeError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("files of type '%s' not supported: %s", e.Ext, e.Path)
}
