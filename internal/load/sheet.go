//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package load

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"github.com/e-gun/ReflexDisparity/internal/vv"
	"os"
	"path/filepath"
	"strings"
)

// Delimiter - ',' for .csv and '\t' for .tsv; anything else is an UnsupportedFileTypeError
func Delimiter(path string) (rune, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return ',', nil
	case ".tsv":
		return '\t', nil
	default:
		return 0, &UnsupportedFileTypeError{Path: path, Ext: ext}
	}
}

// ReadTable - every row of a .csv or .tsv file; rows may be ragged
func ReadTable(path string) ([][]string, error) {
	comma, err := Delimiter(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	if comma == '\t' {
		reader.LazyQuotes = true
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &FormatError{Source: filepath.Base(path), Msg: err.Error()}
	}
	return rows, nil
}

// WriteTableQuoted - write rows with every cell quoted; encoding/csv only quotes when it has to
func WriteTableQuoted(path string, rows [][]string) error {
	comma, err := Delimiter(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, vv.WRITEPERMS)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}

	w := bufio.NewWriter(f)
	sep := string(comma)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
		}
		if _, err = w.WriteString(strings.Join(cells, sep) + "\n"); err != nil {
			break
		}
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
