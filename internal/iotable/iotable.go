// Package iotable reads and writes the CSV tables of ctypes: atom full
// tables produced by the substructure matcher, ground-truth atom counts,
// and the resulting matrices.
package iotable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aprl-ssp/ctypes/pkg/table"
	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
)

// Column names of an atom full table.
const (
	ColCompound = "compound"
	ColAtom     = "atom"
	ColType     = "type"
	ColGroup    = "group"
	ColMatch    = "match"
)

// MatchColumns are the columns an atom full table must have. Other
// columns are ignored.
var MatchColumns = []string{ColCompound, ColAtom, ColType, ColGroup, ColMatch}

// ReadMatchTable reads an atom full table. With withProgress a progress
// bar follows the bytes read from the file.
func ReadMatchTable(path string, withProgress bool) ([]table.MatchRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if withProgress {
		var size int64
		if info, err := f.Stat(); err == nil {
			size = info.Size()
		}
		bar := pb.Full.Start64(size)
		bar.Set("prefix", "Reading matches: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
		r = bar.NewProxyReader(f)
	}

	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	hdr, err := cr.Read()
	if err != nil {
		return nil, ReadError(path, err)
	}
	idx, err := columns(path, hdr, MatchColumns...)
	if err != nil {
		return nil, err
	}

	var res []table.MatchRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ReadError(path, err)
		}
		res = append(res, table.NewMatchRecord(
			row[idx[ColCompound]],
			row[idx[ColAtom]],
			row[idx[ColType]],
			row[idx[ColGroup]],
			row[idx[ColMatch]],
		))
	}

	slog.Info("Read match table",
		"path", path, "records", humanize.Comma(int64(len(res))))
	return res, nil
}

// ReadAtomCounts reads a ground-truth table: a compound column followed
// by one column of atom counts per element. Counts must be numeric.
func ReadAtomCounts(path string) (*table.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, ReadError(path, err)
	}
	if len(rows) == 0 {
		return nil, ReadError(path, io.ErrUnexpectedEOF)
	}

	hdr := rows[0]
	idx, err := columns(path, hdr, ColCompound)
	if err != nil {
		return nil, err
	}
	ci := idx[ColCompound]

	var elements []string
	var elementIdx []int
	for i, v := range hdr {
		if i == ci {
			continue
		}
		elements = append(elements, cleanHeader(v))
		elementIdx = append(elementIdx, i)
	}

	compounds := make([]string, 0, len(rows)-1)
	seen := make(map[string]int, len(rows)-1)
	for i, row := range rows[1:] {
		c := row[ci]
		if prev, ok := seen[c]; ok {
			return nil, ValueError(path, i+2, ColCompound, c,
				fmt.Errorf("compound repeats line %d", prev))
		}
		seen[c] = i + 2
		compounds = append(compounds, c)
	}

	res := table.NewMatrix(ColCompound, compounds, elements)
	for i, row := range rows[1:] {
		for j, k := range elementIdx {
			cell := strings.TrimSpace(row[k])
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, ValueError(path, i+2, elements[j], cell, err)
			}
			res.Set(i, j, v)
		}
	}

	slog.Info("Read atom counts",
		"path", path,
		"compounds", humanize.Comma(int64(len(compounds))),
		"elements", len(elements),
	)
	return res, nil
}

// WriteMatrix writes a matrix as CSV. The first column holds the row
// labels under the matrix index name.
func WriteMatrix(path string, m *table.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}

	w := csv.NewWriter(f)
	err = w.WriteAll(m.Records())
	if err != nil {
		f.Close()
		return WriteError(path, err)
	}
	if err = f.Close(); err != nil {
		return WriteError(path, err)
	}

	rows, cols := m.Dims()
	slog.Info("Wrote matrix", "path", path, "rows", rows, "columns", cols)
	return nil
}

// columns finds required columns in a header. The first match of a name
// wins.
func columns(path string, hdr []string, names ...string) (map[string]int, error) {
	pos := make(map[string]int, len(hdr))
	for i, v := range hdr {
		v = cleanHeader(v)
		if _, ok := pos[v]; !ok {
			pos[v] = i
		}
	}

	res := make(map[string]int, len(names))
	for _, v := range names {
		i, ok := pos[v]
		if !ok {
			return nil, ColumnError(path, v)
		}
		res[v] = i
	}
	return res, nil
}

// cleanHeader drops surrounding spaces and a UTF-8 byte order mark.
func cleanHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.TrimSpace(s)
}
