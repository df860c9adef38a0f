// SPDX-License-Identifier: MIT

package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/redist/benchmark"
	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/distance"
)

// ErrShape indicates result columns of different lengths.
var ErrShape = errors.New("dataio: result columns differ in length")

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteScores writes one row per plan: the plan index, then one column per
// result in order. Skipped plans (NaN) are written as empty cells.
func WriteScores(w io.Writer, results []benchmark.Result) error {
	cw := csv.NewWriter(w)
	header := []string{"plan"}
	n := -1
	for _, r := range results {
		header = append(header, r.Kind.String())
		if n >= 0 && len(r.Values) != n {
			return ErrShape
		}
		n = len(r.Values)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		row := []string{strconv.Itoa(i)}
		for _, r := range results {
			row = append(row, formatFloat(r.Values[i]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteDistances writes one row per plan with one column per tower
// (tower_0, tower_1, ...). Skipped plans get empty cells.
func WriteDistances(w io.Writer, res distance.Result, towers int) error {
	cw := csv.NewWriter(w)
	header := []string{"plan"}
	for t := 0; t < towers; t++ {
		header = append(header, fmt.Sprintf("tower_%d", t))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, row := range res.Distances {
		rec := make([]string, towers+1)
		rec[0] = strconv.Itoa(i)
		for t, d := range row {
			rec[t+1] = formatFloat(d)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WritePlanRows writes plans in row form, readable by ReadPlanRows.
func WritePlanRows(w io.Writer, plans []canon.Partition) error {
	cw := csv.NewWriter(w)
	for _, p := range plans {
		row := make([]string, p.Len())
		for i := range row {
			row[i] = strconv.Itoa(p.Label(i))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
