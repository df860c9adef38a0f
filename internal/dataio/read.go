// SPDX-License-Identifier: MIT

package dataio

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/redist/canon"
	"github.com/katalvlaran/redist/core"
	"github.com/katalvlaran/redist/precinct"
)

var (
	// ErrNoIDColumn indicates a nodes table without an "id" column.
	ErrNoIDColumn = errors.New("dataio: nodes table has no id column")

	// ErrEdgeHeader indicates an edges table whose header is not from,to.
	ErrEdgeHeader = errors.New("dataio: edges header must be from,to")

	// ErrRowLength indicates a plan row whose length differs from the node count.
	ErrRowLength = errors.New("dataio: plan row length does not match node count")

	// ErrEmptyInput indicates a table without a header row.
	ErrEmptyInput = errors.New("dataio: empty input")

	// ErrNotNumeric indicates a required attribute cell that is not a number.
	ErrNotNumeric = errors.New("dataio: attribute cell is not a number")
)

// IDColumn is the node identifier column of a nodes table.
const IDColumn = "id"

func readAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	return rows, nil
}

// CellError names a nodes-table cell that should hold a number but does not.
type CellError struct {
	Row    int // 1-based data row (the header is row 0)
	Column string
	Value  string
}

func (e *CellError) Error() string {
	return fmt.Sprintf("dataio: row %d column %q: %q is not a number", e.Row, e.Column, e.Value)
}

// Unwrap lets errors.Is(err, ErrNotNumeric) succeed.
func (e *CellError) Unwrap() error { return ErrNotNumeric }

// ReadNodes parses a nodes table into vertices. Columns with any non-numeric
// cell (names, county codes) are skipped, unless the column is listed in
// required: those must be numeric in every non-empty cell. Empty cells leave
// the attribute unset.
// Errors: ErrNoIDColumn, ErrEmptyInput, *CellError for a bad required cell.
// Complexity: O(R·C).
func ReadNodes(r io.Reader, required ...string) ([]core.Vertex, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	header, body := rows[0], rows[1:]
	idCol := -1
	for c, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), IDColumn) {
			idCol = c
			break
		}
	}
	if idCol < 0 {
		return nil, ErrNoIDColumn
	}
	must := make(map[string]bool, len(required))
	for _, name := range required {
		must[name] = true
	}

	numeric := make([]bool, len(header))
	for c := range header {
		numeric[c] = c != idCol
	}
	for i, row := range body {
		for c, cell := range row {
			if !numeric[c] || cell == "" {
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				name := strings.TrimSpace(header[c])
				if must[name] {
					return nil, &CellError{Row: i + 1, Column: name, Value: cell}
				}
				numeric[c] = false
			}
		}
	}

	nodes := make([]core.Vertex, len(body))
	for i, row := range body {
		v := core.Vertex{ID: strings.TrimSpace(row[idCol]), Metadata: make(map[string]float64)}
		for c, cell := range row {
			if !numeric[c] || cell == "" {
				continue
			}
			x, _ := strconv.ParseFloat(cell, 64)
			v.Metadata[strings.TrimSpace(header[c])] = x
		}
		nodes[i] = v
	}

	return nodes, nil
}

// ReadEdges parses an edges table with header from,to.
func ReadEdges(r io.Reader) ([]core.Edge, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	h := rows[0]
	if len(h) != 2 || !strings.EqualFold(h[0], "from") || !strings.EqualFold(h[1], "to") {
		return nil, fmt.Errorf("%w: got %v", ErrEdgeHeader, h)
	}
	edges := make([]core.Edge, 0, len(rows)-1)
	for _, row := range rows[1:] {
		edges = append(edges, core.Edge{From: strings.TrimSpace(row[0]), To: strings.TrimSpace(row[1])})
	}

	return edges, nil
}

// ReadGraph loads a nodes table and an optional edges table (nil reader)
// into a core.Graph. required is passed to ReadNodes.
// Errors: as ReadNodes and ReadEdges, plus core.ErrEmptyVertexID,
// core.ErrDuplicateVertex, core.ErrVertexNotFound and core.ErrLoopNotAllowed.
func ReadGraph(nodes, edges io.Reader, required ...string) (*core.Graph, error) {
	vs, err := ReadNodes(nodes, required...)
	if err != nil {
		return nil, err
	}
	g := core.NewGraph()
	for i, v := range vs {
		if err := g.AddVertex(v.ID, v.Metadata); err != nil {
			return nil, fmt.Errorf("dataio: row %d: %w", i+1, err)
		}
	}
	if edges == nil {
		return g, nil
	}
	es, err := ReadEdges(edges)
	if err != nil {
		return nil, err
	}
	for i, e := range es {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("dataio: edge row %d: %w", i+1, err)
		}
	}

	return g, nil
}

// ReadPlanRows parses row-form plans: every row holds n labels in graph order.
// Errors: ErrRowLength (wrapped with the 1-based row number).
func ReadPlanRows(r io.Reader, n int) ([]canon.Partition, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	var out []canon.Partition
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: %w", err)
		}
		if len(row) != n {
			return nil, fmt.Errorf("row %d: %d labels for %d nodes: %w", line, len(row), n, ErrRowLength)
		}
		out = append(out, canon.Canonicalize(row))
	}

	return out, nil
}

// ReadPlanTable parses table-form plans: a header of node IDs, then one plan
// per row. Every node of order must appear in the header exactly once.
// Errors: *canon.MappingError for a missing or unknown header node.
func ReadPlanTable(r io.Reader, order []string) ([]canon.Partition, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	header := rows[0]
	seen := make(map[string]struct{}, len(header))
	for _, id := range header {
		id = strings.TrimSpace(id)
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("dataio: header node %q: %w", id, precinct.ErrDuplicateNode)
		}
		seen[id] = struct{}{}
	}
	out := make([]canon.Partition, 0, len(rows)-1)
	for line, row := range rows[1:] {
		assignment := make(map[string]string, len(header))
		for c, id := range header {
			assignment[strings.TrimSpace(id)] = row[c]
		}
		p, err := canon.FromAssignment(order, assignment)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line+1, err)
		}
		out = append(out, p)
	}

	return out, nil
}

// ReadAssignments parses a JSON array of node→label objects. Numeric and
// string labels are both accepted; 1 and "1" are the same label.
func ReadAssignments(r io.Reader, order []string) ([]canon.Partition, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}
	assignments := make([]map[string]string, len(raw))
	for i, m := range raw {
		a := make(map[string]string, len(m))
		for node, label := range m {
			switch v := label.(type) {
			case string:
				a[node] = v
			case json.Number:
				a[node] = v.String()
			default:
				return nil, fmt.Errorf("dataio: plan %d node %q: label %v is not a string or number", i, node, label)
			}
		}
		assignments[i] = a
	}

	return canon.FromAssignments(order, assignments)
}
