// Package report renders bomsort artifacts as tabular rows and CSV text.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/invectorlabs/bomsort/internal/bom"
	"github.com/invectorlabs/bomsort/internal/feeder"
)

// Kind names one of the generated artifacts.
type Kind string

const (
	KindPlacement Kind = "placement"
	KindInventory Kind = "inventory"
	KindFeeders   Kind = "feeders"
)

// Table is a header plus rows of cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// Writer serializes a table.
type Writer interface {
	Write(w io.Writer, t Table) error
}

// CSVWriter writes tables as comma-separated values with a header row.
type CSVWriter struct{}

// Compile-time assertion that CSVWriter implements Writer.
var _ Writer = CSVWriter{}

// Write emits the header and every row.
func (CSVWriter) Write(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

// Render serializes t into memory.
func Render(wr Writer, t Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := wr.Write(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Placement builds the pick-and-place program rows, one per component.
func Placement(records []bom.Record) Table {
	t := Table{Header: []string{"Part", "X", "Y", "A", "Description", "Package"}}
	for _, r := range records {
		value, pkg := bom.SplitTypeKey(r.TypeKey)
		t.Rows = append(t.Rows, []string{
			r.Designator,
			bom.FormatNumber(r.X),
			bom.FormatNumber(r.Y),
			bom.FormatNumber(r.Rotation),
			value,
			pkg,
		})
	}
	return t
}

// Inventory builds the pick list, one row per part type ordered by the
// designator of its first instance and numbered from 1.
func Inventory(parts []feeder.Part) Table {
	sorted := make([]feeder.Part, len(parts))
	copy(sorted, parts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Designator < sorted[j].Designator
	})

	t := Table{Header: []string{"Part", "Description", "Package", "Count"}}
	for i, p := range sorted {
		value, pkg := bom.SplitTypeKey(p.TypeKey)
		t.Rows = append(t.Rows, []string{strconv.Itoa(i + 1), value, pkg, strconv.Itoa(p.Quantity)})
	}
	return t
}

// FeederList builds the operator feeder list in slot order.
func FeederList(assignments []feeder.Assignment) Table {
	t := Table{Header: []string{"Feeder", "Description", "Package", "Count"}}
	for _, a := range assignments {
		value, pkg := bom.SplitTypeKey(a.Part.TypeKey)
		t.Rows = append(t.Rows, []string{strconv.Itoa(a.Feeder()), value, pkg, strconv.Itoa(a.Part.Quantity)})
	}
	return t
}
