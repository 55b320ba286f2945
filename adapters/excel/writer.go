package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"normtest/domain/normality"
	"normtest/models"

	"github.com/xuri/excelize/v2"
)

const resultsSheet = "Results"

var resultHeaders = []interface{}{
	"id", "battery_id", "test", "n", "statistic", "critical", "p_value", "alpha",
	"mode", "detail", "conclusion", "normal", "summary", "created_at",
}

// TableWorkbook builds a workbook with one sheet per test: a row per
// tabulated n, a column per alpha, followed by the gap and extrapolation notes.
// No ids selects every registered test.
func TableWorkbook(ids ...normality.TestID) (*excelize.File, error) {
	if len(ids) == 0 {
		ids = normality.Tests()
	}

	f := excelize.NewFile()
	for i, id := range ids {
		d, err := normality.Describe(id)
		if err != nil {
			f.Close()
			return nil, err
		}
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), d.Name); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(d.Name); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeTableSheet(f, d); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write %s table: %w", id, err)
		}
	}
	return f, nil
}

func writeTableSheet(f *excelize.File, d normality.TestDescriptor) error {
	sheet := d.Name
	alphas := d.Table.Alphas()

	header := make([]interface{}, 0, len(alphas)+1)
	header = append(header, "n")
	columns := make([][]float64, len(alphas))
	for i, a := range alphas {
		header = append(header, a)
		columns[i], _ = d.Table.Column(a)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	sizes := d.Table.Sizes()
	for r, n := range sizes {
		row := make([]interface{}, 0, len(alphas)+1)
		row = append(row, n)
		for _, col := range columns {
			row = append(row, col[r])
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	next := len(sizes) + 3
	notes := [][]interface{}{{"gap", "anchor"}}
	for _, g := range d.Table.Gaps() {
		notes = append(notes, []interface{}{g.String(), g.Anchor})
	}
	notes = append(notes, []interface{}{"beyond n", d.Table.MaxN(), d.Extrapolation.Kind.String()})
	for i, note := range notes {
		cell, err := excelize.CoordinatesToCellName(1, next+i)
		if err != nil {
			return err
		}
		note := note
		if err := f.SetSheetRow(sheet, cell, &note); err != nil {
			return err
		}
	}
	return nil
}

// ExportTables writes the critical-value tables to an xlsx file.
func ExportTables(path string, ids ...normality.TestID) error {
	f, err := TableWorkbook(ids...)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	log.Printf("[Exporter] Critical-value tables written to %s", path)
	return nil
}

// WriteTables streams the xlsx workbook to w.
func WriteTables(w io.Writer, ids ...normality.TestID) error {
	f, err := TableWorkbook(ids...)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// ExportResults writes ledger rows to path, as csv when the extension is
// .csv and as xlsx otherwise.
func ExportResults(path string, records []*models.ResultRecord) error {
	if fileTypeOf(path) == "csv" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := writeResultsCSV(file, records); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return err
	}
	header := resultHeaders
	if err := f.SetSheetRow(resultsSheet, "A1", &header); err != nil {
		return err
	}
	for i, rec := range records {
		row := resultValues(rec)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	log.Printf("[Exporter] %d results written to %s", len(records), path)
	return nil
}

func writeResultsCSV(w io.Writer, records []*models.ResultRecord) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(resultHeaders))
	for i, h := range resultHeaders {
		header[i] = h.(string)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(resultRow(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func resultRow(rec *models.ResultRecord) []string {
	return []string{
		rec.ID.String(),
		rec.BatteryID,
		string(rec.TestID),
		strconv.Itoa(rec.N),
		formatFloat(rec.Statistic),
		formatOptional(rec.Critical),
		formatOptional(rec.PValue),
		formatFloat(rec.Alpha),
		rec.Mode,
		rec.Detail,
		rec.Code,
		strconv.FormatBool(rec.Normal),
		rec.Summary,
		rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// resultValues keeps numbers numeric in the xlsx sheet; absent values stay blank.
func resultValues(rec *models.ResultRecord) []interface{} {
	row := []interface{}{rec.ID.String(), rec.BatteryID, string(rec.TestID), rec.N, rec.Statistic}
	for _, v := range []*float64{rec.Critical, rec.PValue} {
		if v == nil {
			row = append(row, nil)
		} else {
			row = append(row, *v)
		}
	}
	return append(row, rec.Alpha, rec.Mode, rec.Detail, rec.Code, rec.Normal, rec.Summary,
		rec.CreatedAt.UTC().Format(time.RFC3339))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
