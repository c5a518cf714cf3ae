package report

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/bartolsthoorn/transportlp/batch"
)

const (
	resultsSheet = "Results"
	systemSheet  = "System"
)

// Workbook writes results to the first sheet of an .xlsx file and, when
// System is set, the host description to a second sheet.
type Workbook struct {
	Path   string
	System *SysInfo
}

func (w *Workbook) WriteResults(results []batch.Result) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return errors.Wrap(err, "report: rename sheet")
	}
	if err := setRow(f, resultsSheet, 1, toCells(Header)); err != nil {
		return err
	}
	for i, r := range results {
		if err := setRow(f, resultsSheet, i+2, values(r)); err != nil {
			return err
		}
	}

	if w.System != nil {
		if _, err := f.NewSheet(systemSheet); err != nil {
			return errors.Wrap(err, "report: add sheet")
		}
		for i, kv := range w.System.Pairs() {
			if err := setRow(f, systemSheet, i+1, []interface{}{kv[0], kv[1]}); err != nil {
				return err
			}
		}
	}

	return errors.Wrapf(f.SaveAs(w.Path), "report: save %s", w.Path)
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrap(err, "report")
	}
	return errors.Wrapf(f.SetSheetRow(sheet, cell, &cells), "report: row %d", row)
}

func toCells(s []string) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
