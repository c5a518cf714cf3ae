package report_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bartolsthoorn/transportlp/batch"
	"github.com/bartolsthoorn/transportlp/report"
)

func sampleResults() []batch.Result {
	cost := 95.0
	iters := 4
	return []batch.Result{
		{Name: "balanced", Success: true, Cost: &cost, Iterations: &iters, Elapsed: 1500 * time.Millisecond},
		{Name: "infeasible", Success: false, Elapsed: 250 * time.Millisecond, Status: "Infeasible"},
	}
}

func TestOpen_ByExtension(t *testing.T) {
	dir := t.TempDir()

	s, err := report.Open(filepath.Join(dir, "out.XLSX"))
	require.NoError(t, err)
	require.IsType(t, &report.Workbook{}, s)

	s, err = report.Open(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	require.IsType(t, &report.CSV{}, s)

	_, err = report.Open(filepath.Join(dir, "out.json"))
	require.Error(t, err)
}

func TestCSV_WriteResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	sink, err := report.Open(path)
	require.NoError(t, err)
	require.NoError(t, sink.WriteResults(sampleResults()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Equal(t, [][]string{
		report.Header,
		{"balanced", "95", "4", "1.5", "true"},
		{"infeasible", "", "", "0.25", "false"},
	}, rows)
}

func TestWorkbook_WriteResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.xlsx")
	info := report.SysInfo{Platform: "linux", CPU: "test cpu", RAM: "16 GB"}
	sink, err := report.Open(path, report.WithSysInfo(info))
	require.NoError(t, err)
	require.NoError(t, sink.WriteResults(sampleResults()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, report.Header, rows[0])
	require.Equal(t, []string{"balanced", "95", "4", "1.5", "TRUE"}, rows[1])
	require.Equal(t, "infeasible", rows[2][0])
	require.Empty(t, rows[2][1])
	require.Empty(t, rows[2][2])
	require.Equal(t, "FALSE", rows[2][4])

	sys, err := f.GetRows("System")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"Platform", "linux"}, {"CPU", "test cpu"}, {"RAM", "16 GB"}}, sys)
}

func TestWorkbook_NoSystemSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.xlsx")
	require.NoError(t, (&report.Workbook{Path: path}).WriteResults(nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, []string{"Results"}, f.GetSheetList())
}

func TestCollectSysInfo(t *testing.T) {
	info, err := report.CollectSysInfo()
	if err != nil {
		t.Skipf("host information unavailable: %v", err)
	}
	require.NotEmpty(t, info.RAM)
	require.Len(t, info.Pairs(), 3)
}
