package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/bartolsthoorn/transportlp/batch"
)

// CSV writes results as comma-separated values; unsolved metrics are empty
// fields.
type CSV struct {
	Path string
}

func (c *CSV) WriteResults(results []batch.Result) error {
	f, err := os.Create(c.Path)
	if err != nil {
		return errors.Wrap(err, "report")
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		f.Close()
		return errors.Wrap(err, "report")
	}
	for _, r := range results {
		if err := w.Write(fields(r)); err != nil {
			f.Close()
			return errors.Wrap(err, "report")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return errors.Wrap(err, "report")
	}
	return errors.Wrap(f.Close(), "report")
}

func fields(r batch.Result) []string {
	row := values(r)
	out := make([]string, len(row))
	for i, v := range row {
		switch v := v.(type) {
		case nil:
		case float64:
			out[i] = strconv.FormatFloat(v, 'g', -1, 64)
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
