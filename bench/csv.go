package bench

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

var csvHeader = []string{"Algorithm", "Elements", "Average(ns)", "StdDev(ns)", "SamplesUsed"}

// WriteCSV writes the recorded results to w, one row per result, in run
// order.
func (s *Suite) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, r := range s.results {
		record := []string{
			r.Name,
			strconv.Itoa(r.Elements),
			strconv.FormatFloat(r.AvgNs, 'f', 2, 64),
			strconv.FormatFloat(r.StdDevNs, 'f', 2, 64),
			strconv.Itoa(r.Samples),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "write result %q", r.Name)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flush")
}

// WriteCSVFile writes the recorded results to the file at path, creating or
// truncating it.
func (s *Suite) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	if err := s.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
