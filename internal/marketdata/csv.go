// Package marketdata stores chart data as CSV so backtests can run offline.
package marketdata

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/internal/feed"
)

var header = []string{"time", "open", "high", "low", "close", "volume", "weighted_average"}

// Load reads bars from a CSV file, oldest first. Time is unix milliseconds.
func Load(path string) ([]domain.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	bars, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return bars, nil
}

// Read parses bars from r. The header row is optional.
func Read(r io.Reader) ([]domain.Bar, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(domain.ErrMalformedInput, err.Error())
	}
	if len(records) > 0 && records[0][0] == header[0] {
		records = records[1:]
	}

	bars := make([]domain.Bar, 0, len(records))
	for i, rec := range records {
		bar, err := parseRecord(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		if len(bars) > 0 && !bar.Time.After(bars[len(bars)-1].Time) {
			return nil, errors.Wrapf(domain.ErrMalformedInput, "line %d: bars are not in chronological order", i+1)
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

func parseRecord(rec []string) (domain.Bar, error) {
	ms, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil {
		return domain.Bar{}, errors.Wrapf(domain.ErrMalformedInput, "time %q", rec[0])
	}

	values := make([]float64, len(rec)-1)
	for i, raw := range rec[1:] {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.Bar{}, errors.Wrapf(domain.ErrMalformedInput, "%s %q", header[i+1], raw)
		}
		values[i] = d.InexactFloat64()
	}

	return domain.Bar{
		Time:            time.UnixMilli(ms),
		Open:            values[0],
		High:            values[1],
		Low:             values[2],
		Close:           values[3],
		Volume:          values[4],
		WeightedAverage: values[5],
	}, nil
}

// Write writes bars with a header row.
func Write(w io.Writer, bars []domain.Bar) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, b := range bars {
		record := []string{strconv.FormatInt(b.Time.UnixMilli(), 10)}
		for _, v := range []float64{b.Open, b.High, b.Low, b.Close, b.Volume, b.WeightedAverage} {
			record = append(record, decimal.NewFromFloat(v).String())
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Collect downloads the bars of pair since start and writes them to path.
// A failed write leaves no file behind.
func Collect(ctx context.Context, exchange feed.Exchange, pair domain.Pair, period time.Duration, start time.Time, path string) (int, error) {
	bars, err := exchange.ChartData(ctx, pair, period, start)
	if err != nil {
		return 0, domain.NewExchangeError("chart data", err)
	}

	if err := save(path, bars, Write); err != nil {
		return 0, err
	}

	return len(bars), nil
}

func save(path string, bars []domain.Bar, write func(io.Writer, []domain.Bar) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := write(f, bars); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}
