package marketdata

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/internal/feed/mocks"
)

func sampleBars() []domain.Bar {
	start := time.UnixMilli(1700000000000)
	return []domain.Bar{
		{Time: start, Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 10, WeightedAverage: 1.2},
		{Time: start.Add(5 * time.Minute), Open: 1.5, High: 1.75, Low: 1.25, Close: 1.625, Volume: 3, WeightedAverage: 1.5},
	}
}

func TestWriteRead(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleBars()))

	assert.True(t, strings.HasPrefix(buf.String(), "time,open,high,low,close,volume,weighted_average\n"))
	assert.Contains(t, buf.String(), "1700000000000,1,2,0.5,1.5,10,1.2\n")

	bars, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleBars(), bars)
}

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "without header", input: "1,1,1,1,1,1,1\n2,1,1,1,1,1,1\n", want: 2},
		{name: "empty", input: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bars, err := Read(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Len(t, bars, tt.want)
		})
	}

	malformed := []struct {
		name  string
		input string
	}{
		{name: "missing column", input: "1,1,1,1,1,1\n"},
		{name: "bad time", input: "yesterday,1,1,1,1,1,1\n"},
		{name: "bad price", input: "1,one,1,1,1,1,1\n"},
		{name: "out of order", input: "2,1,1,1,1,1,1\n1,1,1,1,1,1,1\n"},
	}

	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, domain.ErrMalformedInput)
		})
	}
}

func TestLoad(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestCollect(t *testing.T) {
	pair := domain.Pair{Main: "BTC", Alt: "LTC"}
	start := time.UnixMilli(1700000000000)
	path := filepath.Join(t.TempDir(), "bars.csv")

	ex := mocks.NewExchange(t)
	ex.On("ChartData", mock.Anything, pair, 5*time.Minute, start).Return(sampleBars(), nil).Once()

	n, err := Collect(context.Background(), ex, pair, 5*time.Minute, start, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	bars, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sampleBars(), bars)
}

func TestSave(t *testing.T) {
	t.Run("failed write removes the partial file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bars.csv")
		errDisk := errors.New("disk full")

		err := save(path, sampleBars(), func(w io.Writer, _ []domain.Bar) error {
			_, _ = w.Write([]byte("time,open"))
			return errDisk
		})
		assert.ErrorIs(t, err, errDisk)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("unwritable path", func(t *testing.T) {
		err := save(filepath.Join(t.TempDir(), "missing", "bars.csv"), sampleBars(), Write)
		assert.Error(t, err)
	})
}

func TestCollect_ExchangeError(t *testing.T) {
	pair := domain.Pair{Main: "BTC", Alt: "LTC"}
	path := filepath.Join(t.TempDir(), "bars.csv")

	ex := mocks.NewExchange(t)
	ex.On("ChartData", mock.Anything, pair, 5*time.Minute, mock.Anything).Return(nil, errors.New("down")).Once()

	_, err := Collect(context.Background(), ex, pair, 5*time.Minute, time.Now(), path)
	assert.ErrorIs(t, err, domain.ErrExchange)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
