package csvio

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expensetracker/internal/core"
	"expensetracker/internal/log"
	"expensetracker/internal/service"
	"expensetracker/internal/storage"
)

func quietLogger() *log.Logger {
	return log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

func newImporter() (*Importer, *service.ExpenseService) {
	svc := service.New(storage.NewMemoryStore(), core.DefaultLimits())
	return NewImporter(svc, quietLogger()), svc
}

func TestExportWritesHeaderAndRows(t *testing.T) {
	rows := []core.Expense{
		{
			ID:          7,
			Amount:      decimal.RequireFromString("12.5"),
			Category:    "Food",
			Description: "lunch",
			CreatedAt:   time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,amount,category,description,created_at", lines[0])
	assert.Equal(t, "7,12.50,Food,lunch,2023-06-01T12:00:00Z", lines[1])
}

func TestImportWithHeader(t *testing.T) {
	im, svc := newImporter()
	in := strings.Join([]string{
		"id,amount,category,description,created_at",
		"1,10.00,Food,lunch,2023-06-01T12:00:00Z",
		"2,5.00,Transport,,2023-06-02",
	}, "\n")

	n, err := im.Import(context.Background(), strings.NewReader(in), true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := svc.List(context.Background(), core.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Transport", rows[0].Category)
	assert.True(t, rows[0].CreatedAt.Equal(time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC)))
}

func TestImportHeaderless(t *testing.T) {
	im, svc := newImporter()
	in := strings.Join([]string{
		"10.00,Food,lunch,2023-06-01T12:00:00Z",
		"5.00,Transport",
	}, "\n")

	n, err := im.Import(context.Background(), strings.NewReader(in), false)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := svc.List(context.Background(), core.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Missing created_at defaults to now.
	assert.False(t, rows[0].CreatedAt.IsZero())
}

func TestImportSkipsMalformedRows(t *testing.T) {
	im, svc := newImporter()
	in := strings.Join([]string{
		"amount,category,description,created_at",
		"10.00,Food,lunch,2023-06-01T12:00:00Z",
		"not-a-number,Food,broken,2023-06-01T12:00:00Z",
		"5.00,,missing category,2023-06-01T12:00:00Z",
		"20.00,Transport,taxi,2023-06-02T08:00:00Z",
	}, "\n")

	n, err := im.Import(context.Background(), strings.NewReader(in), true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := svc.List(context.Background(), core.Filter{})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestImportRejectsBadHeader(t *testing.T) {
	im, _ := newImporter()
	_, err := im.Import(context.Background(), strings.NewReader("id,value,label\n1,2,3\n"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestRoundTrip(t *testing.T) {
	source := []core.Expense{
		{Amount: decimal.RequireFromString("10.00"), Category: "Food", Description: "lunch", CreatedAt: time.Date(2023, 6, 1, 12, 30, 45, 0, time.UTC)},
		{Amount: decimal.RequireFromString("5.25"), Category: "Transport", CreatedAt: time.Date(2023, 6, 2, 8, 0, 0, 0, time.UTC)},
	}

	// Insert into a fresh store, export everything, import into another
	// fresh store; the record sets must agree on every field except id.
	svc1 := service.New(storage.NewMemoryStore(), core.DefaultLimits())
	for _, e := range source {
		_, err := svc1.Add(context.Background(), e)
		require.NoError(t, err)
	}
	exported, err := svc1.List(context.Background(), core.Filter{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, exported))

	im2, svc2 := newImporter()
	n, err := im2.Import(context.Background(), &buf, true)
	require.NoError(t, err)
	assert.Equal(t, len(source), n)

	reimported, err := svc2.List(context.Background(), core.Filter{})
	require.NoError(t, err)
	require.Len(t, reimported, len(exported))
	for i := range exported {
		assert.True(t, exported[i].Amount.Equal(reimported[i].Amount))
		assert.Equal(t, exported[i].Category, reimported[i].Category)
		assert.Equal(t, exported[i].Description, reimported[i].Description)
		assert.True(t, exported[i].CreatedAt.Equal(reimported[i].CreatedAt))
	}
}
