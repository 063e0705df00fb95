package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expensetracker/internal/core"
)

func TestFilterFlagsBuild(t *testing.T) {
	f := filterFlags{since: "2023-06-01", until: "2023-06-30T23:59:59", category: "Food", limit: 10}
	filter, err := f.build()
	require.NoError(t, err)
	assert.Equal(t, "Food", filter.Category)
	assert.Equal(t, 10, filter.Limit)
	assert.True(t, filter.Since.Equal(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, filter.Until.Equal(time.Date(2023, 6, 30, 23, 59, 59, 0, time.UTC)))
}

func TestFilterFlagsBuildEmpty(t *testing.T) {
	filter, err := filterFlags{}.build()
	require.NoError(t, err)
	assert.Nil(t, filter.Since)
	assert.Nil(t, filter.Until)
}

func TestFilterFlagsBuildBadDate(t *testing.T) {
	_, err := filterFlags{since: "junk"}.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidDate)
	assert.Contains(t, err.Error(), "--since")
}

func TestPrintExpenses(t *testing.T) {
	var buf bytes.Buffer
	printExpenses(&buf, []core.Expense{{
		ID:        1,
		Amount:    decimal.RequireFromString("12.50"),
		Category:  "Food",
		CreatedAt: time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
	}})
	out := buf.String()
	assert.True(t, strings.Contains(out, "12.50"))
	assert.True(t, strings.Contains(out, "Total rows: 1"))
}
