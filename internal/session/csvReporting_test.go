package session

import (
	"borrowx/types"
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteActivityCSV(t *testing.T) {
	s, clock := newTestSession(t, "100000")
	ctx := context.Background()

	_, err := s.Deposit(ctx, "USDC", d("1000"))
	require.NoError(t, err)
	clock.advance(time.Hour)
	_, err = s.Borrow(ctx, "DAI", d("250.5"), types.RateVariable)
	require.NoError(t, err)
	_, err = s.Repay(d("50"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteActivityCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"activity_id", "kind", "symbol", "quantity", "amount_usd", "time"}, records[0])

	assert.Equal(t, "DEPOSIT", records[1][1])
	assert.Equal(t, "USDC", records[1][2])
	assert.Equal(t, "1000.00", records[1][4])
	assert.Equal(t, "2025-03-01T12:00:00Z", records[1][5])

	assert.Equal(t, "BORROW", records[2][1])
	assert.Equal(t, "250.50", records[2][4])
	assert.Equal(t, "2025-03-01T13:00:00Z", records[2][5])

	assert.Equal(t, "REPAY", records[3][1])
	assert.NotEqual(t, records[1][0], records[2][0])
}

func TestWriteActivityCSVFile(t *testing.T) {
	s, _ := newTestSession(t, "10")
	_, err := s.Deposit(context.Background(), "BTC", d("1"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "activity.csv")
	require.NoError(t, s.WriteActivityCSVFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "DEPOSIT,BTC,1,65000.00,")

	assert.Error(t, s.WriteActivityCSVFile(filepath.Join(t.TempDir(), "missing", "activity.csv")))
}
