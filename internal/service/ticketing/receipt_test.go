package ticketing

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
)

func TestNextReceipts_EmptyCounterDoesNotRotate(t *testing.T) {
	ts, _ := newTestService(t, Options{})
	ctx := context.Background()

	batch, err := ts.NextReceipts(ctx)
	assert.ErrorIs(t, err, constant.ErrNothingToShow)
	assert.Equal(t, domain.CounterOne, batch.Counter)
	assert.Empty(t, batch.Lines)

	_, err = ts.NextReceipts(ctx)
	assert.ErrorIs(t, err, constant.ErrNothingToShow)
	assert.Equal(t, domain.CounterOne, ts.Snapshot().ReceiptCursor)
}

func TestNextReceipts_PeekByDefault(t *testing.T) {
	ts, _ := newTestService(t, Options{})
	ctx := context.Background()
	for i := 0; i < 14; i++ {
		register(t, ts, fmt.Sprintf("c%d", i), i%3+1)
	}

	batch, err := ts.NextReceipts(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CounterOne, batch.Counter)
	assert.False(t, batch.Dismissed)
	require.Len(t, batch.Lines, 5)
	assert.Equal(t, domain.ReceiptLine{CustomerID: 1, Name: "c0", Tickets: 1, Total: 15}, batch.Lines[0])
	assert.Equal(t, domain.ReceiptLine{CustomerID: 3, Name: "c2", Tickets: 3, Total: 45}, batch.Lines[1])
	assert.Len(t, ts.Snapshot().Queues[domain.CounterOne], 7)

	batch, err = ts.NextReceipts(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CounterTwo, batch.Counter)

	// counter three is empty: reported and the rotation waits there
	_, err = ts.NextReceipts(ctx)
	assert.ErrorIs(t, err, constant.ErrNothingToShow)
	assert.Equal(t, domain.CounterThree, ts.Snapshot().ReceiptCursor)

	register(t, ts, "bulk", 6)
	batch, err = ts.NextReceipts(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CounterThree, batch.Counter)
	assert.Equal(t, domain.CounterOne, ts.Snapshot().ReceiptCursor)
	requireSingleMembership(t, ts)
}

func TestNextReceipts_Dismiss(t *testing.T) {
	ts, _ := newTestService(t, Options{DismissReceipts: true, ReceiptBatch: 2})
	register(t, ts, "Alice", 1)
	register(t, ts, "Bob", 1)
	register(t, ts, "Cara", 1)
	register(t, ts, "Dan", 1)
	register(t, ts, "Eve", 1)

	batch, err := ts.NextReceipts(context.Background())
	require.NoError(t, err)
	assert.True(t, batch.Dismissed)
	require.Len(t, batch.Lines, 2)
	assert.Equal(t, "Alice", batch.Lines[0].Name)
	assert.Equal(t, "Cara", batch.Lines[1].Name)

	snapshot := ts.Snapshot()
	assert.Equal(t, []string{"Eve"}, names(snapshot.Queues[domain.CounterOne]))
	assert.Equal(t, []string{"Alice", "Cara"}, names(snapshot.Dismissed))
	requireSingleMembership(t, ts)

	// dismissed customers are no longer offered for payment
	result, err := ts.ProcessPayments(context.Background(), exactResponder())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Paid)
}

func TestPeekReceipts(t *testing.T) {
	ts, _ := newTestService(t, Options{})
	register(t, ts, "Bob", 8)

	batch, err := ts.PeekReceipts(domain.CounterThree)
	require.NoError(t, err)
	require.Len(t, batch.Lines, 1)
	assert.Equal(t, 120, batch.Lines[0].Total)
	assert.Equal(t, domain.CounterOne, ts.Snapshot().ReceiptCursor)

	batch, err = ts.PeekReceipts(domain.CounterOne)
	require.NoError(t, err)
	assert.Empty(t, batch.Lines)

	_, err = ts.PeekReceipts(domain.Counter(7))
	assert.ErrorIs(t, err, constant.ErrCounterNotFound)
}
