package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
)

func TestFeeRepositoryRemovePendingByStudentFirstMatch(t *testing.T) {
	store := newTestStore(t)
	repo := NewFeeRepository(store, zap.NewNop())

	require.NoError(t, repo.AppendPending(models.Fee{StudentID: "042317", Amount: 1000, Timestamp: "2026-01-01 09:00:00"}))
	require.NoError(t, repo.AppendPending(models.Fee{StudentID: "042317", Amount: 2000, Timestamp: "2026-02-01 09:00:00"}))
	require.NoError(t, repo.AppendPending(models.Fee{StudentID: "108221", Amount: 3000, Timestamp: "2026-03-01 09:00:00"}))

	removed, err := repo.RemovePendingByStudent("042317")
	require.NoError(t, err)
	assert.True(t, removed)

	pending, err := repo.PendingList()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, 2000.0, pending[0].Amount)
	assert.Equal(t, "108221", pending[1].StudentID)
}

func TestFeeRepositoryRemovePendingByStudentMissing(t *testing.T) {
	store := newTestStore(t)
	repo := NewFeeRepository(store, zap.NewNop())

	removed, err := repo.RemovePendingByStudent("999999")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFeeRepositoryPaidRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewFeeRepository(store, zap.NewNop())

	require.NoError(t, repo.AppendPaid(models.Fee{StudentID: "042317", Amount: 4500, Timestamp: "2026-01-05 09:00:00", Paid: true}))

	paid, err := repo.PaidList()
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.True(t, paid[0].Paid)
	assert.Equal(t, 4500.0, paid[0].Amount)
}

func TestFeeRepositoryReceipts(t *testing.T) {
	store := newTestStore(t)
	repo := NewFeeRepository(store, zap.NewNop())

	require.NoError(t, repo.AppendReceipt(models.FeeReceipt{Number: "r-1", StudentID: "042317", Amount: 4500, Timestamp: "2026-01-05 09:00:00"}))
	require.NoError(t, repo.AppendReceipt(models.FeeReceipt{Number: "r-2", StudentID: "108221", Amount: 1200, Timestamp: "2026-01-06 09:00:00"}))

	receipts, err := repo.ReceiptsByStudent("042317")
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, "r-1", receipts[0].Number)
}
