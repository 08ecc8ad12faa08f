package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefineMonth_CreatesDraft(t *testing.T) {
	mock := newMockDB()

	month, err := DefineMonth(context.Background(), mock, zap.NewNop(), "2026-04")
	require.NoError(t, err)

	assert.NotEmpty(t, month.ID)
	assert.Equal(t, "2026-04", month.Month)
	assert.Equal(t, "draft", month.Status)
	require.Len(t, mock.insertedMonths, 1)
	assert.Equal(t, month, mock.insertedMonths[0])
}

func TestDefineMonth_RefusesDuplicate(t *testing.T) {
	mock := newMockDB()

	_, err := DefineMonth(context.Background(), mock, zap.NewNop(), "2026-03")
	assert.ErrorIs(t, err, ErrMonthExists)
	assert.Empty(t, mock.insertedMonths)
}

func TestDefineMonth_InvalidMonth(t *testing.T) {
	mock := newMockDB()

	for _, month := range []string{"", "2026-3", "2026-00", "2026-03-01"} {
		_, err := DefineMonth(context.Background(), mock, zap.NewNop(), month)
		assert.ErrorIs(t, err, ErrInvalidInput, month)
	}
	assert.Empty(t, mock.insertedMonths)
}

func TestDefineMonth_InsertError(t *testing.T) {
	mock := newMockDB()
	mock.insertErr = errors.New("disk full")

	_, err := DefineMonth(context.Background(), mock, zap.NewNop(), "2026-04")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert schedule month")
}
