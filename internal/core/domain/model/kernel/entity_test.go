package kernel_test

import (
	"testing"
	"time"

	"postbox/internal/core/domain/model/kernel"
	"postbox/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreEntity(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	modified := created.Add(time.Hour)

	t.Run("valid", func(t *testing.T) {
		e, err := kernel.RestoreEntity(7, created, modified)

		require.NoError(t, err)
		assert.Equal(t, int64(7), e.ID())
		assert.Equal(t, created, e.CreatedOn())
		assert.Equal(t, modified, e.LastModifiedOn())
		assert.False(t, e.IsTransient())
	})

	t.Run("non positive id", func(t *testing.T) {
		_, err := kernel.RestoreEntity(0, created, modified)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("missing timestamps are all reported", func(t *testing.T) {
		_, err := kernel.RestoreEntity(1, time.Time{}, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "createdOn")
		assert.Contains(t, err.Error(), "lastModifiedOn")
	})
}

func TestEntity_Track(t *testing.T) {
	var e kernel.Entity
	assert.True(t, e.IsTransient())

	now := time.Now().UTC()
	e.Track(3, now, now)

	assert.Equal(t, int64(3), e.ID())
	assert.False(t, e.IsTransient())
}
