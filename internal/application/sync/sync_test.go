package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChangedSince(t *testing.T) {
	since := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	before := since.Add(-time.Minute)
	after := since.Add(time.Minute)

	t.Run("no boundary accepts everything", func(t *testing.T) {
		assert.True(t, changedSince(nil, &before, nil))
		assert.True(t, changedSince(nil, nil, nil))
	})

	t.Run("updated timestamp wins over created", func(t *testing.T) {
		assert.True(t, changedSince(&since, &after, &before))
		assert.False(t, changedSince(&since, &before, &after))
	})

	t.Run("created is the fallback", func(t *testing.T) {
		assert.True(t, changedSince(&since, nil, &after))
		assert.False(t, changedSince(&since, nil, &before))
	})

	t.Run("untimestamped records always qualify", func(t *testing.T) {
		assert.True(t, changedSince(&since, nil, nil))
	})

	t.Run("boundary itself is excluded", func(t *testing.T) {
		assert.False(t, changedSince(&since, &since, nil))
	})
}
