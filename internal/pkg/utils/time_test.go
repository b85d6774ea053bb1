package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAge(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Birthday Already Passed", func(t *testing.T) {
		age := CalculateAge("1990-03-01", now)
		require.NotNil(t, age)
		assert.Equal(t, 34, *age)
	})

	t.Run("Birthday Today", func(t *testing.T) {
		age := CalculateAge("1990-06-15", now)
		require.NotNil(t, age)
		assert.Equal(t, 34, *age)
	})

	t.Run("Birthday Not Yet", func(t *testing.T) {
		age := CalculateAge("1990-06-16", now)
		require.NotNil(t, age)
		assert.Equal(t, 33, *age)
	})

	t.Run("Invalid Or Missing Date", func(t *testing.T) {
		assert.Nil(t, CalculateAge("", now))
		assert.Nil(t, CalculateAge("15/06/1990", now))
	})
}
