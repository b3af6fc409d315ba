package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIntervalBucket(t *testing.T) {
	at := time.Date(2024, 3, 5, 14, 27, 0, 0, time.UTC)
	require.Equal(t, "2024030514", Hour.Bucket(at))
	require.Equal(t, "202403051427", Minute.Bucket(at))
	require.Equal(t, time.Hour, Hour.Duration())
	require.Equal(t, time.Minute, Minute.Duration())
}
