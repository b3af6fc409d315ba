package ratelimiter

import (
	"context"
	"errors"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

type Interval struct {
	value int
}

var (
	Minute = Interval{}
	Hour   = Interval{value: 1}
)

func (i Interval) Duration() time.Duration {
	if i == Hour {
		return time.Hour
	}
	return time.Minute
}

// Bucket returns the name of the fixed window containing t.
func (i Interval) Bucket(t time.Time) string {
	if i == Hour {
		return t.UTC().Format("2006010215")
	}
	return t.UTC().Format("200601021504")
}

type Limit struct {
	Value    uint16
	Interval Interval
}

type Result struct {
	IsAllowed bool
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed() Result {
	return Result{IsAllowed: false}
}

// RateLimiter fails open: store errors must not block callers.
type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
