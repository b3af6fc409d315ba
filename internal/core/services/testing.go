package services

import (
	"context"
	"sync"
)

// FakeService returns the configured result and records inputs.
type FakeService[T any, S any] struct {
	Result      S
	ReturnError error
	Inputs      []T
	lock        sync.Mutex
}

func NewFakeService[T any, S any](result S, err error) *FakeService[T, S] {
	return &FakeService[T, S]{Result: result, ReturnError: err}
}

func (s *FakeService[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Inputs = append(s.Inputs, input)
	if s.ReturnError != nil {
		return result, s.ReturnError
	}
	return s.Result, nil
}
