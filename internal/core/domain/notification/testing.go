package notification

import (
	"context"
	"fmt"
	"sync"
)

type FakeEmailSender struct {
	Sent        []Email
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeEmailSender() *FakeEmailSender {
	return &FakeEmailSender{}
}

func (s *FakeEmailSender) Send(ctx context.Context, email Email) error {
	if s.ReturnError {
		return fmt.Errorf("could not send email to %s", email.Recipient)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, email)
	return nil
}

func (s *FakeEmailSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeEmailSender) LastSent() Email {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}
