package resetpassword

import (
	e "claon/internal/core/domain/errors"
	"claon/internal/core/domain/logging"
	"claon/internal/core/domain/notification"
	"claon/internal/core/services"
	"context"
	"errors"
)

type serviceWithTemporaryPasswordSending struct {
	log    logging.Logger
	sender notification.EmailSender
	inner  services.Service[Input, Result]
}

// NewWithTemporaryPasswordSending emails the temporary password once the
// inner service has committed it. Sending is attempted at most once and its
// failure is not returned to the caller.
func NewWithTemporaryPasswordSending(
	log logging.Logger,
	sender notification.EmailSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithTemporaryPasswordSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

func (s *serviceWithTemporaryPasswordSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending temporary password.", logging.Entry("err", err))
		return result, err
	}

	email := notification.NewTemporaryPasswordEmail(result.User.Email, string(result.TemporaryPassword))
	sendErr := s.sender.Send(ctx, email)
	if sendErr != nil {
		s.log.Error(
			ctx,
			"Could not send temporary password.",
			logging.Entry("userId", result.User.ID),
			logging.Entry("err", sendErr),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Temporary password has been sent to the user.",
		logging.Entry("userId", result.User.ID),
	)
	return result, nil
}
