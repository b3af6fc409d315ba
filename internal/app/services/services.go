package services

import (
	"claon/internal/app/deps"
	drl "claon/internal/core/domain/rate_limiter"
	"claon/internal/core/services"
	checkemailduplicated "claon/internal/core/services/check_email_duplicated"
	checknicknameduplicated "claon/internal/core/services/check_nickname_duplicated"
	listareas "claon/internal/core/services/list_areas"
	ratelimiting "claon/internal/core/services/rate_limiting"
	resetpassword "claon/internal/core/services/reset_password"
	signup "claon/internal/core/services/sign_up"
)

type Services struct {
	CheckEmailDuplicated    services.Service[checkemailduplicated.Input, checkemailduplicated.Result]
	CheckNicknameDuplicated services.Service[checknicknameduplicated.Input, checknicknameduplicated.Result]
	SignUp                  services.Service[signup.Input, signup.Result]
	ResetPassword           services.Service[resetpassword.Input, resetpassword.Result]
	ListAreas               services.Service[listareas.Input, listareas.Result]
}

func InitServices(deps *deps.Deps) *Services {
	passwordResetLimit := drl.Limit{Interval: drl.Hour, Value: deps.Config.PasswordResetRateLimitPerHour}

	return &Services{
		CheckEmailDuplicated: checkemailduplicated.New(
			deps.Logger,
			deps.UserRepository,
		),
		CheckNicknameDuplicated: checknicknameduplicated.New(
			deps.Logger,
			deps.UserRepository,
		),
		SignUp: signup.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.PasswordFormatValidator,
			deps.Now,
		),
		ResetPassword: ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			passwordResetLimit,
			resetpassword.NewWithTemporaryPasswordSending(
				deps.Logger,
				deps.EmailSender,
				resetpassword.New(
					deps.Logger,
					deps.UnitOfWork,
					deps.PasswordGenerator,
					deps.PasswordHasher,
					deps.RateLimiter,
					passwordResetLimit,
				),
			),
		),
		ListAreas: listareas.New(),
	}
}
