package app

import (
	"claon/internal/app/deps"
	"claon/internal/app/services"
	listareas "claon/internal/http/handlers/areas/list_areas"
	checkemailduplicated "claon/internal/http/handlers/auth/check_email_duplicated"
	checknicknameduplicated "claon/internal/http/handlers/auth/check_nickname_duplicated"
	resetpassword "claon/internal/http/handlers/auth/reset_password"
	signup "claon/internal/http/handlers/auth/sign_up"
	"claon/internal/http/middleware"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := NewRouter(deps.Config.AllowedOrigins, deps.Config.IsTestMode, s)
	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}

func NewRouter(allowedOrigins []string, isTestMode bool, s *services.Services) http.Handler {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodGet, "/email/duplicate-check", checkemailduplicated.New(s.CheckEmailDuplicated))
	authRouter.Method(
		http.MethodGet,
		"/nickname/duplicate-check",
		checknicknameduplicated.New(s.CheckNicknameDuplicated),
	)
	authRouter.Method(http.MethodPost, "/signup", signup.New(s.SignUp))
	authRouter.Method(http.MethodPost, "/password/reset", resetpassword.New(s.ResetPassword, isTestMode))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Method(http.MethodGet, "/areas", listareas.New(s.ListAreas))

	return router
}
