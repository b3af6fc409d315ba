package response

import (
	e "claon/internal/core/domain/errors"
	ratelimiter "claon/internal/core/domain/rate_limiter"
	"claon/internal/http/i18n"
	"encoding/json"
	"errors"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func RenderInvalidRequest(rw http.ResponseWriter, r *http.Request) {
	renderCode(rw, r, i18n.CodeInvalidRequest, http.StatusBadRequest)
}

func RenderInternalError(rw http.ResponseWriter, r *http.Request) {
	renderCode(rw, r, i18n.CodeInternal, http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter, r *http.Request) {
	renderCode(rw, r, i18n.CodeRateLimitExceeded, http.StatusTooManyRequests)
}

// RenderDomainError picks the status from the error kind and a localized
// message from the error code. Unclassified errors become a 500.
func RenderDomainError(rw http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		RenderRateLimitExceeded(rw, r)
		return
	}

	var status int
	switch e.KindOf(err) {
	case e.KindConflict:
		status = http.StatusConflict
	case e.KindValidation:
		status = http.StatusBadRequest
	case e.KindNotFound:
		status = http.StatusNotFound
	default:
		RenderInternalError(rw, r)
		return
	}
	renderCode(rw, r, e.CodeOf(err), status)
}

func renderCode(rw http.ResponseWriter, r *http.Request, code e.Code, status int) {
	msg := i18n.Message(i18n.ResolveTag(r), code)
	RenderError(rw, msg, code, status)
}

func RenderError(rw http.ResponseWriter, msg string, code e.Code, status int) {
	Render(rw, errorResponse{Error: msg, Code: string(code)}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
