package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type body struct {
	Error bodyError `json:"error"`
}

type bodyError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Write renders err as {"error":{"code","message"}}. Server errors are
// logged with their internal cause, which is never sent to the client.
func Write(w http.ResponseWriter, log *slog.Logger, err error) {
	appErr := As(err)

	if appErr.HTTPStatus >= http.StatusInternalServerError && log != nil {
		log.Error("request error",
			slog.String("code", appErr.Code),
			slog.Any("error", appErr.Internal),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(body{Error: bodyError{
		Code:    appErr.Code,
		Message: appErr.Message,
	}})
}

// Handler returns an http.HandlerFunc that always answers with err.
func Handler(log *slog.Logger, err *Error) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		Write(w, log, err)
	}
}
