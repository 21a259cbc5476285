package response

import (
	"encoding/json"
	"net/http"

	"localmarket/shared/constant"
	"localmarket/shared/failure"
	"localmarket/shared/logger"
)

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends the payload as the response body, without an envelope
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, jsonPayload)
}

// WithError sends a response with an error message. Errors without a failure
// code are internal faults; their detail stays in the log and the client gets
// a fixed message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if code == http.StatusInternalServerError {
		logger.ErrorWithStack(err)
		errMsg = "Internal server error"
	}

	response(writer, code, Error{Error: &errMsg})
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
