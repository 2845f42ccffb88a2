package api

import (
	"github.com/denguetect/denguetect-api/bite"
	"github.com/denguetect/denguetect-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this account has been registered or has been taken",
		1101: store.ErrAccountNotFound.Error(),
		1102: "invalid email or password",

		1200: bite.ErrNoImage.Error(),
		1201: "image cannot be decoded",
		1202: store.ErrAnalysisNotFound.Error(),
		1203: "image is too large",

		1300: "no previous assessment with symptoms",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken       = errorJSON(1100)
	errorAccountNotFound    = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)

	errorNoImage          = errorJSON(1200)
	errorImageDecode      = errorJSON(1201)
	errorAnalysisNotFound = errorJSON(1202)
	errorImageTooLarge    = errorJSON(1203)

	errorNoPreviousAssessment = errorJSON(1300)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
