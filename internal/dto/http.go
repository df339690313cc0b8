package dto

import "net/http"

// ErrMsgFetchFailed is the single user-visible message the dashboard shows
// for any upstream failure. Transport errors and malformed payloads are not
// differentiated to the user.
const ErrMsgFetchFailed = "Failed to fetch data. Please check the symbol or try again."

type BaseResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func NewBaseResponse(code int, message string, data interface{}) *BaseResponse {
	return &BaseResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func NewBadRequestResponse(message string) *BaseResponse {
	return NewBaseResponse(http.StatusBadRequest, message, nil)
}

func NewFetchFailedResponse() *BaseResponse {
	return NewBaseResponse(http.StatusBadGateway, ErrMsgFetchFailed, nil)
}
