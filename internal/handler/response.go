package handler

type errorPayload struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, detail string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:   code,
			Detail: detail,
		},
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
