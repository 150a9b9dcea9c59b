package dto

type ErrorResponse struct {
	Msg string `json:"msg"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}
