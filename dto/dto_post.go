package dto

type CreatePostRequest struct {
	Text string `json:"text"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}
