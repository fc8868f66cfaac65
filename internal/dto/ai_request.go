package dto

type AIQuestionRequest struct {
	Question string `json:"question"`
}
