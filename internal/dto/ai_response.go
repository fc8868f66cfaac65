package dto

// AIAnswerResponse is the body of every /api/ai response, success or failure.
type AIAnswerResponse struct {
	Answer string `json:"answer"`
}

const (
	AnswerMissingQuestion  = "Please provide a question in your request."
	AnswerInvalidJSON      = "Invalid JSON in request body"
	AnswerLLMErrorPrefix   = "Error communicating with OpenAI API: "
	AnswerUnexpectedPrefix = "An unexpected error occurred: "
)
