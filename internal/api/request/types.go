package request

// CreateSessionRequest is the request body for creating a session
type CreateSessionRequest struct {
	Language string `json:"language"`
	Size     int    `json:"size,omitempty"`
}

// SubmitWordRequest is the request body for submitting a word
type SubmitWordRequest struct {
	Word string `json:"word"`
}
