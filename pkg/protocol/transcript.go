package protocol

// TranscriptRecord is one chat bubble: a role for layout ("user" or
// "assistant"), the household speaker it is attributed to, and the text.
// Both live workflow replies and scripted replay turns use this shape.
type TranscriptRecord struct {
	Role    string `json:"role"`
	Speaker string `json:"speaker"`
	Content string `json:"content"`
}
