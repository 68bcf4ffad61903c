package models

// Speaker attributes a chat turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// ChatTurn is one message of an in-memory transcript. Turns are never persisted.
type ChatTurn struct {
	Speaker Speaker
	Text    string
}
