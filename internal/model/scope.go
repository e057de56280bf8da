package model

// Source identifies the surface a request came through.
type Source string

const (
	SourceTelegram Source = "telegram"
	SourceHTTP     Source = "http"
	SourceCLI      Source = "cli"
)

// Scope carries who asked for an operation.
type Scope struct {
	UserID   string
	Username string
	Source   Source
}
