package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// GenericMessage is shown when a failure carries no usable message.
const GenericMessage = "Something went wrong!"

// Category classifies a RemoteError.
type Category string

const (
	CategoryTransport  Category = "transport"
	CategoryBadRequest Category = "bad_request"
	CategoryNotFound   Category = "not_found"
	CategoryValidation Category = "validation"
	CategoryClient     Category = "client"
	CategoryServer     Category = "server"
	CategoryDecode     Category = "decode"
)

// RemoteError is returned by every failed registry call.
type RemoteError struct {
	Category   Category
	StatusCode int
	// Message is safe to show to the user.
	Message string
	// Err is the underlying transport or decode error, if any.
	Err error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("registry %s (status %d): %s", e.Category, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("registry %s: %s: %v", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("registry %s: %s", e.Category, e.Message)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Message returns the user-facing text for err: the RemoteError message when
// err is one, else GenericMessage.
func Message(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	return GenericMessage
}

// IsNotFound reports whether err is a 404 from the registry.
func IsNotFound(err error) bool {
	var remote *RemoteError
	return errors.As(err, &remote) && remote.Category == CategoryNotFound
}

// CategoryForStatus maps a non-2xx status code to a Category.
func CategoryForStatus(status int) Category {
	switch {
	case status == http.StatusBadRequest:
		return CategoryBadRequest
	case status == http.StatusNotFound:
		return CategoryNotFound
	case status == http.StatusUnprocessableEntity:
		return CategoryValidation
	case status >= 400 && status < 500:
		return CategoryClient
	default:
		return CategoryServer
	}
}

// ExtractMessage pulls a user-facing message out of an error body. It prefers
// a string "detail", then a string "message", else GenericMessage.
func ExtractMessage(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return GenericMessage
	}
	for _, key := range []string{"detail", "message"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return GenericMessage
}

func newStatusError(status int, body []byte) *RemoteError {
	return &RemoteError{
		Category:   CategoryForStatus(status),
		StatusCode: status,
		Message:    ExtractMessage(body),
	}
}
