package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic/decoder"
)

var (
	ErrNoCandidates = errors.New("response has no candidates")
	ErrEmptyContent = errors.New("first candidate has no content parts")
)

// DecodeStage names which of the two decode passes failed.
type DecodeStage string

const (
	// StageEnvelope is the outer generateContent response.
	StageEnvelope DecodeStage = "envelope"
	// StageContent is the JSON document carried as text inside the envelope.
	StageContent DecodeStage = "content"
)

// TransportError means no usable HTTP response arrived: network failure,
// timeout, cancellation, or a call refused by the circuit breaker.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to Gemini failed: %s", redactError(e.Err))
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError means the upstream answered with a non-2xx status.
// Body holds the upstream's error payload for server-side logging.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Gemini returned status %d", e.StatusCode)
}

// Retryable reports whether the status points at upstream trouble rather
// than a problem with our request.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// DecodeError means a 2xx response could not be decoded at one stage.
type DecodeError struct {
	Stage DecodeStage
	Err   error
}

func (e *DecodeError) Error() string {
	switch e.Stage {
	case StageEnvelope:
		return "decode response envelope: " + describeDecodeErr(e.Err)
	default:
		return "decode generated content: " + describeDecodeErr(e.Err)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

// describeDecodeErr renders a decode failure on one line. sonic's native
// SyntaxError prints as a quoted multi-line excerpt of the input.
func describeDecodeErr(err error) string {
	var syntaxErr decoder.SyntaxError
	var syntaxPtr *decoder.SyntaxError
	var stdErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		return "invalid JSON: " + firstLine(syntaxErr.Description())
	case errors.As(err, &syntaxPtr) && syntaxPtr != nil:
		return "invalid JSON: " + firstLine(syntaxPtr.Description())
	case errors.As(err, &stdErr):
		return fmt.Sprintf("invalid JSON: syntax error at index %d: %s", stdErr.Offset, firstLine(stdErr.Error()))
	default:
		return firstLine(err.Error())
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}

// redactError renders err with the API key stripped from any request URL.
func redactError(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Sprintf("%s %q: %v", urlErr.Op, redactURL(urlErr.URL), urlErr.Err)
	}
	return err.Error()
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable url>"
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
