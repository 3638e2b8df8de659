package weather

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies relay failures for the HTTP boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfig
	KindUpstreamAuth
	KindUpstreamNotFound
	KindUpstreamTransport
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindUpstreamAuth:
		return "upstream_auth"
	case KindUpstreamNotFound:
		return "upstream_not_found"
	case KindUpstreamTransport:
		return "upstream_transport"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

var (
	ErrCredentialMissing  = errors.New("credential not configured")
	errIncompleteEnvelope = errors.New("empty current or forecast document")
)

// UpstreamError is a failed call to the weather provider.
// StatusCode is zero when no HTTP response was received.
type UpstreamError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s: upstream status %d: %s", e.Op, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: upstream status %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Kind() Kind {
	switch e.StatusCode {
	case 0:
		return KindUpstreamTransport
	case http.StatusUnauthorized:
		return KindUpstreamAuth
	case http.StatusNotFound:
		return KindUpstreamNotFound
	default:
		return KindUpstream
	}
}

// Classify maps any error returned by Service onto a Kind.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, ErrCredentialMissing) {
		return KindConfig
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Kind()
	}
	return KindUpstreamTransport
}

// Details is the human-readable detail for an error body: the provider's own message when it sent one,
// otherwise the error text.
func Details(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		if ue.Message != "" {
			return ue.Message
		}
		if ue.StatusCode != 0 {
			return fmt.Sprintf("Request failed with status code %d", ue.StatusCode)
		}
		if ue.Err != nil {
			return ue.Err.Error()
		}
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// PlaceholderAPIKey is the value shipped in the sample .env file; it counts as no credential.
const PlaceholderAPIKey = "your_openweathermap_api_key_here"

// KeyUsable reports whether key is a real provider credential.
func KeyUsable(key string) bool {
	return key != "" && key != PlaceholderAPIKey
}
