package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Field predicates shared by every context. Each predicate is pure and
// total: malformed input fails the check, it never panics.

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100

	maxEmailLength    = 150
	minPasswordLength = 8
	maxImageURLLength = 1024
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namePattern      = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	uuidPattern      = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	digitPattern     = regexp.MustCompile(`[0-9]`)
)

// FieldError reports which input field failed and why. It is the
// validation branch of the error taxonomy and maps to HTTP 400.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewFieldError(field string, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

func ValidEmail(email string) bool {
	return len(email) <= maxEmailLength && emailPattern.MatchString(email)
}

// ValidPassword requires at least 8 characters, one uppercase letter and
// one digit.
func ValidPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}
	if !uppercasePattern.MatchString(password) {
		return false
	}
	return digitPattern.MatchString(password)
}

func ValidName(name string) bool {
	if len(name) < 2 || len(name) > 100 {
		return false
	}
	return namePattern.MatchString(name)
}

func ValidUUID(id string) bool {
	return uuidPattern.MatchString(strings.ToLower(id))
}

func ValidTitle(title string) bool {
	trimmed := strings.TrimSpace(title)
	return len(trimmed) >= 3 && len(trimmed) <= 200
}

func ValidContent(content string) bool {
	trimmed := strings.TrimSpace(content)
	return len(trimmed) >= 10 && len(trimmed) <= 5000
}

func ValidCommentContent(content string) bool {
	trimmed := strings.TrimSpace(content)
	return len(trimmed) >= 1 && len(trimmed) <= 1000
}

// ValidImageURL accepts the empty string: the field is optional.
func ValidImageURL(raw string) bool {
	if raw == "" {
		return true
	}
	if len(raw) > maxImageURLLength {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

func ValidStatus(status string) bool {
	return status == "active" || status == "suspended"
}

func ValidRole(role string) bool {
	switch role {
	case "user", "creator", "admin":
		return true
	default:
		return false
	}
}

// Page is a validated pagination window.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage validates raw query values. Empty strings take the defaults;
// out-of-range values are rejected rather than clamped.
func ParsePage(limitRaw string, offsetRaw string) (Page, error) {
	page := Page{Limit: DefaultPageLimit, Offset: 0}

	if strings.TrimSpace(limitRaw) != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(limitRaw))
		if err != nil {
			return Page{}, NewFieldError("limit", "must be an integer")
		}
		page.Limit = limit
	}
	if strings.TrimSpace(offsetRaw) != "" {
		offset, err := strconv.Atoi(strings.TrimSpace(offsetRaw))
		if err != nil {
			return Page{}, NewFieldError("offset", "must be an integer")
		}
		page.Offset = offset
	}

	if page.Limit < 1 || page.Limit > MaxPageLimit {
		return Page{}, NewFieldError("limit", "must be between 1 and 100")
	}
	if page.Offset < 0 {
		return Page{}, NewFieldError("offset", "must be >= 0")
	}
	return page, nil
}
