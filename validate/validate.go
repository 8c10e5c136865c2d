package validate

import (
	"log"
	"os"
	"regexp"
	"strings"
	"sync"

	"creamery/models"
)

// FieldError reports exactly which field failed and why, so callers can
// surface the reason inline.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return e.Reason }

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultPhonePattern is the lenient international format. The strict
// local variant (^05\d{8}$) can be selected via the PHONE_PATTERN env
// var; the historical server snapshots disagree, so the rule is
// configuration, not code.
const DefaultPhonePattern = `^\+?\d{9,12}$`

// Compiled on first use rather than at package init, so a PHONE_PATTERN
// set via .env is seen regardless of package initialization order.
var phoneRe = sync.OnceValue(compilePhonePattern)

func compilePhonePattern() *regexp.Regexp {
	pattern := os.Getenv("PHONE_PATTERN")
	if pattern == "" {
		pattern = DefaultPhonePattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		log.Printf("Invalid PHONE_PATTERN %q, falling back to default: %v", pattern, err)
		return regexp.MustCompile(DefaultPhonePattern)
	}
	return re
}

// Email reports whether s looks like a deliverable address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Phone checks s against the configured phone pattern.
func Phone(s string) bool {
	return phoneRe().MatchString(s)
}

// Customer checks the mandatory checkout contact fields. Zip and notes
// are optional.
func Customer(c models.Customer) *FieldError {
	fullName := strings.TrimSpace(c.FullName)
	phone := strings.TrimSpace(c.Phone)
	email := strings.TrimSpace(c.Email)
	city := strings.TrimSpace(c.City)
	address := strings.TrimSpace(c.Address)

	if fullName == "" || phone == "" || email == "" || city == "" || address == "" {
		return &FieldError{Field: "customer", Reason: "Please fill in all required fields (*)."}
	}
	if len(strings.Fields(fullName)) < 2 {
		return &FieldError{Field: "full_name", Reason: "Please enter full name (first and last)."}
	}
	if !Phone(phone) {
		return &FieldError{Field: "phone", Reason: "Please enter a valid phone number."}
	}
	if !Email(email) {
		return &FieldError{Field: "email", Reason: "Please enter a valid email address."}
	}
	return nil
}
