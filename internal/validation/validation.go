// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinUsernameLen and MaxUsernameLen bound account usernames.
	MinUsernameLen = 3
	MaxUsernameLen = 30
	// MaxEmailLen follows the practical RFC 5321 path limit.
	MaxEmailLen = 254
	// MinPasswordLen is the minimum accepted password length.
	MinPasswordLen = 8
	// MaxPasswordLen is bcrypt's input limit; bytes beyond 72 are
	// silently ignored by the hash, so longer passwords are rejected
	// instead of being truncated.
	MaxPasswordLen = 72
	// MaxPostContentLen bounds post content after whitespace trimming.
	MaxPostContentLen = 500
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateUsername checks length and character set of a username.
func ValidateUsername(username string) error {
	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}
	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username may only contain letters, digits and underscores")
	}
	return nil
}

// ValidateEmail performs a pragmatic format and length check. Full RFC 5322
// parsing is not attempted; the unique index is the real gatekeeper.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

// ValidatePassword checks password length bounds.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d bytes", MaxPasswordLen)
	}
	return nil
}

// TrimContent normalizes post content by stripping leading and trailing
// whitespace.
func TrimContent(content string) string {
	return strings.TrimSpace(content)
}

// ValidatePostContent checks an already-trimmed post content. An empty
// string is reported separately by the service layer as EMPTY_CONTENT.
func ValidatePostContent(content string) error {
	if utf8.RuneCountInString(content) > MaxPostContentLen {
		return fmt.Errorf("post content must not exceed %d characters", MaxPostContentLen)
	}
	return nil
}
