package rest

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/vickylk-dev/task-manager-tool/core"
)

// Presentation-level validation: the rules enforced at the form
// boundary before anything reaches a store.

const (
	TitleMinLen       = 3
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
	PasswordMinLen    = 6
	AttachmentMaxSize = 5 * 1024 * 1024 // decoded source bytes
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateCredentials checks the login/signup form. The returned map
// is empty when the form is valid.
func ValidateCredentials(in CredentialsIn) map[string]string {
	errs := map[string]string{}

	if in.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(in.Email) {
		errs["email"] = "Enter a valid email"
	}

	if in.Password == "" {
		errs["password"] = "Password is required"
	} else if len(in.Password) < PasswordMinLen {
		errs["password"] = fmt.Sprintf("Minimum %d characters", PasswordMinLen)
	}

	return errs
}

// ValidateTitle returns a message for an invalid title, "" otherwise.
// Length limits apply to the trimmed value.
func ValidateTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	switch {
	case trimmed == "":
		return "Task title is required"
	case len([]rune(trimmed)) < TitleMinLen:
		return fmt.Sprintf("Title must be at least %d characters long", TitleMinLen)
	case len([]rune(trimmed)) > TitleMaxLen:
		return fmt.Sprintf("Title must not exceed %d characters", TitleMaxLen)
	}
	return ""
}

func ValidateDescription(description string) string {
	if len([]rune(description)) > DescriptionMaxLen {
		return fmt.Sprintf("Description must not exceed %d characters", DescriptionMaxLen)
	}
	return ""
}

// ValidateAttachment checks name, payload presence and the decoded
// source size limit.
func ValidateAttachment(in *AttachmentIn) string {
	if in == nil {
		return ""
	}
	if strings.TrimSpace(in.Name) == "" {
		return "Attachment name is required"
	}
	if in.InlineData == "" {
		return "Attachment content is missing"
	}
	data, err := base64.StdEncoding.DecodeString(in.InlineData)
	if err != nil {
		return "Attachment content is not valid base64"
	}
	if len(data) > AttachmentMaxSize {
		return "Attachment must not exceed 5 MB"
	}
	return ""
}

func ParseStatus(s string) (core.TaskStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return core.StatusPending, true
	case "completed":
		return core.StatusCompleted, true
	default:
		return "", false
	}
}

func ParseCategory(s string) (core.TaskCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "work":
		return core.CategoryWork, true
	case "personal":
		return core.CategoryPersonal, true
	case "urgent":
		return core.CategoryUrgent, true
	default:
		return "", false
	}
}
