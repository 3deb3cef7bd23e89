package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Auth fields
	"Username":        "Username",
	"Password":        "Password",
	"Email":           "Email",
	"FullName":        "Full name",
	"UserType":        "Account type",

	// Profile fields
	"Headline":     "Headline",
	"Bio":          "Bio",
	"Location":     "Location",
	"ProfileImage": "Profile image",
	"CompanyName":  "Company name",
	"CompanyLogo":  "Company logo",
	"Skills":       "Skills",
	"ResumeURL":    "Resume URL",

	// Video fields
	"Title":        "Title",
	"Description":  "Description",
	"VideoURL":     "Video URL",
	"ThumbnailURL": "Thumbnail URL",
	"VideoType":    "Video type",
	"Salary":       "Salary",
	"JobType":      "Job type",
	"Duration":     "Duration",

	// Application / messaging fields
	"JobVideoID":  "Job video",
	"UserVideoID": "Resume video",
	"Status":      "Status",
	"Note":        "Note",
	"ReceiverID":  "Receiver",
	"Content":     "Content",
	"VideoID":     "Video",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))
	case "valid_name":
		return fmt.Sprintf("%s contains invalid characters", label)
	case "valid_username":
		return fmt.Sprintf("%s must be 3-30 lowercase letters, digits, dots, underscores or hyphens", label)
	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
