// Package contact validates and submits the contact form.
package contact

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MsgInvalidEmail = "Please enter a valid email address"
	MsgSuccess      = "Message sent successfully!"
	MsgFailure      = "An error occurred. Please try again."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field identifies one form input.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldSubject
	FieldMessage
)

// Fields lists the inputs in tab order.
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldSubject:
		return "subject"
	case FieldMessage:
		return "message"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Form is one contact submission.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Get returns the value of f.
func (form Form) Get(f Field) string {
	switch f {
	case FieldName:
		return form.Name
	case FieldEmail:
		return form.Email
	case FieldSubject:
		return form.Subject
	case FieldMessage:
		return form.Message
	}
	return ""
}

// Set assigns the value of f.
func (form *Form) Set(f Field, value string) {
	switch f {
	case FieldName:
		form.Name = value
	case FieldEmail:
		form.Email = value
	case FieldSubject:
		form.Subject = value
	case FieldMessage:
		form.Message = value
	}
}

// ValidEmail reports whether email looks like an address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.ToLower(email))
}

// Validate returns user-facing messages, email format first, then one per
// blank field. A nil result means the form can be sent.
func (form Form) Validate() []string {
	var errs []string
	if !ValidEmail(form.Email) {
		errs = append(errs, MsgInvalidEmail)
	}
	for _, f := range Fields {
		if strings.TrimSpace(form.Get(f)) == "" {
			errs = append(errs, RequiredMessage(f))
		}
	}
	return errs
}

// RequiredMessage is the message shown for a blank field.
func RequiredMessage(f Field) string {
	return f.String() + " is required"
}
