// Package validate checks request bodies before any service logic runs and
// reports failures as a typed list of field errors.
package validate

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/bookmarkd/bookmarkd-go/internal/model"
)

// MinPasswordLength is the minimum accepted password length on signup.
const MinPasswordLength = 8

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is a non-empty list of field errors. It implements error so services
// can return it alongside their sentinel errors.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + " " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Signup validates a signup request. Returns nil when the request is valid.
func Signup(req model.SignupRequest) error {
	var errs Errors
	errs = appendEmailErrors(errs, req.Email)
	switch {
	case req.Password == "":
		errs = append(errs, FieldError{"password", "is required"})
	case len(req.Password) < MinPasswordLength:
		errs = append(errs, FieldError{"password", "must be at least 8 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Signin validates a signin request: both fields must be present. Credential
// correctness is the auth service's concern.
func Signin(req model.SigninRequest) error {
	var errs Errors
	if req.Email == "" {
		errs = append(errs, FieldError{"email", "is required"})
	}
	if req.Password == "" {
		errs = append(errs, FieldError{"password", "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditUser validates a partial profile update. Absent fields pass; a present
// email must still be well-formed and non-empty.
func EditUser(req model.EditUserRequest) error {
	var errs Errors
	if req.Email != nil {
		errs = appendEmailErrors(errs, *req.Email)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateBookmark validates a bookmark creation request.
func CreateBookmark(req model.CreateBookmarkRequest) error {
	var errs Errors
	if req.Title == "" {
		errs = append(errs, FieldError{"title", "is required"})
	}
	errs = appendLinkErrors(errs, req.Link)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditBookmark validates a partial bookmark update.
func EditBookmark(req model.EditBookmarkRequest) error {
	var errs Errors
	if req.Title != nil && *req.Title == "" {
		errs = append(errs, FieldError{"title", "must not be empty"})
	}
	if req.Link != nil {
		errs = appendLinkErrors(errs, *req.Link)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func appendEmailErrors(errs Errors, email string) Errors {
	if email == "" {
		return append(errs, FieldError{"email", "is required"})
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return append(errs, FieldError{"email", "must be a valid email address"})
	}
	return errs
}

func appendLinkErrors(errs Errors, link string) Errors {
	if link == "" {
		return append(errs, FieldError{"link", "is required"})
	}
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return append(errs, FieldError{"link", "must be an absolute http(s) URL"})
	}
	return errs
}
