package util

import (
	"cinex_api/model"
	"regexp"
	"strings"

	"github.com/badoux/checkmail"
)

var digitRegex = regexp.MustCompile(`\d`)

// NormalizeEmail trims and lowercases so lookups and the unique index
// agree on one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateName(name string, errs []string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, "Name is required.")
	}
	if len(name) < 2 || len(name) > 50 {
		return append(errs, "Name must be between 2 and 50 characters.")
	}
	return errs
}

func validateEmail(email string, errs []string) []string {
	email = NormalizeEmail(email)
	if email == "" {
		return append(errs, "Email is required.")
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return append(errs, "Please provide a valid email address.")
	}
	return errs
}

func ValidateSignup(req *model.SignupReq) []string {
	var errs []string

	errs = validateName(req.Name, errs)
	errs = validateEmail(req.Email, errs)

	if req.Password == "" {
		errs = append(errs, "Password is required.")
	} else {
		if len(req.Password) < 6 {
			errs = append(errs, "Password must be at least 6 characters.")
		}
		if !digitRegex.MatchString(req.Password) {
			errs = append(errs, "Password must contain at least one number.")
		}
	}

	return errs
}

func ValidateLogin(req *model.LoginReq) []string {
	var errs []string

	errs = validateEmail(req.Email, errs)

	if req.Password == "" {
		errs = append(errs, "Password is required.")
	}

	return errs
}

func ValidateProfileUpdate(req *model.UpdateProfileReq) []string {
	var errs []string
	return validateName(req.Name, errs)
}

func ValidateWatchlistAdd(req *model.AddWatchlistReq) []string {
	var errs []string

	if req.MediaId <= 0 {
		errs = append(errs, "mediaId is required.")
	}
	if req.MediaType == "" {
		errs = append(errs, "mediaType is required.")
	} else if req.MediaType != model.MediaTypeMovie && req.MediaType != model.MediaTypeTv {
		errs = append(errs, "mediaType must be \"movie\" or \"tv\".")
	}
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "title is required.")
	}

	return errs
}
