package auth

import (
	"regexp"
	"strings"
)

// dangerousChars would let form input escape into markup or parameter
// strings; they are rejected outright rather than escaped.
const dangerousChars = `<>'"&`

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateLogin(username, password string) *ValidationError {
	var v []string
	if len(username) < 3 {
		v = append(v, "username must be at least 3 characters")
	}
	if strings.ContainsAny(username, dangerousChars) {
		v = append(v, "username contains forbidden characters")
	}
	if len(password) < 6 {
		v = append(v, "password must be at least 6 characters")
	}
	if strings.ContainsAny(password, dangerousChars) {
		v = append(v, "password contains forbidden characters")
	}
	if len(v) > 0 {
		return &ValidationError{Violations: v}
	}
	return nil
}

func validateRegistration(in RegisterInput) *ValidationError {
	var v []string
	if len(in.Username) < 3 {
		v = append(v, "username must be at least 3 characters")
	}
	if strings.ContainsAny(in.Username, dangerousChars) {
		v = append(v, "username contains forbidden characters")
	}
	if !emailPattern.MatchString(in.Email) {
		v = append(v, "email address is not valid")
	}
	if len(in.Password) < 6 {
		v = append(v, "password must be at least 6 characters")
	}
	if strings.ContainsAny(in.Password, dangerousChars) {
		v = append(v, "password contains forbidden characters")
	}
	if in.Password != in.Confirm {
		v = append(v, "passwords do not match")
	}
	if len(v) > 0 {
		return &ValidationError{Violations: v}
	}
	return nil
}
