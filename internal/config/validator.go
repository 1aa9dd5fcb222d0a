package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration's declared constraints
func Validate(config *Config) error {
	if err := validate.Struct(config); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			var msgs []string
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LookupEnvironment returns the named environment
func LookupEnvironment(config *Config, name string) (Environment, error) {
	env, ok := config.Environments[name]
	if !ok {
		return Environment{}, fmt.Errorf("environment not found: %s", name)
	}
	return env, nil
}

// LookupRequest returns the named request
func LookupRequest(config *Config, name string) (Request, error) {
	req, ok := config.Requests[name]
	if !ok {
		return Request{}, fmt.Errorf("request not found: %s", name)
	}
	return req, nil
}

// ResolveURL joins a request URL with the environment base URL. Absolute
// request URLs win over the base.
func ResolveURL(env Environment, reqURL string) string {
	if strings.HasPrefix(reqURL, "http://") || strings.HasPrefix(reqURL, "https://") {
		return reqURL
	}
	base := strings.TrimRight(env.BaseURL, "/")
	if !strings.HasPrefix(reqURL, "/") {
		reqURL = "/" + reqURL
	}
	return base + reqURL
}
