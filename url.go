package notionmark

import (
	"errors"
	"net/url"
	"strings"
)

// ValidateURL reports whether value is a fully-qualified URL.
// It returns EINVALID with "URL is required" for an empty value and
// "Invalid URL" when the value has no scheme or host or cannot be parsed.
func ValidateURL(value string) error {
	if value == "" {
		return Errorf(EINVALID, "URL is required")
	}
	u, err := url.Parse(value)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return Errorf(EINVALID, "Invalid URL: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "Invalid URL")
	}
	return nil
}

// Origin returns the scheme://host part of rawURL.
// The host is lowercased and the scheme's default port is dropped.
func Origin(rawURL string) (string, error) {
	if err := ValidateURL(rawURL); err != nil {
		return "", err
	}
	u, _ := url.Parse(rawURL)

	host := strings.ToLower(u.Host)
	switch {
	case u.Scheme == "http" && strings.HasSuffix(host, ":80"):
		host = strings.TrimSuffix(host, ":80")
	case u.Scheme == "https" && strings.HasSuffix(host, ":443"):
		host = strings.TrimSuffix(host, ":443")
	}
	return u.Scheme + "://" + host, nil
}
