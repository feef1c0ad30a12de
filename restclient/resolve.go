package restclient

import "strings"

// resolvePath turns a relative path into an absolute URL. Paths that
// already carry a scheme prefix pass through untouched so callers can
// bypass the base URL. Concatenation is literal: duplicate slashes are
// not normalized, the caller owns path formatting.
func resolvePath(baseURL, path string) (string, error) {
	if path == "" {
		return "", NewInvalidPathError("request path is required")
	}
	if strings.HasPrefix(path, "http") {
		return path, nil
	}
	return baseURL + path, nil
}
