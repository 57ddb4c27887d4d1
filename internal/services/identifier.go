package services

import (
	"strconv"
	"strings"

	"github.com/mxcd/gtlb-api/internal/models"
)

// NormalizeBaseURL normalizes a GitLab base URL: the scheme is upgraded to
// https (and prepended if absent) and trailing slashes are removed.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimRight(baseURL, "/")

	switch {
	case strings.HasPrefix(baseURL, "https://"):
		// Already normalized
	case strings.HasPrefix(baseURL, "http://"):
		baseURL = "https://" + strings.TrimPrefix(baseURL, "http://")
	default:
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// ResolveIdentifier resolves a caller-supplied project reference against the
// given base URL. An integer-valued string becomes the numeric-ID variant.
// Any other string becomes the path variant: if it starts with the base URL
// that prefix is stripped first, and leading/trailing slashes are trimmed.
func ResolveIdentifier(baseURL, identifier string) (models.ProjectIdentifier, error) {
	if identifier == "" {
		return models.ProjectIdentifier{}, ErrInvalidIdentifier
	}

	if id, err := strconv.Atoi(identifier); err == nil {
		return models.ProjectIdentifier{Kind: models.IdentifierID, ID: id}, nil
	}

	path := identifier
	if baseURL != "" && strings.HasPrefix(path, baseURL) {
		path = strings.TrimPrefix(path, baseURL)
	}
	path = strings.Trim(path, "/")

	if path == "" {
		return models.ProjectIdentifier{}, ErrInvalidIdentifier
	}

	return models.ProjectIdentifier{Kind: models.IdentifierPath, Path: path}, nil
}
