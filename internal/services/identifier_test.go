package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxcd/gtlb-api/internal/models"
)

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "https://example.com", "https://example.com"},
		{"trailing slash", "https://example.com/", "https://example.com"},
		{"http upgraded", "http://example.com/", "https://example.com"},
		{"scheme prepended", "example.com", "https://example.com"},
		{"host with port", "http://gitlab.local:8080", "https://gitlab.local:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBaseURL(tt.input))
		})
	}
}

func TestResolveIdentifier(t *testing.T) {
	t.Parallel()

	const baseURL = "https://example.com"

	tests := []struct {
		name       string
		identifier string
		want       models.ProjectIdentifier
	}{
		{
			name:       "numeric string becomes ID",
			identifier: "42",
			want:       models.ProjectIdentifier{Kind: models.IdentifierID, ID: 42},
		},
		{
			name:       "plain path",
			identifier: "group/proj",
			want:       models.ProjectIdentifier{Kind: models.IdentifierPath, Path: "group/proj"},
		},
		{
			name:       "path with surrounding slashes trimmed",
			identifier: "/group/proj/",
			want:       models.ProjectIdentifier{Kind: models.IdentifierPath, Path: "group/proj"},
		},
		{
			name:       "project URL has base prefix stripped",
			identifier: baseURL + "/group/proj/",
			want:       models.ProjectIdentifier{Kind: models.IdentifierPath, Path: "group/proj"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveIdentifier(baseURL, tt.identifier)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveIdentifier_Invalid(t *testing.T) {
	t.Parallel()

	for _, identifier := range []string{"", "/", "https://example.com/"} {
		_, err := ResolveIdentifier("https://example.com", identifier)
		assert.ErrorIs(t, err, ErrInvalidIdentifier, "identifier %q", identifier)
	}
}

func TestProjectURL(t *testing.T) {
	t.Parallel()

	g := &GitLabService{
		baseURL: "https://example.com",
		apiRoot: "https://example.com/api/v4",
	}

	got, err := g.ProjectURL("42")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/v4/projects/42", got)

	got, err = g.ProjectURL("a/b c")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/v4/projects/a%2Fb%20c", got)

	got, err = g.ProjectURL("https://example.com/group/proj/")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/v4/projects/group%2Fproj", got)

	_, err = g.ProjectURL("")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}
