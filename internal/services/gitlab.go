package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mxcd/gtlb-api/internal/models"
)

// GitLabServiceInterface defines the interface for GitLab API operations
type GitLabServiceInterface interface {
	ProjectURL(identifier string) (string, error)
	GetProject(identifier string) (*models.Project, error)
	GetBranches(identifier string) ([]models.Branch, error)
	BranchExists(projectID int, branch string) (bool, error)
	FileExists(projectID int, branch, filePath string) (bool, error)
	PostCommit(projectID int, payload any) (bool, error)
	PostSnippetCommit(snippetID int, payload any) (bool, error)
	GetRawFile(identifier, filePath, branch string) ([]byte, error)
	GetVersion() (*models.Version, error)
}

// GitLabService handles GitLab API interactions. Its configuration is
// immutable after construction; concurrent use is safe.
type GitLabService struct {
	baseURL string
	apiRoot string
	token   string
	client  *http.Client
	log     *zap.SugaredLogger
}

// NewGitLabService creates a new GitLabService. The base URL is normalized
// (https enforced, no trailing slash) and the API root is derived from it.
// With verbose enabled every request logs its method and URL before being
// issued.
func NewGitLabService(baseURL, token string, verbose bool) GitLabServiceInterface {
	logger := zap.NewNop()
	if verbose {
		logger, _ = zap.NewDevelopment()
	}

	base := NormalizeBaseURL(baseURL)

	return &GitLabService{
		baseURL: base,
		apiRoot: base + "/api/v4",
		token:   token,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: logger.Sugar(),
	}
}

// ProjectURL builds the API URL for a project. A numeric identifier maps to
// /projects/{id}, anything else to /projects/{url-encoded path}.
func (g *GitLabService) ProjectURL(identifier string) (string, error) {
	resolved, err := ResolveIdentifier(g.baseURL, identifier)
	if err != nil {
		return "", err
	}

	if resolved.Kind == models.IdentifierID {
		return fmt.Sprintf("%s/projects/%d", g.apiRoot, resolved.ID), nil
	}

	return fmt.Sprintf("%s/projects/%s", g.apiRoot, url.PathEscape(resolved.Path)), nil
}

// GetProject fetches a project by ID, path or URL
func (g *GitLabService) GetProject(identifier string) (*models.Project, error) {
	projectURL, err := g.ProjectURL(identifier)
	if err != nil {
		return nil, err
	}

	resp, err := g.doRequest("GET", projectURL, nil, "")
	if err != nil {
		return nil, apiError("get project", identifier, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, apiError("get project", identifier, unexpectedStatus(resp))
	}

	var project models.Project
	if err := json.NewDecoder(resp.Body).Decode(&project); err != nil {
		return nil, apiError("get project", identifier, fmt.Errorf("failed to decode project: %w", err))
	}

	return &project, nil
}

// GetBranches fetches the branches of a project
func (g *GitLabService) GetBranches(identifier string) ([]models.Branch, error) {
	projectURL, err := g.ProjectURL(identifier)
	if err != nil {
		return nil, err
	}

	resp, err := g.doRequest("GET", projectURL+"/repository/branches", nil, "")
	if err != nil {
		return nil, apiError("get branches", identifier, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, apiError("get branches", identifier, unexpectedStatus(resp))
	}

	var branches []models.Branch
	if err := json.NewDecoder(resp.Body).Decode(&branches); err != nil {
		return nil, apiError("get branches", identifier, fmt.Errorf("failed to decode branches: %w", err))
	}

	return branches, nil
}

// BranchExists reports whether the given branch exists in the project.
// A 404 response means "no" rather than an error; any other failure is
// surfaced as an *APIError.
func (g *GitLabService) BranchExists(projectID int, branch string) (bool, error) {
	reqURL := fmt.Sprintf("%s/projects/%d/repository/branches/%s", g.apiRoot, projectID, url.PathEscape(branch))

	resp, err := g.doRequest("GET", reqURL, nil, "")
	if err != nil {
		return false, apiError("check branch", branch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if !isSuccess(resp.StatusCode) {
		return false, apiError("check branch", branch, unexpectedStatus(resp))
	}

	return resp.StatusCode == http.StatusOK, nil
}

// FileExists reports whether the given file exists on a branch. Leading and
// trailing slashes are stripped from the file path before encoding. Same 404
// policy as BranchExists.
func (g *GitLabService) FileExists(projectID int, branch, filePath string) (bool, error) {
	encodedPath := url.PathEscape(strings.Trim(filePath, "/"))
	reqURL := fmt.Sprintf("%s/projects/%d/repository/files/%s?ref=%s", g.apiRoot, projectID, encodedPath, url.QueryEscape(branch))

	resp, err := g.doRequest("GET", reqURL, nil, "")
	if err != nil {
		return false, apiError("check file", filePath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if !isSuccess(resp.StatusCode) {
		return false, apiError("check file", filePath, unexpectedStatus(resp))
	}

	return resp.StatusCode == http.StatusOK, nil
}

// PostCommit submits a commit to the project. The payload is marshalled to
// JSON and passed through unvalidated. It returns true only for status 201;
// another success status yields false, so callers must check the boolean.
func (g *GitLabService) PostCommit(projectID int, payload any) (bool, error) {
	reqURL := fmt.Sprintf("%s/projects/%d/repository/commits", g.apiRoot, projectID)
	return g.postJSON("post commit", "POST", reqURL, fmt.Sprintf("project %d", projectID), payload)
}

// PostSnippetCommit updates a snippet. Same 201-boolean contract as
// PostCommit.
func (g *GitLabService) PostSnippetCommit(snippetID int, payload any) (bool, error) {
	reqURL := fmt.Sprintf("%s/snippets/%d", g.apiRoot, snippetID)
	return g.postJSON("post snippet commit", "PUT", reqURL, fmt.Sprintf("snippet %d", snippetID), payload)
}

// postJSON sends a JSON body and reports whether the API answered 201
func (g *GitLabService) postJSON(op, method, reqURL, ref string, payload any) (bool, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return false, apiError(op, ref, fmt.Errorf("failed to encode payload: %w", err))
	}

	resp, err := g.doRequest(method, reqURL, bytes.NewReader(data), "application/json")
	if err != nil {
		return false, apiError(op, ref, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return false, apiError(op, ref, unexpectedStatus(resp))
	}

	return resp.StatusCode == http.StatusCreated, nil
}

// GetRawFile fetches the raw content of a file. An empty branch first
// resolves the project's default branch via GetProject. A 200 response
// returns the body; any other success status returns nil content.
func (g *GitLabService) GetRawFile(identifier, filePath, branch string) ([]byte, error) {
	if branch == "" {
		project, err := g.GetProject(identifier)
		if err != nil {
			return nil, err
		}
		branch = project.DefaultBranch
	}

	projectURL, err := g.ProjectURL(identifier)
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/repository/files/%s/raw?ref=%s", projectURL, url.PathEscape(filePath), url.QueryEscape(branch))

	resp, err := g.doRequest("GET", reqURL, nil, "")
	if err != nil {
		return nil, apiError("get raw file", filePath, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, apiError("get raw file", filePath, unexpectedStatus(resp))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apiError("get raw file", filePath, fmt.Errorf("failed to read response: %w", err))
	}

	return data, nil
}

// GetVersion fetches the GitLab instance version. A success status other
// than 200 yields a nil version.
func (g *GitLabService) GetVersion() (*models.Version, error) {
	resp, err := g.doRequest("GET", g.apiRoot+"/version", nil, "")
	if err != nil {
		return nil, apiError("get version", "", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, apiError("get version", "", unexpectedStatus(resp))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var version models.Version
	if err := json.NewDecoder(resp.Body).Decode(&version); err != nil {
		return nil, apiError("get version", "", fmt.Errorf("failed to decode version: %w", err))
	}

	return &version, nil
}

// doRequest performs an HTTP request
func (g *GitLabService) doRequest(method, reqURL string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequest(method, reqURL, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("PRIVATE-TOKEN", g.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	g.log.Debugf("%s %s", method, reqURL)

	return g.client.Do(req)
}

// isSuccess reports whether the status code is in the 2xx range
func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
