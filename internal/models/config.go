package models

// Config represents a named GitLab host configuration
type Config struct {
	Name    string `json:"name"`     // Custom display name
	BaseURL string `json:"base_url"` // GitLab base URL (https://gitlab.company.com)
	Token   string `json:"token"`    // GitLab personal access token
}

// ConfigFile represents the configuration file structure
type ConfigFile struct {
	Configs []Config `json:"configs"`
}
