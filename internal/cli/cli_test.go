package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{
		"project", "branches", "branch-exists", "file-exists",
		"commit", "snippet-commit", "raw", "version", "config",
	}

	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestNewService_RequiresBaseURL(t *testing.T) {
	t.Setenv("GITLAB_TOKEN", "")
	t.Setenv("GTLB_TOKEN", "")

	_, err := newService(&rootOptions{})
	if err == nil {
		t.Fatal("expected an error without a base URL")
	}
}

func TestTokenFromEnv_Priority(t *testing.T) {
	t.Setenv("GITLAB_TOKEN", "primary")
	t.Setenv("GTLB_TOKEN", "secondary")

	if got := tokenFromEnv(); got != "primary" {
		t.Errorf("tokenFromEnv() = %q, want %q", got, "primary")
	}

	t.Setenv("GITLAB_TOKEN", "")
	if got := tokenFromEnv(); got != "secondary" {
		t.Errorf("tokenFromEnv() = %q, want %q", got, "secondary")
	}
}

func TestReadPayload(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "payload.json")
	if err := os.WriteFile(valid, []byte(`{"branch":"main","actions":[]}`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := readPayload(valid); err != nil {
		t.Errorf("readPayload(valid): unexpected error: %v", err)
	}

	invalid := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(invalid, []byte(`{not json`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := readPayload(invalid); err == nil {
		t.Error("readPayload(invalid): expected an error")
	}

	if _, err := readPayload(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("readPayload(missing): expected an error")
	}
}
