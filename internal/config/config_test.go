package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func projectDir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("failed to create project dir: %v", err)
	}
	return dir
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if Exists(dir) {
		t.Error("expected Exists to be false for empty dir")
	}

	writeConfig(t, dir, `{}`)
	if !Exists(dir) {
		t.Error("expected Exists to be true after writing config")
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrConfigMissing) {
		t.Fatalf("expected ErrConfigMissing, got: %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name": "myapp",`)

	_, err := Load(dir)
	if !errors.Is(err, ErrConfigParse) {
		t.Fatalf("expected ErrConfigParse, got: %v", err)
	}
}

func TestLoad_Full(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
	"name": "shop",
	"shell": "/bin/sh -l",
	"cloudpush": {
		"username": "deploy",
		"address": "1.2.3.4"
	}
}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "shop" {
		t.Errorf("expected name 'shop', got %q", cfg.Name)
	}
	if cfg.Shell != "/bin/sh -l" {
		t.Errorf("expected shell '/bin/sh -l', got %q", cfg.Shell)
	}
	if cfg.CloudPush == nil {
		t.Fatal("expected cloudpush section")
	}
	if cfg.CloudPush.Username != "deploy" || cfg.CloudPush.Address != "1.2.3.4" {
		t.Errorf("unexpected cloudpush: %+v", *cfg.CloudPush)
	}
}

func TestLoad_NoCloudPush(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name": "shop"}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CloudPush != nil {
		t.Errorf("expected nil cloudpush, got %+v", *cfg.CloudPush)
	}
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config when file is absent, got %+v", cfg)
	}

	dir := t.TempDir()
	writeConfig(t, dir, `not json`)
	if _, err := LoadOptional(dir); !errors.Is(err, ErrConfigParse) {
		t.Errorf("expected ErrConfigParse, got: %v", err)
	}
}

func TestApplicationName(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		cfg  *Config
		want string
	}{
		{"no config uses dir name", "/work/myapp", nil, "myapp"},
		{"trailing slash", "/work/myapp/", nil, "myapp"},
		{"empty name falls back", "/work/myapp", &Config{}, "myapp"},
		{"blank name falls back", "/work/myapp", &Config{Name: "  "}, "myapp"},
		{"configured name wins", "/work/myapp", &Config{Name: "shop"}, "shop"},
		{"configured name wins anywhere", "/srv/other", &Config{Name: "shop"}, "shop"},
		{"configured name is not trimmed", "/work/myapp", &Config{Name: " shop "}, " shop "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplicationName(tt.dir, tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ApplicationName(%q) = %q, want %q", tt.dir, got, tt.want)
			}
		})
	}
}

func TestApplicationName_FromLoadedConfig(t *testing.T) {
	dir := projectDir(t, "myapp")

	name, err := ApplicationName(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "myapp" {
		t.Errorf("expected 'myapp', got %q", name)
	}

	writeConfig(t, dir, `{"name": "storefront"}`)
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	name, err = ApplicationName(dir, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "storefront" {
		t.Errorf("expected 'storefront', got %q", name)
	}
}

func TestLoad_KeysIgnoreCase(t *testing.T) {
	dir := projectDir(t, "myapp")
	writeConfig(t, dir, `{"NAME": "upper"}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "upper" {
		t.Errorf("expected name 'upper', got %q", cfg.Name)
	}
}

func TestApplicationName_Unresolvable(t *testing.T) {
	for _, dir := range []string{"/", "", "."} {
		_, err := ApplicationName(dir, nil)
		if !errors.Is(err, ErrNameResolution) {
			t.Errorf("ApplicationName(%q): expected ErrNameResolution, got: %v", dir, err)
		}
	}
}

func TestRemoteDir(t *testing.T) {
	tests := []struct {
		username string
		want     string
	}{
		{"root", "/root/myapp"},
		{"deploy", "/home/deploy/myapp"},
		{"rooted", "/home/rooted/myapp"},
	}

	for _, tt := range tests {
		cp := &CloudPush{Username: tt.username, Address: "example.com"}
		if got := cp.RemoteDir("myapp"); got != tt.want {
			t.Errorf("RemoteDir for %q = %q, want %q", tt.username, got, tt.want)
		}
	}
}

func TestResolveRemoteTarget(t *testing.T) {
	cfg := &Config{CloudPush: &CloudPush{Username: "deploy", Address: "1.2.3.4"}}
	got, err := ResolveRemoteTarget(cfg, "myapp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "deploy@1.2.3.4:/home/deploy/myapp" {
		t.Errorf("unexpected target: %q", got)
	}

	cfg.CloudPush.Username = "root"
	got, err = ResolveRemoteTarget(cfg, "myapp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "root@1.2.3.4:/root/myapp" {
		t.Errorf("unexpected target: %q", got)
	}
}

func TestResolveRemoteTarget_Missing(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"no config", nil},
		{"no cloudpush", &Config{Name: "shop"}},
		{"no username", &Config{CloudPush: &CloudPush{Address: "1.2.3.4"}}},
		{"no address", &Config{CloudPush: &CloudPush{Username: "deploy"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveRemoteTarget(tt.cfg, "myapp")
			if !errors.Is(err, ErrMissingCloudConfig) {
				t.Errorf("expected ErrMissingCloudConfig, got: %v", err)
			}
		})
	}
}

func TestResolveRemoteTarget_FromFile(t *testing.T) {
	dir := projectDir(t, "myapp")
	writeConfig(t, dir, `{"cloudpush": {"username": "deploy", "address": "1.2.3.4"}}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	app, err := ApplicationName(dir, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := ResolveRemoteTarget(cfg, app)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "deploy@1.2.3.4:/home/deploy/myapp" {
		t.Errorf("unexpected target: %q", got)
	}
}

func TestShellCommand(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want []string
	}{
		{"nil config", nil, []string{DefaultShell}},
		{"unset", &Config{}, []string{DefaultShell}},
		{"single word", &Config{Shell: "/bin/sh"}, []string{"/bin/sh"}},
		{"with args", &Config{Shell: "bash -l"}, []string{"bash", "-l"}},
		{"quoted", &Config{Shell: `sh -c "cd /app && exec bash"`}, []string{"sh", "-c", "cd /app && exec bash"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.ShellCommand()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ShellCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShellCommand_Invalid(t *testing.T) {
	cfg := &Config{Shell: `bash -c "unterminated`}
	if _, err := cfg.ShellCommand(); err == nil {
		t.Error("expected error for unterminated quote")
	}
}
