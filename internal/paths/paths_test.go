package paths

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveDataDir_Precedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/env/data")

	tests := []struct {
		name   string
		flag   string
		config string
		want   string
	}{
		{"flag wins", "/flag/data", "/cfg/data", "/flag/data"},
		{"config beats env", "", "/cfg/data", "/cfg/data"},
		{"env beats default", "", "", "/env/data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDataDir(tt.flag, tt.config)
			if err != nil {
				t.Fatalf("ResolveDataDir failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveDataDir_Default(t *testing.T) {
	t.Setenv(EnvDataDir, "")

	got, err := ResolveDataDir("", "")
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if filepath.Base(got) != DefaultDataDirName {
		t.Errorf("got %q, want a %s directory under the CWD", got, DefaultDataDirName)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("got relative path %q", got)
	}
}

func TestResolveConfigDir_Precedence(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	got, err := ResolveConfigDir("/flag/config")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	if got != "/flag/config" {
		t.Errorf("flag override ignored: got %q", got)
	}

	got, err = ResolveConfigDir("")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	if got != "/env/config" {
		t.Errorf("env override ignored: got %q", got)
	}
}

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-specific default")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	got, err := DefaultConfigDir()
	if err != nil {
		t.Fatalf("DefaultConfigDir failed: %v", err)
	}
	if got != filepath.Join("/xdg/config", "library-api") {
		t.Errorf("got %q, want /xdg/config/library-api", got)
	}
}

func TestDefaultConfigDir_HomeFallback(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-specific default")
	}
	t.Setenv("XDG_CONFIG_HOME", "")

	orig := platformDir.homeDir
	platformDir.homeDir = func() (string, error) { return "/home/tester", nil }
	t.Cleanup(func() { platformDir.homeDir = orig })

	got, err := DefaultConfigDir()
	if err != nil {
		t.Fatalf("DefaultConfigDir failed: %v", err)
	}
	if got != "/home/tester/.config/library-api" {
		t.Errorf("got %q, want /home/tester/.config/library-api", got)
	}
}
