package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.RootDir != "." {
		t.Errorf("RootDir = %q, want %q", cfg.RootDir, ".")
	}
	if cfg.Algorithm != "crc32" {
		t.Errorf("Algorithm = %q, want %q", cfg.Algorithm, "crc32")
	}
	if !cfg.Compression.Enable {
		t.Errorf("Compression.Enable = false, want true")
	}
	if !reflect.DeepEqual(cfg.ExcludeDirs, []string{".git"}) {
		t.Errorf("ExcludeDirs = %v, want [.git]", cfg.ExcludeDirs)
	}
}

func TestLoadConfig(t *testing.T) {
	contents := `
root_dir: /srv/artifacts
manifest_path: /srv/manifests/artifacts.manifest
algorithm: crc16-ccitt
exclude_dirs:
  - .git
  - tmp
workers: 8
compression:
  enable: true
  decompress_inputs: true
  level: 3
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := &Config{
		RootDir:      "/srv/artifacts",
		ManifestPath: "/srv/manifests/artifacts.manifest",
		Algorithm:    "crc16-ccitt",
		ExcludeDirs:  []string{".git", "tmp"},
		Workers:      8,
		Compression: CompressionConfig{
			Enable:           true,
			DecompressInputs: true,
			Level:            3,
		},
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	write := func(name, contents string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{
			name:    "missing file",
			path:    filepath.Join(dir, "nope.yaml"),
			wantMsg: "error reading config file",
		},
		{
			name:    "malformed yaml",
			path:    write("bad.yaml", "root_dir: [unclosed"),
			wantMsg: "error parsing config file",
		},
		{
			name:    "missing root dir",
			path:    write("noroot.yaml", "algorithm: crc32"),
			wantMsg: "root_dir is required",
		},
		{
			name:    "missing algorithm",
			path:    write("noalgo.yaml", "root_dir: ."),
			wantMsg: "algorithm is required",
		},
		{
			name:    "compression level out of range",
			path:    write("level.yaml", "root_dir: .\nalgorithm: crc32\ncompression:\n  level: 9"),
			wantMsg: "level must be between 0 and 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path)
			if err == nil {
				t.Fatalf("LoadConfig() error = nil, want %q", tt.wantMsg)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("LoadConfig() error = %v, want containing %q", err, tt.wantMsg)
			}
		})
	}
}
