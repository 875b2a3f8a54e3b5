package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/cesu8str"
	"github.com/wippyai/cesu8str/errors"
)

func env(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ChunkSize != 4096 {
		t.Errorf("ChunkSize = %d, want 4096", cfg.ChunkSize)
	}
	if cfg.Variant() != cesu8str.Standard || cfg.Direction() != cesu8str.Encode {
		t.Errorf("variant/direction = %v/%v", cfg.Variant(), cfg.Direction())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cesu8str.yaml")
	data := "java: true\ndecode: true\nchunk_size: 64\ninput: in.bin\nreport: json\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := cfg.decode(f); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := Config{Java: true, Decode: true, ChunkSize: 64, Input: "in.bin", Report: ReportJSON}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Variant() != cesu8str.Java || cfg.Direction() != cesu8str.Decode {
		t.Errorf("variant/direction = %v/%v", cfg.Variant(), cfg.Direction())
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	t.Run("unknown field", func(t *testing.T) {
		cfg := Default()
		err := cfg.decode(strings.NewReader("chunk: 12\n"))
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindInvalidInput}) {
			t.Errorf("err = %v, want config error", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		cfg := Default()
		if err := cfg.decode(strings.NewReader("")); err != nil {
			t.Errorf("empty file: %v", err)
		}
		if cfg.ChunkSize != 4096 {
			t.Errorf("ChunkSize = %d", cfg.ChunkSize)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err == nil {
			t.Error("expected error")
		}
	})
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		debug   bool
		chunk   int
		wantErr bool
	}{
		{"none", nil, false, 4096, false},
		{"debug empty value", map[string]string{EnvDebug: ""}, true, 4096, false},
		{"chunk", map[string]string{EnvChunkSize: " 128 "}, false, 128, false},
		{"bad chunk", map[string]string{EnvChunkSize: "lots"}, false, 4096, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := cfg.ApplyEnv(env(tt.env))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if cfg.Debug != tt.debug || cfg.ChunkSize != tt.chunk {
				t.Errorf("debug=%v chunk=%d, want %v %d", cfg.Debug, cfg.ChunkSize, tt.debug, tt.chunk)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", Default(), true},
		{"zero chunk", Config{}, false},
		{"decode chunk 6", Config{ChunkSize: 6, Decode: true}, true},
		{"decode chunk 5", Config{ChunkSize: 5, Decode: true}, false},
		{"encode chunk 4", Config{ChunkSize: 4}, true},
		{"bad report", Config{ChunkSize: 4096, Report: "xml"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestIsStdio(t *testing.T) {
	for name, want := range map[string]bool{"": true, "-": true, "file.txt": false, "./-": false} {
		if got := IsStdio(name); got != want {
			t.Errorf("IsStdio(%q) = %v, want %v", name, got, want)
		}
	}
}
