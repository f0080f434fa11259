package config

import (
	"io"
	"reflect"
	"testing"
)

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"ORDERS", "tea,tea")
	t.Setenv(EnvPrefix+"MENU", "/etc/coffeemachine/menu.yaml")
	t.Setenv(EnvPrefix+"VERBOSE", "yes")
	t.Setenv(EnvPrefix+"TRACE", "1")
	t.Setenv(EnvPrefix+"METRICS_FILE", "/tmp/cm.prom")
	t.Setenv(EnvPrefix+"NO_COLOR", "maybe")

	cfg, err := ParseConfig("coffeemachine", nil, io.Discard, beverages)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	want := AppConfig{
		Orders:      []string{"tea", "tea"},
		MenuFile:    "/etc/coffeemachine/menu.yaml",
		Verbose:     true,
		Trace:       true,
		MetricsFile: "/tmp/cm.prom",
		LogLevel:    "debug",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("ParseConfig() = %+v, want %+v", cfg, want)
	}
}

func TestEnvOverrides_FlagsWin(t *testing.T) {
	t.Setenv(EnvPrefix+"ORDERS", "tea")
	t.Setenv(EnvPrefix+"MENU", "env.yaml")
	t.Setenv(EnvPrefix+"QUIET", "true")
	t.Setenv(EnvPrefix+"LOG_LEVEL", "error")

	cfg, err := ParseConfig("coffeemachine", []string{"--menu", "flag.yaml", "-q=false", "coffee"}, io.Discard, beverages)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Orders, []string{"coffee"}) {
		t.Errorf("Orders = %v, want [coffee]", cfg.Orders)
	}
	if cfg.MenuFile != "flag.yaml" {
		t.Errorf("MenuFile = %q, want flag.yaml", cfg.MenuFile)
	}
	if cfg.Quiet {
		t.Error("explicit -q=false should win over COFFEEMACHINE_QUIET")
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error from env", cfg.LogLevel)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"TRUE", false, true},
		{"yes", false, true},
		{"1", false, true},
		{"No", true, false},
		{"0", true, false},
		{"perhaps", true, true},
		{"perhaps", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.def, got, tt.want)
		}
	}
}
