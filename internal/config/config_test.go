package config

import (
	"bytes"
	"errors"
	"flag"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/agbru/coffeemachine/internal/errors"
)

var beverages = []string{"coffee", "tea"}

func TestParseConfig(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		want AppConfig
	}{
		{
			name: "defaults",
			args: nil,
			want: AppConfig{LogLevel: "warn"},
		},
		{
			name: "positional orders",
			args: []string{"coffee", "tea", "coffee"},
			want: AppConfig{Orders: []string{"coffee", "tea", "coffee"}, LogLevel: "warn"},
		},
		{
			name: "orders flag before positional",
			args: []string{"--orders", "tea, coffee,", "tea"},
			want: AppConfig{Orders: []string{"tea", "coffee", "tea"}, LogLevel: "warn"},
		},
		{
			name: "verbose implies debug",
			args: []string{"-v", "coffee"},
			want: AppConfig{Orders: []string{"coffee"}, Verbose: true, LogLevel: "debug"},
		},
		{
			name: "quiet implies error level",
			args: []string{"--quiet"},
			want: AppConfig{Quiet: true, LogLevel: "error"},
		},
		{
			name: "explicit log level wins",
			args: []string{"--verbose", "--log-level", "warn"},
			want: AppConfig{Verbose: true, LogLevel: "warn"},
		},
		{
			name: "modes and outputs",
			args: []string{"--tui", "--trace", "--no-color", "--menu", "m.yaml", "--metrics-file", "out.prom"},
			want: AppConfig{TUI: true, Trace: true, NoColor: true, MenuFile: "m.yaml", MetricsFile: "out.prom", LogLevel: "warn"},
		},
		{
			name: "interactive shorthand",
			args: []string{"-i"},
			want: AppConfig{Interactive: true, LogLevel: "warn"},
		},
		{
			name: "list and completion",
			args: []string{"--list", "--completion", "zsh"},
			want: AppConfig{ListMenu: true, Completion: "zsh", LogLevel: "warn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var errBuf bytes.Buffer
			got, err := ParseConfig("coffeemachine", tt.args, &errBuf, beverages)
			if err != nil {
				t.Fatalf("ParseConfig failed: %v (%s)", err, errBuf.String())
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseConfig_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		args       []string
		wantConfig bool
	}{
		{"tui with interactive", []string{"--tui", "-i"}, true},
		{"quiet with verbose", []string{"-q", "-v"}, true},
		{"unknown shell", []string{"--completion", "powershell"}, true},
		{"bad log level", []string{"--log-level", "loud"}, true},
		{"unknown flag", []string{"--espresso"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var errBuf bytes.Buffer
			_, err := ParseConfig("coffeemachine", tt.args, &errBuf, beverages)
			if err == nil {
				t.Fatal("expected an error")
			}
			var ce apperrors.ConfigError
			if tt.wantConfig != errors.As(err, &ce) {
				t.Errorf("ConfigError match = %v, want %v (err %v)", !tt.wantConfig, tt.wantConfig, err)
			}
			if errBuf.Len() == 0 {
				t.Error("expected a diagnostic on errWriter")
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	t.Parallel()
	var errBuf bytes.Buffer
	_, err := ParseConfig("coffeemachine", []string{"--help"}, &errBuf, beverages)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	usage := errBuf.String()
	for _, want := range []string{"Usage: coffeemachine", "Built-in beverages: coffee, tea", "-orders"} {
		if !strings.Contains(usage, want) {
			t.Errorf("usage does not contain %q:\n%s", want, usage)
		}
	}
}

func TestValidate_EmptyOrderName(t *testing.T) {
	t.Parallel()
	err := AppConfig{Orders: []string{"coffee", " "}, LogLevel: "info"}.Validate()
	var ve apperrors.ValidationError
	if !errors.As(err, &ve) || ve.Field != "orders[1]" {
		t.Errorf("expected ValidationError on orders[1], got %v", err)
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"coffee", []string{"coffee"}},
		{" coffee ,tea,, coffee", []string{"coffee", "tea", "coffee"}},
	}
	for _, tt := range tests {
		if got := SplitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
