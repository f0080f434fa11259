package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every generator reads flagRegistry, so a new flag only needs an entry
// there.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "menu")
	Short     string   // short flag without "-" (e.g., "v")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "file", "level")
	IsFile    bool     // true if the flag takes a file path
	IsMenu    bool     // true if values come from the beverage list (dynamic)
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "orders", Help: "Comma-separated beverages to order", IsMenu: true, ValueName: "beverages"},
	{Long: "menu", Help: "YAML menu file", IsFile: true, ValueName: "file"},
	{Long: "list", Help: "List the available beverages"},
	{Long: "verbose", Short: "v", Help: "Log every preparation step"},
	{Long: "quiet", Short: "q", Help: "Print only the final summary"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "tui", Help: "Launch the interactive dashboard"},
	{Long: "interactive", Short: "i", Help: "Start an interactive order session"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "metrics-file", Help: "Prometheus metrics output file", IsFile: true, ValueName: "file"},
	{Long: "trace", Help: "Record an OpenTelemetry span per cycle"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell to out. The
// beverage names complete both --orders and positional arguments.
func GenerateCompletion(out io.Writer, shell, program string, beverages []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(program, beverages)
	case "zsh":
		script = zshCompletion(program, beverages)
	case "fish":
		script = fishCompletion(program, beverages)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// funcName turns a program name into a valid shell identifier.
func funcName(program string) string {
	return strings.NewReplacer("-", "_", ".", "_").Replace(program)
}

func bashCompletion(program string, beverages []string) string {
	var opts []string
	var cases strings.Builder
	var files []string
	for _, f := range flagRegistry {
		opts = append(opts, "--"+f.Long)
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
		switch {
		case f.IsFile:
			files = append(files, "--"+f.Long)
		case f.IsMenu:
			fmt.Fprintf(&cases, "        --%s)\n            COMPREPLY=( $(compgen -W \"${beverages}\" -- \"${cur}\") )\n            return 0\n            ;;\n", f.Long)
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        --%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				f.Long, strings.Join(f.Values, " "))
		}
	}
	if len(files) > 0 {
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(files, "|"))
	}

	fn := funcName(program)
	return fmt.Sprintf(`# Bash completion script for %[1]s
# Add this to your ~/.bashrc or ~/.bash_completion

_%[2]s_completions() {
    local cur prev opts beverages
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%[3]s"
    beverages="%[4]s"

    case "${prev}" in
%[5]s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    else
        COMPREPLY=( $(compgen -W "${beverages}" -- "${cur}") )
    fi
    return 0
}

complete -F _%[2]s_completions %[1]s
`, program, fn, strings.Join(opts, " "), strings.Join(beverages, " "), cases.String())
}

func zshCompletion(program string, beverages []string) string {
	args := make([]string, 0, len(flagRegistry)+1)
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	args = append(args, "        '*:beverage:($beverages)'")

	fn := funcName(program)
	return fmt.Sprintf(`#compdef %[1]s

# Zsh completion script for %[1]s
# Place this file in a directory listed in $fpath

_%[2]s() {
    local -a beverages
    beverages=(%[3]s)

    _arguments -s \
%[4]s
}

_%[2]s "$@"
`, program, fn, strings.Join(beverages, " "), strings.Join(args, " \\\n"))
}

// zshArgEntry formats f as a zsh _arguments spec.
func zshArgEntry(f FlagCompletion) string {
	var value string
	switch {
	case f.IsFile:
		value = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsMenu:
		value = fmt.Sprintf(":%s:($beverages)", f.ValueName)
	case len(f.Values) > 0:
		value = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	}

	if f.Short != "" {
		return fmt.Sprintf("        '(-%[1]s --%[2]s)'{-%[1]s,--%[2]s}'[%[3]s]%[4]s'", f.Short, f.Long, f.Help, value)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, value)
}

func fishCompletion(program string, beverages []string) string {
	list := strings.Join(beverages, " ")
	lines := []string{
		"# Fish completion script for " + program,
		fmt.Sprintf("# Add this to ~/.config/fish/completions/%s.fish", program),
		"",
		fmt.Sprintf("complete -c %s -f", program),
		fmt.Sprintf("complete -c %s -n 'not string match -q -- \"-*\" (commandline -ct)' -a '%s'", program, list),
	}
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(program, f, list))
	}
	return strings.Join(lines, "\n") + "\n"
}

// fishCompleteLine formats f as a fish complete command.
func fishCompleteLine(program string, f FlagCompletion, beverages string) string {
	parts := []string{"complete -c " + program}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsMenu:
		parts = append(parts, fmt.Sprintf("-xa '%s'", beverages))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	}
	return strings.Join(parts, " ")
}
