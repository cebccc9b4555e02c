package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eykd/kitty-go/internal/domain"
)

// runRoot executes a fresh root command and returns stdout, stderr and
// the exit code.
func runRoot(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := RunCLI(NewRootCmd(), args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestRootCommandUse(t *testing.T) {
	if got := rootCmd.Name(); got != "kitty" {
		t.Errorf("rootCmd.Name() = %q, want %q", got, "kitty")
	}
}

func TestRootCommandFlags(t *testing.T) {
	cmd := NewRootCmd()

	tests := []struct {
		long  string
		short string
	}{
		{"number-nonblank", "b"},
		{"number", "n"},
		{"show-ends", "E"},
		{"squeeze-blank", "s"},
		{"show-tabs", "T"},
		{"show-nonprinting", "v"},
		{"show-all", "A"},
		{"show-nonprinting-ends", "e"},
		{"show-nonprinting-tabs", "t"},
		{"unbuffered", "u"},
		{"lock", ""},
		{"verbose", ""},
	}

	for _, tt := range tests {
		t.Run(tt.long, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.long)
			if flag == nil {
				t.Fatalf("expected --%s flag to exist", tt.long)
			}
			if flag.Shorthand != tt.short {
				t.Errorf("--%s shorthand = %q, want %q", tt.long, flag.Shorthand, tt.short)
			}
			if flag.DefValue != "false" {
				t.Errorf("--%s default = %q, want %q", tt.long, flag.DefValue, "false")
			}
		})
	}
}

func TestRootFlags_Options(t *testing.T) {
	tests := []struct {
		name  string
		flags rootFlags
		want  domain.Options
	}{
		{
			name:  "no flags",
			flags: rootFlags{},
			want:  domain.Options{},
		},
		{
			name:  "direct flags map one to one",
			flags: rootFlags{numberNonBlank: true, number: true, showEnds: true, squeezeBlank: true, showTabs: true, showNonprinting: true},
			want:  domain.Options{NumberNonBlank: true, NumberAllLines: true, ShowLineEnd: true, IgnoreAdjacentBlanks: true, DisplayTabSymbol: true, ShowUnprintables: true},
		},
		{
			name:  "show-all is -vET",
			flags: rootFlags{showAll: true},
			want:  domain.Options{ShowUnprintables: true, ShowLineEnd: true, DisplayTabSymbol: true},
		},
		{
			name:  "-e is -vE",
			flags: rootFlags{nonprintingEnds: true},
			want:  domain.Options{ShowUnprintables: true, ShowLineEnd: true},
		},
		{
			name:  "-t is -vT",
			flags: rootFlags{nonprintingTabs: true},
			want:  domain.Options{ShowUnprintables: true, DisplayTabSymbol: true},
		},
		{
			name:  "unbuffered changes nothing",
			flags: rootFlags{unbuffered: true},
			want:  domain.Options{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.options(); got != tt.want {
				t.Errorf("options() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRoot_ReadsStdinByDefault(t *testing.T) {
	stdout, stderr, code := runRoot(t, "hello\nworld")

	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if stdout != "hello\nworld" {
		t.Errorf("stdout = %q, want input unchanged", stdout)
	}
}

func TestRoot_DashReadsStdin(t *testing.T) {
	stdout, _, code := runRoot(t, "a\n", "-n", "-")

	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if stdout != "\t1 a\n" {
		t.Errorf("stdout = %q, want %q", stdout, "\t1 a\n")
	}
}

func TestRoot_FlagCombinations(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
		want  string
	}{
		{"number all", []string{"-n"}, "a\n\nb\n", "\t1 a\n\t2 \n\t3 b\n"},
		{"number nonblank overrides number", []string{"-n", "-b"}, "a\n\nb\n", "\t1 a\n\n\t2 b\n"},
		{"show ends", []string{"-E"}, "abc\nxyz", "abc$\nxyz$"},
		{"squeeze", []string{"-s"}, "a\n\n\n\n\nb\n", "a\n\nb\n"},
		{"show tabs", []string{"-T"}, "a\tb\n", "a^Ib\n"},
		{"show nonprinting", []string{"-v"}, "\x01\t\x7f\x80\xff\n", "^A\t^?M-^@M-^?\n"},
		{"show all keeps tab literal", []string{"-A"}, "\t\x01\n", "\t^A$\n"},
		{"combined short flags", []string{"-ns"}, "\n\nfoo\n\n\nbar\n", "\t1 \n\t2 foo\n\t3 \n\t4 bar\n"},
		{"long flags", []string{"--number-nonblank", "--show-ends"}, "x\n\n", "\t1 x$\n$\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runRoot(t, tt.input, tt.args...)
			if code != 0 {
				t.Fatalf("exit code = %d, stderr = %q", code, stderr)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestRoot_TooManyArguments(t *testing.T) {
	_, stderr, code := runRoot(t, "", "one.txt", "two.txt")

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr, "kitty: ") {
		t.Errorf("stderr = %q, want kitty: prefix", stderr)
	}
}

func TestRoot_UnknownFlag(t *testing.T) {
	_, stderr, code := runRoot(t, "", "--bogus")

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "bogus") {
		t.Errorf("stderr = %q, want it to name the flag", stderr)
	}
}

func TestRoot_Version(t *testing.T) {
	stdout, _, code := runRoot(t, "", "--version")

	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, version) {
		t.Errorf("stdout = %q, want version %q", stdout, version)
	}
}

func TestRoot_VerboseLogsToStderrOnly(t *testing.T) {
	stdout, stderr, code := runRoot(t, "a\n\n\nb\n", "--verbose", "-s")

	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if stdout != "a\n\nb\n" {
		t.Errorf("stdout = %q, want squeezed output without log records", stdout)
	}
	for _, want := range []string{"run finished", "read=4", "emitted=3", "dropped=1"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr = %q, want it to contain %q", stderr, want)
		}
	}
}

func TestRoot_QuietByDefault(t *testing.T) {
	_, stderr, code := runRoot(t, "a\n")

	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want nothing without --verbose", stderr)
	}
}
