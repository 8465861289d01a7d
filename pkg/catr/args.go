package catr

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rcarmo/catr/pkg/core"
)

// Name is the program name used in usage text and diagnostics.
const Name = "catr"

// Version is reported by -V. Overridden at build time via ldflags.
var Version = "0.1.0"

// StdinName is the input name that selects standard input.
const StdinName = "-"

// Config is the validated result of argument resolution.
type Config struct {
	Inputs         []string // input names in order; "-" is stdin
	NumberLines    bool     // -n: number all lines
	NumberNonBlank bool     // -b: number non-blank lines
}

// ParseArgs resolves the argument list into a Config.
//
// A nil Config with ExitSuccess means help or version output was written
// and there is nothing left to do. Invalid arguments print the error and
// usage text to stderr and return ExitUsage.
func ParseArgs(stdio *core.Stdio, args []string) (*Config, int) {
	var cfg *Config
	cmd := newCommand(func(flags *pflag.FlagSet, files []string) {
		cfg = configFromFlags(flags, files)
	})

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdio.In)
	cmd.SetOut(stdio.Out)
	cmd.SetErr(stdio.Err)

	if err := cmd.Execute(); err != nil {
		code := core.UsageError(stdio, Name, err.Error())
		stdio.Errorf("%s", cmd.UsageString())
		return nil, code
	}
	return cfg, core.ExitSuccess
}

func newCommand(resolved func(flags *pflag.FlagSet, files []string)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   Name + " [OPTIONS] [FILE...]",
		Short: "A cat clone.",
		Long: `A cat clone.

Concatenate FILE(s) to standard output.

With no FILE, or when FILE is -, read standard input.`,
		Version:               Version,
		Args:                  cobra.ArbitraryArgs,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, files []string) error {
			resolved(cmd.Flags(), files)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.BoolP("number", "n", false, "Number all lines in the output")
	flags.BoolP("number-nonblank", "b", false, "Number only nonblank lines in the output")
	flags.BoolP("help", "h", false, "Show help and exit")
	flags.BoolP("version", "V", false, "Show version and exit")
	cmd.MarkFlagsMutuallyExclusive("number", "number-nonblank")
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	return cmd
}

func configFromFlags(flags *pflag.FlagSet, files []string) *Config {
	numberLines, _ := flags.GetBool("number")
	numberNonBlank, _ := flags.GetBool("number-nonblank")

	inputs := append([]string(nil), files...)
	if len(inputs) == 0 {
		inputs = []string{StdinName}
	}

	return &Config{
		Inputs:         inputs,
		NumberLines:    numberLines,
		NumberNonBlank: numberNonBlank,
	}
}
