// Package catr implements the catr command: concatenate files or standard
// input to standard output, optionally numbering lines.
package catr

import (
	"github.com/rcarmo/catr/pkg/core"
	"github.com/rcarmo/catr/pkg/core/logging"
)

// Run executes catr with the given arguments and returns the exit code.
func Run(stdio *core.Stdio, args []string) int {
	logger := logging.FromEnv(stdio.Err)

	cfg, code := ParseArgs(stdio, args)
	if cfg == nil {
		return code
	}
	logger.Debug("resolved arguments",
		"inputs", cfg.Inputs,
		"number", cfg.NumberLines,
		"number_nonblank", cfg.NumberNonBlank)

	return Emit(stdio, cfg, logger)
}
