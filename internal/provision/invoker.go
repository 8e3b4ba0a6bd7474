// Package provision runs one credential issuance: load the pool, generate
// a token and password, and hand them to the provisioning script.
package provision

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/rsclarke/wgprov/internal/logging"
	"go.uber.org/zap"
)

// ErrInvoke is returned when the provisioning script could not be started.
var ErrInvoke = errors.New("invoke provisioning script")

// Invoker hands positional arguments to an external process.
type Invoker interface {
	Run(ctx context.Context, args []string) error
}

// ScriptInvoker runs Script through Shell. Output is discarded. A script that
// starts and exits non-zero is not an error; only a failed spawn is.
type ScriptInvoker struct {
	Shell  string
	Script string
	Logger *zap.Logger
}

func (s *ScriptInvoker) Run(ctx context.Context, args []string) error {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	shell := s.Shell
	if shell == "" {
		shell = "sh"
	}

	cmdArgs := append([]string{s.Script}, args...)
	cmd := exec.CommandContext(ctx, shell, cmdArgs...)
	out, err := cmd.CombinedOutput()
	if err == nil {
		logger.Debug("provisioning script finished", logging.Script(s.Script), zap.Int("output_bytes", len(out)))
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("provisioning script %s: %w", s.Script, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Debug("provisioning script exited non-zero",
			logging.Shell(shell),
			logging.Script(s.Script),
			logging.ExitCode(exitErr.ExitCode()),
			zap.Int("output_bytes", len(out)),
		)
		return nil
	}

	return fmt.Errorf("%w %s via %s: %w", ErrInvoke, s.Script, shell, err)
}
