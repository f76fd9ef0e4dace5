package sprite

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// optimize runs the configured external recompression command on the saved
// file. The file path is appended as the last argument. A non-zero exit is
// fatal to the build.
func (b *Builder) optimize(ctx context.Context, path string) error {
	args := append(append([]string(nil), b.opts.Optimizer[1:]...), path)
	cmd := exec.CommandContext(ctx, b.opts.Optimizer[0], args...)

	start := time.Now()
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &ToolError{Cmd: strings.Join(b.opts.Optimizer, " "), Output: out, Err: err}
	}

	b.log.Debug("Optimizer finished",
		zap.String("cmd", b.opts.Optimizer[0]),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
