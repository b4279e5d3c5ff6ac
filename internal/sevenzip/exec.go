package sevenzip

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fluxany/bolt/pkg/models"
	"go.uber.org/zap"
)

// ExecTool invokes the external archive program as a subprocess. It is
// designed against the 7-Zip command line (tested with 23.01 on Linux), but
// the binary name is configurable so compatible forks like 7zz work too.
type ExecTool struct {
	cmd    string
	logger *zap.Logger
}

// NewExecTool creates an Archiver backed by the given external command
func NewExecTool(cmd string, logger *zap.Logger) *ExecTool {
	return &ExecTool{
		cmd:    cmd,
		logger: logger,
	}
}

// listArgs builds the recursive brief listing invocation. The -ba switch is
// undocumented in the tool's help output but required to suppress the banner
// and summary noise around the entry table.
func listArgs(archive, password string) []string {
	args := []string{"l", "-r", "-ba"}
	if password != "" {
		args = append(args, "-p"+password)
	}
	return append(args, archive)
}

// extractEntryArgs builds the single-entry extraction invocation. -y answers
// every overwrite prompt so the tool never blocks on input.
func extractEntryArgs(archive, entry, outDir, password string) []string {
	args := []string{"e", archive, entry, "-o" + outDir, "-y"}
	if password != "" {
		args = append(args, "-p"+password)
	}
	return args
}

// extractAllArgs builds the whole-archive extraction invocation. x keeps the
// internal directory structure where e would flatten it.
func extractAllArgs(archive, outDir, password string) []string {
	args := []string{"x", archive, "-o" + outDir, "-y"}
	if password != "" {
		args = append(args, "-p"+password)
	}
	return args
}

// List runs the tool's listing operation and parses entry names from its output
func (t *ExecTool) List(archive, password string) ([]string, error) {
	stdout, stderr, err := t.run(listArgs(archive, password))
	if err != nil {
		t.logger.Error("Listing failed",
			zap.String("archive", archive),
			zap.String("stderr", strings.TrimSpace(stderr)),
			zap.Error(err))
		return nil, fmt.Errorf("list %s: %w", archive, err)
	}

	return ParseListing(stdout), nil
}

// ExtractEntry extracts one named entry into outDir
func (t *ExecTool) ExtractEntry(archive, entry, outDir, password string) (*models.Outcome, error) {
	return t.extract(archive, extractEntryArgs(archive, entry, outDir, password))
}

// ExtractAll extracts the whole archive into outDir
func (t *ExecTool) ExtractAll(archive, outDir, password string) (*models.Outcome, error) {
	return t.extract(archive, extractAllArgs(archive, outDir, password))
}

func (t *ExecTool) extract(archive string, args []string) (*models.Outcome, error) {
	stdout, stderr, err := t.run(args)

	outcome := &models.Outcome{
		Command: t.cmd + " " + strings.Join(args, " "),
		Output:  stdout + stderr,
		Success: err == nil,
	}

	if err != nil {
		t.logger.Error("Extraction failed",
			zap.String("archive", archive),
			zap.String("stderr", strings.TrimSpace(stderr)),
			zap.Error(err))
		return outcome, fmt.Errorf("extract %s: %w", archive, err)
	}

	return outcome, nil
}

// run executes one tool invocation, blocking until it completes
func (t *ExecTool) run(args []string) (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer

	cmd := exec.Command(t.cmd, args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}
