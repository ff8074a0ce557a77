package harness

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/snowtest/snow-contract-tests/framework"
)

// Process is a running child process whose stdout is read through a pipe.
type Process struct {
	command Command
	cmd     *exec.Cmd
	stdout  *bufio.Reader
	stderr  bytes.Buffer
	logger  framework.Logger

	waitOnce sync.Once
	waitErr  error
	exitCode int
}

// Start starts the command. The caller must call Close.
func Start(command Command, logger framework.Logger) (*Process, error) {
	return StartContext(context.Background(), command, logger)
}

// StartContext starts the command; the process is killed if ctx is done before it exits.
func StartContext(ctx context.Context, command Command, logger framework.Logger) (*Process, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	p := &Process{
		command:  command,
		cmd:      exec.CommandContext(ctx, command.Path, command.Args...),
		logger:   logger,
		exitCode: -1,
	}
	p.cmd.Stderr = &p.stderr
	pipe, err := p.cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	p.stdout = bufio.NewReader(pipe)

	logger.Printf("Running %s", command)
	if err := p.cmd.Start(); err != nil {
		return nil, fmt.Errorf("could not start %s: %w", command, err)
	}
	return p, nil
}

func (p *Process) Command() Command {
	return p.command
}

// Stdout is the child's standard output. It returns EOF once the child has closed it.
func (p *Process) Stdout() io.Reader {
	return p.stdout
}

// ReadByte reads the next byte of the child's standard output.
func (p *Process) ReadByte() (byte, error) {
	return p.stdout.ReadByte()
}

// Close discards whatever the child still writes to stdout and waits for it to exit, so that
// a reader that stopped early never leaves the child blocked on a full pipe.
func (p *Process) Close() error {
	if _, err := io.Copy(io.Discard, p.stdout); err != nil {
		p.logger.Printf("Error draining output of %s: %s", p.command, err)
	}
	return p.Wait()
}

// Wait waits for the child to exit. An exit with a non-zero status is not an error; see
// ExitCode. It is safe to call more than once.
func (p *Process) Wait() error {
	p.waitOnce.Do(func() {
		err := p.cmd.Wait()
		var exitErr *exec.ExitError
		switch {
		case err == nil:
			p.exitCode = 0
		case errors.As(err, &exitErr):
			p.exitCode = exitErr.ExitCode()
		default:
			p.waitErr = err
		}
		p.logger.Printf("%s exited with status %d", p.command, p.exitCode)
		if p.stderr.Len() > 0 {
			p.logger.Printf("stderr of %s:\n%s", p.command, p.stderr.String())
		}
	})
	return p.waitErr
}

// ExitCode is the child's exit status, or -1 if it has not been waited for or was killed by
// a signal.
func (p *Process) ExitCode() int {
	return p.exitCode
}

// Stderr is everything the child wrote to its standard error, once it has exited.
func (p *Process) Stderr() string {
	return p.stderr.String()
}

// RunResult is the complete output of a command that ran to completion.
type RunResult struct {
	Stdout   []byte
	Stderr   string
	ExitCode int
}

// Run runs the command to completion and collects its output.
func Run(ctx context.Context, command Command, logger framework.Logger) (RunResult, error) {
	p, err := StartContext(ctx, command, logger)
	if err != nil {
		return RunResult{}, err
	}
	stdout, readErr := io.ReadAll(p.stdout)
	if err := p.Close(); err != nil {
		return RunResult{}, err
	}
	if readErr != nil {
		return RunResult{}, fmt.Errorf("error reading output of %s: %w", command, readErr)
	}
	if ctx.Err() != nil {
		return RunResult{}, fmt.Errorf("%s did not finish: %w", command, ctx.Err())
	}
	return RunResult{Stdout: stdout, Stderr: p.Stderr(), ExitCode: p.ExitCode()}, nil
}
