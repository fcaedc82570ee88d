package commandmanager

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"golang.org/x/crypto/ssh"
)

// Credentials holds authentication material for remote hosts and sudo.
type Credentials struct {
	User          string
	Password      string
	KeyPassphrase string
	SudoPassword  string
}

// SSHDialer abstracts ssh.Dial so tests can substitute a fake.
type SSHDialer interface {
	Dial(network, addr string, config *ssh.ClientConfig, timeout time.Duration) (*ssh.Client, error)
}

// UnixCommandManager executes commands on a Unix host, locally when the
// hostname refers to this machine and over SSH otherwise. Elevation is
// explicit: sudo is only ever prefixed when AllowSudo is set, regardless of
// what the per-command config asks for.
type UnixCommandManager struct {
	Hostname  string
	SSHClient SSHDialer
	AllowSudo bool
	Credentials
}

func (u *UnixCommandManager) Run(ctx context.Context, config CommandConfig) (CommandResult, error) {
	if u.isLocal() {
		return u.runLocal(ctx, config)
	}
	return u.runRemote(ctx, config)
}

func (u *UnixCommandManager) runLocal(ctx context.Context, config CommandConfig) (CommandResult, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, config.Command, config.Args...)
	if config.Sudo && u.AllowSudo {
		cmdArgs := append([]string{"sudo", "-S", config.Command}, config.Args...)
		cmd = exec.CommandContext(ctx, cmdArgs[0], cmdArgs[1:]...)
		cmd.Stdin = strings.NewReader(u.SudoPassword + "\n")
	}
	if len(config.Env) > 0 {
		cmd.Env = append(cmd.Environ(), config.Env...)
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		Command:   config.Command,
		STDOUT:    stdout.String(),
		STDERR:    stderr.String(),
		ExitCode:  getExitCode(err),
		Duration:  time.Since(start),
		Timestamp: start,
	}

	if strings.Contains(result.STDERR, "incorrect password") {
		return result, errors.New("sudo: incorrect password provided")
	}
	if strings.Contains(result.STDERR, "is not in the sudoers file") {
		return result, errors.New("sudo: user is not in the sudoers file")
	}

	return result, err
}

func (u *UnixCommandManager) sshConfig() *ssh.ClientConfig {
	var authMethod ssh.AuthMethod
	if u.Password != "" {
		slog.Debug("Using password authentication", "hostname", u.Hostname)
		authMethod = ssh.Password(u.Password)
	} else {
		slog.Debug("Using agent authentication", "hostname", u.Hostname)
		authMethod = ssh.PublicKeysCallback(agentSigners)
	}

	return &ssh.ClientConfig{
		User:            u.User,
		Auth:            []ssh.AuthMethod{authMethod},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}
}

func (u *UnixCommandManager) runRemote(ctx context.Context, config CommandConfig) (CommandResult, error) {
	slog.Debug("Executing remote command", "hostname", u.Hostname, "command", config.Command)

	if u.SSHClient == nil {
		return CommandResult{}, errors.New("SSHClient is not initialized")
	}

	var dialTimeout time.Duration
	if deadline, ok := ctx.Deadline(); ok {
		dialTimeout = time.Until(deadline)
	} else {
		dialTimeout = 15 * time.Minute
	}

	client, err := u.SSHClient.Dial("tcp", u.Hostname+":22", u.sshConfig(), dialTimeout)
	if err != nil {
		return CommandResult{}, err
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return CommandResult{}, err
	}
	defer session.Close()

	cmdStr := config.Command
	if len(config.Args) > 0 {
		cmdStr += " " + strings.Join(config.Args, " ")
	}
	if len(config.Env) > 0 {
		cmdStr = strings.Join(config.Env, " ") + " " + cmdStr
	}
	if config.Sudo && u.AllowSudo {
		cmdStr = "sudo -S " + cmdStr
		session.Stdin = strings.NewReader(u.SudoPassword + "\n")
	}

	start := time.Now()

	var stdout, stderr strings.Builder
	session.Stdout = &stdout
	session.Stderr = &stderr

	outputCh := make(chan CommandResult, 1)
	go func() {
		var result CommandResult
		if err := session.Run(cmdStr); err != nil {
			result.ExitCode = sshExitCode(err)
		}
		result.STDOUT = stdout.String()
		result.STDERR = stderr.String()
		outputCh <- result
	}()

	select {
	case result := <-outputCh:
		result.Command = cmdStr
		result.Duration = time.Since(start)
		result.Timestamp = start

		if strings.Contains(result.STDERR, "incorrect password") {
			return result, errors.New("sudo: incorrect password provided")
		}
		if strings.Contains(result.STDERR, "is not in the sudoers file") {
			return result, errors.New("sudo: user is not in the sudoers file")
		}
		return result, nil

	case <-ctx.Done():
		slog.Error("Remote command timed out", "command", cmdStr)
		return CommandResult{}, ctx.Err()
	}
}

func (u *UnixCommandManager) isLocal() bool {
	return u.Hostname == "" || u.Hostname == "localhost" || u.Hostname == "127.0.0.1"
}

func getExitCode(err error) int {
	if err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return status.ExitStatus()
			}
		}
		return 1
	}
	return 0
}

func sshExitCode(err error) int {
	var exitErr *ssh.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitStatus()
	}
	return 1
}
