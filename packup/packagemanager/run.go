package packagemanager

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// ErrInconclusive marks an existence check that could not reach the index.
// Callers treat it as "not found" and fall through to an install attempt.
var ErrInconclusive = errors.New("existence check inconclusive")

func run(ctx context.Context, mgr cm.CommandManager, sudo bool, env []string, command string, args ...string) (cm.CommandResult, error) {
	return mgr.Run(ctx, cm.CommandConfig{
		Command: command,
		Args:    args,
		Env:     env,
		Sudo:    sudo,
	})
}

// existsByExitCode interprets a strict index query: exit 0 means the package
// is known, a non-zero exit is a clean "not found". Only a query that could
// not report an exit status at all is inconclusive.
func existsByExitCode(result cm.CommandResult, err error) (bool, error) {
	if result.ExitCode != 0 {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInconclusive, err)
	}
	return true, nil
}

// existsByOutput is for managers whose index query can exit 0 on no match:
// the exit code must be 0 AND match must report the expected package token in
// stdout.
func existsByOutput(result cm.CommandResult, err error, match func(line string) bool) (bool, error) {
	if result.ExitCode != 0 {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInconclusive, err)
	}
	for _, line := range outputLines(result.STDOUT) {
		if match(line) {
			return true, nil
		}
	}
	return false, nil
}

// installExitCode turns an install invocation into a success/failure error.
func installExitCode(name, pkg string, result cm.CommandResult, err error) error {
	if err != nil {
		return fmt.Errorf("%s: installing %s: %w", name, pkg, err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%s: installing %s: exit code %d", name, pkg, result.ExitCode)
	}
	return nil
}

func outputLines(s string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

// splitNameVersion splits a "name-1.2.3" style token at the last dash that is
// followed by a digit. Tokens with no version part come back unchanged with
// an empty version.
func splitNameVersion(token string) (name, version string) {
	for i := len(token) - 2; i > 0; i-- {
		if token[i] == '-' && token[i+1] >= '0' && token[i+1] <= '9' {
			return token[:i], token[i+1:]
		}
	}
	return token, ""
}
