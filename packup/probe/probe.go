// Package probe answers whether a named executable exists on a host. An
// absent command is a normal false, never an error, which lets callers gate
// package manager invocations without any error plumbing.
package probe

import (
	"context"
	"os/exec"
	"sync"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// Prober reports executable availability on the target host.
type Prober interface {
	Available(name string) bool
}

// PathProber resolves executables against the local PATH.
type PathProber struct{}

func (PathProber) Available(name string) bool {
	if name == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}

// CommandProber resolves executables on whatever host the CommandManager
// targets, using the shell builtin lookup. This is the probe used for remote
// hosts, where the local PATH is meaningless.
type CommandProber struct {
	CommandManager cm.CommandManager
}

func (p *CommandProber) Available(name string) bool {
	if name == "" || p.CommandManager == nil {
		return false
	}
	result, err := p.CommandManager.Run(context.Background(), cm.CommandConfig{
		Command: "command",
		Args:    []string{"-v", name},
	})
	return err == nil && result.ExitCode == 0
}

// CachedProber memoizes another prober so each distinct executable is looked
// up at most once per run. Safe for concurrent use.
type CachedProber struct {
	next Prober

	mu   sync.Mutex
	seen map[string]bool
}

// Cached wraps p with per-name memoization.
func Cached(p Prober) *CachedProber {
	return &CachedProber{next: p, seen: make(map[string]bool)}
}

func (c *CachedProber) Available(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if hit, ok := c.seen[name]; ok {
		return hit
	}
	found := c.next.Available(name)
	c.seen[name] = found
	return found
}
