package commandmanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ssh"
)

type MockSSHClient struct {
	dialError error
}

func (m *MockSSHClient) Dial(network, addr string, config *ssh.ClientConfig, timeout time.Duration) (*ssh.Client, error) {
	return nil, m.dialError
}

func TestRunLocal(t *testing.T) {
	manager := UnixCommandManager{Hostname: "localhost"}

	result, err := manager.Run(context.Background(), CommandConfig{
		Command: "echo",
		Args:    []string{"hello"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "hello\n", result.STDOUT)
}

func TestRunLocalNonZeroExit(t *testing.T) {
	manager := UnixCommandManager{Hostname: "localhost"}

	result, err := manager.Run(context.Background(), CommandConfig{
		Command: "false",
	})

	assert.Error(t, err)
	assert.NotEqual(t, 0, result.ExitCode)
}

func TestSudoIgnoredWhenNotAllowed(t *testing.T) {
	// With AllowSudo unset, a Sudo-flagged command must run unelevated.
	manager := UnixCommandManager{Hostname: "localhost", AllowSudo: false}

	result, err := manager.Run(context.Background(), CommandConfig{
		Command: "echo",
		Args:    []string{"unelevated"},
		Sudo:    true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "unelevated\n", result.STDOUT)
}

func TestIsLocal(t *testing.T) {
	manager := UnixCommandManager{Hostname: "localhost"}
	assert.True(t, manager.isLocal())

	manager.Hostname = ""
	assert.True(t, manager.isLocal())

	manager.Hostname = "example.com"
	assert.False(t, manager.isLocal())
}

func TestRunRemoteDialError(t *testing.T) {
	manager := UnixCommandManager{
		Hostname:  "remote",
		SSHClient: &MockSSHClient{dialError: errors.New("mock dial error")},
		Credentials: Credentials{
			User:     "user",
			Password: "password",
		},
	}

	_, err := manager.Run(context.Background(), CommandConfig{Command: "ls"})

	if err == nil || err.Error() != "mock dial error" {
		t.Errorf("Expected RunRemote to return mock dial error, got %v", err)
	}
}

func TestRunRemoteWithoutClient(t *testing.T) {
	manager := UnixCommandManager{Hostname: "remote"}

	_, err := manager.Run(context.Background(), CommandConfig{Command: "ls"})
	assert.Error(t, err)
}
