package packagemanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacmanListInstalled(t *testing.T) {
	out := "bash 5.2.026-2\nripgrep 14.1.0-1\n"
	backend := newArchBackend(Pacman, scripted("pacman -Q", out))

	packages, err := backend.ListInstalled(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []InstalledPackage{
		{Manager: "pacman", Name: "bash", Version: "5.2.026-2"},
		{Manager: "pacman", Name: "ripgrep", Version: "14.1.0-1"},
	}, packages)
}

func TestPacmanInstallElevatesWithNoconfirm(t *testing.T) {
	mock := &MockCommandManager{}
	backend := newArchBackend(Pacman, mock)

	assert.NoError(t, backend.Install(context.Background(), "jq"))
	assert.Equal(t, []string{"pacman -S --noconfirm --needed jq"}, mock.Calls)
	assert.Equal(t, []bool{true}, mock.SudoCalls)
}

func TestAURHelpersNeverElevate(t *testing.T) {
	for _, name := range []string{Yay, Paru} {
		mock := &MockCommandManager{}
		backend := newArchBackend(name, mock)

		assert.NoError(t, backend.Install(context.Background(), "jq"))
		assert.Equal(t, []string{name + " -S --noconfirm --needed jq"}, mock.Calls)
		assert.Equal(t, []bool{false}, mock.SudoCalls, "AUR helper %s must not run under sudo", name)
	}
}

func TestArchExistsExitCodeOnly(t *testing.T) {
	// -Si output is never inspected; a zero exit is a match even with
	// unrelated stdout.
	backend := newArchBackend(Yay, scripted("yay -Si ripgrep", "Repository : extra\nName : ripgrep\n"))

	found, err := backend.Exists(context.Background(), "ripgrep")
	assert.NoError(t, err)
	assert.True(t, found)
}
