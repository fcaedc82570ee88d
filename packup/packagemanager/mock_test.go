package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// MockCommandManager scripts one result per full command line and records
// every invocation, including whether elevation was requested.
type MockCommandManager struct {
	Results map[string]cm.CommandResult
	Errs    map[string]error

	Calls     []string
	SudoCalls []bool
}

func (m *MockCommandManager) Run(_ context.Context, config cm.CommandConfig) (cm.CommandResult, error) {
	key := config.Command
	if len(config.Args) > 0 {
		key += " " + strings.Join(config.Args, " ")
	}
	m.Calls = append(m.Calls, key)
	m.SudoCalls = append(m.SudoCalls, config.Sudo)

	if err, ok := m.Errs[key]; ok {
		return m.Results[key], err
	}
	if result, ok := m.Results[key]; ok {
		return result, nil
	}
	return cm.CommandResult{}, nil
}

func scripted(key, stdout string) *MockCommandManager {
	return &MockCommandManager{
		Results: map[string]cm.CommandResult{
			key: {STDOUT: stdout},
		},
	}
}
