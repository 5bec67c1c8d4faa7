// Where: internal/app/mock_prompter_test.go
// What: Test helper prompter for interaction-dependent command tests.
// Why: Provide deterministic input/confirm behavior without TTY.
package app

type mockPrompter struct {
	inputFn   func(title string, suggestions []string) (string, error)
	confirmFn func(title string) (bool, error)

	lastTitle string
}

func (m *mockPrompter) Input(title string, suggestions []string) (string, error) {
	m.lastTitle = title
	if m.inputFn != nil {
		return m.inputFn(title, suggestions)
	}
	return "", nil
}

func (m *mockPrompter) Confirm(title string) (bool, error) {
	m.lastTitle = title
	if m.confirmFn != nil {
		return m.confirmFn(title)
	}
	return true, nil
}
