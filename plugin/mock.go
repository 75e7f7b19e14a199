// SPDX-License-Identifier: GPL-3.0-or-later

package plugin

import "errors"

// MockModule MockModule.
type MockModule struct {
	Base

	FailOnInit bool

	InitFunc    func() error
	CheckFunc   func() error
	GraphsFunc  func() []Graph
	CollectFunc func() map[string]string
	CleanupFunc func()
	CleanupDone bool
}

// Init invokes InitFunc.
func (m *MockModule) Init() error {
	if m.FailOnInit {
		return errors.New("mock init error")
	}
	if m.InitFunc == nil {
		return nil
	}
	return m.InitFunc()
}

// Check invokes CheckFunc.
func (m *MockModule) Check() error {
	if m.CheckFunc == nil {
		return nil
	}
	return m.CheckFunc()
}

// Graphs invokes GraphsFunc.
func (m *MockModule) Graphs() []Graph {
	if m.GraphsFunc == nil {
		return nil
	}
	return m.GraphsFunc()
}

// Collect invokes CollectFunc.
func (m *MockModule) Collect() map[string]string {
	if m.CollectFunc == nil {
		return nil
	}
	return m.CollectFunc()
}

// Cleanup sets CleanupDone to true.
func (m *MockModule) Cleanup() {
	if m.CleanupFunc != nil {
		m.CleanupFunc()
	}
	m.CleanupDone = true
}
