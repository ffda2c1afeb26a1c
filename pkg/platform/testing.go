package platform

import (
	"os"
	"sync"
	"syscall"
)

// MockPlatform runs on the real filesystem but records and optionally fails
// the calls tests care about.
type MockPlatform struct {
	*BasePlatform

	mu sync.Mutex

	// Mock behavior flags
	ShouldFailOpenFile bool
	ShouldFailRemove   bool
	ShouldFailKill     bool
	// ForwardKill delivers recorded signals for real.
	ForwardKill bool

	// Call tracking
	OpenFileCalls []string
	RemoveCalls   []string
	KillCalls     []KillCall
}

type KillCall struct {
	PID    int
	Signal syscall.Signal
}

// NewMockPlatform creates a new mock platform for testing
func NewMockPlatform() *MockPlatform {
	return &MockPlatform{
		BasePlatform: NewBasePlatform(),
	}
}

func (mp *MockPlatform) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	mp.mu.Lock()
	mp.OpenFileCalls = append(mp.OpenFileCalls, name)
	fail := mp.ShouldFailOpenFile
	mp.mu.Unlock()

	if fail {
		return nil, NewPlatformError("mock", "openfile", os.ErrPermission)
	}
	return mp.BasePlatform.OpenFile(name, flag, perm)
}

func (mp *MockPlatform) Remove(name string) error {
	mp.mu.Lock()
	mp.RemoveCalls = append(mp.RemoveCalls, name)
	fail := mp.ShouldFailRemove
	mp.mu.Unlock()

	if fail {
		return NewPlatformError("mock", "remove", os.ErrPermission)
	}
	return mp.BasePlatform.Remove(name)
}

func (mp *MockPlatform) Kill(pid int, sig syscall.Signal) error {
	mp.mu.Lock()
	mp.KillCalls = append(mp.KillCalls, KillCall{PID: pid, Signal: sig})
	fail, forward := mp.ShouldFailKill, mp.ForwardKill
	mp.mu.Unlock()

	if fail {
		return NewPlatformError("mock", "kill", syscall.ESRCH)
	}
	if forward {
		return mp.BasePlatform.Kill(pid, sig)
	}
	return nil
}

func (mp *MockPlatform) GetInfo() *Info {
	return &Info{
		OS:            "mock",
		Architecture:  "mock",
		ProcessGroups: true,
	}
}

// Kills returns a copy of the recorded signals.
func (mp *MockPlatform) Kills() []KillCall {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	return append([]KillCall(nil), mp.KillCalls...)
}

// Removes returns a copy of the recorded removals.
func (mp *MockPlatform) Removes() []string {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	return append([]string(nil), mp.RemoveCalls...)
}

// Reset clears all call tracking
func (mp *MockPlatform) Reset() {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.OpenFileCalls = nil
	mp.RemoveCalls = nil
	mp.KillCalls = nil
	mp.ShouldFailOpenFile = false
	mp.ShouldFailRemove = false
	mp.ShouldFailKill = false
	mp.ForwardKill = false
}

var _ Platform = (*MockPlatform)(nil)
