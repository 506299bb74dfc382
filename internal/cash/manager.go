package cash

import (
	"fmt"
	"log"
	"sync"

	"Portfolioo/internal/model"
)

// Manager holds the user-entered cash balance and persists every change.
type Manager struct {
	mu       sync.Mutex
	state    *model.CashState
	filePath string
}

// NewManager loads the cash state from disk. initial is used only when no state exists yet.
func NewManager(filePath string, initial int64) (*Manager, error) {
	if initial < 0 {
		return nil, fmt.Errorf("initial cash must not be negative: %d", initial)
	}
	state, err := LoadState(filePath)
	if err != nil {
		return nil, fmt.Errorf("load cash state: %w", err)
	}

	m := &Manager{state: state, filePath: filePath}
	if state == nil {
		m.state = &model.CashState{Amount: initial}
		if err := m.save(); err != nil {
			return nil, fmt.Errorf("save cash state: %w", err)
		}
		log.Printf("[INFO] cash state initialized at %s", filePath)
	}
	return m, nil
}

// Amount returns the current cash balance.
func (m *Manager) Amount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Amount
}

// Reload re-reads the persisted state so that a change saved by another
// process is seen. On error the in-memory balance is returned with the error.
func (m *Manager) Reload() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := LoadState(m.filePath)
	if err != nil {
		return m.state.Amount, fmt.Errorf("load cash state: %w", err)
	}
	if state != nil {
		m.state = state
	}
	return m.state.Amount, nil
}

// GetState returns a copy of the current cash state.
func (m *Manager) GetState() model.CashState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.state
}

// Set replaces the cash balance and persists it. It returns the previous balance.
func (m *Manager) Set(amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("cash must not be negative: %d", amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.state.Amount
	m.state.Amount = amount
	if err := m.save(); err != nil {
		m.state.Amount = prev
		return prev, fmt.Errorf("save cash state: %w", err)
	}
	return prev, nil
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
