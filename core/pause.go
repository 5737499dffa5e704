// Copyright 2025 The go-bridgeum Authors
// This file is part of the go-bridgeum library.
//
// The go-bridgeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-bridgeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-bridgeum library. If not, see <http://www.gnu.org/licenses/>.

package core

import "sync"

// PauseGate is the single switch gating state-mutating bridge operations.
// It is pure mechanism: the PAUSER role check lives in the bridge controller.
// Redundant transitions are rejected so operators notice double pausing.
type PauseGate struct {
	mu     sync.Mutex
	paused bool
}

// IsPaused reports whether the gate is engaged.
func (g *PauseGate) IsPaused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paused
}

// Pause engages the gate. It fails with ErrAlreadyPaused if already engaged.
func (g *PauseGate) Pause() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.paused {
		return ErrAlreadyPaused
	}
	g.paused = true
	return nil
}

// Unpause releases the gate. It fails with ErrNotPaused if not engaged.
func (g *PauseGate) Unpause() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.paused {
		return ErrNotPaused
	}
	g.paused = false
	return nil
}
