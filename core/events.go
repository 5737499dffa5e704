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

import (
	"sync"

	"github.com/bridgeum/go-bridgeum/common"
	"github.com/holiman/uint256"
)

// Event is the union of records the bridge publishes. Events are delivered
// inside the same critical section as the state transition that produced
// them, so a subscriber never observes an intermediate state such as
// minted-but-not-consumed.
type Event interface{}

// BalanceIncreasedEvent is published after a successful mint.
type BalanceIncreasedEvent struct {
	Recipient common.Address
	Amount    *uint256.Int
}

// BalanceDecreasedEvent is published after a successful burn.
type BalanceDecreasedEvent struct {
	Account common.Address
	Amount  *uint256.Int
}

// SwapIntentEvent instructs the external bridging process to release the
// underlying asset on the other side. It is emitted atomically with the burn
// that backs it.
type SwapIntentEvent struct {
	Initiator   common.Address
	Destination string
	Amount      *uint256.Int
}

// PauseStateChangedEvent is published on every pause gate transition.
type PauseStateChangedEvent struct {
	Paused bool
}

// RoleGrantedEvent is published when an identity newly acquires a role.
type RoleGrantedEvent struct {
	Role     Role
	Identity common.Address
	Grantor  common.Address
}

// RoleRevokedEvent is published when an identity actually loses a role.
// Revoking an unheld role is a silent no-op and publishes nothing.
type RoleRevokedEvent struct {
	Role     Role
	Identity common.Address
	Revoker  common.Address
}

// Subscription is a handle on an event feed registration.
type Subscription struct {
	feed *eventFeed
	ch   chan<- Event
}

// Unsubscribe removes the channel from the feed. It is safe to call more
// than once.
func (s *Subscription) Unsubscribe() {
	s.feed.unsubscribe(s.ch)
}

// eventFeed fans bridge events out to subscriber channels. Delivery is
// non-blocking: a subscriber whose channel is full misses the event, so
// subscribers must size their buffers for the burst they expect. The feed
// never stalls a state transition on a slow consumer.
type eventFeed struct {
	mu   sync.Mutex
	subs map[chan<- Event]struct{}
}

func (f *eventFeed) subscribe(ch chan<- Event) *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subs == nil {
		f.subs = make(map[chan<- Event]struct{})
	}
	f.subs[ch] = struct{}{}
	return &Subscription{feed: f, ch: ch}
}

func (f *eventFeed) unsubscribe(ch chan<- Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.subs, ch)
}

func (f *eventFeed) send(ev Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for ch := range f.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
