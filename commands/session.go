// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cybrota/baltree/avl"
	"github.com/guiguan/caster"
	"github.com/patrickmn/go-cache"
)

const (
	// DefaultDepthCacheTTL bounds how long a memoized depth answer is kept.
	// Every mutation flushes the cache anyway.
	DefaultDepthCacheTTL = 5 * time.Minute
)

// RotationEvent describes one rebalancing step applied by the session's tree.
type RotationEvent struct {
	Case  avl.Rotation
	Pivot int
}

func (e RotationEvent) String() string {
	return fmt.Sprintf("%s rotation at %d", e.Case, e.Pivot)
}

// SessionOptions configures a Session.
type SessionOptions struct {
	DepthCacheTTL time.Duration
	// Events, if set, receives one []RotationEvent per PublishRotations call
	// that has something to report. The session never closes it.
	Events *caster.Caster
}

// Session owns the integer tree an interpreter works on.
type Session struct {
	Tree *avl.Tree[int]

	depthCache  *cache.Cache
	cacheHits   int
	cacheMisses int
	events      *caster.Caster
	rotations   []RotationEvent
	unpublished []RotationEvent
}

// NewSession creates a session with an empty tree.
func NewSession(opts SessionOptions) *Session {
	ttl := opts.DepthCacheTTL
	if ttl <= 0 {
		ttl = DefaultDepthCacheTTL
	}
	s := &Session{
		depthCache: cache.New(ttl, 2*ttl),
		events:     opts.Events,
	}
	s.Tree = avl.New(avl.WithRotationHook(s.onRotation))
	return s
}

func (s *Session) onRotation(r avl.Rotation, pivot int) {
	ev := RotationEvent{Case: r, Pivot: pivot}
	s.rotations = append(s.rotations, ev)
	s.unpublished = append(s.unpublished, ev)
}

// PublishRotations hands the rebalancing steps recorded since the last call to
// the Events caster as a single batch. It never blocks: a batch is dropped when
// a subscriber is not keeping up. It reports whether a batch was delivered.
func (s *Session) PublishRotations() bool {
	batch := s.unpublished
	s.unpublished = nil
	if s.events == nil || len(batch) == 0 {
		return false
	}
	return s.events.TryPub(batch)
}

// TakeRotations returns the rebalancing steps since the last call.
func (s *Session) TakeRotations() []RotationEvent {
	r := s.rotations
	s.rotations = nil
	return r
}

// Insert adds key to the tree.
func (s *Session) Insert(key int) error {
	if err := s.Tree.Insert(key); err != nil {
		return err
	}
	s.depthCache.Flush()
	return nil
}

// Delete removes key and reports whether it was present.
func (s *Session) Delete(key int) bool {
	removed := s.Tree.Delete(key)
	if removed {
		s.depthCache.Flush()
	}
	return removed
}

// Clear empties the tree and its statistics.
func (s *Session) Clear() {
	s.Tree.Clear()
	s.Tree.ResetStats()
	s.depthCache.Flush()
	s.rotations = nil
	s.unpublished = nil
}

// Depth answers a depth query, memoizing results until the next mutation.
func (s *Session) Depth(key int) (int, bool) {
	k := strconv.Itoa(key)
	if v, ok := s.depthCache.Get(k); ok {
		s.cacheHits++
		level := v.(int)
		return level, level >= 0
	}
	s.cacheMisses++
	level, found := s.Tree.Depth(key)
	s.depthCache.Set(k, level, cache.DefaultExpiration)
	return level, found
}

// CacheStats returns depth cache hits, misses and current entries.
func (s *Session) CacheStats() (hits, misses, entries int) {
	return s.cacheHits, s.cacheMisses, s.depthCache.ItemCount()
}
