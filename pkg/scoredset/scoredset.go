/*
 *     Copyright 2022 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package scoredset provides a concurrent multimap from int32 scores to
// insertion ordered buckets of items, with scores kept in ascending order.
//
// A single read/write mutex guards the whole set. Read operations return
// copies of the stored buckets, so callers never share storage with the set.
// A score whose bucket becomes empty is deleted immediately.
package scoredset

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	godsutils "github.com/emirpasic/gods/utils"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"

	logger "d7y.io/scoredset/internal/dflog"
	"d7y.io/scoredset/pkg/math"
	"d7y.io/scoredset/pkg/slices"
)

// ScoreItems is a score and a copy of the items stored under it.
type ScoreItems[T any] struct {
	Score int32
	Items []T
}

type bucket[T comparable] struct {
	items []T
}

// ScoredSet is a score ordered multimap safe for concurrent use.
// The zero value is not usable, create one with New or NewWithConfig.
type ScoredSet[T comparable] struct {
	mu   sync.RWMutex
	tree *treemap.Map

	name       string
	clone      func(T) T
	registerer prometheus.Registerer
	log        *logger.SugaredLoggerOnWith

	// count is the number of stored items.
	count   *atomic.Int64
	adds    *atomic.Uint64
	removes *atomic.Uint64
	moves   *atomic.Uint64
}

// New returns an empty set.
func New[T comparable](options ...Option[T]) *ScoredSet[T] {
	s := &ScoredSet[T]{
		tree:       treemap.NewWith(godsutils.Int32Comparator),
		name:       DefaultName,
		registerer: prometheus.DefaultRegisterer,
		count:      atomic.NewInt64(0),
		adds:       atomic.NewUint64(0),
		removes:    atomic.NewUint64(0),
		moves:      atomic.NewUint64(0),
	}

	for _, opt := range options {
		opt(s)
	}

	s.log = logger.WithScoredSet(s.name)
	return s
}

// Name returns the name of the set.
func (s *ScoredSet[T]) Name() string {
	return s.name
}

// Add appends item to the bucket of score, the bucket is created when absent.
func (s *ScoredSet[T]) Add(score int32, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.add(score, item)
	s.count.Inc()
	s.adds.Inc()
}

// Remove deletes every item equal to item from the bucket of score and
// reports whether anything was deleted. The score is dropped when its
// bucket becomes empty.
func (s *ScoredSet[T]) Remove(score int32, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.load(score)
	if !ok {
		return false
	}

	var n int
	b.items, n = slices.DeleteFunc(b.items, func(v T) bool {
		return v == item
	})
	if n == 0 {
		return false
	}

	s.count.Sub(int64(n))
	s.removes.Add(uint64(n))
	s.drain(score, b)
	return true
}

// UpdateScore moves the first item equal to item from the bucket of oldScore
// to the end of the bucket of newScore. Nothing changes when oldScore holds
// no such item. It reports whether an item was moved.
func (s *ScoredSet[T]) UpdateScore(oldScore, newScore int32, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.load(oldScore)
	if !ok {
		return false
	}

	i := slices.Index(b.items, item)
	if i < 0 {
		return false
	}

	moved := b.items[i]
	b.items = slices.Remove(b.items, i)
	s.drain(oldScore, b)
	s.add(newScore, moved)
	s.moves.Inc()

	s.log.Debugf("item moved from score %d to score %d", oldScore, newScore)
	return true
}

// Get returns a copy of the bucket of score, false when score has no entry.
func (s *ScoredSet[T]) Get(score int32) ([]T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.load(score)
	if !ok {
		return nil, false
	}

	return s.copy(b.items), true
}

// Contains reports whether an item equal to item is stored under score.
func (s *ScoredSet[T]) Contains(score int32, item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.load(score)
	if !ok {
		return false
	}

	return slices.Contains(b.items, item)
}

// HighestScores returns at most n scores with their items, in descending order.
func (s *ScoredSet[T]) HighestScores(n int) []ScoreItems[T] {
	return s.collect(n, true)
}

// LowestScores returns at most n scores with their items, in ascending order.
func (s *ScoredSet[T]) LowestScores(n int) []ScoreItems[T] {
	return s.collect(n, false)
}

// HighestScore returns the greatest score with its items, false when the set is empty.
func (s *ScoredSet[T]) HighestScore() (ScoreItems[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.entry(s.tree.Max())
}

// LowestScore returns the least score with its items, false when the set is empty.
func (s *ScoredSet[T]) LowestScore() (ScoreItems[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.entry(s.tree.Min())
}

// AllScores returns every distinct score in ascending order.
func (s *ScoredSet[T]) AllScores() []int32 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := s.tree.Keys()
	scores := make([]int32, 0, len(keys))
	for _, k := range keys {
		scores = append(scores, k.(int32))
	}

	return scores
}

// Range calls fn for every score in ascending order until fn returns false.
// fn must not modify the set.
func (s *ScoredSet[T]) Range(fn func(score int32, items []T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it := s.tree.Iterator()
	for it.Next() {
		if !fn(it.Key().(int32), s.copy(it.Value().(*bucket[T]).items)) {
			return
		}
	}
}

// ReverseRange calls fn for every score in descending order until fn returns false.
// fn must not modify the set.
func (s *ScoredSet[T]) ReverseRange(fn func(score int32, items []T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it := s.tree.Iterator()
	for it.End(); it.Prev(); {
		if !fn(it.Key().(int32), s.copy(it.Value().(*bucket[T]).items)) {
			return
		}
	}
}

// Len returns the number of stored items.
func (s *ScoredSet[T]) Len() int {
	return int(s.count.Load())
}

// ScoreCount returns the number of distinct scores.
func (s *ScoredSet[T]) ScoreCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Size()
}

// Clear removes every score.
func (s *ScoredSet[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.count.Swap(0)
	s.removes.Add(uint64(n))
	s.tree.Clear()
}

func (s *ScoredSet[T]) AddCount() uint64 {
	return s.adds.Load()
}

func (s *ScoredSet[T]) RemoveCount() uint64 {
	return s.removes.Load()
}

func (s *ScoredSet[T]) MoveCount() uint64 {
	return s.moves.Load()
}

func (s *ScoredSet[T]) load(score int32) (*bucket[T], bool) {
	v, ok := s.tree.Get(score)
	if !ok {
		return nil, false
	}

	return v.(*bucket[T]), true
}

func (s *ScoredSet[T]) add(score int32, item T) {
	b, ok := s.load(score)
	if !ok {
		b = &bucket[T]{}
		s.tree.Put(score, b)
		s.log.Debugf("score %d created", score)
	}

	b.items = append(b.items, item)
}

// drain deletes score once its bucket is empty.
func (s *ScoredSet[T]) drain(score int32, b *bucket[T]) {
	if len(b.items) > 0 {
		return
	}

	s.tree.Remove(score)
	s.log.Debugf("score %d drained", score)
}

func (s *ScoredSet[T]) copy(items []T) []T {
	if s.clone != nil {
		return slices.CloneFunc(items, s.clone)
	}

	return slices.Clone(items)
}

func (s *ScoredSet[T]) entry(k, v any) (ScoreItems[T], bool) {
	if k == nil {
		return ScoreItems[T]{}, false
	}

	return ScoreItems[T]{
		Score: k.(int32),
		Items: s.copy(v.(*bucket[T]).items),
	}, true
}

func (s *ScoredSet[T]) collect(n int, reverse bool) []ScoreItems[T] {
	if n <= 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]ScoreItems[T], 0, math.Clamp(n, 0, s.tree.Size()))
	it := s.tree.Iterator()
	next := it.Next
	if reverse {
		it.End()
		next = it.Prev
	}

	for len(result) < n && next() {
		result = append(result, ScoreItems[T]{
			Score: it.Key().(int32),
			Items: s.copy(it.Value().(*bucket[T]).items),
		})
	}

	return result
}
