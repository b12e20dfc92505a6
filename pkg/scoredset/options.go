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

package scoredset

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Option is a functional option for configuring the set.
type Option[T comparable] func(s *ScoredSet[T])

// WithName sets the name used in logs and metric labels.
func WithName[T comparable](name string) Option[T] {
	return func(s *ScoredSet[T]) {
		s.name = name
	}
}

// WithCloneFunc sets the function duplicating items on every read.
// Without it items are copied by value.
func WithCloneFunc[T comparable](clone func(T) T) Option[T] {
	return func(s *ScoredSet[T]) {
		s.clone = clone
	}
}

// WithRegisterer sets the registerer of the set collector,
// it is used only when metrics are enabled.
func WithRegisterer[T comparable](registerer prometheus.Registerer) Option[T] {
	return func(s *ScoredSet[T]) {
		s.registerer = registerer
	}
}
