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

package slices

// Index returns the index of the first occurrence of e in s,
// or -1 if not present.
func Index[T comparable](s []T, e T) int {
	for i, v := range s {
		if v == e {
			return i
		}
	}

	return -1
}

// Contains returns true if an element is present in a collection.
func Contains[T comparable](s []T, e T) bool {
	return Index(s, e) >= 0
}

// Remove removes the element at index i from a collection, keeping the order
// of the remaining elements. The backing array is reused.
func Remove[T any](s []T, i int) []T {
	n := copy(s[i:], s[i+1:])

	var zero T
	s[i+n] = zero
	return s[:i+n]
}

// DeleteFunc removes every element for which del returns true, keeping the
// order of the remaining elements. It returns the shrunk collection and the
// number of removed elements. The backing array is reused.
func DeleteFunc[T any](s []T, del func(T) bool) ([]T, int) {
	n := 0
	for _, v := range s {
		if !del(v) {
			s[n] = v
			n++
		}
	}

	var zero T
	for i := n; i < len(s); i++ {
		s[i] = zero
	}

	return s[:n], len(s) - n
}

// Clone returns a shallow copy of a collection, nil stays nil.
func Clone[S ~[]T, T any](s S) S {
	if s == nil {
		return nil
	}

	return append(make(S, 0, len(s)), s...)
}

// CloneFunc returns a copy of a collection where every element
// is duplicated by clone, nil stays nil.
func CloneFunc[S ~[]T, T any](s S, clone func(T) T) S {
	if s == nil {
		return nil
	}

	result := make(S, len(s))
	for i, v := range s {
		result[i] = clone(v)
	}

	return result
}
