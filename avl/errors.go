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

package avl

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned by Insert when the key is already stored.
	ErrDuplicateKey = errors.New("avl: duplicate key")
	// ErrCorrupt signals a violated structural invariant, reported by Check.
	ErrCorrupt = errors.New("avl: tree invariant violated")
)

// DuplicateKeyError carries the key rejected by Insert.
// It matches ErrDuplicateKey with errors.Is.
type DuplicateKeyError[K any] struct {
	Key K
}

func (e *DuplicateKeyError[K]) Error() string {
	return fmt.Sprintf("%s: %v", ErrDuplicateKey, e.Key)
}

func (e *DuplicateKeyError[K]) Is(target error) bool {
	return target == ErrDuplicateKey
}
