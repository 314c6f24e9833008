// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package board

import "sync"

// zobrist holds one random key per (cell, stone color). Empty cells hash
// to zero so a fresh board has a zero key.
type zobrist struct {
	keys []uint64
}

func (z *zobrist) key(index int, c Color) uint64 {
	if c == Empty {
		return 0
	}

	return z.keys[index*2+int(c)-1]
}

var zobristTables sync.Map // map[int]*zobrist

func zobristFor(size int) *zobrist {
	if z, ok := zobristTables.Load(size); ok {
		return z.(*zobrist)
	}

	// Seed deterministically so keys are stable across runs.
	rng := splitmix64(0x9e3779b97f4a7c15 ^ uint64(size))
	z := &zobrist{keys: make([]uint64, size*size*2)}
	for i := range z.keys {
		z.keys[i] = rng.next()
	}

	actual, _ := zobristTables.LoadOrStore(size, z)
	return actual.(*zobrist)
}

type splitmix64 uint64

func (s *splitmix64) next() uint64 {
	*s += 0x9e3779b97f4a7c15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
