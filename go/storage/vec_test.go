// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package storage

import (
	"errors"
	"testing"

	"github.com/Fantom-foundation/Arca/go/arca"
	"github.com/Fantom-foundation/Arca/go/backend"
)

func TestVec_PushGetPop(t *testing.T) {
	vec := NewVec[string](newTestSpace(backend.NewMemoryStorage()), "v")
	if _, found := vec.Pop(); found {
		t.Errorf("popping from an empty vector should fail")
	}
	vec.Push("a")
	vec.Push("b")
	vec.Push("c")
	if want, got := uint32(3), vec.Len(); want != got {
		t.Fatalf("unexpected length, wanted %d, got %d", want, got)
	}
	for i, want := range []string{"a", "b", "c"} {
		if got, found := vec.Get(uint32(i)); !found || want != got {
			t.Errorf("unexpected element %d, wanted %q, got %q", i, want, got)
		}
	}
	if _, found := vec.Get(3); found {
		t.Errorf("access out of range should fail")
	}
	if got, found := vec.Pop(); !found || got != "c" {
		t.Errorf("unexpected popped element, got %q, %t", got, found)
	}
	if want, got := uint32(2), vec.Len(); want != got {
		t.Errorf("unexpected length, wanted %d, got %d", want, got)
	}
}

func TestVec_ElementsAreStoredAfterTheLength(t *testing.T) {
	storage := backend.NewMemoryStorage()
	space := NewSpace(NewBumpAlloc(arca.KeyFromUint64(100)), storage, nil)
	vec := NewVec[uint64](space, "v")
	vec.Push(7)
	vec.Push(8)

	want := backend.MemoryStorage{
		arca.KeyFromUint64(100): Encode(uint32(2)),
		arca.KeyFromUint64(101): Encode(uint64(7)),
		arca.KeyFromUint64(102): Encode(uint64(8)),
	}
	if !storage.Equal(want) {
		t.Errorf("unexpected storage content: %v", storage.Diff(want))
	}
}

func TestVec_SetAndSwapRespectBounds(t *testing.T) {
	vec := NewVec[uint64](newTestSpace(backend.NewMemoryStorage()), "v")
	if vec.Set(0, 1) {
		t.Errorf("setting an element out of range should fail")
	}
	vec.Push(1)
	vec.Push(2)
	if !vec.Set(0, 3) {
		t.Errorf("setting an element in range should succeed")
	}
	if vec.Swap(0, 2) {
		t.Errorf("swapping an element out of range should fail")
	}
	if !vec.Swap(0, 1) {
		t.Errorf("swapping elements in range should succeed")
	}
	for i, want := range []uint64{2, 3} {
		if got, _ := vec.Get(uint32(i)); want != got {
			t.Errorf("unexpected element %d, wanted %d, got %d", i, want, got)
		}
	}
}

func TestVec_PushOnFullVectorIsFatal(t *testing.T) {
	storage := backend.NewMemoryStorage()
	vec := NewVec[uint64](newTestSpace(storage), "v")
	storage.Store(vec.Key(), Encode(uint32(MaxVecLen)))

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, arca.ErrAddressOverflow) {
			t.Errorf("expected address overflow, got %v", err)
		}
	}()
	vec.Push(1)
	t.Errorf("pushing to a full vector should panic")
}

func TestVec_MissingElementIsFatal(t *testing.T) {
	tests := map[string]func(*Vec[uint64]){
		"get":  func(v *Vec[uint64]) { v.Get(0) },
		"pop":  func(v *Vec[uint64]) { v.Pop() },
		"swap": func(v *Vec[uint64]) { v.Swap(0, 1) },
	}
	for name, op := range tests {
		t.Run(name, func(t *testing.T) {
			storage := backend.NewMemoryStorage()
			vec := NewVec[uint64](newTestSpace(storage), "v")
			vec.Push(1)
			vec.Push(2)
			storage.Clear(vec.elementKey(0))
			if name == "pop" {
				storage.Clear(vec.elementKey(1))
			}
			want := storage.Clone()

			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, arca.ErrDecode) {
					t.Errorf("expected decode error, got %v", err)
				}
				if !storage.Equal(want) {
					t.Errorf("failed operation should not modify storage, diff: %v", storage.Diff(want))
				}
			}()
			op(vec)
			t.Errorf("accessing a missing element should panic")
		})
	}
}
