// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package arca

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"pgregory.net/rand"
)

func TestKey_AddUint32_AddsToLowOrderBytes(t *testing.T) {
	key00 := Key{}
	key05 := key00.AddUint32(5)
	key10 := key00.AddUint32(10)
	key55 := key05.AddUint32(5)

	if want, got := KeyFromUint64(5), key05; want != got {
		t.Errorf("unexpected key, wanted %v, got %v", want, got)
	}
	if key10 != key55 {
		t.Errorf("offsets are not additive, %v != %v", key10, key55)
	}
	if key05[31] != 5 {
		t.Errorf("expected least significant byte to be set, got %v", key05)
	}
}

func TestKey_Add_PropagatesCarry(t *testing.T) {
	tests := map[string]struct {
		key    Key
		offset uint64
		want   Key
	}{
		"within byte": {
			key:    Key{31: 0x01},
			offset: 1,
			want:   Key{31: 0x02},
		},
		"into next byte": {
			key:    Key{31: 0xff},
			offset: 1,
			want:   Key{30: 0x01},
		},
		"across 64-bit word": {
			key:    Key{24: 0xff, 25: 0xff, 26: 0xff, 27: 0xff, 28: 0xff, 29: 0xff, 30: 0xff, 31: 0xff},
			offset: 1,
			want:   Key{23: 0x01},
		},
		"up to most significant byte": {
			key: Key{
				1: 0xff, 2: 0xff, 3: 0xff, 4: 0xff, 5: 0xff, 6: 0xff, 7: 0xff, 8: 0xff,
				9: 0xff, 10: 0xff, 11: 0xff, 12: 0xff, 13: 0xff, 14: 0xff, 15: 0xff, 16: 0xff,
				17: 0xff, 18: 0xff, 19: 0xff, 20: 0xff, 21: 0xff, 22: 0xff, 23: 0xff, 24: 0xff,
				25: 0xff, 26: 0xff, 27: 0xff, 28: 0xff, 29: 0xff, 30: 0xff, 31: 0xff,
			},
			offset: 1,
			want:   Key{0: 0x01},
		},
		"large offset": {
			key:    Key{},
			offset: math.MaxUint64,
			want:   Key{24: 0xff, 25: 0xff, 26: 0xff, 27: 0xff, 28: 0xff, 29: 0xff, 30: 0xff, 31: 0xff},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := test.key.AddUint64(test.offset); got != test.want {
				t.Errorf("unexpected sum, wanted %v, got %v", test.want, got)
			}
			if test.offset <= math.MaxUint32 {
				if got := test.key.AddUint32(uint32(test.offset)); got != test.want {
					t.Errorf("unexpected 32-bit sum, wanted %v, got %v", test.want, got)
				}
			}
		})
	}
}

func TestKey_AddAssign_UpdatesKey(t *testing.T) {
	key := Key{}
	key.AddAssignUint32(7)
	key.AddAssignUint64(3)
	if want := KeyFromUint64(10); key != want {
		t.Errorf("unexpected key, wanted %v, got %v", want, key)
	}
}

func TestKey_Add_OverflowIsFatalForAllWidths(t *testing.T) {
	max := Key{}
	for i := range max {
		max[i] = 0xff
	}

	tests := map[string]func(){
		"uint32":        func() { max.AddUint32(1) },
		"uint64":        func() { max.AddUint64(1) },
		"assign uint32": func() { k := max; k.AddAssignUint32(1) },
		"assign uint64": func() { k := max; k.AddAssignUint64(math.MaxUint64) },
	}

	for name, op := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("expected panic with error, got %v", r)
				}
				if !errors.Is(err, ErrAddressOverflow) {
					t.Errorf("unexpected panic, wanted %v, got %v", ErrAddressOverflow, err)
				}
				if !IsFatal(err) {
					t.Errorf("overflow should be fatal")
				}
			}()
			op()
		})
	}
}

func TestKey_Add_IsAssociative(t *testing.T) {
	rnd := rand.New(0)
	for i := 0; i < 1000; i++ {
		var key Key
		rnd.Read(key[:])
		key[0] = 0 // leave head room to rule out overflows
		a := rnd.Uint32()
		b := rnd.Uint32()

		lhs := key.AddUint32(a).AddUint32(b)
		rhs := key.AddUint64(uint64(a) + uint64(b))
		if lhs != rhs {
			t.Fatalf("(%v + %d) + %d = %v != %v = %v + (%d + %d)", key, a, b, lhs, rhs, key, a, b)
		}
	}
}

func TestKey_Bytes(t *testing.T) {
	key := Key{0x42}
	data := key.Bytes()
	data[0] = 0
	if key[0] != 0x42 {
		t.Errorf("modifying a copy should not affect the key")
	}

	key.MutableBytes()[0] = 0x21
	if key[0] != 0x21 {
		t.Errorf("mutable bytes should modify the key")
	}
}

func TestKey_Cmp(t *testing.T) {
	if KeyFromUint64(1).Cmp(KeyFromUint64(2)) >= 0 {
		t.Errorf("1 should be less than 2")
	}
	if KeyFromUint64(2).Cmp(KeyFromUint64(2)) != 0 {
		t.Errorf("2 should be equal to 2")
	}
	if (Key{1}).Cmp(KeyFromUint64(math.MaxUint64)) <= 0 {
		t.Errorf("high order bytes should dominate")
	}
}

func TestKey_JSON_RoundTrip(t *testing.T) {
	key := Key{1, 2, 3, 31: 4}
	encoded, err := json.Marshal(key)
	if err != nil {
		t.Fatalf("failed to encode key: %v", err)
	}
	want := "\"0x0102030000000000000000000000000000000000000000000000000000000004\""
	if got := string(encoded); got != want {
		t.Errorf("unexpected encoding, wanted %v, got %v", want, got)
	}
	var restored Key
	if err := json.Unmarshal(encoded, &restored); err != nil {
		t.Fatalf("failed to decode key: %v", err)
	}
	if restored != key {
		t.Errorf("unexpected restored key, wanted %v, got %v", key, restored)
	}
}

func TestKey_JSON_InvalidValueDecodingFails(t *testing.T) {
	tests := map[string]string{
		"empty":         "\"\"",
		"no hex prefix": "\"0000000000000000000000000000000000000000000000000000000000000000\"",
		"too short":     "\"0x00\"",
		"invalid hex":   "\"0x0g00000000000000000000000000000000000000000000000000000000000000\"",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			var key Key
			if json.Unmarshal([]byte(data), &key) == nil {
				t.Errorf("expected decoding to fail, but instead it produced %v", key)
			}
		})
	}
}
