// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package contract

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Fantom-foundation/Arca/go/arca"
	"github.com/Fantom-foundation/Arca/go/storage"
	"github.com/holiman/uint256"
)

func TestEncodeCall_StartsWithBigEndianSelector(t *testing.T) {
	input := EncodeCall(arca.Selector(0x01020304), uint64(5))
	if want := []byte{1, 2, 3, 4, 5}; !bytes.Equal(want, input) {
		t.Errorf("unexpected encoding, wanted %x, got %x", want, input)
	}
	input = EncodeCall(arca.Selector(0x01020304), NoArgs{})
	if want := []byte{1, 2, 3, 4}; !bytes.Equal(want, input) {
		t.Errorf("unexpected encoding, wanted %x, got %x", want, input)
	}
}

func TestEncodeDeploy_NoArgsAreEmpty(t *testing.T) {
	if input := EncodeDeploy(NoArgs{}); len(input) != 0 {
		t.Errorf("unexpected encoding: %x", input)
	}
}

func TestDecodeResult_EmptyResults(t *testing.T) {
	if _, err := DecodeResult[NoResult](nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := DecodeResult[NoResult]([]byte{1}); !errors.Is(err, arca.ErrDecode) {
		t.Errorf("expected decode error, got %v", err)
	}
	if _, err := DecodeResult[uint64](nil); !errors.Is(err, arca.ErrDecode) {
		t.Errorf("expected decode error, got %v", err)
	}
}

type transferArgs struct {
	To     arca.Address
	Amount uint256.Int
}

func TestMessageInfo_JsonConversion(t *testing.T) {
	info := Mut(1, "transfer", func(*Env[testState], transferArgs) bool { return true }).Info()

	payload, err := info.ArgsFromJSON([]byte(`{"To":"0x0000000000000000000000000000000000000042","Amount":"1000"}`))
	if err != nil {
		t.Fatalf("failed to convert arguments: %v", err)
	}
	want := storage.Encode(transferArgs{To: arca.Address{19: 0x42}, Amount: *uint256.NewInt(1000)})
	if !bytes.Equal(want, payload) {
		t.Errorf("unexpected payload, wanted %x, got %x", want, payload)
	}

	result, err := info.ResultToJSON(storage.Encode(true))
	if err != nil {
		t.Fatalf("failed to convert result: %v", err)
	}
	if want, got := "true", string(result); want != got {
		t.Errorf("unexpected result, wanted %s, got %s", want, got)
	}

	if _, err := info.ArgsFromJSON([]byte(`{"To":12}`)); err == nil {
		t.Errorf("malformed arguments should be rejected")
	}
}

func TestMessageInfo_EmptyJsonDenotesNoArguments(t *testing.T) {
	info := View(1, "get", func(*Env[testState], NoArgs) uint64 { return 0 }).Info()
	payload, err := info.ArgsFromJSON(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload) != 0 {
		t.Errorf("unexpected payload: %x", payload)
	}
}

func TestMessageInfo_String(t *testing.T) {
	info := View(0x10, "get", func(*Env[testState], NoArgs) uint64 { return 0 }).Info()
	if want, got := "0x00000010 get() uint64 [view]", info.String(); want != got {
		t.Errorf("unexpected string, wanted %q, got %q", want, got)
	}
}

func TestMessageInfo_ZeroValueHasNoConversions(t *testing.T) {
	if _, err := (MessageInfo{}).ArgsFromJSON(nil); err == nil {
		t.Errorf("zero message info should not convert arguments")
	}
	if _, err := (MessageInfo{}).ResultToJSON(nil); err == nil {
		t.Errorf("zero message info should not convert results")
	}
}
