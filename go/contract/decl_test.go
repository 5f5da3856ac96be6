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
	"errors"
	"testing"

	"github.com/Fantom-foundation/Arca/go/arca"
)

func TestDecl_InvalidDeclarationsAreRejected(t *testing.T) {
	noop := func(*Env[testState], NoArgs) NoResult { return NoResult{} }
	initializer := Deploy(func(*Env[testState], NoArgs) {})

	tests := map[string]struct {
		decl *Decl[testState]
		want error
	}{
		"selector collision": {
			decl: Declare("test", testLayout).
				On(View(1, "a", noop)).
				On(Mut(1, "b", noop)),
			want: ErrSelectorCollision,
		},
		"duplicate name": {
			decl: Declare("test", testLayout).
				On(View(1, "a", noop)).
				On(Mut(2, "a", noop)),
			want: ErrDuplicateName,
		},
		"duplicate initializer": {
			decl: Declare("test", testLayout).
				OnDeploy(initializer).
				OnDeploy(initializer),
			want: ErrDuplicateDeploy,
		},
		"message as initializer": {
			decl: Declare("test", testLayout).
				OnDeploy(View(1, "a", noop)),
			want: ErrInvalidHandler,
		},
		"initializer as message": {
			decl: Declare("test", testLayout).
				On(initializer),
			want: ErrInvalidHandler,
		},
		"zero handler": {
			decl: Declare("test", testLayout).
				On(Handler[testState]{}),
			want: ErrInvalidHandler,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := test.decl.Instantiate()
			if !errors.Is(err, test.want) {
				t.Errorf("unexpected error, wanted %v, got %v", test.want, err)
			}
		})
	}
}

func TestDecl_MissingLayoutIsRejected(t *testing.T) {
	if _, err := Declare[testState]("test", nil).Instantiate(); err == nil {
		t.Errorf("declaration without layout should be rejected")
	}
}

func TestDecl_NegativeKeyCacheSizeIsRejected(t *testing.T) {
	config := DefaultConfig()
	config.KeyCacheSize = -1
	if _, err := declareTestContract().WithConfig(config).Instantiate(); err == nil {
		t.Errorf("negative cache size should be rejected")
	}
}

func TestDecl_LayoutExceedingKeySpaceIsRejected(t *testing.T) {
	config := DefaultConfig()
	for i := range config.BaseKey {
		config.BaseKey[i] = 0xff
	}
	_, err := declareTestContract().WithConfig(config).Instantiate()
	if !errors.Is(err, arca.ErrAddressOverflow) {
		t.Errorf("expected address overflow, got %v", err)
	}
}

func TestDecl_MustInstantiatePanicsOnErrors(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("invalid declaration should cause a panic")
		}
	}()
	Declare("test", testLayout).
		On(View(1, "a", func(*Env[testState], NoArgs) bool { return true })).
		On(View(1, "b", func(*Env[testState], NoArgs) bool { return true })).
		MustInstantiate()
}

func TestDecl_ValidDeclarationIsInstantiated(t *testing.T) {
	contract := declareTestContract().MustInstantiate()
	if want, got := "test", contract.Name(); want != got {
		t.Errorf("unexpected name, wanted %s, got %s", want, got)
	}
	if want, got := 7, len(contract.Messages()); want != got {
		t.Errorf("unexpected number of messages, wanted %d, got %d", want, got)
	}
	info, found := contract.DeployInfo()
	if !found {
		t.Fatalf("initializer not found")
	}
	if want, got := "uint64", info.ArgsType; want != got {
		t.Errorf("unexpected initializer argument type, wanted %s, got %s", want, got)
	}
}
