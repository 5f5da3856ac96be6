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
	"encoding/json"
	"fmt"

	"github.com/Fantom-foundation/Arca/go/arca"
	"github.com/Fantom-foundation/Arca/go/storage"
)

// NoArgs is the argument type of handlers not taking any arguments. Its
// wire form is the empty payload.
type NoArgs struct{}

// NoResult is the result type of handlers not producing a result. Its wire
// form is the empty payload.
type NoResult struct{}

// Handler is a type-erased entry of a contract's dispatch table. Handlers
// are created using Deploy, View, or Mut.
type Handler[S any] struct {
	info   MessageInfo
	deploy bool
	invoke func(env *Env[S], payload []byte) ([]byte, error)
}

// Deploy creates the initializer of a contract. It is run exactly once,
// when the contract is deployed, with arguments decoded from the deploy
// input.
func Deploy[S, A any](fn func(*Env[S], A)) Handler[S] {
	return Handler[S]{
		info:   newMessageInfo[A, NoResult](0, "deploy", true),
		deploy: true,
		invoke: func(env *Env[S], payload []byte) ([]byte, error) {
			args, err := decodeArgs[A](payload)
			if err != nil {
				return nil, err
			}
			fn(env, args)
			return nil, nil
		},
	}
}

// View creates a handler for a message that does not modify the contract's
// state.
func View[S, A, R any](selector arca.Selector, name string, fn func(*Env[S], A) R) Handler[S] {
	return newHandler(selector, name, false, fn)
}

// Mut creates a handler for a message that may modify the contract's state.
func Mut[S, A, R any](selector arca.Selector, name string, fn func(*Env[S], A) R) Handler[S] {
	return newHandler(selector, name, true, fn)
}

func newHandler[S, A, R any](selector arca.Selector, name string, mutates bool, fn func(*Env[S], A) R) Handler[S] {
	return Handler[S]{
		info: newMessageInfo[A, R](selector, name, mutates),
		invoke: func(env *Env[S], payload []byte) ([]byte, error) {
			args, err := decodeArgs[A](payload)
			if err != nil {
				return nil, err
			}
			return encodeResult(fn(env, args)), nil
		},
	}
}

func (h Handler[S]) Info() MessageInfo {
	return h.info
}

// MessageInfo describes a message accepted by a contract.
type MessageInfo struct {
	Selector   arca.Selector
	Name       string
	Mutates    bool
	ArgsType   string
	ResultType string

	argsFromJSON func([]byte) ([]byte, error)
	resultToJSON func([]byte) ([]byte, error)
}

func newMessageInfo[A, R any](selector arca.Selector, name string, mutates bool) MessageInfo {
	return MessageInfo{
		Selector:   selector,
		Name:       name,
		Mutates:    mutates,
		ArgsType:   typeName[A](),
		ResultType: typeName[R](),
		argsFromJSON: func(data []byte) ([]byte, error) {
			var args A
			if len(data) > 0 {
				if err := json.Unmarshal(data, &args); err != nil {
					return nil, fmt.Errorf("invalid arguments for %s: %w", name, err)
				}
			}
			return encodeArgs(args), nil
		},
		resultToJSON: func(data []byte) ([]byte, error) {
			res, err := DecodeResult[R](data)
			if err != nil {
				return nil, err
			}
			return json.Marshal(&res)
		},
	}
}

// ArgsFromJSON converts arguments given in JSON into the message's wire
// form, excluding the selector. An empty input denotes zero arguments.
func (m MessageInfo) ArgsFromJSON(data []byte) ([]byte, error) {
	if m.argsFromJSON == nil {
		return nil, fmt.Errorf("no argument type known for %s", m.Name)
	}
	return m.argsFromJSON(data)
}

// ResultToJSON converts a result in wire form into JSON.
func (m MessageInfo) ResultToJSON(data []byte) ([]byte, error) {
	if m.resultToJSON == nil {
		return nil, fmt.Errorf("no result type known for %s", m.Name)
	}
	return m.resultToJSON(data)
}

func (m MessageInfo) String() string {
	kind := "view"
	if m.Mutates {
		kind = "mut"
	}
	return fmt.Sprintf("%v %s(%s) %s [%s]", m.Selector, m.Name, m.ArgsType, m.ResultType, kind)
}

func typeName[T any]() string {
	var zero T
	switch any(zero).(type) {
	case NoArgs, NoResult:
		return ""
	}
	return fmt.Sprintf("%T", zero)
}

func isEmpty[T any]() bool {
	var zero T
	switch any(zero).(type) {
	case NoArgs, NoResult:
		return true
	}
	return false
}

func decodeArgs[A any](payload []byte) (A, error) {
	var args A
	if isEmpty[A]() {
		if len(payload) != 0 {
			return args, &arca.DecodeError{What: "arguments", Err: fmt.Errorf("unexpected payload of %d bytes", len(payload))}
		}
		return args, nil
	}
	if err := storage.Decode(payload, &args); err != nil {
		return args, err
	}
	return args, nil
}

func encodeArgs[A any](args A) []byte {
	if isEmpty[A]() {
		return nil
	}
	return storage.Encode(&args)
}

func encodeResult[R any](res R) []byte {
	if isEmpty[R]() {
		return nil
	}
	return storage.Encode(&res)
}

// EncodeDeploy produces the deploy input for the given initializer
// arguments.
func EncodeDeploy[A any](args A) []byte {
	return encodeArgs(args)
}

// EncodeCall produces the call input addressing the given selector with
// the given arguments.
func EncodeCall[A any](selector arca.Selector, args A) []byte {
	sel := selector.Bytes()
	return append(sel[:], encodeArgs(args)...)
}

// DecodeResult parses the output of a call.
func DecodeResult[R any](output []byte) (R, error) {
	if isEmpty[R]() {
		var res R
		if len(output) != 0 {
			return res, &arca.DecodeError{What: "result", Err: fmt.Errorf("unexpected output of %d bytes", len(output))}
		}
		return res, nil
	}
	var res R
	err := storage.Decode(output, &res)
	return res, err
}
