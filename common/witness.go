package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

var (
	// ErrWitnessFailed appears when the method must be called
	// using certain public key but was not.
	ErrWitnessFailed = "witness check failed"
	// ErrInvalidAddress appears when an argument is not a 20-byte script hash.
	ErrInvalidAddress = "invalid address"
)

// CheckWitness checks that caller either signed the transaction or is the
// contract performing the call. It panics with ErrWitnessFailed message on
// fail.
func CheckWitness(caller interop.Hash160) {
	if !IsUsableAddress(caller) {
		panic(ErrWitnessFailed)
	}
}

// CheckAddress panics with ErrInvalidAddress if addr is not a script hash.
func CheckAddress(addr interop.Hash160) {
	if len(addr) != interop.Hash160Len {
		panic(ErrInvalidAddress)
	}
}

// IsUsableAddress checks if the sender is either a correct NEO address or SC address.
func IsUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}
