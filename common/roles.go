package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Capabilities shared by UNN contracts.
const (
	// RoleAdmin manages role membership and contract updates.
	RoleAdmin = "admin"
	// RoleGovern changes runtime configuration.
	RoleGovern = "govern"
	// RoleAllocator may move tokens while transfers are disabled.
	RoleAllocator = "allocator"
	// RoleLock may create time-locks on other accounts.
	RoleLock = "lock"

	// ErrMissingRole is thrown when the caller lacks a required role.
	ErrMissingRole = "missing role"
	// ErrUnknownRole is thrown on attempts to grant an unsupported role.
	ErrUnknownRole = "unknown role"

	rolePrefix = 'r'
)

func roleKey(role string, addr interop.Hash160) []byte {
	return append(append([]byte{rolePrefix}, []byte(role)...), addr...)
}

// IsKnownRole checks whether role is one of the supported capabilities.
func IsKnownRole(role string) bool {
	return role == RoleAdmin || role == RoleGovern || role == RoleAllocator || role == RoleLock
}

// HasRole checks role membership of the address.
func HasRole(ctx storage.Context, role string, addr interop.Hash160) bool {
	if len(addr) != interop.Hash160Len {
		return false
	}

	return storage.Get(ctx, roleKey(role, addr)) != nil
}

// GrantRole adds addr to the role set and throws RoleGranted notification
// if it was not there.
func GrantRole(ctx storage.Context, role string, addr interop.Hash160) {
	if !IsKnownRole(role) {
		panic(ErrUnknownRole + ": " + role)
	}
	CheckAddress(addr)

	if HasRole(ctx, role, addr) {
		return
	}

	storage.Put(ctx, roleKey(role, addr), []byte{1})
	runtime.Notify("RoleGranted", role, addr)
}

// RevokeRole removes addr from the role set.
func RevokeRole(ctx storage.Context, role string, addr interop.Hash160) {
	if !HasRole(ctx, role, addr) {
		return
	}

	storage.Delete(ctx, roleKey(role, addr))
	runtime.Notify("RoleRevoked", role, addr)
}

// CheckRole panics unless caller is witnessed and holds the role.
func CheckRole(ctx storage.Context, role string, caller interop.Hash160) {
	CheckWitness(caller)

	if !HasRole(ctx, role, caller) {
		panic(ErrMissingRole + ": " + role)
	}
}
