package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// ErrUpdateDenied is thrown when contract update is not signed by an admin.
const ErrUpdateDenied = "only admin can update contract"

// Update checks that caller holds admin role and updates contract source
// code and manifest. Current version is appended to the data.
func Update(caller interop.Hash160, nefFile, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	if !IsUsableAddress(caller) || !HasRole(ctx, RoleAdmin, caller) {
		panic(ErrUpdateDenied)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, AppendVersion(data))
	runtime.Log("contract updated")
}
