// Package stablecoin is a minimal NEP-17 token used as a sale payment method
// in tests. Symbol and decimals are set on deploy, anyone can mint.
package stablecoin

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	symbolKey   = "symbol"
	decimalsKey = "decimals"
	supplyKey   = "supply"

	balancePrefix = 'b'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.([]any)
	ctx := storage.GetContext()
	storage.Put(ctx, symbolKey, args[0].(string))
	storage.Put(ctx, decimalsKey, args[1].(int))
}

func Symbol() string {
	return storage.Get(storage.GetReadOnlyContext(), symbolKey).(string)
}

func Decimals() int {
	return storage.Get(storage.GetReadOnlyContext(), decimalsKey).(int)
}

func TotalSupply() int {
	return getInt(storage.GetReadOnlyContext(), supplyKey)
}

func BalanceOf(account interop.Hash160) int {
	return getInt(storage.GetReadOnlyContext(), append([]byte{balancePrefix}, account...))
}

func Transfer(from, to interop.Hash160, amount int, data any) bool {
	if amount < 0 {
		panic("negative amount")
	}
	if !runtime.CheckWitness(from) && !runtime.GetCallingScriptHash().Equals(from) {
		return false
	}

	ctx := storage.GetContext()
	fromKey := append([]byte{balancePrefix}, from...)

	balance := getInt(ctx, fromKey)
	if balance < amount {
		return false
	}

	storage.Put(ctx, fromKey, balance-amount)
	toKey := append([]byte{balancePrefix}, to...)
	storage.Put(ctx, toKey, getInt(ctx, toKey)+amount)

	runtime.Notify("Transfer", from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}

	return true
}

func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()
	toKey := append([]byte{balancePrefix}, to...)
	storage.Put(ctx, toKey, getInt(ctx, toKey)+amount)
	storage.Put(ctx, supplyKey, getInt(ctx, supplyKey)+amount)

	var from interop.Hash160
	runtime.Notify("Transfer", from, to, amount)
}

func getInt(ctx storage.Context, key any) int {
	v := storage.Get(ctx, key)
	if v == nil {
		return 0
	}
	return v.(int)
}
