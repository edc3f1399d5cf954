package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/unionprotocol/unn-contract/common"
	"github.com/unionprotocol/unn-contract/contracts/token/tokenconst"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)

	if isUpdate {
		version := args[len(args)-1].(int)
		common.CheckVersion(version)
		return
	}

	if len(args) < 2 {
		panic(tokenconst.ErrInvalidDeployData)
	}

	owner := args[0].(interop.Hash160)
	supply := args[1].(int)

	common.CheckAddress(owner)
	checkAmount(supply)

	common.GrantRole(ctx, common.RoleAdmin, owner)
	common.GrantRole(ctx, common.RoleAllocator, owner)
	common.GrantRole(ctx, common.RoleGovern, owner)
	common.GrantRole(ctx, common.RoleLock, owner)

	setConfig(ctx, Config{})

	var mintFrom interop.Hash160

	storage.Put(ctx, supplyKey, supply)
	common.PutInt(ctx, common.AccountKey(balancePrefix, owner), supply)
	runtime.Notify("Transfer", mintFrom, owner, supply)

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by an admin.
func Update(caller interop.Hash160, nefFile, manifest []byte, data any) {
	common.Update(caller, nefFile, manifest, data)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Symbol is a NEP-17 standard method that returns UNN token symbol.
func Symbol() string {
	return tokenconst.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of UNN
// balances.
func Decimals() int {
	return tokenconst.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of UNN
// tokens in circulation. Burn decreases it.
func TotalSupply() int {
	return common.GetInt(storage.GetReadOnlyContext(), supplyKey)
}

// BalanceOf is a NEP-17 standard method that returns spendable balance of
// the account, i.e. total balance without active locks.
func BalanceOf(account interop.Hash160) int {
	common.CheckAddress(account)
	return spendableBalance(storage.GetReadOnlyContext(), account, runtime.GetTime())
}

// LockedBalanceOf returns the sum of account locks that are not released yet.
func LockedBalanceOf(account interop.Hash160) int {
	common.CheckAddress(account)
	return lockedBalance(storage.GetReadOnlyContext(), account, runtime.GetTime())
}

// TotalBalanceOf returns full account balance including locked tokens.
func TotalBalanceOf(account interop.Hash160) int {
	common.CheckAddress(account)
	return totalBalance(storage.GetReadOnlyContext(), account)
}

// LocksOf returns all locks ever created for the account, released ones
// included.
func LocksOf(account interop.Hash160) []Lock {
	common.CheckAddress(account)
	return getLocks(storage.GetReadOnlyContext(), account)
}

// Transfer is a NEP-17 standard method that transfers spendable UNN tokens.
// It can be invoked by the account owner or by the contract with the from
// script hash. While transfers are disabled only allocators can send tokens.
//
// Failures return false unless reversion mode is enabled.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	common.CheckAddress(from)
	common.CheckAddress(to)
	checkAmount(amount)

	if !common.IsUsableAddress(from) {
		return fail(cfg, common.ErrWitnessFailed)
	}

	if !move(ctx, cfg, from, from, to, amount) {
		return false
	}

	notifyReceiver(from, to, amount, data)

	return true
}

// TransferAndLock transfers tokens and locks them on the recipient account
// until releaseTime (milliseconds). Sender must hold lock role.
//
// It produces Transfer and Lock notifications.
func TransferAndLock(from, to interop.Hash160, amount, releaseTime int, votable bool) bool {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	common.CheckAddress(from)
	common.CheckAddress(to)
	checkAmount(amount)
	checkReleaseTime(releaseTime)
	common.CheckRole(ctx, common.RoleLock, from)

	if !move(ctx, cfg, from, from, to, amount) {
		return false
	}

	addLock(ctx, to, amount, releaseTime, votable)
	notifyReceiver(from, to, amount, nil)

	return true
}

// Allowance returns amount of owner tokens the spender can transfer.
func Allowance(owner, spender interop.Hash160) int {
	return getAllowance(storage.GetReadOnlyContext(), owner, spender)
}

// Approve sets the amount of owner tokens spender can transfer with
// TransferFrom. The token contract itself and the zero address can't be
// spenders.
func Approve(owner, spender interop.Hash160, amount int) bool {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	if !checkAllowanceArgs(cfg, owner, spender, amount) {
		return false
	}

	setAllowance(ctx, owner, spender, amount)
	return true
}

// IncreaseAllowance adds amount to the current allowance.
func IncreaseAllowance(owner, spender interop.Hash160, amount int) bool {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	if !checkAllowanceArgs(cfg, owner, spender, amount) {
		return false
	}

	setAllowance(ctx, owner, spender, getAllowance(ctx, owner, spender)+amount)
	return true
}

// DecreaseAllowance subtracts amount from the current allowance. Decreasing
// below zero is an allowance underflow failure.
func DecreaseAllowance(owner, spender interop.Hash160, amount int) bool {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	if !checkAllowanceArgs(cfg, owner, spender, amount) {
		return false
	}

	current := getAllowance(ctx, owner, spender)
	if current < amount {
		return fail(cfg, tokenconst.ErrAllowanceUnderflow)
	}

	setAllowance(ctx, owner, spender, current-amount)
	return true
}

// TransferFrom moves tokens of from account on behalf of the spender and
// decreases the spender allowance.
func TransferFrom(spender, from, to interop.Hash160, amount int) bool {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	if !transferFrom(ctx, cfg, spender, from, to, amount) {
		return false
	}

	notifyReceiver(from, to, amount, nil)

	return true
}

// TransferFromAndLock is TransferFrom that locks transferred tokens on the
// recipient account until releaseTime. Spender must hold lock role.
func TransferFromAndLock(spender, from, to interop.Hash160, amount, releaseTime int, votable bool) bool {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	checkReleaseTime(releaseTime)
	common.CheckRole(ctx, common.RoleLock, spender)

	if !transferFrom(ctx, cfg, spender, from, to, amount) {
		return false
	}

	addLock(ctx, to, amount, releaseTime, votable)
	notifyReceiver(from, to, amount, nil)

	return true
}

func transferFrom(ctx storage.Context, cfg Config, spender, from, to interop.Hash160, amount int) bool {
	common.CheckAddress(spender)
	common.CheckAddress(from)
	common.CheckAddress(to)
	checkAmount(amount)

	if !common.IsUsableAddress(spender) {
		return fail(cfg, common.ErrWitnessFailed)
	}

	allowed := getAllowance(ctx, from, spender)
	if allowed < amount {
		return fail(cfg, tokenconst.ErrAllowanceExceeded)
	}

	if !move(ctx, cfg, spender, from, to, amount) {
		return false
	}

	setAllowance(ctx, from, spender, allowed-amount)

	return true
}

// Burn destroys spendable tokens of the account and decreases total supply.
func Burn(account interop.Hash160, amount int) bool {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)

	common.CheckAddress(account)
	checkAmount(amount)

	if !common.IsUsableAddress(account) {
		return fail(cfg, common.ErrWitnessFailed)
	}

	return move(ctx, cfg, account, account, nil, amount)
}

// GetCanTransfer returns true if transfers are enabled for everyone.
func GetCanTransfer() bool {
	return getConfig(storage.GetReadOnlyContext()).CanTransfer
}

// GetReversion returns true if failed transfer and allowance operations
// abort the transaction.
func GetReversion() bool {
	return getConfig(storage.GetReadOnlyContext()).Reversion
}

// SetCanTransfer enables or disables transfers for non-allocators. Caller
// must hold govern role.
func SetCanTransfer(caller interop.Hash160, value bool) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)

	cfg := getConfig(ctx)
	cfg.CanTransfer = value
	setConfig(ctx, cfg)
}

// SetReversion switches between aborting and false-returning failure modes.
// Caller must hold govern role.
func SetReversion(caller interop.Hash160, value bool) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)

	cfg := getConfig(ctx)
	cfg.Reversion = value
	setConfig(ctx, cfg)
}

// HasRole checks whether account holds the role.
func HasRole(role string, account interop.Hash160) bool {
	return common.HasRole(storage.GetReadOnlyContext(), role, account)
}

// GrantRole adds account to the role set. Caller must be an admin.
func GrantRole(caller interop.Hash160, role string, account interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleAdmin, caller)
	common.GrantRole(ctx, role, account)
}

// RevokeRole removes account from the role set. Caller must be an admin.
func RevokeRole(caller interop.Hash160, role string, account interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleAdmin, caller)
	common.RevokeRole(ctx, role, account)
}

// SetAsAllocator grants allocator role to the account.
func SetAsAllocator(caller, account interop.Hash160) {
	GrantRole(caller, common.RoleAllocator, account)
}
