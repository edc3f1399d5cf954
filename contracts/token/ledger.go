package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/unionprotocol/unn-contract/common"
	"github.com/unionprotocol/unn-contract/contracts/token/tokenconst"
)

type (
	// Lock is a time-locked part of the account balance. Lock restricts
	// spending of Amount until ReleaseTime (milliseconds since Unix epoch).
	// Votable locks are counted in the voting power of the holder.
	Lock struct {
		Amount      int
		ReleaseTime int
		Votable     bool
	}

	// Config is a set of global ledger toggles. It is read once per
	// invocation and passed to every ledger routine.
	Config struct {
		// CanTransfer allows balance movements for everyone, not only for
		// allocators.
		CanTransfer bool
		// Reversion makes failed transfer and allowance operations abort
		// the transaction instead of returning false.
		Reversion bool
	}
)

const (
	balancePrefix   = 'b'
	lockPrefix      = 'l'
	allowancePrefix = 'a'
	delegatePrefix  = 'd'
	delegatorPrefix = 'v'

	supplyKey = "s"
	configKey = "c"
)

func getConfig(ctx storage.Context) Config {
	data := storage.Get(ctx, configKey)
	if data != nil {
		return std.Deserialize(data.([]byte)).(Config)
	}

	return Config{}
}

func setConfig(ctx storage.Context, cfg Config) {
	common.SetSerialized(ctx, configKey, cfg)
	runtime.Notify("ConfigChanged", cfg.CanTransfer, cfg.Reversion)
}

// fail reports a named ledger failure. It aborts the transaction in reversion
// mode and logs the reason otherwise, so the caller returns false.
func fail(cfg Config, msg string) bool {
	if cfg.Reversion {
		panic(msg)
	}

	runtime.Log(msg)
	return false
}

func checkAmount(amount int) {
	if amount < 0 {
		panic(tokenconst.ErrNegativeAmount)
	}
}

func totalBalance(ctx storage.Context, addr interop.Hash160) int {
	return common.GetInt(ctx, common.AccountKey(balancePrefix, addr))
}

func getLocks(ctx storage.Context, addr interop.Hash160) []Lock {
	data := storage.Get(ctx, common.AccountKey(lockPrefix, addr))
	if data != nil {
		return std.Deserialize(data.([]byte)).([]Lock)
	}

	return []Lock{}
}

// lockedBalance sums locks that are still active at now. Expired locks stay
// in the list and are skipped.
func lockedBalance(ctx storage.Context, addr interop.Hash160, now int) int {
	var sum int

	locks := getLocks(ctx, addr)
	for i := range locks {
		if locks[i].ReleaseTime > now {
			sum += locks[i].Amount
		}
	}

	return sum
}

func spendableBalance(ctx storage.Context, addr interop.Hash160, now int) int {
	return totalBalance(ctx, addr) - lockedBalance(ctx, addr, now)
}

func addLock(ctx storage.Context, addr interop.Hash160, amount, releaseTime int, votable bool) {
	locks := getLocks(ctx, addr)
	locks = append(locks, Lock{
		Amount:      amount,
		ReleaseTime: releaseTime,
		Votable:     votable,
	})
	common.SetSerialized(ctx, common.AccountKey(lockPrefix, addr), locks)

	runtime.Notify("Lock", addr, amount, releaseTime, votable)
}

// move transfers amount from spendable balance of one account to another.
// Actor is the account initiating the movement, it is checked against the
// allocator set while transfers are disabled. Nil recipient burns the
// amount.
func move(ctx storage.Context, cfg Config, actor, from, to interop.Hash160, amount int) bool {
	if !cfg.CanTransfer && !common.HasRole(ctx, common.RoleAllocator, actor) {
		return fail(cfg, tokenconst.ErrTransfersDisabled)
	}

	if spendableBalance(ctx, from, runtime.GetTime()) < amount {
		return fail(cfg, tokenconst.ErrInsufficientSpendable)
	}

	common.PutInt(ctx, common.AccountKey(balancePrefix, from), totalBalance(ctx, from)-amount)

	if len(to) == interop.Hash160Len {
		common.PutInt(ctx, common.AccountKey(balancePrefix, to), totalBalance(ctx, to)+amount)
	} else {
		storage.Put(ctx, supplyKey, common.GetInt(ctx, supplyKey)-amount)
	}

	runtime.Notify("Transfer", from, to, amount)

	return true
}

// notifyReceiver calls onNEP17Payment of the recipient if it is a deployed
// contract.
func notifyReceiver(from, to interop.Hash160, amount int, data any) {
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	return common.AccountKey(allowancePrefix, owner, spender)
}

func getAllowance(ctx storage.Context, owner, spender interop.Hash160) int {
	return common.GetInt(ctx, allowanceKey(owner, spender))
}

func setAllowance(ctx storage.Context, owner, spender interop.Hash160, amount int) {
	common.PutInt(ctx, allowanceKey(owner, spender), amount)
	runtime.Notify("Approval", owner, spender, amount)
}

// isReservedSpender checks whether spender is the token contract itself or
// the zero address.
func isReservedSpender(spender interop.Hash160) bool {
	if spender.Equals(runtime.GetExecutingScriptHash()) {
		return true
	}

	for i := range spender {
		if spender[i] != 0 {
			return false
		}
	}

	return true
}

// checkAllowanceArgs validates common arguments of allowance operations and
// returns false (or panics in reversion mode) if the call must be rejected.
func checkAllowanceArgs(cfg Config, owner, spender interop.Hash160, amount int) bool {
	common.CheckAddress(owner)
	common.CheckAddress(spender)
	checkAmount(amount)

	if !common.IsUsableAddress(owner) {
		return fail(cfg, common.ErrWitnessFailed)
	}

	if isReservedSpender(spender) {
		return fail(cfg, tokenconst.ErrReservedSpender)
	}

	return true
}

func checkReleaseTime(releaseTime int) {
	if releaseTime <= runtime.GetTime() {
		panic(tokenconst.ErrReleaseTimeInPast)
	}
}
