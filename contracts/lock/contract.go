package lock

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/math"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/unionprotocol/unn-contract/common"
	"github.com/unionprotocol/unn-contract/contracts/lock/lockconst"
)

// YieldTier is an annual yield applied to locks of at least MinDays days.
// DailyFactor is a fixed-point daily growth factor derived from the yield.
type YieldTier struct {
	MinDays     int
	YieldBps    int
	DailyFactor int
}

const (
	tokenKey        = "token"
	rewardWalletKey = "rewardWallet"

	tierPrefix = 'T'

	msPerDay = 24 * 60 * 60 * 1000
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

	if len(args) < 3 {
		panic(lockconst.ErrInvalidDeployData)
	}

	owner := args[0].(interop.Hash160)
	tokenHash := args[1].(interop.Hash160)
	wallet := args[2].(interop.Hash160)

	common.CheckAddress(owner)
	common.CheckAddress(tokenHash)
	common.CheckAddress(wallet)

	storage.Put(ctx, tokenKey, tokenHash)
	storage.Put(ctx, rewardWalletKey, wallet)

	common.GrantRole(ctx, common.RoleAdmin, owner)
	common.GrantRole(ctx, common.RoleGovern, owner)

	putTier(ctx, lockconst.ShortTermDays, lockconst.ShortTermYield)
	putTier(ctx, lockconst.MidTermDays, lockconst.MidTermYield)
	putTier(ctx, lockconst.LongTermDays, lockconst.LongTermYield)

	runtime.Log("lock contract initialized")
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

// Name returns human-readable contract name.
func Name() string {
	return lockconst.Name
}

// GetTokenContract returns script hash of UNN token contract.
func GetTokenContract() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), tokenKey)
}

// GetRewardWallet returns the wallet rewards are paid from. Locked principal
// is sent to the same wallet.
func GetRewardWallet() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), rewardWalletKey)
}

// SetRewardWallet replaces reward wallet. The wallet must approve the lock
// contract to spend its tokens.
func SetRewardWallet(caller, wallet interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)
	common.CheckAddress(wallet)

	storage.Put(ctx, rewardWalletKey, wallet)
}

func tierKey(minDays int) []byte {
	return append([]byte{tierPrefix}, []byte(std.Itoa(minDays, 10))...)
}

func putTier(ctx storage.Context, minDays, yieldBps int) {
	if minDays < lockconst.MinLockDays || minDays > lockconst.MaxLockDays {
		panic(lockconst.ErrIllegalLockPeriod)
	}
	if yieldBps <= 0 || yieldBps > lockconst.MaxYieldBps {
		panic(lockconst.ErrIllegalYield)
	}

	common.SetSerialized(ctx, tierKey(minDays), YieldTier{
		MinDays:     minDays,
		YieldBps:    yieldBps,
		DailyFactor: dailyFactor(yieldBps),
	})
}

// tierFor returns the tier with the longest minimal period not exceeding
// days. Found is false if days is shorter than every tier.
func tierFor(ctx storage.Context, days int) (YieldTier, bool) {
	var (
		best  YieldTier
		found bool
	)

	it := storage.Find(ctx, []byte{tierPrefix}, storage.ValuesOnly|storage.DeserializeValues)
	for iterator.Next(it) {
		t := iterator.Value(it).(YieldTier)
		if t.MinDays <= days && (!found || t.MinDays > best.MinDays) {
			best = t
			found = true
		}
	}

	return best, found
}

// GetYieldTiers returns all configured yield tiers.
func GetYieldTiers() []YieldTier {
	res := []YieldTier{}

	it := storage.Find(storage.GetReadOnlyContext(), []byte{tierPrefix}, storage.ValuesOnly|storage.DeserializeValues)
	for iterator.Next(it) {
		res = append(res, iterator.Value(it).(YieldTier))
	}

	return res
}

// SetYieldTier sets annual yield in basis points for locks of at least
// minDays days.
func SetYieldTier(caller interop.Hash160, minDays, yieldBps int) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)

	putTier(ctx, minDays, yieldBps)
}

// RemoveYieldTier removes the tier with the given minimal period.
func RemoveYieldTier(caller interop.Hash160, minDays int) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)

	key := tierKey(minDays)
	if storage.Get(ctx, key) == nil {
		panic(lockconst.ErrUnknownTier)
	}

	storage.Delete(ctx, key)
}

func calculateLockAmount(ctx storage.Context, principal, days int) int {
	if days < lockconst.MinLockDays || days > lockconst.MaxLockDays {
		panic(lockconst.ErrIllegalLockPeriod)
	}
	if principal > math.Pow(10, lockconst.MaxPrincipalDecimals) {
		panic(lockconst.ErrIllegalAmount)
	}
	if principal <= 0 {
		return principal
	}

	t, ok := tierFor(ctx, days)
	if !ok {
		return principal
	}

	return lockAmount(principal, days, t.DailyFactor)
}

// CalculateReward returns reward for locking principal for the number of
// days. Annual yield of the matching tier is compounded daily. Reward is 0
// for periods shorter than the shortest tier.
func CalculateReward(principal, days int) int {
	return calculateLockAmount(storage.GetReadOnlyContext(), principal, days) - principal
}

// CalculateLockAmount returns principal plus reward.
func CalculateLockAmount(principal, days int) int {
	return calculateLockAmount(storage.GetReadOnlyContext(), principal, days)
}

// LockTokens locks amount of account tokens for the number of days together
// with the reward. Account must approve the lock contract to spend amount.
// Principal goes to the reward wallet and the whole locked sum is paid from
// it as a single votable lock.
//
// It produces TokensLocked notification and returns locked sum.
func LockTokens(account interop.Hash160, amount, days int) int {
	ctx := storage.GetContext()

	common.CheckAddress(account)
	common.CheckWitness(account)

	if amount <= 0 {
		panic(lockconst.ErrIllegalAmount)
	}

	var (
		self        = runtime.GetExecutingScriptHash()
		tokenHash   = common.GetHash160(ctx, tokenKey)
		wallet      = common.GetHash160(ctx, rewardWalletKey)
		total       = calculateLockAmount(ctx, amount, days)
		releaseTime = runtime.GetTime() + days*msPerDay
	)

	ok := contract.Call(tokenHash, "transferFrom", contract.All, self, account, wallet, amount).(bool)
	if !ok {
		panic(lockconst.ErrTokenTransferFailed)
	}

	ok = contract.Call(tokenHash, "transferFromAndLock", contract.All,
		self, wallet, account, total, releaseTime, true).(bool)
	if !ok {
		panic(lockconst.ErrTokenTransferFailed)
	}

	runtime.Notify("TokensLocked", account, amount, total-amount, releaseTime)

	return total
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
