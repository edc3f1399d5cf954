package sale

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/unionprotocol/unn-contract/common"
	"github.com/unionprotocol/unn-contract/contracts/sale/saleconst"
)

// PerformTokenGeneration moves the whole UNN balance of the contract owner
// to the sale contract. Owner must approve it beforehand. Can be performed
// only once.
func PerformTokenGeneration(caller interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)

	if isTrue(ctx, generatedKey) {
		panic(saleconst.ErrAlreadyGenerated)
	}

	var (
		self      = runtime.GetExecutingScriptHash()
		owner     = common.GetHash160(ctx, ownerKey)
		tokenHash = common.GetHash160(ctx, tokenKey)
		amount    = contract.Call(tokenHash, "balanceOf", contract.ReadOnly, owner).(int)
	)

	setTrue(ctx, generatedKey)

	ok := contract.Call(tokenHash, "transferFrom", contract.All, self, owner, self, amount).(bool)
	if !ok {
		panic(saleconst.ErrTokenTransferFailed)
	}

	runtime.Log("token generation performed")
}

// TransferTokensToPredefinedAddresses distributes generated tokens between
// the pools in fixed proportions. Can be performed only once after token
// generation.
func TransferTokensToPredefinedAddresses(caller interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)

	if !isTrue(ctx, generatedKey) {
		panic(saleconst.ErrNotGenerated)
	}
	if isTrue(ctx, allocatedKey) {
		panic(saleconst.ErrAlreadyAllocated)
	}

	setTrue(ctx, allocatedKey)

	var (
		self      = runtime.GetExecutingScriptHash()
		tokenHash = common.GetHash160(ctx, tokenKey)
		supply    = contract.Call(tokenHash, "balanceOf", contract.ReadOnly, self).(int)
		left      = supply

		pools = []string{
			saleconst.PoolSeed,
			saleconst.PoolPrivateRound1,
			saleconst.PoolPrivateRound2,
			saleconst.PoolPublicSale,
			saleconst.PoolPublicSaleBonus,
			saleconst.PoolPartners,
			saleconst.PoolMining,
			saleconst.PoolLiquidity,
		}
		shares = []int{
			saleconst.ShareSeed,
			saleconst.SharePrivateRound1,
			saleconst.SharePrivateRound2,
			saleconst.SharePublicSale,
			saleconst.SharePublicSaleBonus,
			saleconst.SharePartners,
			saleconst.ShareMining,
			saleconst.ShareLiquidity,
		}
	)

	for i := range pools {
		amount := supply * shares[i] / 100
		if amount == 0 {
			continue
		}

		allocate(ctx, tokenHash, self, pools[i], amount)
		left -= amount
	}

	// The reserve takes its share together with rounding residue.
	if left > 0 {
		allocate(ctx, tokenHash, self, saleconst.PoolReserve, left)
	}

	runtime.Log("tokens allocated")
}

func allocate(ctx storage.Context, tokenHash, self interop.Hash160, pool string, amount int) {
	ok := contract.Call(tokenHash, "transfer", contract.All, self, getPool(ctx, pool), amount, nil).(bool)
	if !ok {
		panic(saleconst.ErrTokenTransferFailed)
	}
}

// IsTokenGenerationPerformed returns true after token generation.
func IsTokenGenerationPerformed() bool {
	return isTrue(storage.GetReadOnlyContext(), generatedKey)
}

// IsAllocationPerformed returns true after tokens are distributed between
// the pools.
func IsAllocationPerformed() bool {
	return isTrue(storage.GetReadOnlyContext(), allocatedKey)
}

// IsSaleStarted returns true while the sale is open.
func IsSaleStarted() bool {
	return isTrue(storage.GetReadOnlyContext(), openKey)
}

// StartSale opens the sale. Allocation must be performed before.
//
// It produces SaleStateChanged notification.
func StartSale(caller interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)

	if !isTrue(ctx, allocatedKey) {
		panic(saleconst.ErrNotAllocated)
	}
	if isTrue(ctx, openKey) {
		panic(saleconst.ErrSaleAlreadyOpen)
	}

	setTrue(ctx, openKey)
	runtime.Notify("SaleStateChanged", true)
}

// EndSale closes the sale.
//
// It produces SaleStateChanged notification.
func EndSale(caller interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)

	if !isTrue(ctx, openKey) {
		panic(saleconst.ErrSaleNotOpen)
	}

	storage.Delete(ctx, openKey)
	runtime.Notify("SaleStateChanged", false)
}

func stablecoinKey(symbol string) []byte {
	return append([]byte{stablecoinPrefix}, []byte(symbol)...)
}

func getStablecoin(ctx storage.Context, symbol string) Stablecoin {
	data := storage.Get(ctx, stablecoinKey(symbol))
	if data == nil {
		panic(saleconst.ErrUnsupportedToken)
	}

	return std.Deserialize(data.([]byte)).(Stablecoin)
}

// AddSupportedToken registers NEP-17 stablecoin accepted as a payment.
func AddSupportedToken(caller interop.Hash160, symbol string, hash interop.Hash160, decimals int) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)
	common.CheckAddress(hash)

	if decimals < 0 || decimals > saleconst.MaxStablecoinDecimals {
		panic(saleconst.ErrIllegalDecimals)
	}

	key := stablecoinKey(symbol)
	if storage.Get(ctx, key) != nil {
		panic(saleconst.ErrTokenAlreadySupported)
	}

	common.SetSerialized(ctx, key, Stablecoin{
		Hash:     hash,
		Decimals: decimals,
	})
}

// RemoveSupportedToken removes stablecoin from the list of accepted tokens.
func RemoveSupportedToken(caller interop.Hash160, symbol string) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)

	getStablecoin(ctx, symbol)
	storage.Delete(ctx, stablecoinKey(symbol))
}

// GetSupportedTokenAddress returns script hash of the supported stablecoin.
func GetSupportedTokenAddress(symbol string) interop.Hash160 {
	return getStablecoin(storage.GetReadOnlyContext(), symbol).Hash
}

// GetSupportedTokenDecimals returns precision of the supported stablecoin.
func GetSupportedTokenDecimals(symbol string) int {
	return getStablecoin(storage.GetReadOnlyContext(), symbol).Decimals
}

// ListSupportedTokens returns symbols of all supported stablecoins.
func ListSupportedTokens() []string {
	res := []string{}

	it := storage.Find(storage.GetReadOnlyContext(), []byte{stablecoinPrefix}, storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		res = append(res, iterator.Value(it).(string))
	}

	return res
}

func permitKey(addr interop.Hash160) []byte {
	return common.AccountKey(permitPrefix, addr)
}

func getPermit(ctx storage.Context, addr interop.Hash160) Permit {
	data := storage.Get(ctx, permitKey(addr))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Permit)
	}

	return Permit{}
}

// AddToPermittedList allows buyer to purchase up to remaining tokens.
// Precheck buyers pay to the pre-check contribution wallet.
func AddToPermittedList(caller, buyer interop.Hash160, approved, precheck bool, remaining int) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)
	common.CheckAddress(buyer)

	if remaining < 0 {
		panic(saleconst.ErrIllegalAllowance)
	}

	common.SetSerialized(ctx, permitKey(buyer), Permit{
		Approved:  approved,
		Precheck:  precheck,
		Remaining: remaining,
	})
}

// RemoveFromPermittedList forbids purchases for the buyer.
func RemoveFromPermittedList(caller, buyer interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)

	storage.Delete(ctx, permitKey(buyer))
}

// IsPermitted returns true if the buyer is approved for purchases.
func IsPermitted(buyer interop.Hash160) bool {
	return getPermit(storage.GetReadOnlyContext(), buyer).Approved
}

// IsPrecheck returns true if the buyer contributions go to the pre-check
// wallet.
func IsPrecheck(buyer interop.Hash160) bool {
	return getPermit(storage.GetReadOnlyContext(), buyer).Precheck
}

// GetRemainingAllowance returns the number of tokens buyer can still
// purchase.
func GetRemainingAllowance(buyer interop.Hash160) int {
	return getPermit(storage.GetReadOnlyContext(), buyer).Remaining
}

func poolKey(pool string) []byte {
	return append([]byte{poolPrefix}, []byte(pool)...)
}

func getPool(ctx storage.Context, pool string) interop.Hash160 {
	addr := common.GetHash160(ctx, poolKey(pool))
	if addr == nil {
		panic(saleconst.ErrUnknownPool + ": " + pool)
	}

	return addr
}

// GetPoolAddress returns address of the named wallet.
func GetPoolAddress(pool string) interop.Hash160 {
	return getPool(storage.GetReadOnlyContext(), pool)
}

// SetPoolAddress replaces address of the named wallet.
func SetPoolAddress(caller interop.Hash160, pool string, addr interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)
	common.CheckAddress(addr)

	getPool(ctx, pool)
	storage.Put(ctx, poolKey(pool), addr)
}

// GetBonusTokenFactor returns bonus size in percent of purchased amount.
func GetBonusTokenFactor() int {
	return common.GetInt(storage.GetReadOnlyContext(), bonusFactorKey)
}

// SetBonusTokenFactor sets bonus size in percent of purchased amount.
func SetBonusTokenFactor(caller interop.Hash160, factor int) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)

	if factor < saleconst.MinBonusFactor || factor > saleconst.MaxBonusFactor {
		panic(saleconst.ErrIllegalBonusFactor)
	}

	storage.Put(ctx, bonusFactorKey, factor)
}

// GetBonusTokenLockPeriod returns bonus lock period in months.
func GetBonusTokenLockPeriod() int {
	return common.GetInt(storage.GetReadOnlyContext(), bonusPeriodKey)
}

// SetBonusTokenLockPeriod sets bonus lock period in months.
func SetBonusTokenLockPeriod(caller interop.Hash160, months int) {
	ctx := storage.GetContext()
	common.CheckRole(ctx, common.RoleGovern, caller)

	if months < saleconst.MinBonusLockMonths || months > saleconst.MaxBonusLockMonths {
		panic(saleconst.ErrIllegalLockPeriod)
	}

	storage.Put(ctx, bonusPeriodKey, months)
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
