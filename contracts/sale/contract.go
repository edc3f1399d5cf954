package sale

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/unionprotocol/unn-contract/common"
	"github.com/unionprotocol/unn-contract/contracts/sale/saleconst"
	"github.com/unionprotocol/unn-contract/contracts/token/tokenconst"
)

type (
	// Permit describes a buyer from the permitted list.
	Permit struct {
		// Approved buyers can purchase tokens.
		Approved bool
		// Precheck contributions are settled to the pre-check wallet.
		Precheck bool
		// Remaining is the number of whole tokens buyer can still purchase.
		Remaining int
	}

	// Stablecoin is a NEP-17 token accepted as a payment.
	Stablecoin struct {
		Hash     interop.Hash160
		Decimals int
	}
)

const (
	ownerKey       = "owner"
	tokenKey       = "token"
	cursorKey      = "cursor"
	generatedKey   = "generated"
	allocatedKey   = "allocated"
	openKey        = "open"
	bonusFactorKey = "bonusFactor"
	bonusPeriodKey = "bonusPeriod"

	permitPrefix     = 'P'
	stablecoinPrefix = 'S'
	poolPrefix       = 'W'
)

// deployPools lists pool names in the order their addresses follow owner and
// token hash in deploy arguments.
var deployPools = []string{
	saleconst.PoolPrecheckContribution,
	saleconst.PoolSaleContribution,
	saleconst.PoolSeed,
	saleconst.PoolPrivateRound1,
	saleconst.PoolPrivateRound2,
	saleconst.PoolPublicSale,
	saleconst.PoolPublicSaleBonus,
	saleconst.PoolPartners,
	saleconst.PoolMining,
	saleconst.PoolLiquidity,
	saleconst.PoolReserve,
}

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)

	if isUpdate {
		version := args[len(args)-1].(int)
		common.CheckVersion(version)
		return
	}

	if len(args) < 2+len(deployPools) {
		panic(saleconst.ErrInvalidDeployData)
	}

	owner := args[0].(interop.Hash160)
	tokenHash := args[1].(interop.Hash160)
	common.CheckAddress(owner)
	common.CheckAddress(tokenHash)

	storage.Put(ctx, ownerKey, owner)
	storage.Put(ctx, tokenKey, tokenHash)

	for i := range deployPools {
		addr := args[2+i].(interop.Hash160)
		common.CheckAddress(addr)
		storage.Put(ctx, poolKey(deployPools[i]), addr)
	}

	common.GrantRole(ctx, common.RoleAdmin, owner)
	common.GrantRole(ctx, common.RoleGovern, owner)

	storage.Put(ctx, cursorKey, saleconst.FirstTokenNumber)
	storage.Put(ctx, bonusFactorKey, saleconst.DefaultBonusFactor)
	storage.Put(ctx, bonusPeriodKey, saleconst.DefaultBonusLockMonths)

	runtime.Log("sale contract initialized")
}

// OnNEP17Payment accepts UNN tokens only, they are received on token
// generation.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetReadOnlyContext()
	if !runtime.GetCallingScriptHash().Equals(storage.Get(ctx, tokenKey)) {
		panic(saleconst.ErrOnlyGovernanceTokenAccepted)
	}
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

// GetTokenContract returns script hash of UNN token contract.
func GetTokenContract() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), tokenKey)
}

// GetTokenPrice returns price of the token with serial number n in USD with
// 18 decimals.
func GetTokenPrice(n int) int {
	return tokenPrice(n)
}

// GetCurrentTokenNumber returns serial number of the next token to be sold.
// It is LastTokenNumber+1 when everything is sold.
func GetCurrentTokenNumber() int {
	return common.GetInt(storage.GetReadOnlyContext(), cursorKey)
}

// GetBuyPriceInUSD returns cost of qty tokens starting from the current
// serial number.
func GetBuyPriceInUSD(qty int) int {
	return buyPrice(GetCurrentTokenNumber(), qty)
}

// GetTokensForUSDContribution returns the largest number of tokens that can
// be bought for usd amount at the current serial number.
func GetTokensForUSDContribution(usd int) int {
	return tokensForContribution(GetCurrentTokenNumber(), usd)
}

// GetBuyPriceInStablecoin returns cost of qty tokens in units of the
// supported stablecoin.
func GetBuyPriceInStablecoin(symbol string, qty int) int {
	ctx := storage.GetReadOnlyContext()
	coin := getStablecoin(ctx, symbol)

	return rescale(buyPrice(common.GetInt(ctx, cursorKey), qty), coin.Decimals)
}

// PurchaseTokens buys tokens for the usd contribution paid in the stablecoin
// with the given symbol. Buyer must be approved in the permitted list and
// sign the transaction with the scope allowing stablecoin transfer.
//
// Stablecoin cost of the purchased quantity is transferred to pre-check or
// sale contribution wallet. Tokens are transferred from the public sale pool,
// bonus is locked from the public sale bonus pool for the bonus lock period.
//
// It produces TokensPurchased notification and returns bought quantity.
func PurchaseTokens(buyer interop.Hash160, symbol string, usd int) int {
	ctx := storage.GetContext()

	common.CheckAddress(buyer)
	common.CheckWitness(buyer)

	if !isTrue(ctx, openKey) {
		panic(saleconst.ErrSaleNotOpen)
	}

	coin := getStablecoin(ctx, symbol)

	permit := getPermit(ctx, buyer)
	if !permit.Approved {
		panic(saleconst.ErrNotPermitted)
	}

	cursor := common.GetInt(ctx, cursorKey)

	qty := tokensForContribution(cursor, usd)
	if qty < 1 {
		panic(saleconst.ErrBelowMinimumPurchase)
	}
	if qty > permit.Remaining {
		panic(saleconst.ErrExceedsPermittedAllowance)
	}

	cost := rescale(buyPrice(cursor, qty), coin.Decimals)

	permit.Remaining -= qty
	common.SetSerialized(ctx, permitKey(buyer), permit)
	storage.Put(ctx, cursorKey, cursor+qty)

	wallet := getPool(ctx, saleconst.PoolSaleContribution)
	if permit.Precheck {
		wallet = getPool(ctx, saleconst.PoolPrecheckContribution)
	}

	paid := contract.Call(coin.Hash, "transfer", contract.All, buyer, wallet, cost, nil).(bool)
	if !paid {
		panic(saleconst.ErrPaymentFailed)
	}

	var (
		self      = runtime.GetExecutingScriptHash()
		tokenHash = common.GetHash160(ctx, tokenKey)
		amount    = qty * tokenconst.Unit
		bonus     = amount * common.GetInt(ctx, bonusFactorKey) / 100
	)

	ok := contract.Call(tokenHash, "transferFrom", contract.All,
		self, getPool(ctx, saleconst.PoolPublicSale), buyer, amount).(bool)
	if !ok {
		panic(saleconst.ErrTokenTransferFailed)
	}

	if bonus > 0 {
		releaseTime := addMonths(runtime.GetTime(), common.GetInt(ctx, bonusPeriodKey))

		ok = contract.Call(tokenHash, "transferFromAndLock", contract.All,
			self, getPool(ctx, saleconst.PoolPublicSaleBonus), buyer, bonus, releaseTime, true).(bool)
		if !ok {
			panic(saleconst.ErrTokenTransferFailed)
		}
	}

	runtime.Notify("TokensPurchased", buyer, symbol, qty, cost, bonus)

	return qty
}

func isTrue(ctx storage.Context, key string) bool {
	return storage.Get(ctx, key) != nil
}

func setTrue(ctx storage.Context, key string) {
	storage.Put(ctx, key, 1)
}
