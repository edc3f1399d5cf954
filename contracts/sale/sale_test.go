package sale_test

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/unionprotocol/unn-contract/common"
	"github.com/unionprotocol/unn-contract/contracts/sale/saleconst"
	"github.com/unionprotocol/unn-contract/contracts/token/tokenconst"
	"github.com/unionprotocol/unn-contract/economics"
	"github.com/unionprotocol/unn-contract/internal/contracttest"
)

var (
	tokens = contracttest.Tokens

	poolNames = []string{
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

	// Cost of the first 10 tokens of the curve.
	tenTokensCost = big.NewInt(350000418500010230)
)

type saleEnv struct {
	e     *neotest.Executor
	token *neotest.ContractInvoker
	sale  *neotest.ContractInvoker
	pools map[string]neotest.Signer
}

func (s *saleEnv) pool(name string) util.Uint160 {
	return s.pools[name].ScriptHash()
}

// newSale deploys token and sale contracts and grants sale the roles it
// needs. Tokens are not generated yet.
func newSale(t *testing.T) *saleEnv {
	e := contracttest.NewExecutor(t)

	tokenHash := contracttest.Deploy(t, e, contracttest.TokenDir, []any{e.CommitteeHash, tokens(1_000_000_000)})

	env := &saleEnv{
		e:     e,
		token: e.CommitteeInvoker(tokenHash),
		pools: make(map[string]neotest.Signer, len(poolNames)),
	}

	args := []any{e.CommitteeHash, tokenHash}
	for _, name := range poolNames {
		acc := e.NewAccount(t)
		env.pools[name] = acc
		args = append(args, acc.ScriptHash())
	}

	saleHash := contracttest.Deploy(t, e, contracttest.SaleDir, args)
	env.sale = e.CommitteeInvoker(saleHash)

	env.token.Invoke(t, stackitem.Null{}, "grantRole", e.CommitteeHash, common.RoleAllocator, saleHash)
	env.token.Invoke(t, stackitem.Null{}, "grantRole", e.CommitteeHash, common.RoleLock, saleHash)
	env.token.Invoke(t, true, "approve", e.CommitteeHash, saleHash, tokens(1_000_000_000))

	return env
}

// newOpenSale returns the sale with allocated tokens, funded bonus pool and
// started sale.
func newOpenSale(t *testing.T) *saleEnv {
	env := newSale(t)

	env.sale.Invoke(t, stackitem.Null{}, "performTokenGeneration", env.e.CommitteeHash)
	env.sale.Invoke(t, stackitem.Null{}, "transferTokensToPredefinedAddresses", env.e.CommitteeHash)

	reserve := env.pools[saleconst.PoolReserve]
	env.token.Invoke(t, stackitem.Null{}, "setAsAllocator", env.e.CommitteeHash, reserve.ScriptHash())
	env.token.WithSigners(reserve).Invoke(t, true, "transfer",
		reserve.ScriptHash(), env.pool(saleconst.PoolPublicSaleBonus), tokens(10_000_000), nil)

	for _, name := range []string{saleconst.PoolPublicSale, saleconst.PoolPublicSaleBonus} {
		env.token.WithSigners(env.pools[name]).Invoke(t, true, "approve",
			env.pool(name), env.sale.Hash, tokens(100_000_000))
	}

	env.sale.Invoke(t, stackitem.Null{}, "startSale", env.e.CommitteeHash)

	return env
}

func (s *saleEnv) addStablecoin(t *testing.T, symbol string, decimals int) *neotest.ContractInvoker {
	// Every mock coin has its own deployer, otherwise hashes collide.
	deployer := s.e.NewAccount(t, 1000_0000_0000)
	h := contracttest.DeployBy(t, s.e, deployer, contracttest.StablecoinDir, []any{symbol, decimals})
	s.sale.Invoke(t, stackitem.Null{}, "addSupportedToken", s.e.CommitteeHash, symbol, h, decimals)

	return s.e.CommitteeInvoker(h)
}

func (s *saleEnv) newBuyer(t *testing.T, coin *neotest.ContractInvoker, precheck bool, remaining int64) neotest.Signer {
	buyer := s.e.NewAccount(t)

	coin.Invoke(t, stackitem.Null{}, "mint", buyer.ScriptHash(), new(big.Int).Exp(big.NewInt(10), big.NewInt(40), nil))
	s.sale.Invoke(t, stackitem.Null{}, "addToPermittedList", s.e.CommitteeHash, buyer.ScriptHash(), true, precheck, remaining)

	return buyer
}

func TestSaleGeneric(t *testing.T) {
	env := newSale(t)
	c := env.sale

	c.Invoke(t, env.token.Hash, "getTokenContract")
	c.Invoke(t, common.Version, "version")
	c.Invoke(t, saleconst.FirstTokenNumber, "getCurrentTokenNumber")
	c.Invoke(t, saleconst.DefaultBonusFactor, "getBonusTokenFactor")
	c.Invoke(t, saleconst.DefaultBonusLockMonths, "getBonusTokenLockPeriod")
	c.Invoke(t, false, "isTokenGenerationPerformed")
	c.Invoke(t, false, "isAllocationPerformed")
	c.Invoke(t, false, "isSaleStarted")

	for _, name := range poolNames {
		c.Invoke(t, env.pool(name), "getPoolAddress", name)
	}
	c.InvokeFail(t, saleconst.ErrUnknownPool, "getPoolAddress", "treasury")
}

func TestCurveViews(t *testing.T) {
	env := newSale(t)
	c := env.sale

	c.Invoke(t, 35000000000000186, "getTokenPrice", saleconst.FirstTokenNumber)
	c.Invoke(t, saleconst.EndPrice, "getTokenPrice", saleconst.LastTokenNumber)
	c.InvokeFail(t, saleconst.ErrOutOfSaleBounds, "getTokenPrice", saleconst.FirstTokenNumber-1)
	c.InvokeFail(t, saleconst.ErrOutOfSaleBounds, "getTokenPrice", saleconst.LastTokenNumber+1)

	c.Invoke(t, tenTokensCost, "getBuyPriceInUSD", 10)
	c.InvokeFail(t, saleconst.ErrBelowMinimumPurchase, "getBuyPriceInUSD", 0)
	c.InvokeFail(t, saleconst.ErrAboveMaximumPurchase, "getBuyPriceInUSD", 50_000_001)

	c.Invoke(t, 10, "getTokensForUSDContribution", tenTokensCost)
	c.Invoke(t, 9, "getTokensForUSDContribution", new(big.Int).Sub(tenTokensCost, big.NewInt(1)))
	c.Invoke(t, 0, "getTokensForUSDContribution", 0)
	c.Invoke(t, 50_000_000, "getTokensForUSDContribution", new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil))

	t.Run("matches off-chain formulas", func(t *testing.T) {
		curve := economics.DefaultCurve()

		for _, n := range []int64{saleconst.FirstTokenNumber, 961_234_567, 999_999_999} {
			p, err := curve.Price(n)
			require.NoError(t, err)
			require.Equal(t, p.String(), contracttest.Int(t, c, "getTokenPrice", n).String())
		}

		for _, qty := range []int64{1, 3, 1000, 123_456} {
			cost, err := curve.Cost(saleconst.FirstTokenNumber, qty)
			require.NoError(t, err)
			require.Equal(t, cost.String(), contracttest.Int(t, c, "getBuyPriceInUSD", qty).String())

			cost.Add(cost, big.NewInt(12345))
			require.Equal(t, curve.TokensFor(saleconst.FirstTokenNumber, cost),
				contracttest.Int(t, c, "getTokensForUSDContribution", cost).Int64())
		}
	})

	t.Run("stablecoin price", func(t *testing.T) {
		env.addStablecoin(t, "USDT", 6)
		env.addStablecoin(t, "WBTC", 8)
		env.addStablecoin(t, "DAI", 18)
		env.addStablecoin(t, "EUSD", 20)

		c.Invoke(t, 350000, "getBuyPriceInStablecoin", "USDT", 10)
		c.Invoke(t, 35000041, "getBuyPriceInStablecoin", "WBTC", 10)
		c.Invoke(t, tenTokensCost, "getBuyPriceInStablecoin", "DAI", 10)
		c.Invoke(t, new(big.Int).Mul(tenTokensCost, big.NewInt(100)), "getBuyPriceInStablecoin", "EUSD", 10)
		c.InvokeFail(t, saleconst.ErrUnsupportedToken, "getBuyPriceInStablecoin", "BUSD", 10)
	})
}

func TestGenerationAndAllocation(t *testing.T) {
	env := newSale(t)
	c := env.sale
	committee := env.e.CommitteeHash

	acc := env.e.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, common.ErrMissingRole, "performTokenGeneration", acc.ScriptHash())

	c.InvokeFail(t, saleconst.ErrNotGenerated, "transferTokensToPredefinedAddresses", committee)
	c.InvokeFail(t, saleconst.ErrNotAllocated, "startSale", committee)

	c.Invoke(t, stackitem.Null{}, "performTokenGeneration", committee)
	c.Invoke(t, true, "isTokenGenerationPerformed")
	c.InvokeFail(t, saleconst.ErrAlreadyGenerated, "performTokenGeneration", committee)

	env.token.Invoke(t, tokens(1_000_000_000), "balanceOf", c.Hash)
	env.token.Invoke(t, 0, "balanceOf", committee)

	c.Invoke(t, stackitem.Null{}, "transferTokensToPredefinedAddresses", committee)
	c.Invoke(t, true, "isAllocationPerformed")
	c.InvokeFail(t, saleconst.ErrAlreadyAllocated, "transferTokensToPredefinedAddresses", committee)

	expected := map[string]int64{
		saleconst.PoolPrecheckContribution: 0,
		saleconst.PoolSaleContribution:     0,
		saleconst.PoolSeed:                 100_000_000,
		saleconst.PoolPrivateRound1:        200_000_000,
		saleconst.PoolPrivateRound2:        50_000_000,
		saleconst.PoolPublicSale:           50_000_000,
		saleconst.PoolPublicSaleBonus:      0,
		saleconst.PoolPartners:             100_000_000,
		saleconst.PoolMining:               150_000_000,
		saleconst.PoolLiquidity:            100_000_000,
		saleconst.PoolReserve:              250_000_000,
	}
	for name, amount := range expected {
		require.Equal(t, tokens(amount).String(),
			contracttest.Int(t, env.token, "totalBalanceOf", env.pool(name)).String(), name)
	}
	env.token.Invoke(t, 0, "balanceOf", c.Hash)

	t.Run("sale state", func(t *testing.T) {
		c.InvokeFail(t, saleconst.ErrSaleNotOpen, "endSale", committee)

		c.Invoke(t, stackitem.Null{}, "startSale", committee)
		c.Invoke(t, true, "isSaleStarted")
		c.InvokeFail(t, saleconst.ErrSaleAlreadyOpen, "startSale", committee)

		c.Invoke(t, stackitem.Null{}, "endSale", committee)
		c.Invoke(t, false, "isSaleStarted")

		c.Invoke(t, stackitem.Null{}, "startSale", committee)
		c.Invoke(t, true, "isSaleStarted")
	})
}

func TestOnlyUNNAccepted(t *testing.T) {
	env := newSale(t)

	coin := env.addStablecoin(t, "USDT", 6)
	coin.Invoke(t, stackitem.Null{}, "mint", env.e.CommitteeHash, 1_000_000)
	coin.InvokeFail(t, saleconst.ErrOnlyGovernanceTokenAccepted, "transfer",
		env.e.CommitteeHash, env.sale.Hash, 1, nil)
}

func TestPurchase(t *testing.T) {
	env := newOpenSale(t)
	c := env.sale

	usdt := env.addStablecoin(t, "USDT", 6)
	buyer := env.newBuyer(t, usdt, false, 1000)
	cBuyer := c.WithSigners(buyer)

	wallet := env.pool(saleconst.PoolSaleContribution)
	publicSale := contracttest.Int(t, env.token, "balanceOf", env.pool(saleconst.PoolPublicSale))

	cBuyer.Invoke(t, 10, "purchaseTokens", buyer.ScriptHash(), "USDT", tenTokensCost)
	now := contracttest.Now(t, env.e)

	usdt.Invoke(t, 350000, "balanceOf", wallet)
	usdt.Invoke(t, 0, "balanceOf", env.pool(saleconst.PoolPrecheckContribution))

	env.token.Invoke(t, tokens(10), "balanceOf", buyer.ScriptHash())
	env.token.Invoke(t, tokens(2), "lockedBalanceOf", buyer.ScriptHash())
	env.token.Invoke(t, tokens(12), "votableBalanceOf", buyer.ScriptHash())
	env.token.Invoke(t, new(big.Int).Sub(publicSale, tokens(10)), "balanceOf", env.pool(saleconst.PoolPublicSale))

	c.Invoke(t, saleconst.FirstTokenNumber+10, "getCurrentTokenNumber")
	c.Invoke(t, 990, "getRemainingAllowance", buyer.ScriptHash())

	locks := contracttest.Item(t, env.token, "locksOf", buyer.ScriptHash()).Value().([]stackitem.Item)
	require.Len(t, locks, 1)

	lock := locks[0].Value().([]stackitem.Item)
	release, err := lock[1].TryInteger()
	require.NoError(t, err)
	require.Equal(t, economics.AddMonths(now, saleconst.DefaultBonusLockMonths), release.Int64())
	require.True(t, lock[2].Value().(bool))

	t.Run("precheck buyer", func(t *testing.T) {
		dai := env.addStablecoin(t, "DAI", 18)
		pre := env.newBuyer(t, dai, true, 5)
		cPre := c.WithSigners(pre)

		cost := big.NewInt(175000558000012090)

		cPre.InvokeFail(t, saleconst.ErrExceedsPermittedAllowance, "purchaseTokens",
			pre.ScriptHash(), "DAI", new(big.Int).Mul(cost, big.NewInt(2)))
		cPre.Invoke(t, 5, "purchaseTokens", pre.ScriptHash(), "DAI", cost)

		dai.Invoke(t, cost, "balanceOf", env.pool(saleconst.PoolPrecheckContribution))
		dai.Invoke(t, 0, "balanceOf", wallet)
		c.Invoke(t, 0, "getRemainingAllowance", pre.ScriptHash())
		c.Invoke(t, saleconst.FirstTokenNumber+15, "getCurrentTokenNumber")
		env.token.Invoke(t, tokens(1), "lockedBalanceOf", pre.ScriptHash())
	})

	t.Run("bonus settings", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "setBonusTokenFactor", env.e.CommitteeHash, 50)
		c.Invoke(t, stackitem.Null{}, "setBonusTokenLockPeriod", env.e.CommitteeHash, 1)

		cBuyer.Invoke(t, 1, "purchaseTokens", buyer.ScriptHash(), "USDT",
			contracttest.Int(t, c, "getBuyPriceInUSD", 1))
		now := contracttest.Now(t, env.e)

		locks := contracttest.Item(t, env.token, "locksOf", buyer.ScriptHash()).Value().([]stackitem.Item)
		require.Len(t, locks, 2)

		lock := locks[1].Value().([]stackitem.Item)
		amount, err := lock[0].TryInteger()
		require.NoError(t, err)
		require.Equal(t, new(big.Int).Div(tokens(1), big.NewInt(2)).String(), amount.String())

		release, err := lock[1].TryInteger()
		require.NoError(t, err)
		require.Equal(t, economics.AddMonths(now, 1), release.Int64())
	})
}

func TestPurchaseErrors(t *testing.T) {
	env := newOpenSale(t)
	c := env.sale

	usdt := env.addStablecoin(t, "USDT", 6)
	buyer := env.newBuyer(t, usdt, false, 1000)
	cBuyer := c.WithSigners(buyer)

	c.InvokeFail(t, common.ErrWitnessFailed, "purchaseTokens", buyer.ScriptHash(), "USDT", tenTokensCost)
	cBuyer.InvokeFail(t, saleconst.ErrUnsupportedToken, "purchaseTokens", buyer.ScriptHash(), "BUSD", tenTokensCost)
	cBuyer.InvokeFail(t, saleconst.ErrBelowMinimumPurchase, "purchaseTokens", buyer.ScriptHash(), "USDT", 1)

	stranger := env.e.NewAccount(t)
	c.WithSigners(stranger).InvokeFail(t, saleconst.ErrNotPermitted, "purchaseTokens",
		stranger.ScriptHash(), "USDT", tenTokensCost)

	c.Invoke(t, stackitem.Null{}, "addToPermittedList", env.e.CommitteeHash, stranger.ScriptHash(), false, false, 100)
	c.WithSigners(stranger).InvokeFail(t, saleconst.ErrNotPermitted, "purchaseTokens",
		stranger.ScriptHash(), "USDT", tenTokensCost)

	t.Run("payment failure", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "addToPermittedList", env.e.CommitteeHash, stranger.ScriptHash(), true, false, 100)
		c.WithSigners(stranger).InvokeFail(t, saleconst.ErrPaymentFailed, "purchaseTokens",
			stranger.ScriptHash(), "USDT", tenTokensCost)
	})

	t.Run("removed buyer", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "removeFromPermittedList", env.e.CommitteeHash, buyer.ScriptHash())
		c.Invoke(t, false, "isPermitted", buyer.ScriptHash())
		cBuyer.InvokeFail(t, saleconst.ErrNotPermitted, "purchaseTokens", buyer.ScriptHash(), "USDT", tenTokensCost)
	})

	t.Run("closed sale", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "endSale", env.e.CommitteeHash)
		c.WithSigners(stranger).InvokeFail(t, saleconst.ErrSaleNotOpen, "purchaseTokens",
			stranger.ScriptHash(), "USDT", tenTokensCost)
	})
}

func TestSaleConfiguration(t *testing.T) {
	env := newSale(t)
	c := env.sale
	committee := env.e.CommitteeHash

	acc := env.e.NewAccount(t)
	cAcc := c.WithSigners(acc)

	t.Run("supported tokens", func(t *testing.T) {
		usdt := env.addStablecoin(t, "USDT", 6)

		c.Invoke(t, usdt.Hash, "getSupportedTokenAddress", "USDT")
		c.Invoke(t, 6, "getSupportedTokenDecimals", "USDT")
		c.Invoke(t, []stackitem.Item{stackitem.Make("USDT")}, "listSupportedTokens")

		c.InvokeFail(t, saleconst.ErrTokenAlreadySupported, "addSupportedToken", committee, "USDT", usdt.Hash, 6)
		c.InvokeFail(t, saleconst.ErrIllegalDecimals, "addSupportedToken", committee, "USDC", usdt.Hash, 37)
		c.InvokeFail(t, saleconst.ErrIllegalDecimals, "addSupportedToken", committee, "USDC", usdt.Hash, -1)
		cAcc.InvokeFail(t, common.ErrMissingRole, "addSupportedToken", acc.ScriptHash(), "USDC", usdt.Hash, 6)

		c.Invoke(t, stackitem.Null{}, "removeSupportedToken", committee, "USDT")
		c.Invoke(t, []stackitem.Item{}, "listSupportedTokens")
		c.InvokeFail(t, saleconst.ErrUnsupportedToken, "getSupportedTokenAddress", "USDT")
		c.InvokeFail(t, saleconst.ErrUnsupportedToken, "removeSupportedToken", committee, "USDT")
	})

	t.Run("permitted list", func(t *testing.T) {
		c.Invoke(t, false, "isPermitted", acc.ScriptHash())
		c.Invoke(t, 0, "getRemainingAllowance", acc.ScriptHash())

		c.Invoke(t, stackitem.Null{}, "addToPermittedList", committee, acc.ScriptHash(), true, true, 42)
		c.Invoke(t, true, "isPermitted", acc.ScriptHash())
		c.Invoke(t, true, "isPrecheck", acc.ScriptHash())
		c.Invoke(t, 42, "getRemainingAllowance", acc.ScriptHash())

		c.InvokeFail(t, saleconst.ErrIllegalAllowance, "addToPermittedList", committee, acc.ScriptHash(), true, true, -1)
		cAcc.InvokeFail(t, common.ErrMissingRole, "removeFromPermittedList", acc.ScriptHash(), acc.ScriptHash())
	})

	t.Run("bonus", func(t *testing.T) {
		c.InvokeFail(t, saleconst.ErrIllegalBonusFactor, "setBonusTokenFactor", committee, 0)
		c.InvokeFail(t, saleconst.ErrIllegalBonusFactor, "setBonusTokenFactor", committee, 501)
		c.InvokeFail(t, saleconst.ErrIllegalLockPeriod, "setBonusTokenLockPeriod", committee, 0)
		c.InvokeFail(t, saleconst.ErrIllegalLockPeriod, "setBonusTokenLockPeriod", committee, 61)

		c.Invoke(t, stackitem.Null{}, "setBonusTokenFactor", committee, 500)
		c.Invoke(t, 500, "getBonusTokenFactor")
		c.Invoke(t, stackitem.Null{}, "setBonusTokenLockPeriod", committee, 60)
		c.Invoke(t, 60, "getBonusTokenLockPeriod")

		cAcc.InvokeFail(t, common.ErrMissingRole, "setBonusTokenFactor", acc.ScriptHash(), 10)
	})

	t.Run("pools", func(t *testing.T) {
		c.Invoke(t, stackitem.Null{}, "setPoolAddress", committee, saleconst.PoolReserve, acc.ScriptHash())
		c.Invoke(t, acc.ScriptHash(), "getPoolAddress", saleconst.PoolReserve)

		c.InvokeFail(t, saleconst.ErrUnknownPool, "setPoolAddress", committee, "treasury", acc.ScriptHash())
		cAcc.InvokeFail(t, common.ErrMissingRole, "setPoolAddress", acc.ScriptHash(), saleconst.PoolReserve, acc.ScriptHash())
	})

	t.Run("roles", func(t *testing.T) {
		c.Invoke(t, true, "hasRole", common.RoleGovern, committee)
		c.Invoke(t, stackitem.Null{}, "grantRole", committee, common.RoleGovern, acc.ScriptHash())
		cAcc.Invoke(t, stackitem.Null{}, "setBonusTokenFactor", acc.ScriptHash(), 10)
		c.Invoke(t, stackitem.Null{}, "revokeRole", committee, common.RoleGovern, acc.ScriptHash())
		c.Invoke(t, false, "hasRole", common.RoleGovern, acc.ScriptHash())
	})
}

func TestGenerationRequiresApproval(t *testing.T) {
	env := newSale(t)

	env.token.Invoke(t, stackitem.Null{}, "setReversion", env.e.CommitteeHash, true)
	env.token.Invoke(t, true, "approve", env.e.CommitteeHash, env.sale.Hash, 0)

	env.sale.InvokeFail(t, tokenconst.ErrAllowanceExceeded, "performTokenGeneration", env.e.CommitteeHash)
	env.sale.Invoke(t, false, "isTokenGenerationPerformed")
}
