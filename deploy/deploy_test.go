package deploy

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/config/netmode"
	"github.com/nspcc-dev/neo-go/pkg/consensus"
	"github.com/nspcc-dev/neo-go/pkg/core"
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/network"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/services/rpcsrv"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/stretchr/testify/require"
	"github.com/unionprotocol/unn-contract/common"
	"github.com/unionprotocol/unn-contract/contracts"
	"github.com/unionprotocol/unn-contract/contracts/sale/saleconst"
	"github.com/unionprotocol/unn-contract/economics"
	"github.com/unionprotocol/unn-contract/rpc/lock"
	"github.com/unionprotocol/unn-contract/rpc/sale"
	"github.com/unionprotocol/unn-contract/rpc/token"
	"go.uber.org/zap/zaptest"
)

func tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1_000_000_000_000_000_000))
}

// newTestChain starts single-node network with consensus and returns RPC
// client connected to it along with unlocked validator account and its
// single-key multi-signature account holding genesis GAS.
func newTestChain(t *testing.T) (*rpcclient.Internal, *wallet.Account, *wallet.Account) {
	validatorAcc, err := wallet.NewAccount()
	require.NoError(t, err)

	var validatorMulti = new(wallet.Account)
	*validatorMulti = *validatorAcc
	err = validatorMulti.ConvertMultisig(1, []*keys.PublicKey{validatorAcc.PublicKey()})
	require.NoError(t, err)

	walletPath := filepath.Join(t.TempDir(), "wallet.json")
	wlt, err := wallet.NewWallet(walletPath)
	require.NoError(t, err)

	err = validatorAcc.Encrypt("", keys.NEP2ScryptParams())
	require.NoError(t, err)
	wlt.AddAccount(validatorAcc)
	require.NoError(t, wlt.Save())

	var (
		cfg = config.Config{
			ApplicationConfiguration: config.ApplicationConfiguration{
				RPC: config.RPC{
					BasicService: config.BasicService{
						Enabled: true,
					},
					MaxGasInvoke: fixedn.Fixed8FromInt64(500),
				},
				Consensus: config.Consensus{
					Enabled: true,
					UnlockWallet: config.Wallet{
						Path:     walletPath,
						Password: "",
					},
				},
			},
			ProtocolConfiguration: config.ProtocolConfiguration{
				Magic:                       netmode.UnitTestNet,
				MaxTraceableBlocks:          1000,
				MaxValidUntilBlockIncrement: 1000 / 2,
				TimePerBlock:                50 * time.Millisecond,
				StandbyCommittee:            []string{hex.EncodeToString(validatorAcc.PublicKey().Bytes())},
				ValidatorsCount:             1,
				VerifyTransactions:          true,
			},
		}
		logger = zaptest.NewLogger(t)
		store  = storage.NewMemoryStore()
	)

	bc, err := core.NewBlockchain(store, config.Blockchain{ProtocolConfiguration: cfg.ProtocolConfiguration}, logger)
	require.NoError(t, err)
	go bc.Run()
	t.Cleanup(bc.Close)

	serverConfig, err := network.NewServerConfig(config.Config{ProtocolConfiguration: cfg.ProtocolConfiguration})
	require.NoError(t, err)
	serverConfig.UserAgent = fmt.Sprintf(config.UserAgentFormat, "unn-deploy-test")
	netSrv, err := network.NewServer(serverConfig, bc, bc.GetStateSyncModule(), logger)
	require.NoError(t, err)
	cons, err := consensus.NewService(consensus.Config{
		Logger:                logger,
		Broadcast:             netSrv.BroadcastExtensible,
		Chain:                 bc,
		BlockQueue:            netSrv.GetBlockQueue(),
		ProtocolConfiguration: cfg.ProtocolConfiguration,
		RequestTx:             netSrv.RequestTx,
		StopTxFlow:            netSrv.StopTxFlow,
		Wallet:                cfg.ApplicationConfiguration.Consensus.UnlockWallet,
		TimePerBlock:          cfg.ProtocolConfiguration.TimePerBlock,
	})
	require.NoError(t, err)
	netSrv.AddConsensusService(cons, cons.OnPayload, cons.OnTransaction)
	netSrv.Start()

	errCh := make(chan error, 2)
	rpcServer := rpcsrv.New(bc, cfg.ApplicationConfiguration.RPC, netSrv, nil, logger, errCh)
	rpcServer.Start()
	t.Cleanup(rpcServer.Shutdown)

	rpcClient, err := rpcclient.NewInternal(context.TODO(), rpcServer.RegisterLocal)
	require.NoError(t, err)
	require.NoError(t, rpcClient.Init())

	return rpcClient, validatorAcc, validatorMulti
}

func newAccount(t *testing.T) *wallet.Account {
	acc, err := wallet.NewAccount()
	require.NoError(t, err)
	return acc
}

func TestDeploy(t *testing.T) {
	rpcClient, validatorAcc, validatorMulti := newTestChain(t)

	cs, err := contracts.Compile(filepath.Join("..", "contracts"))
	require.NoError(t, err)
	require.Len(t, cs, 3)

	var (
		pools   = make(map[string]util.Uint160, len(Pools))
		signers []*wallet.Account
	)

	for _, name := range Pools {
		acc := newAccount(t)
		pools[name] = acc.ScriptHash()

		switch name {
		case saleconst.PoolPublicSale, saleconst.PoolPublicSaleBonus, saleconst.PoolReserve:
			signers = append(signers, acc)
		}
	}

	rewardAcc := newAccount(t)
	signers = append(signers, rewardAcc)

	buyers := []Permit{
		{Account: newAccount(t).ScriptHash(), Remaining: 1000},
		{Account: newAccount(t).ScriptHash(), Remaining: 50, Precheck: true},
	}

	usdt := util.Uint160{0xaa, 0xbb}
	statePath := filepath.Join(t.TempDir(), "state.json")

	prm := Prm{
		Logger:       zaptest.NewLogger(t),
		Blockchain:   rpcClient,
		LocalAccount: validatorAcc,
		Signers:      signers,
		GASSource:    validatorMulti,
		SignerGAS:    big.NewInt(1000_0000_0000),
		Token:        cs[0],
		Sale:         cs[1],
		Lock:         cs[2],
		Settings: Settings{
			Owner:         validatorAcc.ScriptHash(),
			TotalSupply:   tokens(1_000_000_000),
			Pools:         pools,
			RewardWallet:  rewardAcc.ScriptHash(),
			BonusFunding:  tokens(1000),
			RewardFunding: tokens(5000),
			Stablecoins:   []Stablecoin{{Symbol: "USDT", Hash: usdt, Decimals: 6}},
			YieldTiers:    []economics.Tier{{MinDays: 7, YieldBps: 1000}},
			StartSale:     true,
		},
		AllowList: buyers,
		StatePath: statePath,
	}

	ctx, cancel := context.WithTimeout(context.TODO(), 2*time.Minute)
	st, err := Deploy(ctx, prm)
	cancel()
	require.NoError(t, err)

	owner := validatorAcc.ScriptHash()
	require.Equal(t, cs[0].Hash(owner), st.Token)
	require.Equal(t, cs[1].Hash(owner), st.Sale)
	require.Equal(t, cs[2].Hash(owner), st.Lock)

	saved, err := ReadState(statePath)
	require.NoError(t, err)
	require.Equal(t, st, saved)

	inv := invoker.New(rpcClient, nil)
	tokenReader := token.NewReader(inv, st.Token)
	saleReader := sale.NewReader(inv, st.Sale)
	lockReader := lock.NewReader(inv, st.Lock)

	bal, err := tokenReader.BalanceOf(pools[saleconst.PoolPublicSale])
	require.NoError(t, err)
	require.Equal(t, tokens(50_000_000).String(), bal.String())

	bal, err = tokenReader.BalanceOf(pools[saleconst.PoolPublicSaleBonus])
	require.NoError(t, err)
	require.Equal(t, tokens(1000).String(), bal.String())

	bal, err = tokenReader.BalanceOf(rewardAcc.ScriptHash())
	require.NoError(t, err)
	require.Equal(t, tokens(5000).String(), bal.String())

	bal, err = tokenReader.BalanceOf(pools[saleconst.PoolReserve])
	require.NoError(t, err)
	require.Equal(t, tokens(250_000_000-6000).String(), bal.String())

	allowance, err := tokenReader.Allowance(pools[saleconst.PoolPublicSale], st.Sale)
	require.NoError(t, err)
	require.Equal(t, tokens(1_000_000_000).String(), allowance.String())

	allowance, err = tokenReader.Allowance(rewardAcc.ScriptHash(), st.Lock)
	require.NoError(t, err)
	require.Equal(t, tokens(1_000_000_000).String(), allowance.String())

	for _, acc := range []util.Uint160{st.Sale, st.Lock} {
		for _, role := range []string{common.RoleAllocator, common.RoleLock} {
			has, err := tokenReader.HasRole(role, acc)
			require.NoError(t, err)
			require.True(t, has, role)
		}
	}

	started, err := saleReader.IsSaleStarted()
	require.NoError(t, err)
	require.True(t, started)

	coin, err := saleReader.GetSupportedTokenAddress("USDT")
	require.NoError(t, err)
	require.Equal(t, usdt, coin)

	for _, p := range buyers {
		remaining, err := saleReader.GetRemainingAllowance(p.Account)
		require.NoError(t, err)
		require.EqualValues(t, p.Remaining, remaining.Int64())

		precheck, err := saleReader.IsPrecheck(p.Account)
		require.NoError(t, err)
		require.Equal(t, p.Precheck, precheck)
	}

	tiers, err := lockReader.GetYieldTiers()
	require.NoError(t, err)
	require.Len(t, tiers, 4)

	t.Run("repeat", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.TODO(), 2*time.Minute)
		defer cancel()

		again, err := Deploy(ctx, prm)
		require.NoError(t, err)
		require.Equal(t, st.Token, again.Token)
		require.Equal(t, st.Sale, again.Sale)
		require.Equal(t, st.Lock, again.Lock)

		bal, err := tokenReader.BalanceOf(pools[saleconst.PoolPublicSaleBonus])
		require.NoError(t, err)
		require.Equal(t, tokens(1000).String(), bal.String())
	})

	t.Run("foreign owner", func(t *testing.T) {
		foreign := prm
		foreign.LocalAccount = newAccount(t)

		_, err := Deploy(context.TODO(), foreign)
		require.Error(t, err)
	})
}
