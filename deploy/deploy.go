package deploy

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/unionprotocol/unn-contract/common"
	"github.com/unionprotocol/unn-contract/contracts"
	"github.com/unionprotocol/unn-contract/contracts/sale/saleconst"
	"github.com/unionprotocol/unn-contract/rpc/lock"
	"github.com/unionprotocol/unn-contract/rpc/sale"
	"github.com/unionprotocol/unn-contract/rpc/token"
	"go.uber.org/zap"
)

// ErrTransactionFault is returned when a deployment transaction is accepted
// but its execution ends in FAULT state.
var ErrTransactionFault = errors.New("transaction faulted")

// permitsPerTx limits the number of permitted list entries registered by a
// single transaction.
const permitsPerTx = 64

// Blockchain groups services provided by particular Neo blockchain network
// that are required for UNN deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. It returns error with 'Unknown contract' substring if requested
	// contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups all parameters of the UNN deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance UNN is deployed to.
	Blockchain Blockchain

	// Owner account deploying contracts and calling administrative methods
	// (must be unlocked). Its address must match Settings.Owner.
	LocalAccount *wallet.Account

	// Unlocked accounts of the pools and the reward wallet. Steps requiring
	// signature of a missing account are skipped with a warning.
	Signers []*wallet.Account

	// Account spreading GAS to the owner and signers before their first
	// transaction (must be unlocked). Nil disables GAS distribution.
	GASSource *wallet.Account
	// GAS amount (in 10^-8 fractions) each funded account gets.
	SignerGAS *big.Int

	Token contracts.Contract
	Sale  contracts.Contract
	Lock  contracts.Contract

	Settings  Settings
	AllowList []Permit

	// JSON file deployment State is written to. Empty disables persistence.
	StatePath string
}

type deployer struct {
	ctx context.Context
	log *zap.Logger
	prm Prm

	ownerActor *actor.Actor
	gasActor   *actor.Actor
	actors     map[util.Uint160]*actor.Actor

	token *token.Contract
	sale  *sale.Contract
	lock  *lock.Contract
	st    State
}

// Deploy brings UNN contracts into the network represented by
// Prm.Blockchain and bootstraps the token sale.
//
// Every step first checks the current chain state and is skipped when
// already done, so Deploy can be repeated after a failure. Stages:
//  1. GAS distribution to the owner and signers
//  2. deployment of token, sale and lock contracts
//  3. role grants: allocator and lock for the sale and lock contracts,
//     allocator for every pool
//  4. token generation and allocation between the pools
//  5. approvals of the pools and the reward wallet, their funding from the
//     supply reserve
//  6. yield tiers, stablecoins and the permitted list
//  7. sale start
func Deploy(ctx context.Context, prm Prm) (State, error) {
	owner := prm.LocalAccount.ScriptHash()
	if !owner.Equals(prm.Settings.Owner) {
		return State{}, fmt.Errorf("local account %s is not the configured owner %s",
			owner.StringLE(), prm.Settings.Owner.StringLE())
	}

	d := &deployer{
		ctx:    ctx,
		log:    prm.Logger,
		prm:    prm,
		actors: make(map[util.Uint160]*actor.Actor),
		st:     State{RunID: uuid.New()},
	}

	d.log = d.log.With(zap.Stringer("run", d.st.RunID))

	var err error

	if prm.GASSource != nil {
		d.gasActor, err = actor.NewSimple(prm.Blockchain, prm.GASSource)
		if err != nil {
			return State{}, fmt.Errorf("init GAS source transaction sender: %w", err)
		}
	}

	d.ownerActor, err = d.signer(owner)
	if err != nil {
		return State{}, err
	}

	for _, step := range []struct {
		name string
		f    func() error
	}{
		{"deploy contracts", d.deployContracts},
		{"grant roles", d.grantRoles},
		{"generate tokens", d.generate},
		{"approve pools", d.approvePools},
		{"fund pools", d.fundPools},
		{"set yield tiers", d.setYieldTiers},
		{"register stablecoins", d.registerStablecoins},
		{"fill permitted list", d.fillPermittedList},
		{"start sale", d.startSale},
	} {
		if err := ctx.Err(); err != nil {
			return d.st, err
		}

		d.log.Info("deployment step...", zap.String("step", step.name))

		err = step.f()
		if err != nil {
			return d.st, fmt.Errorf("%s: %w", step.name, err)
		}
	}

	d.log.Info("UNN deployment successfully finished",
		zap.Stringer("token", d.st.Token),
		zap.Stringer("sale", d.st.Sale),
		zap.Stringer("lock", d.st.Lock))

	return d.st, nil
}

// signer returns transaction sender for the account, accounts are funded with
// GAS on the first use.
func (d *deployer) signer(h util.Uint160) (*actor.Actor, error) {
	if act, ok := d.actors[h]; ok {
		return act, nil
	}

	acc := d.account(h)
	if acc == nil {
		return nil, nil
	}

	err := d.fundGAS(h)
	if err != nil {
		return nil, fmt.Errorf("fund %s with GAS: %w", h.StringLE(), err)
	}

	act, err := actor.NewSimple(d.prm.Blockchain, acc)
	if err != nil {
		return nil, fmt.Errorf("init transaction sender for %s: %w", h.StringLE(), err)
	}

	d.actors[h] = act

	return act, nil
}

func (d *deployer) account(h util.Uint160) *wallet.Account {
	if d.prm.LocalAccount.ScriptHash().Equals(h) {
		return d.prm.LocalAccount
	}

	for _, acc := range d.prm.Signers {
		if acc.ScriptHash().Equals(h) {
			return acc
		}
	}

	return nil
}

func (d *deployer) fundGAS(h util.Uint160) error {
	if d.gasActor == nil || d.prm.SignerGAS == nil || d.prm.SignerGAS.Sign() <= 0 {
		return nil
	}
	if d.gasActor.Sender().Equals(h) {
		return nil
	}

	gasToken := gas.New(d.gasActor)

	bal, err := gasToken.BalanceOf(h)
	if err != nil {
		return fmt.Errorf("get GAS balance: %w", err)
	}

	if bal.Cmp(new(big.Int).Rsh(d.prm.SignerGAS, 1)) >= 0 {
		return nil
	}

	return d.await(d.gasActor, "transfer GAS", zap.Stringer("to", h))(
		gasToken.Transfer(d.gasActor.Sender(), h, d.prm.SignerGAS, nil))
}

// await returns function waiting for the transaction to be persisted and
// checking its execution result.
func (d *deployer) await(act *actor.Actor, action string, fields ...zap.Field) func(util.Uint256, uint32, error) error {
	return func(h util.Uint256, vub uint32, err error) error {
		res, err := act.Wait(h, vub, err)
		if err != nil {
			return fmt.Errorf("%s: %w", action, err)
		}

		if res.VMState != vmstate.Halt {
			return fmt.Errorf("%s: %w: %s", action, ErrTransactionFault, res.FaultException)
		}

		d.log.Info(action, append(fields, zap.Stringer("tx", h))...)

		return nil
	}
}

func (d *deployer) deployContracts() error {
	var (
		s     = d.prm.Settings
		owner = s.Owner
		err   error
	)

	d.st.Token, err = d.deployContract("token", d.prm.Token, []any{owner, s.TotalSupply})
	if err != nil {
		return err
	}

	saleArgs := []any{owner, d.st.Token}
	for _, name := range Pools {
		saleArgs = append(saleArgs, s.Pools[name])
	}

	d.st.Sale, err = d.deployContract("sale", d.prm.Sale, saleArgs)
	if err != nil {
		return err
	}

	d.st.Lock, err = d.deployContract("lock", d.prm.Lock, []any{owner, d.st.Token, s.RewardWallet})
	if err != nil {
		return err
	}

	if d.prm.StatePath != "" {
		err = WriteState(d.prm.StatePath, d.st)
		if err != nil {
			return err
		}
	}

	d.token = token.New(d.ownerActor, d.st.Token)
	d.sale = sale.New(d.ownerActor, d.st.Sale)
	d.lock = lock.New(d.ownerActor, d.st.Lock)

	return nil
}

func (d *deployer) deployContract(name string, c contracts.Contract, args []any) (util.Uint160, error) {
	h := c.Hash(d.prm.LocalAccount.ScriptHash())
	l := d.log.With(zap.String("contract", name), zap.Stringer("address", h))

	_, err := d.prm.Blockchain.GetContractStateByHash(h)
	if err == nil {
		l.Info("contract is already deployed, skip")
		return h, nil
	}
	if !isErrContractNotFound(err) {
		return h, fmt.Errorf("get state of %s contract: %w", name, err)
	}

	err = d.await(d.ownerActor, "contract deployed", zap.String("contract", name), zap.Stringer("address", h))(
		management.New(d.ownerActor).Deploy(&c.NEF, &c.Manifest, args))
	if err != nil {
		return h, fmt.Errorf("deploy %s contract: %w", name, err)
	}

	return h, nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

func (d *deployer) grantRoles() error {
	type grant struct {
		role    string
		account util.Uint160
	}

	grants := []grant{
		{common.RoleAllocator, d.st.Sale},
		{common.RoleLock, d.st.Sale},
		{common.RoleAllocator, d.st.Lock},
		{common.RoleLock, d.st.Lock},
	}
	for _, name := range Pools {
		grants = append(grants, grant{common.RoleAllocator, d.prm.Settings.Pools[name]})
	}

	owner := d.prm.Settings.Owner

	for _, g := range grants {
		has, err := d.token.HasRole(g.role, g.account)
		if err != nil {
			return fmt.Errorf("check %s role of %s: %w", g.role, g.account.StringLE(), err)
		}
		if has {
			continue
		}

		err = d.await(d.ownerActor, "role granted", zap.String("role", g.role), zap.Stringer("account", g.account))(
			d.token.GrantRole(owner, g.role, g.account))
		if err != nil {
			return err
		}
	}

	return nil
}

func (d *deployer) generate() error {
	owner := d.prm.Settings.Owner

	generated, err := d.sale.IsTokenGenerationPerformed()
	if err != nil {
		return fmt.Errorf("check token generation: %w", err)
	}

	if !generated {
		bal, err := d.token.BalanceOf(owner)
		if err != nil {
			return fmt.Errorf("get owner balance: %w", err)
		}

		err = d.approve(d.ownerActor, owner, d.st.Sale, bal)
		if err != nil {
			return err
		}

		err = d.await(d.ownerActor, "tokens generated")(d.sale.PerformTokenGeneration(owner))
		if err != nil {
			return err
		}
	}

	allocated, err := d.sale.IsAllocationPerformed()
	if err != nil {
		return fmt.Errorf("check allocation: %w", err)
	}

	if allocated {
		d.log.Info("tokens are already allocated, skip")
		return nil
	}

	return d.await(d.ownerActor, "tokens allocated to the pools")(d.sale.TransferTokensToPredefinedAddresses(owner))
}

// approve makes spender allowance of the owner at least amount.
func (d *deployer) approve(act *actor.Actor, owner, spender util.Uint160, amount *big.Int) error {
	cur, err := d.token.Allowance(owner, spender)
	if err != nil {
		return fmt.Errorf("get allowance: %w", err)
	}

	if cur.Cmp(amount) >= 0 {
		return nil
	}

	return d.await(act, "allowance approved", zap.Stringer("owner", owner), zap.Stringer("spender", spender))(
		token.New(act, d.st.Token).Approve(owner, spender, amount))
}

func (d *deployer) approvePools() error {
	s := d.prm.Settings

	for _, a := range []struct {
		name    string
		owner   util.Uint160
		spender util.Uint160
	}{
		{saleconst.PoolPublicSale, s.Pools[saleconst.PoolPublicSale], d.st.Sale},
		{saleconst.PoolPublicSaleBonus, s.Pools[saleconst.PoolPublicSaleBonus], d.st.Sale},
		{"reward wallet", s.RewardWallet, d.st.Lock},
	} {
		act, err := d.signer(a.owner)
		if err != nil {
			return err
		}
		if act == nil {
			d.log.Warn("no signer for the wallet, approval must be done manually",
				zap.String("wallet", a.name), zap.Stringer("address", a.owner))
			continue
		}

		err = d.approve(act, a.owner, a.spender, s.TotalSupply)
		if err != nil {
			return fmt.Errorf("%s: %w", a.name, err)
		}
	}

	return nil
}

func (d *deployer) fundPools() error {
	s := d.prm.Settings
	reserve := s.Pools[saleconst.PoolReserve]

	for _, f := range []struct {
		name   string
		to     util.Uint160
		amount *big.Int
	}{
		{saleconst.PoolPublicSaleBonus, s.Pools[saleconst.PoolPublicSaleBonus], s.BonusFunding},
		{"reward wallet", s.RewardWallet, s.RewardFunding},
	} {
		if f.amount.Sign() == 0 {
			continue
		}

		bal, err := d.token.BalanceOf(f.to)
		if err != nil {
			return fmt.Errorf("get %s balance: %w", f.name, err)
		}
		if bal.Cmp(f.amount) >= 0 {
			continue
		}

		act, err := d.signer(reserve)
		if err != nil {
			return err
		}
		if act == nil {
			d.log.Warn("no signer for the supply reserve, funding must be done manually",
				zap.String("wallet", f.name))
			return nil
		}

		missing := new(big.Int).Sub(f.amount, bal)

		err = d.await(act, "wallet funded", zap.String("wallet", f.name), zap.Stringer("amount", missing))(
			token.New(act, d.st.Token).Transfer(reserve, f.to, missing, nil))
		if err != nil {
			return err
		}
	}

	return nil
}

func (d *deployer) setYieldTiers() error {
	if len(d.prm.Settings.YieldTiers) == 0 {
		return nil
	}

	current, err := d.lock.GetYieldTiers()
	if err != nil {
		return fmt.Errorf("get yield tiers: %w", err)
	}

	actual := make(map[int64]int64, len(current))
	for _, t := range current {
		actual[t.MinDays.Int64()] = t.YieldBps.Int64()
	}

	owner := d.prm.Settings.Owner

	for _, t := range d.prm.Settings.YieldTiers {
		if bps, ok := actual[t.MinDays]; ok && bps == t.YieldBps {
			continue
		}

		err = d.await(d.ownerActor, "yield tier set", zap.Int64("days", t.MinDays), zap.Int64("bps", t.YieldBps))(
			d.lock.SetYieldTier(owner, big.NewInt(t.MinDays), big.NewInt(t.YieldBps)))
		if err != nil {
			return err
		}
	}

	return nil
}

func (d *deployer) registerStablecoins() error {
	symbols, err := d.sale.ListSupportedTokens()
	if err != nil {
		return fmt.Errorf("list supported tokens: %w", err)
	}

	supported := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		supported[s] = struct{}{}
	}

	owner := d.prm.Settings.Owner

	for _, c := range d.prm.Settings.Stablecoins {
		if _, ok := supported[c.Symbol]; ok {
			continue
		}

		err = d.await(d.ownerActor, "stablecoin registered", zap.String("symbol", c.Symbol), zap.Stringer("address", c.Hash))(
			d.sale.AddSupportedToken(owner, c.Symbol, c.Hash, big.NewInt(int64(c.Decimals))))
		if err != nil {
			return err
		}
	}

	return nil
}

// fillPermittedList registers allow-list entries missing in the sale, several
// entries per transaction.
func (d *deployer) fillPermittedList() error {
	var (
		owner   = d.prm.Settings.Owner
		pending []Permit
	)

	for _, p := range d.prm.AllowList {
		ok, err := d.sale.IsPermitted(p.Account)
		if err != nil {
			return fmt.Errorf("check permitted list: %w", err)
		}
		if !ok {
			pending = append(pending, p)
		}
	}

	for len(pending) > 0 {
		n := len(pending)
		if n > permitsPerTx {
			n = permitsPerTx
		}

		b := smartcontract.NewBuilder()
		for _, p := range pending[:n] {
			b.InvokeMethod(d.st.Sale, "addToPermittedList", owner, p.Account, true, p.Precheck, p.Remaining)
		}

		script, err := b.Script()
		if err != nil {
			return fmt.Errorf("build permitted list script: %w", err)
		}

		err = d.await(d.ownerActor, "buyers permitted", zap.Int("count", n))(d.ownerActor.SendRun(script))
		if err != nil {
			return err
		}

		pending = pending[n:]
	}

	return nil
}

func (d *deployer) startSale() error {
	if !d.prm.Settings.StartSale {
		return nil
	}

	started, err := d.sale.IsSaleStarted()
	if err != nil {
		return fmt.Errorf("check sale state: %w", err)
	}

	if started {
		return nil
	}

	return d.await(d.ownerActor, "sale started")(d.sale.StartSale(d.prm.Settings.Owner))
}
