// Package lock contains RPC wrappers for UNN voluntary lock contract.
package lock

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// YieldTier is a contract-specific lock.YieldTier type used by its methods.
type YieldTier struct {
	MinDays     *big.Int
	YieldBps    *big.Int
	DailyFactor *big.Int
}

// TokensLockedEvent represents "TokensLocked" event emitted by the contract.
type TokensLockedEvent struct {
	Account     util.Uint160
	Amount      *big.Int
	Reward      *big.Int
	ReleaseTime *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Name invokes `name` method of contract.
func (c *ContractReader) Name() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "name"))
}

// GetTokenContract invokes `getTokenContract` method of contract.
func (c *ContractReader) GetTokenContract() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getTokenContract"))
}

// GetRewardWallet invokes `getRewardWallet` method of contract.
func (c *ContractReader) GetRewardWallet() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getRewardWallet"))
}

// GetYieldTiers invokes `getYieldTiers` method of contract.
func (c *ContractReader) GetYieldTiers() ([]*YieldTier, error) {
	arr, err := unwrap.Array(c.invoker.Call(c.hash, "getYieldTiers"))
	if err != nil {
		return nil, err
	}

	res := make([]*YieldTier, len(arr))
	for i := range arr {
		res[i] = new(YieldTier)
		if err := res[i].FromStackItem(arr[i]); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	return res, nil
}

// CalculateReward invokes `calculateReward` method of contract.
func (c *ContractReader) CalculateReward(principal *big.Int, days *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "calculateReward", principal, days))
}

// CalculateLockAmount invokes `calculateLockAmount` method of contract.
func (c *ContractReader) CalculateLockAmount(principal *big.Int, days *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "calculateLockAmount", principal, days))
}

// HasRole invokes `hasRole` method of contract.
func (c *ContractReader) HasRole(role string, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasRole", role, account))
}

// LockTokens creates a transaction invoking `lockTokens` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) LockTokens(account util.Uint160, amount *big.Int, days *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "lockTokens", account, amount, days)
}

// LockTokensTransaction creates a transaction invoking `lockTokens` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) LockTokensTransaction(account util.Uint160, amount *big.Int, days *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "lockTokens", account, amount, days)
}

// LockTokensUnsigned creates a transaction invoking `lockTokens` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) LockTokensUnsigned(account util.Uint160, amount *big.Int, days *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "lockTokens", nil, account, amount, days)
}

// SetRewardWallet creates a transaction invoking `setRewardWallet` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetRewardWallet(caller util.Uint160, wallet util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setRewardWallet", caller, wallet)
}

// SetRewardWalletTransaction creates a transaction invoking `setRewardWallet` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetRewardWalletTransaction(caller util.Uint160, wallet util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setRewardWallet", caller, wallet)
}

// SetRewardWalletUnsigned creates a transaction invoking `setRewardWallet` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetRewardWalletUnsigned(caller util.Uint160, wallet util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setRewardWallet", nil, caller, wallet)
}

// SetYieldTier creates a transaction invoking `setYieldTier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetYieldTier(caller util.Uint160, minDays *big.Int, yieldBps *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setYieldTier", caller, minDays, yieldBps)
}

// SetYieldTierTransaction creates a transaction invoking `setYieldTier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetYieldTierTransaction(caller util.Uint160, minDays *big.Int, yieldBps *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setYieldTier", caller, minDays, yieldBps)
}

// SetYieldTierUnsigned creates a transaction invoking `setYieldTier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetYieldTierUnsigned(caller util.Uint160, minDays *big.Int, yieldBps *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setYieldTier", nil, caller, minDays, yieldBps)
}

// RemoveYieldTier creates a transaction invoking `removeYieldTier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveYieldTier(caller util.Uint160, minDays *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeYieldTier", caller, minDays)
}

// RemoveYieldTierTransaction creates a transaction invoking `removeYieldTier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveYieldTierTransaction(caller util.Uint160, minDays *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeYieldTier", caller, minDays)
}

// RemoveYieldTierUnsigned creates a transaction invoking `removeYieldTier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveYieldTierUnsigned(caller util.Uint160, minDays *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeYieldTier", nil, caller, minDays)
}

// GrantRole creates a transaction invoking `grantRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GrantRole(caller util.Uint160, role string, account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "grantRole", caller, role, account)
}

// GrantRoleTransaction creates a transaction invoking `grantRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GrantRoleTransaction(caller util.Uint160, role string, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "grantRole", caller, role, account)
}

// GrantRoleUnsigned creates a transaction invoking `grantRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GrantRoleUnsigned(caller util.Uint160, role string, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "grantRole", nil, caller, role, account)
}

// RevokeRole creates a transaction invoking `revokeRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RevokeRole(caller util.Uint160, role string, account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revokeRole", caller, role, account)
}

// RevokeRoleTransaction creates a transaction invoking `revokeRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeRoleTransaction(caller util.Uint160, role string, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revokeRole", caller, role, account)
}

// RevokeRoleUnsigned creates a transaction invoking `revokeRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeRoleUnsigned(caller util.Uint160, role string, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revokeRole", nil, caller, role, account)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(caller util.Uint160, nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", caller, nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(caller util.Uint160, nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", caller, nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(caller util.Uint160, nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, caller, nefFile, manifest, data)
}

// FromStackItem retrieves fields of YieldTier from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *YieldTier) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var err error

	res.MinDays, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinDays: %w", err)
	}

	res.YieldBps, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field YieldBps: %w", err)
	}

	res.DailyFactor, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field DailyFactor: %w", err)
	}

	return nil
}

// TokensLockedEventsFromApplicationLog retrieves a set of all emitted events
// with "TokensLocked" name from the provided [result.ApplicationLog].
func TokensLockedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TokensLockedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TokensLockedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TokensLocked" {
				continue
			}
			event := new(TokensLockedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TokensLockedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TokensLockedEvent or
// returns an error if it's not possible to do to so.
func (e *TokensLockedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	b, err := arr[0].TryBytes()
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}
	e.Account, err = util.Uint160DecodeBytesBE(b)
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	e.Amount, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.Reward, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reward: %w", err)
	}

	e.ReleaseTime, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReleaseTime: %w", err)
	}

	return nil
}
