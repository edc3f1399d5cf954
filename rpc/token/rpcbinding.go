// Package token contains RPC wrappers for UNN governance token contract.
package token

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Lock is a contract-specific token.Lock type used by its methods.
type Lock struct {
	Amount      *big.Int
	ReleaseTime *big.Int
	Votable     bool
}

// LockEvent represents "Lock" event emitted by the contract.
type LockEvent struct {
	Account     util.Uint160
	Amount      *big.Int
	ReleaseTime *big.Int
	Votable     bool
}

// DelegateChangedEvent represents "DelegateChanged" event emitted by the contract.
type DelegateChangedEvent struct {
	Delegator    util.Uint160
	FromDelegate util.Uint160
	ToDelegate   util.Uint160
}

// ConfigChangedEvent represents "ConfigChanged" event emitted by the contract.
type ConfigChangedEvent struct {
	CanTransfer bool
	Reversion   bool
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep17.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep17.TokenReader
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep17.TokenWriter
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep17.NewReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep17t = nep17.New(actor, hash)
	return &Contract{ContractReader{nep17t.TokenReader, actor, hash}, nep17t.TokenWriter, actor, hash}
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// LockedBalanceOf invokes `lockedBalanceOf` method of contract.
func (c *ContractReader) LockedBalanceOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "lockedBalanceOf", account))
}

// TotalBalanceOf invokes `totalBalanceOf` method of contract.
func (c *ContractReader) TotalBalanceOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalBalanceOf", account))
}

// LocksOf invokes `locksOf` method of contract.
func (c *ContractReader) LocksOf(account util.Uint160) ([]*Lock, error) {
	arr, err := unwrap.Array(c.invoker.Call(c.hash, "locksOf", account))
	if err != nil {
		return nil, err
	}

	res := make([]*Lock, len(arr))
	for i := range arr {
		res[i] = new(Lock)
		if err := res[i].FromStackItem(arr[i]); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	return res, nil
}

// Allowance invokes `allowance` method of contract.
func (c *ContractReader) Allowance(owner util.Uint160, spender util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "allowance", owner, spender))
}

// GetCanTransfer invokes `getCanTransfer` method of contract.
func (c *ContractReader) GetCanTransfer() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "getCanTransfer"))
}

// GetReversion invokes `getReversion` method of contract.
func (c *ContractReader) GetReversion() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "getReversion"))
}

// HasRole invokes `hasRole` method of contract.
func (c *ContractReader) HasRole(role string, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasRole", role, account))
}

// VotableBalanceOf invokes `votableBalanceOf` method of contract.
func (c *ContractReader) VotableBalanceOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "votableBalanceOf", account))
}

// VotingPower invokes `votingPower` method of contract.
func (c *ContractReader) VotingPower(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "votingPower", account))
}

// GetVotingDelegate invokes `getVotingDelegate` method of contract.
func (c *ContractReader) GetVotingDelegate(account util.Uint160) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getVotingDelegate", account))
}

// GetDelegators invokes `getDelegators` method of contract.
func (c *ContractReader) GetDelegators(account util.Uint160) ([]util.Uint160, error) {
	arr, err := unwrap.Array(c.invoker.Call(c.hash, "getDelegators", account))
	if err != nil {
		return nil, err
	}

	res := make([]util.Uint160, len(arr))
	for i := range arr {
		res[i], err = uint160FromItem(arr[i])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	return res, nil
}

// TransferAndLock creates a transaction invoking `transferAndLock` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferAndLock(from util.Uint160, to util.Uint160, amount *big.Int, releaseTime *big.Int, votable bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferAndLock", from, to, amount, releaseTime, votable)
}

// TransferAndLockTransaction creates a transaction invoking `transferAndLock` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferAndLockTransaction(from util.Uint160, to util.Uint160, amount *big.Int, releaseTime *big.Int, votable bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferAndLock", from, to, amount, releaseTime, votable)
}

// TransferAndLockUnsigned creates a transaction invoking `transferAndLock` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferAndLockUnsigned(from util.Uint160, to util.Uint160, amount *big.Int, releaseTime *big.Int, votable bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferAndLock", nil, from, to, amount, releaseTime, votable)
}

// Approve creates a transaction invoking `approve` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Approve(owner util.Uint160, spender util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "approve", owner, spender, amount)
}

// ApproveTransaction creates a transaction invoking `approve` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApproveTransaction(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "approve", owner, spender, amount)
}

// ApproveUnsigned creates a transaction invoking `approve` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApproveUnsigned(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "approve", nil, owner, spender, amount)
}

// IncreaseAllowance creates a transaction invoking `increaseAllowance` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) IncreaseAllowance(owner util.Uint160, spender util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "increaseAllowance", owner, spender, amount)
}

// IncreaseAllowanceTransaction creates a transaction invoking `increaseAllowance` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) IncreaseAllowanceTransaction(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "increaseAllowance", owner, spender, amount)
}

// IncreaseAllowanceUnsigned creates a transaction invoking `increaseAllowance` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) IncreaseAllowanceUnsigned(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "increaseAllowance", nil, owner, spender, amount)
}

// DecreaseAllowance creates a transaction invoking `decreaseAllowance` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DecreaseAllowance(owner util.Uint160, spender util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "decreaseAllowance", owner, spender, amount)
}

// DecreaseAllowanceTransaction creates a transaction invoking `decreaseAllowance` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DecreaseAllowanceTransaction(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "decreaseAllowance", owner, spender, amount)
}

// DecreaseAllowanceUnsigned creates a transaction invoking `decreaseAllowance` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DecreaseAllowanceUnsigned(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "decreaseAllowance", nil, owner, spender, amount)
}

// TransferFrom creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferFrom(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferFrom", spender, from, to, amount)
}

// TransferFromTransaction creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferFromTransaction(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferFrom", spender, from, to, amount)
}

// TransferFromUnsigned creates a transaction invoking `transferFrom` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferFromUnsigned(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferFrom", nil, spender, from, to, amount)
}

// TransferFromAndLock creates a transaction invoking `transferFromAndLock` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferFromAndLock(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, releaseTime *big.Int, votable bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferFromAndLock", spender, from, to, amount, releaseTime, votable)
}

// TransferFromAndLockTransaction creates a transaction invoking `transferFromAndLock` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferFromAndLockTransaction(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, releaseTime *big.Int, votable bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferFromAndLock", spender, from, to, amount, releaseTime, votable)
}

// TransferFromAndLockUnsigned creates a transaction invoking `transferFromAndLock` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferFromAndLockUnsigned(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, releaseTime *big.Int, votable bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferFromAndLock", nil, spender, from, to, amount, releaseTime, votable)
}

// Burn creates a transaction invoking `burn` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Burn(account util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "burn", account, amount)
}

// BurnTransaction creates a transaction invoking `burn` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BurnTransaction(account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "burn", account, amount)
}

// BurnUnsigned creates a transaction invoking `burn` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BurnUnsigned(account util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "burn", nil, account, amount)
}

// DelegateVote creates a transaction invoking `delegateVote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DelegateVote(account util.Uint160, target util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "delegateVote", account, target)
}

// DelegateVoteTransaction creates a transaction invoking `delegateVote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DelegateVoteTransaction(account util.Uint160, target util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "delegateVote", account, target)
}

// DelegateVoteUnsigned creates a transaction invoking `delegateVote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DelegateVoteUnsigned(account util.Uint160, target util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "delegateVote", nil, account, target)
}

// SetCanTransfer creates a transaction invoking `setCanTransfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetCanTransfer(caller util.Uint160, value bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setCanTransfer", caller, value)
}

// SetCanTransferTransaction creates a transaction invoking `setCanTransfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetCanTransferTransaction(caller util.Uint160, value bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setCanTransfer", caller, value)
}

// SetCanTransferUnsigned creates a transaction invoking `setCanTransfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetCanTransferUnsigned(caller util.Uint160, value bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setCanTransfer", nil, caller, value)
}

// SetReversion creates a transaction invoking `setReversion` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetReversion(caller util.Uint160, value bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setReversion", caller, value)
}

// SetReversionTransaction creates a transaction invoking `setReversion` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetReversionTransaction(caller util.Uint160, value bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setReversion", caller, value)
}

// SetReversionUnsigned creates a transaction invoking `setReversion` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetReversionUnsigned(caller util.Uint160, value bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setReversion", nil, caller, value)
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

// SetAsAllocator creates a transaction invoking `setAsAllocator` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAsAllocator(caller util.Uint160, account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAsAllocator", caller, account)
}

// SetAsAllocatorTransaction creates a transaction invoking `setAsAllocator` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAsAllocatorTransaction(caller util.Uint160, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAsAllocator", caller, account)
}

// SetAsAllocatorUnsigned creates a transaction invoking `setAsAllocator` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAsAllocatorUnsigned(caller util.Uint160, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAsAllocator", nil, caller, account)
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

// FromStackItem retrieves fields of Lock from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Lock) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var err error

	res.Amount, err = arr[0].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	res.ReleaseTime, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReleaseTime: %w", err)
	}

	res.Votable, err = arr[2].TryBool()
	if err != nil {
		return fmt.Errorf("field Votable: %w", err)
	}

	return nil
}

// LockEventsFromApplicationLog retrieves a set of all emitted events
// with "Lock" name from the provided [result.ApplicationLog].
func LockEventsFromApplicationLog(log *result.ApplicationLog) ([]*LockEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*LockEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Lock" {
				continue
			}
			event := new(LockEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize LockEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to LockEvent or
// returns an error if it's not possible to do to so.
func (e *LockEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 4)
	if err != nil {
		return err
	}

	e.Account, err = uint160FromItem(arr[0])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	e.Amount, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.ReleaseTime, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReleaseTime: %w", err)
	}

	e.Votable, err = arr[3].TryBool()
	if err != nil {
		return fmt.Errorf("field Votable: %w", err)
	}

	return nil
}

// DelegateChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "DelegateChanged" name from the provided [result.ApplicationLog].
func DelegateChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*DelegateChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DelegateChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "DelegateChanged" {
				continue
			}
			event := new(DelegateChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DelegateChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DelegateChangedEvent or
// returns an error if it's not possible to do to so.
func (e *DelegateChangedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Delegator, err = uint160FromItem(arr[0])
	if err != nil {
		return fmt.Errorf("field Delegator: %w", err)
	}

	e.FromDelegate, err = uint160FromItem(arr[1])
	if err != nil {
		return fmt.Errorf("field FromDelegate: %w", err)
	}

	e.ToDelegate, err = uint160FromItem(arr[2])
	if err != nil {
		return fmt.Errorf("field ToDelegate: %w", err)
	}

	return nil
}

// ConfigChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "ConfigChanged" name from the provided [result.ApplicationLog].
func ConfigChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ConfigChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ConfigChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ConfigChanged" {
				continue
			}
			event := new(ConfigChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ConfigChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ConfigChangedEvent or
// returns an error if it's not possible to do to so.
func (e *ConfigChangedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.CanTransfer, err = arr[0].TryBool()
	if err != nil {
		return fmt.Errorf("field CanTransfer: %w", err)
	}

	e.Reversion, err = arr[1].TryBool()
	if err != nil {
		return fmt.Errorf("field Reversion: %w", err)
	}

	return nil
}

func eventFields(item *stackitem.Array, n int) ([]stackitem.Item, error) {
	if item == nil {
		return nil, errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	if len(arr) != n {
		return nil, errors.New("wrong number of structure elements")
	}

	return arr, nil
}

func uint160FromItem(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}

	return util.Uint160DecodeBytesBE(b)
}
