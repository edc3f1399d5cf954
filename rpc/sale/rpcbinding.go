// Package sale contains RPC wrappers for UNN token sale contract.
package sale

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// TokensPurchasedEvent represents "TokensPurchased" event emitted by the contract.
type TokensPurchasedEvent struct {
	Buyer    util.Uint160
	Symbol   string
	Quantity *big.Int
	Cost     *big.Int
	Bonus    *big.Int
}

// SaleStateChangedEvent represents "SaleStateChanged" event emitted by the contract.
type SaleStateChangedEvent struct {
	Open bool
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

// GetTokenContract invokes `getTokenContract` method of contract.
func (c *ContractReader) GetTokenContract() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getTokenContract"))
}

// GetTokenPrice invokes `getTokenPrice` method of contract.
func (c *ContractReader) GetTokenPrice(n *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getTokenPrice", n))
}

// GetCurrentTokenNumber invokes `getCurrentTokenNumber` method of contract.
func (c *ContractReader) GetCurrentTokenNumber() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getCurrentTokenNumber"))
}

// GetBuyPriceInUSD invokes `getBuyPriceInUSD` method of contract.
func (c *ContractReader) GetBuyPriceInUSD(qty *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getBuyPriceInUSD", qty))
}

// GetTokensForUSDContribution invokes `getTokensForUSDContribution` method of contract.
func (c *ContractReader) GetTokensForUSDContribution(usd *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getTokensForUSDContribution", usd))
}

// GetBuyPriceInStablecoin invokes `getBuyPriceInStablecoin` method of contract.
func (c *ContractReader) GetBuyPriceInStablecoin(symbol string, qty *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getBuyPriceInStablecoin", symbol, qty))
}

// IsTokenGenerationPerformed invokes `isTokenGenerationPerformed` method of contract.
func (c *ContractReader) IsTokenGenerationPerformed() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isTokenGenerationPerformed"))
}

// IsAllocationPerformed invokes `isAllocationPerformed` method of contract.
func (c *ContractReader) IsAllocationPerformed() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAllocationPerformed"))
}

// IsSaleStarted invokes `isSaleStarted` method of contract.
func (c *ContractReader) IsSaleStarted() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isSaleStarted"))
}

// GetSupportedTokenAddress invokes `getSupportedTokenAddress` method of contract.
func (c *ContractReader) GetSupportedTokenAddress(symbol string) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getSupportedTokenAddress", symbol))
}

// GetSupportedTokenDecimals invokes `getSupportedTokenDecimals` method of contract.
func (c *ContractReader) GetSupportedTokenDecimals(symbol string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getSupportedTokenDecimals", symbol))
}

// ListSupportedTokens invokes `listSupportedTokens` method of contract.
func (c *ContractReader) ListSupportedTokens() ([]string, error) {
	return unwrap.ArrayOfUTF8Strings(c.invoker.Call(c.hash, "listSupportedTokens"))
}

// IsPermitted invokes `isPermitted` method of contract.
func (c *ContractReader) IsPermitted(buyer util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isPermitted", buyer))
}

// IsPrecheck invokes `isPrecheck` method of contract.
func (c *ContractReader) IsPrecheck(buyer util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isPrecheck", buyer))
}

// GetRemainingAllowance invokes `getRemainingAllowance` method of contract.
func (c *ContractReader) GetRemainingAllowance(buyer util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getRemainingAllowance", buyer))
}

// GetPoolAddress invokes `getPoolAddress` method of contract.
func (c *ContractReader) GetPoolAddress(pool string) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getPoolAddress", pool))
}

// GetBonusTokenFactor invokes `getBonusTokenFactor` method of contract.
func (c *ContractReader) GetBonusTokenFactor() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getBonusTokenFactor"))
}

// GetBonusTokenLockPeriod invokes `getBonusTokenLockPeriod` method of contract.
func (c *ContractReader) GetBonusTokenLockPeriod() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getBonusTokenLockPeriod"))
}

// HasRole invokes `hasRole` method of contract.
func (c *ContractReader) HasRole(role string, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasRole", role, account))
}

// PurchaseTokens creates a transaction invoking `purchaseTokens` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) PurchaseTokens(buyer util.Uint160, symbol string, usd *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "purchaseTokens", buyer, symbol, usd)
}

// PurchaseTokensTransaction creates a transaction invoking `purchaseTokens` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PurchaseTokensTransaction(buyer util.Uint160, symbol string, usd *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "purchaseTokens", buyer, symbol, usd)
}

// PurchaseTokensUnsigned creates a transaction invoking `purchaseTokens` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PurchaseTokensUnsigned(buyer util.Uint160, symbol string, usd *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "purchaseTokens", nil, buyer, symbol, usd)
}

// PerformTokenGeneration creates a transaction invoking `performTokenGeneration` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) PerformTokenGeneration(caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "performTokenGeneration", caller)
}

// PerformTokenGenerationTransaction creates a transaction invoking `performTokenGeneration` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PerformTokenGenerationTransaction(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "performTokenGeneration", caller)
}

// PerformTokenGenerationUnsigned creates a transaction invoking `performTokenGeneration` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PerformTokenGenerationUnsigned(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "performTokenGeneration", nil, caller)
}

// TransferTokensToPredefinedAddresses creates a transaction invoking `transferTokensToPredefinedAddresses` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferTokensToPredefinedAddresses(caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferTokensToPredefinedAddresses", caller)
}

// TransferTokensToPredefinedAddressesTransaction creates a transaction invoking `transferTokensToPredefinedAddresses` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferTokensToPredefinedAddressesTransaction(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferTokensToPredefinedAddresses", caller)
}

// TransferTokensToPredefinedAddressesUnsigned creates a transaction invoking `transferTokensToPredefinedAddresses` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferTokensToPredefinedAddressesUnsigned(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferTokensToPredefinedAddresses", nil, caller)
}

// StartSale creates a transaction invoking `startSale` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) StartSale(caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "startSale", caller)
}

// StartSaleTransaction creates a transaction invoking `startSale` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StartSaleTransaction(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "startSale", caller)
}

// StartSaleUnsigned creates a transaction invoking `startSale` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StartSaleUnsigned(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "startSale", nil, caller)
}

// EndSale creates a transaction invoking `endSale` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EndSale(caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "endSale", caller)
}

// EndSaleTransaction creates a transaction invoking `endSale` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EndSaleTransaction(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "endSale", caller)
}

// EndSaleUnsigned creates a transaction invoking `endSale` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EndSaleUnsigned(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "endSale", nil, caller)
}

// AddSupportedToken creates a transaction invoking `addSupportedToken` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddSupportedToken(caller util.Uint160, symbol string, hash util.Uint160, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addSupportedToken", caller, symbol, hash, decimals)
}

// AddSupportedTokenTransaction creates a transaction invoking `addSupportedToken` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddSupportedTokenTransaction(caller util.Uint160, symbol string, hash util.Uint160, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addSupportedToken", caller, symbol, hash, decimals)
}

// AddSupportedTokenUnsigned creates a transaction invoking `addSupportedToken` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddSupportedTokenUnsigned(caller util.Uint160, symbol string, hash util.Uint160, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addSupportedToken", nil, caller, symbol, hash, decimals)
}

// RemoveSupportedToken creates a transaction invoking `removeSupportedToken` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveSupportedToken(caller util.Uint160, symbol string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeSupportedToken", caller, symbol)
}

// RemoveSupportedTokenTransaction creates a transaction invoking `removeSupportedToken` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveSupportedTokenTransaction(caller util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeSupportedToken", caller, symbol)
}

// RemoveSupportedTokenUnsigned creates a transaction invoking `removeSupportedToken` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveSupportedTokenUnsigned(caller util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeSupportedToken", nil, caller, symbol)
}

// AddToPermittedList creates a transaction invoking `addToPermittedList` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddToPermittedList(caller util.Uint160, buyer util.Uint160, approved bool, precheck bool, remaining *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addToPermittedList", caller, buyer, approved, precheck, remaining)
}

// AddToPermittedListTransaction creates a transaction invoking `addToPermittedList` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddToPermittedListTransaction(caller util.Uint160, buyer util.Uint160, approved bool, precheck bool, remaining *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addToPermittedList", caller, buyer, approved, precheck, remaining)
}

// AddToPermittedListUnsigned creates a transaction invoking `addToPermittedList` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddToPermittedListUnsigned(caller util.Uint160, buyer util.Uint160, approved bool, precheck bool, remaining *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addToPermittedList", nil, caller, buyer, approved, precheck, remaining)
}

// RemoveFromPermittedList creates a transaction invoking `removeFromPermittedList` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveFromPermittedList(caller util.Uint160, buyer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeFromPermittedList", caller, buyer)
}

// RemoveFromPermittedListTransaction creates a transaction invoking `removeFromPermittedList` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveFromPermittedListTransaction(caller util.Uint160, buyer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeFromPermittedList", caller, buyer)
}

// RemoveFromPermittedListUnsigned creates a transaction invoking `removeFromPermittedList` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveFromPermittedListUnsigned(caller util.Uint160, buyer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeFromPermittedList", nil, caller, buyer)
}

// SetPoolAddress creates a transaction invoking `setPoolAddress` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetPoolAddress(caller util.Uint160, pool string, addr util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setPoolAddress", caller, pool, addr)
}

// SetPoolAddressTransaction creates a transaction invoking `setPoolAddress` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetPoolAddressTransaction(caller util.Uint160, pool string, addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setPoolAddress", caller, pool, addr)
}

// SetPoolAddressUnsigned creates a transaction invoking `setPoolAddress` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetPoolAddressUnsigned(caller util.Uint160, pool string, addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setPoolAddress", nil, caller, pool, addr)
}

// SetBonusTokenFactor creates a transaction invoking `setBonusTokenFactor` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetBonusTokenFactor(caller util.Uint160, factor *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setBonusTokenFactor", caller, factor)
}

// SetBonusTokenFactorTransaction creates a transaction invoking `setBonusTokenFactor` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetBonusTokenFactorTransaction(caller util.Uint160, factor *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setBonusTokenFactor", caller, factor)
}

// SetBonusTokenFactorUnsigned creates a transaction invoking `setBonusTokenFactor` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetBonusTokenFactorUnsigned(caller util.Uint160, factor *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setBonusTokenFactor", nil, caller, factor)
}

// SetBonusTokenLockPeriod creates a transaction invoking `setBonusTokenLockPeriod` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetBonusTokenLockPeriod(caller util.Uint160, months *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setBonusTokenLockPeriod", caller, months)
}

// SetBonusTokenLockPeriodTransaction creates a transaction invoking `setBonusTokenLockPeriod` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetBonusTokenLockPeriodTransaction(caller util.Uint160, months *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setBonusTokenLockPeriod", caller, months)
}

// SetBonusTokenLockPeriodUnsigned creates a transaction invoking `setBonusTokenLockPeriod` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetBonusTokenLockPeriodUnsigned(caller util.Uint160, months *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setBonusTokenLockPeriod", nil, caller, months)
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

// TokensPurchasedEventsFromApplicationLog retrieves a set of all emitted events
// with "TokensPurchased" name from the provided [result.ApplicationLog].
func TokensPurchasedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TokensPurchasedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TokensPurchasedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TokensPurchased" {
				continue
			}
			event := new(TokensPurchasedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TokensPurchasedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TokensPurchasedEvent or
// returns an error if it's not possible to do to so.
func (e *TokensPurchasedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	b, err := arr[0].TryBytes()
	if err != nil {
		return fmt.Errorf("field Buyer: %w", err)
	}
	e.Buyer, err = util.Uint160DecodeBytesBE(b)
	if err != nil {
		return fmt.Errorf("field Buyer: %w", err)
	}

	b, err = arr[1].TryBytes()
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}
	if !utf8.Valid(b) {
		return errors.New("field Symbol: not a UTF-8 string")
	}
	e.Symbol = string(b)

	e.Quantity, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Quantity: %w", err)
	}

	e.Cost, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field Cost: %w", err)
	}

	e.Bonus, err = arr[4].TryInteger()
	if err != nil {
		return fmt.Errorf("field Bonus: %w", err)
	}

	return nil
}

// SaleStateChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "SaleStateChanged" name from the provided [result.ApplicationLog].
func SaleStateChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SaleStateChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SaleStateChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SaleStateChanged" {
				continue
			}
			event := new(SaleStateChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SaleStateChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SaleStateChangedEvent or
// returns an error if it's not possible to do to so.
func (e *SaleStateChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	e.Open, err = arr[0].TryBool()
	if err != nil {
		return fmt.Errorf("field Open: %w", err)
	}

	return nil
}
