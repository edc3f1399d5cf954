// Package contracttest contains helpers for contract tests running on a
// single-node in-memory chain.
package contracttest

import (
	"math/big"
	"path"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// Paths of the contract sources relative to the module root.
const (
	TokenDir      = "contracts/token"
	SaleDir       = "contracts/sale"
	LockDir       = "contracts/lock"
	StablecoinDir = "internal/testcontracts/stablecoin"
	ReceiverDir   = "internal/testcontracts/nep17recv"
)

// Path returns absolute path of the module directory.
func Path(dir string) string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("can't locate contracttest sources")
	}

	return filepath.Join(filepath.Dir(file), "..", "..", dir)
}

// NewExecutor creates executor backed by a new single-node chain. Committee
// of the chain signs transactions by default.
func NewExecutor(t testing.TB) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// Compile compiles contract from the module directory.
func Compile(t testing.TB, e *neotest.Executor, dir string) *neotest.Contract {
	p := Path(dir)
	return neotest.CompileFile(t, e.CommitteeHash, p, path.Join(p, "config.yml"))
}

// Deploy compiles and deploys contract from the module directory.
func Deploy(t testing.TB, e *neotest.Executor, dir string, data any) util.Uint160 {
	ctr := Compile(t, e, dir)
	e.DeployContract(t, ctr, data)
	return ctr.Hash
}

// DeployBy compiles and deploys contract from the module directory on behalf
// of signer. Contract hash depends on the sender, so the same contract can be
// deployed once per signer.
func DeployBy(t testing.TB, e *neotest.Executor, signer neotest.Signer, dir string, data any) util.Uint160 {
	ctr := *Compile(t, e, dir)
	ctr.Hash = state.CreateContractHash(signer.ScriptHash(), ctr.NEF.Checksum, ctr.Manifest.Name)

	e.DeployContractBy(t, signer, &ctr, data)
	return ctr.Hash
}

// Now returns timestamp of the latest block in milliseconds. Next
// transaction is executed one millisecond later.
func Now(t testing.TB, e *neotest.Executor) int64 {
	return int64(e.TopBlock(t).Timestamp)
}

// AdvanceTime persists an empty block with timestamp shifted by d from the
// latest one.
func AdvanceTime(t testing.TB, e *neotest.Executor, d time.Duration) {
	top := e.TopBlock(t)

	b := e.NewUnsignedBlock(t)
	b.Timestamp = top.Timestamp + uint64(d.Milliseconds())
	e.SignBlock(b)

	require.NoError(t, e.Chain.AddBlock(b))
}

// Unit is one whole 18-decimal token.
var Unit = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// Tokens returns n whole tokens in the smallest units.
func Tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), Unit)
}

// Int runs test invocation of the safe method and returns its integer result.
func Int(t testing.TB, c *neotest.ContractInvoker, method string, args ...any) *big.Int {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	return s.Pop().BigInt()
}

// Bool runs test invocation of the safe method and returns its boolean
// result.
func Bool(t testing.TB, c *neotest.ContractInvoker, method string, args ...any) bool {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	return s.Pop().Bool()
}

// Item runs test invocation of the safe method and returns resulting stack
// item.
func Item(t testing.TB, c *neotest.ContractInvoker, method string, args ...any) stackitem.Item {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	return s.Pop().Item()
}
