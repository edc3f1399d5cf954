package token

import (
	"errors"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err       error
	res       *result.Invoke
	operation string
	params    []any
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	t.operation = operation
	t.params = params
	return t.res, t.err
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{State: "HALT", Stack: items}
}

func TestLocksOf(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})
	acc := util.Uint160{4, 5, 6}

	ti.err = errors.New("bad")
	_, err := r.LocksOf(acc)
	require.Error(t, err)

	ti.err = nil
	ti.res = halt(stackitem.Make([]stackitem.Item{
		stackitem.NewStruct([]stackitem.Item{
			stackitem.Make(100), stackitem.Make(1700000000000), stackitem.Make(true),
		}),
		stackitem.NewStruct([]stackitem.Item{
			stackitem.Make(5), stackitem.Make(1800000000000), stackitem.Make(false),
		}),
	}))

	locks, err := r.LocksOf(acc)
	require.NoError(t, err)
	require.Equal(t, "locksOf", ti.operation)
	require.Equal(t, []any{acc}, ti.params)
	require.Len(t, locks, 2)
	require.Equal(t, int64(100), locks[0].Amount.Int64())
	require.Equal(t, int64(1700000000000), locks[0].ReleaseTime.Int64())
	require.True(t, locks[0].Votable)
	require.False(t, locks[1].Votable)

	ti.res = halt(stackitem.Make([]stackitem.Item{
		stackitem.NewStruct([]stackitem.Item{stackitem.Make(100)}),
	}))
	_, err = r.LocksOf(acc)
	require.Error(t, err)
}

func TestVotingReaders(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})
	acc := util.Uint160{4, 5, 6}
	delegate := util.Uint160{7, 8, 9}

	ti.res = halt(stackitem.Make(delegate.BytesBE()))
	res, err := r.GetVotingDelegate(acc)
	require.NoError(t, err)
	require.Equal(t, delegate, res)

	ti.res = halt(stackitem.Make([]stackitem.Item{
		stackitem.Make(acc.BytesBE()),
		stackitem.Make(delegate.BytesBE()),
	}))
	delegators, err := r.GetDelegators(delegate)
	require.NoError(t, err)
	require.Equal(t, []util.Uint160{acc, delegate}, delegators)

	ti.res = halt(stackitem.Make([]stackitem.Item{stackitem.Make([]byte{1, 2})}))
	_, err = r.GetDelegators(delegate)
	require.Error(t, err)

	ti.res = halt(stackitem.Make(350))
	power, err := r.VotingPower(delegate)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(350), power)
	require.Equal(t, "votingPower", ti.operation)
}

func TestEventsFromApplicationLog(t *testing.T) {
	acc := util.Uint160{1}
	from := util.Uint160{2}
	to := util.Uint160{3}

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Trigger: trigger.Application,
			VMState: vmstate.Halt,
			Events: []state.NotificationEvent{
				{
					Name: "Lock",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(acc.BytesBE()),
						stackitem.Make(42),
						stackitem.Make(1000),
						stackitem.Make(true),
					}),
				},
				{
					Name: "Transfer",
					Item: stackitem.NewArray([]stackitem.Item{}),
				},
				{
					Name: "DelegateChanged",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(acc.BytesBE()),
						stackitem.Make(from.BytesBE()),
						stackitem.Make(to.BytesBE()),
					}),
				},
				{
					Name: "ConfigChanged",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(false),
						stackitem.Make(true),
					}),
				},
			},
		}},
	}

	locks, err := LockEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, locks, 1)
	require.Equal(t, acc, locks[0].Account)
	require.Equal(t, int64(42), locks[0].Amount.Int64())
	require.Equal(t, int64(1000), locks[0].ReleaseTime.Int64())
	require.True(t, locks[0].Votable)

	delegations, err := DelegateChangedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*DelegateChangedEvent{{Delegator: acc, FromDelegate: from, ToDelegate: to}}, delegations)

	configs, err := ConfigChangedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*ConfigChangedEvent{{CanTransfer: false, Reversion: true}}, configs)

	_, err = LockEventsFromApplicationLog(nil)
	require.Error(t, err)

	log.Executions[0].Events[0].Item = stackitem.NewArray([]stackitem.Item{stackitem.Make(1)})
	_, err = LockEventsFromApplicationLog(log)
	require.Error(t, err)
}
