package lock

import (
	"errors"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke
}

func (t *testInv) Call(util.Uint160, string, ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func TestGetYieldTiers(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.GetYieldTiers()
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{
		stackitem.Make([]stackitem.Item{
			stackitem.NewStruct([]stackitem.Item{
				stackitem.Make(30), stackitem.Make(2500), stackitem.Make(1000611539),
			}),
		}),
	}}
	tiers, err := r.GetYieldTiers()
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	require.Equal(t, int64(30), tiers[0].MinDays.Int64())
	require.Equal(t, int64(2500), tiers[0].YieldBps.Int64())
	require.Equal(t, int64(1000611539), tiers[0].DailyFactor.Int64())

	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.Make("Voluntary Lock Contract")}}
	name, err := r.Name()
	require.NoError(t, err)
	require.Equal(t, "Voluntary Lock Contract", name)
}

func TestTokensLockedEvents(t *testing.T) {
	acc := util.Uint160{7}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{{
				Name: "TokensLocked",
				Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(acc.BytesBE()),
					stackitem.Make(1000),
					stackitem.Make(116),
					stackitem.Make(1700000000000),
				}),
			}},
		}},
	}

	events, err := TokensLockedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, acc, events[0].Account)
	require.Equal(t, int64(116), events[0].Reward.Int64())
	require.Equal(t, int64(1700000000000), events[0].ReleaseTime.Int64())

	log.Executions[0].Events[0].Item = nil
	_, err = TokensLockedEventsFromApplicationLog(log)
	require.Error(t, err)
}
