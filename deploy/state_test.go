package deploy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	st, err := ReadState(path)
	require.NoError(t, err)
	require.Equal(t, State{}, st)

	st = State{
		RunID: uuid.New(),
		Token: util.Uint160{1, 2, 3},
		Sale:  util.Uint160{4, 5, 6},
		Lock:  util.Uint160{7, 8, 9},
	}
	require.NoError(t, WriteState(path, st))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"unionGovernanceTokenContract": "0x`)
	require.Contains(t, string(data), `"unionTokenSaleContract"`)
	require.Contains(t, string(data), `"voluntaryLockContract"`)

	res, err := ReadState(path)
	require.NoError(t, err)
	require.Equal(t, st, res)

	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = ReadState(path)
	require.Error(t, err)
}
