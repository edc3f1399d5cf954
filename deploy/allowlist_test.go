package deploy

import (
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestParseAllowList(t *testing.T) {
	src := strings.Join([]string{
		"# buyers of the first round",
		testAddress(1),
		"",
		testAddress(2) + ", 500",
		testAddress(3) + "\t250\tprecheck",
	}, "\n")

	permits, err := ParseAllowList(strings.NewReader(src), 1000)
	require.NoError(t, err)
	require.Equal(t, []Permit{
		{Account: util.Uint160{1}, Remaining: 1000},
		{Account: util.Uint160{2}, Remaining: 500},
		{Account: util.Uint160{3}, Remaining: 250, Precheck: true},
	}, permits)

	for name, src := range map[string]string{
		"invalid address":   "NotAnAddress",
		"invalid allowance": testAddress(1) + " many",
		"negative":          testAddress(1) + " -5",
		"unknown flag":      testAddress(1) + " 5 vip",
		"too many fields":   testAddress(1) + " 5 precheck extra",
		"duplicate":         testAddress(1) + "\n" + testAddress(1) + " 5",
	} {
		_, err := ParseAllowList(strings.NewReader(src), 1000)
		require.Error(t, err, name)
	}
}
