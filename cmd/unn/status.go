package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/unionprotocol/unn-contract/contracts/sale/saleconst"
	"github.com/unionprotocol/unn-contract/deploy"
	"github.com/unionprotocol/unn-contract/economics"
	"github.com/unionprotocol/unn-contract/rpc/lock"
	"github.com/unionprotocol/unn-contract/rpc/sale"
	"github.com/unionprotocol/unn-contract/rpc/token"
	"github.com/urfave/cli"
)

var (
	stateFlag = cli.StringFlag{Name: "state", Usage: "JSON deployment state file", Value: "unn-state.json"}
	rpcFlag   = cli.StringFlag{Name: "rpc, r", Usage: "Neo RPC endpoint", EnvVar: "UNN_RPC"}

	statusCommand = cli.Command{
		Name:  "status",
		Usage: "print state of the deployed sale and lock contracts",
		Flags: []cli.Flag{rpcFlag, stateFlag},
		Action: func(c *cli.Context) error {
			st, err := readDeployedState(c.String("state"))
			if err != nil {
				return err
			}

			b, err := newRemoteBlockchain(context.Background(), c.String("rpc"))
			if err != nil {
				return err
			}
			defer b.close()

			return printStatus(c.App.Writer, b, st)
		},
	}

	dumpCommand = cli.Command{
		Name:      "dump",
		Usage:     "save storage of the deployed contracts into JSON files",
		ArgsUsage: "<dir>",
		Flags:     []cli.Flag{rpcFlag, stateFlag},
		Action: func(c *cli.Context) error {
			dir := c.Args().First()
			if dir == "" {
				return fmt.Errorf("missing output directory")
			}

			st, err := readDeployedState(c.String("state"))
			if err != nil {
				return err
			}

			b, err := newRemoteBlockchain(context.Background(), c.String("rpc"))
			if err != nil {
				return err
			}
			defer b.close()

			return dumpStorage(b, st, dir)
		},
	}
)

func readDeployedState(path string) (deploy.State, error) {
	st, err := deploy.ReadState(path)
	if err != nil {
		return st, err
	}

	if st.Token.Equals(util.Uint160{}) {
		return st, fmt.Errorf("no deployed contracts in %s", path)
	}

	return st, nil
}

func printStatus(w io.Writer, b *remoteBlockchain, st deploy.State) error {
	var (
		tokenReader = token.NewReader(b.invoker, st.Token)
		saleReader  = sale.NewReader(b.invoker, st.Sale)
		lockReader  = lock.NewReader(b.invoker, st.Lock)
	)

	supply, err := tokenReader.TotalSupply()
	if err != nil {
		return fmt.Errorf("get total supply: %w", err)
	}

	canTransfer, err := tokenReader.GetCanTransfer()
	if err != nil {
		return fmt.Errorf("get transfer flag: %w", err)
	}

	cursor, err := saleReader.GetCurrentTokenNumber()
	if err != nil {
		return fmt.Errorf("get current token number: %w", err)
	}

	open, err := saleReader.IsSaleStarted()
	if err != nil {
		return fmt.Errorf("get sale state: %w", err)
	}

	symbols, err := saleReader.ListSupportedTokens()
	if err != nil {
		return fmt.Errorf("list supported tokens: %w", err)
	}

	tiers, err := lockReader.GetYieldTiers()
	if err != nil {
		return fmt.Errorf("get yield tiers: %w", err)
	}

	fmt.Fprintf(w, "token %s\n", address.Uint160ToString(st.Token))
	fmt.Fprintf(w, "  total supply: %s UNN\n", economics.Format(supply, economics.TokenDecimals))
	fmt.Fprintf(w, "  transfers enabled: %t\n", canTransfer)

	fmt.Fprintf(w, "sale %s\n", address.Uint160ToString(st.Sale))
	fmt.Fprintf(w, "  open: %t\n", open)
	fmt.Fprintf(w, "  next token: #%s\n", cursor)
	if cursor.Cmp(big.NewInt(saleconst.LastTokenNumber)) <= 0 {
		price, err := saleReader.GetTokenPrice(cursor)
		if err != nil {
			return fmt.Errorf("get token price: %w", err)
		}
		fmt.Fprintf(w, "  price: %s USD\n", economics.Format(price, saleconst.USDDecimals))
	} else {
		fmt.Fprintln(w, "  sold out")
	}
	fmt.Fprintf(w, "  stablecoins: %v\n", symbols)

	fmt.Fprintf(w, "lock %s\n", address.Uint160ToString(st.Lock))
	for _, t := range tiers {
		fmt.Fprintf(w, "  from %s days: %s bps\n", t.MinDays, t.YieldBps)
	}

	return nil
}

type storageItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func dumpStorage(b *remoteBlockchain, st deploy.State, dir string) error {
	err := os.MkdirAll(dir, 0o700)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, ctr := range []struct {
		name string
		hash util.Uint160
	}{
		{"token", st.Token},
		{"sale", st.Sale},
		{"lock", st.Lock},
	} {
		var items []storageItem

		err = b.iterateContractStorage(ctr.hash, func(key, value []byte) error {
			items = append(items, storageItem{Key: hex.EncodeToString(key), Value: hex.EncodeToString(value)})
			return nil
		})
		if err != nil {
			return fmt.Errorf("iterate '%s' contract storage: %w", ctr.name, err)
		}

		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("encode '%s' contract storage: %w", ctr.name, err)
		}

		err = os.WriteFile(filepath.Join(dir, ctr.name+".json"), data, 0o600)
		if err != nil {
			return fmt.Errorf("write '%s' contract storage: %w", ctr.name, err)
		}
	}

	return nil
}
