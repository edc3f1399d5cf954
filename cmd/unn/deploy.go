package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/unionprotocol/unn-contract/contracts"
	"github.com/unionprotocol/unn-contract/deploy"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

const passwordEnv = "UNN_WALLET_PASSWORD"

var deployCommand = cli.Command{
	Name:  "deploy",
	Usage: "deploy UNN contracts and bootstrap the sale",
	Description: `Deploys token, sale and lock contracts from the owner account, grants
   roles, performs token generation and allocation, funds the pools and
   registers stablecoins and permitted buyers. The procedure can be repeated,
   finished steps are skipped. Wallet password is read from ` + passwordEnv + `.`,
	Flags: []cli.Flag{
		cli.StringFlag{Name: "rpc, r", Usage: "Neo RPC endpoint", EnvVar: "UNN_RPC"},
		cli.StringFlag{Name: "config, c", Usage: "YAML deployment config", Value: "deploy.yml"},
		cli.StringFlag{Name: "wallet, w", Usage: "NEP-6 wallet with owner and pool accounts", EnvVar: "UNN_WALLET"},
		cli.StringFlag{Name: "gas-from", Usage: "wallet account distributing GAS to the signers"},
		cli.Int64Flag{Name: "gas", Usage: "GAS (in 10^-8) each signer is funded with", Value: 100_0000_0000},
		cli.StringFlag{Name: "contracts", Usage: "directory with contract sources", Value: "contracts"},
		cli.StringFlag{Name: "prebuilt", Usage: "directory with compiled contracts, overrides --contracts"},
		cli.StringFlag{Name: "state", Usage: "JSON file deployed contract addresses are saved to", Value: "unn-state.json"},
	},
	Action: deployAction,
}

func deployAction(c *cli.Context) error {
	log, err := newLogger(c)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	prm, err := deployParameters(c)
	if err != nil {
		return err
	}
	prm.Logger = log

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := dialRPC(ctx, c.String("rpc"))
	if err != nil {
		return err
	}
	defer client.Close()

	prm.Blockchain = client

	st, err := deploy.Deploy(ctx, prm)
	if err != nil {
		return err
	}

	log.Info("deployment state saved", zap.String("file", prm.StatePath))

	_, err = fmt.Fprintf(c.App.Writer, "token: %s\nsale:  %s\nlock:  %s\n",
		address.Uint160ToString(st.Token), address.Uint160ToString(st.Sale), address.Uint160ToString(st.Lock))
	return err
}

func deployParameters(c *cli.Context) (deploy.Prm, error) {
	var prm deploy.Prm

	if c.String("rpc") == "" {
		return prm, errors.New("missing RPC endpoint")
	}

	cfgPath := c.String("config")

	cfg, err := deploy.LoadConfig(cfgPath)
	if err != nil {
		return prm, err
	}

	settings, err := cfg.Settings()
	if err != nil {
		return prm, fmt.Errorf("invalid config: %w", err)
	}
	prm.Settings = *settings

	if cfg.AllowList != "" {
		path := cfg.AllowList
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(cfgPath), path)
		}

		prm.AllowList, err = deploy.LoadAllowList(path, settings.DefaultAllowance)
		if err != nil {
			return prm, err
		}
	}

	var cs []contracts.Contract
	if dir := c.String("prebuilt"); dir != "" {
		cs, err = contracts.Read(os.DirFS(dir))
	} else {
		cs, err = contracts.Compile(c.String("contracts"))
	}
	if err != nil {
		return prm, err
	}
	prm.Token, prm.Sale, prm.Lock = cs[0], cs[1], cs[2]

	accounts, err := openWallet(c.String("wallet"), os.Getenv(passwordEnv))
	if err != nil {
		return prm, err
	}

	prm.LocalAccount = accounts[settings.Owner]
	if prm.LocalAccount == nil {
		return prm, fmt.Errorf("owner %s is missing in the wallet", address.Uint160ToString(settings.Owner))
	}

	if gasFrom := c.String("gas-from"); gasFrom != "" {
		h, err := address.StringToUint160(gasFrom)
		if err != nil {
			return prm, fmt.Errorf("invalid GAS source address: %w", err)
		}

		prm.GASSource = accounts[h]
		if prm.GASSource == nil {
			return prm, fmt.Errorf("GAS source %s is missing in the wallet", gasFrom)
		}
		prm.SignerGAS = big.NewInt(c.Int64("gas"))
	}

	for h, acc := range accounts {
		if h != settings.Owner {
			prm.Signers = append(prm.Signers, acc)
		}
	}

	prm.StatePath = c.String("state")

	return prm, nil
}

// openWallet reads NEP-6 wallet and decrypts all its accounts with the
// password. Watch-only accounts are skipped.
func openWallet(path, password string) (map[util.Uint160]*wallet.Account, error) {
	if path == "" {
		return nil, errors.New("missing wallet")
	}

	w, err := wallet.NewWalletFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	res := make(map[util.Uint160]*wallet.Account, len(w.Accounts))

	for _, acc := range w.Accounts {
		if acc.EncryptedWIF == "" {
			continue
		}

		err = acc.Decrypt(password, w.Scrypt)
		if err != nil {
			return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
		}

		res[acc.ScriptHash()] = acc
	}

	return res, nil
}
