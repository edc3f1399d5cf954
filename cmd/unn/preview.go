package main

import (
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/unionprotocol/unn-contract/contracts/sale/saleconst"
	"github.com/unionprotocol/unn-contract/economics"
	"github.com/urfave/cli"
)

var (
	priceCommand = cli.Command{
		Name:      "price",
		Usage:     "print price of the token with the serial number",
		ArgsUsage: "<serial>",
		Action: func(c *cli.Context) error {
			n, err := intArg(c, 0, "serial")
			if err != nil {
				return err
			}
			return printPrice(c.App.Writer, economics.DefaultCurve(), n)
		},
	}

	costCommand = cli.Command{
		Name:      "cost",
		Usage:     "print cost of buying tokens starting from the serial number",
		ArgsUsage: "<serial> <quantity>",
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  "decimals",
				Value: saleconst.USDDecimals,
				Usage: "precision of the payment stablecoin",
			},
		},
		Action: func(c *cli.Context) error {
			cursor, err := intArg(c, 0, "serial")
			if err != nil {
				return err
			}
			qty, err := intArg(c, 1, "quantity")
			if err != nil {
				return err
			}
			return printCost(c.App.Writer, economics.DefaultCurve(), cursor, qty, c.Int("decimals"))
		},
	}

	tokensCommand = cli.Command{
		Name:      "tokens",
		Usage:     "print number of tokens bought for the USD contribution",
		ArgsUsage: "<serial> <usd>",
		Action: func(c *cli.Context) error {
			cursor, err := intArg(c, 0, "serial")
			if err != nil {
				return err
			}
			usd, err := economics.Parse(c.Args().Get(1), saleconst.USDDecimals)
			if err != nil {
				return fmt.Errorf("usd: %w", err)
			}
			return printTokens(c.App.Writer, economics.DefaultCurve(), cursor, usd)
		},
	}

	rewardCommand = cli.Command{
		Name:      "reward",
		Usage:     "print voluntary lock reward for the principal and period in days",
		ArgsUsage: "<principal> <days>",
		Action: func(c *cli.Context) error {
			principal, err := economics.Parse(c.Args().Get(0), economics.TokenDecimals)
			if err != nil {
				return fmt.Errorf("principal: %w", err)
			}
			days, err := intArg(c, 1, "days")
			if err != nil {
				return err
			}
			return printReward(c.App.Writer, economics.DefaultTiers(), principal, days)
		},
	}
)

func intArg(c *cli.Context, i int, name string) (int64, error) {
	if c.NArg() <= i {
		return 0, fmt.Errorf("missing %s argument", name)
	}

	v, err := strconv.ParseInt(c.Args().Get(i), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}

	return v, nil
}

func printPrice(w io.Writer, curve economics.Curve, n int64) error {
	price, err := curve.Price(n)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "price of #%d: %s USD\n", n, economics.Format(price, saleconst.USDDecimals))
	return err
}

func printCost(w io.Writer, curve economics.Curve, cursor, qty int64, decimals int) error {
	cost, err := curve.Cost(cursor, qty)
	if err != nil {
		return err
	}

	units, err := economics.Rescale(cost, decimals)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "cost of %d tokens from #%d: %s USD (%s units with %d decimals)\n",
		qty, cursor, economics.Format(cost, saleconst.USDDecimals), units, decimals)
	return err
}

func printTokens(w io.Writer, curve economics.Curve, cursor int64, usd *big.Int) error {
	qty := curve.TokensFor(cursor, usd)

	_, err := fmt.Fprintf(w, "%s USD buys %d tokens from #%d\n",
		economics.Format(usd, saleconst.USDDecimals), qty, cursor)
	return err
}

func printReward(w io.Writer, tiers []economics.Tier, principal *big.Int, days int64) error {
	total, err := economics.LockAmount(tiers, principal, days)
	if err != nil {
		return err
	}

	reward := new(big.Int).Sub(total, principal)

	_, err = fmt.Fprintf(w, "locking %s UNN for %d days: reward %s UNN, locked total %s UNN\n",
		economics.Format(principal, economics.TokenDecimals), days,
		economics.Format(reward, economics.TokenDecimals),
		economics.Format(total, economics.TokenDecimals))
	return err
}
