// Command unn previews UNN sale and lock economics, deploys UNN contracts
// and inspects deployed ones.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "unn"
	app.Usage = "UNN governance token, sale and voluntary lock tool"
	app.Version = "1.2.0"
	app.Writer = os.Stdout
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "env",
			Value: ".env",
			Usage: "file with environment variables, skipped if missing",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable development logging",
		},
	}
	app.Before = func(c *cli.Context) error {
		err := godotenv.Load(c.GlobalString("env"))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file: %w", err)
		}
		return nil
	}
	app.Commands = []cli.Command{
		priceCommand,
		costCommand,
		tokensCommand,
		rewardCommand,
		deployCommand,
		statusCommand,
		dumpCommand,
	}

	return app
}

func newLogger(c *cli.Context) (*zap.Logger, error) {
	if c.GlobalBool("debug") {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
