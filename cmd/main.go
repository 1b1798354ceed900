package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/domalens/domalens"
	"github.com/domalens/domalens/config"
	"github.com/domalens/domalens/sdk"
	"github.com/getsentry/sentry-go"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

func main() {
	serverFlag := &cli.StringFlag{Name: "server", Value: "http://127.0.0.1:8080", Usage: "domalens api url", EnvVars: []string{"DOMALENS_SERVER"}}

	app := &cli.App{
		Name:  "domalens",
		Usage: "domain market dashboard backend",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the api server",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Usage: "yaml config file", EnvVars: []string{"CONFIG"}},
					&cli.StringFlag{Name: "port", Usage: "api listen address, overrides config", EnvVars: []string{"PORT"}},
				},
				Action: serve,
			},
			{
				Name:   "page",
				Usage:  "fetch one page of domains: page [n] [size]",
				Flags:  []cli.Flag{serverFlag},
				Action: page,
			},
			{
				Name:  "dashboard",
				Usage: "current dashboard view",
				Flags: []cli.Flag{serverFlag},
				Action: func(c *cli.Context) error {
					return printResult(sdk.New(c.String("server")).GetDashboard())
				},
			},
			{
				Name:  "stats",
				Usage: "market statistics",
				Flags: []cli.Flag{serverFlag},
				Action: func(c *cli.Context) error {
					return printResult(sdk.New(c.String("server")).GetStats())
				},
			},
			{
				Name:  "next",
				Usage: "advance the dashboard one page",
				Flags: []cli.Flag{serverFlag},
				Action: func(c *cli.Context) error {
					return printResult(sdk.New(c.String("server")).Next())
				},
			},
			{
				Name:  "prev",
				Usage: "go back one dashboard page",
				Flags: []cli.Flag{serverFlag},
				Action: func(c *cli.Context) error {
					return printResult(sdk.New(c.String("server")).Prev())
				},
			},
			{
				Name:  "search",
				Usage: "filter the dashboard: search <term>",
				Flags: []cli.Flag{serverFlag},
				Action: func(c *cli.Context) error {
					return printResult(sdk.New(c.String("server")).Search(c.Args().First()))
				},
			},
			{
				Name:  "events",
				Usage: "recent live events",
				Flags: []cli.Flag{serverFlag},
				Action: func(c *cli.Context) error {
					return printResult(sdk.New(c.String("server")).GetEvents())
				},
			},
			{
				Name:  "history",
				Usage: "domain history: history <domain>",
				Flags: []cli.Flag{serverFlag},
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("usage: history <domain>", 1)
					}
					return printResult(sdk.New(c.String("server")).GetHistory(c.Args().First()))
				},
			},
			{
				Name:  "offer",
				Usage: "submit an offer: offer <domain> <amount>",
				Flags: []cli.Flag{
					serverFlag,
					&cli.StringFlag{Name: "currency", Value: "USDC"},
					&cli.StringFlag{Name: "offerer", Value: "0x0000000000000000000000000000000000000000"},
				},
				Action: offer,
			},
			{
				Name:  "scores",
				Usage: "model scores: scores <domain>",
				Flags: []cli.Flag{serverFlag},
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("usage: scores <domain>", 1)
					}
					return printResult(sdk.New(c.String("server")).GetScores(c.Args().First()))
				},
			},
			{
				Name:  "demos",
				Usage: "model demo pages",
				Flags: []cli.Flag{serverFlag},
				Action: func(c *cli.Context) error {
					return printResult(sdk.New(c.String("server")).GetDemos())
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func serve(c *cli.Context) error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.String("port") != "" {
		cfg.Port = c.String("port")
	}
	if cfg.SentryDsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDsn}); err != nil {
			return fmt.Errorf("sentry init: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	s, err := domalens.New(cfg)
	if err != nil {
		return err
	}
	s.Run()

	<-signals
	s.Close()
	return nil
}

func page(c *cli.Context) error {
	n, size := 1, 50
	var err error
	if c.Args().Len() > 0 {
		if n, err = strconv.Atoi(c.Args().Get(0)); err != nil {
			return cli.Exit(fmt.Sprintf("invalid page %q", c.Args().Get(0)), 1)
		}
	}
	if c.Args().Len() > 1 {
		if size, err = strconv.Atoi(c.Args().Get(1)); err != nil {
			return cli.Exit(fmt.Sprintf("invalid size %q", c.Args().Get(1)), 1)
		}
	}
	return printResult(sdk.New(c.String("server")).GetPage(n, size))
}

func offer(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return cli.Exit("usage: offer <domain> <amount>", 1)
	}
	amount, err := decimal.NewFromString(c.Args().Get(1))
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid amount %q", c.Args().Get(1)), 1)
	}
	return printResult(sdk.New(c.String("server")).SubmitOffer(c.Args().Get(0), amount, c.String("currency"), c.String("offerer")))
}

func printResult(v interface{}, err error) error {
	if err != nil {
		return err
	}
	by, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(by))
	return nil
}
