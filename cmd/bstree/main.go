// Command bstree builds a binary search tree from its arguments, applies
// insertions and deletions, and prints the result.
//
//	bstree [flags] VALUES...
//
// Flags must come before the values; use -- before negative values.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

const version = "0.1.0"

// metadata shared by the actions through App.Metadata
type metadata struct {
	w io.Writer // results
	e io.Writer // diagnostics
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); nil != err {
		fmt.Fprintf(os.Stderr, "bstree: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

func newApp(w, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "bstree"
	app.Usage = "build, edit and print a binary search tree of integers"
	app.ArgsUsage = "VALUES..."
	app.Version = version
	app.HideVersion = true
	app.Writer = w
	app.ErrWriter = e
	app.Metadata = map[string]interface{}{
		"config": &metadata{w: w, e: e},
	}
	app.Flags = []cli.Flag{
		cli.IntSliceFlag{
			Name:  "insert, i",
			Usage: "value to insert after building, may be repeated",
		},
		cli.IntSliceFlag{
			Name:  "delete, d",
			Usage: "value to delete after the insertions, may be repeated",
		},
		cli.BoolFlag{
			Name:   "rebalance, r",
			Usage:  "rebalance the tree before printing",
			EnvVar: "BSTREE_REBALANCE",
		},
		cli.StringFlag{
			Name:   "order, o",
			Value:  "in",
			Usage:  "traversal to print: pre|in|post|level",
			EnvVar: "BSTREE_ORDER",
		},
		cli.StringFlag{
			Name:   "log-dir, l",
			Value:  "",
			Usage:  "write a log of every operation to DIR/bstree.log",
			EnvVar: "BSTREE_LOG_DIR",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "also log to the console",
		},
	}
	app.Action = runTree
	return app
}
