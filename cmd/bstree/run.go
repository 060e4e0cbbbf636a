package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/urfave/cli"
)

var orders = map[string]Trees.Order{
	"pre":   Trees.PreOrder,
	"in":    Trees.InOrder,
	"post":  Trees.PostOrder,
	"level": Trees.LevelOrder,
}

func parseOrder(s string) (Trees.Order, error) {
	o, ok := orders[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown order: %q", s)
	}
	return o, nil
}

func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if nil != err {
			return nil, fmt.Errorf("invalid value: %q", a)
		}
		values = append(values, v)
	}
	return values, nil
}

// opLog writes to the bitmark logger when one was configured
type opLog struct {
	l *logger.L
}

func (o opLog) infof(format string, args ...interface{}) {
	if nil != o.l {
		o.l.Infof(format, args...)
	}
}

func setupLog(dir string, console bool) (opLog, error) {
	if "" == dir {
		return opLog{}, nil
	}
	conf := logger.Configuration{
		Directory: dir,
		File:      "bstree.log",
		Size:      1048576,
		Count:     10,
		Console:   console,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err := logger.Initialise(conf); nil != err {
		return opLog{}, fmt.Errorf("logger initialization failed: %s", err)
	}
	return opLog{l: logger.New("bstree")}, nil
}

func runTree(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	order, err := parseOrder(c.String("order"))
	if nil != err {
		return err
	}
	values, err := parseValues(c.Args())
	if nil != err {
		return err
	}

	log, err := setupLog(c.String("log-dir"), c.Bool("verbose"))
	if nil != err {
		return err
	}
	if nil != log.l {
		defer logger.Finalise()
	}

	tree := Trees.New(values...)
	log.infof("built tree of %d values from %d arguments", tree.Size(), len(values))

	for _, v := range c.IntSlice("insert") {
		log.infof("insert %d: %t", v, tree.Insert(v))
	}
	for _, v := range c.IntSlice("delete") {
		log.infof("delete %d: %t", v, tree.Delete(v))
	}
	if c.Bool("rebalance") {
		tree.Rebalance()
		log.infof("rebalanced")
	}

	if err := tree.Print(m.w); nil != err {
		return err
	}

	var out []string
	err = tree.Walk(order, func(n *Trees.Node[int]) {
		out = append(out, strconv.Itoa(n.Value()))
	})
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%s: %s\n", order, strings.Join(out, " "))
	fmt.Fprintf(m.w, "size: %d\n", tree.Size())
	fmt.Fprintf(m.w, "height: %d\n", tree.Height(tree.Root()))
	fmt.Fprintf(m.w, "balanced: %t\n", tree.Balanced())
	return nil
}
