// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command listadt runs list scripts and sorts values using the
// cloudeng.io/listadt/container/list package.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/listadt/listscript"
)

const cmdSpec = `name: listadt
summary: exercise a doubly linked list
commands:
  - name: run
    summary: run one or more yaml scripts of list operations, printing what each operation returns
    arguments:
      - <script.yaml>
      - ...
  - name: sort
    summary: print the supplied values in the order produced by sorted insertion
    arguments:
      - <value>
      - ...
`

var cmdSet *subcmd.CommandSetYAML = subcmd.MustFromYAML(cmdSpec)

type runFlags struct {
	cmdutil.LoggingFlags
	KeepGoing bool `subcmd:"keep-going,false,'run all scripts even if one of them fails'"`
}

type sortFlags struct {
	cmdutil.LoggingFlags
	Numeric bool `subcmd:"numeric,false,'compare values as numbers rather than strings'"`
	Reverse bool `subcmd:"reverse,false,'print the values in descending order'"`
}

type commands struct {
	out io.Writer
}

func init() {
	c := &commands{out: os.Stdout}
	cmdSet.Set("run").MustRunnerAndFlags(c.run,
		subcmd.MustRegisteredFlagSet(&runFlags{}))
	cmdSet.Set("sort").MustRunnerAndFlags(c.sort,
		subcmd.MustRegisteredFlagSet(&sortFlags{}))
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

func (c *commands) run(ctx context.Context, values any, args []string) error {
	fv := values.(*runFlags)
	logger, err := fv.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	runner := listscript.NewRunner(c.out, listscript.WithLogger(logger.Logger))
	errs := &errors.M{}
	for _, filename := range args {
		s, err := listscript.ParseFile(ctx, filename)
		if err != nil {
			if !fv.KeepGoing {
				return err
			}
			logger.Warn("skipping script", "file", filename, "error", err)
			errs.Append(err)
			continue
		}
		sum, err := runner.Run(ctx, s)
		fmt.Fprintf(c.out, "# %v: %v steps, %v failed, %v remaining, %v destroyed\n",
			sum.Name, sum.Steps, sum.Failed, len(sum.Remaining), len(sum.Destroyed))
		if err != nil {
			if !fv.KeepGoing {
				return err
			}
			errs.Append(err)
		}
	}
	return errs.Err()
}
