// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"strconv"

	"cloudeng.io/errors"
	"cloudeng.io/listadt/container/list"
)

func (c *commands) sort(_ context.Context, values any, args []string) error {
	fv := values.(*sortFlags)
	logger, err := fv.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.Debug("sorting", "values", len(args), "numeric", fv.Numeric, "reverse", fv.Reverse)
	if !fv.Numeric {
		sortValues(c.out, args, fv.Reverse)
		return nil
	}
	nums := make([]float64, 0, len(args))
	errs := &errors.M{}
	for _, a := range args {
		n, err := strconv.ParseFloat(a, 64)
		if err != nil {
			errs.Append(fmt.Errorf("%q is not a number: %w", a, err))
			continue
		}
		nums = append(nums, n)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	sortValues(c.out, nums, fv.Reverse)
	return nil
}

func sortValues[T cmp.Ordered](out io.Writer, vals []T, reverse bool) {
	dl := list.NewOrdered[T]()
	defer dl.Free()
	for _, v := range vals {
		dl.InsertSorted(v)
	}
	if !reverse {
		fmt.Fprintln(out, dl.String())
		return
	}
	for v := range dl.Reverse() {
		fmt.Fprintln(out, v)
	}
}
