// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package listscript

import (
	"cmp"
	"fmt"
	"strings"
)

// Record is the element type managed by scripts.
type Record struct {
	Name     string
	Priority int
}

func (r Record) String() string {
	return fmt.Sprintf("%s(%d)", r.Name, r.Priority)
}

// CompareRecords orders records by priority and then by name.
func CompareRecords(a, b Record) int {
	return cmp.Or(
		cmp.Compare(a.Priority, b.Priority),
		strings.Compare(a.Name, b.Name),
	)
}

func hasName(r Record, name string) bool {
	return r.Name == name
}
