// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package listscript runs YAML scripts of list operations against a
// list.List of Records and reports what each operation returned. A
// script looks like:
//
//	name: demo
//	steps:
//	  - op: insert-sorted
//	    name: a
//	    priority: 3
//	  - op: insert-sorted
//	    name: b
//	    priority: 1
//	  - op: front
//	  - op: remove
//	    name: a
//	    priority: 3
//	  - op: print
package listscript

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/file"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownOp   = errors.New("unknown operation")
	ErrMissingName = errors.New("missing record name")
	ErrEmpty       = errors.New("list is empty")
	ErrNotFound    = errors.New("no matching record")
)

// Op is a single list operation.
type Op int

const (
	InsertBack Op = iota + 1
	InsertFront
	InsertSorted
	Front
	Back
	Remove
	Erase
	Find
	Length
	Print
	Clear
)

var opNames = map[Op]string{
	InsertBack:   "insert-back",
	InsertFront:  "insert-front",
	InsertSorted: "insert-sorted",
	Front:        "front",
	Back:         "back",
	Remove:       "remove",
	Erase:        "erase",
	Find:         "find",
	Length:       "length",
	Print:        "print",
	Clear:        "clear",
}

// ParseOp returns the Op with the given name.
func ParseOp(name string) (Op, error) {
	for op, n := range opNames {
		if n == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// needsRecord returns true for operations that take a record or name.
func (o Op) needsRecord() bool {
	switch o {
	case InsertBack, InsertFront, InsertSorted, Remove, Erase, Find:
		return true
	}
	return false
}

func (o Op) MarshalYAML() (any, error) {
	return o.String(), nil
}

func (o *Op) UnmarshalYAML(value *yaml.Node) error {
	op, err := ParseOp(value.Value)
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// Step is a single step in a script. Name and Priority make up the Record
// that the insert, remove and erase operations work with; find uses
// only Name.
type Step struct {
	Op       Op     `yaml:"op"`
	Name     string `yaml:"name,omitempty"`
	Priority int    `yaml:"priority,omitempty"`
}

// Record returns the record described by the step.
func (s Step) Record() Record {
	return Record{Name: s.Name, Priority: s.Priority}
}

// Script is a named sequence of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Validate checks that every step that needs a record names one.
func (s *Script) Validate() error {
	errs := &errors.M{}
	for i, step := range s.Steps {
		if step.Op.needsRecord() && len(step.Name) == 0 {
			errs.Append(fmt.Errorf("step %d: %v: %w", i+1, step.Op, ErrMissingName))
		}
	}
	return errs.Err()
}

// Parse parses and validates a script. Unknown fields are rejected and
// YAML errors are annotated with the offending source lines.
func Parse(spec []byte) (*Script, error) {
	var s Script
	if err := decodeStrict(spec, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseFile is like Parse but reads the script from filename using
// file.FSReadFile, which honours any fs.ReadFileFS stored in ctx.
func ParseFile(ctx context.Context, filename string) (*Script, error) {
	if len(filename) == 0 {
		return nil, fmt.Errorf("no script file specified")
	}
	spec, err := file.FSReadFile(ctx, filename)
	if err != nil {
		return nil, err
	}
	var s Script
	if err := decodeStrict(spec, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	if len(s.Name) == 0 {
		s.Name = filename
	}
	return &s, nil
}

func decodeStrict(spec []byte, s *Script) error {
	dec := yaml.NewDecoder(bytes.NewReader(spec))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && err != io.EOF {
		return cmdyaml.ErrorWithSource(spec, err)
	}
	return nil
}
