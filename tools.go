//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through `go generate` (see contract/contract.go) and is
// tracked here so that go.mod and go.sum stay in sync with it.
package event_calendar

import (
	_ "go.uber.org/mock/mockgen"
)
