//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep Go-based tools invoked
// via `go generate` (mockgen) tracked in go.mod / go.sum.
package smartshop

import (
	_ "go.uber.org/mock/mockgen"
)
