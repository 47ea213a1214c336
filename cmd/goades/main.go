// Command goades validates AdES signatures, timestamps and evidence records
// described by diagnostic data.
//
// Usage:
//
//	goades <command> [options] <args>
//
// Commands:
//
//	validate  Validate diagnostic data against a validation policy
//	policy    Print or check validation policies
//	version   Show version information
//
// Examples:
//
//	# Validate with the built-in policy
//	goades validate diagnostic.json
//
//	# Detailed XML report at a fixed time
//	goades validate --report detailed --format xml --time 2024-06-01T12:00:00Z diagnostic.json
package main

import (
	"os"

	"github.com/georgepadayatti/goades/cli"
)

// These variables are set at build time using ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/goades
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.BuildTime = buildTime

	cli.Run(os.Args)
}
