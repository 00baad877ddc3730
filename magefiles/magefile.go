// Package main provides build targets for the contacts project using Mage.
//
// Usage:
//
//	mage build          Compile the contacts binary to bin/
//	mage run            Build and start the interactive menu
//	mage test:all       Run all tests
//	mage test:unit      Run tests without the sqlite and TUI packages
//	mage test:race      Run all tests with the race detector
//	mage test:cover     Write a coverage profile to bin/coverage.out
//	mage lint           Run golangci-lint
//	mage vet            Run go vet
//	mage clean          Remove build artifacts
//	mage install        Install contacts to GOPATH/bin
//	mage stats          Print Go LOC and contacts file record counts
package main

const (
	binGo      = "go"
	binaryName = "contacts"
	binaryDir  = "bin"
	cmdDir     = "./cmd/contacts"
	modulePath = "github.com/mesh-intelligence/contacts"
)
