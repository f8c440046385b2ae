// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Package main provides build targets for the casetrack project using Mage.
//
// Usage:
//
//	mage build            Compile casetrack binary to bin/
//	mage test:all         Run all tests (unit + integration)
//	mage test:unit        Run only unit tests (exclude tests/)
//	mage test:integration Run only integration tests (builds first)
//	mage lint             Run golangci-lint
//	mage clean            Remove build artifacts
//	mage install          Install casetrack to GOPATH/bin
//	mage stats            Print Go LOC and documentation word counts
package main
