//go:build mage

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binary     = "bin/thundery"
	mainPkg    = "./cmd/thundery"
	versionPkg = "github.com/dkoosis/thundery/internal/version"
)

// Default target - build the binary
var Default = Build

// Build builds the thundery binary with version metadata.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, mainPkg)
}

// Test runs the unit and end-to-end tests.
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Install installs thundery into GOBIN.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binDir)
}

// QA runs formatting, vet and the tests.
func QA() {
	mg.SerialDeps(Lint.Format, Lint.Vet, Test)
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs all linters
func (Lint) All() {
	mg.SerialDeps(Lint.Format, Lint.Vet, Lint.Golangci)
}

// Format checks code formatting
func (Lint) Format() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need formatting:\n%s", out)
	}
	return nil
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Golangci runs golangci-lint
func (Lint) Golangci() error {
	if err := sh.RunV("golangci-lint", "run", "./..."); err != nil {
		if sh.CmdRan(err) {
			return fmt.Errorf("golangci-lint failed: %w", err)
		}
		fmt.Println("⚠️  golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
	}
	return nil
}

func ldflags() string {
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || commit == "" {
		commit = "unknown"
	}
	ver, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || ver == "" {
		ver = "dev"
	}
	return fmt.Sprintf("-s -w -X %[1]s.Version=%[2]s -X %[1]s.CommitHash=%[3]s -X %[1]s.BuildDate=%[4]s",
		versionPkg, ver, commit, time.Now().UTC().Format(time.RFC3339))
}
