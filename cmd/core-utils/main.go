// Package main is the entry point for the core-utils shell.
package main

import (
	"log"

	"github.com/Shivaah/core-utils/pkg/config"
	"github.com/Shivaah/core-utils/pkg/core"
	"github.com/Shivaah/core-utils/pkg/shell"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sh := shell.New(core.DefaultStdio(), cfg)
	if err := sh.Run(); err != nil {
		log.Fatal(err)
	}
}
