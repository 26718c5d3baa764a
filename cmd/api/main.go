package main

import (
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gsccapital/website/api/cmd/api/commands"
)

func main() {
	if err := commands.GetRootCmd().Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
