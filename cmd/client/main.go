package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iudanet/microblog/internal/client/api"
	"github.com/iudanet/microblog/internal/client/cli"
	"github.com/iudanet/microblog/internal/client/iocli"
	"github.com/iudanet/microblog/internal/client/session"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", defaultDBPath(), "Path to local session database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	// Открываем локальное хранилище сессии
	store, err := session.NewStore(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close session database", "error", err)
		}
	}()

	// Создаем API клиент и CLI
	apiClient := api.NewClient(*serverURL)
	app := cli.New(apiClient, store, stdio)

	// Выполняем команду
	if err := runCommand(ctx, app, stdio, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, app *cli.Cli, stdio iocli.IO, command string, args []string) error {
	switch command {
	case "register":
		return app.Register(ctx)
	case "login":
		return app.Login(ctx)
	case "logout":
		return app.Logout(ctx)
	case "whoami":
		return app.Whoami(ctx)
	case "feed":
		return app.Feed(ctx)
	case "post":
		return app.Post(ctx, args)
	case "edit":
		return app.Edit(ctx, args)
	case "delete":
		return app.Delete(ctx, args)
	default:
		cli.PrintUsage(stdio)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// defaultDBPath кладет файл сессии в домашний каталог пользователя
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "microblog-client.db"
	}
	return filepath.Join(home, ".microblog-client.db")
}

func printVersion() {
	fmt.Printf("Microblog Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
