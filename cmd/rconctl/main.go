package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/rconctl/internal/logging"
	"github.com/danmuck/rconctl/internal/rcon"
)

const (
	envConfigPath     = "RCONCTL_CONFIG"
	defaultConfigPath = "rconctl.toml"
)

func main() {
	logging.ConfigureRuntime()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rconctl: %v\n", err)
		os.Exit(1)
	}
}

// run dials the configured server and executes every non-empty line
// read from stdin, printing each response body to stdout.
func run() error {
	path := os.Getenv(envConfigPath)
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := loadClientConfig(path)
	if err != nil {
		return err
	}

	ctx := context.Background()
	session, err := rcon.Dial(ctx, cfg.Address, cfg.Password, cfg.Session)
	if err != nil {
		return err
	}
	defer session.Close()
	log.Info().Str("addr", cfg.Address).Msg("connected")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		command := strings.TrimSpace(scanner.Text())
		if command == "" {
			continue
		}
		body, err := session.Execute(ctx, command)
		if err != nil {
			return fmt.Errorf("execute %q: %w", command, err)
		}
		fmt.Println(body)
	}
	return scanner.Err()
}
