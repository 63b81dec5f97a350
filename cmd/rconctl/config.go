package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/rconctl/internal/protocol"
	"github.com/danmuck/rconctl/internal/rcon"
)

type fileConfig struct {
	Address           string  `toml:"address"`
	Password          string  `toml:"password"`
	ConnectTimeout    string  `toml:"connect_timeout"`
	ReadTimeout       string  `toml:"read_timeout"`
	WriteTimeout      string  `toml:"write_timeout"`
	MaxPacketBytes    int32   `toml:"max_packet_bytes"`
	MultiPacket       bool    `toml:"multi_packet"`
	CommandsPerSecond float64 `toml:"commands_per_second"`
	CommandBurst      int     `toml:"command_burst"`
}

type clientConfig struct {
	Address  string
	Password string
	Session  rcon.Config
}

func loadClientConfig(path string) (clientConfig, error) {
	cfg := clientConfig{Session: rcon.DefaultConfig()}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return clientConfig{}, fmt.Errorf("load rconctl config: %w", err)
	}

	cfg.Address = strings.TrimSpace(raw.Address)
	if cfg.Address == "" {
		return clientConfig{}, fmt.Errorf("rconctl config: address required")
	}
	cfg.Password = raw.Password

	if meta.IsDefined("connect_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ConnectTimeout))
		if err != nil {
			return clientConfig{}, fmt.Errorf("parse connect_timeout: %w", err)
		}
		cfg.Session.ConnectTimeout = d
	}

	if meta.IsDefined("read_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ReadTimeout))
		if err != nil {
			return clientConfig{}, fmt.Errorf("parse read_timeout: %w", err)
		}
		cfg.Session.ReadTimeout = d
	}

	if meta.IsDefined("write_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.WriteTimeout))
		if err != nil {
			return clientConfig{}, fmt.Errorf("parse write_timeout: %w", err)
		}
		cfg.Session.WriteTimeout = d
	}

	if meta.IsDefined("max_packet_bytes") {
		cfg.Session.Limits = protocol.Limits{MaxPacketBytes: raw.MaxPacketBytes}
	}

	if meta.IsDefined("multi_packet") {
		cfg.Session.MultiPacket = raw.MultiPacket
	}

	if meta.IsDefined("commands_per_second") {
		cfg.Session.CommandsPerSecond = raw.CommandsPerSecond
	}

	if meta.IsDefined("command_burst") {
		cfg.Session.CommandBurst = raw.CommandBurst
	}

	return cfg, nil
}
