package rcon

import (
	"time"

	"github.com/danmuck/rconctl/internal/protocol"
)

// Config defines transport and pacing defaults for one session.
type Config struct {
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	// Limits bounds how large a declared response packet may be before
	// decode fails instead of allocating.
	Limits protocol.Limits

	// MultiPacket enables the trailing-probe round trip that
	// reassembles command output spanning multiple response packets.
	// Not every server variant honors the probe; Factorio answers in a
	// single packet, so this stays off by default and should only be
	// enabled after validating the target server.
	MultiPacket bool

	// CommandsPerSecond caps the Execute rate when greater than zero.
	// CommandBurst defaults to 1 when left unset.
	CommandsPerSecond float64
	CommandBurst      int
}

func DefaultConfig() Config {
	return Config{
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		Limits:         protocol.DefaultLimits(),
	}
}

func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = d.ConnectTimeout
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.Limits.MaxPacketBytes <= 0 {
		c.Limits = d.Limits
	}
	if c.CommandsPerSecond > 0 && c.CommandBurst <= 0 {
		c.CommandBurst = 1
	}
	return c
}
