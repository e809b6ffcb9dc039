// Package health reports the state of the host the service runs on.
package health

import (
	"context"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/host"
)

// Snapshot is a point-in-time view of the host. It is never stored.
type Snapshot struct {
	Uptime uint64 `json:"uptime"`
	Name   string `json:"name"`
}

// Provider produces host snapshots.
type Provider interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// HostProvider queries the operating system directly.
type HostProvider struct {
	uptime   func(ctx context.Context) (uint64, error)
	hostname func() (string, error)
}

// NewHostProvider returns a Provider backed by the local host.
func NewHostProvider() *HostProvider {
	return &HostProvider{
		uptime:   host.UptimeWithContext,
		hostname: os.Hostname,
	}
}

// Snapshot returns seconds since boot and the hostname.
func (p *HostProvider) Snapshot(ctx context.Context) (Snapshot, error) {
	uptime, err := p.uptime(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading host uptime: %w", err)
	}
	name, err := p.hostname()
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading hostname: %w", err)
	}
	return Snapshot{Uptime: uptime, Name: name}, nil
}
