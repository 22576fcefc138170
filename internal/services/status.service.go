package services

import (
	"context"
	"net/http"
	"sync"
	"time"

	"watchpost/internal/config"
	"watchpost/internal/execx"
	"watchpost/internal/models"
)

// Collector runs the probe pipeline. It holds only immutable
// configuration and collaborators; every Snapshot call is an
// independent unit of work with no state shared across requests.
type Collector struct {
	cfg    config.Probes
	runner execx.Runner
	client *http.Client
}

func NewCollector(cfg config.Probes, runner execx.Runner) *Collector {
	cfg = cfg.WithDefaults()
	return &Collector{
		cfg:    cfg,
		runner: runner,
		client: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSec) * time.Second},
	}
}

func (c *Collector) commandTimeout() time.Duration {
	return time.Duration(c.cfg.CommandTimeoutSec) * time.Second
}

func (c *Collector) speedtestTimeout() time.Duration {
	return time.Duration(c.cfg.SpeedtestTimeoutSec) * time.Second
}

// Snapshot runs all probes concurrently and joins their results into
// one immutable status value. Probes are read-only and independent;
// each one degrades to absent fields on its own failures, so the
// snapshot is always produced.
func (c *Collector) Snapshot(ctx context.Context) *models.StatusSnapshot {
	var (
		system           *SystemSnapshot
		temps            models.TempData
		interfaces       []models.NetworkInterface
		publicIP         string
		pingMs           *float64
		download, upload *float64
	)

	var wg sync.WaitGroup
	wg.Add(6)
	go func() {
		defer wg.Done()
		system = GetSystemSnapshot()
	}()
	go func() {
		defer wg.Done()
		temps = c.Temperatures(ctx)
	}()
	go func() {
		defer wg.Done()
		interfaces = GetInterfaces()
	}()
	go func() {
		defer wg.Done()
		publicIP = c.PublicIP(ctx)
	}()
	go func() {
		defer wg.Done()
		pingMs = c.PingMillis(ctx)
	}()
	go func() {
		defer wg.Done()
		download, upload = c.Speedtest(ctx)
	}()
	wg.Wait()

	return &models.StatusSnapshot{
		ServerStatus: "online",
		ServerUptime: formatUptime(system.UptimeSec),
		ServerData: models.ServerData{
			ServerName: system.Hostname,
			ServerCPU:  system.CPUModel,
			ServerOS:   system.OSName,
		},
		Data: models.UsageData{
			CPUPercentage:    system.CPUPercent,
			Memory:           system.MemoryUsedGB,
			TotalMemory:      system.MemoryTotalGB,
			MemoryPercentage: system.MemoryPercent,
			Temps:            temps,
		},
		Network: models.NetworkData{
			PublicIP:          publicIP,
			PingMs:            pingMs,
			SpeedDownloadMbps: download,
			SpeedUploadMbps:   upload,
			Interfaces:        interfaces,
		},
	}
}
