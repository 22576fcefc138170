package services

import (
	"fmt"
	"log"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

const GB = 1024 * 1024 * 1024

// SystemSnapshot holds the host counters read once per request.
type SystemSnapshot struct {
	Hostname      *string
	OSName        *string
	CPUModel      string
	CPUPercent    float64
	MemoryUsedGB  float64
	MemoryTotalGB float64
	MemoryPercent float64
	UptimeSec     uint64
}

// GetSystemSnapshot reads CPU, memory and host identity counters.
// It never fails outright; each sub-field independently degrades to
// its zero value when the underlying lookup errors.
func GetSystemSnapshot() *SystemSnapshot {
	snap := &SystemSnapshot{}

	if infos, err := cpu.Info(); err != nil {
		log.Printf("Warning: could not read CPU info: %v", err)
	} else if len(infos) > 0 {
		snap.CPUModel = infos[0].ModelName
	}

	if percentages, err := cpu.Percent(0, false); err != nil {
		log.Printf("Warning: could not read CPU usage: %v", err)
	} else if len(percentages) > 0 {
		snap.CPUPercent = percentages[0]
	}

	if virtualMemory, err := mem.VirtualMemory(); err != nil {
		log.Printf("Warning: could not read memory usage: %v", err)
	} else {
		snap.MemoryUsedGB = float64(virtualMemory.Used) / GB
		snap.MemoryTotalGB = float64(virtualMemory.Total) / GB
		snap.MemoryPercent = memoryPercent(virtualMemory.Used, virtualMemory.Total)
	}

	if info, err := host.Info(); err != nil {
		log.Printf("Warning: could not read host info: %v", err)
	} else {
		snap.UptimeSec = info.Uptime
		if info.Hostname != "" {
			hostname := info.Hostname
			snap.Hostname = &hostname
		}
		if info.Platform != "" {
			osName := info.Platform
			snap.OSName = &osName
		}
	}

	return snap
}

// memoryPercent derives used/total*100. A zero total reports 0 rather
// than NaN; the field is mandatory in the response shape.
func memoryPercent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

func formatUptime(secs uint64) string {
	return fmt.Sprintf("%dh %dm %ds", secs/3600, (secs%3600)/60, secs%60)
}
