package services

import (
	"context"
	"log"
	"strconv"
	"strings"

	"watchpost/internal/models"

	"github.com/shirou/gopsutil/v3/host"
)

// Stubbed in tests.
var getSensorTemps = host.SensorsTemperatures

// Chip-name markers, matched case-insensitively against the section
// headers of `sensors` output.
var (
	motherboardMarkers = []string{"asus", "acpitz"}
	cpuMarkers         = []string{"k10temp", "coretemp", "zenpower"}
	gpuMarkers         = []string{"amdgpu"}
)

// Temperatures runs the sensors command and parses its output into
// labeled readings. When no CPU reading is matched by chip name, it
// falls back to the structured sensor API and then to the
// "Package id 0" line of the same output. Every failure mode leaves
// the affected reading absent; the probe itself never errors.
func (c *Collector) Temperatures(ctx context.Context) models.TempData {
	ctx, cancel := context.WithTimeout(ctx, c.commandTimeout())
	defer cancel()

	out, err := c.runner.Output(ctx, c.cfg.SensorsCommand)
	if err != nil {
		log.Printf("Warning: sensors command failed: %v", err)
		out = ""
	}

	temps := parseSensorsOutput(out)
	if temps.CPUTemp == nil {
		temps.CPUTemp = cpuTempFallback(out)
	}
	return temps
}

// parseSensorsOutput walks the chip-sectioned text format: a non-empty
// line with no leading whitespace and no colon opens a chip section,
// and every following indented line belongs to it.
func parseSensorsOutput(out string) models.TempData {
	var temps models.TempData
	var chip string

	for _, line := range strings.Split(out, "\n") {
		if line != "" && !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") && !strings.Contains(line, ":") {
			chip = strings.ToLower(line)
		}
		if chip == "" {
			continue
		}

		label := strings.ToLower(strings.TrimSpace(line))
		switch {
		case containsAny(chip, motherboardMarkers) && strings.Contains(label, "temp1:"):
			if v := parseTempLine(line); v != nil {
				temps.MotherboardTemp = v
			}
		case containsAny(chip, cpuMarkers) && strings.Contains(label, "temp1:"):
			if v := parseTempLine(line); v != nil {
				temps.CPUTemp = v
			}
		case containsAny(chip, gpuMarkers) && strings.Contains(label, "edge:"):
			if v := parseTempLine(line); v != nil {
				temps.GPUTemp = v
			}
		}
	}

	return temps
}

// parseTempLine extracts the Celsius value from the first token
// carrying a °C marker, e.g. "+45.0°C" -> 45.0.
func parseTempLine(line string) *float64 {
	for _, token := range strings.Fields(line) {
		if !strings.Contains(token, "°C") {
			continue
		}
		v, err := strconv.ParseFloat(strings.Trim(token, "+°C"), 64)
		if err != nil {
			return nil
		}
		return &v
	}
	return nil
}

// cpuTempFallback is used when no chip marker matched: first sensor
// whose key mentions "cpu" in the structured API, then the
// "Package id 0" line of the raw sensors output.
func cpuTempFallback(sensorsOut string) *float64 {
	if readings, err := getSensorTemps(); err != nil {
		log.Printf("Warning: could not read sensor temperatures: %v", err)
	} else {
		for _, r := range readings {
			if r.Temperature != 0 && strings.Contains(strings.ToLower(r.SensorKey), "cpu") {
				t := r.Temperature
				return &t
			}
		}
	}

	for _, line := range strings.Split(sensorsOut, "\n") {
		if strings.Contains(strings.ToLower(line), "package id 0") {
			return parseTempLine(line)
		}
	}
	return nil
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
