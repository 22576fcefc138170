package services

import (
	"context"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"watchpost/internal/models"

	"github.com/shirou/gopsutil/v3/net"
)

// PublicIPUnavailable is reported when the IP-echo service cannot be
// reached. The field is a mandatory string in the response contract,
// so it carries a sentinel instead of null.
const PublicIPUnavailable = "Unavailable"

// GetInterfaces enumerates local interfaces and their addresses, one
// entry per address, in the order the OS reports them. Loopback and
// down interfaces are included. Enumeration failure yields an empty
// list, never an error.
func GetInterfaces() []models.NetworkInterface {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Printf("Warning: could not enumerate network interfaces: %v", err)
		return []models.NetworkInterface{}
	}

	list := make([]models.NetworkInterface, 0, len(ifaces))
	for _, iface := range ifaces {
		for _, addr := range iface.Addrs {
			list = append(list, models.NetworkInterface{
				Name: iface.Name,
				IP:   addr.Addr,
			})
		}
	}
	return list
}

// PublicIP issues one GET to the configured IP-echo service and
// returns the response body. Any failure returns the sentinel.
func (c *Collector) PublicIP(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.IPEchoURL, nil)
	if err != nil {
		log.Printf("Warning: invalid IP-echo URL %q: %v", c.cfg.IPEchoURL, err)
		return PublicIPUnavailable
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("Warning: public IP lookup failed: %v", err)
		return PublicIPUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Warning: public IP lookup returned status %d", resp.StatusCode)
		return PublicIPUnavailable
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		log.Printf("Warning: could not read public IP response: %v", err)
		return PublicIPUnavailable
	}

	ip := strings.TrimSpace(string(body))
	if ip == "" {
		return PublicIPUnavailable
	}
	return ip
}

// PingMillis sends one echo request to the configured target and
// returns the round-trip time in milliseconds, or nil on any failure.
func (c *Collector) PingMillis(ctx context.Context) *float64 {
	ctx, cancel := context.WithTimeout(ctx, c.commandTimeout())
	defer cancel()

	out, err := c.runner.Output(ctx, "ping", "-c", "1", c.cfg.PingTarget)
	if err != nil {
		log.Printf("Warning: ping failed: %v", err)
		return nil
	}
	return parsePingOutput(out)
}

// parsePingOutput extracts the value following "time=" on the first
// line that carries it, e.g.
// "64 bytes from 8.8.8.8: icmp_seq=1 ttl=55 time=13.4 ms" -> 13.4.
func parsePingOutput(out string) *float64 {
	for _, line := range strings.Split(out, "\n") {
		idx := strings.Index(line, "time=")
		if idx < 0 {
			continue
		}
		value := line[idx+len("time="):]
		if sp := strings.IndexByte(value, ' '); sp >= 0 {
			value = value[:sp]
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil
		}
		return &v
	}
	return nil
}

// Speedtest runs the speed-test tool in simple-output mode. The pair
// is present only when both values parse; a partial result reports
// both as absent.
func (c *Collector) Speedtest(ctx context.Context) (download, upload *float64) {
	ctx, cancel := context.WithTimeout(ctx, c.speedtestTimeout())
	defer cancel()

	out, err := c.runner.Output(ctx, c.cfg.SpeedtestCommand, "--simple")
	if err != nil {
		log.Printf("Warning: speed test failed: %v", err)
		return nil, nil
	}
	return parseSpeedtestOutput(out)
}

// parseSpeedtestOutput reads "Download: 93.12 Mbit/s" / "Upload: ..."
// lines, taking the second whitespace-separated token as Mbps.
func parseSpeedtestOutput(out string) (*float64, *float64) {
	var download, upload *float64

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		switch {
		case strings.HasPrefix(line, "Download:"):
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				download = &v
			}
		case strings.HasPrefix(line, "Upload:"):
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				upload = &v
			}
		}
	}

	if download == nil || upload == nil {
		return nil, nil
	}
	return download, upload
}
