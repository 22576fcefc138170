package models

// TempData holds the parsed sensor temperatures in degrees Celsius.
// Any individual sensor may be missing on a given host, so every
// reading is a pointer and serializes as null when absent.
type TempData struct {
	MotherboardTemp *float64 `json:"motherboard_temp"`
	CPUTemp         *float64 `json:"cpu_temp"`
	GPUTemp         *float64 `json:"gpu_temp"`
}

// ServerData identifies the host being probed.
type ServerData struct {
	ServerName *string `json:"server_name"`
	ServerCPU  string  `json:"server_cpu"`
	ServerOS   *string `json:"server_os"`
}

// UsageData holds CPU and memory utilization. Memory values are GiB.
type UsageData struct {
	CPUPercentage    float64  `json:"cpu_percentage"`
	Memory           float64  `json:"memory"`
	TotalMemory      float64  `json:"total_memory"`
	MemoryPercentage float64  `json:"memory_percentage"`
	Temps            TempData `json:"temps"`
}

// NetworkInterface is one interface/address pair as reported by the OS.
type NetworkInterface struct {
	Name string `json:"name"`
	IP   string `json:"ip"`
}

// NetworkData holds network identity and link-quality readings.
// PublicIP uses the "Unavailable" sentinel instead of null because the
// field is a mandatory string in the response contract. The download
// and upload speeds come from one parse of one tool's output and are
// either both present or both absent.
type NetworkData struct {
	PublicIP          string             `json:"public_ip"`
	PingMs            *float64           `json:"ping_ms"`
	SpeedDownloadMbps *float64           `json:"speed_download_mbps"`
	SpeedUploadMbps   *float64           `json:"speed_upload_mbps"`
	Interfaces        []NetworkInterface `json:"interfaces"`
}

// StatusSnapshot is the complete point-in-time response for one request.
type StatusSnapshot struct {
	ServerStatus string      `json:"server_status"`
	ServerUptime string      `json:"server_uptime"`
	ServerData   ServerData  `json:"server_data"`
	Data         UsageData   `json:"data"`
	Network      NetworkData `json:"network"`
}
