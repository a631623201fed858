package adapter

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/LIZZY274/hotspot-panel/internal/models"
)

// Synthetic payloads are randomized within fixed plausible ranges so a
// disconnected demo still shows moving numbers. The ranges are part of
// the adapter contract:
//
//	cpu [10,90)  memory [20,90)  disk [30,90)  temperature [35,55)
//	network rx [100,1100)  tx [80,880)  loadAverage [0,3)
//	activeUsers [5,30)  totalTraffic [100,600)

func randRange(lo, hi int) int {
	return lo + rand.Intn(hi-lo)
}

func randFloat() float64 {
	return rand.Float64()
}

func syntheticStats(now time.Time) *models.SystemStats {
	users := randRange(5, 30)
	return &models.SystemStats{
		ActiveUsers:   users,
		TotalTraffic:  randRange(100, 600),
		HotspotStatus: "Active",
		RecentActivity: []models.ActivityItem{
			{Description: fmt.Sprintf("%d users connected", users), Timestamp: now.Add(-5 * time.Minute)},
			{Description: "HotSpot service running normally", Timestamp: now.Add(-10 * time.Minute)},
			{Description: "Scheduled configuration backup completed", Timestamp: now.Add(-15 * time.Minute)},
		},
	}
}

func defaultHotspotConfig() *models.HotspotConfig {
	return &models.HotspotConfig{
		Interface:      "wlan1",
		Enabled:        true,
		Authentication: "local",
		Encryption:     "WPA2-PSK",
		Timeout:        "1h",
		AddressPool:    "192.168.10.0/24",
		DNSServers:     "8.8.8.8, 8.8.4.4",
		MaxUsers:       50,
	}
}

func syntheticActiveUsers() []models.ActiveUser {
	return []models.ActiveUser{
		{
			ID: 1, Username: "usuario1", IP: "192.168.1.100",
			MAC: "00:11:22:33:44:55", Connected: "2:15",
			Traffic: "45.2 MB", SessionTime: "2h 15m",
		},
		{
			ID: 2, Username: "usuario2", IP: "192.168.1.101",
			MAC: "00:11:22:33:44:56", Connected: "1:42",
			Traffic: "23.8 MB", SessionTime: "1h 42m",
		},
		{
			ID: 3, Username: "guest123", IP: "192.168.1.102",
			MAC: "00:11:22:33:44:57", Connected: "0:35",
			Traffic: "12.1 MB", SessionTime: "0h 35m",
		},
	}
}

func syntheticMetrics() *models.Metrics {
	return &models.Metrics{
		CPU:    randRange(10, 90),
		Memory: randRange(20, 90),
		Disk:   randRange(30, 90),
		Network: models.NetworkIO{
			RX: randRange(100, 1100),
			TX: randRange(80, 880),
		},
		Uptime:      "2d 14h 32m",
		Temperature: randRange(35, 55),
		LoadAverage: randFloat() * 3,
	}
}

var syntheticLogPool = []struct {
	level, message string
}{
	{"info", "User usuario1 connected from 192.168.1.100"},
	{"warning", "High CPU usage detected: 85%"},
	{"info", "HotSpot profile default applied to new session"},
	{"error", "DHCP pool exhaustion on interface wlan1"},
	{"info", "Configuration backup completed"},
	{"warning", "Wireless interference detected on channel 6"},
	{"info", "User guest123 disconnected, session time 0h 35m"},
	{"info", "Firewall rule counters reset"},
}

func syntheticLogs(limit int, now time.Time) []models.LogEntry {
	if limit <= 0 || limit > 20 {
		limit = 20
	}
	out := make([]models.LogEntry, 0, limit)
	for i := 0; i < limit; i++ {
		src := syntheticLogPool[i%len(syntheticLogPool)]
		out = append(out, models.LogEntry{
			ID:        i + 1,
			Timestamp: now.Add(-time.Duration(i) * 5 * time.Minute),
			Level:     src.level,
			Message:   src.message,
		})
	}
	return out
}
