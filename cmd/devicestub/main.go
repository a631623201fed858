// devicestub is a standalone fake of the device backend. It serves the
// same endpoints the panel polls, with plausible fluctuating data, so
// the panel can be exercised end-to-end without real hardware.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	addr := flag.String("a", ":8080", "listen address")
	flag.Parse()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})

	r.Get("/api/hotspot/stats", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"usuarios_activos": 5 + rand.Intn(25),
			"timestamp":        time.Now().UTC(),
		})
	})

	r.Get("/api/hotspot/config", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"HotSpots": []string{"name=hs-wlan1 interface=wlan1 address-pool=hs-pool-1 profile=hsprof1"},
			"Users":    []string{"name=admin profile=default", "name=guest profile=guest"},
			"Profiles": []string{"name=default rate-limit=2M/2M", "name=guest rate-limit=512k/512k"},
		})
	})

	r.Put("/api/hotspot/config", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	})

	r.Get("/api/hotspot/active-users", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"active_users": []string{
			"user=usuario1 address=192.168.1.100 mac-address=00:11:22:33:44:55 uptime=2:15 session-time=2h 15m",
			"user=usuario2 address=192.168.1.101 mac-address=00:11:22:33:44:56 uptime=1:42 session-time=1h 42m",
			"user=guest123 address=192.168.1.102 mac-address=00:11:22:33:44:57 uptime=0:35 session-time=0h 35m",
		}})
	})

	r.Get("/api/monitoring/metrics", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"cpu":    10 + rand.Intn(80),
			"memory": 20 + rand.Intn(70),
			"disk":   30 + rand.Intn(60),
			"network": map[string]int{
				"rx": 100 + rand.Intn(1000),
				"tx": 80 + rand.Intn(800),
			},
			"uptime":      "2d 14h 32m",
			"temperature": 35 + rand.Intn(20),
			"loadAverage": rand.Float64() * 3,
		})
	})

	r.Get("/api/logs", func(w http.ResponseWriter, req *http.Request) {
		limit := 20
		if v, err := strconv.Atoi(req.URL.Query().Get("limit")); err == nil && v > 0 && v < limit {
			limit = v
		}
		levels := []string{"info", "info", "warning", "error"}
		logs := make([]map[string]any, 0, limit)
		for i := 0; i < limit; i++ {
			logs = append(logs, map[string]any{
				"id":        i + 1,
				"timestamp": time.Now().UTC().Add(-time.Duration(i) * 5 * time.Minute),
				"level":     levels[rand.Intn(len(levels))],
				"message":   fmt.Sprintf("hotspot event %d on wlan1", i+1),
			})
		}
		writeJSON(w, logs)
	})

	r.Post("/api/hotspot/analyze", func(w http.ResponseWriter, req *http.Request) {
		var in struct {
			Code string `json:"code"`
		}
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, analyze(in.Code))
	})

	log.Printf("device stub listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, r))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

// analyze is a toy configuration analyzer: it tokenizes the script,
// counts hotspot objects, and flags obviously weak credentials. The
// real device runs a full lexer/parser; the panel only consumes the
// result shape.
func analyze(code string) map[string]any {
	fields := strings.Fields(code)
	tokens := make([]map[string]string, 0, len(fields))
	for _, f := range fields {
		kind := "word"
		if strings.HasPrefix(f, "/") {
			kind = "menu"
		} else if strings.Contains(f, "=") {
			kind = "param"
		}
		tokens = append(tokens, map[string]string{"kind": kind, "value": f})
	}

	var hotspots, users, bindings int
	var warnings []string
	section := ""
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "/") {
			section = line
			continue
		}
		if !strings.HasPrefix(line, "add") {
			continue
		}
		switch section {
		case "/ip hotspot":
			hotspots++
		case "/ip hotspot user":
			users++
			for _, weak := range []string{"admin123", "guest123", "password", "123456"} {
				if strings.Contains(line, "password="+weak) {
					warnings = append(warnings, "weak password in: "+line)
				}
			}
		case "/ip hotspot ip-binding":
			bindings++
			if strings.Contains(line, "type=bypassed") {
				warnings = append(warnings, "bypassed binding skips authentication: "+line)
			}
		}
	}

	var parseErrors []string
	if len(fields) == 0 {
		parseErrors = append(parseErrors, "empty configuration")
	}

	return map[string]any{
		"parseValid":       len(parseErrors) == 0,
		"semValid":         len(parseErrors) == 0,
		"parseErrors":      parseErrors,
		"semErrors":        []string{},
		"securityWarnings": warnings,
		"hotspotStats": map[string]int{
			"hotspots": hotspots,
			"users":    users,
			"bindings": bindings,
		},
		"tokens": tokens,
	}
}
