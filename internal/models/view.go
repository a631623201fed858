package models

// View identifies a dashboard section. Exactly one view is active at a
// time; the active view decides which polling cadence runs.
type View string

const (
	ViewDashboard  View = "dashboard"
	ViewMonitoring View = "monitoring"
	ViewStats      View = "stats"
	ViewAnalyzer   View = "analyzer"
)

// Views lists every monitored view in menu order.
var Views = []View{ViewDashboard, ViewAnalyzer, ViewMonitoring, ViewStats}

// Valid reports whether v names a known dashboard section.
func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewMonitoring, ViewStats, ViewAnalyzer:
		return true
	}
	return false
}
