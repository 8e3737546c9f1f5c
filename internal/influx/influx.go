package influx

import (
	"errors"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxdb2_api "github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/pitchconnect/tacticboard/pkg/core"
)

// DefaultBucketNames are the InfluxDB buckets used by the tactic board.
var DefaultBucketNames = []string{
	"board_sessions",
	"gateway_performance",
}

// Manager handles InfluxDB connections and writes.
type Manager struct {
	Client      influxdb2.Client
	Writers     map[string]influxdb2_api.WriteAPI
	IsValid     bool
	BucketNames []string
	Logger      zerolog.Logger
}

// NewManager creates a new InfluxDB manager.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		Writers:     make(map[string]influxdb2_api.WriteAPI),
		IsValid:     false,
		BucketNames: DefaultBucketNames,
		Logger:      log,
	}
}

// Connect establishes a connection to InfluxDB.
func (m *Manager) Connect() error {
	if !viper.GetBool("influx.enabled") {
		return errors.New("influx.enabled is false")
	}

	m.Client = influxdb2.NewClientWithOptions(
		fmt.Sprintf(
			"%s://%s:%s",
			viper.GetString("influx.protocol"),
			viper.GetString("influx.host"),
			viper.GetString("influx.port"),
		),
		viper.GetString("influx.token"),
		influxdb2.DefaultOptions().
			SetBatchSize(100).
			SetFlushInterval(1000),
	)

	org := viper.GetString("influx.org")
	for _, bucket := range m.BucketNames {
		m.Writers[bucket] = m.Client.WriteAPI(org, bucket)
	}

	m.IsValid = true
	m.Logger.Info().Msg("Connected to InfluxDB")
	return nil
}

// WriteSessionMetrics records one editing session's activity totals.
func (m *Manager) WriteSessionMetrics(sport core.Sport, teamID uint, moves, saves, exports int) {
	if !m.IsValid {
		return
	}

	p := influxdb2.NewPoint(
		"board_session",
		map[string]string{
			"sport": string(sport),
		},
		map[string]interface{}{
			"teamId":  teamID,
			"moves":   moves,
			"saves":   saves,
			"exports": exports,
		},
		time.Now(),
	)
	m.Writers["board_sessions"].WritePoint(p)
}

// WriteGatewayTiming records one gateway call duration.
func (m *Manager) WriteGatewayTiming(op string, d time.Duration, failed bool) {
	if !m.IsValid {
		return
	}

	p := influxdb2.NewPoint(
		"gateway_call",
		map[string]string{
			"op": op,
		},
		map[string]interface{}{
			"durationMs": float64(d.Milliseconds()),
			"failed":     failed,
		},
		time.Now(),
	)
	m.Writers["gateway_performance"].WritePoint(p)
}

// Close flushes and shuts down the client.
func (m *Manager) Close() {
	if !m.IsValid {
		return
	}
	for _, w := range m.Writers {
		w.Flush()
	}
	m.Client.Close()
	m.IsValid = false
}
