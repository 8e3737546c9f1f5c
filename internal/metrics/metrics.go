// Package metrics exposes OpenTelemetry counters for board activity. The
// global meter provider is a no-op unless the host process installs one, so
// these calls are safe from any context.
package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/pitchconnect/tacticboard/pkg/core"
)

var (
	meter = otel.Meter("github.com/pitchconnect/tacticboard")

	playerMoves, _ = meter.Int64Counter("tacticboard.player_moves",
		metric.WithDescription("Player markers repositioned on the board"))
	snapshots, _ = meter.Int64Counter("tacticboard.snapshots",
		metric.WithDescription("Tactic documents snapshotted for save"))
	gatewayErrors, _ = meter.Int64Counter("tacticboard.gateway_errors",
		metric.WithDescription("Failed persistence gateway calls"))
	exports, _ = meter.Int64Counter("tacticboard.exports",
		metric.WithDescription("Export documents produced"))
)

func sportAttr(sport core.Sport) metric.AddOption {
	return metric.WithAttributes(attribute.String("sport", string(sport)))
}

// PlayerMoved records one marker reposition.
func PlayerMoved(sport core.Sport) {
	playerMoves.Add(context.Background(), 1, sportAttr(sport))
}

// SnapshotTaken records one snapshot build.
func SnapshotTaken(sport core.Sport) {
	snapshots.Add(context.Background(), 1, sportAttr(sport))
}

// GatewayError records one failed gateway call.
func GatewayError(op string) {
	gatewayErrors.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("op", op)))
}

// ExportBuilt records one export artifact.
func ExportBuilt(sport core.Sport) {
	exports.Add(context.Background(), 1, sportAttr(sport))
}
