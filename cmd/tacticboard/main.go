package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/pitchconnect/tacticboard/internal/board"
	"github.com/pitchconnect/tacticboard/internal/config"
	"github.com/pitchconnect/tacticboard/internal/export"
	"github.com/pitchconnect/tacticboard/internal/geo"
	"github.com/pitchconnect/tacticboard/internal/influx"
	"github.com/pitchconnect/tacticboard/internal/logging"
	"github.com/pitchconnect/tacticboard/internal/storage"
	"github.com/pitchconnect/tacticboard/internal/storage/memory"
	"github.com/pitchconnect/tacticboard/internal/tactic"
	"github.com/pitchconnect/tacticboard/internal/worker"
	"github.com/pitchconnect/tacticboard/pkg/core"
)

var logger zerolog.Logger

func main() {
	if err := config.Load("."); err != nil {
		// run on defaults when no config file is present
		fmt.Fprintf(os.Stderr, "config: %v (using defaults)\n", err)
	}

	logsDir := viper.GetString("logsDir")
	_ = os.MkdirAll(logsDir, 0o755)
	logFile, err := os.Create(logging.LogFilePath(logsDir, time.Now()))
	if err != nil {
		logFile = nil
	}
	logger = logging.Setup(logFile, viper.GetString("logLevel"))

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		return
	}

	switch strings.ToLower(args[0]) {
	case "demo":
		// an optional "x,y" argument moves the selected player there
		coords := ""
		if len(args) > 1 {
			coords = args[1]
		}
		if err := runDemo(coords); err != nil {
			logger.Fatal().Err(err).Msg("Demo failed")
		}
	case "list":
		if len(args) < 2 {
			usage()
			return
		}
		teamID, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			logger.Fatal().Err(err).Msg("Invalid team id")
		}
		if err := runList(uint(teamID)); err != nil {
			logger.Fatal().Err(err).Msg("List failed")
		}
	case "export":
		if len(args) < 2 {
			usage()
			return
		}
		tacticID, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			logger.Fatal().Err(err).Msg("Invalid tactic id")
		}
		if err := runExport(uint(tacticID)); err != nil {
			logger.Fatal().Err(err).Msg("Export failed")
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Println("usage: tacticboard <command>")
	fmt.Println("  demo [x,y]        run a scripted editing session against the in-memory gateway")
	fmt.Println("  list <teamId>     list stored tactics for a team")
	fmt.Println("  export <tacticId> write the export document for a stored tactic")
}

func openGateway() (storage.Gateway, error) {
	gateway, err := storage.NewGateway(viper.GetString("storage.type"), logger)
	if err != nil {
		return nil, err
	}
	if err := gateway.Init(); err != nil {
		return nil, err
	}
	return gateway, nil
}

// runDemo seeds a squad, edits a football tactic and saves it through the
// async pipeline, then exports the stored document.
func runDemo(coords string) error {
	gateway := memory.New()
	const teamID = 1

	squad := make([]core.Player, 0, 9)
	for i := 1; i <= 9; i++ {
		squad = append(squad, core.Player{
			ID:           uint(i),
			DisplayName:  fmt.Sprintf("Demo Player %d", i),
			JerseyNumber: i,
		})
	}
	gateway.SeedRoster(teamID, squad)

	session, err := board.New(core.SportFootball)
	if err != nil {
		return err
	}

	roster, err := gateway.LoadRoster(teamID)
	if err != nil {
		return err
	}
	session.SetSquad(roster)

	if err := session.SelectFormation("4-3-3"); err != nil {
		return err
	}
	moves := 0
	session.MovePlayer(9, 45, 82)
	moves++
	session.MovePlayer(10, 150, -20) // clamps to the safe area
	moves++
	session.SelectSlot(9)

	if coords != "" {
		x, y, err := geo.ParseXY(coords)
		if err != nil {
			return err
		}
		session.MovePlayer(session.SelectedSlot(), x, y)
		moves++
	}

	doc, err := tactic.Snapshot(tactic.SnapshotRequest{
		CoachID:        1,
		TeamID:         teamID,
		Name:           "Demo High Press",
		PlayStyle:      "high-press",
		DefensiveShape: "high-line",
		TempoStyle:     "fast",
		Notes:          "Scripted demo tactic.",
	}, session.Placement())
	if err != nil {
		return err
	}

	influxMgr := influx.NewManager(logger)
	if err := influxMgr.Connect(); err == nil {
		defer influxMgr.Close()
	}

	saver := worker.NewSaver(gateway, logger)
	saver.SetTiming(influxMgr)
	saver.Start()
	defer saver.Stop()

	saves, exports := 0, 0
	saver.Enqueue(doc)
	result := <-saver.Results()
	if result.Err != nil {
		return result.Err
	}
	saves++
	logger.Info().
		Uint("tacticId", result.Stored.ID).
		Str("name", result.Stored.Name).
		Msg("Tactic saved")

	if err := writeExport(result.Stored); err != nil {
		return err
	}
	exports++

	influxMgr.WriteSessionMetrics(session.Sport(), teamID, moves, saves, exports)
	return nil
}

func runList(teamID uint) error {
	gateway, err := openGateway()
	if err != nil {
		return err
	}
	defer gateway.Close()

	docs, err := gateway.ListTactics(teamID)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n",
			doc.ID, doc.Sport, doc.FormationID, doc.Name,
			doc.UpdatedAt.Format(time.RFC3339))
	}
	logger.Info().Int("count", len(docs)).Uint("teamId", teamID).Msg("Listed tactics")
	return nil
}

func runExport(tacticID uint) error {
	gateway, err := openGateway()
	if err != nil {
		return err
	}
	defer gateway.Close()

	doc, err := gateway.GetTactic(tacticID)
	if err != nil {
		return err
	}
	return writeExport(doc)
}

func writeExport(doc core.Tactic) error {
	cfg := export.Config{
		OutputDir:      viper.GetString("export.outputDir"),
		CompressOutput: viper.GetBool("export.compressOutput"),
	}
	path, err := export.Write(cfg, export.Build(doc, time.Now()))
	if err != nil {
		return err
	}
	logger.Info().Str("path", path).Msg("Export written")
	return nil
}
