package main

import (
	"event-calendar/contract"
	"event-calendar/domain"
	"event-calendar/internal"
	"event-calendar/render"
	"event-calendar/services"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the configuration, plays the calendar script and prints the resulting calendar.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	format, err := internal.ParseOutputFormat(config.OutputFormat)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Controller
	clock := contract.ClockFunc(time.Now)
	order := domain.QueryOrderFor(config.SortQueries)
	controller := services.NewController(log, clock,
		services.WithCapacityPolicy(domain.CapacityPolicyFor(config.EnforceCapacity)),
		services.WithParticipantOrder(order),
		services.WithEventOrder(order),
	)

	// 3. Script
	script, closeScript, err := openScript(config.ScriptPath)
	if err != nil {
		return err
	}
	defer closeScript()

	instructions, err := internal.ParseScript(script, clock.Now())
	if err != nil {
		return err
	}
	log.Debug("Script loaded", "instructions", len(instructions), "path", config.ScriptPath)

	// 4. Play & Report
	printer := newPrinter(os.Stdout, config.Colours)
	for _, outcome := range internal.Play(controller, instructions) {
		printer.outcome(outcome, controller)
	}

	fmt.Fprintln(os.Stdout)
	switch format {
	case internal.JSONFormat:
		return render.JSON(os.Stdout, controller.Events())
	default:
		render.EventsTable(os.Stdout, controller.Events())
	}
	return nil
}

func openScript(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open script %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
