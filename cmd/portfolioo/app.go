package main

import (
	"fmt"
	"log"

	"Portfolioo/internal/cash"
	"Portfolioo/internal/config"
	"Portfolioo/internal/holdings"
	"Portfolioo/internal/recorder"
	"Portfolioo/internal/scheduler"
)

// app bundles what every subcommand needs.
type app struct {
	cfg   *config.Config
	sched *scheduler.Scheduler
	rec   recorder.Recorder
}

func openApp() (*app, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	cm, err := cash.NewManager(cfg.Cash.StateFile, cfg.Cash.Initial)
	if err != nil {
		return nil, fmt.Errorf("init cash manager: %w", err)
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	col := holdings.NewCollector(holdings.NewFileSource(cfg.Holdings.File))
	return &app{
		cfg:   cfg,
		sched: scheduler.NewScheduler(col, cm, rec),
		rec:   rec,
	}, nil
}

func (a *app) Close() {
	if err := a.rec.Close(); err != nil {
		log.Printf("[WARN] close recorder: %v", err)
	}
}
