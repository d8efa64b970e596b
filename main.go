package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"todolist/internal/config"
	"todolist/internal/store"
	"todolist/internal/task"
	"todolist/internal/ui"
)

func main() {
	cfgPath := flag.String("config", "todolist.yml", "path to config file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	cfg := config.Default()
	if _, err := os.Stat(*cfgPath); err == nil {
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			logger.Fatal("load config", "path", *cfgPath, "err", err)
		}
	}
	config.FromEnv(cfg)

	st := store.New(cfg.StorePath(), logger)
	list := task.NewList(st.Load(), cfg.Categories, st)

	if err := ui.Run(list); err != nil {
		logger.Fatal("ui", "err", err)
	}
}
