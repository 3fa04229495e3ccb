package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/AlexK-Notable/mdview/internal/app"
	"github.com/AlexK-Notable/mdview/internal/config"
	"github.com/AlexK-Notable/mdview/internal/logger"
	"github.com/AlexK-Notable/mdview/internal/tools"
)

func main() {
	var editConfig bool

	flags := pflag.NewFlagSet("mdview", pflag.ExitOnError)
	flags.BoolVarP(&editConfig, "config", "c", false, "Open config file in editor")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mdview [flags] [files...]\n")
		fmt.Fprintln(os.Stderr, "\nLightweight markdown viewer.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	log := logger.NewConsoleLogger(logger.LevelFromEnv())

	cfg, err := config.Load()
	if err != nil {
		log.Warning("main", "config unreadable, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if editConfig {
		// Write the config first so the editor has a file to open.
		if err := config.Save(cfg); err != nil {
			log.Error("main", err, map[string]interface{}{
				"action": "save config",
			})
			os.Exit(1)
		}
		if err := tools.EditConfig(cfg); err != nil {
			log.Error("main", err, map[string]interface{}{
				"editor": cfg.Editor,
			})
			os.Exit(1)
		}
		return
	}

	application, err := app.NewApplication(cfg, log, flags.Args())
	if err != nil {
		log.Error("main", err, nil)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		log.Error("main", err, nil)
		os.Exit(1)
	}
}
