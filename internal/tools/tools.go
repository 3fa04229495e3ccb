// Package tools launches the user-configured external programs.
package tools

import (
	"os"
	"os/exec"

	"github.com/AlexK-Notable/mdview/internal/config"
)

func editorArgv(cfg config.Config, configPath string) []string {
	return []string{cfg.Editor, configPath}
}

func terminalArgv(cfg config.Config, configPath string) []string {
	return []string{cfg.Terminal, "-e", cfg.Editor, configPath}
}

// EditConfig opens the config file in the configured editor and waits for
// it to exit. Used by the --config CLI path, where the editor takes over
// the terminal.
func EditConfig(cfg config.Config) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	argv := editorArgv(cfg, path)
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// EditConfigInTerminal spawns the configured terminal emulator running the
// editor on the config file, detached from the viewer.
func EditConfigInTerminal(cfg config.Config) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	argv := terminalArgv(cfg, path)
	cmd := exec.Command(argv[0], argv[1:]...)
	return cmd.Start()
}
