package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/westmarch/internal/config"
	"github.com/nextlevelbuilder/westmarch/pkg/protocol"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check environment and configuration health",
		Run: func(cmd *cobra.Command, args []string) {
			runDoctor()
		},
	}
}

func runDoctor() {
	fmt.Println("westmarch doctor")
	fmt.Printf("  Version:  0.1.0 (protocol %d)\n", protocol.ProtocolVersion)
	fmt.Printf("  OS:       %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("  Go:       %s\n", runtime.Version())
	fmt.Println()

	// Config
	cfgPath := resolveConfigPath()
	fmt.Printf("  Config:   %s", cfgPath)
	if _, err := os.Stat(cfgPath); err != nil {
		fmt.Println(" (NOT FOUND, defaults apply)")
	} else {
		fmt.Println(" (OK)")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("  Config load error: %s\n", err)
		return
	}

	// Providers
	fmt.Println()
	fmt.Println("  Providers:")
	checkProvider("Gemini", cfg.Providers.Gemini.APIKey, cfg.Providers.Gemini.Model)
	checkProvider("OpenAI", cfg.Providers.OpenAI.APIKey, cfg.Providers.OpenAI.Model)

	// Gateway
	fmt.Println()
	fmt.Printf("  Gateway:  %s:%d", cfg.Gateway.Host, cfg.Gateway.Port)
	if cfg.Gateway.Token == "" {
		fmt.Println(" (no auth token)")
	} else {
		fmt.Println(" (token set)")
	}

	// Ledger
	fmt.Println()
	fmt.Printf("  Ledger:   %s", cfg.Memory.Path)
	switch _, err := os.Stat(cfg.Memory.Path); {
	case err == nil:
		fmt.Println(" (OK)")
	case os.IsNotExist(err):
		if dirWritable(filepath.Dir(cfg.Memory.Path)) {
			fmt.Println(" (will be created)")
		} else {
			fmt.Println(" (directory NOT WRITABLE)")
		}
	default:
		fmt.Printf(" (ERROR: %v)\n", err)
	}

	fmt.Println()
	fmt.Println("Doctor check complete.")
}

func checkProvider(name, apiKey, model string) {
	if apiKey != "" {
		masked := apiKey
		if len(masked) > 8 {
			masked = masked[:4] + strings.Repeat("*", len(masked)-8) + masked[len(masked)-4:]
		}
		fmt.Printf("    %-8s %s (model %s)\n", name+":", masked, model)
	} else {
		fmt.Printf("    %-8s (not configured, model %s)\n", name+":", model)
	}
}

func dirWritable(dir string) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
