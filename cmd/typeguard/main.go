package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/funvibe/typeguard/internal/audit"
	"github.com/funvibe/typeguard/internal/config"
	"github.com/funvibe/typeguard/internal/inspect"
	"github.com/funvibe/typeguard/internal/term"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <command> [args]

Commands:
  validate [file]      validate a typeguard.yaml (default: ./%s)
  audit [-n N] [file]  show recent violations from the audit database
  inspect <package>    suggest checker annotations for a Go package
  help                 show this help
`, os.Args[0], config.ConfigFileName)
}

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load(config.ConfigFileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	term.SetMode(cfg.Color)

	switch os.Args[1] {
	case "help", "-help", "--help":
		usage()
	case "validate":
		handleValidate(os.Args[2:])
	case "audit":
		handleAudit(cfg, os.Args[2:])
	case "inspect":
		handleInspect(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func handleValidate(args []string) {
	path := config.ConfigFileName
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", term.Red("invalid:"), err)
		os.Exit(1)
	}

	fmt.Printf("%s %s\n", term.Green("ok:"), path)
	state := "enabled"
	if !cfg.IsEnabled() {
		state = "disabled"
	}
	fmt.Printf("  checking: %s\n", state)
	if cfg.Audit.Enabled {
		fmt.Printf("  audit: %s\n", cfg.Audit.Path)
	} else {
		fmt.Println("  audit: off")
	}
}

func handleAudit(cfg *config.Config, args []string) {
	limit := 20
	path := cfg.Audit.Path
	for i := 0; i < len(args); i++ {
		if args[i] == "-n" && i+1 < len(args) {
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: -n expects a number, got %q\n", args[i+1])
				os.Exit(1)
			}
			limit = n
			i++
			continue
		}
		path = args[i]
	}

	store, err := audit.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	violations, err := store.Recent(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	total, err := store.Count()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if total == 0 {
		fmt.Println(term.Green("no violations recorded"))
		return
	}

	fmt.Printf("%s (%d total, showing %d)\n", term.Bold("violations"), total, len(violations))
	for _, v := range violations {
		fmt.Printf("  %s  %s %s\n", v.At.Format("2006-01-02 15:04:05"), term.Yellow(v.Method), v.Kind)
		fmt.Printf("    expected %s, got %s\n", v.Expected, term.Red(v.Observed))
	}
}

func handleInspect(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s inspect <package>\n", os.Args[0])
		os.Exit(1)
	}

	res, err := inspect.Package(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s %s (%d exported types)\n", term.Bold(res.PkgName), res.PkgPath, len(res.Types))
	for _, line := range res.Suggestions() {
		fmt.Printf("  %s\n", line)
	}
}
