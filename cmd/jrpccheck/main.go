// ABOUTME: Entry point for jrpccheck, a JSON-RPC 2.0 message validator
// ABOUTME: Classifies messages from files or stdin and runs YAML conformance cases

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/vitiral/jrpc/internal/check"
	"github.com/vitiral/jrpc/internal/config"
	"github.com/vitiral/jrpc/internal/logger"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to config file")
	verbose := flag.Bool("v", false, "enable verbose logging")
	plain := flag.Bool("plain", false, "disable styled output")
	casesPath := flag.String("cases", "", "run a YAML conformance case file")
	expect := flag.String("expect", "", "expected shape: request, response, or auto")
	strictBand := flag.Bool("strict-band", false, "fail error codes outside the reserved band")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Default()
	if _, err := os.Stat(*configPath); err == nil {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("failed to load config: %v", err)
			os.Exit(2)
		}
		cfg = loaded
		logger.Debug("loaded config from %s", *configPath)
	}

	// Flags override the config file.
	if *verbose || cfg.Output.Verbose {
		logger.SetVerbose(true)
	}
	if *plain {
		cfg.Output.Plain = true
	}
	if *expect != "" {
		cfg.Check.Expect = *expect
	}
	if *strictBand {
		cfg.Check.StrictBand = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("%v", err)
		os.Exit(2)
	}

	opts := check.Options{Expect: cfg.Check.Expect, StrictBand: cfg.Check.StrictBand}

	if *casesPath != "" {
		os.Exit(runCases(*casesPath, opts, cfg.Output.Plain))
	}
	os.Exit(runMessages(flag.Args(), opts, cfg.Output.Plain))
}

// runMessages classifies each named file, or stdin when no files are
// given, and returns the process exit status.
func runMessages(paths []string, opts check.Options, plain bool) int {
	type input struct {
		name string
		data []byte
	}
	var inputs []input

	if len(paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("reading stdin: %v", err)
			return 2
		}
		inputs = append(inputs, input{name: "<stdin>", data: data})
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("%v", err)
			return 2
		}
		inputs = append(inputs, input{name: path, data: data})
	}

	status := 0
	for _, in := range inputs {
		v := check.Message(in.data, opts)
		fmt.Println(renderVerdict(in.name, v, plain))
		if !v.OK {
			status = 1
		}
	}
	return status
}

// runCases executes a YAML conformance file and returns the exit status.
func runCases(path string, opts check.Options, plain bool) int {
	cases, err := check.LoadCases(path)
	if err != nil {
		logger.Error("%v", err)
		return 2
	}
	logger.Debug("loaded %d cases from %s", len(cases), path)

	failed := 0
	for _, r := range check.Run(cases, opts) {
		if r.Pass {
			fmt.Printf("%s %s\n", verdictLabel(true, plain), r.Case.Name)
			continue
		}
		failed++
		fmt.Printf("%s %s: %s\n", verdictLabel(false, plain), r.Case.Name, r.Reason)
	}

	fmt.Printf("%d/%d cases passed\n", len(cases)-failed, len(cases))
	if failed > 0 {
		return 1
	}
	return 0
}

func renderVerdict(name string, v check.Verdict, plain bool) string {
	kind := string(v.Kind)
	if !plain {
		kind = kindStyle.Render(kind)
	}
	return fmt.Sprintf("%s %s: %s (%s)", verdictLabel(v.OK, plain), name, kind, v.Detail)
}

func verdictLabel(ok, plain bool) string {
	switch {
	case ok && plain:
		return "PASS"
	case ok:
		return passStyle.Render("PASS")
	case plain:
		return "FAIL"
	}
	return failStyle.Render("FAIL")
}
