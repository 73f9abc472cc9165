//go:build !lambda

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string     { return strings.Join(*l, ",") }
func (l *stringList) Set(v string) error { *l = append(*l, v); return nil }

const usage = `Usage: gather-optimizer [flags] <data.min.json> <archive.json>

Positional arguments:
  data.min.json   Path to raw game data
  archive.json    Path to player archive

Flags:
`

// useColor decides whether the report is styled: "always", "never", or
// "auto" (styled when stdout is a terminal).
func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func main() {
	jsonOut := flag.Bool("json", false, "Output results as JSON")
	verbose := flag.Bool("verbose", false, "Print detailed progress to stderr")
	configPath := flag.String("config", "", "YAML config overriding defaults")
	specialists := flag.Bool("include-specialists", false, "Include chefs whose best category exceeds the specialist threshold")
	orderList := flag.String("order", "", "Comma-separated site names to staff first")
	interactive := flag.Bool("i", false, "Interactive mode: promote sites and re-run live")
	color := flag.String("color", "auto", "Styled output: auto, always, never")
	var promotes stringList
	flag.Var(&promotes, "promote", "Move a site one step up the priority order (repeatable)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	cfg.Verbose = cfg.Verbose || *verbose
	cfg.IncludeSpecialists = cfg.IncludeSpecialists || *specialists

	gd, err := LoadRawData(args[0], args[1], cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Loaded %d chefs, %d sites\n", len(gd.Chefs), len(gd.Sites))

	session := NewSession(gd, cfg)
	order, err := resolveOrder(session.Order(), *orderList, promotes, cfg.siteNames())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	session.SetOrder(order)

	styled := useColor(*color)
	if *interactive {
		if err := runTUI(session, styled); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	res := session.Run(false)
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(res)
	} else {
		fmt.Println(FormatResult(res, styled, -1))
	}
	if err := res.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}
