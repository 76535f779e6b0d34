package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/pagedots/config"
	"github.com/lixenwraith/pagedots/feedback"
	"github.com/lixenwraith/pagedots/locale"
	"github.com/lixenwraith/pagedots/pagination"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'pagedots'
func tracer() tracing.Trace {
	return tracing.Select("pagedots")
}

var (
	configFlag   = flag.String("config", "", "HCL configuration file")
	modeFlag     = flag.String("mode", "view", "Mode: view, png, repl")
	outFlag      = flag.String("out", "pagedots.png", "Output file for png mode")
	traceFlag    = flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	logFlag      = flag.String("log", "", "Log file for view mode, empty discards")
	countFlag    = flag.Int("count", 5, "Number of items without -config")
	localeFlag   = flag.String("locale", "", "Locale deciding direction, e.g. ar or en-US")
	verticalFlag = flag.Bool("vertical", false, "Lay dots out in a column")
	soundFlag    = flag.Bool("sound", false, "Play feedback sounds")
)

func main() {
	initDisplay()
	flag.Parse()

	if err := setupTracing(*traceFlag); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	file, err := loadFile()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}

	player := feedback.Player(feedback.NopPlayer{})
	if *soundFlag || file.Sound {
		if sp, err := feedback.NewSpeakerPlayer(feedback.DefaultSettings()); err == nil {
			player = sp
			defer sp.Close()
		} else {
			pterm.Info.Printf("Audio initialization failed: %v (continuing without audio)\n", err)
		}
	}

	a := newApp(file, player)

	switch *modeFlag {
	case "view":
		runView(a, *logFlag)
	case "png":
		if err := writePNG(a, *outFlag); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		pterm.Info.Printf("wrote %s\n", *outFlag)
	case "repl":
		if err := runREPL(a); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(4)
		}
	default:
		pterm.Error.Printf("unknown mode %q\n", *modeFlag)
		os.Exit(2)
	}
}

// loadFile reads -config or assembles a file from flags
func loadFile() (*config.File, error) {
	if *configFlag != "" {
		return config.Load(*configFlag)
	}

	cfg := pagination.DefaultConfig(*countFlag, 0)
	cfg.Vertical = *verticalFlag
	cfg.Tappable = true
	if *localeFlag != "" {
		rtl, err := locale.ParseRTL(*localeFlag)
		if err != nil {
			return nil, err
		}
		cfg.RTL = rtl
	}
	return &config.File{Pagination: cfg, Locale: *localeFlag, Sound: *soundFlag}, nil
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.pagedots":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("error configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " •  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// crashReport prints a panic after the terminal has been restored
func crashReport(r any) {
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPAGEDOTS CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}
