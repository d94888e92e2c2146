package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	cblog "github.com/charmbracelet/log"
	"github.com/darksworm/lumina/pkg/catalog"
	"github.com/darksworm/lumina/pkg/config"
	apperrors "github.com/darksworm/lumina/pkg/errors"
	"github.com/darksworm/lumina/pkg/model"
	"github.com/darksworm/lumina/pkg/theme"
	"github.com/darksworm/lumina/pkg/tui/clipboard"
)

// appVersion is printed by --version.
// Override at build time: go build -ldflags "-X main.appVersion=0.3.0"
var appVersion = "dev"

// Color definitions for help output
var (
	helpTitleColor     = lipgloss.Color("14")
	helpSectionColor   = lipgloss.Color("11")
	helpHighlightColor = lipgloss.Color("10")
	helpTextColor      = lipgloss.Color("15")
	helpDimColor       = lipgloss.Color("8")
)

// renderColorfulHelp creates the styled --help output
func renderColorfulHelp(fs *flag.FlagSet) string {
	var help strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(helpTitleColor).Bold(true)
	help.WriteString(titleStyle.Render("lumina"))
	help.WriteString(" - Product showcase for the terminal\n\n")

	sectionStyle := lipgloss.NewStyle().Foreground(helpSectionColor).Bold(true)
	help.WriteString(sectionStyle.Render("USAGE"))
	help.WriteString("\n  ")
	help.WriteString(lipgloss.NewStyle().Foreground(helpTextColor).Render("lumina"))
	help.WriteString(lipgloss.NewStyle().Foreground(helpDimColor).Render(" [options]"))
	help.WriteString("\n\n")

	help.WriteString(sectionStyle.Render("OPTIONS"))
	help.WriteString("\n")

	// Capture flag defaults to a buffer
	var flagBuf strings.Builder
	fs.SetOutput(&flagBuf)
	fs.PrintDefaults()

	for _, line := range strings.Split(flagBuf.String(), "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "  -") {
			parts := strings.Fields(line)
			help.WriteString("  ")
			help.WriteString(lipgloss.NewStyle().Foreground(helpHighlightColor).Render(parts[0]))
			if len(parts) > 1 {
				help.WriteString(" " + lipgloss.NewStyle().Foreground(helpTextColor).Render(strings.Join(parts[1:], " ")))
			}
			help.WriteString("\n")
		} else {
			help.WriteString(lipgloss.NewStyle().Foreground(helpDimColor).Render(line))
			help.WriteString("\n")
		}
	}

	help.WriteString("\n")
	help.WriteString(sectionStyle.Render("CONFIGURATION"))
	help.WriteString("\n  ")
	help.WriteString(lipgloss.NewStyle().Foreground(helpTextColor).Render(config.GetConfigPath()))
	help.WriteString("\n  ")
	help.WriteString(lipgloss.NewStyle().Foreground(helpDimColor).Render("LUMINA_CATALOG, LUMINA_THEME and LUMINA_LOG_LEVEL override it; a .env file is read first"))
	help.WriteString("\n")

	return help.String()
}

func main() {
	var (
		catalogFlag string
		pageFlag    string
		themeFlag   string
		showVersion bool
		showHelp    bool
	)
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&showVersion, "version", false, "Show version information and exit")
	fs.BoolVar(&showHelp, "help", false, "Show help information and exit")
	fs.StringVar(&catalogFlag, "catalog", "", "Catalog file path or http(s) URL (JSON or YAML)")
	fs.StringVar(&pageFlag, "page", "", "Start page (landing, catalog)")
	fs.StringVar(&themeFlag, "theme", "", fmt.Sprintf("UI theme preset (%s)", strings.Join(theme.Names(), ", ")))

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			showHelp = true
		} else {
			fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
			os.Exit(1)
		}
	}

	if showVersion {
		fmt.Println(appVersion)
		return
	}
	if showHelp {
		fmt.Print(renderColorfulHelp(fs))
		return
	}

	if err := prepareEnvironment(".env"); err != nil {
		logConfigError("Could not load .env", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logConfigError("Could not load config, using defaults", err)
		cfg = config.GetDefaultConfig()
	}

	// Flags override config
	if catalogFlag != "" {
		cfg.Catalog.Source = catalogFlag
	}
	if themeFlag != "" {
		cfg.Appearance.Theme = themeFlag
	}
	if pageFlag != "" {
		cfg.UI.StartPage = pageFlag
	}

	page, ok := model.ParsePage(cfg.UI.StartPage)
	if !ok {
		cblog.With("component", "app").Warn("Unknown start page, using landing", "page", cfg.UI.StartPage)
	}

	applyTheme(theme.FromConfig(cfg))
	clipboard.SetCopyCommand(cfg.Clipboard.CopyCommand)

	loader := catalog.NewLoader(catalog.NewSource(cfg.Catalog.Source))
	m := NewModel(page, loader)

	cblog.With("component", "app").Info("Starting storefront",
		"source", cfg.Catalog.Source, "page", page, "theme", cfg.Appearance.Theme)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// prepareEnvironment reads the .env file and then sets up logging, so a
// LUMINA_LOG_LEVEL from .env takes effect. The .env error is returned for
// logging once the file logger exists.
func prepareEnvironment(envPath string) error {
	err := config.LoadDotEnv(envPath)
	setupLogging()
	return err
}

func logConfigError(msg string, err error) {
	logger := cblog.With("component", "config")
	var le *apperrors.LumaError
	if stderrors.As(err, &le) {
		logger.Warn(msg, append([]interface{}{"err", le.Message}, le.LogFields()...)...)
		return
	}
	logger.Warn(msg, "err", err)
}

// logLevel maps LUMINA_LOG_LEVEL to a logger level, defaulting to info
func logLevel(v string) cblog.Level {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "DEBUG":
		return cblog.DebugLevel
	case "WARN":
		return cblog.WarnLevel
	case "ERROR":
		return cblog.ErrorLevel
	default:
		return cblog.InfoLevel
	}
}

// setupLogging configures logging to write to a file instead of stdout
func setupLogging() {
	// Create temp log file and expose path via env
	f, err := os.CreateTemp("", "lumina-*.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create temp log file: %v\n", err)
		return
	}
	_ = os.Setenv("LUMINA_LOG_FILE", f.Name())

	// Standard library log to same file (for any remaining log.Printf)
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	logger := cblog.NewWithOptions(f, cblog.Options{ReportTimestamp: true})
	logger.SetLevel(logLevel(os.Getenv("LUMINA_LOG_LEVEL")))
	cblog.SetDefault(logger)

	cblog.With("component", "app").Info("lumina started", "logFile", f.Name())
}
