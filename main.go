package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/adrg/xdg"
	t "github.com/darrenburns/terma"
)

// Set at build time by GoReleaser via ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	var staged bool
	var showVersion bool
	var viewMode string
	var sidebarVisible bool
	var themeName string
	var showSymbols bool
	var configPath string
	var noConfig bool

	flag.BoolVar(&staged, "staged", false, "start focused on staged changes")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&viewMode, "view", "unified", "default view mode: unified or split")
	flag.BoolVar(&sidebarVisible, "sidebar", true, "show sidebar on startup")
	flag.StringVar(&themeName, "theme", t.ThemeNameCatppuccin, "default theme")
	flag.BoolVar(&showSymbols, "show-symbols", false, "show +/- symbols by default")
	flag.StringVar(&configPath, "config", "", "path to YAML config file")
	flag.BoolVar(&noConfig, "no-config", false, "disable config file loading")
	flag.Parse()

	explicitlySetFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		explicitlySetFlags[f.Name] = true
	})

	if showVersion {
		fmt.Printf("git-diff-viewer %s (%s)\n", version, commit)
		os.Exit(0)
	}

	cfg, err := loadStartupConfig(xdg.ConfigHome, configPath, noConfig)
	if err != nil {
		log.Fatal(err)
	}

	flagValues := startupFlagValues{
		ViewMode:       viewMode,
		SidebarVisible: sidebarVisible,
		ThemeName:      themeName,
		ShowSymbols:    showSymbols,
	}
	flagValues = applyStartupConfig(flagValues, cfg, explicitlySetFlags)

	initialState, err := startupInitialStateFromFlags(flagValues.ViewMode, flagValues.SidebarVisible, flagValues.ThemeName, flagValues.ShowSymbols)
	if err != nil {
		log.Fatal(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	provider, cleanup, err := startupDiffProvider(cwd, os.Stdin, stdinIsPiped(), openControllingTTY, func(file *os.File) {
		os.Stdin = file
	})
	if err != nil {
		cleanup()
		log.Fatal(err)
	}
	defer cleanup()

	app := NewViewer(provider, staged, initialState)
	if err := t.Run(app); err != nil {
		log.Fatal(err)
	}
}

// startupDiffProvider picks the diff source for this run. A piped stdin
// means the caller handed us a diff directly, in which case terminal
// input has to be reopened from the tty so the UI still receives keys.
func startupDiffProvider(workDir string, stdin io.Reader, piped bool, openTTY func() (*os.File, *os.File, error), setStdin func(*os.File)) (DiffProvider, func(), error) {
	noop := func() {}
	if !piped {
		return GitDiffProvider{WorkDir: workDir}, noop, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, noop, fmt.Errorf("read piped stdin: %w", err)
	}

	ttyIn, ttyOut, err := openTTY()
	if err != nil {
		return nil, noop, fmt.Errorf("reopen terminal input after reading piped stdin: %w", err)
	}
	setStdin(ttyIn)

	cleanup := func() {
		if ttyIn != nil {
			ttyIn.Close()
		}
		if ttyOut != nil {
			ttyOut.Close()
		}
	}
	return StdinDiffProvider{WorkDir: workDir, Diff: string(data)}, cleanup, nil
}

func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func openControllingTTY() (*os.File, *os.File, error) {
	in, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
	if err != nil {
		return nil, nil, err
	}
	out, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		in.Close()
		return nil, nil, err
	}
	return in, out, nil
}
