package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/amantus-ai/vibedit/pkg/display"
	"github.com/amantus-ai/vibedit/pkg/editor"
	"github.com/amantus-ai/vibedit/pkg/prompt"
)

var (
	flagReadOnly bool
	flagNoConfig bool
	flagUTF8     bool
	flagMacro    string
	flagPrefsDir string
)

var rootCmd = &cobra.Command{
	Use:   "vibedit [files...]",
	Short: "A terminal text editor",
	Long:  "vibedit is a modal terminal text editor with clips, macros, undo chains and syntax-aware editing.",
	RunE:  run,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&flagReadOnly, "read-only", false, "open files read-only")
	f.BoolVar(&flagNoConfig, "no-config", false, "skip auto-prefs")
	f.BoolVar(&flagUTF8, "utf8", false, "force UTF-8 I/O")
	f.StringVar(&flagMacro, "macro", "", "macro to execute on startup")
	f.StringVar(&flagPrefsDir, "prefs-dir", defaultPrefsDir(), "directory holding auto-prefs")
	f.SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(name)
	})
}

func defaultPrefsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.vibedit"
}

func run(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && os.Getenv("VIBEDIT_FORCE_TTY") == "" {
		return fmt.Errorf("stdout is not a terminal")
	}

	d := display.NewTerm()
	p := prompt.Prompter(&terminalPrompter{d: d})
	e := editor.New(d, p)
	e.IOUTF8 = flagUTF8
	if !flagNoConfig {
		e.PrefsDir = flagPrefsDir
	}

	if err := e.EnableWatcher(); err != nil {
		log.Printf("[WARN] File watcher unavailable: %v", err)
	}
	defer e.CloseWatcher()

	// The signal handler only flips the cooperative stop flag; every long
	// operation polls it.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		for range sigCh {
			e.Stop()
		}
	}()
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	go func() {
		for range winch {
			d.Resize()
		}
	}()

	for i, path := range args {
		b := e.Current()
		if i > 0 {
			e.Do(b, editor.ActNewDoc, -1, nil)
			b = e.Current()
		}
		name := path
		e.Do(b, editor.ActOpen, 0, &name)
		if flagReadOnly {
			e.Do(b, editor.ActReadOnly, 1, nil)
		}
	}

	if flagMacro != "" {
		name := flagMacro
		e.Do(e.Current(), editor.ActMacro, -1, &name)
	}

	if err := d.EnterInteractive(); err != nil {
		return err
	}
	defer d.LeaveInteractive()

	return mainLoop(e, d)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
