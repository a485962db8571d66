// Package subprocess shells out for the System and Through actions. The
// caller is responsible for dropping and restoring terminal interactive mode
// around these calls; this package only spawns and plumbs files.
package subprocess

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

// Shell is the command interpreter. Overridable for tests.
var Shell = "/bin/sh"

// System runs cmd attached to the process stdio, the way the System action
// hands the terminal to the command.
func System(cmd string) error {
	c := exec.Command(Shell, "-c", cmd)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

// TempPair creates the two temp files the through-filter path redirects
// over. The cleanup function removes both and is safe to call on every exit
// path.
func TempPair() (in, out string, cleanup func(), err error) {
	dir := os.TempDir()
	in = filepath.Join(dir, "netmp-"+uuid.NewString())
	out = filepath.Join(dir, "netmp-"+uuid.NewString())
	fin, err := os.OpenFile(in, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return "", "", nil, err
	}
	fin.Close()
	fout, err := os.OpenFile(out, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		os.Remove(in)
		return "", "", nil, err
	}
	fout.Close()
	cleanup = func() {
		os.Remove(in)
		os.Remove(out)
	}
	return in, out, cleanup, nil
}

// Filter runs `( cmd ) <in >out`, the exact redirection the through path
// uses.
func Filter(cmd, in, out string) error {
	c := exec.Command(Shell, "-c", fmt.Sprintf("( %s ) <%s >%s", cmd, in, out))
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("filter failed: %w", err)
	}
	return nil
}
