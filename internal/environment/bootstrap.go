// SPDX-License-Identifier: MPL-2.0

package environment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/MohamedXi/hopla-cli/internal/issue"
	"github.com/MohamedXi/hopla-cli/internal/shell"
)

func (o *Orchestrator) bootstrapAsdf(ctx context.Context, _ Settings) error {
	installed, err := afero.DirExists(o.fs, o.asdf.Dir)
	if err != nil {
		o.log.Warning(fmt.Sprintf("Could not check %s, installing asdf anyway: %v", o.asdf.Dir, err))
	}
	if installed {
		o.log.Info("asdf already installed")
		return nil
	}

	o.log.Info("Installing asdf for version management...")
	clone := shell.NewCommand("git", "clone", o.asdf.Repository, o.asdf.Dir, "--branch", o.asdf.Version)
	if err := o.exec(ctx, StepBootstrapAsdf, issue.AsdfInstallFailedId, clone, "Failed to install asdf!"); err != nil {
		return err
	}

	if o.shellRC != "" {
		if err := o.sourceAsdfFromShellRC(); err != nil {
			o.log.Warning(fmt.Sprintf("Could not update %s, source %s manually: %v",
				o.shellRC, filepath.Join(o.asdf.Dir, "asdf.sh"), err))
		}
	}

	o.log.Success("asdf installed successfully")
	return nil
}

// asdfShellLines returns the startup lines that load asdf and its bash completions.
func (o *Orchestrator) asdfShellLines() []string {
	return []string{
		". " + shell.Quote(filepath.Join(o.asdf.Dir, "asdf.sh")),
		". " + shell.Quote(filepath.Join(o.asdf.Dir, "completions", "asdf.bash")),
	}
}

// sourceAsdfFromShellRC appends the asdf lines missing from the rc file.
// Running it twice leaves the file unchanged.
func (o *Orchestrator) sourceAsdfFromShellRC() error {
	existing, err := afero.ReadFile(o.fs, o.shellRC)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	present := make(map[string]bool)
	for _, line := range strings.Split(string(existing), "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var buf bytes.Buffer
	if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
		buf.WriteByte('\n')
	}
	missing := 0
	for _, line := range o.asdfShellLines() {
		if present[line] {
			continue
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
		missing++
	}
	if missing == 0 {
		return nil
	}

	f, err := o.fs.OpenFile(o.shellRC, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
