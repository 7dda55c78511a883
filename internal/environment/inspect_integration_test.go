// SPDX-License-Identifier: MPL-2.0

package environment

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcexec "github.com/testcontainers/testcontainers-go/exec"

	"github.com/MohamedXi/hopla-cli/internal/shell"
	"github.com/MohamedXi/hopla-cli/internal/testutil"
)

const inspectImage = "node:18-alpine"

// containerRunner executes gateway commands inside a running container.
type containerRunner struct {
	container testcontainers.Container
}

func (r *containerRunner) Run(ctx context.Context, cmd shell.Command, opts shell.RunOptions) *shell.Result {
	argv := append([]string{cmd.Program}, cmd.Args...)
	code, reader, err := r.container.Exec(ctx, argv, tcexec.Multiplexed())
	if err != nil {
		return shell.NewErrorResult(shell.ExitFailure, err)
	}
	out, err := io.ReadAll(reader)
	if err != nil {
		return shell.NewErrorResult(shell.ExitFailure, err)
	}
	return &shell.Result{ExitCode: shell.ExitCode(code), Stdout: string(out), Silent: opts.Silent}
}

// checkTestcontainersAvailable reports whether a container provider can be reached.
func checkTestcontainersAvailable() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		return false
	}
	defer provider.Close()
	return true
}

func TestInspect_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if !checkTestcontainersAvailable() {
		t.Skip("skipping inspector integration test: container engine not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: inspectImage,
			Cmd:   []string{"sleep", "infinity"},
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	log := testutil.NewLogRecorder()
	New(&containerRunner{container: container}, log).Inspect(ctx, Settings{
		Node:        "18",
		Npm:         "10",
		NpmRegistry: "https://registry.npmjs.org/",
	})

	infos := log.Messages(testutil.LevelInfo)
	require.Len(t, infos, 3)
	assert.True(t, strings.HasPrefix(infos[0], "Node.js version: v18."), infos[0])
	assert.Regexp(t, `^NPM version: \d+\.\d+\.\d+$`, infos[1])
	assert.Equal(t, "NPM registry: https://registry.npmjs.org/", infos[2])
	assert.Equal(t, []string{"Environment check completed."}, log.Messages(testutil.LevelSuccess))
}
