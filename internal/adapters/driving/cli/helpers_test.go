package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/calendlam/calendlam/internal/adapters/driven/render/html"
	"github.com/calendlam/calendlam/internal/adapters/driven/storage/memory"
	"github.com/calendlam/calendlam/internal/core/domain"
	"github.com/calendlam/calendlam/internal/core/ports/driven"
	"github.com/calendlam/calendlam/internal/core/services"
	"github.com/calendlam/calendlam/internal/locale"
)

// testEnv holds the in-memory wiring used by command tests.
type testEnv struct {
	config   *memory.ConfigStore
	layouts  *memory.LayoutStore
	renderer driven.PageRenderer
	outDir   string
}

// setupTestServices replaces the production wiring with in-memory stores
// and an output directory under t.TempDir.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		config:  memory.NewConfigStore(),
		layouts: memory.NewLayoutStore(),
		outDir:  t.TempDir(),
	}
	require.NoError(t, env.config.Set("output.dir", env.outDir))

	renderer, err := html.NewRenderer()
	require.NoError(t, err)
	env.renderer = renderer

	origSetup := setupServices
	setupServices = func() error {
		catalog := locale.Default()
		configStore = env.config
		settingsService = services.NewSettingsService(env.config, catalog)
		bookletService = services.NewBookletService(catalog, env.layouts)
		pageRenderer = env.renderer
		return nil
	}

	t.Cleanup(func() {
		setupServices = origSetup
		configStore = nil
		settingsService = nil
		bookletService = nil
		pageRenderer = nil
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return env
}

// failingRenderer renders pages until the failAt-th call, which fails.
type failingRenderer struct {
	driven.PageRenderer
	failAt int
	calls  int
}

func (r *failingRenderer) Render(ctx context.Context, page domain.ImposedPage) ([]byte, error) {
	r.calls++
	if r.calls == r.failAt {
		return nil, errors.New("disk full")
	}
	return r.PageRenderer.Render(ctx, page)
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its children to its default,
// since cobra keeps parsed values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}
