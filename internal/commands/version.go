package commands

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/spf13/pflag"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/service"
)

// Version is the fallback application version, overridable with
// -ldflags "-X todolist/internal/commands.Version=...". A module version
// stamped into the binary by go install takes precedence.
var Version = "0.1.0"

// currentVersion reports the stamped module version from info, or Version
// when the binary was built from a local checkout.
func currentVersion(info *debug.BuildInfo, ok bool) string {
	if !ok || info == nil {
		return Version
	}
	switch v := info.Main.Version; v {
	case "", "(devel)":
		return Version
	default:
		return v
	}
}

func init() {
	Register(&VersionCmd{})
}

// VersionCmd implements the version command.
type VersionCmd struct{}

func (c *VersionCmd) Name() string      { return "version" }
func (c *VersionCmd) Aliases() []string { return nil }
func (c *VersionCmd) Synopsis() string  { return "Print version" }
func (c *VersionCmd) Usage() string     { return "todolist version" }
func (c *VersionCmd) NeedsUnlock() bool { return false }

func (c *VersionCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, env *Env, args []string) int {
	fmt.Fprintf(env.Out.Writer(), "todolist %s\n", currentVersion(debug.ReadBuildInfo()))
	return exitcode.Success
}
