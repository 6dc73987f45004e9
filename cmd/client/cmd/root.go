package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"employees/internal/app/client"
	"employees/internal/config"
	"employees/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

const (
	defaultServer  = "localhost:8000"
	defaultTimeout = 30 * time.Second
)

type app struct {
	v      *viper.Viper
	client *client.Client
}

// NewRootCmd builds employeesctl. The server address and timeout come from
// flags or EMPLOYEES_SERVER / EMPLOYEES_TIMEOUT.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "employeesctl",
		Short: "employeesctl - command line client for the employees API",
		Long: `employeesctl lists, reads, creates, updates and deletes employees
on a running employees server.`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	flags := root.PersistentFlags()
	flags.String("server", defaultServer, "server address (host:port or URL)")
	flags.Duration("timeout", defaultTimeout, "request timeout")
	flags.Bool("debug", false, "log requests and responses")

	a.v.SetEnvPrefix("employees")
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		newListCmd(a),
		newGetCmd(a),
		newCreateCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newHealthCmd(a),
	)

	return root
}

func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	timeout := a.v.GetDuration("timeout")
	if timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", timeout)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if a.v.GetBool("debug") {
		log = logger.New(config.EnvLocal)
	}

	a.client = client.New(a.v.GetString("server"), timeout, log)
	return nil
}
