package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/homeowner/internal/cli"
	"github.com/dmitrijs2005/homeowner/internal/common"
	"github.com/dmitrijs2005/homeowner/internal/config"
	"github.com/dmitrijs2005/homeowner/internal/logging"
	"github.com/dmitrijs2005/homeowner/internal/rooms"
	"github.com/dmitrijs2005/homeowner/internal/services"
	"github.com/spf13/cobra"
)

// appEnv is the dependency graph shared by subcommands.
type appEnv struct {
	cfg     *config.Config
	log     logging.Logger
	store   *services.AccountStore
	session *services.SessionManager
}

var appCtx *appEnv

func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and always releases what PersistentPreRunE opened.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if terr := teardown(); err == nil {
		err = terr
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "homeowner",
		Short:        "Manage HomeOwner accounts and the floor plan",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			appCtx = env
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := cli.NewApp(appCtx.session, rooms.NewYAMLStore(appCtx.cfg.DataDir), appCtx.log,
				cmd.InOrStdin(), cmd.OutOrStdout())
			return app.Run(cmd.Context())
		},
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(accountCmd(), loginCmd())
	return root
}

func setup(cmd *cobra.Command) (*appEnv, error) {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Logging(), cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	repo, err := cfg.Repository()
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	open := services.OpenAccountStore
	if cfg.Recover {
		open = services.RecoverAccountStore
	}
	store, err := open(ctx, repo, log)
	if errors.Is(err, common.ErrCorruptState) {
		return nil, fmt.Errorf("%w (run again with --recover to move it aside and start empty)", err)
	}
	if err != nil {
		return nil, err
	}

	return &appEnv{
		cfg:     cfg,
		log:     log,
		store:   store,
		session: services.NewSessionManager(store, log),
	}, nil
}

func teardown() error {
	if appCtx == nil {
		return nil
	}
	err := appCtx.store.Close()
	if z, ok := appCtx.log.(*logging.ZapLogger); ok {
		_ = z.Sync()
	}
	appCtx = nil
	return err
}
