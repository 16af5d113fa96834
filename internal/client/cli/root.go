package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/iudanet/omnicard/internal/client/storage"
	"github.com/iudanet/omnicard/internal/client/storage/boltdb"
	"github.com/iudanet/omnicard/internal/client/storage/sqlite"
	"github.com/iudanet/omnicard/internal/client/wallet"
	"github.com/iudanet/omnicard/internal/config"
	"github.com/iudanet/omnicard/internal/logging"
	"github.com/iudanet/omnicard/internal/reveal"
	"github.com/iudanet/omnicard/internal/validation"
)

// BuildInfo is set via ldflags during build
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// noStoreAnnotation marks commands that run without opening the database
const noStoreAnnotation = "omnicard/no-store"

// NewRootCommand builds the omnicard command tree
func (c *Cli) NewRootCommand(info BuildInfo) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "omnicard",
		Short:         "OmniCard keeps payment cards in a local wallet",
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd, configFile)
		},
	}

	root.SetOut(c.io)
	root.SetVersionTemplate(renderVersion(info))

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "path to config file (default: user config dir or ./omnicard.yaml)")
	flags.String("db", "", "path to local database (default: omnicard.db)")
	flags.String("driver", "", "storage driver: bolt or sqlite (default: bolt)")
	flags.String("log-level", "", "log level: debug, info, warn, error (default: warn)")
	flags.String("log-format", "", "log format: text or json (default: text)")
	flags.String("number-rule", "", "card number rule: nonempty or exact16 (default: nonempty)")

	root.AddCommand(
		c.newAddCommand(),
		c.newListCommand(),
		c.newGetCommand(),
		c.newDeleteCommand(),
		c.newNetworkCommand(),
		c.newModeCommand(),
		c.newTUICommand(),
		c.newConfigCommand(),
	)

	return root
}

// setup загружает конфигурацию и, если команде нужно хранилище, открывает его
func (c *Cli) setup(cmd *cobra.Command, configFile string) error {
	cfg, err := config.Load(cmd, configFile)
	if err != nil {
		return err
	}
	c.cfg = cfg

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return err
	}
	c.logger = logger
	c.formatter = reveal.Formatter{MaskName: cfg.Display.MaskName}

	if cmd.Annotations[noStoreAnnotation] != "" {
		return nil
	}

	ctx := cmd.Context()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.store = store

	logger.DebugContext(ctx, "database opened", "driver", cfg.Driver, "path", cfg.DB)

	validator := validation.NewValidator(cfg.NumberRule())
	c.wallet = wallet.NewService(store, store, validator, logger)

	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := sqlite.New(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		s, err := boltdb.New(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

func renderVersion(info BuildInfo) string {
	var buf bytes.Buffer
	tmpl := template.Must(template.New("version").Parse(versionTemplate))
	if err := tmpl.Execute(&buf, info); err != nil {
		return info.Version + "\n"
	}
	return buf.String()
}
