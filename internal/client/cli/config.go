package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/omnicard/internal/config"
)

func (c *Cli) newConfigCommand() *cobra.Command {
	var (
		write  bool
		output string
	)

	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Print the effective configuration",
		Long:        "Print the effective configuration as YAML. With --write it is saved to the user config file, or to --output.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{noStoreAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if write || output != "" {
				return c.runWriteConfig(output)
			}
			return c.runShowConfig()
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "save the effective configuration")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to save the configuration to")

	return cmd
}

func (c *Cli) runShowConfig() error {
	data, err := c.cfg.Marshal()
	if err != nil {
		return err
	}
	if _, err := c.io.Write(data); err != nil {
		return fmt.Errorf("failed to print config: %w", err)
	}
	return nil
}

func (c *Cli) runWriteConfig(path string) error {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	if err := config.WriteFile(c.cfg, path); err != nil {
		return err
	}

	c.io.Printf("✓ Config written to %s\n", path)
	return nil
}
