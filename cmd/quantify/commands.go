package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/alexshd/quantify"
	"github.com/alexshd/quantify/catalog"
)

type rootOptions struct {
	verbose bool
	noColor bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "quantify",
		Short:        "Inspect and verify the standard unit catalog",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
				Level:      level,
				TimeFormat: "15:04:05",
				NoColor:    opts.noColor,
			}))
			quantify.SetLogger(logger)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored log output")

	cmd.AddCommand(
		newCatalogCommand(),
		newTableCommand(),
		newVerifyCommand(),
	)
	return cmd
}

func buildCatalog() (*catalog.Catalog, error) {
	c, err := catalog.New()
	if err != nil {
		quantify.Logger().Error("catalog construction failed", "error", err)
		return nil, err
	}
	return c, nil
}

func selectGroups(c *catalog.Catalog, name string) ([]catalog.Group, error) {
	if name == "" {
		return c.Groups(), nil
	}
	g, ok := c.Group(name)
	if !ok {
		return nil, fmt.Errorf("unknown group %q", name)
	}
	return []catalog.Group{g}, nil
}

func newCatalogCommand() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog units with their dimensions, factor and offset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCatalog()
			if err != nil {
				return err
			}
			groups, err := selectGroups(c, group)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "GROUP\tNAME\tSYMBOL\tDIMENSIONS\tFACTOR\tOFFSET")
			for _, g := range groups {
				for _, u := range g.Units {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
						g.Name, u.Name(), u.Symbol(), u.Dimensions(),
						strconv.FormatFloat(u.Factor(), 'g', -1, 64),
						strconv.FormatFloat(u.Offset(), 'g', -1, 64))
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "only list this group (e.g. length)")
	return cmd
}

func newTableCommand() *cobra.Command {
	var (
		group string
		value float64
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Convert a value of a group's first unit into every compatible unit of the group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCatalog()
			if err != nil {
				return err
			}
			g, ok := c.Group(group)
			if !ok {
				return fmt.Errorf("unknown group %q", group)
			}

			source := quantify.NewQuantity(value, g.Units[0])
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t=\n", source)
			for _, u := range g.Units[1:] {
				converted, err := source.ConvertTo(u)
				var incompatible *quantify.ErrIncompatibleUnits
				if errors.As(err, &incompatible) {
					quantify.Logger().Debug("skipping incompatible unit", "unit", u.Name(), "error", err)
					continue
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "\t%s\t(%s)\n", converted, u.Name())
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "group to tabulate (e.g. temperature)")
	cmd.Flags().Float64Var(&value, "value", 1, "value expressed in the group's first unit")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the unit algebra laws over the whole catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildCatalog()
			if err != nil {
				return err
			}
			if err := c.Verify(catalog.DefaultVerifyConfig()); err != nil {
				return fmt.Errorf("catalog verification failed: %w", err)
			}

			units := 0
			for _, g := range c.Groups() {
				units += len(g.Units)
			}
			quantify.Logger().Info("catalog verified", "groups", len(c.Groups()), "units", units)
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d units verified\n", units)
			return nil
		},
	}
}
