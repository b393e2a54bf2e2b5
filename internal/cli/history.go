package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/robo/internal/model"
	"github.com/Makepad-fr/robo/internal/ui"
	"github.com/Makepad-fr/robo/internal/viewer"
)

func historyCmd(getEnv envFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"hist"},
		Short:   "List, show, export or delete saved plans",
		Args:    withUsage(cobra.NoArgs),
	}
	cmd.AddCommand(
		historyListCmd(getEnv),
		historyShowCmd(getEnv),
		historyRemoveCmd(getEnv),
		historyExportCmd(getEnv),
	)
	return cmd
}

// resolve finds a saved plan by id or by 1-based position in `history ls`.
func resolve(env *Env, ref string) (model.SavedPlan, error) {
	if s, ok := env.History.Get(ref); ok {
		return s, nil
	}
	items := env.Ctrl.History()
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(items) {
			return model.SavedPlan{}, usagef("index out of range: have %d, got %d", len(items), n)
		}
		return items[n-1], nil
	}
	return model.SavedPlan{}, usagef("no saved plan %q (run `robo history ls`)", ref)
}

func historyListCmd(getEnv envFunc) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List saved plans, newest first",
		Args:    withUsage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := getEnv(cmd)
			if err != nil {
				return err
			}
			items := env.Ctrl.History()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			t := ui.Current()
			lines := []string{fmt.Sprintf("%s  %s %d", ui.C(t.Title, "Saved Plans"), ui.C(t.Accent, "Total"), len(items)), ""}
			if len(items) == 0 {
				lines = append(lines, ui.C(t.Muted, "No saved plans yet."))
			}
			for i, s := range items {
				created := s.CreatedTime()
				lines = append(lines, fmt.Sprintf("%s %s %s  %s",
					ui.C(t.Muted, fmt.Sprintf("%2d.", i+1)),
					t.Bullet,
					ui.Truncate(s.BusinessName, 48),
					ui.C(t.Muted, created.Format("Jan 2, 2006 15:04")+"  "+s.ID),
				))
			}
			lines = append(lines, "", ui.C(t.Muted, "Tip: open one with `robo history show <n>`"))
			ui.Panel(out, lines)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw history as JSON")
	return cmd
}

func historyShowCmd(getEnv envFunc) *cobra.Command {
	var (
		raw     bool
		width   int
		section int
	)
	cmd := &cobra.Command{
		Use:   "show <n|id>",
		Short: "Print a saved plan",
		Args:  withUsage(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := getEnv(cmd)
			if err != nil {
				return err
			}
			s, err := resolve(env, args[0])
			if err != nil {
				return err
			}
			if section > 0 {
				v := viewer.New(s.Plan, s.BusinessName)
				if !v.Select(section - 1) {
					return usagef("section out of range: have %d, got %d", v.Len(), section)
				}
				sec, _ := v.ActiveSection()
				md := viewer.Markdown(model.BusinessPlan{sec})
				if !raw {
					md, _ = viewer.Render(md, width)
				}
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			md := viewer.Markdown(s.Plan)
			if !raw {
				// falls back to the raw Markdown on render errors
				md, _ = viewer.Render(viewer.PrintDocument(s.BusinessName, s.Plan, s.CreatedTime()), width)
			}
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print Markdown without terminal styling")
	cmd.Flags().IntVar(&width, "width", 100, "wrap width for styled output")
	cmd.Flags().IntVarP(&section, "section", "s", 0, "print only this section (1-based)")
	return cmd
}

func historyRemoveCmd(getEnv envFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <n|id>",
		Aliases: []string{"delete"},
		Short:   "Delete a saved plan",
		Args:    withUsage(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := getEnv(cmd)
			if err != nil {
				return err
			}
			s, err := resolve(env, args[0])
			if err != nil {
				return err
			}
			if err := env.Ctrl.DeleteHistory(s.ID); err != nil {
				return fmt.Errorf("delete: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), "removed "+s.BusinessName)
			return nil
		},
	}
}

func historyExportCmd(getEnv envFunc) *cobra.Command {
	var ex exportFlags
	cmd := &cobra.Command{
		Use:   "export <n|id>",
		Short: "Write a saved plan as Markdown and/or a printable HTML page",
		Args:  withUsage(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := ex.formats()
			if err != nil {
				return err
			}
			env, err := getEnv(cmd)
			if err != nil {
				return err
			}
			s, err := resolve(env, args[0])
			if err != nil {
				return err
			}
			paths, err := writeExports(ex.out, s.BusinessName, s.Plan, formats, s.CreatedTime())
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			for _, p := range paths {
				ui.OK(cmd.OutOrStdout(), "wrote "+p)
			}
			return nil
		},
	}
	ex.register(cmd)
	return cmd
}
