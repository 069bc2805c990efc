package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"daytrack/internal/bootstrap"
	"daytrack/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var homePath string

	root := &cobra.Command{
		Use:           "daytrack",
		Short:         "Personal productivity tracker for tasks, goals, and notes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&homePath, "home", "", "daytrack home directory (default ~/.daytrack)")

	root.AddCommand(newTUICmd(&homePath))
	root.AddCommand(newTaskCmd(&homePath))
	root.AddCommand(newGoalCmd(&homePath))
	root.AddCommand(newNoteCmd(&homePath))
	root.AddCommand(newSettingsCmd(&homePath))
	root.AddCommand(newAgendaCmd(&homePath))
	root.AddCommand(newPluginCmd(&homePath))
	root.AddCommand(newReindexCmd(&homePath))
	return root
}

func loadApp(homePath string) (*bootstrap.App, error) {
	cfg, err := config.New(homePath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run daytrack terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.New(*homePath)
			if err != nil {
				return err
			}
			app, err := bootstrap.New(cfg)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(cfg.HomePath, app)
		},
	}
}

func newTaskCmd(homePath *string) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Daily task commands"}

	var description, date string
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.TaskCLI.Create(context.Background(), args[0], description, date)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "task added: %s (%s) due=%s\n", out.Title, out.ID, out.Date)
			return nil
		},
	}
	addCmd.Flags().StringVar(&description, "description", "", "task description")
	addCmd.Flags().StringVar(&date, "date", "", "due date YYYY-MM-DD (default today)")
	task.AddCommand(addCmd)

	task.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all tasks, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			tasks, err := app.TaskCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no tasks")
				return nil
			}
			for _, t := range tasks {
				marker := " "
				if t.Completed {
					marker = "x"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\t%s\t%s\n", marker, t.ID, t.Date, t.Title)
			}
			return nil
		},
	})

	var planDate string
	todayCmd := &cobra.Command{
		Use:   "today",
		Short: "Show the classified day view",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			plan, err := app.TaskCLI.Plan(context.Background(), planDate)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s carry_over=%t overdue=%d\n", plan.Date, plan.CarryOver, plan.OverdueCount)
			for _, t := range plan.Active {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[ ] %s\t%s\t%s\n", t.ID, t.Date, t.Title)
			}
			for _, t := range plan.Completed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[x] %s\t%s\t%s\n", t.ID, t.Date, t.Title)
			}
			if len(plan.Upcoming) > 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "upcoming:")
				for _, t := range plan.Upcoming {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[ ] %s\t%s\t%s\n", t.ID, t.Date, t.Title)
				}
			}
			if plan.AllDone {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all of today's tasks are complete")
			}
			return nil
		},
	}
	todayCmd.Flags().StringVar(&planDate, "date", "", "classify against this date instead of today")
	task.AddCommand(todayCmd)

	var editTitle, editDescription, editDate string
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.TaskCLI.Edit(context.Background(), args[0], editTitle, editDescription, editDate)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "task updated: %s (%s) due=%s\n", out.Title, out.ID, out.Date)
			return nil
		},
	}
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title (empty keeps current)")
	editCmd.Flags().StringVar(&editDescription, "description", "", "new description (replaces current)")
	editCmd.Flags().StringVar(&editDate, "date", "", "new due date YYYY-MM-DD (empty keeps current)")
	task.AddCommand(editCmd)

	task.AddCommand(&cobra.Command{
		Use:   "done <id>",
		Short: "Toggle task completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.TaskCLI.ToggleCompletion(context.Background(), args[0])
			if err != nil {
				return err
			}
			state := "reopened"
			if out.Completed {
				state = "completed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "task %s: %s (%s)\n", state, out.Title, out.ID)
			return nil
		},
	})

	task.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			if err := app.TaskCLI.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "task removed: %s\n", args[0])
			return nil
		},
	})

	return task
}

func newGoalCmd(homePath *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Goal and phase commands"}

	goal.AddCommand(&cobra.Command{
		Use:   "add <title>",
		Short: "Create a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.Create(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal added: %s (%s)\n", out.Title, out.ID)
			return nil
		},
	})

	var phaseGoalID string
	phaseCmd := &cobra.Command{
		Use:   "phase <title> --goal <id>",
		Short: "Append a phase to a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(phaseGoalID) == "" {
				return fmt.Errorf("--goal is required")
			}
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.AppendPhase(context.Background(), phaseGoalID, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "phase added to %s (%d phases)\n", out.Title, len(out.Phases))
			return nil
		},
	}
	phaseCmd.Flags().StringVar(&phaseGoalID, "goal", "", "goal id")
	goal.AddCommand(phaseCmd)

	goal.AddCommand(&cobra.Command{
		Use:   "advance <id>",
		Short: "Complete the current phase and move to the next",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.Advance(context.Background(), args[0])
			if err != nil {
				return err
			}
			if out.HasProgressed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "phase complete, now at %d/%d\n", out.Goal.CurrentIndex+1, len(out.Goal.Phases))
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no further phase to advance to")
			return nil
		},
	})

	goal.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List goals with their current phase",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			goals, err := app.GoalCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals")
				return nil
			}
			views, err := app.GoalCLI.CurrentPhases(context.Background())
			if err != nil {
				return err
			}
			current := map[string]string{}
			for _, v := range views {
				current[v.GoalID] = fmt.Sprintf("%s (%d/%d)", v.PhaseTitle, v.Position+1, v.PhaseCount)
			}
			for _, g := range goals {
				phase, ok := current[g.ID]
				if !ok {
					phase = "no phases"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tcurrent: %s\n", g.ID, g.Title, phase)
			}
			return nil
		},
	})

	return goal
}

func newNoteCmd(homePath *string) *cobra.Command {
	note := &cobra.Command{Use: "note", Short: "Personal note commands"}

	note.AddCommand(&cobra.Command{
		Use:   "add <content>",
		Short: "Add a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.NoteCLI.Create(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "note added: %s\n", out.ID)
			return nil
		},
	})

	note.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			notes, err := app.NoteCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notes")
				return nil
			}
			for _, n := range notes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", n.ID, n.UpdatedAt.Format("2006-01-02 15:04"), n.Content)
			}
			return nil
		},
	})

	note.AddCommand(&cobra.Command{
		Use:   "edit <id> <content>",
		Short: "Replace a note's content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.NoteCLI.Update(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "note updated: %s\n", out.ID)
			return nil
		},
	})

	note.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			if err := app.NoteCLI.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "note removed: %s\n", args[0])
			return nil
		},
	})

	return note
}

func newSettingsCmd(homePath *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "User preference commands"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.SettingsCLI.Get(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dark-mode=%t carry-over=%t motivation=%t\n", out.DarkMode, out.CarryOver, out.Motivation)
			return nil
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "toggle <name>",
		Short: "Toggle dark-mode, carry-over, or motivation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.SettingsCLI.Toggle(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dark-mode=%t carry-over=%t motivation=%t\n", out.DarkMode, out.CarryOver, out.Motivation)
			return nil
		},
	})

	return settings
}

func newAgendaCmd(homePath *string) *cobra.Command {
	agenda := &cobra.Command{Use: "agenda", Short: "Agenda note commands"}

	var date string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the day plan to a markdown agenda note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.TaskCLI.ExportAgenda(context.Background(), date)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "agenda exported: %s -> %s\n", out.Date, out.Path)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&date, "date", "", "export this date instead of today")
	agenda.AddCommand(exportCmd)

	return agenda
}

func newPluginCmd(homePath *string) *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Notifier plugin operations"}

	plugin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notifier manifests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			plugins, err := app.NotifyCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(plugins) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notifiers configured")
				return nil
			}
			for _, p := range plugins {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s checksum=%s binary=%s\n", p.Name, p.Version, p.Checksum, p.Path)
			}
			return nil
		},
	})

	plugin.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate notifier checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			results, err := app.NotifyCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notifiers configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s healthy=%t", r.Name, r.Healthy)
				if r.Detail != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " detail=%q", r.Detail)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	var kind string
	notifyCmd := &cobra.Command{
		Use:   "notify <message>",
		Short: "Send a test event to subscribed notifiers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			deliveries, err := app.NotifyCLI.Publish(context.Background(), kind, args[0])
			if err != nil {
				return err
			}
			if len(deliveries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no subscribed notifiers")
				return nil
			}
			for _, d := range deliveries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s accepted=%t", d.Plugin, d.Accepted)
				if d.Detail != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " detail=%q", d.Detail)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
	notifyCmd.Flags().StringVar(&kind, "kind", "motivation", "event kind: motivation|progress")
	plugin.AddCommand(notifyCmd)

	return plugin
}

func newReindexCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild SQLite projections from the document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			if err := app.TaskCLI.Reindex(context.Background()); err != nil {
				return err
			}
			if err := app.GoalCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}
