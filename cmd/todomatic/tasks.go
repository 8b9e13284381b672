package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sandeepkv93/todomatic/internal/model"
	"github.com/sandeepkv93/todomatic/internal/store"
	"github.com/sandeepkv93/todomatic/internal/viewstate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// mutate loads the saved list, applies fn and saves the result.
func mutate(cmd *cobra.Command, flags *rootFlags, fn func(s *store.Store) (string, error)) error {
	a, err := openApp(flags)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	s, err := loadStore(ctx, a, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	msg, err := fn(s)
	if err != nil {
		return err
	}
	if err := a.snapshots.Save(ctx, s.Snapshot().Tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	fmt.Fprintln(out, msg)
	return nil
}

func newListCmd(flags *rootFlags) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print saved tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := model.ParseFilter(filter)
			if err != nil {
				return err
			}
			a, err := openApp(flags)
			if err != nil {
				return err
			}
			defer a.Close()
			s, err := loadStore(cmd.Context(), a, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s.SetFilter(f)
			out := cmd.OutOrStdout()
			printView(out, viewstate.Build(s.Snapshot()))
			c := s.Counts()
			fmt.Fprintf(out, "%d total, %d active, %d completed\n", c.Total, c.Active, c.Completed)
			savedAt, ok, err := a.snapshots.SavedAt(cmd.Context())
			if err != nil {
				a.logger.Warn("read save time", zap.Error(err))
			} else if ok {
				fmt.Fprintf(out, "last saved %s\n", savedAt.Local().Format(time.DateTime))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(model.FilterAll), "All, Active or Completed")
	return cmd
}

func newAddCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a task and save",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, flags, func(s *store.Store) (string, error) {
				task := s.Add(strings.Join(args, " "))
				return fmt.Sprintf("added %s %q", task.ID, task.Name), nil
			})
		},
	}
}

func newToggleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task between active and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, flags, func(s *store.Store) (string, error) {
				if !s.Toggle(args[0]) {
					return "", fmt.Errorf("no task with id %s", args[0])
				}
				task, _ := s.Snapshot().Find(args[0])
				return fmt.Sprintf("%s completed=%t", task.ID, task.Completed), nil
			})
		},
	}
}

func newRemoveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task and save the rest (never clears the saved list)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, flags, func(s *store.Store) (string, error) {
				if !s.Delete(args[0]) {
					return "", fmt.Errorf("no task with id %s", args[0])
				}
				return "deleted " + args[0], nil
			})
		},
	}
}

func newRenameCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rename <id> <name...>",
		Aliases: []string{"edit"},
		Short:   "Rename a task",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, flags, func(s *store.Store) (string, error) {
				name := strings.Join(args[1:], " ")
				if !s.Rename(args[0], name) {
					return "", fmt.Errorf("no task with id %s", args[0])
				}
				return fmt.Sprintf("renamed %s to %q", args[0], name), nil
			})
		},
	}
}

func newClearCompletedCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Delete every completed task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mutate(cmd, flags, func(s *store.Store) (string, error) {
				return fmt.Sprintf("cleared %d completed task(s)", s.ClearCompleted()), nil
			})
		},
	}
}

func printView(w io.Writer, v viewstate.View) {
	fmt.Fprintln(w, v.Heading)
	for _, t := range v.Tasks {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		fmt.Fprintf(w, "%s %s  %s\n", box, t.ID, t.Name)
	}
}
