package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmm-1987/segurymat/internal/config"
	"github.com/jmm-1987/segurymat/internal/parse"
	"github.com/jmm-1987/segurymat/internal/store"
)

func newTasksCommand(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
	}
	cmd.AddCommand(newTasksAddCommand(logger))
	cmd.AddCommand(newTasksListCommand(logger))
	cmd.AddCommand(newTasksCompleteCommand(logger))
	cmd.AddCommand(newTasksRescheduleCommand(logger))
	return cmd
}

func newTasksAddCommand(logger *slog.Logger) *cobra.Command {
	var userID int64
	var userName string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Create a task from a Spanish utterance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.AutoMigrate(cmd.Context()); err != nil {
				return err
			}

			text := strings.Join(args, " ")
			parser := newParser(cfg, st, logger)
			result := parser.Parse(cmd.Context(), text)

			input := store.CreateTaskInput{
				UserID:   userID,
				UserName: userName,
				Title:    result.Entities.Title,
				Priority: result.Entities.Priority,
				Category: result.Entities.Category,
			}
			if result.Entities.Date != nil {
				input.TaskDate = *result.Entities.Date
			}
			if client := result.Entities.Client; client != nil {
				input.ClientNameRaw = client.Raw
				// Only a certain match is attached automatically; confirm
				// band needs an interactive decision this command does not
				// provide.
				if client.Match.Action == parse.ActionAuto {
					input.ClientID = client.Match.ClientID
				}
			}

			id, err := st.CreateTask(cmd.Context(), input)
			if err != nil {
				return err
			}
			logger.Info("task created", "id", id, "title", input.Title, "priority", input.Priority)
			cmd.Printf("task %d: %s\n", id, input.Title)
			if client := result.Entities.Client; client != nil && client.Match.Action == parse.ActionConfirm {
				cmd.Printf("client %q is ambiguous; candidates:\n", client.Raw)
				for _, candidate := range client.Match.Candidates {
					cmd.Printf("  %d\t%s\t%d%%\n", candidate.ID, candidate.Name, candidate.Confidence)
				}
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 1, "owner user id")
	cmd.Flags().StringVar(&userName, "user-name", "", "owner display name")
	return cmd
}

func newTasksListCommand(logger *slog.Logger) *cobra.Command {
	var userID int64
	var status string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.AutoMigrate(cmd.Context()); err != nil {
				return err
			}

			tasks, err := st.ListTasks(cmd.Context(), store.ListTasksInput{
				UserID: userID,
				Status: status,
				Limit:  limit,
			})
			if err != nil {
				return err
			}
			for _, task := range tasks {
				date := "-"
				if !task.TaskDate.IsZero() {
					date = task.TaskDate.Local().Format("2006-01-02 15:04")
				}
				cmd.Printf("%d\t%s\t%s\t%s\t%s\n", task.ID, task.Status, task.Priority, date, task.Title)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "filter by owner user id")
	cmd.Flags().StringVar(&status, "status", store.TaskStatusOpen, "filter by status (open, completed, cancelled; empty for all)")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows")
	return cmd
}

func newTasksCompleteCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

			cfg := config.FromEnv()
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.AutoMigrate(cmd.Context()); err != nil {
				return err
			}

			if err := st.CompleteTask(cmd.Context(), id); err != nil {
				return err
			}
			logger.Info("task completed", "id", id)
			return nil
		},
	}
}

func newTasksRescheduleCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "reschedule <id> <date>",
		Short: "Move a task to a new date (YYYY-MM-DD or Spanish expression)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}

			cfg := config.FromEnv()
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.AutoMigrate(cmd.Context()); err != nil {
				return err
			}

			when, err := resolveDateArgument(cfg, st, logger, cmd, args[1])
			if err != nil {
				return err
			}

			if err := st.UpdateTask(cmd.Context(), store.UpdateTaskInput{ID: id, TaskDate: when}); err != nil {
				return err
			}
			logger.Info("task rescheduled", "id", id, "date", when)
			return nil
		},
	}
}

// resolveDateArgument accepts an ISO date or a Spanish date expression
// ("mañana", "el lunes") resolved through the parser.
func resolveDateArgument(cfg config.Config, st *store.Store, logger *slog.Logger, cmd *cobra.Command, value string) (time.Time, error) {
	if parsed, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return parsed.Add(9 * time.Hour), nil
	}
	parser := newParser(cfg, st, logger)
	result := parser.Parse(cmd.Context(), "cambiar fecha a "+value)
	if result.Entities.Date == nil {
		return time.Time{}, fmt.Errorf("cannot resolve date from %q", value)
	}
	return *result.Entities.Date, nil
}
