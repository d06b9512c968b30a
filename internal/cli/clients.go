package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmm-1987/segurymat/internal/config"
)

func newClientsCommand(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage the client registry",
	}
	cmd.AddCommand(newClientsAddCommand(logger))
	cmd.AddCommand(newClientsListCommand(logger))
	cmd.AddCommand(newClientsRemoveCommand(logger))
	return cmd
}

func newClientsAddCommand(logger *slog.Logger) *cobra.Command {
	var aliases []string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new client",
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

			name := strings.Join(args, " ")
			id, err := st.CreateClient(cmd.Context(), name, aliases)
			if err != nil {
				return err
			}
			logger.Info("client created", "id", id, "name", name)
			cmd.Printf("client %d: %s\n", id, name)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&aliases, "alias", nil, "alternative names for fuzzy matching")
	return cmd
}

func newClientsListCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered clients",
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

			clients, err := st.ListClients(cmd.Context())
			if err != nil {
				return err
			}
			for _, client := range clients {
				line := fmt.Sprintf("%d\t%s", client.ID, client.Name)
				if len(client.Aliases) > 0 {
					line += "\t(" + strings.Join(client.Aliases, ", ") + ")"
				}
				cmd.Println(line)
			}
			return nil
		},
	}
}

func newClientsRemoveCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a client; its tasks keep the raw mention text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid client id %q", args[0])
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

			if err := st.DeleteClient(cmd.Context(), id); err != nil {
				return err
			}
			logger.Info("client deleted", "id", id)
			return nil
		},
	}
}
