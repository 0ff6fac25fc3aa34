package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartcriacao/atividade/internal/account"
	"github.com/smartcriacao/atividade/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "atividade",
	Short: "AI worksheet generator for teachers",
	Long: "Atividade — generates printable school worksheets (Brazilian Portuguese)\n" +
		"from a short description: AI-written exercises, optional illustrations,\n" +
		"and A4 PDF export.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ATIVIDADE_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Account e-mail (overrides ATIVIDADE_USER env var; empty = anonymous free tier)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(activitiesCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ATIVIDADE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser loads (creating if needed) the account named by --user or
// ATIVIDADE_USER. A nil result is an anonymous free-tier visitor.
func resolveUser(ctx context.Context, cmd *cobra.Command, s *store.Store) (*account.User, error) {
	email, _ := cmd.Flags().GetString("user")
	if email == "" {
		email = os.Getenv("ATIVIDADE_USER")
	}
	if email == "" {
		return nil, nil
	}
	u, err := s.UserRepo().GetOrCreate(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load user %q: %w", email, err)
	}
	return &account.User{
		ID:           u.ID,
		Email:        u.Email,
		IsAdmin:      u.IsAdmin,
		IsSubscribed: u.IsSubscribed,
	}, nil
}
