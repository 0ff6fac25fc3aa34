package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcriacao/atividade/internal/account"
	"github.com/smartcriacao/atividade/internal/store"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Inspect and change the current account",
	Long: "Account commands operate on the e-mail given via --user or\n" +
		"ATIVIDADE_USER. Subscription and admin flags are local records;\n" +
		"billing itself happens elsewhere.",
}

var userShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current account and its page ceiling",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, user, err := openStoreAndUser(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if user == nil {
			fmt.Println("Anonymous (free tier)")
			fmt.Println("Max pages:", account.MaxPagesFreeTier)
			return nil
		}

		tier := "free"
		switch {
		case user.IsAdmin:
			tier = "admin"
		case user.IsSubscribed:
			tier = "subscribed"
		}
		fmt.Println("Email:    ", user.Email)
		fmt.Println("ID:       ", user.ID)
		fmt.Println("Tier:     ", tier)
		if user.IsAdmin {
			fmt.Println("Max pages: unlimited")
		} else {
			fmt.Println("Max pages:", account.MaxPages(user))
		}
		return nil
	},
}

var userSubscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Mark the account as subscribed",
	RunE:  func(cmd *cobra.Command, args []string) error { return setUserFlag(cmd, "subscribed", true) },
}

var userUnsubscribeCmd = &cobra.Command{
	Use:   "unsubscribe",
	Short: "Return the account to the free tier",
	RunE:  func(cmd *cobra.Command, args []string) error { return setUserFlag(cmd, "subscribed", false) },
}

var userAdminCmd = &cobra.Command{
	Use:   "admin <true|false>",
	Short: "Set the account's admin flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "true":
			return setUserFlag(cmd, "admin", true)
		case "false":
			return setUserFlag(cmd, "admin", false)
		default:
			return fmt.Errorf("expected true or false, got %q", args[0])
		}
	},
}

func openStoreAndUser(cmd *cobra.Command) (*store.Store, *account.User, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	user, err := resolveUser(cmd.Context(), cmd, s)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return s, user, nil
}

func setUserFlag(cmd *cobra.Command, flag string, value bool) error {
	s, user, err := openStoreAndUser(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if user == nil {
		return fmt.Errorf("no account selected; pass --user or set ATIVIDADE_USER")
	}

	ctx := context.Background()
	switch flag {
	case "subscribed":
		err = s.UserRepo().SetSubscribed(ctx, user.ID, value)
	case "admin":
		err = s.UserRepo().SetAdmin(ctx, user.ID, value)
	}
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	fmt.Printf("%s: %s = %v\n", user.Email, flag, value)
	return nil
}

func init() {
	userCmd.AddCommand(userShowCmd)
	userCmd.AddCommand(userSubscribeCmd)
	userCmd.AddCommand(userUnsubscribeCmd)
	userCmd.AddCommand(userAdminCmd)
}
