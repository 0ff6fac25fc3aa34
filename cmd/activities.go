package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartcriacao/atividade/internal/store"
)

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "Manage saved worksheets",
}

var activitiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved worksheets",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		user, err := resolveUser(ctx, cmd, s)
		if err != nil {
			return err
		}
		userID := ""
		if user != nil {
			userID = user.ID
		}

		list, err := s.ActivityRepo().List(ctx, userID)
		if err != nil {
			return fmt.Errorf("list worksheets: %w", err)
		}
		if len(list) == 0 {
			fmt.Println("No saved worksheets.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-5s  %s\n", "ID", "Created", "Pages", "Name")
		fmt.Println(strings.Repeat("─", 90))
		for _, a := range list {
			fmt.Printf("%-36s  %-19s  %-5d  %s\n",
				a.ID,
				a.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				len(a.Pages),
				a.Name,
			)
		}
		return nil
	},
}

var activitiesExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a saved worksheet to PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		a, err := s.ActivityRepo().Get(ctx, args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("worksheet %s not found", args[0])
		}
		if err != nil {
			return fmt.Errorf("load worksheet: %w", err)
		}

		if output == "" {
			output = a.ID + ".pdf"
		}
		if err := exportPDF(ctx, a.Pages, output); err != nil {
			return err
		}
		fmt.Println("PDF:", output)
		return nil
	},
}

var activitiesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved worksheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		err = s.ActivityRepo().Delete(context.Background(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("worksheet %s not found", args[0])
		}
		if err != nil {
			return fmt.Errorf("delete worksheet: %w", err)
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func init() {
	activitiesExportCmd.Flags().StringP("output", "o", "", "PDF output path (default <id>.pdf)")

	activitiesCmd.AddCommand(activitiesListCmd)
	activitiesCmd.AddCommand(activitiesExportCmd)
	activitiesCmd.AddCommand(activitiesDeleteCmd)
}
