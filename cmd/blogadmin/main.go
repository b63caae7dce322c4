package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blog/db"
	"blog/models"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blogadmin",
		Short: "Administrative tasks for the blog",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			db.Init()
			models.Init()
		},
	}

	rootCmd.AddCommand(groupCmd(), userCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func groupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage groups",
	}

	var title, slug, description string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a group; the slug is derived from the title unless given",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := models.CreateGroup(title, slug, description)
			var taken models.SlugTakenError
			if errors.As(err, &taken) {
				return fmt.Errorf("cannot create group: %s", taken.Error())
			}
			if err != nil {
				return err
			}
			fmt.Printf("created group %d %q with slug %q\n", g.ID, g.Title, g.Slug)
			return nil
		},
	}
	create.Flags().StringVar(&title, "title", "", "group title (required)")
	create.Flags().StringVar(&slug, "slug", "", "explicit slug; derived from the title when empty")
	create.Flags().StringVar(&description, "description", "", "group description")
	_ = create.MarkFlagRequired("title")

	cmd.AddCommand(create)
	return cmd
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var username, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := models.CreateUser(username, password)
			if err != nil {
				return err
			}
			fmt.Printf("created user %d %q\n", u.ID, u.Username)
			return nil
		},
	}
	create.Flags().StringVar(&username, "username", "", "username (required)")
	create.Flags().StringVar(&password, "password", "", "password (required)")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}
