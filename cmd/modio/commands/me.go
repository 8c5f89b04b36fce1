package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMeCommand creates the me command group
func NewMeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Inspect the authenticated account",
		Long:  "Show the authenticated user's profile, mods, subscriptions, and files",
	}

	cmd.AddCommand(newMeUserCommand())
	cmd.AddCommand(newMeModsCommand())
	cmd.AddCommand(newMeSubscribedCommand())
	cmd.AddCommand(newMeFilesCommand())
	cmd.AddCommand(newMeEventsCommand())

	return cmd
}

func newMeUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "user",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			user, err := client.Me().User(cmd.Context())
			if err != nil {
				return fmt.Errorf("getting user: %w", err)
			}

			if done, err := renderOutput(user); done {
				return err
			}

			return renderTable([]string{"Property", "Value"}, [][]string{
				{"ID", formatInt(user.ID)},
				{"Username", user.Username},
				{"Name ID", user.NameID},
				{"Timezone", user.Timezone},
				{"Language", user.Language},
				{"Profile", user.ProfileURL},
			})
		},
	}
}

func newMeModsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mods",
		Short: "List mods submitted by the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			mods, err := client.Me().Mods(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("listing mods: %w", err)
			}

			if done, err := renderOutput(mods); done {
				return err
			}

			rows := make([][]string, 0, len(mods.Data))
			for _, mod := range mods.Data {
				rows = append(rows, []string{
					formatInt(mod.ID),
					formatInt(mod.GameID),
					mod.Name,
					formatUnix(mod.DateUpdated),
				})
			}

			return renderTable([]string{"ID", "Game", "Name", "Updated"}, rows)
		},
	}
}

func newMeSubscribedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribed",
		Short: "List the authenticated user's subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			mods, err := client.Me().Subscribed(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("listing subscriptions: %w", err)
			}

			if done, err := renderOutput(mods); done {
				return err
			}

			rows := make([][]string, 0, len(mods.Data))
			for _, mod := range mods.Data {
				rows = append(rows, []string{
					formatInt(mod.ID),
					formatInt(mod.GameID),
					mod.Name,
					mod.Modfile.Version,
				})
			}

			return renderTable([]string{"ID", "Game", "Name", "Version"}, rows)
		},
	}
}

func newMeFilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List files uploaded by the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			files, err := client.Me().Files(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("listing files: %w", err)
			}

			if done, err := renderOutput(files); done {
				return err
			}

			rows := make([][]string, 0, len(files.Data))
			for _, file := range files.Data {
				rows = append(rows, []string{
					formatInt(file.ID),
					formatInt(file.ModID),
					file.Filename,
					file.Version,
					formatUnix(file.DateAdded),
				})
			}

			return renderTable([]string{"ID", "Mod", "Filename", "Version", "Added"}, rows)
		},
	}
}

func newMeEventsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List events affecting the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			events, err := client.Me().Events(cmd.Context(), nil)
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			if done, err := renderOutput(events); done {
				return err
			}

			rows := make([][]string, 0, len(events.Data))
			for _, event := range events.Data {
				rows = append(rows, []string{
					formatInt(event.ID),
					formatInt(event.ModID),
					event.Type().String(),
					formatUnix(event.DateAdded),
				})
			}

			return renderTable([]string{"ID", "Mod", "Event", "Date"}, rows)
		},
	}
}
