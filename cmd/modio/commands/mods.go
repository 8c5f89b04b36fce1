package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// NewModsCommand creates the mods command group
func NewModsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mods",
		Short: "Browse and manage mods",
		Long:  "List, inspect, subscribe to, and rate mods under a game",
	}

	cmd.AddCommand(newModsListCommand())
	cmd.AddCommand(newModsGetCommand())
	cmd.AddCommand(newModsFilesCommand())
	cmd.AddCommand(newModsSubscribeCommand())
	cmd.AddCommand(newModsUnsubscribeCommand())
	cmd.AddCommand(newModsRateCommand())

	return cmd
}

func newModsListCommand() *cobra.Command {
	var (
		gameID int64
		search string
		tags   []string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mods for a game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if gameID <= 0 {
				return ErrGameIDRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			filter := modio.NewFilter().Limit(limit).Offset(offset)
			if search != "" {
				filter = filter.Text(search)
			}

			if len(tags) > 0 {
				values := make([]interface{}, 0, len(tags))
				for _, tag := range tags {
					values = append(values, tag)
				}

				filter = filter.In("tag", values...)
			}

			mods, err := client.Mods().List(cmd.Context(), gameID, filter)
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
					mod.Name,
					mod.SubmittedBy.Username,
					formatInt(mod.Stats.DownloadsTotal),
					formatUnix(mod.DateUpdated),
				})
			}

			if err := renderTable([]string{"ID", "Name", "Submitter", "Downloads", "Updated"}, rows); err != nil {
				return err
			}

			fmt.Printf("Showing %d of %d mods\n", mods.ResultCount, mods.ResultTotal)

			return nil
		},
	}

	cmd.Flags().Int64VarP(&gameID, "game", "g", 0, "game ID (required)")
	cmd.Flags().StringVarP(&search, "search", "q", "", "full-text search query")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "filter by tag (repeatable)")
	cmd.Flags().IntVar(&limit, "limit", 20, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "results to skip")

	return cmd
}

func newModsGetCommand() *cobra.Command {
	var gameID int64

	cmd := &cobra.Command{
		Use:   "get MOD_ID",
		Short: "Show a mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if gameID <= 0 {
				return ErrGameIDRequired
			}

			modID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			mod, err := client.Mods().Get(cmd.Context(), gameID, modID)
			if err != nil {
				return fmt.Errorf("getting mod: %w", err)
			}

			if done, err := renderOutput(mod); done {
				return err
			}

			return renderTable([]string{"Property", "Value"}, [][]string{
				{"ID", formatInt(mod.ID)},
				{"Name", mod.Name},
				{"Summary", mod.Summary},
				{"Submitted By", mod.SubmittedBy.Username},
				{"Downloads", formatInt(mod.Stats.DownloadsTotal)},
				{"Subscribers", formatInt(mod.Stats.SubscribersTotal)},
				{"Rating", mod.Stats.RatingsDisplayText},
				{"Latest File", mod.Modfile.Filename},
				{"Updated", formatUnix(mod.DateUpdated)},
				{"Profile", mod.ProfileURL},
			})
		},
	}

	cmd.Flags().Int64VarP(&gameID, "game", "g", 0, "game ID (required)")

	return cmd
}

func newModsFilesCommand() *cobra.Command {
	var gameID int64

	cmd := &cobra.Command{
		Use:   "files MOD_ID",
		Short: "List a mod's files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if gameID <= 0 {
				return ErrGameIDRequired
			}

			modID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			files, err := client.Files().List(cmd.Context(), gameID, modID, nil)
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
					file.Filename,
					file.Version,
					formatInt(file.Filesize),
					formatUnix(file.DateAdded),
				})
			}

			return renderTable([]string{"ID", "Filename", "Version", "Size", "Added"}, rows)
		},
	}

	cmd.Flags().Int64VarP(&gameID, "game", "g", 0, "game ID (required)")

	return cmd
}

func newModsSubscribeCommand() *cobra.Command {
	var gameID int64

	cmd := &cobra.Command{
		Use:   "subscribe MOD_ID",
		Short: "Subscribe to a mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if gameID <= 0 {
				return ErrGameIDRequired
			}

			modID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			mod, err := client.Mods().Subscribe(cmd.Context(), gameID, modID)
			if err != nil {
				return fmt.Errorf("subscribing: %w", err)
			}

			if mod == nil {
				fmt.Println("Already subscribed.")

				return nil
			}

			fmt.Printf("Subscribed to %s.\n", mod.Name)

			return nil
		},
	}

	cmd.Flags().Int64VarP(&gameID, "game", "g", 0, "game ID (required)")

	return cmd
}

func newModsUnsubscribeCommand() *cobra.Command {
	var gameID int64

	cmd := &cobra.Command{
		Use:   "unsubscribe MOD_ID",
		Short: "Unsubscribe from a mod",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if gameID <= 0 {
				return ErrGameIDRequired
			}

			modID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			if err := client.Mods().Unsubscribe(cmd.Context(), gameID, modID); err != nil {
				return fmt.Errorf("unsubscribing: %w", err)
			}

			fmt.Println("Unsubscribed.")

			return nil
		},
	}

	cmd.Flags().Int64VarP(&gameID, "game", "g", 0, "game ID (required)")

	return cmd
}

func newModsRateCommand() *cobra.Command {
	var (
		gameID   int64
		negative bool
		neutral  bool
	)

	cmd := &cobra.Command{
		Use:   "rate MOD_ID",
		Short: "Rate a mod",
		Long:  "Add a positive rating to a mod; use --negative or --clear to change it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if gameID <= 0 {
				return ErrGameIDRequired
			}

			modID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			rating := modio.RatingPositive
			if negative {
				rating = modio.RatingNegative
			}

			if neutral {
				rating = modio.RatingNeutral
			}

			if err := client.Mods().AddRating(cmd.Context(), gameID, modID, rating); err != nil {
				return fmt.Errorf("rating mod: %w", err)
			}

			fmt.Printf("Rating set to %s.\n", rating)

			return nil
		},
	}

	cmd.Flags().Int64VarP(&gameID, "game", "g", 0, "game ID (required)")
	cmd.Flags().BoolVar(&negative, "negative", false, "rate negatively")
	cmd.Flags().BoolVar(&neutral, "clear", false, "remove the rating")

	return cmd
}
