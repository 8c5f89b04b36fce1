package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/modio-client/pkg/modio"
)

// NewGamesCommand creates the games command group
func NewGamesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Browse games",
		Long:  "List and inspect games registered on mod.io",
	}

	cmd.AddCommand(newGamesListCommand())
	cmd.AddCommand(newGamesGetCommand())
	cmd.AddCommand(newGamesStatsCommand())

	return cmd
}

func newGamesListCommand() *cobra.Command {
	var (
		search string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			filter := modio.NewFilter().Limit(limit).Offset(offset)
			if search != "" {
				filter = filter.Text(search)
			}

			games, err := client.Games().List(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("listing games: %w", err)
			}

			if done, err := renderOutput(games); done {
				return err
			}

			rows := make([][]string, 0, len(games.Data))
			for _, game := range games.Data {
				rows = append(rows, []string{
					formatInt(game.ID),
					game.Name,
					game.NameID,
					game.UGCName,
					formatUnix(game.DateLive),
				})
			}

			if err := renderTable([]string{"ID", "Name", "Name ID", "UGC", "Live"}, rows); err != nil {
				return err
			}

			fmt.Printf("Showing %d of %d games\n", games.ResultCount, games.ResultTotal)

			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "full-text search query")
	cmd.Flags().IntVar(&limit, "limit", 20, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "results to skip")

	return cmd
}

func newGamesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get GAME_ID",
		Short: "Show a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			game, err := client.Games().Get(cmd.Context(), gameID)
			if err != nil {
				return fmt.Errorf("getting game: %w", err)
			}

			if done, err := renderOutput(game); done {
				return err
			}

			return renderTable([]string{"Property", "Value"}, [][]string{
				{"ID", formatInt(game.ID)},
				{"Name", game.Name},
				{"Name ID", game.NameID},
				{"Summary", game.Summary},
				{"UGC Name", game.UGCName},
				{"Submitted By", game.SubmittedBy.Username},
				{"Added", formatUnix(game.DateAdded)},
				{"Updated", formatUnix(game.DateUpdated)},
				{"Profile", game.ProfileURL},
			})
		},
	}
}

func newGamesStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats GAME_ID",
		Short: "Show game statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			stats, err := client.Games().GetStats(cmd.Context(), gameID)
			if err != nil {
				return fmt.Errorf("getting game stats: %w", err)
			}

			if done, err := renderOutput(stats); done {
				return err
			}

			return renderTable([]string{"Property", "Value"}, [][]string{
				{"Game ID", formatInt(stats.GameID)},
				{"Mods", formatInt(stats.ModsCountTotal)},
				{"Downloads", formatInt(stats.ModsDownloadsTotal)},
				{"Downloads Today", formatInt(stats.ModsDownloadsToday)},
				{"Subscribers", formatInt(stats.ModsSubscribersTotal)},
			})
		},
	}
}
