package cli

import (
	"fmt"
	"strconv"
	"strings"

	"postboard/internal/board"
	"postboard/internal/loader"

	"github.com/spf13/cobra"
)

func newPostsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Fetch posts without the TUI",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List posts (newest id first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadBoard(cmd, app)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, st.Sorted())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("invalid post id %q: must be an integer", args[0])
			}
			st, err := loadBoard(cmd, app)
			if err != nil {
				return err
			}
			p, ok := st.Find(id)
			if !ok {
				return errNotFound("post", args[0])
			}
			return writeOut(cmd, app, p)
		},
	})

	return cmd
}

// loadBoard performs the one fetch and seeds a board from it.
func loadBoard(cmd *cobra.Command, app *App) (board.State, error) {
	res := newLoader(app, app.log).Load(cmd.Context())
	if res.Status != loader.StatusReady {
		app.log.Error().Err(res.Err).Str("url", app.Config.URL).Msg("fetch posts")
		return board.State{}, fmt.Errorf("fetch posts: %w", res.Err)
	}
	return board.New(app.Config.IDPolicy()).Seed(res.Posts), nil
}
