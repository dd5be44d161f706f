package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"advocate-directory/config"
	"advocate-directory/internal/searchview"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const requestTimeout = 10 * time.Second

// BrowseOptions holds the flags of the browse command. Zero values fall back
// to the BROWSE_* configuration.
type BrowseOptions struct {
	BaseURL  string
	Link     string
	Search   string
	Page     int
	Limit    int
	Debounce time.Duration
	LogFile  string
}

func NewBrowseCommand() *cobra.Command {
	opts := &BrowseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Search advocates interactively in the terminal",
		Long: "Opens the interactive search view. Pass --url with a link copied from a\n" +
			"previous session to reopen the same search and page.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return runBrowse(cmd, opts.withDefaults(cfg.Browse))
		},
	}

	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "", "query service base URL (default BROWSE_BASE_URL)")
	cmd.Flags().StringVar(&opts.Link, "url", "", "link to open, e.g. http://localhost:8080/?search=md&page=2")
	cmd.Flags().StringVar(&opts.Search, "search", "", "initial search term")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "initial page")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "rows per page (default BROWSE_LIMIT)")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", 0, "quiet period before searching (default BROWSE_DEBOUNCE)")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "write logs to this file instead of discarding them")

	return cmd
}

func (o BrowseOptions) withDefaults(cfg config.BrowseConfig) BrowseOptions {
	if o.BaseURL == "" {
		o.BaseURL = cfg.BaseURL
	}
	if o.Limit < 1 {
		o.Limit = cfg.Limit
	}
	if o.Debounce <= 0 {
		o.Debounce = cfg.Debounce
	}
	return o
}

// InitialState prefers --url over --search/--page.
func (o BrowseOptions) InitialState() (searchview.State, error) {
	if o.Link != "" {
		values, err := searchview.ParseLink(o.Link)
		if err != nil {
			return searchview.State{}, fmt.Errorf("invalid --url: %w", err)
		}
		return searchview.NewState(values), nil
	}

	state := searchview.NewState(nil)
	state.Search = strings.TrimSpace(o.Search)
	if o.Page > 1 {
		state.Page = o.Page
	}
	return state, nil
}

func runBrowse(cmd *cobra.Command, opts BrowseOptions) error {
	initial, err := opts.InitialState()
	if err != nil {
		return err
	}

	log, closeLog, err := newBrowseLogger(opts.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	client := searchview.NewClient(opts.BaseURL, opts.Limit, &http.Client{Timeout: requestTimeout})
	model := searchview.NewModel(client, initial, searchview.Options{
		Debounce: opts.Debounce,
		LinkBase: strings.TrimRight(opts.BaseURL, "/") + "/",
		PageSize: opts.Limit,
		Log:      log,
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("search view failed: %w", err)
	}

	if m, ok := final.(searchview.Model); ok {
		fmt.Fprintln(cmd.OutOrStdout(), m.Link())
	}
	return nil
}

// newBrowseLogger keeps log output off the terminal the view is drawing on.
func newBrowseLogger(path string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(file)
	return log, func() { file.Close() }, nil
}
