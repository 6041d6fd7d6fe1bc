// Package main provides the handla CLI. Running it bare opens the
// interactive list screen; subcommands cover scripting and quick edits.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"handla/internal/config"
	"handla/internal/engine"
	"handla/internal/lists"
	"handla/internal/model"
	"handla/internal/session"
	"handla/internal/store"
	"handla/internal/suggest"
	"handla/internal/tui"
	"handla/internal/ui"
)

const version = "0.3.0"

var (
	// flagDir is set by --dir.
	flagDir string
	// flagList is set by --list and overrides the saved active list.
	flagList string

	// app holds everything PersistentPreRunE wires up.
	app struct {
		cfg    *config.Config
		log    *zap.Logger
		db     *store.SQLite
		userID string
		sess   session.Store
		lists  []model.List
		active model.List
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "handla",
	Short: "A shared shopping list",
	Long: `Handla keeps a shared shopping list: add items, check them off,
swipe them away, and share lists with other people. Run it without a
subcommand for the interactive screen.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "config/data directory (default ~/.handla)")
	rootCmd.PersistentFlags().StringVar(&flagList, "list", "", "operate on this list instead of the active one")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(shareCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("handla v" + version)
	},
}

func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	dir := flagDir
	if dir == "" {
		var err error
		if dir, err = config.Dir(); err != nil {
			return err
		}
	}
	cfg, err := config.Load(dir)
	if err != nil {
		ui.Fail(err.Error())
		return err
	}
	if err := cfg.Validate(); err != nil {
		ui.Fail(err.Error())
		return err
	}
	app.cfg = cfg

	if app.log, err = fileLogger(cfg.LogFile); err != nil {
		ui.Fail("open log: " + err.Error())
		return err
	}

	ctx := cmd.Context()
	if app.db, err = store.Open(ctx, cfg.Database); err != nil {
		ui.Fail("open database: " + err.Error())
		return err
	}
	if app.userID, err = app.db.EnsureUser(ctx, cfg.User); err != nil {
		ui.Fail(err.Error())
		return err
	}
	if app.lists, err = lists.LoadOrCreate(ctx, app.db, app.userID); err != nil {
		ui.Fail(err.Error())
		return err
	}

	app.sess = session.Store{Dir: cfg.Dir}
	saved := ""
	if st, err := app.sess.Load(); err == nil && st != nil {
		saved = st.ActiveListID
	}
	if flagList != "" {
		l, ok := findList(app.lists, flagList)
		if !ok {
			ui.Fail("no list named " + flagList)
			return fmt.Errorf("no list %q", flagList)
		}
		app.active = l
	} else {
		app.active, _ = lists.PickActive(app.lists, saved)
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if app.log != nil {
		_ = app.log.Sync()
	}
	if app.db != nil {
		return app.db.Close()
	}
	return nil
}

// fileLogger writes structured logs to a file; the terminal belongs to
// the TUI. An empty path disables logging.
func fileLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// findList matches by exact id, then case-insensitive name.
func findList(ls []model.List, key string) (model.List, bool) {
	for _, l := range ls {
		if l.ID == key {
			return l, true
		}
	}
	for _, l := range ls {
		if strings.EqualFold(l.Name, key) {
			return l, true
		}
	}
	return model.List{}, false
}

// loadedEngine builds an engine for the active list with the snapshot
// already loaded.
func loadedEngine(cmd *cobra.Command) (*engine.Engine, error) {
	eng := engine.New(engine.NewItemStore(), app.db, app.active.ID, app.log)
	if err := eng.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return eng, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	corpus, err := suggest.LoadFile(app.cfg.Suggestions)
	if err != nil {
		app.log.Warn("suggestions unavailable", zap.Error(err))
	}

	m := tui.New(tui.Deps{
		Engine:  engine.New(engine.NewItemStore(), app.db, app.active.ID, app.log),
		Remote:  app.db,
		Session: app.sess,
		Lists:   app.lists,
		Active:  app.active,
		Corpus:  corpus,
		User:    app.cfg.User,
		Log:     app.log,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
