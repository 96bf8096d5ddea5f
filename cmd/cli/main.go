package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SojoC/nexo-ppeam/internal/config"
	"github.com/SojoC/nexo-ppeam/pkg/clients/sheetsclient"
	"github.com/SojoC/nexo-ppeam/pkg/core/model"
	"github.com/SojoC/nexo-ppeam/pkg/core/monthgrid"
	"github.com/SojoC/nexo-ppeam/pkg/core/scheduler"
	"github.com/SojoC/nexo-ppeam/pkg/core/services"
	"github.com/SojoC/nexo-ppeam/pkg/postgres"
	"github.com/SojoC/nexo-ppeam/pkg/roster"
	"github.com/SojoC/nexo-ppeam/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	ctx    context.Context

	// Lazily initialized; only commands that touch Google Sheets pay the
	// OAuth cost
	sheetsClient *sheetsclient.Client

	// Postgres pool when the roster is database-backed
	database *postgres.DB
}

var (
	env string
	app *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nexo",
		Short: "nexo-ppeam CLI - congregation meeting scheduling",
		Long:  `A CLI tool for pairing a congregation roster into weekly meeting slots per location and day.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.database != nil {
				app.database.Close()
			}
			if app != nil && app.logger != nil {
				app.logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(buildWeekCmd())
	rootCmd.AddCommand(publishWeekCmd())
	rootCmd.AddCommand(monthGridCmd())
	rootCmd.AddCommand(listRosterCmd())
	rootCmd.AddCommand(addContactCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger and config; heavier dependencies are created on
// demand per command
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	// Initialize logger
	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.logger.Info("Loading configuration")
	app.cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	return nil
}

// sheets returns the Sheets client, running the OAuth flow on first use
func (a *App) sheets() (*sheetsclient.Client, error) {
	if a.sheetsClient != nil {
		return a.sheetsClient, nil
	}

	a.logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	a.logger.Info("Initializing sheets client")
	client, err := sheetsclient.NewClient(a.ctx, oauthCfg, env)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	a.sheetsClient = client
	return client, nil
}

// rosterProvider builds the provider for the configured roster source
func (a *App) rosterProvider() (roster.Provider, error) {
	switch {
	case a.cfg.Roster.File != "":
		a.logger.Debug("Using file roster", zap.String("path", a.cfg.Roster.File))
		return roster.NewFileProvider(a.cfg.Roster.File), nil

	case a.cfg.Roster.PostgresDSN != "":
		a.logger.Debug("Using postgres roster")
		db, err := a.contactsDB()
		if err != nil {
			return nil, err
		}
		return db, nil

	case a.cfg.Roster.SheetID != "":
		a.logger.Debug("Using sheets roster",
			zap.String("sheet_id", a.cfg.Roster.SheetID),
			zap.String("tab", a.cfg.Roster.SheetTab))
		client, err := a.sheets()
		if err != nil {
			return nil, err
		}
		return sheetsclient.NewRosterReader(client, a.cfg.Roster.SheetID, a.cfg.Roster.SheetTab), nil
	}

	return nil, fmt.Errorf("no roster source configured")
}

// contactsDB connects to the contact directory and applies migrations
func (a *App) contactsDB() (*postgres.DB, error) {
	if a.database != nil {
		return a.database, nil
	}
	if a.cfg.Roster.PostgresDSN == "" {
		return nil, fmt.Errorf("roster.postgresDSN is not configured")
	}

	db, err := postgres.NewDB(a.ctx, a.cfg.Roster.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.RunMigrations(a.ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	a.database = db
	return db, nil
}

// buildWeekOptions parses the shared buildWeek/publishWeek inputs
func buildWeekOptions(startArg, locationsFlag, overridesFlag string, exclusive bool) (services.WeekOptions, error) {
	start, err := time.Parse(scheduler.ISODateFormat, startArg)
	if err != nil {
		return services.WeekOptions{}, fmt.Errorf("start date must be YYYY-MM-DD: %w", err)
	}

	selected := app.cfg.LocationIDs()
	if locationsFlag != "" {
		selected = strings.Split(locationsFlag, ",")
		for i := range selected {
			selected[i] = strings.TrimSpace(selected[i])
		}
	}

	var overrides *scheduler.OverrideStore
	if overridesFlag != "" {
		overrides, err = scheduler.LoadOverrides(overridesFlag)
		if err != nil {
			return services.WeekOptions{}, err
		}
	}

	return services.WeekOptions{
		Start:     start,
		Selected:  selected,
		Overrides: overrides,
		Exclusive: exclusive,
	}, nil
}

// Command definitions

func buildWeekCmd() *cobra.Command {
	var locationsFlag, overridesFlag string
	var exclusive bool

	cmd := &cobra.Command{
		Use:   "buildWeek <start-date>",
		Short: "Build the 7-day slot schedule starting at the given date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildWeekOptions(args[0], locationsFlag, overridesFlag, exclusive)
			if err != nil {
				return err
			}

			provider, err := app.rosterProvider()
			if err != nil {
				return err
			}

			week, err := services.BuildWeekSchedule(app.ctx, provider, app.cfg, app.logger, opts)
			if err != nil {
				return err
			}

			printWeek(week)
			return nil
		},
	}

	cmd.Flags().StringVarP(&locationsFlag, "locations", "l", "", "Comma-separated location IDs (default: all configured)")
	cmd.Flags().StringVarP(&overridesFlag, "overrides", "o", "", "Path to a YAML overrides file keyed by ISO date")
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "Prevent people from being assigned to two simultaneous locations")

	return cmd
}

func publishWeekCmd() *cobra.Command {
	var locationsFlag, overridesFlag string
	var exclusive bool

	cmd := &cobra.Command{
		Use:   "publishWeek <start-date>",
		Short: "Build the week and publish it to the configured spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildWeekOptions(args[0], locationsFlag, overridesFlag, exclusive)
			if err != nil {
				return err
			}

			provider, err := app.rosterProvider()
			if err != nil {
				return err
			}

			week, err := services.BuildWeekSchedule(app.ctx, provider, app.cfg, app.logger, opts)
			if err != nil {
				return err
			}

			client, err := app.sheets()
			if err != nil {
				return err
			}

			if err := services.PublishWeekSchedule(app.ctx, client, app.cfg, app.logger, week); err != nil {
				return err
			}

			fmt.Printf("\n✓ Week schedule published!\n\n")
			fmt.Printf("Schedule ID:    %s\n", week.ID)
			fmt.Printf("Week of:        %s\n", week.Start.Format(scheduler.ISODateFormat))
			fmt.Printf("Spreadsheet ID: %s\n\n", app.cfg.ScheduleSheetID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&locationsFlag, "locations", "l", "", "Comma-separated location IDs (default: all configured)")
	cmd.Flags().StringVarP(&overridesFlag, "overrides", "o", "", "Path to a YAML overrides file keyed by ISO date")
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "Prevent people from being assigned to two simultaneous locations")

	return cmd
}

func monthGridCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monthGrid [date]",
		Short: "Print the month navigation grid for the month containing the given date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := time.Now()
			if len(args) == 1 {
				var err error
				ref, err = time.Parse(scheduler.ISODateFormat, args[0])
				if err != nil {
					return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
				}
			}

			printMonthGrid(monthgrid.Build(ref))
			return nil
		},
	}
}

func listRosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listRoster",
		Short: "Print the normalized roster from the configured source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := app.rosterProvider()
			if err != nil {
				return err
			}

			people, err := provider.ListPeople(app.ctx)
			if err != nil {
				return err
			}

			fmt.Printf("\nRoster (%d people):\n\n", len(people))
			for i, p := range people {
				line := fmt.Sprintf("  %3d. %s", i+1, p.Name)
				if p.Congregation != "" {
					line += fmt.Sprintf(" (%s)", p.Congregation)
				}
				if p.Phone != "" {
					line += "  " + p.Phone
				}
				fmt.Println(line)
			}
			fmt.Println()

			return nil
		},
	}
}

func addContactCmd() *cobra.Command {
	var telefono, congregacion, circuito, privilegio string

	cmd := &cobra.Command{
		Use:   "addContact <id> <nombre>",
		Short: "Insert a contact into the database-backed roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := app.contactsDB()
			if err != nil {
				return err
			}

			contact := &postgres.Contact{
				ID:           args[0],
				Nombre:       args[1],
				Telefono:     telefono,
				Congregacion: congregacion,
				Circuito:     circuito,
				Privilegio:   privilegio,
			}

			if err := db.InsertContact(app.ctx, contact); err != nil {
				return err
			}

			fmt.Printf("\n✓ Contact added: %s (%s)\n\n", contact.Nombre, contact.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&telefono, "telefono", "", "Phone number")
	cmd.Flags().StringVar(&congregacion, "congregacion", "", "Congregation")
	cmd.Flags().StringVar(&circuito, "circuito", "", "Circuit")
	cmd.Flags().StringVar(&privilegio, "privilegio", "", "Privilege")

	return cmd
}

// Output helpers

func printWeek(week *scheduler.WeekSchedule) {
	fmt.Printf("\n✓ Week schedule built!\n\n")
	fmt.Printf("Schedule ID: %s\n", week.ID)
	fmt.Printf("Week of:     %s\n", week.Start.Format(scheduler.ISODateFormat))

	for _, day := range week.Days {
		fmt.Printf("\n%s %s\n", day.DayName, day.Date.Format(scheduler.ISODateFormat))
		if day.PlaceName != "" {
			fmt.Printf("  Place:   %s\n", day.PlaceName)
		}
		if day.ContactName != "" {
			fmt.Printf("  Contact: %s\n", day.ContactName)
		}
		if day.Note != "" {
			fmt.Printf("  Note:    %s\n", day.Note)
		}

		if len(day.Assignments) == 0 {
			fmt.Println("  (no locations selected for this day)")
			continue
		}

		for _, assignment := range day.Assignments {
			fmt.Printf("  %s (capacity %d)\n", assignment.LocationName, assignment.Capacity)
			for _, slot := range assignment.Slots {
				fmt.Printf("    %-8s %s | %s\n", slot.TimeLabel, occupantName(slot.ParticipantA), occupantName(slot.ParticipantB))
			}
		}
	}
	fmt.Println()
}

func occupantName(p *model.Person) string {
	if p == nil {
		return "—"
	}
	return p.Name
}

func printMonthGrid(grid monthgrid.Grid) {
	fmt.Printf("\n%s %d\n\n", grid.Month, grid.Year)
	fmt.Println("  Mo   Tu   We   Th   Fr   Sa   Su")

	for _, week := range grid.Weeks {
		for _, day := range week {
			if day.InMonth {
				fmt.Printf("  %2d ", day.Date.Day())
			} else {
				fmt.Printf(" (%2d)", day.Date.Day())
			}
		}
		fmt.Println()
	}
	fmt.Println()
}
