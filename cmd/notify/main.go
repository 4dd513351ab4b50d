package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"dashboard/config"
	"dashboard/internal/domain/entity"
	"dashboard/internal/errors"
	logs "dashboard/internal/infra/log"
	"dashboard/internal/infra/persistence/postgres"
	"dashboard/internal/infra/realtime"
	"dashboard/internal/usecase"
	"dashboard/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - send:    Create notifications for one or more recipients and publish them
// - migrate: Create or update the dashboard tables

type sendFlags struct {
	cmd        *flag.FlagSet
	recipients *string
	title      *string
	message    *string
	category   *string
	priority   *string
	actionURL  *string
}

func main() {
	sendCmd := flag.NewFlagSet("send", flag.ExitOnError)
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)

	send := sendFlags{
		cmd:        sendCmd,
		recipients: sendCmd.String("recipients", "", "Comma-separated recipient identity IDs"),
		title:      sendCmd.String("title", "", "Notification title"),
		message:    sendCmd.String("message", "", "Notification body"),
		category:   sendCmd.String("category", string(entity.NotificationCategorySystem), "Notification category"),
		priority:   sendCmd.String("priority", string(entity.NotificationPriorityNormal), "Notification priority (urgent, high, normal, low)"),
		actionURL:  sendCmd.String("action-url", "", "Optional deep link"),
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var err error
	switch os.Args[1] {
	case "send":
		if err = sendCmd.Parse(os.Args[2:]); err == nil {
			err = runSend(ctx, &send)
		}
	case "migrate":
		if err = migrateCmd.Parse(os.Args[2:]); err == nil {
			err = runMigrate(ctx)
		}
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: notify <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  send     Create and publish notifications")
	fmt.Println("  migrate  Create or update the dashboard tables")
	fmt.Println()
	fmt.Println("Example:")
	fmt.Println("  notify send -recipients u1,u2 -title \"Payroll\" -message \"Payslips are ready\" -category payment")
}

func infra() fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTransactionManager,
			impl.NewNotificationDispatcher,
		),
		realtime.Module,
	)
}

// withApp starts the dependency graph, runs fn and stops the graph again.
func withApp(ctx context.Context, fn any) error {
	app := fx.New(infra(), fx.Invoke(fn))
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "start application")
	}

	return app.Stop(ctx)
}

func runSend(ctx context.Context, flags *sendFlags) error {
	input := &usecase.DispatchInput{
		RecipientIDs: splitRecipients(*flags.recipients),
		Title:        *flags.title,
		Message:      *flags.message,
		Category:     entity.NotificationCategory(*flags.category),
		Priority:     entity.NotificationPriority(*flags.priority),
		ActionURL:    *flags.actionURL,
	}

	var created []*entity.Notification
	var dispatchErr error
	err := withApp(ctx, func(lc fx.Lifecycle, dispatcher usecase.NotificationDispatcher) {
		lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				created, dispatchErr = dispatcher.Dispatch(startCtx, input)

				return nil
			},
		})
	})
	if err != nil {
		return err
	}
	if dispatchErr != nil {
		return dispatchErr
	}

	for _, n := range created {
		fmt.Printf("%s -> %s\n", n.ID, n.RecipientID)
	}

	return nil
}

func runMigrate(ctx context.Context) error {
	var migrateErr error
	err := withApp(ctx, func(lc fx.Lifecycle, db *gorm.DB) {
		lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				migrateErr = postgres.AutoMigrate(startCtx, db)

				return nil
			},
		})
	})
	if err != nil {
		return err
	}
	if migrateErr != nil {
		return migrateErr
	}

	fmt.Println("Migration complete")

	return nil
}

func splitRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}

	return ids
}
