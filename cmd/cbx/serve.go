package main

import (
	"context"
	"log/slog"
	"os"

	"cbx/config"
	"cbx/internal/delivery"
	"cbx/internal/delivery/http"
	httpmiddleware "cbx/internal/delivery/http/middleware"
	"cbx/internal/delivery/http/router/handler"
	"cbx/internal/delivery/middleware"
	"cbx/internal/infra/auth"
	logs "cbx/internal/infra/log"
	"cbx/internal/infra/persistence/postgres"
	"cbx/internal/infra/qrcode"
	"cbx/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				injectInfra(),
				injectRepo(),
				injectService(),
				injectUsecase(),
				injectDelivery(),
				injectMiddleware(),
				injectHandler(),
				fx.Invoke(
					startServer,
				),
			)
			if err := app.Err(); err != nil {
				return err
			}

			app.Run()

			return nil
		},
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewIdentityService,
			impl.NewAccountingService,
			impl.NewCareerService,
			impl.NewSupplyService,
			impl.NewSurveyService,
			impl.NewPortalService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountingHandler,
			handler.NewCareerHandler,
			handler.NewSupplyHandler,
			handler.NewSurveyHandler,
			handler.NewPortalHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
