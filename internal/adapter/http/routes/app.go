package routes

import (
	"context"

	"mecanica_rff/internal/adapter/http/handlers"
	"mecanica_rff/internal/adapter/persistence/repository"
	"mecanica_rff/internal/adapter/session"
	"mecanica_rff/internal/domain/entities"
	"mecanica_rff/internal/infrastructure/cache"
	"mecanica_rff/internal/infrastructure/config"
	"mecanica_rff/internal/infrastructure/database"
	"mecanica_rff/internal/infrastructure/live"
	"mecanica_rff/internal/infrastructure/payments"
	"mecanica_rff/internal/infrastructure/printing"
	"mecanica_rff/internal/usecase"
	"mecanica_rff/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

type application struct {
	handlers Handlers
	closers  []func() error
}

func (a *application) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			log.Warn().Err(err).Msg("[server] close failed")
		}
	}
}

func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	app := &application{}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
	if err != nil {
		return nil, err
	}

	store, err := newSessionStore(ctx, cfg.Redis, app)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}

	clientRepo := repository.NewClientDynamoRepository(ddb, cfg.Dynamo.ClientsTable)
	partRepo := repository.NewPartDynamoRepository(ddb, cfg.Dynamo.PartsTable)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Dynamo.QuotesTable, cfg.Dynamo.PartsTable)
	paymentRepo := repository.NewQuotePaymentDynamoRepository(ddb, cfg.Dynamo.PaymentsTable)
	draftRepo := session.NewDraftRepository(store, cfg.Builder.SessionTTL)
	editorRepo := session.NewEditorSessionRepository(store, cfg.Builder.SessionTTL)

	clientsFeed := live.NewFeed[entities.Client](entities.CollectionClientes, clientRepo.List, cfg.Live.PollInterval)
	partsFeed := live.NewFeed[entities.Part](entities.CollectionPecas, partRepo.List, cfg.Live.PollInterval)
	quotesFeed := live.NewFeed[entities.Quote](entities.CollectionOrcamentos, quoteRepo.List, cfg.Live.PollInterval)
	hub := live.NewHub()
	hub.Register(clientsFeed.Collection(), clientsFeed)
	hub.Register(partsFeed.Collection(), partsFeed)
	hub.Register(quotesFeed.Collection(), quotesFeed)

	printer := printing.NewQuotePrinter(cfg.Letterhead)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Warn().Err(err).Msg("[server] Mercado Pago gateway not configured; order payments disabled")
	} else {
		gateway = mpGateway
	}

	builderUseCase := usecase.NewQuoteBuilderUseCase(draftRepo, clientRepo, partRepo, quoteRepo, hub, printer, loc)
	editorUseCase := usecase.NewQuoteEditorUseCase(editorRepo, quoteRepo, hub)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, printer, quotesFeed)
	catalogUseCase := usecase.NewCatalogUseCase(clientRepo, partRepo, clientsFeed, partsFeed, hub)
	paymentUseCase := usecase.NewQuotePaymentUseCase(paymentRepo, quoteRepo, gateway, cfg.Payments.TestPayerEmail)

	app.handlers = Handlers{
		Draft:   handlers.NewDraftHandler(builderUseCase),
		Editor:  handlers.NewEditorHandler(editorUseCase),
		Quote:   handlers.NewQuoteHandler(quoteUseCase),
		Catalog: handlers.NewCatalogHandler(catalogUseCase),
		Payment: handlers.NewQuotePaymentHandler(paymentUseCase),
	}
	return app, nil
}

func newSessionStore(ctx context.Context, cfg config.RedisConfig, app *application) (session.Store, error) {
	if cfg.URL == "" {
		log.Info().Msg("[server] REDIS_URL not set; drafts and editors kept in memory")
		return session.NewMemoryStore(), nil
	}
	rdb, err := cache.NewRedis(ctx, cfg.URL)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, rdb.Close)
	return session.NewRedisStore(rdb), nil
}
