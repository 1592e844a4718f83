//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"amerex/internal/gateway/stripepay"
	"amerex/internal/handlers/rest/address_delete"
	"amerex/internal/handlers/rest/address_post"
	"amerex/internal/handlers/rest/address_put"
	"amerex/internal/handlers/rest/addresses_get"
	"amerex/internal/handlers/rest/admin_dashboard_get"
	"amerex/internal/handlers/rest/admin_export_get"
	"amerex/internal/handlers/rest/admin_payment_approve_post"
	"amerex/internal/handlers/rest/admin_payment_reject_post"
	"amerex/internal/handlers/rest/admin_payments_get"
	"amerex/internal/handlers/rest/admin_quotes_get"
	"amerex/internal/handlers/rest/admin_shipment_approve_post"
	"amerex/internal/handlers/rest/admin_shipment_put"
	"amerex/internal/handlers/rest/admin_shipments_get"
	"amerex/internal/handlers/rest/admin_tickets_get"
	"amerex/internal/handlers/rest/admin_tracking_delete"
	"amerex/internal/handlers/rest/admin_tracking_post"
	"amerex/internal/handlers/rest/admin_users_get"
	"amerex/internal/handlers/rest/auth_login_post"
	"amerex/internal/handlers/rest/auth_register_post"
	"amerex/internal/handlers/rest/contact_post"
	"amerex/internal/handlers/rest/draft_back_post"
	"amerex/internal/handlers/rest/draft_coupon_delete"
	"amerex/internal/handlers/rest/draft_coupon_post"
	"amerex/internal/handlers/rest/draft_delete"
	"amerex/internal/handlers/rest/draft_get"
	"amerex/internal/handlers/rest/draft_insurance_post"
	"amerex/internal/handlers/rest/draft_international_post"
	"amerex/internal/handlers/rest/draft_post"
	"amerex/internal/handlers/rest/draft_step_post"
	"amerex/internal/handlers/rest/notifications_get"
	"amerex/internal/handlers/rest/notifications_read_post"
	"amerex/internal/handlers/rest/payment_intent_post"
	"amerex/internal/handlers/rest/payment_submit_post"
	"amerex/internal/handlers/rest/payments_get"
	"amerex/internal/handlers/rest/profile_get"
	"amerex/internal/handlers/rest/profile_put"
	"amerex/internal/handlers/rest/quote_calculate_post"
	"amerex/internal/handlers/rest/quote_post"
	"amerex/internal/handlers/rest/shipment_get"
	"amerex/internal/handlers/rest/shipments_get"
	"amerex/internal/handlers/rest/ticket_close_post"
	"amerex/internal/handlers/rest/ticket_get"
	"amerex/internal/handlers/rest/ticket_post"
	"amerex/internal/handlers/rest/ticket_reply_post"
	"amerex/internal/handlers/rest/tickets_get"
	"amerex/internal/handlers/rest/track_get"
	"amerex/internal/handlers/tasks/draft_cleanup"
	"amerex/internal/pkg/config"
	"amerex/internal/pkg/factory/delivery_estimate"
	"amerex/internal/pkg/factory/payment_method"
	"amerex/internal/pkg/kafka"
	authmw "amerex/internal/pkg/middlewares/auth"
	"amerex/internal/pkg/tokens"

	addressRepo "amerex/internal/repository/address"
	contactRepo "amerex/internal/repository/contact"
	couponRepo "amerex/internal/repository/coupon"
	draftRepo "amerex/internal/repository/draft"
	notificationRepo "amerex/internal/repository/notification"
	paymentRepo "amerex/internal/repository/payment"
	quoteRepo "amerex/internal/repository/quote"
	shipmentRepo "amerex/internal/repository/shipment"
	ticketRepo "amerex/internal/repository/ticket"
	userRepo "amerex/internal/repository/user"

	accountService "amerex/internal/service/account"
	adminService "amerex/internal/service/admin"
	authService "amerex/internal/service/auth"
	contactService "amerex/internal/service/contact"
	couponService "amerex/internal/service/coupon"
	notificationService "amerex/internal/service/notification"
	paymentService "amerex/internal/service/payment"
	"amerex/internal/service/pricing"
	quoteService "amerex/internal/service/quote"
	shipmentService "amerex/internal/service/shipment"
	ticketService "amerex/internal/service/ticket"
	wizardService "amerex/internal/service/wizard"

	"amerex/pkg/background"
	"amerex/pkg/cooldown"
	"amerex/pkg/logger"
	"amerex/pkg/querier"
	"amerex/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceAuth         ServiceAuth
	ServiceAccount      ServiceAccount
	ServiceQuote        ServiceQuote
	ServiceWizard       ServiceWizard
	ServiceShipment     ServiceShipment
	ServicePayment      ServicePayment
	ServiceTicket       ServiceTicket
	ServiceContact      ServiceContact
	ServiceNotification ServiceNotification
	ServiceAdmin        ServiceAdmin
	BackgroundWorkers   *background.Worker
}

type ServiceAuth interface {
	auth_register_post.Service
	auth_login_post.Service
	authmw.Authenticator
}

type ServiceAccount interface {
	profile_get.Service
	profile_put.Service
	addresses_get.Service
	address_post.Service
	address_put.Service
	address_delete.Service
}

type ServiceQuote interface {
	quote_calculate_post.Service
	quote_post.Service
	admin_quotes_get.Service
}

type ServiceWizard interface {
	draft_post.Service
	draft_get.Service
	draft_delete.Service
	draft_step_post.Service
	draft_back_post.Service
	draft_coupon_post.Service
	draft_coupon_delete.Service
	draft_insurance_post.Service
	draft_international_post.Service
}

type ServiceShipment interface {
	track_get.Service
	shipment_get.Service
	shipments_get.Service
}

type ServicePayment interface {
	payment_intent_post.Service
	payment_submit_post.Service
	payments_get.Service
}

type ServiceTicket interface {
	tickets_get.Service
	ticket_post.Service
	ticket_get.Service
	ticket_reply_post.Service
	ticket_close_post.Service
}

type ServiceContact interface {
	contact_post.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notifications_read_post.Service
}

type ServiceAdmin interface {
	admin_dashboard_get.Service
	admin_shipments_get.Service
	admin_shipment_put.Service
	admin_shipment_approve_post.Service
	admin_tracking_post.Service
	admin_tracking_delete.Service
	admin_payments_get.Service
	admin_payment_approve_post.Service
	admin_payment_reject_post.Service
	admin_users_get.Service
	admin_tickets_get.Service
	admin_export_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideProducer,
		provideTokenStrategy,
		provideStripeGateway,
		provideDraftStorage,
		pricing.New,
		delivery_estimate.New,

		provideUserRepository,
		provideAddressRepository,
		provideShipmentRepository,
		providePaymentRepository,
		provideQuoteRepository,
		provideTicketRepository,
		provideContactRepository,
		provideCouponRepository,
		provideNotificationRepository,

		provideServiceAuth,
		provideServiceAccount,
		provideServiceQuote,
		provideServiceCoupon,
		provideServiceWizard,
		provideServiceShipment,
		providePaymentStrategies,
		provideServicePayment,
		provideServiceTicket,
		provideServiceContact,
		provideServiceNotification,
		provideServiceAdmin,

		provideDraftCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceAccount), new(*accountService.Account)),
		wire.Bind(new(ServiceQuote), new(*quoteService.Quote)),
		wire.Bind(new(ServiceWizard), new(*wizardService.Wizard)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServiceTicket), new(*ticketService.Ticket)),
		wire.Bind(new(ServiceContact), new(*contactService.Contact)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),
		wire.Bind(new(ServiceAdmin), new(*adminService.Admin)),

		wire.Bind(new(draft_cleanup.Service), new(*wizardService.Wizard)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Notification
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shipment-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideNotificationRepository,
		provideServiceNotification,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideProducer(log logger.Logger, cfg *config.Config) (*kafka.Producer, error) {
	return kafka.NewProducer(
		log,
		cfg.Kafka.Sarama.Version,
		cfg.Kafka.BrokerList(),
		cfg.Kafka.ShipmentStatusTopic,
		cfg.Kafka.ContactTopic,
	)
}

func provideTokenStrategy(cfg *config.Config) *tokens.HMACStrategy {
	return tokens.NewHMACStrategy(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
}

func provideStripeGateway(cfg *config.Config) *stripepay.StripeGateway {
	return stripepay.New(cfg.Stripe.APIKey)
}

func provideDraftStorage(cfg *config.Config) *draftRepo.Storage {
	return draftRepo.New(cfg.Wizard.DraftTTL)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideAddressRepository(querier *querier.Querier) *addressRepo.Repository {
	return addressRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideQuoteRepository(querier *querier.Querier) *quoteRepo.Repository {
	return quoteRepo.New(querier)
}

func provideTicketRepository(querier *querier.Querier) *ticketRepo.Repository {
	return ticketRepo.New(querier)
}

func provideContactRepository(querier *querier.Querier) *contactRepo.Repository {
	return contactRepo.New(querier)
}

func provideCouponRepository(querier *querier.Querier) *couponRepo.Repository {
	return couponRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideServiceAuth(users *userRepo.Repository, strategy *tokens.HMACStrategy) *authService.Auth {
	return authService.New(users, strategy)
}

func provideServiceAccount(
	users *userRepo.Repository,
	addresses *addressRepo.Repository,
	txManager *tx.Manager,
) *accountService.Account {
	return accountService.New(users, addresses, txManager)
}

func provideServiceQuote(
	repository *quoteRepo.Repository,
	pricer *pricing.Pricing,
	cfg *config.Config,
) *quoteService.Quote {
	return quoteService.New(repository, pricer, cooldown.New(cfg.Cooldowns.Quote))
}

func provideServiceCoupon(repository *couponRepo.Repository) *couponService.Coupon {
	return couponService.New(repository)
}

func provideServiceWizard(
	storage *draftRepo.Storage,
	pricer *pricing.Pricing,
	coupons *couponService.Coupon,
	estimate *delivery_estimate.DeliveryEstimateFactory,
) *wizardService.Wizard {
	return wizardService.New(storage, pricer, coupons, estimate)
}

func provideServiceShipment(
	repository *shipmentRepo.Repository,
	cfg *config.Config,
) *shipmentService.Shipment {
	return shipmentService.New(repository, cooldown.New(cfg.Cooldowns.Tracking))
}

func providePaymentStrategies(gateway *stripepay.StripeGateway) *payment_method.MethodHandlerFactory {
	return payment_method.NewMethodHandlerFactory(gateway)
}

func provideServicePayment(
	log logger.Logger,
	wizard *wizardService.Wizard,
	strategies *payment_method.MethodHandlerFactory,
	gateway *stripepay.StripeGateway,
	shipments *shipmentRepo.Repository,
	payments *paymentRepo.Repository,
	txManager *tx.Manager,
	producer *kafka.Producer,
) *paymentService.Payment {
	return paymentService.New(wizard, strategies, gateway, shipments, payments, txManager, producer, log)
}

func provideServiceTicket(repository *ticketRepo.Repository) *ticketService.Ticket {
	return ticketService.New(repository)
}

func provideServiceContact(
	repository *contactRepo.Repository,
	producer *kafka.Producer,
	cfg *config.Config,
) *contactService.Contact {
	return contactService.New(repository, producer, cooldown.New(cfg.Cooldowns.Contact))
}

func provideServiceNotification(repository *notificationRepo.Repository) *notificationService.Notification {
	return notificationService.New(repository)
}

func provideServiceAdmin(
	shipments *shipmentRepo.Repository,
	payments *paymentRepo.Repository,
	users *userRepo.Repository,
	tickets *ticketService.Ticket,
	txManager *tx.Manager,
	producer *kafka.Producer,
) *adminService.Admin {
	return adminService.New(shipments, payments, users, tickets, txManager, producer)
}

func provideDraftCleanupTask(
	log logger.Logger,
	wizard draft_cleanup.Service,
	cfg *config.Config,
) *draft_cleanup.DraftCleanup {
	return draft_cleanup.New(log, wizard, cfg.Tasks.DraftCleanupInterval)
}

func provideTaskList(
	draftCleanupTask *draft_cleanup.DraftCleanup,
) []background.Task {
	return []background.Task{
		draftCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
