//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	paymentGateway "marketplace/internal/gateway/payment"
	"marketplace/internal/handlers/rest/cart_count_get"
	"marketplace/internal/handlers/rest/cart_get"
	"marketplace/internal/handlers/rest/cart_item_delete"
	"marketplace/internal/handlers/rest/cart_item_post"
	"marketplace/internal/handlers/rest/cart_item_put"
	"marketplace/internal/handlers/rest/checkout_post"
	"marketplace/internal/handlers/rest/delivery_accept_post"
	"marketplace/internal/handlers/rest/delivery_cancel_post"
	"marketplace/internal/handlers/rest/delivery_complete_post"
	"marketplace/internal/handlers/rest/delivery_reject_post"
	"marketplace/internal/handlers/rest/delivery_request_get"
	"marketplace/internal/handlers/rest/delivery_requests_get"
	"marketplace/internal/handlers/rest/delivery_start_post"
	"marketplace/internal/handlers/rest/notification_preferences_get"
	"marketplace/internal/handlers/rest/notification_preferences_put"
	"marketplace/internal/handlers/rest/notification_read_post"
	"marketplace/internal/handlers/rest/notifications_count_get"
	"marketplace/internal/handlers/rest/notifications_get"
	"marketplace/internal/handlers/rest/notifications_read_all_post"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_status_post"
	"marketplace/internal/handlers/rest/orders_get"
	"marketplace/internal/handlers/rest/payment_order_post"
	"marketplace/internal/handlers/tasks/notification_cleanup"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/order_number"
	"marketplace/internal/pkg/factory/payment_event_handle"

	cartRepo "marketplace/internal/repository/cart"
	catalogRepo "marketplace/internal/repository/catalog"
	deliveryRepo "marketplace/internal/repository/delivery"
	notificationRepo "marketplace/internal/repository/notification"
	orderRepo "marketplace/internal/repository/order"
	"marketplace/internal/repository/unreadcache"
	userRepo "marketplace/internal/repository/user"
	cartService "marketplace/internal/service/cart"
	deliveryService "marketplace/internal/service/delivery"
	notificationService "marketplace/internal/service/notification"
	orderService "marketplace/internal/service/order"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type (
	CleanupInterval  time.Duration
	CleanupRetention time.Duration
)

type Application struct {
	ServiceCart         ServiceCart
	ServiceOrder        ServiceOrder
	ServiceDelivery     ServiceDelivery
	ServiceNotification ServiceNotification
	BackgroundWorkers   *background.Worker
}

type ServiceCart interface {
	cart_get.Service
	cart_item_post.Service
	cart_item_put.Service
	cart_item_delete.Service
	cart_count_get.Service
}

type ServiceOrder interface {
	checkout_post.Service
	payment_order_post.Service
	orders_get.Service
	order_get.Service
	order_status_post.Service
}

type ServiceDelivery interface {
	delivery_requests_get.Service
	delivery_request_get.Service
	delivery_accept_post.Service
	delivery_reject_post.Service
	delivery_start_post.Service
	delivery_complete_post.Service
	delivery_cancel_post.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_post.Service
	notifications_read_all_post.Service
	notifications_count_get.Service
	notification_preferences_get.Service
	notification_preferences_put.Service

	SeedTemplates(ctx context.Context) error
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideCleanupRetention,
		providePricing,
		providePaymentGateway,

		provideCartRepository,
		provideCatalogRepository,
		provideOrderRepository,
		provideDeliveryRepository,
		provideNotificationRepository,
		providePreferenceRepository,
		provideTemplateRepository,
		provideUserRepository,
		provideUnreadCache,

		order_number.New,

		provideServiceCart,
		provideServiceOrder,
		provideServiceDelivery,
		provideServiceNotification,

		provideNotificationCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCart), new(*cartService.Service)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Service)),

		wire.Bind(new(cartService.Repository), new(*cartRepo.Repository)),
		wire.Bind(new(cartService.CatalogRepository), new(*catalogRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.DeliveryRequestRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(orderService.CartService), new(*cartService.Service)),
		wire.Bind(new(orderService.UserReader), new(*userRepo.Repository)),
		wire.Bind(new(orderService.PaymentGateway), new(*paymentGateway.Gateway)),
		wire.Bind(new(orderService.OrderNumberFactory), new(*order_number.OrderNumberFactory)),
		wire.Bind(new(orderService.Notifier), new(*notificationService.Service)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.OrderService), new(*orderService.Service)),
		wire.Bind(new(deliveryService.Notifier), new(*notificationService.Service)),
		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.PreferenceRepository), new(*notificationRepo.PreferenceRepository)),
		wire.Bind(new(notificationService.TemplateRepository), new(*notificationRepo.TemplateRepository)),
		wire.Bind(new(notificationService.UserReader), new(*userRepo.Repository)),
		wire.Bind(new(notificationService.UnreadCache), new(*unreadcache.Cache)),

		wire.Bind(new(cartService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(notification_cleanup.Service), new(*notificationService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	PaymentEventFactory *payment_event_handle.EventHandlerFactory
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		providePricing,
		providePaymentGateway,

		provideCartRepository,
		provideCatalogRepository,
		provideOrderRepository,
		provideDeliveryRepository,
		provideNotificationRepository,
		providePreferenceRepository,
		provideTemplateRepository,
		provideUserRepository,
		provideUnreadCache,

		order_number.New,

		provideServiceCart,
		provideServiceOrder,
		provideServiceNotification,

		providePaymentEventFactory,

		wire.Bind(new(cartService.Repository), new(*cartRepo.Repository)),
		wire.Bind(new(cartService.CatalogRepository), new(*catalogRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.DeliveryRequestRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(orderService.CartService), new(*cartService.Service)),
		wire.Bind(new(orderService.UserReader), new(*userRepo.Repository)),
		wire.Bind(new(orderService.PaymentGateway), new(*paymentGateway.Gateway)),
		wire.Bind(new(orderService.OrderNumberFactory), new(*order_number.OrderNumberFactory)),
		wire.Bind(new(orderService.Notifier), new(*notificationService.Service)),
		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.PreferenceRepository), new(*notificationRepo.PreferenceRepository)),
		wire.Bind(new(notificationService.TemplateRepository), new(*notificationRepo.TemplateRepository)),
		wire.Bind(new(notificationService.UserReader), new(*userRepo.Repository)),
		wire.Bind(new(notificationService.UnreadCache), new(*unreadcache.Cache)),

		wire.Bind(new(payment_event_handle.PaymentService), new(*orderService.Service)),

		wire.Bind(new(cartService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

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

func provideCartRepository(querier *querier.Querier) *cartRepo.Repository {
	return cartRepo.New(querier)
}

func provideCatalogRepository(querier *querier.Querier) *catalogRepo.Repository {
	return catalogRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func providePreferenceRepository(querier *querier.Querier) *notificationRepo.PreferenceRepository {
	return notificationRepo.NewPreferenceRepository(querier)
}

func provideTemplateRepository(querier *querier.Querier) *notificationRepo.TemplateRepository {
	return notificationRepo.NewTemplateRepository(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideUnreadCache(redisClient *redis.Client) *unreadcache.Cache {
	return unreadcache.New(redisClient)
}

func providePricing(cfg *config.Config) orderService.Pricing {
	return orderService.Pricing{
		DeliveryFee: cfg.Order.DeliveryFee,
		TaxRate:     cfg.Order.TaxRate,
	}
}

func providePaymentGateway(cfg *config.Config) *paymentGateway.Gateway {
	return paymentGateway.New(paymentGateway.Config{
		BaseURL:   cfg.Payment.BaseURL,
		KeyID:     cfg.Payment.KeyID,
		KeySecret: cfg.Payment.KeySecret,
	}, &http.Client{Timeout: 10 * time.Second})
}

func provideServiceCart(
	repository cartService.Repository,
	catalog cartService.CatalogRepository,
	txManager cartService.TxManager,
) *cartService.Service {
	return cartService.New(repository, catalog, txManager)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	deliveryRequests orderService.DeliveryRequestRepository,
	carts orderService.CartService,
	users orderService.UserReader,
	gateway orderService.PaymentGateway,
	numbers orderService.OrderNumberFactory,
	notifier orderService.Notifier,
	txManager orderService.TxManager,
	pricing orderService.Pricing,
) *orderService.Service {
	return orderService.New(log, repository, deliveryRequests, carts, users, gateway, numbers, notifier, txManager, pricing)
}

func provideServiceDelivery(
	log logger.Logger,
	repository deliveryService.Repository,
	orders deliveryService.OrderService,
	notifier deliveryService.Notifier,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(log, repository, orders, notifier, txManager)
}

func provideServiceNotification(
	log logger.Logger,
	repository notificationService.Repository,
	preferences notificationService.PreferenceRepository,
	templates notificationService.TemplateRepository,
	users notificationService.UserReader,
	unreadCache notificationService.UnreadCache,
) *notificationService.Service {
	return notificationService.New(log, repository, preferences, templates, users, unreadCache)
}

func providePaymentEventFactory(payments payment_event_handle.PaymentService) *payment_event_handle.EventHandlerFactory {
	return payment_event_handle.NewEventHandlerFactory(payments)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.NotificationCleanupInterval)
}

func provideCleanupRetention(cfg *config.Config) CleanupRetention {
	return CleanupRetention(cfg.Tasks.NotificationRetention)
}

func provideNotificationCleanupTask(
	log logger.Logger,
	notificationService notification_cleanup.Service,
	interval CleanupInterval,
	retention CleanupRetention,
) *notification_cleanup.NotificationCleanup {
	return notification_cleanup.NewNotificationCleanup(log, notificationService, time.Duration(interval), time.Duration(retention))
}

func provideTaskList(
	notificationCleanupTask *notification_cleanup.NotificationCleanup,
) []background.Task {
	return []background.Task{
		notificationCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
