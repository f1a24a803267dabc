package main

import (
	"context"

	"deliverus-client/internal/config"
	"deliverus-client/internal/httpapi"
	"deliverus-client/internal/logger"
	"deliverus-client/internal/notify"
	"deliverus-client/internal/order"
	"deliverus-client/internal/restaurant"
	"deliverus-client/internal/screens"
	"deliverus-client/internal/session"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	sess := session.Anonymous()
	if cfg.AccessToken != "" {
		var err error
		sess, err = session.FromToken(cfg.AccessToken)
		if err != nil {
			logger.L().Warn("invalid access token, continuing anonymously", zap.Error(err))
			sess = session.Anonymous()
		}
	}

	api := httpapi.NewClient(cfg.APIBaseURL, sess.Token, cfg.HTTPTimeout)
	notifier := notify.NewLogNotifier()

	restaurantRepo := restaurant.NewRepository(api)
	orderRepo := order.NewRepository(api)

	ctx := context.Background()

	home := screens.NewRestaurants(restaurantRepo, notifier)
	if err := home.Load(ctx); err != nil {
		logger.L().Warn("restaurants screen load failed", zap.Error(err))
	}
	logger.L().Info("restaurants loaded",
		zap.Int("restaurant_count", len(home.Restaurants())),
		zap.Int("popular_count", len(home.Popular())),
	)

	myOrders := screens.NewOrdersList(orderRepo, notifier, sess)
	if err := myOrders.Load(ctx); err != nil {
		logger.L().Warn("orders screen load failed", zap.Error(err))
		return
	}
	logger.L().Info("orders loaded", zap.Int("order_count", len(myOrders.Orders())))
}
