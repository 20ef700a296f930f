// Package redis connects to Redis and exposes a small prefixed byte store
// used by the shared session store.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	storage := redis.NewStorage(client, cfg.KeyPrefix)
//
// Healthcheck plugs into the readiness endpoint.
package redis
