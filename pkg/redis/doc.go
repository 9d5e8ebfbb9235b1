// Package redis connects to the Redis server used by the shared theme store.
//
// Connect retries the initial ping according to Config, and Healthcheck
// returns a probe suitable for readiness checks:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
package redis
