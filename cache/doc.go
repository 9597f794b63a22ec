// Package cache provides the read-through cache contract used to front the
// DAO layer, together with the key serializer that turns an operation and
// its arguments into a stable key.
//
// The default implementation lives in internal/cacheinfra and is backed by
// sturdyc:
//
//	svc, err := cache.NewCacheService(cfg)
//	if err != nil {
//		return err
//	}
//	key := cache.NewDefaultKeySerializer().SerializeKey("client::GetByID", "42")
//	record, err := cache.GetOrFetch(ctx, svc, key, func(ctx context.Context) (entity.Record, error) {
//		return clients.GetByID(ctx, "42")
//	})
//
// Keys are only stable within a process; the cache is never shared.
package cache
