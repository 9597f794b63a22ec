// Package daocache provides a caching decorator for dao.DAO.
//
// CachedDAO serves GetByID and GetBatch through a cache.CacheService and
// passes writes to the wrapped DAO. After any successful write the whole
// namespace of the kind is invalidated, so the next read always reflects the
// store.
//
//	base := dao.New(st, entity.KindClient, "clientId")
//	svc, _ := cache.NewCacheService(cfg.Cache)
//	clients := daocache.New(base, svc, daocache.WithLogger(logger))
//
// Cached values are records, which are mutable maps, so every read returns a
// copy.
package daocache
