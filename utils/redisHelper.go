package utils

import (
	"github.com/mmdatafocus/inventory_backend/config"
)

// every cached report key is remembered here so writes can drop them together
const reportCacheKeySet = "ReportCache:Keys"

func StoreReportCache(key string, obj any) error {
	if err := config.SetRedisObject(key, obj, config.ReportCacheTTL()); err != nil {
		return err
	}
	return config.AddRedisSet(reportCacheKeySet, key)
}

// returns false when the key is absent or Redis is not configured
func RetrieveReportCache(key string, dest any) (bool, error) {
	return config.GetRedisObject(key, dest)
}

// drop all cached reports
func ClearReportCache() error {
	keys, err := config.GetRedisSetMembers(reportCacheKeySet)
	if err != nil {
		return err
	}
	keys = append(keys, reportCacheKeySet)
	return config.RemoveRedisKey(keys...)
}
