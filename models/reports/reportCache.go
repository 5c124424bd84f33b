package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/utils"
	"github.com/sirupsen/logrus"
)

func logSlowReport(ctx context.Context, name string, started time.Time, extra map[string]any) {
	d := time.Since(started)
	if d < config.ReportSlowThreshold() {
		return
	}
	cid, _ := utils.GetCorrelationIdFromContext(ctx)
	config.GetLogger().WithFields(logrus.Fields{
		"module":         "Reports",
		"report":         name,
		"ms":             d.Milliseconds(),
		"correlation_id": cid,
		"extra":          extra,
	}).Warn("slow_report")
}

// cachedReport serves name from Redis when ENABLE_REPORT_CACHE is on, else runs load.
// Cache failures fall through to load.
func cachedReport[T any](ctx context.Context, name string, dateRange *DateRange, load func() (T, error)) (T, error) {
	start := time.Now()
	defer logSlowReport(ctx, name, start, map[string]any{"range": dateRange.cacheKey()})

	if !config.ReportCacheEnabled() {
		return load()
	}

	key := fmt.Sprintf("report:%s:%s", name, dateRange.cacheKey())
	var cached T
	if ok, err := utils.RetrieveReportCache(key, &cached); err == nil && ok {
		return cached, nil
	} else if err != nil {
		config.LogError(config.GetLogger(), "Reports", "cachedReport", "reading cache", key, err)
	}

	result, err := load()
	if err != nil {
		return result, err
	}
	if err := utils.StoreReportCache(key, result); err != nil {
		config.LogError(config.GetLogger(), "Reports", "cachedReport", "writing cache", key, err)
	}
	return result, nil
}
