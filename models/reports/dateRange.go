package reports

import (
	"context"
	"time"

	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/utils"
	"gorm.io/gorm"
)

// DateRange filters reports by master date. A nil range means no filter.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange applies only when both bounds are given. The range covers
// from's first instant through to's last instant.
func ParseDateRange(from, to string) (*DateRange, error) {
	if from == "" || to == "" {
		return nil, nil
	}
	fromDate, err := utils.ParseDate(from)
	if err != nil {
		return nil, utils.NewValidationError("from: " + err.Error())
	}
	toDate, err := utils.ParseDate(to)
	if err != nil {
		return nil, utils.NewValidationError("to: " + err.Error())
	}
	if toDate.Before(fromDate) {
		return nil, utils.NewValidationError("from must not be after to")
	}
	return &DateRange{From: utils.StartOfDay(fromDate), To: utils.EndOfDay(toDate)}, nil
}

func (r *DateRange) cacheKey() string {
	if r == nil {
		return "all"
	}
	return utils.FormatDate(r.From) + "_" + utils.FormatDate(r.To)
}

// whereClause returns the SQL fragment and params for column; both empty when unfiltered.
func (r *DateRange) whereClause(column string) (string, map[string]interface{}) {
	if r == nil {
		return "", nil
	}
	params := map[string]interface{}{
		"from": r.From,
		"to":   r.To,
	}
	return "WHERE " + column + " BETWEEN @from AND @to", params
}

// rawQuery binds params only when there are any; gorm appends an unused map as a stray argument.
func rawQuery(ctx context.Context, sql string, params map[string]interface{}) *gorm.DB {
	db := config.GetDB().WithContext(ctx)
	if len(params) == 0 {
		return db.Raw(sql)
	}
	return db.Raw(sql, params)
}
