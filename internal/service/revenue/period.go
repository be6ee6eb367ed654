// Package revenue 提供收入聚合与报表服务
package revenue

import (
	"time"
)

// 周期标识
const (
	PeriodAll   = "all"
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// PeriodWindow 周期窗口
// End 为空表示开放区间，截止到当前时刻
type PeriodWindow struct {
	Start time.Time
	End   *time.Time
}

// Contains 判断时间点是否落在窗口内
func (w PeriodWindow) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	if w.End != nil && t.After(*w.End) {
		return false
	}
	return true
}

// ResolveWindow 将周期标识或显式日期解析为周期窗口
// 显式日期优先于周期标识；未识别的标识按 all 处理而不是报错
// 周期标识是相对 now 的滚动窗口，today 指最近 24 小时而非自然日零点起
func ResolveWindow(period, startDate, endDate string, now time.Time) PeriodWindow {
	if startDate != "" {
		if start, err := parseDate(startDate); err == nil {
			window := PeriodWindow{Start: start}
			if endDate != "" {
				if end, err := parseDate(endDate); err == nil {
					// 含当天整天
					endOfDay := end.Add(24*time.Hour - time.Second)
					window.End = &endOfDay
				}
			}
			return window
		}
	}

	switch period {
	case PeriodToday:
		return PeriodWindow{Start: now.AddDate(0, 0, -1)}
	case PeriodWeek:
		return PeriodWindow{Start: now.AddDate(0, 0, -7)}
	case PeriodMonth:
		return PeriodWindow{Start: now.AddDate(0, -1, 0)}
	case PeriodYear:
		return PeriodWindow{Start: now.AddDate(-1, 0, 0)}
	default:
		return PeriodWindow{Start: time.Unix(0, 0)}
	}
}

// DateBucket 由周期标识派生快照分组键
// 仅作为分组标签，不参与过滤
func DateBucket(period string) string {
	switch period {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear:
		return period
	default:
		return "now"
	}
}

// parseDate 解析日期参数，兼容 ISO 日期与完整时间戳
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
