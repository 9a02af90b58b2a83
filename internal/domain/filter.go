package domain

import "time"

// FilterByDate возвращает события с точным совпадением календарной даты
// (поле Date, таймзона сервиса)
func FilterByDate(events []*Event, date string) []*Event {
	filtered := make([]*Event, 0)
	for _, ev := range events {
		if ev.Date == date {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

// FilterByRange возвращает события с началом в [startDate, endDate+1d).
// Конечная дата включается целиком: событие, начавшееся в 23:30 последнего
// дня диапазона, попадает в выборку.
func FilterByRange(events []*Event, startDate, endDate time.Time) []*Event {
	rangeEnd := endDate.AddDate(0, 0, 1)

	filtered := make([]*Event, 0)
	for _, ev := range events {
		if !ev.StartTime.Before(startDate) && ev.StartTime.Before(rangeEnd) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}
