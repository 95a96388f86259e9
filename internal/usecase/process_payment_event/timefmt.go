package process_payment_event

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-QueueSkipService/internal/domain"
)

// Форматы, в которых провайдер присылает created_at
var eventTimestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseEventTimestamp парсит created_at события платёжного провайдера
func parseEventTimestamp(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range eventTimestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// renderBookingDate рендерит дату бронирования в таймзоне площадки
func renderBookingDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(domain.EmailDateFormat)
}

// renderBookingTime рендерит время бронирования в таймзоне площадки,
// без ведущего нуля в часах
func renderBookingTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("3:04 PM")
}

// addDisplayHour сдвигает отрендеренное время "H:MM AM/PM" на час вперёд.
// Полночь переходит через сутки ("11:30 PM" -> "12:30 AM"), полдень меняет
// период ("12:45 PM" -> "1:45 PM"). Строка, которую не удалось распарсить,
// возвращается как есть; пустая строка остаётся пустой.
func addDisplayHour(rendered string) string {
	if rendered == "" {
		return ""
	}

	parts := strings.SplitN(rendered, " ", 2)
	if len(parts) != 2 {
		return rendered
	}
	period := strings.ToUpper(strings.TrimSpace(parts[1]))
	if period != "AM" && period != "PM" {
		return rendered
	}

	var hour, minute int
	if _, err := fmt.Sscanf(parts[0], "%d:%d", &hour, &minute); err != nil {
		return rendered
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return rendered
	}

	// В 24-часовую шкалу, плюс час, обратно в 12-часовую
	hour24 := hour % 12
	if period == "PM" {
		hour24 += 12
	}
	hour24 = (hour24 + 1) % 24

	outPeriod := "AM"
	if hour24 >= 12 {
		outPeriod = "PM"
	}
	outHour := hour24 % 12
	if outHour == 0 {
		outHour = 12
	}

	return fmt.Sprintf("%d:%02d %s", outHour, minute, outPeriod)
}
