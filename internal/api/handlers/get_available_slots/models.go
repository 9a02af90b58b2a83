package get_available_slots

import (
	getAvailableSlots "github.com/avilov/MDC-AppointmentService/internal/usecase/get_available_slots"
)

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(date, timezone string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		Date:     date,
		Timezone: timezone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Ответ - плоский JSON массив строк ISO-8601
func FromUseCaseResponse(resp *getAvailableSlots.Response) []string {
	return resp.Slots
}
