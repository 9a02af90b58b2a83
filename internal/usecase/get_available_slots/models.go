package get_available_slots

// Request модель запроса на получение свободных слотов
type Request struct {
	Date     string // Календарная дата в таймзоне клиента (YYYY-MM-DD)
	Timezone string // IANA таймзона, в которой клиент хочет видеть слоты
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date     string   // Дата, на которую запрашивались слоты
	Timezone string   // Таймзона отображения
	Slots    []string // Свободные слоты в формате ISO-8601 с офсетом таймзоны
}
