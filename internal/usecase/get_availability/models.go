package get_availability

import (
	"time"

	"github.com/m04kA/RST-ReservationService/pkg/types"
)

// Request модель запроса доступности слотов на дату
type Request struct {
	Date time.Time // Дата (без времени)
}

// Response модель ответа со списком слотов и их доступностью
type Response struct {
	Date       time.Time // Дата, на которую запрашивалась доступность
	DateClosed bool      // Ресторан закрыт в эту дату целиком (closed_dates)
	Slots      []Slot    // Все активные слоты каталога с их доступностью
}

// Slot доступность одного временного слота на запрошенную дату
type Slot struct {
	SlotID            int64            // ID слота в каталоге
	Time              types.TimeString // Время слота ("19:00")
	Available         bool             // Можно ли бронировать
	RemainingCapacity int              // Сколько мест осталось
	MaxCapacity       int              // Вместимость слота
	IsActive          bool             // Слот активен в каталоге
	IsLunch           bool             // Обеденный слот
	IsRecurringClosed bool             // Попадает в еженедельное закрытие
}
