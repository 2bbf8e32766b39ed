package domain

// StatusPresentation визуальное представление статуса на странице трекинга
type StatusPresentation struct {
	Status BookingStatus `json:"status"`
	Label  string        `json:"label"`
	Color  string        `json:"color"`
	Icon   string        `json:"icon"`
}

var statusPresentations = map[BookingStatus]StatusPresentation{
	StatusPending: {
		Status: StatusPending,
		Label:  "Pending Confirmation",
		Color:  "yellow",
		Icon:   "clock",
	},
	StatusConfirmed: {
		Status: StatusConfirmed,
		Label:  "Confirmed",
		Color:  "green",
		Icon:   "check-circle",
	},
	StatusCancelled: {
		Status: StatusCancelled,
		Label:  "Cancelled",
		Color:  "red",
		Icon:   "x-circle",
	},
	StatusCompleted: {
		Status: StatusCompleted,
		Label:  "Completed",
		Color:  "blue",
		Icon:   "check-circle",
	},
}

// PresentStatus возвращает label/color/icon для статуса.
// Неизвестный статус отображается как pending.
func PresentStatus(status BookingStatus) StatusPresentation {
	if p, ok := statusPresentations[status]; ok {
		return p
	}
	return statusPresentations[StatusPending]
}

// allowedTransitions используется только при включенном booking.strict_transitions
var allowedTransitions = map[BookingStatus]map[BookingStatus]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {StatusCompleted: true, StatusCancelled: true},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransition проверяет переход по таблице pending -> confirmed -> completed,
// отмена разрешена из pending и confirmed. Переход в тот же статус допустим.
func CanTransition(from, to BookingStatus) bool {
	if from == to {
		return true
	}
	return allowedTransitions[from][to]
}
