package domain

import "time"

// TripRequest заявка на индивидуальный тур из формы планирования поездки
type TripRequest struct {
	Name          string
	Email         string
	Phone         string
	Country       string
	ArrivalDate   *time.Time
	DepartureDate *time.Time
	Adults        int
	Children      int
	Budget        string
	Accommodation string
	Interests     []string
	Message       string
}

// Guests общее количество путешественников
func (t *TripRequest) Guests() int {
	return t.Adults + t.Children
}

// Nights количество ночей между датами или 0, если даты не заданы
func (t *TripRequest) Nights() int {
	if t.ArrivalDate == nil || t.DepartureDate == nil {
		return 0
	}
	d := t.DepartureDate.Sub(*t.ArrivalDate)
	if d <= 0 {
		return 0
	}
	return int(d.Hours() / 24)
}
