package plan_trip

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/tours-service/internal/domain"
)

const (
	notSpecified = "Not specified"
	tripTourName = "Custom Trip Plan"
)

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return strings.TrimSpace(s)
}

func formatDate(d *time.Time) string {
	if d == nil {
		return notSpecified
	}
	return d.Format(domain.DateFormat)
}

// formatInterests список интересов через запятую или "Not specified"
func formatInterests(interests []string) string {
	cleaned := make([]string, 0, len(interests))
	for _, i := range interests {
		if s := strings.TrimSpace(i); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return notSpecified
	}
	return strings.Join(cleaned, ", ")
}

func formatTravelers(req *Request) string {
	return fmt.Sprintf("%d adults, %d children", req.Adults, req.Children)
}

// formatMessage текст заявки для мессенджера
func formatMessage(req *Request) string {
	var b strings.Builder

	b.WriteString("*New Trip Planning Request*\n\n")
	fmt.Fprintf(&b, "*Name:* %s\n", orNotSpecified(req.Name))
	fmt.Fprintf(&b, "*Email:* %s\n", orNotSpecified(req.Email))
	fmt.Fprintf(&b, "*Phone:* %s\n", orNotSpecified(req.Phone))
	fmt.Fprintf(&b, "*Country:* %s\n\n", orNotSpecified(req.Country))

	fmt.Fprintf(&b, "*Arrival:* %s\n", formatDate(req.ArrivalDate))
	fmt.Fprintf(&b, "*Departure:* %s\n", formatDate(req.DepartureDate))
	if nights := req.Nights(); nights > 0 {
		fmt.Fprintf(&b, "*Nights:* %d\n", nights)
	}
	fmt.Fprintf(&b, "*Travelers:* %s\n", formatTravelers(req))
	fmt.Fprintf(&b, "*Budget:* %s\n", orNotSpecified(req.Budget))
	fmt.Fprintf(&b, "*Accommodation:* %s\n", orNotSpecified(req.Accommodation))
	fmt.Fprintf(&b, "*Interests:* %s\n", formatInterests(req.Interests))

	if msg := strings.TrimSpace(req.Message); msg != "" {
		fmt.Fprintf(&b, "\n*Message:*\n%s\n", msg)
	}

	return b.String()
}

// formatEmailDetails блок specialRequests для письма
func formatEmailDetails(req *Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Country: %s\n", orNotSpecified(req.Country))
	fmt.Fprintf(&b, "Departure: %s\n", formatDate(req.DepartureDate))
	fmt.Fprintf(&b, "Travelers: %s\n", formatTravelers(req))
	fmt.Fprintf(&b, "Budget: %s\n", orNotSpecified(req.Budget))
	fmt.Fprintf(&b, "Accommodation: %s\n", orNotSpecified(req.Accommodation))
	fmt.Fprintf(&b, "Interests: %s\n", formatInterests(req.Interests))
	fmt.Fprintf(&b, "Message: %s", orNotSpecified(req.Message))

	return b.String()
}
