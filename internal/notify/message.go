package notify

import (
	"fmt"

	"github.com/pankajyadav-dev/ocean/internal/domain"
)

// MapLink returns an OpenStreetMap pin for the event location.
func MapLink(lat, lng float64) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.6f&mlon=%.6f#map=12/%.6f/%.6f", lat, lng, lat, lng)
}

// FormatLocation prefers the reverse-geocoded address and falls back to a
// plain coordinate pair when geocoding produced nothing.
func FormatLocation(address string, lat, lng float64) string {
	if address != "" {
		return address
	}
	return fmt.Sprintf("%.4f, %.4f", lat, lng)
}

// AuthorityMessage is the variant sent to the fixed authority address.
func AuthorityMessage(ev domain.HazardEvent, address string) Message {
	loc := FormatLocation(address, ev.Lat, ev.Lng)
	body := fmt.Sprintf(
		"A new %s hazard has been reported.\n\n"+
			"Severity: %d/10 (%s)\n"+
			"Location: %s\n"+
			"Reported by: %s\n"+
			"Report ID: %s\n",
		ev.Kind.Label(), ev.Severity, domain.SeverityLabel(ev.Severity), loc, ev.ReportedBy, ev.ReportID,
	)
	if ev.Description != "" {
		body += fmt.Sprintf("\nDescription: %s\n", ev.Description)
	}
	body += fmt.Sprintf("\nMap: %s\n", MapLink(ev.Lat, ev.Lng))

	return Message{
		Subject: fmt.Sprintf("[Ocean Hazard] New %s report (%s)", ev.Kind.Label(), domain.SeverityLabel(ev.Severity)),
		Body:    body,
	}
}

// ProximityMessage is the variant sent to nearby recipients.
func ProximityMessage(ev domain.HazardEvent, address string) Message {
	loc := FormatLocation(address, ev.Lat, ev.Lng)
	body := fmt.Sprintf(
		"A %s hazard has been reported near you.\n\n"+
			"Severity: %d/10 (%s)\n"+
			"Location: %s\n",
		ev.Kind.Label(), ev.Severity, domain.SeverityLabel(ev.Severity), loc,
	)
	if ev.Description != "" {
		body += fmt.Sprintf("\nDescription: %s\n", ev.Description)
	}
	body += fmt.Sprintf("\nMap: %s\n\nPlease avoid the area and follow local guidance.\n", MapLink(ev.Lat, ev.Lng))

	return Message{
		Subject: fmt.Sprintf("[Ocean Hazard] %s reported near you", ev.Kind.Label()),
		Body:    body,
	}
}
