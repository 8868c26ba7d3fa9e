package research

import "strings"

// FilterAttendees drops attendees whose email exactly matches an excluded
// address or ends with an excluded domain (domains include the leading "@").
// Matching is case-insensitive and order is preserved. An attendee with no
// email never matches and is kept.
func FilterAttendees(attendees []Attendee, excludeEmails, excludeDomains []string) []Attendee {
	var filtered []Attendee
	for _, a := range attendees {
		email := strings.ToLower(a.Email)
		if matchesEmail(email, excludeEmails) || matchesDomain(email, excludeDomains) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

func matchesEmail(email string, excluded []string) bool {
	if email == "" {
		return false
	}
	for _, e := range excluded {
		if email == strings.ToLower(e) {
			return true
		}
	}
	return false
}

func matchesDomain(email string, excluded []string) bool {
	if email == "" {
		return false
	}
	for _, d := range excluded {
		if strings.HasSuffix(email, strings.ToLower(d)) {
			return true
		}
	}
	return false
}
