package utils

import (
	"log"
	"strings"
)

// LogEvent records one step of a portal flow (submission, pricing,
// tracking, receipt). Messages carry request_code/control_number style
// key=value pairs, never raw form values.
func LogEvent(requestID, flow, step, message string) {
	log.Printf("portal flow=%s step=%s request_id=%s %s",
		strings.ToLower(strings.TrimSpace(flow)), step, strings.TrimSpace(requestID), message)
}
