package utils

import (
	"log"
	"strings"
)

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload (email, card data); message should be summarized.
func LogEvent(requestID, module, action, message string) {
	logLine("", requestID, module, action, message)
}

// LogWarn is LogEvent for conditions worth a second look that do not fail the request.
func LogWarn(requestID, module, action, message string) {
	logLine("WARN ", requestID, module, action, message)
}

func logLine(level, requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("%s[%s] action=%s request_id=%s msg=%s", level, strings.ToUpper(module), action, req, message)
}
