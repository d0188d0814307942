package models

import (
	"time"

	"govex/enums"
)

// CookieInfo describes an externally provisioned cookie-jar file.
// This subsystem only ever reads cookie files, never creates them.
type CookieInfo struct {
	Platform     enums.Platform `json:"platform"`
	FilePath     string         `json:"file_path"`
	Exists       bool           `json:"exists"`
	LastModified time.Time      `json:"last_modified,omitzero"`
	CookieCount  int            `json:"cookie_count"`
}
