// Package timezone keeps the application location used when timestamps leave the API.
//
// Call Init once at start-up with the configured IANA name (APP_TIMEZONE):
//
//	if err := timezone.Init(cfg.App.Timezone); err != nil { ... }
//
// Timestamps (created_at) are rendered with Format in that location. Calendar dates
// (check-in / check-out) are location independent and go through ParseDate / FormatDate,
// which always work in UTC so a date never shifts across a day boundary.
package timezone
