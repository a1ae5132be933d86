// model.go this code defines the data model for stored picks
package datastore

import "time"

// Pick represents a single stored phase arrival.
type Pick struct {
	ID         uint      `gorm:"primaryKey"`
	UUID       string    `gorm:"uniqueIndex;type:varchar(36)"`
	SourceNode string    // name of the node that produced the pick
	TraceID    string    `gorm:"index:idx_picks_trace;index:idx_picks_trace_time"`
	Time       time.Time `gorm:"index:idx_picks_time;index:idx_picks_trace_time"`
	Phase      string    `gorm:"index:idx_picks_phase;type:varchar(8)"`
	Threshold  float64   // trigger-on threshold in effect when the pick was made
	CreatedAt  time.Time
}
