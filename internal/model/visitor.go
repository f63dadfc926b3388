package model

import "time"

// Visitor is an anonymous device seen by the site.
type Visitor struct {
	DeviceID   string    `bson:"deviceId" json:"deviceId"`
	UserAgent  string    `bson:"userAgent" json:"userAgent"`
	FirstVisit time.Time `bson:"firstVisit" json:"firstVisit"`
	LastVisit  time.Time `bson:"lastVisit" json:"lastVisit"`
	VisitCount int       `bson:"visitCount" json:"visitCount"`
}
