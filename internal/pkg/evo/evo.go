// Package evo models the JSON messages exchanged with EVO access
// terminals. The device is strict about replies: registration answers
// must carry exactly ret/result/cloudtime and arrive with HTTP 200, and
// any error reply must also be 200 or the device re-sends forever.
package evo

import (
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Message is the envelope of every device frame. Registration frames
// carry cmd="reg"; event uploads carry a record array.
type Message struct {
	Cmd     string   `json:"cmd,omitempty"`
	SN      string   `json:"sn,omitempty"`
	DevInfo *DevInfo `json:"devinfo,omitempty"`
	Records []Record `json:"record,omitempty"`
}

type DevInfo struct {
	Time string `json:"time,omitempty"`
}

// Record is one access event as uploaded by the terminal.
type Record struct {
	EnrollID int     `json:"enrollid"`
	Name     *string `json:"name"`
	Time     string  `json:"time"`
	Mode     *int    `json:"mode"`
	InOut    *int    `json:"inout"`
	Event    *int    `json:"event"`
	Image    *string `json:"image"`
}

// EventTime parses the record timestamp (device-local, no timezone).
func (r Record) EventTime() (time.Time, error) {
	return time.Parse(timeLayout, r.Time)
}

// RegResponse is the exact registration acknowledgement the device
// expects. No extra fields.
type RegResponse struct {
	Ret       string `json:"ret"`
	Result    int    `json:"result"`
	CloudTime string `json:"cloudtime"`
}

// NewRegResponse acknowledges a registration frame. The device supplied
// time is echoed back when present so clocks with drifting RTCs are not
// corrected mid-shift; otherwise the server clock is used.
func NewRegResponse(deviceTime string) RegResponse {
	cloudTime := deviceTime
	if cloudTime == "" {
		cloudTime = time.Now().Format(timeLayout)
	}
	return RegResponse{
		Ret:       "reg",
		Result:    1,
		CloudTime: cloudTime,
	}
}
