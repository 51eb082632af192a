package models

import (
	"bytes"
	"strconv"
	"strings"
)

// Booking lifecycle statuses as reported by the upstream provider. Channel
// managers append their own variants (e.g. "channel-confirmed"), so the set
// is open-ended; only "cancelled" carries special meaning here.
const (
	StatusConfirmed = "confirmed"
	StatusNew       = "new"
	StatusRequest   = "request"
	StatusCancelled = "cancelled"
)

// Booking represents one reservation as fetched from the upstream provider.
// The ID is the sole merge key: two records with the same ID obtained from
// different filter queries denote the same reservation. Bookings are never
// persisted or mutated locally; the provider owns their lifecycle.
type Booking struct {
	ID           int64         `json:"id"`
	PropertyID   int64         `json:"propertyId,omitempty"`
	RoomID       int64         `json:"roomId,omitempty"`
	Arrival      string        `json:"arrival"`   // YYYY-MM-DD
	Departure    string        `json:"departure"` // YYYY-MM-DD
	Status       string        `json:"status"`
	Channel      string        `json:"channel,omitempty"`
	GuestName    string        `json:"guestName,omitempty"`
	Adults       int           `json:"adults,omitempty"`
	Children     int           `json:"children,omitempty"`
	Price        FlexAmount    `json:"price"`
	Deposit      FlexAmount    `json:"deposit"`
	APIReference string        `json:"apiReference,omitempty"`
	MasterID     int64         `json:"masterId,omitempty"`
	ModifiedAt   string        `json:"modifiedAt,omitempty"`
	InvoiceItems []InvoiceItem `json:"invoiceItems,omitempty"`
	InfoItems    []InfoItem    `json:"infoItems,omitempty"`
	Guests       []Guest       `json:"guests,omitempty"`
}

// Cancelled reports whether the booking carries a cancelled lifecycle status.
func (b Booking) Cancelled() bool {
	return strings.EqualFold(b.Status, StatusCancelled)
}

// InvoiceItem is one line of a booking's invoice detail.
type InvoiceItem struct {
	Name     string     `json:"name"`
	Quantity int        `json:"quantity,omitempty"`
	Amount   FlexAmount `json:"amount"`
}

// InfoItem is a free-form note attached to a booking by the provider.
type InfoItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Guest is the nested guest detail optionally included by the provider.
type Guest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// FlexAmount is a monetary amount tolerant of sloppy upstream encoding. The
// provider emits numbers, numeric strings, empty strings and occasionally
// garbage; anything non-numeric decodes as zero rather than failing the whole
// record.
type FlexAmount float64

func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	s := string(data)
	if s[0] == '"' {
		s = strings.Trim(s, `"`)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = FlexAmount(v)
	return nil
}

// Float returns the amount as a plain float64.
func (a FlexAmount) Float() float64 {
	return float64(a)
}

// PageMeta carries the pagination metadata of one upstream response page.
type PageMeta struct {
	Page      int `json:"page"`
	PageCount int `json:"pageCount"`
	Total     int `json:"totalItems"`
}

// HasNext reports whether the upstream signalled a further page.
func (m PageMeta) HasNext() bool {
	return m.PageCount > 0 && m.Page < m.PageCount
}
