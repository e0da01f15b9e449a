package models

import (
	"time"

	"github.com/bookeasy/admin-service/internal/domain"
)

// SaveSettingsRequest replaces the shop settings wholesale
type SaveSettingsRequest struct {
	CompanyName      string         `json:"companyName"`
	Timezone         string         `json:"timezone"`
	WeekStart        domain.Weekday `json:"weekStart"`
	DateFormat       string         `json:"dateFormat"`
	TimeFormat       string         `json:"timeFormat"`
	RefundOnCancel   bool           `json:"refundOnCancel"`
	AdditionalEmails []string       `json:"additionalEmails"`

	SenderEmail               *string `json:"senderEmail,omitempty"`
	AdminNotificationEmail    *string `json:"adminNotificationEmail,omitempty"`
	EmailOnNewBooking         bool    `json:"emailOnNewBooking"`
	EmailOnCancelledBooking   bool    `json:"emailOnCancelledBooking"`
	EmailOnRescheduledBooking bool    `json:"emailOnRescheduledBooking"`
}

// ToDomain maps the request to the domain entity
func (r *SaveSettingsRequest) ToDomain(shopID int64) *domain.GeneralSettings {
	return &domain.GeneralSettings{
		ShopID:                    shopID,
		CompanyName:               r.CompanyName,
		Timezone:                  r.Timezone,
		WeekStart:                 r.WeekStart,
		DateFormat:                r.DateFormat,
		TimeFormat:                r.TimeFormat,
		RefundOnCancel:            r.RefundOnCancel,
		AdditionalEmails:          r.AdditionalEmails,
		SenderEmail:               r.SenderEmail,
		AdminNotificationEmail:    r.AdminNotificationEmail,
		EmailOnNewBooking:         r.EmailOnNewBooking,
		EmailOnCancelledBooking:   r.EmailOnCancelledBooking,
		EmailOnRescheduledBooking: r.EmailOnRescheduledBooking,
	}
}

// SettingsResponse is the API shape of the shop settings
type SettingsResponse struct {
	CompanyName      string         `json:"companyName"`
	Timezone         string         `json:"timezone"`
	WeekStart        domain.Weekday `json:"weekStart"`
	DateFormat       string         `json:"dateFormat"`
	TimeFormat       string         `json:"timeFormat"`
	RefundOnCancel   bool           `json:"refundOnCancel"`
	AdditionalEmails []string       `json:"additionalEmails"`

	SenderEmail               *string `json:"senderEmail,omitempty"`
	AdminNotificationEmail    *string `json:"adminNotificationEmail,omitempty"`
	EmailOnNewBooking         bool    `json:"emailOnNewBooking"`
	EmailOnCancelledBooking   bool    `json:"emailOnCancelledBooking"`
	EmailOnRescheduledBooking bool    `json:"emailOnRescheduledBooking"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomain maps settings to their response shape
func FromDomain(s *domain.GeneralSettings) *SettingsResponse {
	emails := s.AdditionalEmails
	if emails == nil {
		emails = []string{}
	}
	return &SettingsResponse{
		CompanyName:               s.CompanyName,
		Timezone:                  s.Timezone,
		WeekStart:                 s.WeekStart,
		DateFormat:                s.DateFormat,
		TimeFormat:                s.TimeFormat,
		RefundOnCancel:            s.RefundOnCancel,
		AdditionalEmails:          emails,
		SenderEmail:               s.SenderEmail,
		AdminNotificationEmail:    s.AdminNotificationEmail,
		EmailOnNewBooking:         s.EmailOnNewBooking,
		EmailOnCancelledBooking:   s.EmailOnCancelledBooking,
		EmailOnRescheduledBooking: s.EmailOnRescheduledBooking,
		UpdatedAt:                 s.UpdatedAt,
	}
}
