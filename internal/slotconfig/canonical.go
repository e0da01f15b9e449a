package slotconfig

import (
	"encoding/json"
	"fmt"

	"github.com/bookeasy/admin-service/internal/domain"
)

// flatEncoding is the canonical persisted shape for regular services:
// one day-agnostic slot list applied uniformly to the week.
type flatEncoding struct {
	Slots []domain.DaySlot `json:"slots"`
}

// ToCanonicalForm serializes a configuration into the exact record
// persisted alongside the service. Regular services flatten to
// {"slots":[...]}; full-day and multi-day services persist the weekly
// map with all seven day keys present.
func ToCanonicalForm(cfg domain.SlotConfiguration) (json.RawMessage, error) {
	switch cfg.Type {
	case domain.ServiceTypeRegular:
		enc := flatEncoding{Slots: flattenWeek(cfg.Week)}
		raw, err := json.Marshal(enc)
		if err != nil {
			return nil, fmt.Errorf("slotconfig: ToCanonicalForm - marshal flat: %w", err)
		}
		return raw, nil
	case domain.ServiceTypeFullDay, domain.ServiceTypeMultiDay:
		week := cfg.Week
		week.Normalize()
		raw, err := json.Marshal(week)
		if err != nil {
			return nil, fmt.Errorf("slotconfig: ToCanonicalForm - marshal weekly: %w", err)
		}
		return raw, nil
	default:
		return nil, domain.ErrUnknownServiceType
	}
}

// FromCanonicalForm decodes a persisted record back into the editable
// weekly model. The flat regular encoding is expanded uniformly onto
// all seven days.
func FromCanonicalForm(t domain.ServiceType, raw json.RawMessage) (domain.SlotConfiguration, error) {
	cfg := domain.SlotConfiguration{Type: t}

	switch t {
	case domain.ServiceTypeRegular:
		var enc flatEncoding
		if err := json.Unmarshal(raw, &enc); err != nil {
			return cfg, fmt.Errorf("slotconfig: FromCanonicalForm - decode flat: %w", err)
		}
		for _, day := range domain.Weekdays() {
			slots := make([]domain.DaySlot, len(enc.Slots))
			copy(slots, enc.Slots)
			cfg.Week.SetSlotsFor(day, slots)
		}
		return cfg, nil
	case domain.ServiceTypeFullDay, domain.ServiceTypeMultiDay:
		if err := json.Unmarshal(raw, &cfg.Week); err != nil {
			return cfg, fmt.Errorf("slotconfig: FromCanonicalForm - decode weekly: %w", err)
		}
		cfg.Week.Normalize()
		return cfg, nil
	default:
		return cfg, domain.ErrUnknownServiceType
	}
}

// MigrateLegacyRegular converts the historical weekly-map encoding of
// a regular service into the canonical flat encoding. Slots are taken
// in monday-first day order, first occurrence wins on duplicates.
func MigrateLegacyRegular(raw json.RawMessage) (json.RawMessage, error) {
	var week domain.WeekSchedule
	if err := json.Unmarshal(raw, &week); err != nil {
		return nil, fmt.Errorf("slotconfig: MigrateLegacyRegular - decode weekly: %w", err)
	}

	out, err := json.Marshal(flatEncoding{Slots: flattenWeek(week)})
	if err != nil {
		return nil, fmt.Errorf("slotconfig: MigrateLegacyRegular - marshal flat: %w", err)
	}
	return out, nil
}

// flattenWeek collects the distinct slots of a weekly grid into one
// ordered list, preserving first-seen order.
func flattenWeek(week domain.WeekSchedule) []domain.DaySlot {
	flat := make([]domain.DaySlot, 0)
	seen := make(map[domain.DaySlot]struct{})

	for _, day := range domain.Weekdays() {
		for _, slot := range week.SlotsFor(day) {
			if _, ok := seen[slot]; ok {
				continue
			}
			seen[slot] = struct{}{}
			flat = append(flat, slot)
		}
	}
	return flat
}
