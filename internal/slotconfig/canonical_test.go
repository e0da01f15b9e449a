package slotconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy/admin-service/internal/domain"
)

func TestToCanonicalForm_RegularIsFlat(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeRegular)
	require.NoError(t, err)

	raw, err := ToCanonicalForm(cfg)
	require.NoError(t, err)

	assert.JSONEq(t, `{"slots":[{"start":"09:00","end":"17:00"}]}`, string(raw))
}

func TestToCanonicalForm_FullDayIsWeekly(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeFullDay)
	require.NoError(t, err)

	raw, err := ToCanonicalForm(cfg)
	require.NoError(t, err)

	var week map[string][]domain.DaySlot
	require.NoError(t, json.Unmarshal(raw, &week))
	assert.Len(t, week, 7)
	assert.Equal(t, []domain.DaySlot{{Start: "9:00 AM", End: "6:00 PM"}}, week["monday"])
	assert.Equal(t, []domain.DaySlot{{Start: "Off", End: "Off"}}, week["sunday"])
}

func TestToCanonicalForm_MultiDayKeepsAllDayKeys(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeMultiDay)
	require.NoError(t, err)

	raw, err := ToCanonicalForm(cfg)
	require.NoError(t, err)

	var week map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &week))
	require.Len(t, week, 7)
	for day, slots := range week {
		assert.Equal(t, "[]", string(slots), "day %s must be a list, not null", day)
	}
}

func TestToCanonicalForm_UnknownType(t *testing.T) {
	_, err := ToCanonicalForm(domain.SlotConfiguration{Type: "hourly"})
	assert.ErrorIs(t, err, domain.ErrUnknownServiceType)
}

func TestFromCanonicalForm_RegularExpandsToAllDays(t *testing.T) {
	raw := json.RawMessage(`{"slots":[{"start":"08:00","end":"12:00"},{"start":"13:00","end":"18:00"}]}`)

	cfg, err := FromCanonicalForm(domain.ServiceTypeRegular, raw)
	require.NoError(t, err)

	for _, day := range domain.Weekdays() {
		slots := cfg.Week.SlotsFor(day)
		require.Len(t, slots, 2, "day %s", day)
		assert.Equal(t, "08:00", slots[0].Start)
		assert.Equal(t, "13:00", slots[1].Start)
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	for _, typ := range []domain.ServiceType{
		domain.ServiceTypeRegular,
		domain.ServiceTypeFullDay,
		domain.ServiceTypeMultiDay,
	} {
		cfg, err := DefaultConfiguration(typ)
		require.NoError(t, err)

		raw, err := ToCanonicalForm(cfg)
		require.NoError(t, err)

		decoded, err := FromCanonicalForm(typ, raw)
		require.NoError(t, err)

		again, err := ToCanonicalForm(decoded)
		require.NoError(t, err)

		assert.JSONEq(t, string(raw), string(again), "type %s", typ)
	}
}

func TestMigrateLegacyRegular(t *testing.T) {
	legacy := json.RawMessage(`{
		"monday":    [{"start":"09:00","end":"17:00"}],
		"tuesday":   [{"start":"09:00","end":"17:00"}],
		"wednesday": [{"start":"10:00","end":"14:00"}],
		"thursday":  [],
		"friday":    [],
		"saturday":  [],
		"sunday":    []
	}`)

	flat, err := MigrateLegacyRegular(legacy)
	require.NoError(t, err)

	assert.JSONEq(t, `{"slots":[
		{"start":"09:00","end":"17:00"},
		{"start":"10:00","end":"14:00"}
	]}`, string(flat))
}

func TestMigrateLegacyRegular_BadPayload(t *testing.T) {
	_, err := MigrateLegacyRegular(json.RawMessage(`"not a map"`))
	assert.Error(t, err)
}
