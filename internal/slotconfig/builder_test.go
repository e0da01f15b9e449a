package slotconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy/admin-service/internal/domain"
)

func TestDefaultConfiguration_Regular(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeRegular)
	require.NoError(t, err)

	for _, day := range domain.WorkWeekdays() {
		slots := cfg.Week.SlotsFor(day)
		require.Len(t, slots, 1, "weekday %s", day)
		assert.Equal(t, "09:00", slots[0].Start)
		assert.Equal(t, "17:00", slots[0].End)
	}
	assert.Empty(t, cfg.Week.Saturday)
	assert.Empty(t, cfg.Week.Sunday)
	assert.True(t, cfg.HasBookableSlots())
}

func TestDefaultConfiguration_FullDay(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeFullDay)
	require.NoError(t, err)

	for _, day := range domain.WorkWeekdays() {
		slots := cfg.Week.SlotsFor(day)
		require.Len(t, slots, 1)
		assert.Equal(t, "9:00 AM", slots[0].Start)
		assert.Equal(t, "6:00 PM", slots[0].End)
	}
	require.Len(t, cfg.Week.Saturday, 1)
	assert.True(t, cfg.Week.Saturday[0].IsOff())
	require.Len(t, cfg.Week.Sunday, 1)
	assert.True(t, cfg.Week.Sunday[0].IsOff())
	assert.True(t, cfg.HasBookableSlots())
}

func TestDefaultConfiguration_MultiDay(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeMultiDay)
	require.NoError(t, err)

	for _, day := range domain.Weekdays() {
		assert.NotNil(t, cfg.Week.SlotsFor(day))
		assert.Empty(t, cfg.Week.SlotsFor(day))
	}
	assert.False(t, cfg.HasBookableSlots())
}

func TestDefaultConfiguration_UnknownType(t *testing.T) {
	_, err := DefaultConfiguration(domain.ServiceType("weekly"))
	assert.ErrorIs(t, err, domain.ErrUnknownServiceType)
}

func TestValidLabels(t *testing.T) {
	labels, err := ValidLabels(domain.ServiceTypeFullDay)
	require.NoError(t, err)
	assert.Equal(t, "Off", labels[0])
	assert.Equal(t, "9:00 AM", labels[1])
	assert.Equal(t, "6:00 PM", labels[len(labels)-1])

	open, err := ValidLabels(domain.ServiceTypeRegular)
	require.NoError(t, err)
	assert.Nil(t, open)

	_, err = ValidLabels(domain.ServiceType(""))
	assert.ErrorIs(t, err, domain.ErrUnknownServiceType)
}

func TestAddSlot_RegularAppendsAfterLastEnd(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeRegular)
	require.NoError(t, err)

	got, err := AddSlot(cfg, domain.Monday)
	require.NoError(t, err)

	slots := got.Week.SlotsFor(domain.Monday)
	require.Len(t, slots, 2)
	assert.Equal(t, "17:00", slots[1].Start)
	assert.Equal(t, "18:00", slots[1].End)

	// input untouched
	assert.Len(t, cfg.Week.SlotsFor(domain.Monday), 1)
}

func TestAddSlot_FullDayAppendsBreakOnLadder(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeFullDay)
	require.NoError(t, err)

	cfg, err = UpdateSlot(cfg, domain.Monday, 0, FieldEnd, "1:00 PM")
	require.NoError(t, err)

	got, err := AddSlot(cfg, domain.Monday)
	require.NoError(t, err)

	slots := got.Week.SlotsFor(domain.Monday)
	require.Len(t, slots, 2)
	assert.Equal(t, "2:00 PM", slots[1].Start)
	assert.Equal(t, "3:00 PM", slots[1].End)
}

func TestAddSlot_EmptyDayGetsDefault(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeRegular)
	require.NoError(t, err)

	got, err := AddSlot(cfg, domain.Sunday)
	require.NoError(t, err)

	slots := got.Week.SlotsFor(domain.Sunday)
	require.Len(t, slots, 1)
	assert.Equal(t, DefaultSlot(domain.ServiceTypeRegular), slots[0])
}

func TestAddSlot_UnknownDay(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeRegular)
	require.NoError(t, err)

	_, err = AddSlot(cfg, domain.Weekday("someday"))
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestRemoveSlot_MiddleOfSequence(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeRegular)
	require.NoError(t, err)
	cfg, err = AddSlot(cfg, domain.Monday)
	require.NoError(t, err)
	cfg, err = AddSlot(cfg, domain.Monday)
	require.NoError(t, err)

	got, err := RemoveSlot(cfg, domain.Monday, 1)
	require.NoError(t, err)

	slots := got.Week.SlotsFor(domain.Monday)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "18:00", slots[1].Start)
}

func TestRemoveSlot_LastSlotResetsToDefault(t *testing.T) {
	for _, typ := range []domain.ServiceType{domain.ServiceTypeRegular, domain.ServiceTypeFullDay} {
		cfg, err := DefaultConfiguration(typ)
		require.NoError(t, err)

		got, err := RemoveSlot(cfg, domain.Monday, 0)
		require.NoError(t, err)

		slots := got.Week.SlotsFor(domain.Monday)
		require.Len(t, slots, 1, "type %s", typ)
		assert.Equal(t, DefaultSlot(typ), slots[0], "type %s", typ)
	}
}

func TestRemoveSlot_IndexOutOfRange(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeRegular)
	require.NoError(t, err)

	_, err = RemoveSlot(cfg, domain.Monday, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = RemoveSlot(cfg, domain.Monday, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAddThenRemoveRestoresLength(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeRegular)
	require.NoError(t, err)
	before := len(cfg.Week.SlotsFor(domain.Tuesday))

	cfg, err = AddSlot(cfg, domain.Tuesday)
	require.NoError(t, err)
	cfg, err = RemoveSlot(cfg, domain.Tuesday, before)
	require.NoError(t, err)

	assert.Len(t, cfg.Week.SlotsFor(domain.Tuesday), before)
}

func TestUpdateSlot_AcceptsInvertedRange(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeRegular)
	require.NoError(t, err)

	got, err := UpdateSlot(cfg, domain.Friday, 0, FieldStart, "20:00")
	require.NoError(t, err)

	slots := got.Week.SlotsFor(domain.Friday)
	assert.Equal(t, "20:00", slots[0].Start)
	assert.Equal(t, "17:00", slots[0].End)
}

func TestUpdateSlot_UnknownField(t *testing.T) {
	cfg, err := DefaultConfiguration(domain.ServiceTypeRegular)
	require.NoError(t, err)

	_, err = UpdateSlot(cfg, domain.Friday, 0, SlotField("middle"), "12:00")
	assert.ErrorIs(t, err, ErrUnknownSlotField)
}

func TestIsValidLabel(t *testing.T) {
	assert.True(t, IsValidLabel(domain.ServiceTypeFullDay, "Off"))
	assert.True(t, IsValidLabel(domain.ServiceTypeFullDay, "3:00 PM"))
	assert.False(t, IsValidLabel(domain.ServiceTypeFullDay, "15:00"))
	assert.True(t, IsValidLabel(domain.ServiceTypeRegular, "15:00"))
	assert.False(t, IsValidLabel(domain.ServiceTypeRegular, "3:00 PM"))
}
