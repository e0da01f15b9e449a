package customerfields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy/admin-service/internal/domain"
)

func TestDefaultFields(t *testing.T) {
	fields := DefaultFields()
	require.Len(t, fields, 4)

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
		assert.True(t, f.Required, "built-in %s starts required", f.Name)
		assert.True(t, f.Visible, "built-in %s starts visible", f.Name)
		assert.NotEmpty(t, f.ID)
	}
	assert.Equal(t, []string{"firstname", "lastname", "phone", "email"}, names)
}

func TestAddField(t *testing.T) {
	fields := DefaultFields()

	got, err := AddField(fields, "  Company Name  ", domain.FieldText)
	require.NoError(t, err)
	require.Len(t, got, 5)

	added := got[4]
	assert.Equal(t, "Company Name", added.Label)
	assert.Equal(t, "company_name", added.Name)
	assert.False(t, added.Required)
	assert.True(t, added.Visible)

	// input list untouched
	assert.Len(t, fields, 4)
}

func TestAddField_BlankLabel(t *testing.T) {
	fields := DefaultFields()

	_, err := AddField(fields, "   ", domain.FieldText)
	assert.ErrorIs(t, err, ErrEmptyLabel)
}

func TestAddField_UnknownType(t *testing.T) {
	_, err := AddField(nil, "Notes", domain.FieldType("richtext"))
	assert.ErrorIs(t, err, ErrUnknownFieldType)
}

func TestAddField_NameCollisionGetsSuffix(t *testing.T) {
	fields, err := AddField(nil, "Notes", domain.FieldTextarea)
	require.NoError(t, err)
	fields, err = AddField(fields, "notes", domain.FieldText)
	require.NoError(t, err)
	fields, err = AddField(fields, "NOTES", domain.FieldText)
	require.NoError(t, err)

	require.Len(t, fields, 3)
	assert.Equal(t, "notes", fields[0].Name)
	assert.Equal(t, "notes_2", fields[1].Name)
	assert.Equal(t, "notes_3", fields[2].Name)
}

func TestUpdateField_KeepsNameStable(t *testing.T) {
	fields, err := AddField(nil, "Notes", domain.FieldTextarea)
	require.NoError(t, err)

	got := UpdateField(fields, fields[0].ID, "Additional Notes", domain.FieldText)
	require.Len(t, got, 1)
	assert.Equal(t, "Additional Notes", got[0].Label)
	assert.Equal(t, domain.FieldText, got[0].Type)
	assert.Equal(t, "notes", got[0].Name)
}

func TestUpdateField_UnknownIDIsNoop(t *testing.T) {
	fields := DefaultFields()
	got := UpdateField(fields, "missing", "X", domain.FieldText)
	assert.Equal(t, fields, got)
}

func TestToggleSetting(t *testing.T) {
	fields := DefaultFields()
	id := fields[0].ID

	got, err := ToggleSetting(fields, id, SettingRequired)
	require.NoError(t, err)
	assert.False(t, got[0].Required)
	assert.True(t, fields[0].Required, "input list untouched")

	got, err = ToggleSetting(got, id, SettingVisible)
	require.NoError(t, err)
	assert.False(t, got[0].Visible)

	got, err = ToggleSetting(got, id, SettingVisible)
	require.NoError(t, err)
	assert.True(t, got[0].Visible, "toggling twice restores the value")
}

func TestToggleSetting_UnknownSetting(t *testing.T) {
	fields := DefaultFields()
	_, err := ToggleSetting(fields, fields[0].ID, Setting("editable"))
	assert.ErrorIs(t, err, ErrUnknownSetting)
}

func TestRemoveField(t *testing.T) {
	fields := DefaultFields()

	got := RemoveField(fields, fields[1].ID)
	require.Len(t, got, 3)
	assert.Equal(t, "firstname", got[0].Name)
	assert.Equal(t, "phone", got[1].Name)

	// built-ins are removable like any other field
	got = RemoveField(got, got[0].ID)
	assert.Len(t, got, 2)

	// unknown id is a no-op
	assert.Equal(t, got, RemoveField(got, "missing"))
}
