package customerfields

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/bookeasy/admin-service/internal/domain"
)

var (
	ErrEmptyLabel       = errors.New("customerfields: label must not be blank")
	ErrUnknownFieldType = errors.New("customerfields: unknown field type")
	ErrUnknownSetting   = errors.New("customerfields: unknown setting")
)

// Setting names a toggleable boolean of a field
type Setting string

const (
	SettingRequired Setting = "required"
	SettingVisible  Setting = "visible"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// DefaultFields returns the built-in intake form every new service
// starts with. The entries are ordinary fields; administrators may
// edit or delete them like any other.
func DefaultFields() []domain.CustomerField {
	return []domain.CustomerField{
		{ID: uuid.NewString(), Name: "firstname", Label: "First Name", Type: domain.FieldText, Required: true, Visible: true},
		{ID: uuid.NewString(), Name: "lastname", Label: "Last Name", Type: domain.FieldText, Required: true, Visible: true},
		{ID: uuid.NewString(), Name: "phone", Label: "Phone", Type: domain.FieldTel, Required: true, Visible: true},
		{ID: uuid.NewString(), Name: "email", Label: "Email", Type: domain.FieldEmail, Required: true, Visible: true},
	}
}

// AddField appends a new field derived from label and returns the
// updated list. The machine name is the slugified label, suffixed
// with a counter when it collides with an existing name. New fields
// default to optional and visible.
func AddField(fields []domain.CustomerField, label string, typ domain.FieldType) ([]domain.CustomerField, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return fields, ErrEmptyLabel
	}
	if !typ.IsValid() {
		return fields, ErrUnknownFieldType
	}

	out := cloneFields(fields)
	out = append(out, domain.CustomerField{
		ID:       uuid.NewString(),
		Name:     uniqueName(out, slugify(label)),
		Label:    label,
		Type:     typ,
		Required: false,
		Visible:  true,
	})
	return out, nil
}

// UpdateField replaces the label and type of the matching entry. The
// machine name stays stable so stored submissions keep their keys.
// Unknown ids leave the list unchanged.
func UpdateField(fields []domain.CustomerField, id, label string, typ domain.FieldType) []domain.CustomerField {
	out := cloneFields(fields)
	for i := range out {
		if out[i].ID == id {
			out[i].Label = strings.TrimSpace(label)
			out[i].Type = typ
			break
		}
	}
	return out
}

// ToggleSetting flips one boolean of the matching entry. Unknown ids
// leave the list unchanged.
func ToggleSetting(fields []domain.CustomerField, id string, setting Setting) ([]domain.CustomerField, error) {
	if setting != SettingRequired && setting != SettingVisible {
		return fields, fmt.Errorf("%w: %q", ErrUnknownSetting, setting)
	}

	out := cloneFields(fields)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if setting == SettingRequired {
			out[i].Required = !out[i].Required
		} else {
			out[i].Visible = !out[i].Visible
		}
		break
	}
	return out, nil
}

// RemoveField deletes the matching entry. Unknown ids leave the list
// unchanged. Built-in fields get no special protection.
func RemoveField(fields []domain.CustomerField, id string) []domain.CustomerField {
	out := make([]domain.CustomerField, 0, len(fields))
	for _, f := range fields {
		if f.ID != id {
			out = append(out, f)
		}
	}
	return out
}

// slugify lowercases a label and collapses whitespace runs to
// underscores.
func slugify(label string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(label), "_")
}

// uniqueName disambiguates a slug against existing field names by
// appending _2, _3 and so on.
func uniqueName(fields []domain.CustomerField, slug string) string {
	taken := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		taken[f.Name] = struct{}{}
	}

	if _, ok := taken[slug]; !ok {
		return slug
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d", slug, n)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

func cloneFields(fields []domain.CustomerField) []domain.CustomerField {
	out := make([]domain.CustomerField, len(fields))
	copy(out, fields)
	return out
}
