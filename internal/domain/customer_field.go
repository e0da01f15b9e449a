package domain

// FieldType is the input control type of a customer form field
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldTel      FieldType = "tel"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
)

// IsValid reports whether t is a supported field type
func (t FieldType) IsValid() bool {
	switch t {
	case FieldText, FieldEmail, FieldTel, FieldNumber,
		FieldDate, FieldTextarea, FieldSelect, FieldCheckbox:
		return true
	default:
		return false
	}
}

// CustomerField is one entry of the per-service customer form schema.
// Name is the machine key derived from the label; it stays stable
// once assigned even if the label is edited later.
type CustomerField struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Visible  bool      `json:"visible"`
}
