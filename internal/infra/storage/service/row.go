package service

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/bookeasy/admin-service/internal/domain"
)

// serviceColumns is the full column list in scan order
var serviceColumns = []string{
	"id",
	"shop_id",
	"name",
	"category",
	"timezone",
	"booking_type",
	"service_type",
	"product_id",
	"variant_ids",
	"duration",
	"duration_unit",
	"multi_day",
	"bundle",
	"capacity",
	"cancellation",
	"reschedule",
	"payment",
	"customer_fields",
	"location_ids",
	"staff_ids",
	"location_type",
	"hide_location_selection",
	"hide_staff_selection",
	"lead_time_value",
	"lead_time_unit",
	"visibility_days",
	"max_quantities",
	"notification_email",
	"created_at",
	"updated_at",
}

// row carries the raw JSONB payloads between the database and the
// domain aggregate.
type row struct {
	svc            domain.Service
	category       sql.NullString
	variantIDs     []byte
	multiDay       []byte
	bundle         []byte
	capacity       []byte
	cancellation   []byte
	reschedule     []byte
	payment        []byte
	customerFields []byte
	locationIDs    []byte
	staffIDs       []byte
	locationType   sql.NullString
	leadTimeUnit   sql.NullString
	visibility     sql.NullInt64
	maxQuantities  sql.NullInt64
	notifyEmail    sql.NullString
	createdAt      sql.NullTime
	updatedAt      sql.NullTime
}

func (r *row) scanTargets() []interface{} {
	return []interface{}{
		&r.svc.ID,
		&r.svc.ShopID,
		&r.svc.Name,
		&r.category,
		&r.svc.Timezone,
		&r.svc.BookingType,
		&r.svc.ServiceType,
		&r.svc.ProductID,
		&r.variantIDs,
		&r.svc.Duration,
		&r.svc.DurationUnit,
		&r.multiDay,
		&r.bundle,
		&r.capacity,
		&r.cancellation,
		&r.reschedule,
		&r.payment,
		&r.customerFields,
		&r.locationIDs,
		&r.staffIDs,
		&r.locationType,
		&r.svc.HideLocationSelection,
		&r.svc.HideStaffSelection,
		&r.svc.LeadTimeValue,
		&r.leadTimeUnit,
		&r.visibility,
		&r.maxQuantities,
		&r.notifyEmail,
		&r.createdAt,
		&r.updatedAt,
	}
}

// toDomain assembles the aggregate from the scanned row
func (r *row) toDomain() (*domain.Service, error) {
	svc := r.svc

	if r.category.Valid {
		svc.Category = &r.category.String
	}
	if r.locationType.Valid {
		lt := domain.LocationType(r.locationType.String)
		svc.LocationType = &lt
	}
	if r.leadTimeUnit.Valid {
		svc.LeadTimeUnit = domain.DurationUnit(r.leadTimeUnit.String)
	}
	if r.visibility.Valid {
		v := int(r.visibility.Int64)
		svc.VisibilityDays = &v
	}
	if r.maxQuantities.Valid {
		v := int(r.maxQuantities.Int64)
		svc.MaxQuantities = &v
	}
	if r.notifyEmail.Valid {
		svc.NotificationEmail = &r.notifyEmail.String
	}
	svc.CreatedAt = r.createdAt.Time
	svc.UpdatedAt = r.updatedAt.Time

	if err := decodeColumn(r.variantIDs, &svc.VariantIDs); err != nil {
		return nil, fmt.Errorf("%w: variant_ids: %v", ErrDecode, err)
	}
	if err := decodeColumn(r.multiDay, &svc.MultiDay); err != nil {
		return nil, fmt.Errorf("%w: multi_day: %v", ErrDecode, err)
	}
	if err := decodeColumn(r.bundle, &svc.Bundle); err != nil {
		return nil, fmt.Errorf("%w: bundle: %v", ErrDecode, err)
	}
	if err := decodeColumn(r.capacity, &svc.Capacity); err != nil {
		return nil, fmt.Errorf("%w: capacity: %v", ErrDecode, err)
	}
	if err := decodeColumn(r.cancellation, &svc.Cancellation); err != nil {
		return nil, fmt.Errorf("%w: cancellation: %v", ErrDecode, err)
	}
	if err := decodeColumn(r.reschedule, &svc.Reschedule); err != nil {
		return nil, fmt.Errorf("%w: reschedule: %v", ErrDecode, err)
	}
	if err := decodeColumn(r.payment, &svc.Payment); err != nil {
		return nil, fmt.Errorf("%w: payment: %v", ErrDecode, err)
	}
	if err := decodeColumn(r.customerFields, &svc.CustomerFields); err != nil {
		return nil, fmt.Errorf("%w: customer_fields: %v", ErrDecode, err)
	}
	if err := decodeColumn(r.locationIDs, &svc.LocationIDs); err != nil {
		return nil, fmt.Errorf("%w: location_ids: %v", ErrDecode, err)
	}
	if err := decodeColumn(r.staffIDs, &svc.StaffIDs); err != nil {
		return nil, fmt.Errorf("%w: staff_ids: %v", ErrDecode, err)
	}

	return &svc, nil
}

func decodeColumn(raw []byte, dst interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// encodedColumns holds the JSONB payloads for insert/update
type encodedColumns struct {
	variantIDs     []byte
	multiDay       interface{}
	bundle         interface{}
	capacity       []byte
	cancellation   []byte
	reschedule     []byte
	payment        interface{}
	customerFields []byte
	locationIDs    []byte
	staffIDs       []byte
}

func encodeService(svc *domain.Service) (*encodedColumns, error) {
	enc := &encodedColumns{}
	var err error

	if enc.variantIDs, err = json.Marshal(emptyIfNilStrings(svc.VariantIDs)); err != nil {
		return nil, fmt.Errorf("%w: variant_ids: %v", ErrEncode, err)
	}
	if enc.multiDay, err = encodeNullable(svc.MultiDay == nil, svc.MultiDay); err != nil {
		return nil, fmt.Errorf("%w: multi_day: %v", ErrEncode, err)
	}
	if enc.bundle, err = encodeNullable(svc.Bundle == nil, svc.Bundle); err != nil {
		return nil, fmt.Errorf("%w: bundle: %v", ErrEncode, err)
	}
	if enc.capacity, err = json.Marshal(svc.Capacity); err != nil {
		return nil, fmt.Errorf("%w: capacity: %v", ErrEncode, err)
	}
	if enc.cancellation, err = json.Marshal(svc.Cancellation); err != nil {
		return nil, fmt.Errorf("%w: cancellation: %v", ErrEncode, err)
	}
	if enc.reschedule, err = json.Marshal(svc.Reschedule); err != nil {
		return nil, fmt.Errorf("%w: reschedule: %v", ErrEncode, err)
	}
	if enc.payment, err = encodeNullable(svc.Payment == nil, svc.Payment); err != nil {
		return nil, fmt.Errorf("%w: payment: %v", ErrEncode, err)
	}
	if enc.customerFields, err = json.Marshal(emptyIfNilFields(svc.CustomerFields)); err != nil {
		return nil, fmt.Errorf("%w: customer_fields: %v", ErrEncode, err)
	}
	if enc.locationIDs, err = json.Marshal(emptyIfNilIDs(svc.LocationIDs)); err != nil {
		return nil, fmt.Errorf("%w: location_ids: %v", ErrEncode, err)
	}
	if enc.staffIDs, err = json.Marshal(emptyIfNilIDs(svc.StaffIDs)); err != nil {
		return nil, fmt.Errorf("%w: staff_ids: %v", ErrEncode, err)
	}

	return enc, nil
}

// encodeNullable keeps SQL NULL for absent optional sections instead
// of storing the JSON literal null.
func encodeNullable(isNil bool, v interface{}) (interface{}, error) {
	if isNil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func emptyIfNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func emptyIfNilIDs(v []int64) []int64 {
	if v == nil {
		return []int64{}
	}
	return v
}

func emptyIfNilFields(v []domain.CustomerField) []domain.CustomerField {
	if v == nil {
		return []domain.CustomerField{}
	}
	return v
}
