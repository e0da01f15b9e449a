package save_service

import (
	"fmt"

	"github.com/bookeasy/admin-service/internal/domain"
)

// validateRequest checks the structural parts of the payload that are
// never acceptable, draft or not.
func validateRequest(req *Request) error {
	if req.ShopID <= 0 {
		return fmt.Errorf("%w: shopID must be positive", ErrInvalidInput)
	}
	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if _, err := domain.ParseServiceType(string(req.ServiceType)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}
	return nil
}

// validateGates runs the save gate, and the full wizard gate when the
// request publishes the service.
func validateGates(svc *domain.Service, publish bool) error {
	violations := domain.ValidateForSave(svc)

	if publish {
		for step := domain.StepProductAndSlots; step <= domain.StepOthers; step++ {
			violations = append(violations, domain.ValidateStep(svc, step)...)
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: dedup(violations)}
	}
	return nil
}

func dedup(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
