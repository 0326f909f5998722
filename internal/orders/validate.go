package orders

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"takeabite/internal/models"
)

// ValidationError maps each failing field to its message. Create returns it
// with every problem enumerated so the caller can surface them all at once.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
)

// Validate checks the draft and returns a non-empty ValidationError when any
// field is missing or malformed.
func (d Draft) Validate() ValidationError {
	errs := ValidationError{}

	if strings.TrimSpace(d.CustomerName) == "" {
		errs["name"] = "Name is required"
	}

	phone := strings.TrimSpace(d.CustomerPhone)
	if phone == "" {
		errs["phone"] = "Phone is required"
	} else if !phonePattern.MatchString(phone) && len(phone) < 10 {
		errs["phone"] = "Please enter a valid phone number"
	}

	email := strings.TrimSpace(d.CustomerEmail)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Please enter a valid email address"
	}

	if d.OrderType == models.TypeDelivery && strings.TrimSpace(d.DeliveryAddress) == "" {
		errs["deliveryAddress"] = "Delivery address is required"
	}

	if len(d.Items) == 0 {
		errs["items"] = "Please select at least one cookie"
	} else {
		for _, item := range d.Items {
			if item.Quantity <= 0 {
				errs["items"] = "Item quantities must be at least 1"
				break
			}
		}
	}

	return errs
}
