package mappers

import "time"

// utcPtr normalizes a nullable timestamp read back from the driver.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
