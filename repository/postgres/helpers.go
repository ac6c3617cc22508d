package postgres

import "time"

func nullTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
