package service

import (
	"database/sql"
	"encoding/json"
	"time"
)

func toNullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{
		Time:  t,
		Valid: true,
	}
}

func notesJSON(notes map[string]string) string {
	if len(notes) == 0 {
		return ""
	}
	b, err := json.Marshal(notes)
	if err != nil {
		return ""
	}
	return string(b)
}
