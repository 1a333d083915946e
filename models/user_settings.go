package models

type UserSettings struct {
	ID                   int    `json:"id" db:"id"`
	UserID               int    `json:"user_id" db:"user_id"`
	Currency             string `json:"currency" db:"currency"`
	Theme                string `json:"theme" db:"theme"`
	NotificationsEnabled bool   `json:"notifications_enabled" db:"notifications_enabled"`
	WeeklyReports        bool   `json:"weekly_reports" db:"weekly_reports"`
}
