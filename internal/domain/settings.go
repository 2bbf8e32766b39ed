package domain

import (
	"encoding/json"
	"time"
)

// SettingsGroup ключ группы настроек сайта
type SettingsGroup string

const (
	SettingsGeneral  SettingsGroup = "general"
	SettingsSocial   SettingsGroup = "social"
	SettingsHomepage SettingsGroup = "homepage"
)

// SettingsGroups все поддерживаемые группы
var SettingsGroups = []SettingsGroup{SettingsGeneral, SettingsSocial, SettingsHomepage}

func (g SettingsGroup) IsValid() bool {
	switch g {
	case SettingsGeneral, SettingsSocial, SettingsHomepage:
		return true
	default:
		return false
	}
}

// SiteSettings строка site_settings. Value перезаписывается целиком (last write wins)
type SiteSettings struct {
	Key       SettingsGroup
	Value     json.RawMessage
	UpdatedAt time.Time
}
