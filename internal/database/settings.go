package database

func (d *Database) GetSetting(key string) (string, bool) {
	var value *string
	err := d.DB.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	if value != nil {
		return *value, true
	}
	return "", false
}

// GetSettingDefault returns the stored value for key, or fallback when
// the key is absent.
func (d *Database) GetSettingDefault(key, fallback string) string {
	if value, ok := d.GetSetting(key); ok {
		return value
	}
	return fallback
}

func (d *Database) SetSetting(key, value string) error {
	_, err := d.DB.Exec("INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", key, err)
}
