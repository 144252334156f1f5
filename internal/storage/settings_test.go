package storage

import "testing"

func TestSettingsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Setting(SettingTheme); err != nil || ok {
		t.Fatalf("unset key: ok=%v err=%v", ok, err)
	}

	if err := store.SetSetting(SettingTheme, "light"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if err := store.SetSetting(SettingTheme, "dark"); err != nil {
		t.Fatalf("SetSetting() overwrite failed: %v", err)
	}

	value, ok, err := store.Setting(SettingTheme)
	if err != nil || !ok {
		t.Fatalf("Setting() ok=%v err=%v", ok, err)
	}
	if value != "dark" {
		t.Errorf("theme = %q, expected dark", value)
	}
}

func TestBoolSetting(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name   string
		stored string // empty: leave unset
		def    bool
		want   bool
	}{
		{"unset uses default", "", true, true},
		{"stored true", "true", false, true},
		{"stored false", "false", true, false},
		{"garbage uses default", "loud", true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key := "bool_" + tc.name
			if tc.stored != "" {
				if err := store.SetSetting(key, tc.stored); err != nil {
					t.Fatalf("SetSetting() failed: %v", err)
				}
			}
			got, err := store.BoolSetting(key, tc.def)
			if err != nil {
				t.Fatalf("BoolSetting() failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("BoolSetting() = %v, expected %v", got, tc.want)
			}
		})
	}

	if err := store.SetBoolSetting(SettingMuted, true); err != nil {
		t.Fatalf("SetBoolSetting() failed: %v", err)
	}
	if muted, _ := store.BoolSetting(SettingMuted, false); !muted {
		t.Error("muted should read back true")
	}
}
