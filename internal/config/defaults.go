package config

const (
	defaultConfigPath         = "~/.config/namekey/config.toml"
	defaultDataDir            = "~/.local/share/namekey"
	defaultLogDir             = "~/.local/share/namekey/logs"
	defaultPhoneticRuleset    = "Han-Latin/Names; Latin-Ascii; Any-Upper"
	defaultFoldRuleset        = "Latin-Ascii"
	defaultCacheSize          = 4096
	defaultCollationLocale    = "zh"
	defaultGroupsAuthority    = "com.android.contacts.localgroups"
	defaultPreloadLockTimeout = 10
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

var defaultGroupTitles = []string{"Family", "Friend", "Work"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Transliteration: Transliteration{
			PhoneticRuleset: defaultPhoneticRuleset,
			FoldRuleset:     defaultFoldRuleset,
			CacheSize:       defaultCacheSize,
			CollationLocale: defaultCollationLocale,
		},
		Groups: Groups{
			Authority:     defaultGroupsAuthority,
			DefaultTitles: append([]string(nil), defaultGroupTitles...),
		},
		Preload: Preload{
			LockTimeoutSeconds: defaultPreloadLockTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
