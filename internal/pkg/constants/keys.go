package constants

const (
	CookieKeySecretToken = "admin-session"

	CtxKeyAdminEmail = "admin_email"
)

// Viper configuration keys. Bound to env vars in cmd/niep.
const (
	ViperListenAddr    = "listen_addr"
	ViperDBHost        = "db_host"
	ViperDBPort        = "db_port"
	ViperDBName        = "db_name"
	ViperDBUser        = "db_user"
	ViperDBPassword    = "db_password"
	ViperAdminEmail    = "admin_email"
	ViperAdminPassword = "admin_password"
	ViperSecretKey     = "admin_secret"
	ViperAuthSecret    = "auth_secret"
	ViperBackfillURL   = "backfill_url"
	ViperCORSOrigin    = "cors_origin"
)
