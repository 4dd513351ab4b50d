// Package constants holds configuration vocabulary shared across layers.
package constants

const (
	// EnvDevelop is the env.env value used for local development.
	EnvDevelop = "develop"

	// RealtimeProviderMemory selects the in-process broker.
	RealtimeProviderMemory = "memory"
	// RealtimeProviderPostgres selects LISTEN/NOTIFY on PostgreSQL.
	RealtimeProviderPostgres = "postgres"
	// RealtimeProviderGoogle selects Google Cloud Pub/Sub.
	RealtimeProviderGoogle = "google"

	// DefaultRealtimeChannel is the LISTEN channel and topic name for notification events.
	DefaultRealtimeChannel = "notifications"
)
