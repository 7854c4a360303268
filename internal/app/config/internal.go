package config

type InternalConfig struct {
	App      App
	Store    AppStore
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Tag                        string
	Timezone                   string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	// PredictMaxRequestsPerMinute bounds /predict calls per IP before the IP is blocked
	PredictMaxRequestsPerMinute int
	PredictBlockTimeInSeconds   int
}

type AppStore struct {
	// Driver selects the patient record store, "file" or "mongo"
	Driver   string
	FilePath string
	// LockTTLInSeconds bounds how long a mutation may hold the shared store lock
	LockTTLInSeconds   int
	LockMaxAttempts    int
	LockRetryInMillis  int
	ViewCacheTTLInSecs int
	// SnapshotCronSpec schedules full store uploads to MinIO, empty disables them
	SnapshotCronSpec string
}

type AppRabbitMQ struct {
	PatientEventQueue string
}
