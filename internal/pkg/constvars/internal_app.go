package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PTNT_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	StoreDriverFile  = "file"
	StoreDriverMongo = "mongo"
)

const (
	MongoCollectionPatients = "patients"
)

const (
	RedisKeyPatientList        = "patients:all"
	RedisKeyPatientStoreLock   = "lock:patients:store"
	RedisKeySnapshotLeaderLock = "lock:patients:snapshot"
)

const (
	PatientStoreSnapshotPath = "snapshots/patients-%d.json"
	PatientStoreFileTempGlob = ".patients-*.tmp"
)

const (
	PatientEventCreated = "patient.created"
	PatientEventUpdated = "patient.updated"
)

const (
	PredictorPredictEndpoint = "/predict"
	PredictorLabelField      = "predicted_category"
)
