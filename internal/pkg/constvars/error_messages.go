package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"numeric":    "must be a number",
	"oneof":      "must be one of [%s]",
	"gt":         "must be greater than %s",
	"gte":        "must be greater than or equal to %s",
	"lt":         "must be less than %s",
	"lte":        "must be less than or equal to %s",
	"gender":     "must be one of [Male, Female]",
	"occupation": "must be one of [retired, freelancer, student, government_job, business_owner, unemployed, private_job]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPatientIDNotFound             = "Patient Id not found"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientPatientAlreadyExists          = "Patient already exists"
	ErrClientInvalidSortField              = "Invalid field, select from %v"
	ErrClientInvalidSortOrder              = "Invalid order, select from asc or desc"
	ErrClientPatientStoreBusy              = "the patient store is busy, please retry"
	ErrClientPredictorUnavailable          = "prediction model is unavailable"
	ErrClientRequestBodyTooLarge           = "request body is too large"
	ErrClientTooManyRequests               = "Too many requests, you are blocked temporarily."
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevMissingRequestID          = "request ID is missing from context"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevServerProcess             = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded    = "deadline exceeded"
	ErrDevRequestBodyTooLarge       = "request body exceeded the configured limit"
	ErrDevTooManyRequests           = "client ip %s is blocked by the rate limiter"
	ErrDevPatientNotExists          = "patient %s does not exist in the store"
	ErrDevPatientAlreadyExists      = "patient %s already exists in the store"
	ErrDevInvalidSortField          = "sort field %q is not allowed"
	ErrDevInvalidSortOrder          = "sort order %q is not allowed"
	ErrDevPatientStoreLockNotHeld   = "could not acquire the patient store lock after %d attempts"
	ErrDevPredictorUnexpectedStatus = "predictor responded with status %d"
	ErrDevPredictorDecodeResponse   = "failed to decode predictor response"

	// Store messages
	ErrDevStoreFailedToRead   = "failed to read patient store file %s"
	ErrDevStoreFailedToDecode = "failed to decode patient store file %s"
	ErrDevStoreFailedToWrite  = "failed to write patient store file %s"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitMQ channel"
	ErrDevRabbitMQDeclareQueue   = "failed to declare rabbitMQ queue %s"
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitMQ queue %s"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
