package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"
	LoggingPatientIDKey      = "patient_id"
	LoggingPatientCountKey   = "patient_count"
	LoggingSortByKey         = "sort_by"
	LoggingSortOrderKey      = "sort_order"
	LoggingPatchFieldsKey    = "patch_fields"
	LoggingStoreDriverKey    = "store_driver"
	LoggingFilePathKey       = "file_path"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockAttemptKey    = "lock_attempt"
	LoggingQueueNameKey      = "queue_name"
	LoggingEventKey          = "event"
	LoggingBucketNameKey     = "bucket_name"
	LoggingObjectNameKey     = "object_name"
	LoggingPredictorURLKey   = "predictor_url"
	LoggingFeaturesKey       = "features"
	LoggingPredictedLabelKey = "predicted_category"
	LoggingCronSpecKey       = "cron_spec"
)
