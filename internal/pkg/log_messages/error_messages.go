package log_messages

const (
	FailedLoadingConfiguration     = "failed to load configuration"
	KafkaConsumerCreated           = "kafka consumer created"
	KafkaConsumerClosed            = "kafka consumer closed"
	KafkaErrorConsuming            = "kafka consumer error in consuming"
	ErrorDeserializingKafkaMessage = "error deserializing application event message"
	InvalidApplicationEvent        = "application event failed validation"
	TopicDoesNotExists             = "pubsub topic does not exist: %v"
	ErrorMarshallingMessage        = "failed to marshal message: %w"
	ErrorInMessagePublishing       = "failed to publish message: %w"
	ErrorPubSubClientCreation      = "error creating pubsub client"
	ErrorPublishingNotification    = "failed to publish schedule notification"
	ErrorAppendingTraceLine        = "failed to append trace line to redis"
	ErrorReadingTraceLines         = "failed to read trace lines from redis"
	ServerStartFailure             = "failed to start HTTP server"
	ServerExiting                  = "server exiting"
	CleanupStarted                 = "resource cleanup started"
	CleanupCompleted               = "resource cleanup completed"
	OtelConnectionError            = "OTLP connection error"
)

// Diagnostic trace lines of a schedule run.
const (
	TraceExecutionStarted       = "Schedule execution started."
	TraceExecutionCompleted     = "Schedule execution completed."
	TraceTargetMissing          = "Target is either missing or not a mortgage application record."
	TraceWrongEntityType        = "Entity is not of type '%s'."
	TraceStatusMissing          = "Application status is missing."
	TraceNotApproved            = "The status is not 'Approved'. Exiting."
	TraceRetrievedFullRecord    = "Retrieved the full record to get all required fields."
	TraceRequiredFieldsMissing  = "One or more required fields (term, amount, risk score, sales tax rate) are missing."
	TraceEligible               = "Application is eligible for schedule generation."
	TraceDurationInMonths       = "Duration in months: %d"
	TraceNoPaymentsForTerm      = "Term is %d months, no payments to generate."
	TraceRateBlended            = "Final APR: %s, monthly rate: %s, monthly payment: %s"
	TracePaymentCreated         = "Payment record created: Due Date %s, Amount %s"
	TraceScheduleCompleted      = "Payment records creation completed successfully."
	TraceServiceFault           = "ServiceFault: %v"
	TraceUnexpectedFailure      = "Exception: %v"
	ExecutionFailedServiceFault = "an error occurred while generating the mortgage payment schedule"
	ExecutionFailedUnexpected   = "an unexpected error occurred while generating the mortgage payment schedule"
)
