package constants

// Environment names used by env.env.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Identity providers selectable through identity.provider.
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderLocal    = "local"
)

// Storage buckets holding private KYC scans and public brand logos.
const (
	BucketKycDocuments = "kyc-documents"
	BucketVehicleLogos = "vehicle-logos"
)

// Pub/Sub message attributes the push worker routes and traces on.
const (
	AttributeEventType = "event_type"
	AttributeRequestID = "request_id"
)
