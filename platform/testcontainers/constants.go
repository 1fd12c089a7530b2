package testcontainers

// Mongo container
const (
	MongoAlias = "mongo-parts"
	MongoPort  = "27017"
)

// Parts service environment
const (
	AppEnvKey          = "APP_ENV"
	HTTPHostKey        = "HTTP_HOST"
	HTTPPortKey        = "HTTP_PORT"
	MongoURIKey        = "MONGO_URI"
	DBNameKey          = "DB_NAME"
	LoggerLevelKey     = "LOGGER_LEVEL"
	LoggerAsJSONKey    = "LOGGER_AS_JSON"
	CORSAllowOriginKey = "CORS_ALLOWED_ORIGIN"
)
