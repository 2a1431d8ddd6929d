package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
	Task     TaskConfig     `mapstructure:"task"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error fatal"`
	// AllowedOrigins lists the origins permitted by the CORS middleware.
	// An empty list allows all origins, which is suitable for development only.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
	// Add other DB settings as needed (e.g., pool size)
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
	// TokenLifetimeMinutes controls how long issued JWTs remain valid.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	// BcryptCost controls the work factor for password hashing.
	// Zero means the bcrypt default.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"omitempty,gte=4,lte=31"`
}

// TaskConfig contains settings for the background task runner.
type TaskConfig struct {
	// WorkerCount determines how many concurrent workers process tasks.
	WorkerCount int `mapstructure:"worker_count" validate:"omitempty,gt=0"`
	// QueueSize determines the buffer size for the in-memory task queue.
	QueueSize int `mapstructure:"queue_size" validate:"omitempty,gt=0"`
	// StuckTaskAgeMinutes defines how long a task may stay in processing
	// state before recovery resets it to pending.
	StuckTaskAgeMinutes int `mapstructure:"stuck_task_age_minutes" validate:"omitempty,gt=0"`
}

// QuizConfig contains settings for quiz question generation.
type QuizConfig struct {
	// MaxDistractors caps the number of wrong answers generated per
	// question. Zero means the generator default.
	MaxDistractors int `mapstructure:"max_distractors" validate:"omitempty,gte=1,lte=8"`
}
