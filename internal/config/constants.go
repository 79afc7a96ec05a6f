package config

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Environments
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "production"
)

// Known example values that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
