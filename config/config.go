package config

import "os"

// Config holds everything read from the environment at startup.
// Values are loaded once in main and passed down, never read from the
// environment inside handlers.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string

	BucketName string
	AWSRegion  string

	// Optional S3-compatible endpoint (MinIO, R2). When set, S3Endpoint
	// plus the static key pair below are used instead of the default
	// AWS credential chain, and public URLs are path-style.
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

func Load() *Config {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: os.Getenv("MONGO_DATABASE"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		BucketName:    os.Getenv("BUCKET_NAME"),
		AWSRegion:     os.Getenv("AWS_REGION"),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretKey:   os.Getenv("S3_SECRET_ACCESS_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "8007"
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "photoalbum"
	}

	return cfg
}
