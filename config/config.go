package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	JWT          JWT
	Upload       Upload
	GeminiApiKey string
}

type Server struct {
	Port string
	Mode string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type JWT struct {
	Secret    string
	ExpiryDay int
}

type Upload struct {
	Backend        string // "disk" or "minio"
	Dir            string
	MaxSizeBytes   int64
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_EXPIRY_DAYS", 30)
	viper.SetDefault("UPLOAD_BACKEND", "disk")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("UPLOAD_MAX_SIZE_BYTES", int64(50*1024*1024))

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("GIN_MODE")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.ExpiryDay = viper.GetInt("JWT_EXPIRY_DAYS")

	config.Upload.Backend = viper.GetString("UPLOAD_BACKEND")
	config.Upload.Dir = viper.GetString("UPLOAD_DIR")
	config.Upload.MaxSizeBytes = viper.GetInt64("UPLOAD_MAX_SIZE_BYTES")
	config.Upload.MinioEndpoint = viper.GetString("MINIO_ENDPOINT")
	config.Upload.MinioAccessKey = viper.GetString("MINIO_ACCESS_KEY")
	config.Upload.MinioSecretKey = viper.GetString("MINIO_SECRET_KEY")
	config.Upload.MinioBucket = viper.GetString("MINIO_BUCKET")
	config.Upload.MinioUseSSL = viper.GetBool("MINIO_USE_SSL")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("db", config.Database.Name).Msg("Config loaded")
	return &config, nil
}
