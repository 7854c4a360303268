package config

type (
	DriverConfig struct {
		MongoDB   MongoDB
		Redis     Redis
		Logger    Logger
		RabbitMQ  RabbitMQ
		Minio     Minio
		Predictor Predictor
	}
	MongoDB struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Enabled  bool
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Enabled    bool
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	Predictor struct {
		BaseUrl              string
		HTTPTimeoutInSeconds int
	}
)
