package config

type DriverConfig struct {
	Logger Logger
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}
