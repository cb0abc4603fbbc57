package config

type Config struct {
	Dashboard Dashboard `yaml:"dashboard"`
	API       API       `yaml:"api"`
	MockAPI   MockAPI   `yaml:"mockapi"`
}

type Dashboard struct {
	Port int `yaml:"port"`
}

type API struct {
	BaseURL   string `yaml:"base_url"`
	TokenPath string `yaml:"token_path"`
}

type MockAPI struct {
	Port     int    `yaml:"port"`
	DataPath string `yaml:"data_path"`
}

func defaults() *Config {
	return &Config{
		Dashboard: Dashboard{
			Port: 8123,
		},
		API: API{
			BaseURL:   "http://localhost:8124",
			TokenPath: "./data/token",
		},
		MockAPI: MockAPI{
			Port:     8124,
			DataPath: "./data/fleet.json",
		},
	}
}
