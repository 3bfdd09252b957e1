package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Simulation.AuthDelayMS == 0 {
		cfg.Simulation.AuthDelayMS = 2000
	}
	if cfg.Simulation.RetrievalDelayMS == 0 {
		cfg.Simulation.RetrievalDelayMS = 3000
	}
	if cfg.Simulation.StageDelaysMS == nil {
		cfg.Simulation.StageDelaysMS = []int{500, 1500, 2500, 3500}
	}
}
