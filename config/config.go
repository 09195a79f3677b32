package config

type AppConfig struct {
	HeapConfig *HeapConfig
}

func New() *AppConfig {
	return &AppConfig{
		HeapConfig: NewHeapConfig(),
	}
}
