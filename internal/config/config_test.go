package config

import "testing"

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default configuration failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "zero cache capacity", mutate: func(c *Config) { c.CacheCapacity = 0 }, wantErr: true},
		{name: "negative cache capacity", mutate: func(c *Config) { c.CacheCapacity = -5 }, wantErr: true},
		{name: "zero colour count", mutate: func(c *Config) { c.ColorCount = 0 }, wantErr: true},
		{name: "oversized colour count", mutate: func(c *Config) { c.ColorCount = 300 }, wantErr: true},
		{name: "bad contrast ratio", mutate: func(c *Config) { c.MinContrastRatio = 0 }, wantErr: true},
		{name: "larger cache", mutate: func(c *Config) { c.CacheCapacity = 512 }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
