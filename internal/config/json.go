package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		Version       string `json:"version"`
		DefaultClient string `json:"default_client"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		PublicDir          string   `json:"public_dir"`
		FeedbackRateLimit  int      `json:"feedback_rate_limit"`
		FeedbackRateWindow Duration `json:"feedback_rate_window"`
		TrustProxy         bool     `json:"trust_proxy"`
	} `json:"server,omitempty"`

	Storage struct {
		Cache struct {
			DSN string   `json:"dsn"`
			TTL Duration `json:"ttl"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Mail struct {
		APIKey         string   `json:"api_key"`
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"mail,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Preview struct {
		PageURL string `json:"page_url"`
	} `json:"preview,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:       jsonCfg.App.Version,
			DefaultClient: jsonCfg.App.DefaultClient,
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			PublicDir:          jsonCfg.Server.PublicDir,
			FeedbackRateLimit:  jsonCfg.Server.FeedbackRateLimit,
			FeedbackRateWindow: time.Duration(jsonCfg.Server.FeedbackRateWindow),
			TrustProxy:         jsonCfg.Server.TrustProxy,
		},
		Storage: Storage{
			Cache: Cache{
				DSN: jsonCfg.Storage.Cache.DSN,
				TTL: time.Duration(jsonCfg.Storage.Cache.TTL),
			},
		},
		Mail: Mail{
			APIKey:         jsonCfg.Mail.APIKey,
			BaseURL:        jsonCfg.Mail.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Mail.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Preview: Preview{
			PageURL: jsonCfg.Preview.PageURL,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
