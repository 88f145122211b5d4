// Package weather looks up current conditions from OpenWeather.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sandevgo/mordomo/internal/config"
	"github.com/sandevgo/mordomo/internal/core"
)

// ErrNotConfigured signals a missing API key. Callers degrade to their
// neutral placeholder instead of treating this as a lookup failure.
var ErrNotConfigured = errors.New("weather provider not configured")

type OpenWeather struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewOpenWeather(cfg *config.WeatherConfig) *OpenWeather {
	return &OpenWeather{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

func (o *OpenWeather) Lookup(ctx context.Context, city string) (core.Weather, error) {
	if o.apiKey == "" {
		return core.Weather{}, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", o.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "pt_br")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return core.Weather{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return core.Weather{}, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.Weather{}, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return core.Weather{}, fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	var apiResp struct {
		Name string `json:"name"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return core.Weather{}, fmt.Errorf("decode: %w", err)
	}

	w := core.Weather{
		PlaceName:    apiResp.Name,
		TemperatureC: apiResp.Main.Temp,
		HumidityPct:  apiResp.Main.Humidity,
		WindSpeed:    apiResp.Wind.Speed,
	}
	if len(apiResp.Weather) > 0 {
		w.Condition = apiResp.Weather[0].Description
	}
	return w, nil
}
