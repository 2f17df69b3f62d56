package config

import (
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const renderBaseURL = "https://api.render.com/v1"

type SecretStorage interface {
	ListSecrets(serviceID string) (map[string]string, error)
}

type RenderClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIKey:     config.Render.APIKey,
		BaseURL:    renderBaseURL,
		HTTPClient: &http.Client{},
	}
}

// ListSecrets retorna os secret files do serviço no Render, indexados pelo nome
func (c *RenderClient) ListSecrets(serviceID string) (map[string]string, error) {
	url := fmt.Sprintf("%s/services/%s/secret-files?limit=100", c.BaseURL, serviceID)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("config: error list secrets: %s", body)
	}

	var response []struct {
		SecretFile struct {
			Content string `json:"content"`
			Name    string `json:"name"`
		} `json:"secretFile"`
		Cursor string `json:"cursor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	secretsMap := make(map[string]string)
	for _, sf := range response {
		secretsMap[sf.SecretFile.Name] = sf.SecretFile.Content
	}

	return secretsMap, nil
}

// ApplySecrets sobrescreve a senha do banco com o secret do Render, quando configurado,
// e recompõe o DSN.
func ApplySecrets(config *Config, storage SecretStorage) error {
	if config.Render.ServiceID == "" {
		return nil
	}

	secrets, err := storage.ListSecrets(config.Render.ServiceID)
	if err != nil {
		return fmt.Errorf("config: erro ao obter secrets do Render: %w", err)
	}

	password, ok := secrets[config.Render.DatabasePasswordSecret]
	if !ok || password == "" {
		logrus.WithField("secret", config.Render.DatabasePasswordSecret).
			Warn("Secret da senha do banco não encontrado no Render, mantendo configuração local")
		return nil
	}

	config.Database.Password = password
	config.Database.ComposeDSN()

	return nil
}
