package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"finanzas/config"
)

const defaultImgBBEndpoint = "https://api.imgbb.com/1/upload"

// ImageData datos de la imagen subida al servicio externo
type ImageData struct {
	URL          string `json:"url"`
	DeleteURL    string `json:"delete_url"`
	ThumbnailURL string `json:"thumbnail"`
}

// uploadResponse respuesta del endpoint de subida de ImgBB
type uploadResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL       string `json:"url"`
		DeleteURL string `json:"delete_url"`
		Thumb     struct {
			URL string `json:"url"`
		} `json:"thumb"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ImgBBClient cliente del servicio de alojamiento de imágenes ImgBB
type ImgBBClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewImgBBClient crea el cliente de ImgBB
func NewImgBBClient(cfg *config.ImgBBConfig) *ImgBBClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultImgBBEndpoint
	}
	return &ImgBBClient{
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload sube una imagen a ImgBB y devuelve las URLs resultantes.
// La API de ImgBB acepta la imagen codificada en base64 dentro de un
// formulario multipart, con la clave de API como parámetro de consulta.
func (s *ImgBBClient) Upload(data []byte, name string) (*ImageData, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("image", base64.StdEncoding.EncodeToString(data)); err != nil {
		return nil, fmt.Errorf("error construyendo el formulario: %w", err)
	}
	if name != "" {
		if err := writer.WriteField("name", name); err != nil {
			return nil, fmt.Errorf("error construyendo el formulario: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("error construyendo el formulario: %w", err)
	}

	endpoint := s.endpoint + "?key=" + url.QueryEscape(s.apiKey)
	req, err := http.NewRequest(http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("error creando la petición: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error contactando al servicio de imágenes: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error leyendo la respuesta: %w", err)
	}

	var out uploadResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("error interpretando la respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !out.Success {
		msg := out.Error.Message
		if msg == "" {
			msg = string(raw)
		}
		return nil, fmt.Errorf("el servicio de imágenes respondió %d: %s", resp.StatusCode, msg)
	}

	if out.Data.URL == "" {
		return nil, fmt.Errorf("el servicio de imágenes no devolvió ninguna URL")
	}

	return &ImageData{
		URL:          out.Data.URL,
		DeleteURL:    out.Data.DeleteURL,
		ThumbnailURL: out.Data.Thumb.URL,
	}, nil
}
