package provider

import (
	"context"
	"io"
	"net/http"
	"strings"

	"govex/classify"
	"govex/enums"
	"govex/models"
	"govex/normalize"
	"govex/platform"
	"govex/util/networking"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// ThirdParty calls an external download API that returns the medias
// shape. Only active when its endpoint and key are configured.
type ThirdParty struct {
	apiURL     string
	apiKey     string
	client     *http.Client
	normalizer *normalize.Normalizer
}

func NewThirdParty(apiURL, apiKey string, client *http.Client) *ThirdParty {
	if client == nil {
		client = networking.GetDefaultHTTPClient()
	}
	return &ThirdParty{
		apiURL:     apiURL,
		apiKey:     apiKey,
		client:     client,
		normalizer: normalize.New(enums.ProviderKindThirdParty),
	}
}

func (t *ThirdParty) Name() string             { return "download-api" }
func (t *ThirdParty) Kind() enums.ProviderKind { return enums.ProviderKindThirdParty }

func (t *ThirdParty) Available(context.Context) bool {
	return t.apiURL != "" && t.apiKey != ""
}

func (t *ThirdParty) Extract(ctx context.Context, url string, retryAttempt int) (*models.ExtractResult, error) {
	payload, err := sonic.ConfigFastest.Marshal(map[string]string{"url": url})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode api request")
	}
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		t.apiURL,
		strings.NewReader(string(payload)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build api request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, classify.FromError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify.FromError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, classify.Classify(string(body), "")
	}
	return t.normalizer.Normalize(body, platform.Detect(url), url)
}
