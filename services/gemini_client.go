package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
)

// FallbackReport is returned whenever the AI call fails for any reason.
const FallbackReport = "Xatolik yuz berdi. Iltimos qaytadan urinib ko'ring."

// GeminiClient calls the Generative Language API. It satisfies
// Summarizer and fails closed with FallbackReport.
type GeminiClient struct {
	APIKey  string
	BaseURL string
	Model   string
	HTTP    *http.Client
}

func NewGeminiClient(apiKey, baseURL, model string) *GeminiClient {
	return &GeminiClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   model,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}
type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}
type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *GeminiClient) Summarize(ctx context.Context, sales []entity.SaleRecord) string {
	data, err := json.Marshal(sales)
	if err != nil {
		return FallbackReport
	}

	prompt := fmt.Sprintf(`Quyidagi oxirgi haftalik sotuv ma'lumotlarini tahlil qil va o'zbek tilida qisqa hisobot tayyorla:
%s

Hisobotda quyidagilar bo'lsin:
1. Haftaning eng ko'p buyurtma bo'lgan kunlari (Peak days).
2. Sotuvlar past bo'lgan kunlar va ularning sababi haqida taxminlar.
3. Kelasi hafta uchun biznes maslahatlar.

Hisobot professional, lekin tushunarli tilda bo'lsin.`, string(data))

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return FallbackReport
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.BaseURL, g.Model, g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return FallbackReport
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTP.Do(req)
	if err != nil {
		log.Printf("ai report error: %v", err)
		return FallbackReport
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("ai report error (%d): %s", resp.StatusCode, string(raw))
		return FallbackReport
	}

	var out geminiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return FallbackReport
	}
	if out.Error != nil || len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return FallbackReport
	}
	return out.Candidates[0].Content.Parts[0].Text
}
