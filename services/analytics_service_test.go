package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/repository"
)

func TestAnalyticsService_GenerateReport(t *testing.T) {
	db := newTestDB(t)
	records := []entity.SaleRecord{
		{Date: "2024-05-13", Amount: 2500000, Orders: 45},
		{Date: "2024-05-14", Amount: 1800000, Orders: 32},
	}
	for _, r := range records {
		if err := db.Create(&r).Error; err != nil {
			t.Fatalf("seed sales: %v", err)
		}
	}

	ai := stubSummarizer{text: "Haftalik hisobot tayyor."}
	svc := NewAnalyticsService(repository.NewReportRepository(db), ai)

	report, err := svc.GenerateReport(context.Background())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report != "Haftalik hisobot tayyor." {
		t.Errorf("unexpected report: %q", report)
	}
	sales, err := svc.WeeklySales()
	if err != nil {
		t.Fatalf("sales: %v", err)
	}
	if len(sales) != 2 || sales[0].Date != "2024-05-13" {
		t.Errorf("sales series wrong order: %+v", sales)
	}
}

type stubSummarizer struct {
	text string
}

func (s stubSummarizer) Summarize(_ context.Context, _ []entity.SaleRecord) string {
	return s.text
}

func TestGeminiClient_FallbackOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGeminiClient("key", srv.URL, "gemini-2.0-flash")
	got := client.Summarize(context.Background(), nil)
	if got != FallbackReport {
		t.Errorf("expected fallback text, got %q", got)
	}
}

func TestGeminiClient_ParsesCandidateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Eng yaxshi kun: shanba."}]}}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient("key", srv.URL, "gemini-2.0-flash")
	got := client.Summarize(context.Background(), []entity.SaleRecord{{Date: "2024-05-18", Amount: 5200000, Orders: 95}})
	if got != "Eng yaxshi kun: shanba." {
		t.Errorf("unexpected summary: %q", got)
	}
}

func TestGeminiClient_FallbackOnUnreachableHost(t *testing.T) {
	client := NewGeminiClient("key", "http://127.0.0.1:1", "gemini-2.0-flash")
	if got := client.Summarize(context.Background(), nil); got != FallbackReport {
		t.Errorf("expected fallback text, got %q", got)
	}
}

func TestAnalyticsService_Devices(t *testing.T) {
	db := newTestDB(t)
	for _, d := range []entity.Device{
		{ID: "dev1", Name: "iPhone 15 Pro (Boshliq)", Location: "Toshkent", Type: "mobile", IP: "192.168.1.15"},
		{ID: "dev2", Name: "MacBook Air (Admin)", Location: "Samarqand", Type: "desktop", IP: "192.168.1.2"},
	} {
		if err := db.Create(&d).Error; err != nil {
			t.Fatalf("seed device: %v", err)
		}
	}
	svc := NewAnalyticsService(repository.NewReportRepository(db), stubSummarizer{})

	devices, err := svc.Devices()
	if err != nil {
		t.Fatalf("devices: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(devices))
	}

	if err := svc.RemoveDevice("dev1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	devices, _ = svc.Devices()
	if len(devices) != 1 || devices[0].ID != "dev2" {
		t.Errorf("unexpected devices after remove: %+v", devices)
	}
}
