package main

import (
	"fmt"
	"os"
	"time"

	"grocygo-backend/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// 健康檢查探測器，供容器健康檢查使用，非 2xx 即以非零碼結束
func main() {
	baseURL := os.Getenv("HEALTHCHECK_URL")
	if baseURL == "" {
		port := os.Getenv("APP_SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = fmt.Sprintf("http://localhost:%s/api/health", port)
	}

	client := resty.New().
		SetTimeout(5 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	resp, err := client.R().Get(baseURL)
	if err != nil {
		fmt.Printf("health check failed: %v\n", err)
		os.Exit(1)
	}
	if resp.IsError() {
		fmt.Printf("health check failed: status %d\n", resp.StatusCode())
		os.Exit(1)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := common.ParseJSONBytes(resp.Body(), &body); err != nil {
		fmt.Printf("health check failed: %v\n", err)
		os.Exit(1)
	}
	if body.Status != "ok" {
		fmt.Printf("health check failed: status %q\n", body.Status)
		os.Exit(1)
	}

	fmt.Println("ok")
}
