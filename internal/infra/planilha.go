package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// PlanilhaLeadPayload is posted to the Google Apps Script webhook, which
// appends one row per lead to the seller's spreadsheet. Field names follow
// the script's expected action protocol.
type PlanilhaLeadPayload struct {
	Acao      string `json:"acao"` // always "salvar_lead"
	VitrineID string `json:"vitrine_id"`
	Slug      string `json:"slug"`
	Nome      string `json:"nome"`
	Telefone  string `json:"telefone,omitempty"`
	Email     string `json:"email,omitempty"`
	Mensagem  string `json:"mensagem,omitempty"`
	CriadoEm  string `json:"criado_em"` // ISO 8601
}

// PlanilhaResponse is what the Apps Script returns.
type PlanilhaResponse struct {
	OK   bool   `json:"ok"`
	Erro string `json:"erro,omitempty"`
}

// PlanilhaClient is an HTTP client for the spreadsheet webhook. Keeping the
// export on an outbound side channel isolates spreadsheet outages from the
// request path; the worker pool owns all calls.
type PlanilhaClient struct {
	webhookURL string
	httpClient *http.Client
}

func NewPlanilhaClient(webhookURL string) *PlanilhaClient {
	return &PlanilhaClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether a webhook URL was configured.
func (c *PlanilhaClient) Enabled() bool { return c.webhookURL != "" }

// SalvarLead posts one lead row to the webhook.
func (c *PlanilhaClient) SalvarLead(ctx context.Context, payload PlanilhaLeadPayload) (*PlanilhaResponse, error) {
	payload.Acao = "salvar_lead"
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("planilha: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("planilha: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("planilha: webhook unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("planilha: webhook returned %d", resp.StatusCode)
	}

	var result PlanilhaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("planilha: decode response: %w", err)
	}
	if !result.OK {
		return &result, fmt.Errorf("planilha: script rejected row: %s", result.Erro)
	}
	return &result, nil
}
