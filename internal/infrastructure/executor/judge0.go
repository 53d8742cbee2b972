package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"career-connect/internal/config"
	"career-connect/internal/domain/grading"
	"career-connect/internal/domain/interview"

	"go.uber.org/zap"
)

// Judge0 submits each test case to a Judge0-compatible execution API. Test
// case order is preserved in the returned executions; a per-test transport or
// execution failure is captured on that entry instead of aborting the batch.
type Judge0 struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.Logger
}

func NewJudge0(cfg config.ExecutorConfig, log *zap.Logger) *Judge0 {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Judge0{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		logger:  log,
	}
}

var languageIDs = map[string]int{
	"python":     71,
	"javascript": 63,
	"java":       62,
	"cpp":        54,
	"go":         60,
}

type submissionRequest struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

type submissionResponse struct {
	Stdout        *string         `json:"stdout"`
	Stderr        *string         `json:"stderr"`
	CompileOutput *string         `json:"compile_output"`
	Time          *string         `json:"time"`
	Memory        *float64        `json:"memory"`
	Status        map[string]any  `json:"status"`
	Message       json.RawMessage `json:"message"`
}

func (j *Judge0) Run(ctx context.Context, code, language string, testCases []interview.TestCase) ([]grading.Execution, error) {
	langID, ok := languageIDs[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		langID = languageIDs["python"]
	}

	out := make([]grading.Execution, 0, len(testCases))
	for i, tc := range testCases {
		exec, err := j.runOne(ctx, code, langID, tc.Input)
		if err != nil {
			j.logger.Warn("code execution failed",
				zap.Int("test_index", i),
				zap.Error(err),
			)
			exec = grading.Execution{Error: err.Error()}
		}
		out = append(out, exec)
	}
	return out, nil
}

func (j *Judge0) runOne(ctx context.Context, code string, langID int, stdin string) (grading.Execution, error) {
	payload, err := json.Marshal(submissionRequest{
		SourceCode: code,
		LanguageID: langID,
		Stdin:      stdin,
	})
	if err != nil {
		return grading.Execution{}, err
	}

	url := j.baseURL + "/submissions?base64_encoded=false&wait=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return grading.Execution{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if j.apiKey != "" {
		req.Header.Set("X-RapidAPI-Key", j.apiKey)
	}

	resp, err := j.http.Do(req)
	if err != nil {
		return grading.Execution{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return grading.Execution{}, fmt.Errorf("executor returned status %d", resp.StatusCode)
	}

	var body submissionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return grading.Execution{}, fmt.Errorf("decode executor response: %w", err)
	}

	exec := grading.Execution{
		Output: deref(body.Stdout),
		Error:  firstNonEmpty(deref(body.Stderr), deref(body.CompileOutput)),
	}
	if body.Time != nil {
		if t, err := strconv.ParseFloat(*body.Time, 64); err == nil {
			exec.TimeSec = t
		}
	}
	if body.Memory != nil {
		exec.MemoryKB = *body.Memory
	}
	return exec, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
