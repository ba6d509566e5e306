package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"yujuris-api/internal/domain/entity"
	"yujuris-api/internal/domain/repository"
)

// ResilientProvider bounds a model call in time and turns every way it can go
// wrong into a single ErrModelUnavailable so callers only branch once.
type ResilientProvider struct {
	primary repository.AIProvider
	timeout time.Duration // The Safety Layer Timeout
}

func NewResilientProvider(primary repository.AIProvider, timeout time.Duration) *ResilientProvider {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &ResilientProvider{
		primary: primary,
		timeout: timeout,
	}
}

func (r *ResilientProvider) Generate(ctx context.Context, prompt string, cfg entity.GenerationConfig) (*entity.AIResponse, error) {
	// A slow model must not hold the request past the cap
	resCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	resp, err := r.call(resCtx, prompt, cfg)
	if err != nil {
		log.Printf("[RELIABILITY] model call failed after %s: %v", time.Since(start).Round(time.Millisecond), err)
		return nil, fmt.Errorf("%w: %w", entity.ErrModelUnavailable, err)
	}
	if strings.TrimSpace(resp.Content) == "" {
		log.Printf("[RELIABILITY] model returned an empty body")
		return nil, fmt.Errorf("%w: %w", entity.ErrModelUnavailable, entity.ErrMalformedResponse)
	}

	resp.Latency = time.Since(start).Milliseconds()
	return resp, nil
}

// call shields the request from a provider that panics on an unexpected payload.
func (r *ResilientProvider) call(ctx context.Context, prompt string, cfg entity.GenerationConfig) (resp *entity.AIResponse, err error) {
	defer func() {
		if p := recover(); p != nil {
			resp, err = nil, fmt.Errorf("%w: provider panic: %v", entity.ErrMalformedResponse, p)
		}
	}()
	resp, err = r.primary.Generate(ctx, prompt, cfg)
	if err == nil && resp == nil {
		err = entity.ErrMalformedResponse
	}
	return resp, err
}
